package httpd

import (
	"encoding/json"
	"net/http"

	"tubefetch/backend/downloader"
	"tubefetch/backend/store"
	"tubefetch/backend/utils"
)

type Server struct {
	Queue       *downloader.Service
	Store       *store.Store
	DownloadDir string
}

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log := utils.GetLogger("httpd")
		log.Error().Err(err).Msg("failed to encode JSON response")
	}
}
