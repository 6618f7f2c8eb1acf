package httpd

import (
	"net/http"

	"tubefetch/backend/downloader"
	"tubefetch/backend/utils"
)

func (s *Server) handleListHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := s.Store.ListHistory(r.Context())
		if err != nil {
			log := utils.GetLogger("httpd")
			log.Error().Err(err).Msg("failed to read history")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		if items == nil {
			items = []downloader.DownloadItem{}
		}
		respondWithJSON(w, http.StatusOK, items)
	}
}

func (s *Server) handleClearHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Store.ClearHistory(r.Context()); err != nil {
			log := utils.GetLogger("httpd")
			log.Error().Err(err).Msg("failed to clear history")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
