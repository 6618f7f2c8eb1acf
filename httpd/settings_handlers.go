package httpd

import (
	"encoding/json"
	"net/http"

	"tubefetch/backend/config"
	"tubefetch/backend/utils"
)

func (s *Server) handleGetSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := s.Store.GetSettings(r.Context())
		if err != nil {
			log := utils.GetLogger("httpd")
			log.Error().Err(err).Msg("failed to load settings")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		respondWithJSON(w, http.StatusOK, settings)
	}
}

// handleSaveSettings persists the blob and pushes the live knobs (concurrency
// cap, tool path) straight into the queue service.
func (s *Server) handleSaveSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var settings config.Settings
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		settings.Normalize()

		if err := s.Store.SaveSettings(r.Context(), settings); err != nil {
			log := utils.GetLogger("httpd")
			log.Error().Err(err).Msg("failed to save settings")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		s.Queue.SetMaxConcurrent(settings.MaxConcurrentDownloads)
		s.Queue.SetToolPath(settings.YtDlpPath)

		respondWithJSON(w, http.StatusOK, settings)
	}
}
