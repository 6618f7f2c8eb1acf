package httpd

import (
	"encoding/json"
	"errors"
	"net/http"

	"tubefetch/backend/downloader"
	"tubefetch/backend/suggest"
	"tubefetch/backend/utils"
)

func (s *Server) handleVideoInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url := r.URL.Query().Get("url")
		if url == "" {
			http.Error(w, "missing url parameter", http.StatusBadRequest)
			return
		}

		settings, err := s.Store.GetSettings(r.Context())
		if err != nil {
			log := utils.GetLogger("httpd")
			log.Warn().Err(err).Msg("falling back to default settings for metadata fetch")
		}

		info, err := downloader.FetchVideoInfo(url, settings.YtDlpPath)
		if err != nil {
			if errors.Is(err, downloader.ErrToolNotFound) {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		respondWithJSON(w, http.StatusOK, info)
	}
}

type suggestRequest struct {
	VideoTitle string                  `json:"videoTitle"`
	Formats    []downloader.FormatInfo `json:"formats"`
}

// handleSuggest is advisory only: every failure collapses into an empty
// suggestion so the download flow can never be disturbed by it.
func (s *Server) handleSuggest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req suggestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithJSON(w, http.StatusOK, suggest.Suggestion{Reason: "No suggestion available."})
			return
		}

		result, err := suggest.BestFormat(req.VideoTitle, req.Formats)
		if err != nil {
			log := utils.GetLogger("httpd")
			log.Debug().Err(err).Msg("format suggestion unavailable")
			respondWithJSON(w, http.StatusOK, suggest.Suggestion{Reason: "No suggestion available."})
			return
		}
		respondWithJSON(w, http.StatusOK, result)
	}
}
