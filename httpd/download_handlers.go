package httpd

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tubefetch/backend/downloader"
	"tubefetch/backend/utils"
)

func (s *Server) handleCreateDownload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req downloader.DownloadPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log := utils.GetLogger("httpd")
			log.Warn().Err(err).Msg("bad download request body")
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		if req.VideoInfo.WebpageURL == "" || req.Format.FormatID == "" {
			http.Error(w, "videoInfo.webpageUrl and format.format_id are required", http.StatusBadRequest)
			return
		}

		item := s.Queue.Add(req)
		respondWithJSON(w, http.StatusAccepted, item)
	}
}

func (s *Server) handleListDownloads() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := s.Queue.Items()
		if items == nil {
			items = []downloader.DownloadItem{}
		}
		respondWithJSON(w, http.StatusOK, items)
	}
}

// handleSetStatus serves the cosmetic pause/resume toggle. The queue treats
// unknown ids and ineligible states as no-ops, so the handler always returns
// the current view.
func (s *Server) handleSetStatus(target downloader.DownloadStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "downloadID")
		s.Queue.SetStatus(id, target)
		if item, ok := s.Queue.Get(id); ok {
			respondWithJSON(w, http.StatusOK, item)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) handleRetryDownload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "downloadID")
		s.Queue.Retry(id)
		if item, ok := s.Queue.Get(id); ok {
			respondWithJSON(w, http.StatusOK, item)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) handleRemoveDownload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Queue.Remove(chi.URLParam(r, "downloadID"))
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) handleClearCompleted() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Queue.ClearCompleted()
		w.WriteHeader(http.StatusNoContent)
	}
}
