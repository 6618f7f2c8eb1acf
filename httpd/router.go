package httpd

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"tubefetch/backend/downloader"
	"tubefetch/backend/store"
)

func NewRouter(queue *downloader.Service, st *store.Store, downloadDir string) http.Handler {
	srv := &Server{
		Queue:       queue,
		Store:       st,
		DownloadDir: downloadDir,
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/downloads", srv.handleListDownloads())
		r.Post("/downloads", srv.handleCreateDownload())
		r.Post("/downloads/clear-completed", srv.handleClearCompleted())
		r.Route("/downloads/{downloadID}", func(r chi.Router) {
			r.Delete("/", srv.handleRemoveDownload())
			r.Post("/pause", srv.handleSetStatus(downloader.StatusPaused))
			r.Post("/resume", srv.handleSetStatus(downloader.StatusInProgress))
			r.Post("/retry", srv.handleRetryDownload())
		})

		r.Get("/history", srv.handleListHistory())
		r.Delete("/history", srv.handleClearHistory())

		r.Get("/video-info", srv.handleVideoInfo())
		r.Post("/suggest", srv.handleSuggest())

		r.Get("/download", srv.handleServeFile())

		r.Get("/settings", srv.handleGetSettings())
		r.Put("/settings", srv.handleSaveSettings())
	})

	return r
}
