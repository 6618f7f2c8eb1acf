package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"tubefetch/backend/config"
	"tubefetch/backend/downloader"
	"tubefetch/backend/httpd"
	"tubefetch/backend/store"
	"tubefetch/backend/utils"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	// .env is optional; plain environment variables work the same.
	_ = godotenv.Load()

	utils.InitLogger(os.Getenv("DEBUG") != "")
	log := utils.GetLogger("main")
	log.Info().Msg("starting TubeFetch backend")

	addr := envOr("ADDR", ":8080")
	dbPath := envOr("DB_PATH", "tubefetch.db")
	downloadDir := envOr("DOWNLOAD_DIR", config.DefaultDownloadDir)

	db, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", dbPath).Msg("failed to open database")
	}
	defer db.Close()

	settings, err := db.GetSettings(context.Background())
	if err != nil {
		log.Warn().Err(err).Msg("could not load settings, using defaults")
	}

	invoker := downloader.NewYTDLPInvoker(downloadDir)
	archiver := &store.QueueArchiver{Store: db}
	queue := downloader.NewService(invoker, archiver, settings.MaxConcurrentDownloads)
	queue.SetToolPath(settings.YtDlpPath)
	queue.SetDownloadDir(downloadDir)

	// One ctx owns every background loop; cancelling it on shutdown stops
	// the estimator as a whole. The live queue is not persisted.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go downloader.NewEstimator(queue).Run(ctx)

	router := httpd.NewRouter(queue, db, downloadDir)
	srv := &http.Server{Addr: addr, Handler: router}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info().Msg("shutdown signal received")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown error")
		}
		cancel()
	}()

	log.Info().Str("addr", addr).Str("downloads", downloadDir).Msg("server listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server failed")
	}
	log.Info().Msg("server stopped")
}
