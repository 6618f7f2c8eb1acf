package httpd

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"tubefetch/backend/utils"
)

// handleServeFile streams one completed file out of the download directory.
// The name must be bare: anything with a path separator or a ".." segment is
// rejected before touching the filesystem.
func (s *Server) handleServeFile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("file")
		if name == "" {
			http.Error(w, "Missing file name", http.StatusBadRequest)
			return
		}
		if strings.Contains(name, "/") || strings.Contains(name, "\\") || strings.Contains(name, "..") {
			http.Error(w, "Invalid file name", http.StatusBadRequest)
			return
		}

		path := filepath.Join(s.DownloadDir, name)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			http.Error(w, "File not found", http.StatusNotFound)
			return
		}

		f, err := os.Open(path)
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		defer f.Close()

		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Content-Length", strconv.FormatInt(info.Size(), 10))
		if _, err := io.Copy(w, f); err != nil {
			log := utils.GetLogger("httpd")
			log.Warn().Err(err).Str("file", name).Msg("file download interrupted")
		}
	}
}
