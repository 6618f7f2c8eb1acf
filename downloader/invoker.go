package downloader

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"tubefetch/backend/utils"
)

// EnvToolPath is consulted when no explicit yt-dlp path override is set.
const EnvToolPath = "YTDLP_PATH"

const defaultToolName = "yt-dlp"

// ResolveToolPath picks the yt-dlp binary: explicit override, then the
// YTDLP_PATH environment variable, then the bare name on the search path.
func ResolveToolPath(override string) string {
	if override != "" {
		return override
	}
	if env := os.Getenv(EnvToolPath); env != "" {
		return env
	}
	return defaultToolName
}

// YTDLPInvoker shells out to yt-dlp for one download at a time. Each call
// writes a new file into DownloadDir; the tool's own output template keeps
// concurrent invocations from clobbering each other.
type YTDLPInvoker struct {
	DownloadDir string
}

func NewYTDLPInvoker(downloadDir string) *YTDLPInvoker {
	return &YTDLPInvoker{DownloadDir: downloadDir}
}

func (y *YTDLPInvoker) Invoke(url, formatID, toolPath string) (string, error) {
	log := utils.GetLogger("invoker")

	if err := os.MkdirAll(y.DownloadDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create download directory: %v", err)
	}

	resolved := ResolveToolPath(toolPath)
	args := []string{
		"-f", formatID,
		"--no-warnings",
		"--no-playlist",
		"--no-simulate",
		"--print", "after_move:filepath",
		"-o", filepath.Join(y.DownloadDir, "%(title)s [%(id)s].%(ext)s"),
		url,
	}

	cmd := exec.Command(resolved, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debug().Str("tool", resolved).Str("format", formatID).Msg("starting yt-dlp")
	if err := cmd.Run(); err != nil {
		if isToolMissing(err) {
			return "", ErrToolNotFound
		}
		log.Debug().Str("stderr", stderr.String()).Msg("yt-dlp failed")
		return "", fmt.Errorf("download failed: yt-dlp exited with an error (%v)", exitReason(err))
	}

	name := producedFileName(stdout.String())
	if name == "" {
		return "", errors.New("download finished but yt-dlp reported no output file")
	}
	return name, nil
}

// producedFileName extracts the bare file name from the tool's printed output
// path; yt-dlp prints the final path as the last line of stdout.
func producedFileName(stdout string) string {
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	if last == "" {
		return ""
	}
	return filepath.Base(last)
}

func isToolMissing(err error) bool {
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return errors.Is(execErr.Err, exec.ErrNotFound) || os.IsNotExist(execErr.Err)
	}
	return errors.Is(err, os.ErrNotExist)
}

func exitReason(err error) string {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.String()
	}
	return err.Error()
}
