package downloader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os/exec"
	"time"

	"tubefetch/backend/utils"
)

// ytdlpFormat is the subset of the yt-dlp JSON format entries we consume.
type ytdlpFormat struct {
	FormatID   string `json:"format_id"`
	Ext        string `json:"ext"`
	Resolution string `json:"resolution"` // "1920x1080" or "audio only"
	VCodec     string `json:"vcodec"`     // can be "none"
	ACodec     string `json:"acodec"`
	Filesize   *int64 `json:"filesize"`
}

type ytdlpVideoInfo struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Uploader    string        `json:"uploader"`
	Duration    float64       `json:"duration"`
	Thumbnail   string        `json:"thumbnail"`
	WebpageURL  string        `json:"webpage_url"`
	Formats     []ytdlpFormat `json:"formats"`
}

// FetchVideoInfo asks yt-dlp for a video's metadata and available formats.
// Tool-not-found surfaces as ErrToolNotFound; any other failure is folded into
// ErrFetchFailed so the raw process output never reaches the user.
func FetchVideoInfo(url, toolPath string) (*VideoInfo, error) {
	log := utils.GetLogger("metadata")

	resolved := ResolveToolPath(toolPath)
	cmd := exec.Command(resolved, "--dump-json", "--no-warnings", "--no-playlist", url)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if isToolMissing(err) {
			return nil, ErrToolNotFound
		}
		log.Debug().Str("url", url).Str("stderr", stderr.String()).Msg("yt-dlp metadata fetch failed")
		return nil, ErrFetchFailed
	}

	info, err := parseVideoInfo(stdout.Bytes())
	if err != nil {
		log.Debug().Err(err).Str("url", url).Msg("malformed yt-dlp metadata")
		return nil, ErrFetchFailed
	}
	return info, nil
}

func parseVideoInfo(data []byte) (*VideoInfo, error) {
	var raw ytdlpVideoInfo
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing yt-dlp output: %w", err)
	}
	if raw.ID == "" || raw.Title == "" {
		return nil, fmt.Errorf("yt-dlp output missing id or title")
	}

	info := &VideoInfo{
		ID:           raw.ID,
		Title:        raw.Title,
		Description:  raw.Description,
		Uploader:     raw.Uploader,
		Duration:     raw.Duration,
		ThumbnailURL: raw.Thumbnail,
		WebpageURL:   raw.WebpageURL,
		RetrievedAt:  time.Now(),
	}
	for _, f := range raw.Formats {
		format := FormatInfo{
			FormatID: f.FormatID,
			Ext:      f.Ext,
			VCodec:   f.VCodec,
			ACodec:   f.ACodec,
		}
		if f.Resolution != "audio only" {
			format.Resolution = f.Resolution
		}
		if f.Filesize != nil {
			format.Filesize = *f.Filesize
		}
		info.AvailableFormats = append(info.AvailableFormats, format)
	}
	return info, nil
}
