package downloader

import "time"

type DownloadStatus string

const (
	StatusPending    DownloadStatus = "Pending"
	StatusInProgress DownloadStatus = "InProgress"
	StatusPaused     DownloadStatus = "Paused"
	StatusCompleted  DownloadStatus = "Completed"
	StatusFailed     DownloadStatus = "Failed"
)

// IsTerminal reports whether no further automatic transition can occur.
func (s DownloadStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// FormatInfo is one encoding option reported by yt-dlp for a video.
type FormatInfo struct {
	FormatID   string `json:"format_id"`
	Ext        string `json:"ext"`
	Resolution string `json:"resolution,omitempty"`
	VCodec     string `json:"vcodec,omitempty"`
	ACodec     string `json:"acodec,omitempty"`
	Filesize   int64  `json:"filesize,omitempty"`
}

type VideoInfo struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	Uploader         string       `json:"uploader"`
	Duration         float64      `json:"duration"` // seconds
	ThumbnailURL     string       `json:"thumbnailUrl"`
	WebpageURL       string       `json:"webpageUrl"`
	RetrievedAt      time.Time    `json:"retrievedAt"`
	AvailableFormats []FormatInfo `json:"availableFormats"`
}

// DefaultFileSize is assumed when the chosen format reports no size.
const DefaultFileSize = 50 * 1024 * 1024

// DownloadItem is one request's lifecycle record. The queue service owns the
// live instances; everything handed out of the service is a value copy.
type DownloadItem struct {
	ID           string         `json:"id"`
	VideoID      string         `json:"videoId"`
	Title        string         `json:"title"`
	Uploader     string         `json:"uploader,omitempty"`
	ThumbnailURL string         `json:"thumbnailUrl"`
	WebpageURL   string         `json:"webpageUrl"`
	FormatID     string         `json:"formatId"`
	Status       DownloadStatus `json:"status"`
	Progress     float64        `json:"progress"` // 0-100
	FileSize     int64          `json:"fileSize"` // bytes
	Downloaded   int64          `json:"downloadedSize"`
	Speed        string         `json:"speed"`
	ETA          string         `json:"eta"`
	StartedAt    time.Time      `json:"startedAt"`
	CompletedAt  *time.Time     `json:"completedAt"`
	ErrorMessage string         `json:"errorMessage,omitempty"`
	FileName     string         `json:"fileName,omitempty"` // set on Completed only
}

// DownloadPayload is what the UI submits to enqueue a download.
type DownloadPayload struct {
	VideoInfo VideoInfo  `json:"videoInfo"`
	Format    FormatInfo `json:"format"`
}
