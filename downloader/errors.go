package downloader

import "errors"

// Error taxonomy. Configuration and fetch errors surface to the user with
// their message; anything else gets a generic wrapper so raw process output
// never reaches the UI.
var (
	// ErrToolNotFound means yt-dlp was not found at the resolved path.
	ErrToolNotFound = errors.New("yt-dlp not found. Please ensure it is installed and in your system PATH, or set its location in Settings")

	// ErrFetchFailed covers invalid, private or region-locked URLs and
	// malformed metadata.
	ErrFetchFailed = errors.New("failed to fetch video information. The URL might be invalid, or the video is private or region-locked")
)
