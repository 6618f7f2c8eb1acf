package config

// Settings is the user-tunable configuration the browser UI edits. It is
// persisted as one JSON blob keyed "app-settings".
type Settings struct {
	Theme                  string `json:"theme"` // light | dark | system
	MaxConcurrentDownloads int    `json:"maxConcurrentDownloads"`
	ShowNotifications      bool   `json:"showNotifications"`
	YtDlpPath              string `json:"ytDlpPath"`
	DefaultDownloadPath    string `json:"defaultDownloadPath"`
}

const (
	DefaultTheme         = "system"
	DefaultMaxConcurrent = 3
	MinConcurrent        = 1
	MaxConcurrent        = 5
	DefaultDownloadDir   = "downloads"
)

func DefaultSettings() Settings {
	return Settings{
		Theme:                  DefaultTheme,
		MaxConcurrentDownloads: DefaultMaxConcurrent,
		ShowNotifications:      true,
		DefaultDownloadPath:    DefaultDownloadDir,
	}
}

// Normalize clamps the concurrency cap into its allowed range and repairs
// values a hand-edited blob could have broken.
func (s *Settings) Normalize() {
	if s.MaxConcurrentDownloads < MinConcurrent {
		s.MaxConcurrentDownloads = MinConcurrent
	}
	if s.MaxConcurrentDownloads > MaxConcurrent {
		s.MaxConcurrentDownloads = MaxConcurrent
	}
	switch s.Theme {
	case "light", "dark", "system":
	default:
		s.Theme = DefaultTheme
	}
	if s.DefaultDownloadPath == "" {
		s.DefaultDownloadPath = DefaultDownloadDir
	}
}
