// Package suggest ranks available download formats and recommends one. The
// recommendation is purely advisory; callers must treat failures as "no
// suggestion" and never let them affect the download flow.
package suggest

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tubefetch/backend/downloader"
)

type Suggestion struct {
	SuggestedFormat string `json:"suggestedFormat"`
	Reason          string `json:"reason"`
}

var ErrNoFormats = errors.New("no formats to choose from")

// BestFormat picks the most broadly playable format: combined audio+video
// beats split streams, mp4 beats other containers, then higher resolution,
// then a known file size over an unknown one.
func BestFormat(title string, formats []downloader.FormatInfo) (Suggestion, error) {
	if len(formats) == 0 {
		return Suggestion{}, ErrNoFormats
	}

	best := formats[0]
	bestScore := score(formats[0])
	for _, f := range formats[1:] {
		if s := score(f); s > bestScore {
			best, bestScore = f, s
		}
	}

	return Suggestion{
		SuggestedFormat: best.FormatID,
		Reason:          reasonFor(title, best),
	}, nil
}

func score(f downloader.FormatInfo) int {
	s := 0
	if hasCodec(f.VCodec) && hasCodec(f.ACodec) {
		s += 1_000_000 // playable everywhere without merging streams
	}
	if f.Ext == "mp4" || f.Ext == "m4a" {
		s += 500_000
	}
	s += resolutionHeight(f.Resolution) * 100
	if f.Filesize > 0 {
		s += 50
	}
	return s
}

func hasCodec(codec string) bool {
	return codec != "" && codec != "none"
}

// resolutionHeight parses the height out of a "1920x1080"-style resolution.
func resolutionHeight(resolution string) int {
	parts := strings.Split(resolution, "x")
	if len(parts) != 2 {
		return 0
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0
	}
	return h
}

func reasonFor(title string, f downloader.FormatInfo) string {
	var traits []string
	if hasCodec(f.VCodec) && hasCodec(f.ACodec) {
		traits = append(traits, "includes both audio and video")
	} else if hasCodec(f.ACodec) {
		traits = append(traits, "audio-only stream")
	}
	if f.Resolution != "" {
		traits = append(traits, f.Resolution)
	}
	if f.Ext != "" {
		traits = append(traits, f.Ext+" container")
	}
	detail := strings.Join(traits, ", ")
	if detail == "" {
		detail = "the most compatible option available"
	}
	return fmt.Sprintf("Best choice for %q: %s.", title, detail)
}
