package suggest

import (
	"strings"
	"testing"

	"tubefetch/backend/downloader"
)

func TestBestFormatPrefersCombinedStreams(t *testing.T) {
	formats := []downloader.FormatInfo{
		{FormatID: "137", Ext: "mp4", Resolution: "1920x1080", VCodec: "avc1", ACodec: "none"},
		{FormatID: "22", Ext: "mp4", Resolution: "1280x720", VCodec: "avc1", ACodec: "mp4a", Filesize: 1024},
		{FormatID: "140", Ext: "m4a", Resolution: "", VCodec: "none", ACodec: "mp4a"},
	}

	got, err := BestFormat("Some Video", formats)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.SuggestedFormat != "22" {
		t.Errorf("expected combined-stream format 22, got %s", got.SuggestedFormat)
	}
	if !strings.Contains(got.Reason, "audio and video") {
		t.Errorf("reason should mention combined streams: %q", got.Reason)
	}
}

func TestBestFormatPrefersHigherResolution(t *testing.T) {
	formats := []downloader.FormatInfo{
		{FormatID: "18", Ext: "mp4", Resolution: "640x360", VCodec: "avc1", ACodec: "mp4a"},
		{FormatID: "22", Ext: "mp4", Resolution: "1280x720", VCodec: "avc1", ACodec: "mp4a"},
	}

	got, err := BestFormat("Some Video", formats)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.SuggestedFormat != "22" {
		t.Errorf("expected the 720p format, got %s", got.SuggestedFormat)
	}
}

func TestBestFormatEmptyInput(t *testing.T) {
	if _, err := BestFormat("x", nil); err == nil {
		t.Error("expected an error for empty format list")
	}
}
