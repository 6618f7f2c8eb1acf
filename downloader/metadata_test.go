package downloader

import "testing"

const sampleDumpJSON = `{
	"id": "dQw4w9WgXcQ",
	"title": "Test Video",
	"description": "A test video",
	"uploader": "Test Channel",
	"duration": 212.5,
	"thumbnail": "https://i.ytimg.com/vi/dQw4w9WgXcQ/hq720.jpg",
	"webpage_url": "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	"formats": [
		{"format_id": "140", "ext": "m4a", "resolution": "audio only", "vcodec": "none", "acodec": "mp4a.40.2", "filesize": 3456789},
		{"format_id": "22", "ext": "mp4", "resolution": "1280x720", "vcodec": "avc1.64001F", "acodec": "mp4a.40.2", "filesize": null},
		{"format_id": "137", "ext": "mp4", "resolution": "1920x1080", "vcodec": "avc1.640028", "acodec": "none", "filesize": 104857600}
	]
}`

func TestParseVideoInfo(t *testing.T) {
	info, err := parseVideoInfo([]byte(sampleDumpJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if info.ID != "dQw4w9WgXcQ" || info.Title != "Test Video" {
		t.Errorf("unexpected identity: %s / %s", info.ID, info.Title)
	}
	if info.Uploader != "Test Channel" {
		t.Errorf("unexpected uploader: %s", info.Uploader)
	}
	if info.Duration != 212.5 {
		t.Errorf("unexpected duration: %f", info.Duration)
	}
	if len(info.AvailableFormats) != 3 {
		t.Fatalf("expected 3 formats, got %d", len(info.AvailableFormats))
	}

	audio := info.AvailableFormats[0]
	if audio.Resolution != "" {
		t.Errorf(`"audio only" must map to an empty resolution, got %q`, audio.Resolution)
	}
	if audio.Filesize != 3456789 {
		t.Errorf("unexpected audio filesize: %d", audio.Filesize)
	}

	noSize := info.AvailableFormats[1]
	if noSize.Filesize != 0 {
		t.Errorf("null filesize must map to 0, got %d", noSize.Filesize)
	}
	if noSize.Resolution != "1280x720" {
		t.Errorf("unexpected resolution: %q", noSize.Resolution)
	}
}

func TestParseVideoInfoRejectsMalformed(t *testing.T) {
	if _, err := parseVideoInfo([]byte("not json")); err == nil {
		t.Error("expected an error for malformed JSON")
	}
	if _, err := parseVideoInfo([]byte(`{"title": "no id"}`)); err == nil {
		t.Error("expected an error when id is missing")
	}
}
