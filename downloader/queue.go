package downloader

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"tubefetch/backend/utils"
)

// Service owns the live download queue. Every mutation goes through its
// methods under one mutex, so other components never observe a half-applied
// transition. Terminal items stay visible in the queue until ClearCompleted;
// their snapshot is archived to history the moment they turn terminal.
type Service struct {
	mu            sync.Mutex
	items         map[string]*DownloadItem
	order         []string // insertion order, drives FIFO admission
	maxConcurrent int
	toolPath      string
	downloadDir   string

	invoker  Invoker
	archiver Archiver
}

func NewService(invoker Invoker, archiver Archiver, maxConcurrent int) *Service {
	return &Service{
		items:         make(map[string]*DownloadItem),
		maxConcurrent: clampConcurrency(maxConcurrent),
		invoker:       invoker,
		archiver:      archiver,
	}
}

func clampConcurrency(n int) int {
	if n < 1 {
		return 1
	}
	if n > 5 {
		return 5
	}
	return n
}

// SetToolPath sets the yt-dlp override handed to the invoker for future
// dispatches. Empty means resolve from env / PATH.
func (s *Service) SetToolPath(path string) {
	s.mu.Lock()
	s.toolPath = path
	s.mu.Unlock()
}

// SetDownloadDir tells the service where produced files land, used for
// post-download tagging of audio files.
func (s *Service) SetDownloadDir(dir string) {
	s.mu.Lock()
	s.downloadDir = dir
	s.mu.Unlock()
}

// SetMaxConcurrent changes the admission cap. Lowering it never demotes
// running items; only future admissions are throttled.
func (s *Service) SetMaxConcurrent(n int) {
	s.mu.Lock()
	s.maxConcurrent = clampConcurrency(n)
	s.mu.Unlock()
	s.evaluate()
}

// Add enqueues a new Pending item for the chosen format and returns its
// snapshot. The file size falls back to DefaultFileSize when the format does
// not report one.
func (s *Service) Add(payload DownloadPayload) DownloadItem {
	size := payload.Format.Filesize
	if size <= 0 {
		size = DefaultFileSize
	}
	item := &DownloadItem{
		ID:           uuid.NewString(),
		VideoID:      payload.VideoInfo.ID,
		Title:        payload.VideoInfo.Title,
		Uploader:     payload.VideoInfo.Uploader,
		ThumbnailURL: payload.VideoInfo.ThumbnailURL,
		WebpageURL:   payload.VideoInfo.WebpageURL,
		FormatID:     payload.Format.FormatID,
		Status:       StatusPending,
		FileSize:     size,
		Speed:        "0 B/s",
		ETA:          "N/A",
		StartedAt:    time.Now(),
	}

	s.mu.Lock()
	s.items[item.ID] = item
	s.order = append(s.order, item.ID)
	s.mu.Unlock()

	log := utils.GetLogger("queue")
	log.Info().Str("id", item.ID).Str("title", item.Title).Str("format", item.FormatID).Msg("download queued")

	s.evaluate()

	snap, _ := s.Get(item.ID)
	return snap
}

// Get returns a value copy of one item.
func (s *Service) Get(id string) (DownloadItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return DownloadItem{}, false
	}
	return *item, true
}

// Items returns value copies of every queued item in insertion order.
func (s *Service) Items() []DownloadItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]DownloadItem, 0, len(s.order))
	for _, id := range s.order {
		if item, ok := s.items[id]; ok {
			out = append(out, *item)
		}
	}
	return out
}

// SetStatus applies the cosmetic pause/resume toggle. Only items currently
// InProgress or Paused react; Pending and terminal items are immune. Unknown
// ids and other targets are no-ops.
func (s *Service) SetStatus(id string, target DownloadStatus) {
	if target != StatusPaused && target != StatusInProgress {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return
	}
	if item.Status != StatusInProgress && item.Status != StatusPaused {
		return
	}
	item.Status = target
}

// Remove drops the item regardless of status. An already-dispatched external
// process keeps running; its eventual result is discarded in finish.
func (s *Service) Remove(id string) {
	s.mu.Lock()
	if _, ok := s.items[id]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.items, id)
	s.removeFromOrder(id)
	s.mu.Unlock()

	// Removing an InProgress item frees a slot.
	s.evaluate()
}

// Retry revives a Failed item into a fresh Pending state. No-op for anything
// not Failed.
func (s *Service) Retry(id string) {
	s.mu.Lock()
	item, ok := s.items[id]
	if !ok || item.Status != StatusFailed {
		s.mu.Unlock()
		return
	}
	item.Status = StatusPending
	item.Progress = 0
	item.Downloaded = 0
	item.Speed = "0 B/s"
	item.ETA = "N/A"
	item.ErrorMessage = ""
	item.FileName = ""
	item.CompletedAt = nil
	item.StartedAt = time.Now()
	s.mu.Unlock()

	s.evaluate()
}

// ClearCompleted removes all terminal items from the active view. They were
// already archived to history when they turned terminal.
func (s *Service) ClearCompleted() {
	s.mu.Lock()
	for _, id := range s.order {
		if item, ok := s.items[id]; ok && item.Status.IsTerminal() {
			delete(s.items, id)
		}
	}
	s.compactOrder()
	s.mu.Unlock()
}

// must hold s.mu
func (s *Service) removeFromOrder(id string) {
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

// must hold s.mu
func (s *Service) compactOrder() {
	kept := s.order[:0]
	for _, id := range s.order {
		if _, ok := s.items[id]; ok {
			kept = append(kept, id)
		}
	}
	s.order = kept
}

// evaluate re-runs admission until no further promotion is possible. Each
// promoteNext call admits at most one item, so admissions stay FIFO and the
// cap is never overshot within one evaluation.
func (s *Service) evaluate() {
	for s.promoteNext() {
	}
}

func (s *Service) promoteNext() bool {
	s.mu.Lock()

	active := 0
	for _, item := range s.items {
		if item.Status == StatusInProgress {
			active++
		}
	}
	if active >= s.maxConcurrent {
		s.mu.Unlock()
		return false
	}

	// Oldest Pending by insertion order.
	var next *DownloadItem
	for _, id := range s.order {
		if item, ok := s.items[id]; ok && item.Status == StatusPending {
			next = item
			break
		}
	}
	if next == nil {
		s.mu.Unlock()
		return false
	}

	next.Status = StatusInProgress
	next.StartedAt = time.Now()
	id, url, formatID, toolPath := next.ID, next.WebpageURL, next.FormatID, s.toolPath
	s.mu.Unlock()

	log := utils.GetLogger("queue")
	log.Info().Str("id", id).Str("format", formatID).Msg("download admitted")

	go func() {
		fileName, err := s.invoker.Invoke(url, formatID, toolPath)
		s.finish(id, fileName, err)
	}()
	return true
}

// finish reconciles a terminal result from the invoker. Results for items that
// were removed while the process ran are discarded. The item flips terminal
// exactly once; its snapshot goes to history even when the queue keeps showing
// it until ClearCompleted.
func (s *Service) finish(id, fileName string, invokeErr error) {
	log := utils.GetLogger("queue")

	s.mu.Lock()
	item, ok := s.items[id]
	if !ok {
		s.mu.Unlock()
		log.Debug().Str("id", id).Msg("result for removed item discarded")
		return
	}
	if item.Status.IsTerminal() {
		s.mu.Unlock()
		return
	}

	now := time.Now()
	item.CompletedAt = &now
	item.Speed = "0 B/s"
	item.ETA = "N/A"
	if invokeErr != nil {
		item.Status = StatusFailed
		item.ErrorMessage = invokeErr.Error()
	} else {
		item.Status = StatusCompleted
		item.Progress = 100
		item.Downloaded = item.FileSize
		item.FileName = fileName
	}
	snapshot := *item
	downloadDir := s.downloadDir
	s.mu.Unlock()

	if invokeErr != nil {
		log.Warn().Str("id", id).Str("title", snapshot.Title).Msg("download failed")
	} else {
		log.Info().Str("id", id).Str("file", fileName).Msg("download completed")
	}

	if err := s.archiver.Archive(snapshot); err != nil {
		// The queue transition already happened; history append failures
		// must not wedge the item.
		log.Error().Err(err).Str("id", id).Msg("failed to archive download to history")
	}

	if invokeErr == nil && strings.HasSuffix(fileName, ".mp3") {
		go tagAudioFile(filepath.Join(downloadDir, fileName), snapshot.Title, snapshot.Uploader)
	}

	s.evaluate()
}
