package downloader

import (
	"context"
	"math/rand"
	"time"

	"tubefetch/backend/utils"
)

// The wrapped tool does not stream byte-level progress back to this layer, so
// progress is a model, not a measurement: every tick each InProgress item
// advances by a bounded random step, scaled down for larger files so the ETA
// feels proportionate. The estimator never reaches 100 on its own; only a
// confirmed result from the invoker sets 100 (or Failed).
const (
	estimatorInterval = time.Second
	progressCeiling   = 99.0
	minStep           = 0.3
	maxStep           = 12.0
)

// Tick advances the simulated progress of every InProgress item once. Paused
// items are frozen entirely, terminal and Pending items are untouched.
func (s *Service) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.order {
		item, ok := s.items[id]
		if !ok || item.Status != StatusInProgress {
			continue
		}

		// Smaller steps for bigger files.
		scale := float64(DefaultFileSize) / float64(item.FileSize)
		step := (2 + rand.Float64()*8) * scale
		if step < minStep {
			step = minStep
		}
		if step > maxStep {
			step = maxStep
		}

		progress := item.Progress + step
		if progress > progressCeiling {
			progress = progressCeiling
		}
		item.Progress = progress
		item.Downloaded = int64(progress / 100 * float64(item.FileSize))

		// Display-only estimates derived from the instantaneous step.
		bytesPerSec := step / 100 * float64(item.FileSize) / estimatorInterval.Seconds()
		item.Speed = utils.FormatSpeed(bytesPerSec)
		etaSeconds := int64((100 - progress) / step * estimatorInterval.Seconds())
		item.ETA = utils.FormatETA(etaSeconds)
	}
}

// Estimator drives Service.Tick on a fixed interval. Cancelling ctx stops the
// whole loop; there is no per-item cancellation.
type Estimator struct {
	queue    *Service
	interval time.Duration
}

func NewEstimator(queue *Service) *Estimator {
	return &Estimator{queue: queue, interval: estimatorInterval}
}

func (e *Estimator) Run(ctx context.Context) {
	log := utils.GetLogger("estimator")
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("estimator stopped")
			return
		case <-ticker.C:
			e.queue.Tick()
		}
	}
}
