package downloader

import (
	"context"
	"testing"
	"time"
)

func TestTickNeverReachesFullProgress(t *testing.T) {
	inv := newStubInvoker()
	svc := NewService(inv, &recordingArchiver{}, 1)

	item := svc.Add(payloadFor("v1", "https://example.com/v1", 10*1024*1024))
	call := inv.next(t)

	prev := 0.0
	for i := 0; i < 500; i++ {
		svc.Tick()
		got, _ := svc.Get(item.ID)
		if got.Progress < prev {
			t.Fatalf("progress decreased: %.2f -> %.2f", prev, got.Progress)
		}
		if got.Progress >= 100 {
			t.Fatalf("estimator alone reached %.2f; only a confirmed result may set 100", got.Progress)
		}
		if got.Downloaded > got.FileSize {
			t.Fatalf("downloaded %d exceeds file size %d", got.Downloaded, got.FileSize)
		}
		prev = got.Progress
	}

	got, _ := svc.Get(item.ID)
	if got.Progress != progressCeiling {
		t.Errorf("expected progress pinned at %.0f after many ticks, got %.2f", progressCeiling, got.Progress)
	}
	call.done <- invokeResult{fileName: "v1.mp4"}
}

func TestTickStepIsBounded(t *testing.T) {
	inv := newStubInvoker()
	svc := NewService(inv, &recordingArchiver{}, 1)

	item := svc.Add(payloadFor("v1", "https://example.com/v1", DefaultFileSize))
	call := inv.next(t)

	before, _ := svc.Get(item.ID)
	svc.Tick()
	after, _ := svc.Get(item.ID)

	step := after.Progress - before.Progress
	if step < minStep || step > maxStep {
		t.Errorf("step %.2f outside [%.2f, %.2f]", step, minStep, maxStep)
	}
	if after.Speed == "" || after.ETA == "" {
		t.Error("expected speed and ETA estimates after a tick")
	}
	call.done <- invokeResult{fileName: "v1.mp4"}
}

func TestTickSkipsPendingItems(t *testing.T) {
	inv := newStubInvoker()
	svc := NewService(inv, &recordingArchiver{}, 1)

	svc.Add(payloadFor("a", "https://example.com/a", 4096))
	b := svc.Add(payloadFor("b", "https://example.com/b", 4096))
	call := inv.next(t)

	svc.Tick()
	got, _ := svc.Get(b.ID)
	if got.Progress != 0 {
		t.Errorf("pending item advanced to %.2f", got.Progress)
	}
	call.done <- invokeResult{fileName: "a.mp4"}
}

func TestEstimatorStopsWithContext(t *testing.T) {
	inv := newStubInvoker()
	svc := NewService(inv, &recordingArchiver{}, 1)
	est := NewEstimator(svc)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		est.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("estimator did not stop on context cancellation")
	}
}
