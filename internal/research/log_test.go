package research_test

import (
	"sync"
	"testing"

	"github.com/tutormesh/tutormesh/internal/research"
)

func TestLogRecordsWhenEnabled(t *testing.T) {
	log := research.NewLog()

	if !log.Enabled() {
		t.Fatal("log should start enabled")
	}

	log.Record("generation", map[string]any{"model": "gpt-4"})

	events := log.Events()
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	if got, want := events[0].Type, "generation"; got != want {
		t.Errorf("type = %q, want %q", got, want)
	}
	if events[0].Timestamp.IsZero() {
		t.Error("timestamp should be set")
	}
}

func TestLogDisabledDropsEvents(t *testing.T) {
	log := research.NewLog()
	log.SetEnabled(false)

	log.Record("generation", nil)

	if got := len(log.Events()); got != 0 {
		t.Errorf("len(events) = %d, want 0", got)
	}

	log.SetEnabled(true)
	log.Record("generation", nil)

	if got := len(log.Events()); got != 1 {
		t.Errorf("len(events) = %d, want 1", got)
	}
}

func TestLogConcurrentRecording(t *testing.T) {
	log := research.NewLog()

	const writers = 8
	const perWriter = 50

	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range perWriter {
				log.Record("generation", map[string]any{"writer": i, "n": j})
			}
		}()
	}
	wg.Wait()

	if got, want := len(log.Events()), writers*perWriter; got != want {
		t.Errorf("len(events) = %d, want %d", got, want)
	}
}

func TestLogEventsReturnsSnapshot(t *testing.T) {
	log := research.NewLog()
	log.Record("generation", nil)

	snapshot := log.Events()
	log.Record("generation", nil)

	if got := len(snapshot); got != 1 {
		t.Errorf("snapshot length = %d, want 1", got)
	}
	if got := len(log.Events()); got != 2 {
		t.Errorf("len(events) = %d, want 2", got)
	}
}
