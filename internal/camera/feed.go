package camera

import (
	"sync"
	"time"
)

// Feed simulates a live camera: while live, a frame counter advances on a
// fixed interval. Nothing here is persisted.
type Feed struct {
	mu       sync.Mutex
	interval time.Duration
	live     bool
	frame    int
	stop     chan struct{}
}

// NewFeed creates a stopped feed.
func NewFeed(interval time.Duration) *Feed {
	return &Feed{interval: interval}
}

// SetLive toggles the feed. Turning it on starts the frame ticker; turning it
// off stops it. At most one ticker runs at a time, so repeated calls with the
// same value are no-ops.
func (f *Feed) SetLive(live bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if live == f.live {
		return
	}
	f.live = live

	if live {
		f.stop = make(chan struct{})
		go f.run(f.stop)
	} else {
		close(f.stop)
		f.stop = nil
	}
}

// Close stops the feed ticker for shutdown.
func (f *Feed) Close() {
	f.SetLive(false)
}

// Status returns whether the feed is live and the current frame number.
func (f *Feed) Status() (live bool, frame int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.live, f.frame
}

func (f *Feed) run(stop <-chan struct{}) {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			f.mu.Lock()
			f.frame++
			f.mu.Unlock()
		}
	}
}

// Advance bumps the frame counter once. Exposed for deterministic tests.
func (f *Feed) Advance() {
	f.mu.Lock()
	f.frame++
	f.mu.Unlock()
}
