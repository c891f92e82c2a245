package simulator

import (
	"context"
	"log"
	"math/rand"
	"time"

	"playland-backend/config"
	"playland-backend/internal/store"
)

// Service periodically drifts the occupancy counter by a small random delta,
// standing in for walk-ins and departures that never went through a booking.
type Service struct {
	cfg   *config.SimulatorConfig
	store *store.AppStore
	rng   *rand.Rand
}

// NewService creates an occupancy drift simulator. The random source is
// injected so tests can pin exact post-tick values.
func NewService(cfg *config.SimulatorConfig, s *store.AppStore, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{cfg: cfg, store: s, rng: rng}
}

// Run starts the drift loop. It returns when ctx is cancelled.
func (s *Service) Run(ctx context.Context) {
	if !s.cfg.Enabled {
		log.Println("Occupancy simulator is disabled. Not starting.")
		return
	}
	log.Println("Starting occupancy simulator...")

	timer := time.NewTimer(s.cfg.Interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Occupancy simulator shutting down.")
			return
		case <-timer.C:
			s.Tick()
			timer.Reset(s.cfg.Interval)
		}
	}
}

// Tick applies a single uniform random delta in [-MaxDelta, +MaxDelta].
func (s *Service) Tick() {
	delta := s.rng.Intn(2*s.cfg.MaxDelta+1) - s.cfg.MaxDelta
	if _, err := s.store.ShiftOccupancy(delta); err != nil {
		log.Printf("occupancy drift persist failed: %v", err)
	}
}
