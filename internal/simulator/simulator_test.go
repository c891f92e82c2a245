package simulator

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playland-backend/config"
	"playland-backend/internal/store"
)

func testConfig() *config.SimulatorConfig {
	return &config.SimulatorConfig{
		Enabled:  true,
		Interval: 10 * time.Millisecond,
		MaxDelta: 2,
	}
}

func TestTick_DeterministicWithSeededSource(t *testing.T) {
	s := store.New(nil, 20)
	_, err := s.ShiftOccupancy(10)
	require.NoError(t, err)

	svc := NewService(testConfig(), s, rand.New(rand.NewSource(42)))

	// Replay the same source to compute the expected walk.
	replay := rand.New(rand.NewSource(42))
	expected := 10
	for i := 0; i < 20; i++ {
		delta := replay.Intn(5) - 2
		expected += delta
		if expected < 0 {
			expected = 0
		}
		if expected > 20 {
			expected = 20
		}

		svc.Tick()
		current, _ := s.CurrentOccupancy()
		assert.Equal(t, expected, current)
	}
}

func TestTick_StaysWithinBounds(t *testing.T) {
	s := store.New(nil, 3)
	svc := NewService(testConfig(), s, rand.New(rand.NewSource(7)))

	for i := 0; i < 200; i++ {
		svc.Tick()
		current, max := s.CurrentOccupancy()
		assert.GreaterOrEqual(t, current, 0)
		assert.LessOrEqual(t, current, max)
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	s := store.New(nil, 20)
	svc := NewService(testConfig(), s, rand.New(rand.NewSource(1)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("simulator did not stop after context cancellation")
	}
}

func TestRun_DisabledDoesNothing(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false

	s := store.New(nil, 20)
	svc := NewService(cfg, s, rand.New(rand.NewSource(1)))

	done := make(chan struct{})
	go func() {
		svc.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disabled simulator should return immediately")
	}

	current, _ := s.CurrentOccupancy()
	assert.Equal(t, 0, current)
}
