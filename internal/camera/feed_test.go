package camera

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeed_StartsStopped(t *testing.T) {
	f := NewFeed(10 * time.Millisecond)
	live, frame := f.Status()
	assert.False(t, live)
	assert.Equal(t, 0, frame)
}

func TestFeed_AdvancesWhileLive(t *testing.T) {
	f := NewFeed(5 * time.Millisecond)
	defer f.Close()

	f.SetLive(true)
	require.Eventually(t, func() bool {
		_, frame := f.Status()
		return frame > 0
	}, time.Second, time.Millisecond)
}

func TestFeed_StopsWhenToggledOff(t *testing.T) {
	f := NewFeed(5 * time.Millisecond)
	f.SetLive(true)
	require.Eventually(t, func() bool {
		_, frame := f.Status()
		return frame > 0
	}, time.Second, time.Millisecond)

	f.SetLive(false)
	time.Sleep(15 * time.Millisecond) // let any in-flight tick land
	_, frozen := f.Status()
	time.Sleep(30 * time.Millisecond)
	_, after := f.Status()
	assert.Equal(t, frozen, after)

	// Toggling back on resumes from where it stopped.
	f.SetLive(true)
	defer f.Close()
	require.Eventually(t, func() bool {
		_, frame := f.Status()
		return frame > frozen
	}, time.Second, time.Millisecond)
}

func TestFeed_SetLiveIsIdempotent(t *testing.T) {
	f := NewFeed(time.Hour)
	defer f.Close()

	// Repeated toggles with the same value must not panic or leak tickers.
	f.SetLive(true)
	f.SetLive(true)
	f.SetLive(false)
	f.SetLive(false)

	live, _ := f.Status()
	assert.False(t, live)
}

func TestFeed_Advance(t *testing.T) {
	f := NewFeed(time.Hour)
	f.Advance()
	f.Advance()
	_, frame := f.Status()
	assert.Equal(t, 2, frame)
}
