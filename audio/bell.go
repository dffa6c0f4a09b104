package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	speakerBuffer = 100 * time.Millisecond

	// A burst of highlights rings once
	minRingInterval = 500 * time.Millisecond
)

// Bell plays a chime for highlights and private messages
// All methods are safe on a Bell that was never initialized or failed to
// open a device; they do nothing in that case.
type Bell struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	enabled     bool
	lastRing    time.Time
	now         func() time.Time
}

// NewBell creates an enabled bell with no audio device attached yet
func NewBell() *Bell {
	return &Bell{
		mixer:   &beep.Mixer{},
		enabled: true,
		now:     time.Now,
	}
}

// Initialize opens the speaker and starts the mixer
func (b *Bell) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(speakerBuffer)); err != nil {
		return err
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// SetEnabled mutes or unmutes the bell without closing the device
func (b *Bell) SetEnabled(on bool) {
	b.mu.Lock()
	b.enabled = on
	b.mu.Unlock()
}

// Enabled reports whether Ring makes sound
func (b *Bell) Enabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.enabled
}

// Ring queues one chime, reporting whether it was queued
func (b *Bell) Ring() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized || !b.enabled {
		return false
	}
	now := b.now()
	if !b.lastRing.IsZero() && now.Sub(b.lastRing) < minRingInterval {
		return false
	}
	b.lastRing = now

	speaker.Lock()
	b.mixer.Add(NewChimeGenerator(sampleRate))
	speaker.Unlock()
	return true
}

// Cleanup drops queued sounds and closes the speaker
func (b *Bell) Cleanup() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	b.initialized = false
}
