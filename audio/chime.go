package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const (
	chimeDuration   = 600 * time.Millisecond
	chimeAttack     = 5 * time.Millisecond
	chimeRelease    = 550 * time.Millisecond
	overtoneRelease = 200 * time.Millisecond

	chimeFundamentalHz = 880.0  // A5
	chimeOvertoneHz    = 1760.0 // A6
	chimeAmplitude     = 0.25
	overtoneMix        = 0.3
)

// ChimeGenerator streams a short two-partial bell tone and then ends
type ChimeGenerator struct {
	sr      beep.SampleRate
	pos     int
	total   int
	attack  int
	release int
	overRel int
}

// NewChimeGenerator creates a chime at sample rate sr
func NewChimeGenerator(sr beep.SampleRate) *ChimeGenerator {
	return &ChimeGenerator{
		sr:      sr,
		total:   sr.N(chimeDuration),
		attack:  sr.N(chimeAttack),
		release: sr.N(chimeRelease),
		overRel: sr.N(overtoneRelease),
	}
}

// Len is the chime length in samples
func (g *ChimeGenerator) Len() int {
	return g.total
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)

		fund := math.Sin(2*math.Pi*chimeFundamentalHz*t) * envelope(g.pos, g.total, g.attack, g.release)
		over := math.Sin(2*math.Pi*chimeOvertoneHz*t) * envelope(g.pos, g.total, g.attack, g.overRel)
		sample := chimeAmplitude * ((1-overtoneMix)*fund + overtoneMix*over)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// envelope is a linear attack/release gain for sample i of total
func envelope(i, total, attack, release int) float64 {
	releaseStart := total - release
	if releaseStart < attack {
		releaseStart = attack
	}
	switch {
	case i < attack && attack > 0:
		return float64(i) / float64(attack)
	case i >= releaseStart && release > 0:
		return float64(total-i) / float64(release)
	}
	return 1.0
}
