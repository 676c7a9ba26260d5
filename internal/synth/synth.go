// Package synth turns timing sequences into sound: offline into a mono
// sample buffer, or live against the shared speaker output.
package synth

import (
	"math"

	"github.com/gigurra/ditdah/internal/morse"
)

const (
	// SampleRate is the fixed rate for both offline rendering and playback.
	SampleRate = 44100

	rampMs     = 5.0   // linear fade at both ends of a tone segment
	clickHz    = 100.0 // fixed square-wave frequency for click sound
	clickCapMs = 30.0  // click length cap; remainder of the segment is silent
	tailMs     = 500.0 // silence appended after the last event when rendering
)

func msToSamples(ms float64) int {
	return int(math.Round(ms * SampleRate / 1000))
}

// sampleAt computes the amplitude of sample i within an On segment of n
// samples. Tones ramp linearly over the first and last 5 ms to avoid clicks
// at the on/off transitions; for segments shorter than 10 ms the ramps
// overlap at the midpoint. Clicks are intentionally percussive: a square
// wave with no ramp, capped at 30 ms.
func sampleAt(cfg morse.Config, i, n int) float64 {
	amp := float64(cfg.Volume) / 100

	if cfg.Sound == morse.SoundClick {
		if i >= min(msToSamples(clickCapMs), n) {
			return 0
		}
		if math.Sin(2*math.Pi*clickHz*float64(i)/SampleRate) < 0 {
			return -amp
		}
		return amp
	}

	v := math.Sin(2 * math.Pi * cfg.Pitch * float64(i) / SampleRate)
	env := 1.0
	if ramp := msToSamples(rampMs); ramp > 0 {
		if in := float64(i) / float64(ramp); in < env {
			env = in
		}
		if out := float64(n-1-i) / float64(ramp); out < env {
			env = out
		}
		if env < 0 {
			env = 0
		}
	}
	return v * env * amp
}

// Render synthesizes the full event sequence into a mono sample buffer at
// SampleRate, appending a 500 ms silent tail so trailing envelopes and
// clicks fully decay. It is pure and deterministic; an empty sequence yields
// a buffer containing only the tail.
func Render(events []morse.Event, cfg morse.Config) ([]float64, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	total := 0
	for _, ev := range events {
		total += msToSamples(ev.DurationMs)
	}
	out := make([]float64, total+msToSamples(tailMs))

	pos := 0
	for _, ev := range events {
		n := msToSamples(ev.DurationMs)
		if ev.On {
			for i := 0; i < n; i++ {
				out[pos+i] = sampleAt(cfg, i, n)
			}
		}
		pos += n
	}
	return out, nil
}
