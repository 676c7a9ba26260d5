//go:build (linux && cgo) || windows || darwin

package synth

import (
	"sync"

	"github.com/gigurra/ditdah/internal/morse"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// AudioAvailable indicates whether audio playback is supported in this build.
const AudioAvailable = true

// Output wraps the process-wide speaker. It is acquired lazily on first use
// and reused across sessions; it is never torn down implicitly.
type Output struct {
	mu          sync.Mutex
	initialized bool
}

func NewOutput() *Output {
	return &Output{}
}

func (o *Output) acquire() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.initialized {
		return nil
	}
	if err := speaker.Init(beep.SampleRate(SampleRate), SampleRate/10); err != nil {
		return err
	}
	o.initialized = true
	return nil
}

// play schedules the event sequence on the speaker and returns a cancel
// function that detaches the streamer, guaranteeing nothing scheduled here
// sounds after cancellation.
func (o *Output) play(events []morse.Event, cfg morse.Config) (cancel func()) {
	ctrl := &beep.Ctrl{Streamer: newEventStreamer(events, cfg)}
	speaker.Play(ctrl)
	return func() {
		speaker.Lock()
		ctrl.Paused = true
		ctrl.Streamer = nil
		speaker.Unlock()
	}
}

// eventStreamer synthesizes the event sequence sample by sample, sharing the
// per-segment waveform rule with offline rendering.
type eventStreamer struct {
	events []morse.Event
	counts []int // samples per event
	cfg    morse.Config
	event  int
	pos    int
}

func newEventStreamer(events []morse.Event, cfg morse.Config) *eventStreamer {
	counts := make([]int, len(events))
	for i, ev := range events {
		counts[i] = msToSamples(ev.DurationMs)
	}
	return &eventStreamer{events: events, counts: counts, cfg: cfg}
}

func (st *eventStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		for st.event < len(st.events) && st.pos >= st.counts[st.event] {
			st.event++
			st.pos = 0
		}
		if st.event >= len(st.events) {
			return i, false
		}
		var v float64
		if ev := st.events[st.event]; ev.On {
			v = sampleAt(st.cfg, st.pos, st.counts[st.event])
		}
		samples[i][0] = v
		samples[i][1] = v
		st.pos++
	}
	return len(samples), true
}

func (st *eventStreamer) Err() error {
	return nil
}
