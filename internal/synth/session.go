package synth

import (
	"fmt"
	"sync"
	"time"

	"github.com/gigurra/ditdah/internal/morse"
)

// Segment describes one On interval for side-effect callbacks.
type Segment struct {
	DurationMs  float64
	SourceIndex int
}

// Sinks selects the output channels for a playback session. The engine only
// schedules the callbacks; rendering visual or haptic feedback is the
// caller's job.
type Sinks struct {
	Audio          bool
	OnSegmentStart func(Segment)
	OnSegmentEnd   func(Segment)
}

// Player schedules playback sessions against a shared Output. At most one
// session is active at a time; starting a new one stops the previous one
// first.
type Player struct {
	mu  sync.Mutex
	out *Output
	cur *Session
}

func NewPlayer(out *Output) *Player {
	return &Player{out: out}
}

// Play starts a new playback session for the event sequence. If a session is
// already active it is stopped first. When the audio sink is requested but
// the output device cannot be acquired, Play returns the acquisition error
// and no session is started; callers may retry with Sinks.Audio disabled.
func (p *Player) Play(events []morse.Event, cfg morse.Config, sinks Sinks) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cur != nil {
		p.cur.Stop()
		p.cur = nil
	}

	if sinks.Audio {
		if err := p.out.acquire(); err != nil {
			return nil, fmt.Errorf("audio output unavailable: %w", err)
		}
	}

	s := &Session{done: make(chan struct{})}

	var offset time.Duration
	for _, ev := range events {
		d := time.Duration(ev.DurationMs * float64(time.Millisecond))
		if ev.On {
			seg := Segment{DurationMs: ev.DurationMs, SourceIndex: ev.SourceIndex}
			if f := sinks.OnSegmentStart; f != nil {
				s.after(offset, func() { f(seg) })
			}
			if f := sinks.OnSegmentEnd; f != nil {
				s.after(offset+d, func() { f(seg) })
			}
		}
		offset += d
	}
	// Natural completion, scheduled with a small grace period so end
	// callbacks at the exact total duration fire before the session closes.
	s.after(offset+50*time.Millisecond, s.Stop)

	if sinks.Audio {
		s.attachAudio(p.out.play(events, cfg))
	}

	p.cur = s
	return s, nil
}

// Stop stops the active session, if any.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cur != nil {
		p.cur.Stop()
		p.cur = nil
	}
}

// Active reports whether a session is currently running.
func (p *Player) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cur != nil && !p.cur.Stopped()
}

// Session owns the pending timer handles and the scheduled audio of one
// playback. It finishes either naturally, after the last event, or when
// Stop is called.
type Session struct {
	mu      sync.Mutex
	stopped bool
	timers  []*time.Timer
	silence func()
	done    chan struct{}
}

// after registers f to run at the given offset. The timer handle is owned by
// the session and cancelled on Stop; a callback that loses the race with
// Stop observes the stopped flag and returns without effect.
func (s *Session) after(offset time.Duration, f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	t := time.AfterFunc(offset, func() {
		s.mu.Lock()
		stopped := s.stopped
		s.mu.Unlock()
		if !stopped {
			f()
		}
	})
	s.timers = append(s.timers, t)
}

// attachAudio hands the session the cancel handle for its scheduled audio.
// If the session already stopped (zero-length sequences complete instantly),
// the audio is silenced right away instead of leaking past Stop.
func (s *Session) attachAudio(silence func()) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		silence()
		return
	}
	s.silence = silence
	s.mu.Unlock()
}

// Stop cancels every pending timer and silences any scheduled audio. It is
// idempotent and leaves no audible or visual residue.
func (s *Session) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	timers := s.timers
	s.timers = nil
	silence := s.silence
	s.silence = nil
	s.mu.Unlock()

	for _, t := range timers {
		t.Stop()
	}
	if silence != nil {
		silence()
	}
	close(s.done)
}

// Stopped reports whether the session has finished or been stopped.
func (s *Session) Stopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}

// Done is closed when the session finishes or is stopped.
func (s *Session) Done() <-chan struct{} {
	return s.done
}
