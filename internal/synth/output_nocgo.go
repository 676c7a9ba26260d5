//go:build linux && !cgo

package synth

import (
	"errors"

	"github.com/gigurra/ditdah/internal/morse"
)

// AudioAvailable indicates whether audio playback is supported in this build.
const AudioAvailable = false

var errNoAudio = errors.New("audio playback requires CGO on Linux")

// Output is a stub on platforms without audio support. Acquisition fails
// with a recoverable error so callers can fall back to visual-only sinks.
type Output struct{}

func NewOutput() *Output {
	return &Output{}
}

func (o *Output) acquire() error {
	return errNoAudio
}

func (o *Output) play(events []morse.Event, cfg morse.Config) (cancel func()) {
	return func() {}
}
