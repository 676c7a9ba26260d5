package morse

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

// Timing in units: dot = 1, dash = 3, gap between symbols = 1, between
// characters = 3, between words = 7.
const (
	dotUnits     = 1
	dashUnits    = 3
	symbolGap    = 1
	characterGap = 3
	wordGapUnits = 7
)

// Event is one signal or gap interval. On events carry the index of the
// character they originate from; gaps have SourceIndex -1.
type Event struct {
	On          bool
	DurationMs  float64
	SourceIndex int
}

// Sequence turns a code string (as produced by Encode) into an ordered
// sequence of signal and gap events. It is pure and deterministic: identical
// inputs always yield identical sequences, which live playback and file
// rendering both rely on. An empty or separator-only code string yields an
// empty sequence.
func Sequence(code string, cfg Config) ([]Event, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	unit := cfg.unitMs()
	spacing := cfg.spacingUnitMs()

	var words [][]string
	for _, w := range strings.Split(code, WordSeparator) {
		if chars := strings.Fields(w); len(chars) > 0 {
			words = append(words, chars)
		}
	}

	var events []Event
	src := 0
	for wi, chars := range words {
		if wi > 0 {
			events = append(events, Event{DurationMs: wordGapUnits * spacing, SourceIndex: -1})
			src++ // the space between words
		}
		for ci, char := range chars {
			if ci > 0 {
				events = append(events, Event{DurationMs: characterGap * spacing, SourceIndex: -1})
			}
			for si, sym := range char {
				if si > 0 {
					// Symbol gaps are never stretched by Farnsworth.
					events = append(events, Event{DurationMs: symbolGap * unit, SourceIndex: -1})
				}
				d := dotUnits * unit
				if sym == '-' {
					d = dashUnits * unit
				}
				events = append(events, Event{On: true, DurationMs: d, SourceIndex: src})
			}
			src++
		}
	}
	return events, nil
}

// TotalDuration sums the duration of all events in a sequence.
func TotalDuration(events []Event) time.Duration {
	ms := lo.SumBy(events, func(ev Event) float64 { return ev.DurationMs })
	return time.Duration(ms * float64(time.Millisecond))
}
