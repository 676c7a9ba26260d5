package morse

import (
	"reflect"
	"testing"
	"time"
)

func testConfig(wpm, farnsworth float64) Config {
	return Config{WPM: wpm, Farnsworth: farnsworth, Pitch: 700, Volume: 80}
}

func TestSequence_SOSTimings(t *testing.T) {
	events, err := Sequence("... --- ...", testConfig(20, 0))
	if err != nil {
		t.Fatalf("Sequence failed: %v", err)
	}

	// 3 characters of 3 symbols each: 9 On events, 6 symbol gaps, 2 char gaps.
	if len(events) != 17 {
		t.Fatalf("expected 17 events, got %d", len(events))
	}

	// At 20 WPM one unit is 60 ms.
	if d := events[0].DurationMs; d != 60 {
		t.Errorf("dot duration = %v ms, want 60", d)
	}
	if d := events[1].DurationMs; d != 60 || events[1].On {
		t.Errorf("symbol gap = %v ms (on=%v), want 60 ms off", d, events[1].On)
	}
	if d := events[5].DurationMs; d != 180 || events[5].On {
		t.Errorf("character gap = %v ms (on=%v), want 180 ms off", d, events[5].On)
	}
	// The O dashes.
	if d := events[6].DurationMs; d != 180 || !events[6].On {
		t.Errorf("dash duration = %v ms (on=%v), want 180 ms on", d, events[6].On)
	}

	// Dash is always exactly 3x dot.
	if events[6].DurationMs != 3*events[0].DurationMs {
		t.Errorf("dash/dot ratio = %v, want 3", events[6].DurationMs/events[0].DurationMs)
	}
}

func TestSequence_SourceIndexes(t *testing.T) {
	events, err := Sequence(".- / -...", testConfig(20, 0))
	if err != nil {
		t.Fatalf("Sequence failed: %v", err)
	}
	var onIndexes []int
	for _, ev := range events {
		if ev.On {
			onIndexes = append(onIndexes, ev.SourceIndex)
		} else if ev.SourceIndex != -1 {
			t.Errorf("gap event has source index %d, want -1", ev.SourceIndex)
		}
	}
	// "A B": A is character 0, the space is 1, B is 2.
	want := []int{0, 0, 2, 2, 2, 2}
	if !reflect.DeepEqual(onIndexes, want) {
		t.Errorf("on-event source indexes = %v, want %v", onIndexes, want)
	}
}

func TestSequence_WordGap(t *testing.T) {
	events, err := Sequence(".- / -...", testConfig(20, 0))
	if err != nil {
		t.Fatalf("Sequence failed: %v", err)
	}
	// .- [gap] / -... => events: on, off, on, WORDGAP, on, off, on, off, on, off, on
	if d := events[3].DurationMs; d != 7*60 || events[3].On {
		t.Errorf("word gap = %v ms (on=%v), want 420 ms off", d, events[3].On)
	}
}

func TestSequence_Farnsworth(t *testing.T) {
	fast, err := Sequence(".- / -...", testConfig(20, 0))
	if err != nil {
		t.Fatalf("Sequence failed: %v", err)
	}
	slow, err := Sequence(".- / -...", testConfig(20, 10))
	if err != nil {
		t.Fatalf("Sequence failed: %v", err)
	}

	// Symbol durations and symbol gaps are untouched.
	if fast[0].DurationMs != slow[0].DurationMs {
		t.Errorf("farnsworth changed dot duration: %v vs %v", fast[0].DurationMs, slow[0].DurationMs)
	}
	if fast[1].DurationMs != slow[1].DurationMs {
		t.Errorf("farnsworth changed symbol gap: %v vs %v", fast[1].DurationMs, slow[1].DurationMs)
	}
	// Word gap stretches: 7 * 1200/10 = 840 ms instead of 420 ms.
	if slow[3].DurationMs != 840 {
		t.Errorf("farnsworth word gap = %v ms, want 840", slow[3].DurationMs)
	}
	if slow[3].DurationMs <= fast[3].DurationMs {
		t.Errorf("farnsworth word gap %v not longer than %v", slow[3].DurationMs, fast[3].DurationMs)
	}
}

func TestSequence_FarnsworthInactiveWhenNotSlower(t *testing.T) {
	for _, farnsworth := range []float64{0, 20, 25} {
		events, err := Sequence("... ---", testConfig(20, farnsworth))
		if err != nil {
			t.Fatalf("Sequence failed: %v", err)
		}
		if d := events[5].DurationMs; d != 180 {
			t.Errorf("farnsworth=%v: character gap = %v ms, want 180", farnsworth, d)
		}
	}
}

func TestSequence_UnitShrinksWithWPM(t *testing.T) {
	prev := 1e9
	for _, wpm := range []float64{5, 10, 20, 40} {
		events, err := Sequence(".", testConfig(wpm, 0))
		if err != nil {
			t.Fatalf("Sequence failed: %v", err)
		}
		if d := events[0].DurationMs; d >= prev {
			t.Errorf("dot at %v wpm = %v ms, not shorter than %v ms", wpm, d, prev)
		} else {
			prev = d
		}
	}
}

func TestSequence_Empty(t *testing.T) {
	for _, code := range []string{"", "/", " / / ", "   "} {
		events, err := Sequence(code, testConfig(20, 0))
		if err != nil {
			t.Fatalf("Sequence(%q) failed: %v", code, err)
		}
		if len(events) != 0 {
			t.Errorf("Sequence(%q) = %d events, want 0", code, len(events))
		}
		if d := TotalDuration(events); d != 0 {
			t.Errorf("Sequence(%q) total duration = %v, want 0", code, d)
		}
	}
}

func TestSequence_InvalidConfig(t *testing.T) {
	bad := []Config{
		{WPM: 0, Pitch: 700, Volume: 80},
		{WPM: -5, Pitch: 700, Volume: 80},
		{WPM: 20, Farnsworth: -1, Pitch: 700, Volume: 80},
		{WPM: 20, Pitch: 0, Volume: 80},
		{WPM: 20, Pitch: 700, Volume: 101},
	}
	for _, cfg := range bad {
		if _, err := Sequence("...", cfg); err == nil {
			t.Errorf("Sequence with config %+v did not fail", cfg)
		}
	}
}

func TestSequence_Deterministic(t *testing.T) {
	a, _ := Sequence("... --- ...", testConfig(17, 9))
	b, _ := Sequence("... --- ...", testConfig(17, 9))
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different sequences")
	}
}

func TestTotalDuration(t *testing.T) {
	events, err := Sequence("... --- ...", testConfig(20, 0))
	if err != nil {
		t.Fatalf("Sequence failed: %v", err)
	}
	// SOS: 9 signals (3+9+3 units) + 6 symbol gaps + 2 char gaps = 27 units.
	if d := TotalDuration(events); d != 27*60*time.Millisecond {
		t.Errorf("total duration = %v, want %v", d, 27*60*time.Millisecond)
	}
}

func TestParseSoundType(t *testing.T) {
	if st, err := ParseSoundType("tone"); err != nil || st != SoundTone {
		t.Errorf("ParseSoundType(tone) = %v, %v", st, err)
	}
	if st, err := ParseSoundType("click"); err != nil || st != SoundClick {
		t.Errorf("ParseSoundType(click) = %v, %v", st, err)
	}
	if _, err := ParseSoundType("bell"); err == nil {
		t.Error("ParseSoundType(bell) did not fail")
	}
}
