package morse

import "fmt"

// SoundType selects the waveform used for On segments.
type SoundType int

const (
	SoundTone  SoundType = iota // sine at the configured pitch
	SoundClick                  // fixed low-frequency square, percussive
)

func (s SoundType) String() string {
	switch s {
	case SoundClick:
		return "click"
	default:
		return "tone"
	}
}

// ParseSoundType parses a sound type from its flag value.
func ParseSoundType(s string) (SoundType, error) {
	switch s {
	case "tone":
		return SoundTone, nil
	case "click":
		return SoundClick, nil
	default:
		return SoundTone, fmt.Errorf("unknown sound type %q (expected tone or click)", s)
	}
}

// Config holds the speed and audio settings for timing and synthesis.
type Config struct {
	WPM        float64   // character speed in words per minute (PARIS = 50 units)
	Farnsworth float64   // spacing speed in WPM; active only when 0 < Farnsworth < WPM
	Pitch      float64   // tone frequency in Hz
	Volume     int       // 0-100
	Sound      SoundType
}

// Validate rejects configurations that would produce non-finite timing or
// out-of-range amplitudes.
func (c Config) Validate() error {
	if c.WPM <= 0 {
		return fmt.Errorf("invalid config: wpm must be positive, got %v", c.WPM)
	}
	if c.Farnsworth < 0 {
		return fmt.Errorf("invalid config: farnsworth must be non-negative, got %v", c.Farnsworth)
	}
	if c.Pitch <= 0 {
		return fmt.Errorf("invalid config: pitch must be positive, got %v", c.Pitch)
	}
	if c.Volume < 0 || c.Volume > 100 {
		return fmt.Errorf("invalid config: volume must be 0-100, got %d", c.Volume)
	}
	return nil
}

// unitMs is the base timing quantum: sending "PARIS" once is 50 units,
// so one unit lasts 1200/WPM milliseconds.
func (c Config) unitMs() float64 {
	return 1200 / c.WPM
}

// spacingUnitMs is the unit used for inter-character and word gaps. A
// Farnsworth speed below the character speed stretches only these gaps.
func (c Config) spacingUnitMs() float64 {
	if c.Farnsworth > 0 && c.Farnsworth < c.WPM {
		return 1200 / c.Farnsworth
	}
	return c.unitMs()
}
