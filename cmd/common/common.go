package common

import (
	"bufio"
	"io"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/ditdah/internal/morse"
)

func DefaultParamEnricher() boa.ParamEnricher {
	return boa.ParamEnricherCombine(
		boa.ParamEnricherBool,
		boa.ParamEnricherName,
		boa.ParamEnricherShort,
	)
}

// ParseConfig builds and validates an engine config from the shared
// speed/audio flags.
func ParseConfig(wpm, farnsworth, pitch float64, volume int, sound string) (morse.Config, error) {
	st, err := morse.ParseSoundType(sound)
	if err != nil {
		return morse.Config{}, err
	}
	cfg := morse.Config{
		WPM:        wpm,
		Farnsworth: farnsworth,
		Pitch:      pitch,
		Volume:     volume,
		Sound:      st,
	}
	if err := cfg.Validate(); err != nil {
		return morse.Config{}, err
	}
	return cfg, nil
}

// InputLines returns the positional args joined as a single line, or, when
// none are given, the lines read from stdin.
func InputLines(args []string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}
	var lines []string
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
