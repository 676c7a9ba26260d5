package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/ditdah/cmd/common"
	"github.com/gigurra/ditdah/internal/morse"
	"github.com/gigurra/ditdah/internal/synth"
	"github.com/gigurra/ditdah/internal/wav"
	"github.com/spf13/cobra"
)

type Params struct {
	Text       []string `pos:"true" optional:"true" help:"Text to render. If none provided, reads from stdin."`
	Output     string   `short:"o" help:"Output WAV file path." default:"morse.wav"`
	WPM        float64  `short:"w" help:"Words per minute (character speed)." default:"15"`
	Farnsworth float64  `short:"f" help:"Farnsworth spacing speed in WPM (0 disables)." default:"0"`
	Pitch      float64  `short:"p" help:"Tone pitch in Hz." default:"700"`
	Volume     int      `short:"v" help:"Volume, 0-100." default:"80"`
	Sound      string   `short:"s" help:"Waveform: tone or click." default:"tone"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "render [text...]",
		Short:       "Render text as a morse code WAV file",
		Long:        "Encode text, synthesize it offline and write a mono 16-bit PCM WAV file (44.1 kHz).",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(params, os.Stdin, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "render: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func Run(params *Params, stdin io.Reader, stdout io.Writer) error {
	cfg, err := common.ParseConfig(params.WPM, params.Farnsworth, params.Pitch, params.Volume, params.Sound)
	if err != nil {
		return err
	}

	lines, err := common.InputLines(params.Text, stdin)
	if err != nil {
		return err
	}
	code := morse.Encode(strings.Join(lines, " "))

	events, err := morse.Sequence(code, cfg)
	if err != nil {
		return err
	}
	samples, err := synth.Render(events, cfg)
	if err != nil {
		return err
	}

	data := wav.Encode(samples, synth.SampleRate)
	if err := os.WriteFile(params.Output, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", params.Output, err)
	}

	fmt.Fprintf(stdout, "wrote %s (%d bytes, %v)\n", params.Output, len(data), morse.TotalDuration(events))
	return nil
}
