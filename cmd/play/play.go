package play

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/charmbracelet/lipgloss"
	"github.com/gigurra/ditdah/cmd/common"
	"github.com/gigurra/ditdah/internal/morse"
	"github.com/gigurra/ditdah/internal/synth"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type Params struct {
	Text       []string `pos:"true" optional:"true" help:"Text to play. If none provided, reads from stdin."`
	WPM        float64  `short:"w" help:"Words per minute (character speed)." default:"15"`
	Farnsworth float64  `short:"f" help:"Farnsworth spacing speed in WPM (0 disables)." default:"0"`
	Pitch      float64  `short:"p" help:"Tone pitch in Hz." default:"700"`
	Volume     int      `short:"v" help:"Volume, 0-100." default:"80"`
	Sound      string   `short:"s" help:"Waveform: tone or click." default:"tone"`
	Flash      bool     `help:"Flash a block in the terminal for each signal." default:"false"`
	NoSound    bool     `long:"no-sound" help:"Disable the audio sink." default:"false"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "play [text...]",
		Short:       "Play text as morse code audio",
		Long:        "Encode text and play it in real time through the speaker. Use --flash for a visual signal, --no-sound to flash only.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(params, os.Stdin, os.Stdout, os.Stderr); err != nil {
				fmt.Fprintf(os.Stderr, "play: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func Run(params *Params, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := common.ParseConfig(params.WPM, params.Farnsworth, params.Pitch, params.Volume, params.Sound)
	if err != nil {
		return err
	}

	lines, err := common.InputLines(params.Text, stdin)
	if err != nil {
		return err
	}
	code := morse.Encode(strings.Join(lines, " "))
	fmt.Fprintln(stdout, code)

	events, err := morse.Sequence(code, cfg)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	sinks := synth.Sinks{Audio: !params.NoSound}
	flash := params.Flash && isTerminal(stdout)
	if flash {
		block := lipgloss.NewStyle().Reverse(true).Render("  ")
		sinks.OnSegmentStart = func(synth.Segment) { fmt.Fprint(stdout, block) }
		sinks.OnSegmentEnd = func(synth.Segment) { fmt.Fprint(stdout, "\r\033[K") }
	}
	if !sinks.Audio && !flash {
		return fmt.Errorf("no output channel: --no-sound requires --flash on a terminal")
	}

	player := synth.NewPlayer(synth.NewOutput())
	session, err := player.Play(events, cfg, sinks)
	if err != nil && sinks.Audio && flash {
		// Audio device unavailable: degrade to the visual sink.
		fmt.Fprintf(stderr, "play: %v (continuing with --flash only)\n", err)
		sinks.Audio = false
		session, err = player.Play(events, cfg, sinks)
	}
	if err != nil {
		return err
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-session.Done():
	case <-sigChan:
		session.Stop()
		if flash {
			fmt.Fprint(stdout, "\r\033[K")
		}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
