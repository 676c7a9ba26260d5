package decode

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/atotto/clipboard"
	"github.com/gigurra/ditdah/cmd/common"
	"github.com/gigurra/ditdah/internal/morse"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var clipboardWriteAll = clipboard.WriteAll

type Params struct {
	Code []string `pos:"true" optional:"true" help:"Morse code to decode. If none provided, reads lines from stdin."`
	Clip bool     `short:"c" help:"Also copy the decoded output to the system clipboard." default:"false"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "decode [code...]",
		Short:       "Decode morse code to text",
		Long:        "Convert morse code back to text. Codes without a mapping are silently dropped.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(params, os.Stdin, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "decode: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func Run(params *Params, stdin io.Reader, stdout io.Writer) error {
	lines, err := common.InputLines(params.Code, stdin)
	if err != nil {
		return err
	}
	decoded := lo.Map(lines, func(line string, _ int) string { return morse.Decode(line) })
	for _, line := range decoded {
		fmt.Fprintln(stdout, line)
	}
	if params.Clip {
		if err := clipboardWriteAll(strings.Join(decoded, "\n")); err != nil {
			return fmt.Errorf("failed to write to clipboard: %w", err)
		}
	}
	return nil
}
