package encode

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
	Text []string `pos:"true" optional:"true" help:"Text to encode. If none provided, reads lines from stdin."`
	Clip bool     `short:"c" help:"Also copy the encoded output to the system clipboard." default:"false"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "encode [text...]",
		Short:       "Encode text to morse code",
		Long:        "Convert text to morse code. Characters outside the code table are silently dropped.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(params, os.Stdin, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "encode: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func Run(params *Params, stdin io.Reader, stdout io.Writer) error {
	lines, err := common.InputLines(params.Text, stdin)
	if err != nil {
		return err
	}
	encoded := lo.Map(lines, func(line string, _ int) string { return morse.Encode(line) })
	for _, line := range encoded {
		fmt.Fprintln(stdout, line)
	}
	if params.Clip {
		if err := clipboardWriteAll(strings.Join(encoded, "\n")); err != nil {
			return fmt.Errorf("failed to write to clipboard: %w", err)
		}
	}
	return nil
}
