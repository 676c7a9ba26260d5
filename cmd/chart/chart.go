package chart

import (
	"fmt"
	"io"
	"os"
	"sort"
	"unicode"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/ditdah/cmd/common"
	"github.com/gigurra/ditdah/internal/morse"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type Params struct {
	Compact bool `short:"c" help:"Print without table borders." default:"false"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "chart",
		Short:       "Print the morse code table",
		Long:        "Print the full character to morse code table, grouped into letters, digits and punctuation.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			Run(params, os.Stdout)
		},
	}.ToCobra()
}

func Run(params *Params, stdout io.Writer) {
	chars := lo.Keys(morse.CodeTable)
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })

	groups := lo.GroupBy(chars, func(r rune) string {
		switch {
		case unicode.IsLetter(r):
			return "Letters"
		case unicode.IsDigit(r):
			return "Digits"
		default:
			return "Punctuation"
		}
	})

	t := table.NewWriter()
	t.SetOutputMirror(stdout)
	t.SetStyle(table.StyleLight)
	if params.Compact {
		t.Style().Options = table.OptionsNoBordersAndSeparators
	}
	t.AppendHeader(table.Row{"Char", "Code"})

	for _, group := range []string{"Letters", "Digits", "Punctuation"} {
		for _, r := range groups[group] {
			t.AppendRow(table.Row{fmt.Sprintf("%c", r), morse.CodeTable[r]})
		}
		t.AppendSeparator()
	}
	t.Render()
}
