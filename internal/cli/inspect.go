package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mgpai22/minutebook/internal/subtitle"
	"github.com/spf13/cobra"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file ...]",
		Short: "Summarize recognized entries per minute",
		Long: `Inspect parses each transcript the same way as the default command and
prints a table with one row per minute: how many entries were recognized in
each timestamp style, and the word and character counts of the paragraph.

Examples:
  minutebook inspect talk.srt
  cat talk.txt | minutebook inspect`,
		Args: cobra.ArbitraryArgs,
		RunE: a.runInspect,
	}
}

func (a *app) runInspect(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	style := table.StyleDefault
	if isTerminal(out) {
		style = table.StyleRounded
	}

	for i, source := range resolveSources(args) {
		transcript, err := a.readSource(cmd, source)
		if err != nil {
			return err
		}

		stats := subtitle.Stats(subtitle.Parse(transcript))
		a.logger.Infow("Inspected source",
			"source", displayName(source),
			"minutes", len(stats),
		)

		if i > 0 {
			fmt.Fprintln(out)
		}
		writeInspectReport(out, displayName(source), stats, style)
	}

	return nil
}

func writeInspectReport(
	w io.Writer,
	name string,
	stats []subtitle.MinuteStats,
	style table.Style,
) {
	header := fmt.Sprintf("== %s ==", name)
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("-", len(header)))

	if len(stats) == 0 {
		fmt.Fprintln(w, "no entries recognized")
		return
	}

	tw := table.NewWriter()
	tw.SetStyle(style)
	tw.AppendHeader(table.Row{"Minute", "Entries", "Bracket", "Block", "Words", "Characters"})

	var entries, bracket, block, words, characters int
	for _, s := range stats {
		tw.AppendRow(table.Row{
			fmt.Sprintf("%02d", s.Minute),
			s.Entries,
			s.Formats[subtitle.FormatBracket],
			s.Formats[subtitle.FormatBlock],
			s.Words,
			s.Characters,
		})
		entries += s.Entries
		bracket += s.Formats[subtitle.FormatBracket]
		block += s.Formats[subtitle.FormatBlock]
		words += s.Words
		characters += s.Characters
	}
	tw.AppendFooter(table.Row{"Total", entries, bracket, block, words, characters})

	columnConfigs := make([]table.ColumnConfig, 0, 6)
	for i := 1; i <= 6; i++ {
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i,
			Align:       text.AlignRight,
			AlignHeader: text.AlignLeft,
			AlignFooter: text.AlignRight,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	fmt.Fprintln(w, tw.Render())
}
