package main

import (
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tsawler/redaction/model"
	"github.com/tsawler/redaction/verify"
)

func countsCmd(a *app) *cobra.Command {
	var (
		flags loadFlags
		lang  string
	)

	cmd := &cobra.Command{
		Use:   "counts <file>...",
		Short: "Summarize items by level and page",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := language.Parse(lang)
			if err != nil {
				return err
			}
			items, orderer, err := a.loadAll(cmd.Context(), flags, args)
			if err != nil {
				return err
			}
			s := verify.NewSession(orderer, a.logger, items...)
			writeCounts(message.NewPrinter(tag), cmd, s.Counts())
			return nil
		},
	}
	addLoadFlags(cmd, &flags)
	cmd.Flags().StringVar(&lang, "lang", "en", "language tag used to format numbers")
	return cmd
}

func writeCounts(p *message.Printer, cmd *cobra.Command, c verify.Counts) {
	out := cmd.OutOrStdout()
	p.Fprintf(out, "Total:      %d\n", c.Total)
	p.Fprintf(out, "Redactions: %d\n", c.Redactions)
	p.Fprintf(out, "Clues:      %d\n", c.Clues)
	p.Fprintf(out, "Unplaced:   %d\n", c.Unplaced)
	p.Fprintf(out, "Viewed:     %d of %d\n", c.Viewed, c.Total)

	p.Fprintln(out, "\nBy level:")
	for _, level := range model.ConfidenceLevels {
		if n := c.ByLevel[level]; n > 0 {
			p.Fprintf(out, "  %-8s %d\n", level, n)
		}
	}

	pages := make([]int, 0, len(c.ByPage))
	for page := range c.ByPage {
		pages = append(pages, page)
	}
	slices.Sort(pages)
	if len(pages) > 0 {
		p.Fprintln(out, "\nBy page:")
	}
	for _, page := range pages {
		p.Fprintf(out, "  %-8d %d\n", page, c.ByPage[page])
	}
}
