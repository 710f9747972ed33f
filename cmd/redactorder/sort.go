package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/redaction/exemption"
	"github.com/tsawler/redaction/model"
	"github.com/tsawler/redaction/order"
)

func addLoadFlags(cmd *cobra.Command, flags *loadFlags) {
	cmd.Flags().IntSliceVar(&flags.pages, "pages", nil, "only items touching these pages")
	cmd.Flags().StringSliceVar(&flags.levels, "levels", nil, "only these confidence levels (High, Medium, Low, Clue, Manual)")
}

func sortCmd(a *app) *cobra.Command {
	var flags loadFlags

	cmd := &cobra.Command{
		Use:   "sort <file>...",
		Short: "Print items in review order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, orderer, err := a.loadAll(cmd.Context(), flags, args)
			if err != nil {
				return err
			}
			order.SortStable(orderer, items)
			writeItems(cmd.OutOrStdout(), orderer, items)
			return nil
		},
	}
	addLoadFlags(cmd, &flags)
	return cmd
}

// writeItems prints one line per item
func writeItems(w io.Writer, orderer *order.Orderer, items []*model.Redaction) {
	for i, item := range items {
		if item == nil {
			continue
		}
		fmt.Fprintf(w, "%4d  %-1s  %-20s  %-12s  %s  %s\n",
			i+1,
			item.Confidence.ShortName(),
			item.ID,
			item.Category,
			position(orderer, item.Zones),
			exemption.FromModel(item.Exemptions))
	}
}

// position describes the zone an item is sorted by
func position(orderer *order.Orderer, zones model.RegionSet) string {
	first, ok := orderer.Topmost(zones)
	if !ok {
		return "-"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "p%d (%.0f, %.0f)", first.Page, first.Left, first.Top)
	if pages := zones.Pages(); len(pages) > 1 {
		fmt.Fprintf(&b, " +%d pages", len(pages)-1)
	}
	return b.String()
}
