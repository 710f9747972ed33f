package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/redaction/exemption"
)

func codesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "codes [catalog.xml]",
		Short: "List the codes of an exemption catalog",
		Long: `List the codes of an exemption catalog. Without an argument the catalog
named by REDACTION_EXEMPTION_CATALOG is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.ExemptionCatalog
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("no exemption catalog given")
			}
			c, err := exemption.Load(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%d codes)\n", c.Category, c.Len())
			for _, code := range c.Codes() {
				fmt.Fprintf(out, "  %-12s %s\n", code.Name, code.Summary)
			}
			return nil
		},
	}
}
