package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/redaction/model"
	"github.com/tsawler/redaction/store"
	"github.com/tsawler/redaction/verify"
)

func saveCmd(a *app) *cobra.Command {
	var flags loadFlags

	cmd := &cobra.Command{
		Use:   "save <name> <file>...",
		Short: "Store the ordered items as a named review session",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			items, orderer, err := a.loadAll(ctx, flags, args[1:])
			if err != nil {
				return err
			}
			s := verify.NewSession(orderer, a.logger, items...)

			st, err := store.Open(ctx, a.cfg.DBPath, a.logger)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Save(ctx, name, s.Rows()); err != nil {
				return err
			}
			a.logger.Info("Session saved", zap.String("name", name), zap.Int("rows", s.Len()), zap.String("db", a.cfg.DBPath))
			fmt.Fprintf(cmd.OutOrStdout(), "saved %d rows as %q\n", s.Len(), name)
			return nil
		},
	}
	addLoadFlags(cmd, &flags)
	return cmd
}

func showCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [name]",
		Short: "Print a stored session, or list sessions when no name is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			st, err := store.Open(ctx, a.cfg.DBPath, a.logger)
			if err != nil {
				return err
			}
			defer st.Close()

			if len(args) == 0 {
				infos, err := st.List(ctx)
				if err != nil {
					return err
				}
				for _, info := range infos {
					fmt.Fprintf(out, "%-24s %5d rows  %s\n", info.Name, info.Rows, info.SavedAt.Local().Format(time.DateTime))
				}
				return nil
			}

			rows, err := st.Load(ctx, args[0])
			if err != nil {
				return err
			}
			orderer, err := a.orderer()
			if err != nil {
				return err
			}
			s := verify.NewSessionFromRows(orderer, a.logger, rows)

			items := make([]*model.Redaction, 0, s.Len())
			viewed := 0
			for _, row := range s.Rows() {
				items = append(items, row.Item)
				if row.Viewed {
					viewed++
				}
			}
			writeItems(out, orderer, items)
			fmt.Fprintf(out, "\n%d of %d viewed\n", viewed, len(items))
			return nil
		},
	}
}
