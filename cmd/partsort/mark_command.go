package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMarkCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mark <root> <gender/category/pNN>",
		Short: "Mark an identity reviewed without relocating it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if _, err := validateRoot(args[0]); err != nil {
				return err
			}
			key, err := parseKeyArg(cfg.PartsCatalog(), args[1])
			if err != nil {
				return err
			}

			store, err := ctx.openHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.MarkReviewed(cmd.Context(), key); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Marked %s reviewed.\n", key.String())
			return nil
		},
	}
	return cmd
}
