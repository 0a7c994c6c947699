package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"partsort/internal/faults"
	"partsort/internal/parts"
	"partsort/internal/review"
	"partsort/internal/scanner"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show <root> <gender/category/pNN>",
		Short: "Show candidates and mask status for one identity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			root, err := validateRoot(args[0])
			if err != nil {
				return err
			}
			cat := cfg.PartsCatalog()
			key, err := parseKeyArg(cat, args[1])
			if err != nil {
				return err
			}

			idx, err := scanner.Scan(root, cat)
			if err != nil {
				return err
			}
			group := idx.Group(key)
			if group == nil {
				return faults.Wrap(faults.ErrNotFound, "show", "lookup identity", key.String(), nil)
			}

			if jsonOut {
				return writeJSON(cmd, buildListEntry(idx, key, nil))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", key.String())
			if review.IsMaskOnly(group) {
				fmt.Fprintln(out, "WARNING: orphan mask-only entry - mask sheets exist but no main sheets were found.")
			}
			for _, role := range parts.Roles() {
				candidates := group.Candidates(role)
				if len(candidates) == 0 {
					fmt.Fprintf(out, "  %-4s (missing)\n", role)
					continue
				}
				fmt.Fprintf(out, "  %-4s %d option(s)\n", role, len(candidates))
				for i, entry := range candidates {
					fmt.Fprintf(out, "       [%d] %s\n", i, entry.Name)
				}
			}
			for _, role := range parts.MaskRoles() {
				status := review.StatusFor(group, role)
				if count := group.MaskCount(role); count > 0 {
					fmt.Fprintf(out, "  %s mask: %d found (%s)\n", role, count, status)
					for _, entry := range group.Masks(role) {
						fmt.Fprintf(out, "       %s\n", entry.Name)
					}
				} else {
					fmt.Fprintf(out, "  %s mask: %s\n", role, status)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the identity as JSON")
	return cmd
}
