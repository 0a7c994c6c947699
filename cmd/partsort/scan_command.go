package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"partsort/internal/parts"
	"partsort/internal/review"
	"partsort/internal/scanner"
)

type scanSummary struct {
	Root       string `json:"root"`
	Identities int    `json:"identities"`
	Files      int    `json:"files"`
	MaskOnly   int    `json:"mask_only"`
	Incomplete int    `json:"incomplete"`
}

func newScanCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "scan <root>",
		Short: "Scan a generator root and summarize what was indexed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			root, err := validateRoot(args[0])
			if err != nil {
				return err
			}

			idx, err := scanner.Scan(root, cfg.PartsCatalog())
			if err != nil {
				return err
			}

			summary := scanSummary{
				Root:       root,
				Identities: idx.Len(),
				Files:      idx.FileCount(),
			}
			for _, key := range idx.Keys() {
				group := idx.Group(key)
				if review.IsMaskOnly(group) {
					summary.MaskOnly++
				}
				for _, role := range parts.Roles() {
					if group.CandidateCount(role) == 0 {
						summary.Incomplete++
						break
					}
				}
			}

			if jsonOut {
				return writeJSON(cmd, summary)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Scanned %s\n", summary.Root)
			fmt.Fprintf(out, "  identities: %d\n", summary.Identities)
			fmt.Fprintf(out, "  files:      %d\n", summary.Files)
			fmt.Fprintf(out, "  incomplete: %d (missing at least one main component)\n", summary.Incomplete)
			fmt.Fprintf(out, "  mask-only:  %d (orphan masks with no main sheets)\n", summary.MaskOnly)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the summary as JSON")
	return cmd
}
