package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"partsort/internal/parts"
	"partsort/internal/review"
	"partsort/internal/scanner"
)

type listEntry struct {
	Key        string         `json:"key"`
	Candidates map[string]int `json:"candidates"`
	Masks      map[string]int `json:"masks"`
	MaskOnly   bool           `json:"mask_only"`
	Reviewed   bool           `json:"reviewed"`
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var filterText string
	var missingOnly bool
	var reviewedOnly bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list <root>",
		Short: "List identities for sequential review",
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
			view := review.Build(idx, filterText, missingOnly)

			store, err := ctx.openHistory()
			if err != nil {
				return err
			}
			defer store.Close()
			reviewed, err := store.ReviewedKeys(cmd.Context())
			if err != nil {
				return err
			}

			keys := view.Keys()
			if reviewedOnly {
				kept := make([]parts.Key, 0, len(keys))
				for _, key := range keys {
					if _, ok := reviewed[key]; ok {
						kept = append(kept, key)
					}
				}
				keys = kept
			}

			if jsonOut {
				entries := make([]listEntry, 0, len(keys))
				for _, key := range keys {
					entries = append(entries, buildListEntry(idx, key, reviewed))
				}
				return writeJSON(cmd, entries)
			}

			if len(keys) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No matching parts found with current filter.")
				return nil
			}

			headers := []string{"#", "Identity", "FACE", "SV", "TV", "TVD", "ICON", "Masks", "Flags"}
			rows := make([][]string, 0, len(keys))
			for i, key := range keys {
				group := idx.Group(key)
				maskTotal := 0
				for _, role := range parts.MaskRoles() {
					maskTotal += group.MaskCount(role)
				}
				flags := ""
				if review.IsMaskOnly(group) {
					flags = "mask-only"
				}
				if _, ok := reviewed[key]; ok {
					if flags != "" {
						flags += ", "
					}
					flags += "reviewed"
				}
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					key.String(),
					strconv.Itoa(group.CandidateCount(parts.RoleFace)),
					strconv.Itoa(group.CandidateCount(parts.RoleSV)),
					strconv.Itoa(group.CandidateCount(parts.RoleTV)),
					strconv.Itoa(group.CandidateCount(parts.RoleTVD)),
					strconv.Itoa(group.CandidateCount(parts.RoleIcon)),
					strconv.Itoa(maskTotal),
					flags,
				})
			}
			aligns := []columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight, alignLeft}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
			fmt.Fprintf(cmd.OutOrStdout(), "%d identities\n", len(keys))
			return nil
		},
	}

	cmd.Flags().StringVar(&filterText, "filter", "", "Free-text filter (matches gender, category, or part number)")
	cmd.Flags().BoolVar(&missingOnly, "missing-only", false, "Only show identities missing at least one main component")
	cmd.Flags().BoolVar(&reviewedOnly, "reviewed", false, "Only show identities already marked reviewed")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit entries as JSON")
	return cmd
}

func buildListEntry(idx *scanner.Index, key parts.Key, reviewed map[parts.Key]struct{}) listEntry {
	group := idx.Group(key)
	entry := listEntry{
		Key:        keyArg(key),
		Candidates: make(map[string]int, len(parts.Roles())),
		Masks:      make(map[string]int, len(parts.MaskRoles())),
		MaskOnly:   review.IsMaskOnly(group),
	}
	for _, role := range parts.Roles() {
		entry.Candidates[string(role)] = group.CandidateCount(role)
	}
	for _, role := range parts.MaskRoles() {
		entry.Masks[string(role)] = group.MaskCount(role)
	}
	_, entry.Reviewed = reviewed[key]
	return entry
}
