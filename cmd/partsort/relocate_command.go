package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"partsort/internal/faults"
	"partsort/internal/logging"
	"partsort/internal/parts"
	"partsort/internal/relocate"
	"partsort/internal/review"
	"partsort/internal/scanner"
)

const lockFileName = ".partsort.lock"

func newRelocateCommand(ctx *commandContext) *cobra.Command {
	var modeFlag string
	var picks []string
	var filterText string
	var missingOnly bool

	cmd := &cobra.Command{
		Use:   "relocate <root> <gender/category/pNN>",
		Short: "Copy or move an identity's chosen files into the sorted layout",
		Long: `Relocate transfers the chosen main file per component plus every mask
sheet for the identity into <root>/Sort/<gender>/<category>_pNN/ and writes an
audit manifest. With --mode move the sources are removed and the tree is
rescanned afterward; with --mode copy (the default) the sources stay put and
the identity is marked reviewed.

Without --pick flags the first candidate of every non-empty component is
chosen. --pick takes ROLE=INDEX or ROLE=FILENAME and may repeat; ROLE=- skips
the component entirely.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
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
			mode, err := relocate.ParseMode(modeFlag)
			if err != nil {
				return err
			}

			// One operator at a time per root: relocation mutates the tree
			// the scanner assumes stable.
			rootLock := flock.New(filepath.Join(root, lockFileName))
			locked, err := rootLock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire root lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another partsort operation holds the lock on %s", root)
			}
			defer func() { _ = rootLock.Unlock() }()

			idx, err := scanner.Scan(root, cat)
			if err != nil {
				return err
			}
			group := idx.Group(key)
			if group == nil {
				return faults.Wrap(faults.ErrNotFound, "relocate", "lookup identity", key.String(), nil)
			}

			selection, err := resolveSelection(group, picks)
			if err != nil {
				return err
			}

			// Capture review position before mutating anything so the cursor
			// can be re-seated by identity afterward.
			view := review.Build(idx, filterText, missingOnly)
			nextKey, haveNext := nextAfter(view, key)

			operationID := uuid.NewString()
			engine := relocate.NewEngine(cfg, logger.With(logging.String(logging.FieldOperationID, operationID)))

			manifest, err := engine.Relocate(cmd.Context(), root, group, selection, mode)
			if errors.Is(err, relocate.ErrNothingToTransfer) {
				fmt.Fprintf(cmd.OutOrStdout(), "Nothing to transfer for %s.\n", key.String())
				return nil
			}
			if err != nil {
				return err
			}

			store, err := ctx.openHistory()
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.RecordRelocation(cmd.Context(), operationID, key, manifest); err != nil {
				logger.Warn("failed to record relocation history", logging.Error(err))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Sorted %d file(s) for %s into %s\n", manifest.TransferCount(), key.String(), manifest.Destination)
			fmt.Fprintf(out, "Manifest: %s\n", manifest.Path)

			if mode == relocate.ModeCopy {
				// Copy leaves the index valid; treat the identity as handled.
				if err := store.MarkReviewed(cmd.Context(), key); err != nil {
					logger.Warn("failed to mark identity reviewed", logging.Error(err))
				}
				return nil
			}

			// Move invalidated the index: rebuild before trusting anything.
			fresh, err := scanner.Scan(root, cat)
			if err != nil {
				return err
			}
			rebuilt := review.Build(fresh, filterText, missingOnly)
			if rebuilt.Len() == 0 {
				fmt.Fprintln(out, "No identities remain with the current filter.")
				return nil
			}
			cursor := 0
			if haveNext {
				if i, ok := rebuilt.IndexOf(nextKey); ok {
					cursor = i
				}
			}
			if current, ok := rebuilt.At(rebuilt.Clamp(cursor)); ok {
				fmt.Fprintf(out, "Next up: %s (%d remaining)\n", current.String(), rebuilt.Len())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&modeFlag, "mode", "copy", "Transfer mode: copy or move")
	cmd.Flags().StringArrayVar(&picks, "pick", nil, "Choose a candidate per component (ROLE=INDEX or ROLE=FILENAME, ROLE=- to skip)")
	cmd.Flags().StringVar(&filterText, "filter", "", "Review filter to re-apply after a move")
	cmd.Flags().BoolVar(&missingOnly, "missing-only", false, "Missing-only review filter to re-apply after a move")
	return cmd
}

// resolveSelection turns --pick flags into a concrete selection. With no
// picks, the first candidate of every non-empty role is chosen, matching the
// review default.
func resolveSelection(group *parts.PartGroup, picks []string) (relocate.Selection, error) {
	selection := relocate.Selection{}
	for _, role := range parts.Roles() {
		if candidates := group.Candidates(role); len(candidates) > 0 {
			selection[role] = candidates[0]
		}
	}

	for _, pick := range picks {
		name, value, found := strings.Cut(pick, "=")
		if !found {
			return nil, fmt.Errorf("pick must be ROLE=VALUE, got %q", pick)
		}
		role, err := parseRole(name)
		if err != nil {
			return nil, err
		}
		value = strings.TrimSpace(value)
		if value == "-" {
			delete(selection, role)
			continue
		}
		candidates := group.Candidates(role)
		if len(candidates) == 0 {
			return nil, fmt.Errorf("no %s candidates to pick from", role)
		}
		if index, err := strconv.Atoi(value); err == nil {
			if index < 0 || index >= len(candidates) {
				return nil, fmt.Errorf("%s pick %d out of range [0, %d]", role, index, len(candidates)-1)
			}
			selection[role] = candidates[index]
			continue
		}
		matched := false
		for _, candidate := range candidates {
			if strings.EqualFold(candidate.Name, value) {
				selection[role] = candidate
				matched = true
				break
			}
		}
		if !matched {
			return nil, fmt.Errorf("no %s candidate named %q", role, value)
		}
	}
	return selection, nil
}

func parseRole(name string) (parts.ComponentRole, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for _, role := range parts.Roles() {
		if string(role) == upper {
			return role, nil
		}
	}
	return "", fmt.Errorf("unknown component role %q", name)
}

// nextAfter returns the identity following key in the view, so the cursor
// lands on it after a move-mode rescan.
func nextAfter(view *review.View, key parts.Key) (parts.Key, bool) {
	i, ok := view.IndexOf(key)
	if !ok {
		return parts.Key{}, false
	}
	return view.At(i + 1)
}
