package relocate

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"partsort/internal/config"
	"partsort/internal/faults"
	"partsort/internal/fileutil"
	"partsort/internal/logging"
	"partsort/internal/parts"
)

// ErrNothingToTransfer reports that neither a main selection nor any mask
// exists for the identity. It is informational, not a failure.
var ErrNothingToTransfer = errors.New("nothing to transfer")

// Selection maps component roles to the operator's chosen main file. Roles
// may be absent; masks are never part of a selection because they are always
// carried in full.
type Selection map[parts.ComponentRole]parts.FileEntry

// Engine performs relocations. It is stateless between calls; all context
// arrives as arguments.
type Engine struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewEngine constructs a relocation engine.
func NewEngine(cfg *config.Config, logger *slog.Logger) *Engine {
	return &Engine{cfg: cfg, logger: logging.NewComponentLogger(logger, "relocate")}
}

// Relocate transfers the selected main files and every mask of the group
// into the canonical layout under root, then writes the audit manifest.
// The first failed transfer aborts the call with the offending path and no
// manifest is written. Returns ErrNothingToTransfer when the selection is
// empty and the group has no masks.
func (e *Engine) Relocate(ctx context.Context, root string, group *parts.PartGroup, selection Selection, mode Mode) (*Manifest, error) {
	if len(selection) == 0 && !group.HasAnyMask() {
		return nil, ErrNothingToTransfer
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := group.Key
	destRoot := filepath.Join(root, e.sortDirName(), key.Gender, key.Slug())
	if err := os.MkdirAll(destRoot, 0o755); err != nil {
		return nil, faults.Wrap(faults.ErrTransfer, "relocate", "create destination", destRoot, err)
	}

	manifest := newManifest(mode, key)
	manifest.Destination = destRoot

	e.logger.Info("relocating identity",
		logging.String("key", key.String()),
		logging.String("mode", string(mode)),
		logging.String("destination", destRoot),
	)

	for _, role := range parts.Roles() {
		src, ok := selection[role]
		if !ok {
			continue
		}
		dest, err := e.transfer(src.Path, filepath.Join(destRoot, string(role)), mode)
		if err != nil {
			return nil, err
		}
		manifest.Selected[string(role)] = Transfer{From: src.Path, To: dest}
	}

	for _, role := range parts.MaskRoles() {
		masks := group.Masks(role)
		if len(masks) == 0 {
			continue
		}
		maskDir := filepath.Join(destRoot, string(role)+"_MASK")
		for _, mask := range masks {
			dest, err := e.transfer(mask.Path, maskDir, mode)
			if err != nil {
				return nil, err
			}
			manifest.Masks[string(role)] = append(manifest.Masks[string(role)], Transfer{From: mask.Path, To: dest})
		}
	}

	if err := manifest.write(destRoot); err != nil {
		return nil, faults.Wrap(faults.ErrTransfer, "relocate", "write manifest", destRoot, err)
	}

	e.logger.Info("relocation complete",
		logging.String("key", key.String()),
		logging.Int("files", manifest.TransferCount()),
		logging.String("manifest", manifest.Path),
	)
	return manifest, nil
}

func (e *Engine) transfer(src, destDir string, mode Mode) (string, error) {
	dest := filepath.Join(destDir, filepath.Base(src))
	if _, err := os.Stat(dest); err == nil {
		e.logger.Warn("overwriting existing destination file",
			logging.String("source", src),
			logging.String("destination", dest),
		)
	}
	var err error
	if mode == ModeCopy {
		err = fileutil.CopyFilePreserving(src, dest)
	} else {
		err = fileutil.MoveFile(src, dest)
	}
	if err != nil {
		return "", faults.Wrap(faults.ErrTransfer, "relocate", string(mode), src, err)
	}
	return dest, nil
}

func (e *Engine) sortDirName() string {
	if e.cfg != nil && e.cfg.Paths.SortDirName != "" {
		return e.cfg.Paths.SortDirName
	}
	return "Sort"
}
