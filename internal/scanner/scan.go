package scanner

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"partsort/internal/classify"
	"partsort/internal/faults"
	"partsort/internal/parts"
)

// Scan walks every (component sub-tree, gender) directory under root and
// returns a freshly built index. Directories absent from disk contribute
// nothing. Files that fail extension or token classification are skipped
// silently; an unreadable directory aborts the scan with the offending path.
func Scan(root string, cat parts.Catalog) (*Index, error) {
	idx := NewIndex()

	folders := parts.ComponentFolders()
	names := make([]string, 0, len(folders))
	for name := range folders {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, folder := range names {
		role := folders[folder]
		base := filepath.Join(root, folder)
		ok, err := dirExists(base)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		for _, gender := range cat.Genders {
			dir := filepath.Join(base, gender)
			ok, err := dirExists(dir)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			if err := scanDir(idx, cat, dir, gender, role); err != nil {
				return nil, err
			}
		}
	}

	idx.prune()
	return idx, nil
}

func scanDir(idx *Index, cat parts.Catalog, dir, gender string, role parts.ComponentRole) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return faults.Wrap(faults.ErrTransient, "scan", "read directory", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !cat.AllowsExtension(name) {
			continue
		}
		key, ok := classify.Identify(cat, gender, name)
		if !ok {
			continue
		}
		file := parts.FileEntry{Path: filepath.Join(dir, name), Name: name}
		group := idx.group(key)
		if role.SupportsMask() && classify.IsMask(name) {
			group.AddMask(role, file)
		} else {
			group.AddCandidate(role, file)
		}
	}
	return nil
}

func dirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, faults.Wrap(faults.ErrTransient, "scan", "stat directory", path, err)
	}
	return info.IsDir(), nil
}
