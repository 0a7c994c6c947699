package relocate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"partsort/internal/parts"
)

// Mode selects the transfer semantics for one relocation call.
type Mode string

const (
	ModeCopy Mode = "copy"
	ModeMove Mode = "move"
)

// ParseMode validates a user-supplied mode string.
func ParseMode(value string) (Mode, error) {
	switch Mode(value) {
	case ModeCopy, ModeMove:
		return Mode(value), nil
	}
	return "", fmt.Errorf("mode must be copy or move, got %q", value)
}

// manifestName returns the audit file name for the mode.
func (m Mode) manifestName() string {
	if m == ModeMove {
		return "manifest.json"
	}
	return "copy_log.json"
}

// Transfer records one source to destination file movement.
type Transfer struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ManifestKey is the identity tuple as serialized in the manifest.
type ManifestKey struct {
	Gender   string `json:"gender"`
	Category string `json:"category"`
	PartNum  string `json:"part_num"`
}

// Manifest is the audit record for one relocation call. A new manifest is
// written per call inside the identity's destination folder; it is never
// merged with a prior record.
type Manifest struct {
	Mode     Mode                  `json:"mode"`
	Key      ManifestKey           `json:"key"`
	Selected map[string]Transfer   `json:"selected"`
	Masks    map[string][]Transfer `json:"masks"`

	// Destination is where the manifest was written; not serialized.
	Destination string `json:"-"`
	// Path is the manifest file's own location; not serialized.
	Path string `json:"-"`
}

func newManifest(mode Mode, key parts.Key) *Manifest {
	masks := make(map[string][]Transfer, len(parts.MaskRoles()))
	for _, role := range parts.MaskRoles() {
		masks[string(role)] = []Transfer{}
	}
	return &Manifest{
		Mode:     mode,
		Key:      ManifestKey{Gender: key.Gender, Category: key.Category, PartNum: key.PartNum},
		Selected: make(map[string]Transfer),
		Masks:    masks,
	}
}

// TransferCount reports how many files the manifest covers.
func (m *Manifest) TransferCount() int {
	total := len(m.Selected)
	for _, transfers := range m.Masks {
		total += len(transfers)
	}
	return total
}

// DestinationPaths returns every "to" path in the manifest.
func (m *Manifest) DestinationPaths() []string {
	paths := make([]string, 0, m.TransferCount())
	for _, role := range parts.Roles() {
		if t, ok := m.Selected[string(role)]; ok {
			paths = append(paths, t.To)
		}
	}
	for _, role := range parts.MaskRoles() {
		for _, t := range m.Masks[string(role)] {
			paths = append(paths, t.To)
		}
	}
	return paths
}

func (m *Manifest) write(dir string) error {
	path := filepath.Join(dir, m.Mode.manifestName())
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}
	m.Path = path
	return nil
}
