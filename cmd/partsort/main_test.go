package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"partsort/internal/testsupport"
)

// runCommand executes the CLI with a temp-scoped config and returns stdout.
func runCommand(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

// writeTestConfig materializes a config whose state lives under a temp dir.
func writeTestConfig(t *testing.T) string {
	t.Helper()

	base := t.TempDir()
	path := filepath.Join(base, "partsort.toml")
	content := `
[paths]
history_db = "` + filepath.Join(base, "history.db") + `"
log_dir = "` + filepath.Join(base, "logs") + `"
`
	testsupport.WriteFile(t, path, content)
	return path
}

func seedGeneratorRoot(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	testsupport.SeedTree(t, root, map[string]string{
		"Face/Female/FG_AccA_p01.png":        "face",
		"SV/Female/SV_AccA_p01.png":          "sv",
		"SV/Female/SV_AccA_p01_c.png":        "sv mask",
		"TV/Female/TV_AccA_p01.png":          "tv",
		"TVD/Female/TVD_AccA_p01.png":        "tvd",
		"Variation/Female/icon_AccA_p01.png": "icon",
		"SV/Female/SV_Clothing_p02.png":      "clothing",
		"TV/Male/TV_Tail_p03_c.png":          "orphan mask",
	})
	return root
}

func TestRootCommandShowsHelp(t *testing.T) {
	out, err := runCommand(t, writeTestConfig(t))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !bytes.Contains([]byte(out), []byte("partsort")) {
		t.Fatalf("help output missing command name: %q", out)
	}
}
