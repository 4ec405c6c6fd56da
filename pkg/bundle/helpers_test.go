package bundle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFile creates a file (and any parent directories) under dir and
// returns its full path.
func writeFile(t *testing.T, dir, rel string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

// readFile returns the full content of path.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// block renders one output block: separator banner plus verbatim content.
func block(label, content string) string {
	rule := strings.Repeat("=", 80)
	return rule + "\nFile: " + label + "\n" + rule + "\n\n" + content
}
