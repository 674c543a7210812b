package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command against root. Cobra keeps flag values
// between executions, so callers pass stateful flags explicitly.
func execute(t *testing.T, root string, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append(args, "--dir", root, "--config", ""))

	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func setupProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"decomment.yaml":        "logging:\n  color: false\n",
		"frontend/src/App.jsx":  "export default App; // root component\n",
		"backend/src/server.js": "/* entry */\nlisten(8080);\n",
		"backend/src/notes.txt": "// left alone\n",
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func TestRootCommand_Clean(t *testing.T) {
	root := setupProject(t)

	out := execute(t, root, "--dry-run=false", "--ledger=false", "--progress=false")

	assert.Contains(t, out, "Cleaning "+filepath.Join(root, "frontend", "src", "App.jsx")+"...")
	assert.Contains(t, out, "Cleaning "+filepath.Join(root, "backend", "src", "server.js")+"...")
	assert.NotContains(t, out, "notes.txt")
	assert.Contains(t, out, "Directory not found: "+filepath.Join(root, "payment-server"))
	assert.Contains(t, out, "Files cleaned: 2")

	data, err := os.ReadFile(filepath.Join(root, "frontend", "src", "App.jsx"))
	require.NoError(t, err)
	assert.Equal(t, "export default App;\n", string(data))
}

func TestRootCommand_MissingDirNoticesPrecedeFileLines(t *testing.T) {
	root := setupProject(t)

	out := execute(t, root, "--dry-run=true", "--ledger=false", "--progress=false")

	missing := strings.Index(out, "Directory not found: "+filepath.Join(root, "payment-server"))
	first := strings.Index(out, "Cleaning ")
	require.GreaterOrEqual(t, missing, 0)
	require.GreaterOrEqual(t, first, 0)
	assert.Less(t, missing, first)
}

func TestRootCommand_DryRun(t *testing.T) {
	root := setupProject(t)

	out := execute(t, root, "--dry-run=true", "--ledger=false", "--progress=false")

	assert.Contains(t, out, "Files would change: 2")
	data, err := os.ReadFile(filepath.Join(root, "backend", "src", "server.js"))
	require.NoError(t, err)
	assert.Equal(t, "/* entry */\nlisten(8080);\n", string(data))
}

func TestHistoryCommand(t *testing.T) {
	root := setupProject(t)

	execute(t, root, "--dry-run=false", "--ledger=true", "--progress=false")
	out := execute(t, root, "history", "--limit", "5", "--ledger=false")

	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "cleaned=2")
	assert.Contains(t, out, "Files tracked: 2")
}

func TestStripCommand(t *testing.T) {
	root := setupProject(t)
	notes := filepath.Join(root, "backend", "src", "notes.txt")

	out := execute(t, root, "strip", notes, "--dry-run=false")

	assert.Contains(t, out, "Cleaning "+notes+"...")
	data, err := os.ReadFile(notes)
	require.NoError(t, err)
	assert.Equal(t, "\n", string(data))
}

func TestConfigInit(t *testing.T) {
	root := t.TempDir()

	out := execute(t, root, "config", "init", "--dry-run=false")

	assert.Contains(t, out, "Wrote")
	_, err := os.Stat(filepath.Join(root, "decomment.yaml"))
	assert.NoError(t, err)
}
