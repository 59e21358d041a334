package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mlproject/mlproject/internal/common"
	"github.com/mlproject/mlproject/internal/scaffold"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) ([]string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	args = append([]string{"--log-dir", filepath.Join(t.TempDir(), "logs")}, args...)
	err := run(context.Background(), out, args)

	return strings.Split(strings.TrimSpace(out.String()), "\n"), err
}

func TestConfigShow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model:\n  name: rf\n  depth: 5\n"), 0600))

	lines, err := execute(t, "config", "show", path, "--key", "model.depth")
	require.NoError(t, err)
	assert.Contains(t, lines, "5")
	assert.Contains(t, strings.Join(lines, "\n"), `"msg":"yaml file loaded"`)

	lines, err = execute(t, "config", "show", path, "--key", "model")
	require.NoError(t, err)
	assert.Contains(t, lines, "depth: 5")
	assert.Contains(t, lines, "name: rf")
}

func TestConfigShowEmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0600))

	_, err := execute(t, "config", "show", path)
	require.ErrorIs(t, err, common.ErrEmptyDocument)
}

func TestJSONShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.json")
	require.NoError(t, common.New(nil).SaveJSON(path, map[string]any{"rmse": 0.5, "r2": 0.75}))

	lines, err := execute(t, "json", "show", path, "--key", "r2")
	require.NoError(t, err)
	assert.Contains(t, lines, "0.75")
}

func TestScaffold(t *testing.T) {
	root := t.TempDir()

	lines, err := execute(t, "scaffold", "winequality", "--root", root)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(root, "src", "winequality", "utils", "common.py"))
	assert.FileExists(t, filepath.Join(root, "params.yaml"))
	assert.DirExists(t, filepath.Join(root, ".github", "workflows"))
	assert.Contains(t, lines, "created "+filepath.Join("src", "winequality", "__init__.py"))

	require.NoError(t, os.WriteFile(filepath.Join(root, "main.py"), []byte("print('hi')\n"), 0600))

	lines, err = execute(t, "scaffold", "winequality", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, lines, "kept main.py")
}

func TestScaffoldRejectsEscapingProjectName(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "proj")

	_, err := execute(t, "scaffold", "../../escaped", "--root", root)
	require.ErrorIs(t, err, scaffold.ErrInvalidProjectName)

	entries, err := os.ReadDir(base)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSize(t *testing.T) {
	dir := t.TempDir()
	small := filepath.Join(dir, "small.bin")
	large := filepath.Join(dir, "large.bin")
	require.NoError(t, os.WriteFile(small, bytes.Repeat([]byte{1}, 2048), 0600))
	require.NoError(t, os.WriteFile(large, bytes.Repeat([]byte{1}, 1536), 0600))

	lines, err := execute(t, "size", small, large)
	require.NoError(t, err)
	assert.Contains(t, lines, small+"\t~2 KB")
	assert.Contains(t, lines, large+"\t~2 KB")

	_, err = execute(t, "size", filepath.Join(dir, "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSizeReportsOneStatPerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.bin")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte{1}, 2048), 0600))

	lines, err := execute(t, "--log-level", "debug", "size", path)
	require.NoError(t, err)

	assert.Contains(t, lines, path+"\t~2 KB")
	assert.Contains(t, strings.Join(lines, "\n"), `"size":"2.0 kB"`)
}

func TestArtifactInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.bin")
	files := common.New(nil, common.WithCompression(common.CompressionZstd))
	require.NoError(t, files.SaveBin(map[string]float64{"alpha": 0.2}, path))

	lines, err := execute(t, "artifact", "info", path)
	require.NoError(t, err)
	assert.Contains(t, lines, "compression: zstd")
}

func TestInvalidConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mlproject.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0600))

	_, err := execute(t, "--config", path, "size", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}

func TestLogFileWritten(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0600))

	require.NoError(t, run(context.Background(), &bytes.Buffer{}, []string{"--log-dir", logDir, "config", "show", path}))

	content, err := os.ReadFile(filepath.Join(logDir, "running_logs.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "yaml file loaded")
}
