package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartodocs/tagdoc/internal/config"
	"github.com/cartodocs/tagdoc/internal/logging"
	"github.com/cartodocs/tagdoc/pkg/tagdoc"
)

func clearGenerateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"TAGDOC_NAMESPACE", "TAGDOC_FORMAT", "TAGDOC_OUTPUT", "TAGDOC_TITLE"} {
		t.Setenv(key, "")
	}
}

func TestResolveGenerateOptions_Defaults(t *testing.T) {
	clearGenerateEnv(t)

	opts, err := resolveGenerateOptions(generateOptions{}, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, tagdoc.DefaultNamespace, opts.namespace)
	assert.Equal(t, "html", opts.format)
	assert.Equal(t, "", opts.output)
}

func TestResolveGenerateOptions_ConfigFile(t *testing.T) {
	clearGenerateEnv(t)

	dir := t.TempDir()
	content := `namespace: osm/roads
format: yaml
output: docs/tags.yaml
title: Road Tags
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte(content), 0644))

	opts, err := resolveGenerateOptions(generateOptions{}, dir)
	require.NoError(t, err)

	assert.Equal(t, "osm/roads", opts.namespace)
	assert.Equal(t, "yaml", opts.format)
	assert.Equal(t, "docs/tags.yaml", opts.output)
	assert.Equal(t, "Road Tags", opts.title)
}

func TestResolveGenerateOptions_EnvOverridesConfig(t *testing.T) {
	clearGenerateEnv(t)
	t.Setenv("TAGDOC_FORMAT", "json")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte("format: yaml\n"), 0644))

	opts, err := resolveGenerateOptions(generateOptions{}, dir)
	require.NoError(t, err)
	assert.Equal(t, "json", opts.format)
}

func TestResolveGenerateOptions_FlagsWin(t *testing.T) {
	clearGenerateEnv(t)
	t.Setenv("TAGDOC_FORMAT", "json")

	opts, err := resolveGenerateOptions(generateOptions{format: "yaml", namespace: "osm/names"}, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "yaml", opts.format)
	assert.Equal(t, "osm/names", opts.namespace)
}

func TestResolveGenerateOptions_BadConfig(t *testing.T) {
	clearGenerateEnv(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte("{{nope"), 0644))

	_, err := resolveGenerateOptions(generateOptions{}, dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, tagdoc.ErrInvalidConfig))
	assert.Equal(t, tagdoc.ExitConfigError, tagdoc.ExitCodeForError(err))
}

func TestGenerateCatalog_WritesJSONFile(t *testing.T) {
	clearGenerateEnv(t)
	resetGenerateFlags()

	outPath := filepath.Join(t.TempDir(), "tags.json")
	generateFlags.format = "json"
	generateFlags.output = outPath

	require.NoError(t, generateCatalog(&bytes.Buffer{}, logging.NewNullLogger()))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var doc struct {
		Namespace string `json:"namespace"`
		Tags      []struct {
			Key string `json:"key"`
		} `json:"tags"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "osm", doc.Namespace)
	require.NotEmpty(t, doc.Tags)
	assert.Equal(t, "addr:street", doc.Tags[0].Key, "first key should sort lowest")
}

func TestGenerateCatalog_StdoutWhenNoOutput(t *testing.T) {
	clearGenerateEnv(t)
	resetGenerateFlags()
	generateFlags.format = "json"

	var out bytes.Buffer
	require.NoError(t, generateCatalog(&out, logging.NewNullLogger()))
	assert.Contains(t, out.String(), `"namespace": "osm"`)
}

func TestGenerateCatalog_LoggerReceivesDiagnostics(t *testing.T) {
	clearGenerateEnv(t)
	resetGenerateFlags()
	generateFlags.format = "json"
	generateFlags.output = filepath.Join(t.TempDir(), "tags.json")

	var logBuf bytes.Buffer
	logger := logging.NewConsoleLoggerTo(&logBuf, true)

	require.NoError(t, generateCatalog(&bytes.Buffer{}, logger))

	logs := logBuf.String()
	assert.Contains(t, logs, "[VERBOSE] catalog ")
	assert.Contains(t, logs, "wrote 13 tags (json)")
}

func TestGenerateCatalog_UnsupportedFormat(t *testing.T) {
	clearGenerateEnv(t)
	resetGenerateFlags()
	generateFlags.format = "pdf"

	err := generateCatalog(&bytes.Buffer{}, logging.NewNullLogger())
	require.Error(t, err)
	assert.Equal(t, tagdoc.ExitConfigError, tagdoc.ExitCodeForError(err))
}

func TestGenerateCatalog_EmptyNamespaceFails(t *testing.T) {
	clearGenerateEnv(t)
	resetGenerateFlags()
	generateFlags.format = "json"
	generateFlags.namespace = "//"

	err := generateCatalog(&bytes.Buffer{}, logging.NewNullLogger())
	require.Error(t, err)
	assert.True(t, errors.Is(err, tagdoc.ErrDiscovery))
	assert.Equal(t, tagdoc.ExitDiscoveryError, tagdoc.ExitCodeForError(err))
}

func TestGenerateCatalog_FailureKeepsExistingOutput(t *testing.T) {
	clearGenerateEnv(t)
	resetGenerateFlags()

	outPath := filepath.Join(t.TempDir(), "tags.json")
	require.NoError(t, os.WriteFile(outPath, []byte("previous catalog"), 0644))

	generateFlags.format = "json"
	generateFlags.output = outPath
	generateFlags.namespace = "//"

	err := generateCatalog(&bytes.Buffer{}, logging.NewNullLogger())
	require.Error(t, err)

	data, readErr := os.ReadFile(outPath)
	require.NoError(t, readErr)
	assert.Equal(t, "previous catalog", string(data), "failed run must not touch existing output")
}

func TestGenerateCmd_RejectsArgs(t *testing.T) {
	err := generateCmd.Args(generateCmd, []string{"extra"})
	require.Error(t, err)
	assert.Equal(t, tagdoc.ExitUsageError, tagdoc.ExitCodeForError(err))
}
