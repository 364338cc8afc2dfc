package resolve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webgen/cli/internal/detect"
	"github.com/webgen/cli/internal/manifest"
	"github.com/webgen/cli/internal/project"
	"github.com/webgen/cli/internal/state"
)

func inputs(t *testing.T, root string, opts project.Options) Inputs {
	t.Helper()
	return Inputs{
		Manifest: manifest.Load(root),
		Options:  opts,
		Detected: detect.Detect(root),
		State:    state.Open(root),
	}
}

func TestMerge_EmptyDestination(t *testing.T) {
	cfg, unresolved := Merge(inputs(t, t.TempDir(), project.Options{}))

	assert.Empty(t, cfg.Sources)
	// Everything is unresolved, in fixed prompt order.
	assert.Equal(t, project.PromptOrder(), unresolved)
}

func TestMerge_FlagBeatsManifestName(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, manifest.Filename),
		[]byte(`{"name": "manifest-name"}`), 0o644))

	cfg, unresolved := Merge(inputs(t, root, project.Options{Name: "flag-name"}))

	assert.Equal(t, "flag-name", cfg.Name)
	assert.Equal(t, project.SourceFlag, cfg.Sources[project.FieldName])
	assert.NotContains(t, unresolved, project.FieldName)
}

func TestMerge_ManifestFields(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, manifest.Filename),
		[]byte(`{
			"name": "my-app",
			"description": "an app",
			"homepage": "https://example.com",
			"author": "Jo Doe <jo@example.com>"
		}`), 0o644))

	cfg, unresolved := Merge(inputs(t, root, project.Options{}))

	assert.Equal(t, "my-app", cfg.Name)
	assert.Equal(t, "an app", cfg.Description)
	assert.Equal(t, "https://example.com", cfg.Homepage)
	assert.Equal(t, "Jo Doe", cfg.AuthorName)
	assert.Equal(t, "jo@example.com", cfg.AuthorEmail)

	// URL was not part of the author string, so it still gets prompted.
	assert.Contains(t, unresolved, project.FieldAuthorURL)
	assert.NotContains(t, unresolved, project.FieldAuthorName)
	assert.NotContains(t, unresolved, project.FieldAuthorEmail)
}

func TestMerge_DetectedServerSkipsPrompt(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "server"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, detect.MarkerExpress), []byte("x"), 0o644))

	cfg, unresolved := Merge(inputs(t, root, project.Options{}))

	assert.Equal(t, project.ServerExpress, cfg.ServerType)
	assert.Equal(t, project.SourceDetected, cfg.Sources[project.FieldServerType])
	assert.NotContains(t, unresolved, project.FieldServerType)
}

func TestMerge_StoredServerUsedWhenNotDetected(t *testing.T) {
	root := t.TempDir()
	s := state.Open(root)
	s.Set(state.KeyServerType, "koa")
	require.NoError(t, s.Flush())

	cfg, unresolved := Merge(inputs(t, root, project.Options{}))

	assert.Equal(t, project.ServerKoa, cfg.ServerType)
	assert.Equal(t, project.SourceState, cfg.Sources[project.FieldServerType])
	assert.NotContains(t, unresolved, project.FieldServerType)
}

func TestMerge_DetectionBeatsStoredState(t *testing.T) {
	root := t.TempDir()
	s := state.Open(root)
	s.Set(state.KeyServerType, "koa")
	require.NoError(t, s.Flush())
	require.NoError(t, os.MkdirAll(filepath.Join(root, "server"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, detect.MarkerExpress), []byte("x"), 0o644))

	cfg, _ := Merge(inputs(t, root, project.Options{}))

	assert.Equal(t, project.ServerExpress, cfg.ServerType)
	assert.Equal(t, project.SourceDetected, cfg.Sources[project.FieldServerType])
}

func TestMerge_InvalidStoredServerIgnored(t *testing.T) {
	root := t.TempDir()
	s := state.Open(root)
	s.Set(state.KeyServerType, "rails")
	require.NoError(t, s.Flush())

	_, unresolved := Merge(inputs(t, root, project.Options{}))
	assert.Contains(t, unresolved, project.FieldServerType)
}

func TestMerge_KeywordsAlwaysPrompted(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, manifest.Filename),
		[]byte(`{"keywords": ["web", "ui"]}`), 0o644))

	_, unresolved := Merge(inputs(t, root, project.Options{}))
	assert.Contains(t, unresolved, project.FieldKeywords)
}

func TestMerge_AccountFlag(t *testing.T) {
	cfg, _ := Merge(inputs(t, t.TempDir(), project.Options{Account: "octocat"}))
	assert.Equal(t, "octocat", cfg.VCSAccount)
}

func TestMerge_UnparseableAuthorFallsBackToPrompt(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, manifest.Filename),
		[]byte(`{"author": {"unexpected": true}}`), 0o644))

	_, unresolved := Merge(inputs(t, root, project.Options{}))
	assert.Contains(t, unresolved, project.FieldAuthorName)
	assert.Contains(t, unresolved, project.FieldAuthorEmail)
	assert.Contains(t, unresolved, project.FieldAuthorURL)
}
