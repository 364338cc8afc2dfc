package executor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webgen/cli/internal/manifest"
	"github.com/webgen/cli/internal/plan"
	"github.com/webgen/cli/internal/project"
	"github.com/webgen/cli/internal/templates"
)

type recordedCommand struct {
	dir  string
	name string
	args []string
}

func recordingRunner(calls *[]recordedCommand, fail error) CommandRunner {
	return func(_ context.Context, dir, name string, args ...string) error {
		*calls = append(*calls, recordedCommand{dir: dir, name: name, args: args})
		return fail
	}
}

func minimalPlan(root string) *plan.Plan {
	man := manifest.New()
	man.Set("name", "demo")
	return &plan.Plan{
		DestRoot: root,
		Manifest: man,
		Excludes: []string{
			"server/express.js", "server/koa.js",
			"client/register-sw.js", "client/sw.js",
			"server/plugins/ssr.js",
			"eslintrc-single.json",
		},
		RawCopies: []string{"**/*.png", "**/*.ico"},
		Renames: []plan.Rename{
			{From: "gitignore", To: ".gitignore"},
			{From: "env", To: ".env"},
			{From: "eslintrc-double.json", To: ".eslintrc.json"},
		},
		PostActions: []plan.Action{plan.ActionInstall},
	}
}

func hapiData() templates.Data {
	return templates.Data{Name: "demo", Description: "a demo", Server: "hapi"}
}

func TestApply_RendersAndSavesManifest(t *testing.T) {
	root := t.TempDir()
	var calls []recordedCommand
	e := NewWithRunner(recordingRunner(&calls, nil))

	res, err := e.Apply(context.Background(), minimalPlan(root), hapiData(), project.Options{})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(root, "server", "hapi.js"))
	assert.FileExists(t, filepath.Join(root, "package.json"))
	assert.FileExists(t, filepath.Join(root, ".gitignore"))
	assert.NoFileExists(t, filepath.Join(root, "server", "express.js"))
	assert.Contains(t, res.Created, "package.json")
}

func TestApply_RunsSubGenerators(t *testing.T) {
	root := t.TempDir()
	var calls []recordedCommand
	e := NewWithRunner(recordingRunner(&calls, nil))

	p := minimalPlan(root)
	p.SubGens = []plan.Invocation{
		{ID: "editorconfig", Params: map[string]string{}},
	}

	res, err := e.Apply(context.Background(), p, hapiData(), project.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"editorconfig"}, res.SubGens)
	assert.FileExists(t, filepath.Join(root, ".editorconfig"))
}

func TestApply_UnknownSubGeneratorFails(t *testing.T) {
	root := t.TempDir()
	e := NewWithRunner(recordingRunner(&[]recordedCommand{}, nil))

	p := minimalPlan(root)
	p.SubGens = []plan.Invocation{{ID: "bogus"}}

	_, err := e.Apply(context.Background(), p, hapiData(), project.Options{})
	assert.ErrorContains(t, err, "bogus")
}

func TestApply_InstallRunsInDestination(t *testing.T) {
	root := t.TempDir()
	var calls []recordedCommand
	e := NewWithRunner(recordingRunner(&calls, nil))

	_, err := e.Apply(context.Background(), minimalPlan(root), hapiData(), project.Options{})
	require.NoError(t, err)

	require.Len(t, calls, 1)
	assert.Equal(t, root, calls[0].dir)
	assert.Equal(t, "npm", calls[0].name)
	assert.Equal(t, []string{"install"}, calls[0].args)
}

func TestApply_SkipInstall(t *testing.T) {
	root := t.TempDir()
	var calls []recordedCommand
	e := NewWithRunner(recordingRunner(&calls, nil))

	res, err := e.Apply(context.Background(), minimalPlan(root), hapiData(),
		project.Options{SkipInstall: true})
	require.NoError(t, err)

	assert.True(t, res.InstallSkipped)
	assert.Empty(t, calls)
}

func TestApply_InstallFailureSurfaces(t *testing.T) {
	root := t.TempDir()
	var calls []recordedCommand
	e := NewWithRunner(recordingRunner(&calls, errors.New("registry down")))

	_, err := e.Apply(context.Background(), minimalPlan(root), hapiData(), project.Options{})
	assert.ErrorContains(t, err, "installing dependencies")
}

func TestApply_LintFixFailureIsNotFatal(t *testing.T) {
	root := t.TempDir()
	var calls []recordedCommand
	fail := errors.New("eslint exploded")
	e := NewWithRunner(func(_ context.Context, dir, name string, args ...string) error {
		calls = append(calls, recordedCommand{dir: dir, name: name, args: args})
		if name == "npx" {
			return fail
		}
		return nil
	})

	p := minimalPlan(root)
	p.PostActions = []plan.Action{plan.ActionInstall, plan.ActionLintFix}

	_, err := e.Apply(context.Background(), p, hapiData(), project.Options{})
	require.NoError(t, err)
	require.Len(t, calls, 2)
	assert.Equal(t, "npx", calls[1].name)
}

func TestApply_ExistingFilesUntouched(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "server"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "server", "index.js"), []byte("mine"), 0o644))

	e := NewWithRunner(recordingRunner(&[]recordedCommand{}, nil))
	res, err := e.Apply(context.Background(), minimalPlan(root), hapiData(),
		project.Options{SkipInstall: true})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(root, "server", "index.js"))
	require.NoError(t, err)
	assert.Equal(t, "mine", string(content))

	assert.Contains(t, res.Skipped, "server/index.js")
	assert.NotContains(t, res.Created, "server/index.js")
}
