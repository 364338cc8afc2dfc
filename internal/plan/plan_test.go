package plan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webgen/cli/internal/detect"
	"github.com/webgen/cli/internal/manifest"
	"github.com/webgen/cli/internal/project"
)

func baseConfig(server project.ServerType) *project.Config {
	cfg := project.NewConfig()
	cfg.Name = "my-app"
	cfg.Description = "an app"
	cfg.ServerType = server
	cfg.PWA = true
	cfg.AutoSSR = true
	cfg.QuoteStyle = project.QuoteDouble
	return cfg
}

func excluded(t *testing.T, rules []string, rel string) bool {
	t.Helper()
	for _, rule := range rules {
		ok, err := doublestar.Match(rule, rel)
		require.NoError(t, err)
		if ok {
			return true
		}
	}
	return false
}

func TestExcludeRules_ExactlyOneServerSurvives(t *testing.T) {
	entries := []string{detect.MarkerExpress, detect.MarkerKoa, detect.MarkerHapi}

	for _, server := range project.ServerTypes() {
		t.Run(string(server), func(t *testing.T) {
			rules := excludeRules(baseConfig(server))

			kept := 0
			for _, entry := range entries {
				if !excluded(t, rules, entry) {
					kept++
					assert.Equal(t, detect.ServerMarker(server), entry,
						"only the chosen framework's entry file may survive")
				}
			}
			assert.Equal(t, 1, kept)
		})
	}
}

func TestExcludeRules_PWA(t *testing.T) {
	cfg := baseConfig(project.ServerHapi)
	cfg.PWA = false
	rules := excludeRules(cfg)
	assert.True(t, excluded(t, rules, detect.MarkerPWA))
	assert.True(t, excluded(t, rules, "client/sw.js"))

	cfg.PWA = true
	rules = excludeRules(cfg)
	assert.False(t, excluded(t, rules, detect.MarkerPWA))
}

func TestExcludeRules_AutoSSR(t *testing.T) {
	cfg := baseConfig(project.ServerExpress)
	cfg.AutoSSR = false
	assert.True(t, excluded(t, excludeRules(cfg), detect.MarkerSSR))

	cfg.AutoSSR = true
	assert.False(t, excluded(t, excludeRules(cfg), detect.MarkerSSR))
}

func TestExcludeRules_OneLintRulesetSurvives(t *testing.T) {
	cfg := baseConfig(project.ServerKoa)

	cfg.QuoteStyle = project.QuoteSingle
	rules := excludeRules(cfg)
	assert.True(t, excluded(t, rules, stagedLintDouble))
	assert.False(t, excluded(t, rules, stagedLintSingle))

	cfg.QuoteStyle = project.QuoteDouble
	rules = excludeRules(cfg)
	assert.True(t, excluded(t, rules, stagedLintSingle))
	assert.False(t, excluded(t, rules, stagedLintDouble))
}

func TestRenameRules_SelectRuleset(t *testing.T) {
	cfg := baseConfig(project.ServerHapi)
	cfg.QuoteStyle = project.QuoteSingle

	renames := renameRules(cfg)
	assert.Contains(t, renames, Rename{From: stagedLintSingle, To: ".eslintrc.json"})
	assert.Contains(t, renames, Rename{From: stagedGitignore, To: ".gitignore"})
	assert.Contains(t, renames, Rename{From: stagedEnv, To: ".env"})
}

func TestRelocatedRoot_SlugsName(t *testing.T) {
	got := RelocatedRoot("/work", "My Cool App")
	assert.Equal(t, filepath.Join("/work", "my-cool-app"), got)

	assert.Equal(t, filepath.Join("/work", "creme-brulee"),
		RelocatedRoot("/work", "Crème Brûlée"))
}

func TestBuild_ManifestDescriptionPreserved(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, manifest.Filename),
		[]byte(`{"description": "keep me"}`), 0o644))

	cfg := baseConfig(project.ServerHapi)
	cfg.Description = "prompted value"

	man := manifest.Load(root)
	Build(cfg, man, project.Options{}, root)

	assert.Equal(t, "keep me", man.Description())
}

func TestBuild_KeywordUnion(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, manifest.Filename),
		[]byte(`{"keywords": ["web", "ui"]}`), 0o644))

	cfg := baseConfig(project.ServerHapi)
	cfg.Keywords = []string{"ui", "cache", "cache"}

	man := manifest.Load(root)
	Build(cfg, man, project.Options{}, root)

	assert.ElementsMatch(t, []string{"web", "ui", "cache"}, man.Keywords())
}

func TestBuild_AuthorOmitsEmptySubfields(t *testing.T) {
	cfg := baseConfig(project.ServerHapi)
	cfg.AuthorName = "Jo Doe"

	man := manifest.New()
	Build(cfg, man, project.Options{}, t.TempDir())

	author, ok := man.Author()
	require.True(t, ok)
	assert.Equal(t, manifest.Person{Name: "Jo Doe"}, author)

	root := t.TempDir()
	require.NoError(t, man.Save(root))
	content, err := os.ReadFile(filepath.Join(root, manifest.Filename))
	require.NoError(t, err)
	assert.NotContains(t, string(content), `"email"`)
	assert.NotContains(t, string(content), `"url"`)
}

func TestBuild_NoAuthorWritesNoAuthorField(t *testing.T) {
	man := manifest.New()
	Build(baseConfig(project.ServerHapi), man, project.Options{}, t.TempDir())

	_, ok := man.Author()
	assert.False(t, ok)

	root := t.TempDir()
	require.NoError(t, man.Save(root))
	content, err := os.ReadFile(filepath.Join(root, manifest.Filename))
	require.NoError(t, err)
	assert.NotContains(t, string(content), `"author"`)
}

func TestBuild_ExistingAuthorPreserved(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, manifest.Filename),
		[]byte(`{"author": "Prior Owner <prior@owner.dev>"}`), 0o644))

	cfg := baseConfig(project.ServerHapi)
	cfg.AuthorName = "Jo Doe"

	man := manifest.Load(root)
	Build(cfg, man, project.Options{}, root)

	author, ok := man.Author()
	require.True(t, ok)
	assert.Equal(t, "Prior Owner", author.Name)
}

func TestBuild_LicenseAuthorContactForm(t *testing.T) {
	cfg := baseConfig(project.ServerHapi)
	cfg.AuthorName = "Jo Doe"
	cfg.AuthorEmail = "jo@doe.dev"

	p := Build(cfg, manifest.New(), project.Options{License: true}, t.TempDir())

	var found bool
	for _, inv := range p.SubGens {
		if inv.ID == "license" {
			found = true
			assert.Equal(t, "Jo Doe <jo@doe.dev>", inv.Params["author"])
		}
	}
	require.True(t, found)
}

func TestBuild_FrameworkDependency(t *testing.T) {
	man := manifest.New()
	Build(baseConfig(project.ServerKoa), man, project.Options{}, t.TempDir())
	assert.Contains(t, man.DependencyNames("dependencies"), "koa")
}

func TestBuild_MainPathUsesProjectRoot(t *testing.T) {
	man := manifest.New()
	Build(baseConfig(project.ServerHapi), man, project.Options{ProjectRoot: "lib"}, t.TempDir())
	assert.Equal(t, "lib/server/index.js", man.GetString("main"))
}

func TestBuild_PostActionsGatedByQuoteStyle(t *testing.T) {
	cfg := baseConfig(project.ServerExpress)
	cfg.QuoteStyle = project.QuoteSingle
	p := Build(cfg, manifest.New(), project.Options{}, t.TempDir())
	assert.Equal(t, []Action{ActionInstall, ActionLintFix}, p.PostActions)

	cfg.QuoteStyle = project.QuoteDouble
	p = Build(cfg, manifest.New(), project.Options{}, t.TempDir())
	assert.Equal(t, []Action{ActionInstall}, p.PostActions)
}

func TestBuild_SubGenGating(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("# hi"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "plugins"), 0o755))

	cfg := baseConfig(project.ServerHapi)
	cfg.VCSAccount = "jodoe"
	p := Build(cfg, manifest.New(), project.Options{License: true, CI: true}, root)

	ids := make([]string, 0, len(p.SubGens))
	for _, inv := range p.SubGens {
		ids = append(ids, inv.ID)
	}

	assert.Contains(t, ids, "vcs-init")
	assert.Contains(t, ids, "editorconfig")
	assert.Contains(t, ids, "license")
	assert.Contains(t, ids, "config-file")
	assert.Contains(t, ids, "ci")
	assert.NotContains(t, ids, "readme", "existing README must not be clobbered")
	assert.NotContains(t, ids, "webapp-plugin", "existing plugins dir must not be clobbered")
}

func TestBuild_LicenseGate(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, manifest.Filename),
		[]byte(`{"license": "Apache-2.0"}`), 0o644))

	man := manifest.Load(root)
	p := Build(baseConfig(project.ServerHapi), man, project.Options{License: true}, root)

	for _, inv := range p.SubGens {
		assert.NotEqual(t, "license", inv.ID, "declared license must suppress the generator")
	}
	assert.Equal(t, "Apache-2.0", man.License())
}

func TestBuild_SubGenParamsAreMinimal(t *testing.T) {
	cfg := baseConfig(project.ServerExpress)
	cfg.VCSAccount = "jodoe"
	p := Build(cfg, manifest.New(), project.Options{}, t.TempDir())

	for _, inv := range p.SubGens {
		if inv.ID == "vcs-init" {
			assert.Equal(t, map[string]string{"name": "my-app", "account": "jodoe"}, inv.Params)
		}
	}
}
