// Package plan turns a frozen project configuration into a concrete,
// conditional generation plan: which template files to render or skip,
// which staged files to rename, which sub-generators to invoke with
// which parameters, and which post-generation actions to run.
package plan

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/gosimple/slug"

	"github.com/webgen/cli/internal/detect"
	"github.com/webgen/cli/internal/manifest"
	"github.com/webgen/cli/internal/output"
	"github.com/webgen/cli/internal/project"
)

// Action is a post-generation step.
type Action string

const (
	// ActionInstall installs the manifest dependencies.
	ActionInstall Action = "install"

	// ActionLintFix runs the formatter's auto-fix pass. Scheduled only for
	// the single-quote style, which must reformat the double-quote
	// templates that were just rendered.
	ActionLintFix Action = "lint-fix"
)

// Rename maps a staged template output to its final (hidden) name.
type Rename struct {
	From string
	To   string
}

// Invocation is one sub-generator call with its derived parameter set.
// Parameters are a minimal subset, never the whole configuration.
type Invocation struct {
	ID     string
	Params map[string]string
}

// Plan is the executable description of one generation run.
type Plan struct {
	// DestRoot is the destination root all paths are relative to.
	DestRoot string

	// Manifest is the patched manifest, ready to save.
	Manifest *manifest.Manifest

	// Excludes are doublestar globs of template files that must not be
	// rendered or copied.
	Excludes []string

	// RawCopies are globs of files copied verbatim, bypassing the
	// template engine. Image assets live here: template syntax characters
	// inside binary content must never be interpreted.
	RawCopies []string

	// Renames are applied only after all template rendering completes.
	Renames []Rename

	// SubGens are the ordered sub-generator invocations.
	SubGens []Invocation

	// PostActions run after everything else, in order.
	PostActions []Action
}

// RelocatedRoot derives the relocated destination for a project name:
// a child directory named by the slugified, transliterated name.
func RelocatedRoot(root, name string) string {
	return filepath.Join(root, slug.Make(name))
}

// frameworkDeps supplies the runtime dependency of each server framework.
var frameworkDeps = map[project.ServerType]map[string]any{
	project.ServerExpress: {"express": "^4.19.2"},
	project.ServerKoa:     {"koa": "^2.15.3"},
	project.ServerHapi:    {"@hapi/hapi": "^21.3.10"},
}

// subGenSpec is one row of the sub-generator dispatch table: a
// capability, its invocation predicate, and its parameter builder.
type subGenSpec struct {
	id     string
	gate   func(b buildContext) bool
	params func(b buildContext) map[string]string
}

type buildContext struct {
	cfg      *project.Config
	man      *manifest.Manifest
	opts     project.Options
	destRoot string
}

func (b buildContext) missing(rel string) bool {
	_, err := os.Stat(filepath.Join(b.destRoot, rel))
	return os.IsNotExist(err)
}

// subGens is evaluated in order; each invocation is gated by an
// existence check so prior output is never clobbered.
var subGens = []subGenSpec{
	{
		id:   "vcs-init",
		gate: func(buildContext) bool { return true },
		params: func(b buildContext) map[string]string {
			return map[string]string{
				"name":    b.cfg.Name,
				"account": b.cfg.VCSAccount,
			}
		},
	},
	{
		id:   "editorconfig",
		gate: func(buildContext) bool { return true },
		params: func(buildContext) map[string]string {
			return map[string]string{}
		},
	},
	{
		id: "license",
		gate: func(b buildContext) bool {
			return b.opts.License && b.man.License() == ""
		},
		params: func(b buildContext) map[string]string {
			return map[string]string{
				"license": "MIT",
				"author":  manifest.Person{Name: b.cfg.AuthorName, Email: b.cfg.AuthorEmail}.String(),
				"year":    fmt.Sprintf("%d", time.Now().Year()),
			}
		},
	},
	{
		id: "readme",
		gate: func(b buildContext) bool {
			return b.missing("README.md")
		},
		params: func(b buildContext) map[string]string {
			return map[string]string{
				"name":        b.cfg.Name,
				"description": b.cfg.Description,
				"account":     b.cfg.VCSAccount,
				"content":     b.opts.Readme,
			}
		},
	},
	{
		id: "config-file",
		gate: func(b buildContext) bool {
			return b.missing("webgen.toml")
		},
		params: func(b buildContext) map[string]string {
			return map[string]string{
				"name":   b.cfg.Name,
				"server": string(b.cfg.ServerType),
			}
		},
	},
	{
		id: "webapp-plugin",
		gate: func(b buildContext) bool {
			return b.missing("plugins")
		},
		params: func(b buildContext) map[string]string {
			return map[string]string{
				"name": b.cfg.Name,
			}
		},
	},
	{
		id: "ci",
		gate: func(b buildContext) bool {
			return b.opts.CI && b.missing(filepath.Join(".github", "workflows", "ci.yml"))
		},
		params: func(b buildContext) map[string]string {
			return map[string]string{
				"name": b.cfg.Name,
			}
		},
	},
}

// Build computes the generation plan for a resolved configuration.
// destRoot must already be the post-relocation destination.
func Build(cfg *project.Config, man *manifest.Manifest, opts project.Options, destRoot string) *Plan {
	b := buildContext{cfg: cfg, man: man, opts: opts, destRoot: destRoot}

	p := &Plan{
		DestRoot:  destRoot,
		Manifest:  man,
		Excludes:  excludeRules(cfg),
		RawCopies: []string{"**/*.png", "**/*.ico"},
		Renames:   renameRules(cfg),
	}

	patchManifest(cfg, man, opts)

	for _, spec := range subGens {
		if !spec.gate(b) {
			output.Debug("sub-generator skipped", "id", spec.id)
			continue
		}
		p.SubGens = append(p.SubGens, Invocation{ID: spec.id, Params: spec.params(b)})
	}

	p.PostActions = append(p.PostActions, ActionInstall)
	if cfg.QuoteStyle == project.QuoteSingle {
		p.PostActions = append(p.PostActions, ActionLintFix)
	}

	return p
}

// excludeRules selects exactly one server-framework subtree and drops
// feature files that were not chosen. Every framework excludes the entry
// files of the other two; the rule set is mutually exclusive and
// exhaustive for any choice.
func excludeRules(cfg *project.Config) []string {
	var rules []string
	for _, s := range project.ServerTypes() {
		if s == cfg.ServerType {
			continue
		}
		rules = append(rules, detect.ServerMarker(s))
	}

	if !cfg.PWA {
		rules = append(rules, detect.MarkerPWA, "client/sw.js")
	}
	if !cfg.AutoSSR {
		rules = append(rules, detect.MarkerSSR)
	}

	// Exactly one lint ruleset survives.
	switch cfg.QuoteStyle {
	case project.QuoteSingle:
		rules = append(rules, stagedLintDouble)
	default:
		rules = append(rules, stagedLintSingle)
	}

	return rules
}

// Staged names of files that packaging tools would mistreat in their
// hidden form. They are rendered under these names and renamed after the
// subtree's rendering completes.
const (
	stagedGitignore  = "gitignore"
	stagedEnv        = "env"
	stagedLintSingle = "eslintrc-single.json"
	stagedLintDouble = "eslintrc-double.json"
)

func renameRules(cfg *project.Config) []Rename {
	renames := []Rename{
		{From: stagedGitignore, To: ".gitignore"},
		{From: stagedEnv, To: ".env"},
	}
	if cfg.QuoteStyle == project.QuoteSingle {
		renames = append(renames, Rename{From: stagedLintSingle, To: ".eslintrc.json"})
	} else {
		renames = append(renames, Rename{From: stagedLintDouble, To: ".eslintrc.json"})
	}
	return renames
}

// patchManifest applies the defaults-deep manifest patch: existing
// values win for scalar fields, structural fields are supplied only if
// absent, prompted keywords are unioned in, and dependency groups are
// normalized for deterministic output.
func patchManifest(cfg *project.Config, man *manifest.Manifest, opts project.Options) {
	mainPath := path.Join(opts.ProjectRoot, "server", "index.js")

	defaults := map[string]any{
		"name":        cfg.Name,
		"version":     "1.0.0",
		"description": cfg.Description,
		"homepage":    cfg.Homepage,
		"main":        mainPath,
		"files":       []any{"server", "client", "assets"},
		"keywords":    []any{},
		"scripts": map[string]any{
			"start": "node " + mainPath,
			"test":  "node --test",
		},
		"devDependencies": map[string]any{"eslint": "^9.9.0"},
	}
	if deps, ok := frameworkDeps[cfg.ServerType]; ok {
		defaults["dependencies"] = deps
	}
	if opts.License {
		defaults["license"] = "MIT"
	}

	man.ApplyDefaults(defaults)

	// An existing author record wins; empty prompted subfields are
	// omitted rather than written as empty strings.
	author := manifest.Person{Name: cfg.AuthorName, Email: cfg.AuthorEmail, URL: cfg.AuthorURL}
	if _, ok := man.Author(); !ok && author != (manifest.Person{}) {
		man.SetAuthor(author)
	}

	man.AddKeywords(cfg.Keywords)
	man.NormalizeDependencies()
}
