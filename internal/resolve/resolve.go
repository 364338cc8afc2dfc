// Package resolve merges configuration from ranked sources into a
// partial project configuration.
//
// Merge precedence per field, highest first: explicit CLI option, value
// already present in the manifest or detected on the filesystem,
// previously stored state, and finally the interactive prompt for
// whatever is still unresolved.
package resolve

import (
	"github.com/webgen/cli/internal/manifest"
	"github.com/webgen/cli/internal/output"
	"github.com/webgen/cli/internal/project"
	"github.com/webgen/cli/internal/state"
)

// Inputs are the ranked sources consumed by Merge.
type Inputs struct {
	// Manifest is the existing project manifest, possibly empty.
	Manifest *manifest.Manifest

	// Options is the already-parsed CLI option surface.
	Options project.Options

	// Detected is the feature detector's partial configuration.
	Detected *project.Config

	// State is the persisted state store snapshot.
	State *state.Store
}

// Merge builds a partial configuration from the inputs and returns it
// together with the fields that still require an interactive prompt, in
// prompt order.
func Merge(in Inputs) (*project.Config, []project.Field) {
	cfg := project.NewConfig()

	resolveName(cfg, in)
	resolveManifestString(cfg, project.FieldDescription, in.Manifest.Description())
	resolveManifestString(cfg, project.FieldHomepage, in.Manifest.Homepage())
	resolveServerType(cfg, in)
	resolveAuthor(cfg, in)
	resolveDetectedBool(cfg, in, project.FieldPWA, func(c *project.Config, v bool) { c.PWA = v })
	resolveDetectedBool(cfg, in, project.FieldAutoSSR, func(c *project.Config, v bool) { c.AutoSSR = v })
	resolveQuoteStyle(cfg, in)

	// The VCS account is not part of the prompt order; the flag wins and
	// the identity lookup fills it best-effort later.
	if in.Options.Account != "" {
		cfg.VCSAccount = in.Options.Account
	}

	// Keywords are always gathered interactively and unioned with the
	// manifest set by the planner; createDirectory is a per-run decision
	// and is never inferred.
	var unresolved []project.Field
	for _, f := range project.PromptOrder() {
		if !cfg.Resolved(f) {
			unresolved = append(unresolved, f)
		}
	}
	return cfg, unresolved
}

func resolveName(cfg *project.Config, in Inputs) {
	if in.Options.Name != "" {
		cfg.Name = in.Options.Name
		cfg.Mark(project.FieldName, project.SourceFlag)
		if m := in.Manifest.Name(); m != "" && m != in.Options.Name {
			output.Debug("manifest name shadowed by flag", "manifest", m, "flag", in.Options.Name)
		}
		return
	}
	if m := in.Manifest.Name(); m != "" {
		cfg.Name = m
		cfg.Mark(project.FieldName, project.SourceManifest)
	}
}

func resolveManifestString(cfg *project.Config, f project.Field, value string) {
	if value == "" {
		return
	}
	switch f {
	case project.FieldDescription:
		cfg.Description = value
	case project.FieldHomepage:
		cfg.Homepage = value
	}
	cfg.Mark(f, project.SourceManifest)
}

func resolveServerType(cfg *project.Config, in Inputs) {
	if in.Detected.Resolved(project.FieldServerType) {
		cfg.ServerType = in.Detected.ServerType
		cfg.Mark(project.FieldServerType, project.SourceDetected)
		if stored := in.State.Get(state.KeyServerType); stored != "" && stored != string(in.Detected.ServerType) {
			output.Debug("stored server framework shadowed by detection",
				"stored", stored, "detected", in.Detected.ServerType)
		}
		return
	}
	if stored := in.State.Get(state.KeyServerType); project.IsValidServerType(stored) {
		cfg.ServerType = project.ServerType(stored)
		cfg.Mark(project.FieldServerType, project.SourceState)
	}
}

func resolveAuthor(cfg *project.Config, in Inputs) {
	author, ok := in.Manifest.Author()
	if !ok {
		return
	}
	if author.Name != "" {
		cfg.AuthorName = author.Name
		cfg.Mark(project.FieldAuthorName, project.SourceManifest)
	}
	if author.Email != "" {
		cfg.AuthorEmail = author.Email
		cfg.Mark(project.FieldAuthorEmail, project.SourceManifest)
	}
	if author.URL != "" {
		cfg.AuthorURL = author.URL
		cfg.Mark(project.FieldAuthorURL, project.SourceManifest)
	}
}

func resolveDetectedBool(cfg *project.Config, in Inputs, f project.Field, set func(*project.Config, bool)) {
	if !in.Detected.Resolved(f) {
		return
	}
	switch f {
	case project.FieldPWA:
		set(cfg, in.Detected.PWA)
	case project.FieldAutoSSR:
		set(cfg, in.Detected.AutoSSR)
	}
	cfg.Mark(f, project.SourceDetected)
}

func resolveQuoteStyle(cfg *project.Config, in Inputs) {
	if in.Detected.Resolved(project.FieldQuoteStyle) {
		cfg.QuoteStyle = in.Detected.QuoteStyle
		cfg.Mark(project.FieldQuoteStyle, project.SourceDetected)
	}
}
