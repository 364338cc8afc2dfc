package prompt

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"

	"github.com/webgen/cli/internal/output"
	"github.com/webgen/cli/internal/project"
)

// AccountLookup resolves a VCS account from an email, best effort.
type AccountLookup interface {
	AccountByEmail(ctx context.Context, email string) string
}

// Options configures the orchestrator.
type Options struct {
	// Workdir supplies the default project name (its basename).
	Workdir string

	// DefaultCreateDirectory is the default answer for the relocation
	// prompt; true when the destination is not yet a project.
	DefaultCreateDirectory bool

	// AcceptDefaults answers every prompt with its default without
	// asking (non-interactive mode).
	AcceptDefaults bool
}

// Orchestrator fills unresolved configuration fields interactively.
type Orchestrator struct {
	asker  Asker
	lookup AccountLookup
	opts   Options
}

// New creates an orchestrator.
func New(asker Asker, lookup AccountLookup, opts Options) *Orchestrator {
	return &Orchestrator{asker: asker, lookup: lookup, opts: opts}
}

// Run prompts for each unresolved field, in the order given by the
// resolver, and records every answer on cfg. The VCS account, when not
// supplied by flag, is filled by the identity lookup after the author
// email is known; lookup failure yields an empty account.
func (o *Orchestrator) Run(ctx context.Context, cfg *project.Config, unresolved []project.Field) error {
	for _, f := range unresolved {
		if cfg.Resolved(f) {
			continue
		}
		if err := o.ask(cfg, f); err != nil {
			return err
		}
	}

	if cfg.VCSAccount == "" && o.lookup != nil {
		cfg.VCSAccount = o.lookup.AccountByEmail(ctx, cfg.AuthorEmail)
		if cfg.VCSAccount != "" {
			output.Debug("account resolved from email", "account", cfg.VCSAccount)
		}
	}

	return nil
}

func (o *Orchestrator) ask(cfg *project.Config, f project.Field) error {
	source := project.SourcePrompt
	if o.opts.AcceptDefaults {
		source = project.SourceDefault
	}

	var err error
	switch f {
	case project.FieldName:
		def := slug.Make(filepath.Base(o.opts.Workdir))
		var name string
		name, err = o.input("Project name", def)
		// Slug casing keeps the name usable as a directory and package name.
		cfg.Name = slug.Make(name)

	case project.FieldDescription:
		cfg.Description, err = o.input("Description", "A fresh web application")

	case project.FieldHomepage:
		cfg.Homepage, err = o.input("Homepage", "")

	case project.FieldServerType:
		var choice string
		choice, err = o.selectOne("Server framework", serverOptions(), string(project.ServerHapi))
		cfg.ServerType = project.ServerType(choice)

	case project.FieldAuthorName:
		cfg.AuthorName, err = o.input("Author name", "")

	case project.FieldAuthorEmail:
		cfg.AuthorEmail, err = o.input("Author email", "")

	case project.FieldAuthorURL:
		cfg.AuthorURL, err = o.input("Author URL", "")

	case project.FieldKeywords:
		var raw string
		raw, err = o.input("Package keywords (comma separated)", "")
		cfg.Keywords = SplitKeywords(raw)

	case project.FieldPWA:
		cfg.PWA, err = o.confirm("Add progressive web app support?", true)

	case project.FieldAutoSSR:
		cfg.AutoSSR, err = o.confirm("Add automatic server-side rendering?", true)

	case project.FieldQuoteStyle:
		var choice string
		choice, err = o.selectOne("Quote style",
			[]string{string(project.QuoteSingle), string(project.QuoteDouble)},
			string(project.QuoteDouble))
		cfg.QuoteStyle = project.QuoteStyle(choice)

	case project.FieldCreateDirectory:
		cfg.CreateDirectory, err = o.confirm("Create a directory for your project?", o.opts.DefaultCreateDirectory)
	}

	if err != nil {
		return err
	}
	cfg.Mark(f, source)
	return nil
}

func (o *Orchestrator) input(title, def string) (string, error) {
	if o.opts.AcceptDefaults {
		return def, nil
	}
	return o.asker.Input(title, def)
}

func (o *Orchestrator) selectOne(title string, options []string, def string) (string, error) {
	if o.opts.AcceptDefaults {
		return def, nil
	}
	return o.asker.Select(title, options, def)
}

func (o *Orchestrator) confirm(title string, def bool) (bool, error) {
	if o.opts.AcceptDefaults {
		return def, nil
	}
	return o.asker.Confirm(title, def)
}

func serverOptions() []string {
	types := project.ServerTypes()
	out := make([]string, 0, len(types))
	for _, s := range types {
		out = append(out, string(s))
	}
	return out
}

// SplitKeywords splits free keyword text on commas, trims surrounding
// whitespace, and discards empty segments.
func SplitKeywords(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
