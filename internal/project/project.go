// Package project defines the shared configuration model for a scaffolded
// web application: the fields a run must resolve, where each value came
// from, and the CLI options that feed the resolver.
package project

// ServerType identifies the server framework a project is built on.
type ServerType string

const (
	// ServerExpress is the Express framework.
	ServerExpress ServerType = "express"

	// ServerKoa is the Koa framework.
	ServerKoa ServerType = "koa"

	// ServerHapi is the hapi framework. It is the overall default when no
	// other framework is chosen or detected.
	ServerHapi ServerType = "hapi"
)

// ServerTypes returns the supported frameworks in detection priority order.
// The planner relies on the same order when building exclusion rules.
func ServerTypes() []ServerType {
	return []ServerType{ServerExpress, ServerKoa, ServerHapi}
}

// IsValidServerType checks if a server type is one of the supported three.
func IsValidServerType(s string) bool {
	switch ServerType(s) {
	case ServerExpress, ServerKoa, ServerHapi:
		return true
	default:
		return false
	}
}

// QuoteStyle selects the lint ruleset installed into the project.
type QuoteStyle string

const (
	// QuoteSingle installs the single-quote ruleset and triggers a
	// post-generation lint fix pass over the rendered templates.
	QuoteSingle QuoteStyle = "single"

	// QuoteDouble installs the double-quote ruleset. It is the default.
	QuoteDouble QuoteStyle = "double"
)

// Field names a single resolvable configuration decision.
type Field string

const (
	FieldName            Field = "name"
	FieldDescription     Field = "description"
	FieldHomepage        Field = "homepage"
	FieldServerType      Field = "serverType"
	FieldAuthorName      Field = "authorName"
	FieldAuthorEmail     Field = "authorEmail"
	FieldAuthorURL       Field = "authorUrl"
	FieldKeywords        Field = "keywords"
	FieldPWA             Field = "pwa"
	FieldAutoSSR         Field = "autoSsr"
	FieldQuoteStyle      Field = "quoteStyle"
	FieldCreateDirectory Field = "createDirectory"
)

// PromptOrder is the fixed order in which unresolved fields are prompted.
func PromptOrder() []Field {
	return []Field{
		FieldName,
		FieldDescription,
		FieldHomepage,
		FieldServerType,
		FieldAuthorName,
		FieldAuthorEmail,
		FieldAuthorURL,
		FieldKeywords,
		FieldPWA,
		FieldAutoSSR,
		FieldQuoteStyle,
		FieldCreateDirectory,
	}
}

// Source indicates where a configuration value came from.
type Source string

const (
	// SourceFlag indicates the value came from a command-line option.
	SourceFlag Source = "flag"
	// SourceManifest indicates the value came from the project manifest.
	SourceManifest Source = "manifest"
	// SourceDetected indicates the value was inferred from a filesystem marker.
	SourceDetected Source = "detected"
	// SourceState indicates the value came from the persisted state store.
	SourceState Source = "state"
	// SourcePrompt indicates the value was supplied interactively.
	SourcePrompt Source = "prompt"
	// SourceDefault indicates the built-in default was applied.
	SourceDefault Source = "default"
)

// Config is the full set of decisions needed for planning. A field is
// authoritative only once recorded in Sources; zero values alone carry no
// meaning.
type Config struct {
	Name        string
	Description string
	Homepage    string
	ServerType  ServerType

	AuthorName  string
	AuthorEmail string
	AuthorURL   string

	Keywords []string

	PWA             bool
	AutoSSR         bool
	QuoteStyle      QuoteStyle
	CreateDirectory bool

	// VCSAccount is the identity-provider account used for remotes and
	// README badges. Best effort; may stay empty.
	VCSAccount string

	// Sources records the origin of every resolved field.
	Sources map[Field]Source
}

// NewConfig returns an empty configuration with no resolved fields.
func NewConfig() *Config {
	return &Config{Sources: make(map[Field]Source)}
}

// Resolved reports whether a field has an authoritative value.
func (c *Config) Resolved(f Field) bool {
	_, ok := c.Sources[f]
	return ok
}

// Mark records the source of a resolved field.
func (c *Config) Mark(f Field, src Source) {
	c.Sources[f] = src
}

// Options is the already-parsed CLI option surface consumed by the
// resolver and planner. The core never reparses flags.
type Options struct {
	// Name overrides the project name.
	Name string

	// Account is the identity-provider account (e.g. GitHub login).
	Account string

	// ProjectRoot is the relative source root used when computing the
	// manifest's main field (e.g. "lib").
	ProjectRoot string

	// Readme, when non-empty, is injected verbatim as README content.
	Readme string

	// License controls whether the license sub-generator may run.
	License bool

	// CI controls whether a CI workflow is generated.
	CI bool

	// SkipInstall suppresses the dependency install post action.
	SkipInstall bool

	// Yes answers every prompt with its default (non-interactive mode).
	Yes bool
}
