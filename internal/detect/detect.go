// Package detect infers prior configuration choices from filesystem
// markers in the destination root.
//
// Detection is a table of named predicates, one marker path per
// inferable field, evaluated with pure read-only stat probes. A missing
// marker is a meaningful "absent" signal, never an error.
package detect

import (
	"os"
	"path/filepath"

	"github.com/webgen/cli/internal/output"
	"github.com/webgen/cli/internal/project"
)

// Marker paths, relative to the destination root. The planner reuses
// these when building template exclusion rules, so detection and
// generation stay consistent.
const (
	// MarkerExpress is the Express server entry file.
	MarkerExpress = "server/express.js"

	// MarkerKoa is the Koa server entry file.
	MarkerKoa = "server/koa.js"

	// MarkerHapi is the hapi server entry file.
	MarkerHapi = "server/hapi.js"

	// MarkerPWA is the client-side service-worker registration file.
	MarkerPWA = "client/register-sw.js"

	// MarkerSSR is the server-side rendering plugin file.
	MarkerSSR = "server/plugins/ssr.js"

	// MarkerLegacyLint is the legacy single-quote lint configuration.
	MarkerLegacyLint = ".eslintrc"
)

// ServerMarker returns the entry file for a server framework.
func ServerMarker(s project.ServerType) string {
	switch s {
	case project.ServerExpress:
		return MarkerExpress
	case project.ServerKoa:
		return MarkerKoa
	default:
		return MarkerHapi
	}
}

// marker maps one filesystem path to the config mutation it implies.
type marker struct {
	path  string
	field project.Field
	apply func(*project.Config)
}

// markers is the predicate table for single-marker fields. serverType is
// handled separately because it is a prioritized choice, not an
// independent boolean.
var markers = []marker{
	{
		path:  MarkerPWA,
		field: project.FieldPWA,
		apply: func(c *project.Config) { c.PWA = true },
	},
	{
		path:  MarkerSSR,
		field: project.FieldAutoSSR,
		apply: func(c *project.Config) { c.AutoSSR = true },
	},
	{
		path:  MarkerLegacyLint,
		field: project.FieldQuoteStyle,
		apply: func(c *project.Config) { c.QuoteStyle = project.QuoteSingle },
	},
}

// Detect probes root and returns a partial configuration containing only
// fields it can infer with certainty from existing files.
func Detect(root string) *project.Config {
	cfg := project.NewConfig()

	// Server frameworks are mutually exclusive; the first marker found in
	// priority order wins. No marker means the field stays unresolved
	// (the prompt's default is hapi, the overall fallback).
	for _, s := range project.ServerTypes() {
		if exists(root, ServerMarker(s)) {
			cfg.ServerType = s
			cfg.Mark(project.FieldServerType, project.SourceDetected)
			output.Debug("detected server framework", "server", s, "marker", ServerMarker(s))
			break
		}
	}

	for _, m := range markers {
		if exists(root, m.path) {
			m.apply(cfg)
			cfg.Mark(m.field, project.SourceDetected)
			output.Debug("detected feature marker", "field", m.field, "marker", m.path)
		}
	}

	return cfg
}

func exists(root, rel string) bool {
	_, err := os.Stat(filepath.Join(root, rel))
	return err == nil
}
