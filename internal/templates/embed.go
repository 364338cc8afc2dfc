// Package templates provides the embedded application template tree and
// its rule-aware renderer.
package templates

import "embed"

// appFS holds the application template subtree. Dotfiles are staged
// under non-hidden names (gitignore, env, eslintrc-*.json) so embedding
// and packaging tools never treat them specially; the renderer renames
// them to their hidden form after rendering completes.
//
//go:embed all:app
var appFS embed.FS

// appRoot is the root directory of the embedded template tree.
const appRoot = "app"

// Data holds the values substituted into template files.
type Data struct {
	// Name is the project name in slug form.
	Name string

	// Description is the project description.
	Description string

	// Homepage is the project homepage URL, possibly empty.
	Homepage string

	// Server is the chosen server framework (express, koa, hapi).
	Server string

	// PWA enables the service-worker client files.
	PWA bool

	// AutoSSR enables the server-side rendering plugin.
	AutoSSR bool
}
