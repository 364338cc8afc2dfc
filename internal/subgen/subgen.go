// Package subgen holds the independent sub-generators: self-contained
// units each responsible for one narrow slice of project setup. The
// core only decides whether to invoke them and with which minimal
// parameter record; their success or failure is opaque to it.
package subgen

import (
	"fmt"
	"sort"

	oerrors "github.com/webgen/cli/internal/errors"
	"github.com/webgen/cli/internal/output"
)

// Params is the minimal named parameter record passed to a generator.
type Params map[string]string

// Func generates one slice of project setup under root.
type Func func(root string, p Params) error

// registry maps generator IDs to implementations.
var registry = map[string]Func{
	"vcs-init":      VCSInit,
	"editorconfig":  EditorConfig,
	"license":       License,
	"readme":        Readme,
	"config-file":   ConfigFile,
	"webapp-plugin": WebAppPlugin,
	"ci":            CI,
}

// IDs returns all registered generator IDs, sorted.
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Run dispatches a generator by ID.
func Run(id, root string, p Params) error {
	gen, ok := registry[id]
	if !ok {
		return oerrors.NewNotFoundError(
			fmt.Sprintf("unknown sub-generator: %s", id), "",
			"This is a bug in the generation planner.")
	}
	output.Debug("running sub-generator", "id", id)
	return gen(root, p)
}
