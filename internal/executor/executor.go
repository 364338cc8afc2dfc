// Package executor applies a generation plan to the filesystem: it
// renders the template tree, saves the patched manifest, runs the
// planned sub-generators, and finishes with the post actions.
package executor

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	oerrors "github.com/webgen/cli/internal/errors"
	"github.com/webgen/cli/internal/manifest"
	"github.com/webgen/cli/internal/output"
	"github.com/webgen/cli/internal/plan"
	"github.com/webgen/cli/internal/project"
	"github.com/webgen/cli/internal/subgen"
	"github.com/webgen/cli/internal/templates"
)

// CommandRunner executes an external command in dir.
type CommandRunner func(ctx context.Context, dir, name string, args ...string) error

// Executor applies plans. The zero value is not usable; construct with
// New.
type Executor struct {
	run CommandRunner
}

// New returns an Executor running external commands directly.
func New() *Executor {
	return &Executor{run: runCommand}
}

// NewWithRunner returns an Executor with a custom command runner.
func NewWithRunner(run CommandRunner) *Executor {
	return &Executor{run: run}
}

// Result summarizes one applied plan.
type Result struct {
	// Created lists the relative paths written by the template pass,
	// plus the manifest.
	Created []string

	// Skipped lists template files left untouched because they already
	// existed in the destination.
	Skipped []string

	// SubGens lists the sub-generator IDs that ran.
	SubGens []string

	// InstallSkipped reports that the dependency install was left to
	// the user.
	InstallSkipped bool
}

// Apply executes the plan against its destination root.
func (e *Executor) Apply(ctx context.Context, p *plan.Plan, data templates.Data, opts project.Options) (*Result, error) {
	if err := os.MkdirAll(p.DestRoot, 0o755); err != nil {
		return nil, fmt.Errorf("creating destination: %w", err)
	}

	renames := make(map[string]string, len(p.Renames))
	for _, r := range p.Renames {
		renames[r.From] = r.To
	}

	created, skipped, err := templates.Render(p.DestRoot, data, templates.Rules{
		Excludes:  p.Excludes,
		RawCopies: p.RawCopies,
		Renames:   renames,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering templates: %w", err)
	}

	if err := p.Manifest.Save(p.DestRoot); err != nil {
		return nil, fmt.Errorf("saving %s: %w", manifest.Filename, err)
	}
	created = append(created, manifest.Filename)

	res := &Result{Created: created, Skipped: skipped}
	for _, inv := range p.SubGens {
		if err := subgen.Run(inv.ID, p.DestRoot, subgen.Params(inv.Params)); err != nil {
			return nil, fmt.Errorf("sub-generator %s: %w", inv.ID, err)
		}
		res.SubGens = append(res.SubGens, inv.ID)
	}

	for _, action := range p.PostActions {
		if err := e.runAction(ctx, action, p.DestRoot, opts, res); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func (e *Executor) runAction(ctx context.Context, action plan.Action, dir string, opts project.Options, res *Result) error {
	switch action {
	case plan.ActionInstall:
		if opts.SkipInstall {
			output.Info("Skipping dependency install; run npm install yourself")
			res.InstallSkipped = true
			return nil
		}
		err := output.RunWithSpinner(ctx, func() error {
			return e.run(ctx, dir, "npm", "install")
		}, output.WithTitle("Installing dependencies..."))
		if err != nil {
			return fmt.Errorf("installing dependencies: %w", err)
		}
		return nil

	case plan.ActionLintFix:
		if opts.SkipInstall {
			// The fixer is a dev dependency; without an install it
			// cannot run.
			output.Debug("lint fix skipped, no installed dependencies")
			return nil
		}
		err := output.RunWithSpinner(ctx, func() error {
			return e.run(ctx, dir, "npx", "eslint", "--fix", ".")
		}, output.WithTitle("Applying quote style..."))
		if err != nil {
			// A lint failure leaves a working project behind; surface
			// it without discarding the run.
			output.Warn("formatter pass failed", "error", err)
		}
		return nil

	default:
		return oerrors.NewValidationError(
			fmt.Sprintf("unknown post action: %s", action), "", "",
			"This is a bug in the generation planner.")
	}
}

func runCommand(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w\n%s", name, err, out)
	}
	return nil
}
