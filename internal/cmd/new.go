package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/webgen/cli/internal/detect"
	"github.com/webgen/cli/internal/executor"
	"github.com/webgen/cli/internal/identity"
	"github.com/webgen/cli/internal/manifest"
	"github.com/webgen/cli/internal/output"
	"github.com/webgen/cli/internal/plan"
	"github.com/webgen/cli/internal/project"
	"github.com/webgen/cli/internal/prompt"
	"github.com/webgen/cli/internal/resolve"
	"github.com/webgen/cli/internal/state"
	"github.com/webgen/cli/internal/templates"
)

var (
	newNameFlag        string
	newAccountFlag     string
	newProjectRootFlag string
	newReadmeFlag      string
	newLicenseFlag     bool
	newCIFlag          bool
	newSkipInstallFlag bool
	newYesFlag         bool
)

// NewNewCmd creates the new command.
func NewNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new [dir]",
		Short: "Scaffold a web application project",
		Long: `Scaffold a Node.js web application in dir (default: current directory).

Existing projects are safe to re-run: known values are taken from the
manifest, detected from the project tree, or recalled from stored state,
and only the remaining ones are prompted for. Files you already have are
never overwritten.

Examples:
  # Scaffold interactively in the current directory
  webgen new

  # Scaffold into ./shop, accepting every default
  webgen new shop --yes

  # Scaffold without installing dependencies
  webgen new --skip-install`,
		Args: cobra.MaximumNArgs(1),
		RunE: runNew,
	}

	cmd.Flags().StringVar(&newNameFlag, "name", "", "Project name (skips the name prompt)")
	cmd.Flags().StringVar(&newAccountFlag, "account", "", "Forge account for remotes and badges")
	cmd.Flags().StringVar(&newProjectRootFlag, "project-root", "", "Source root used for the manifest main field")
	cmd.Flags().StringVar(&newReadmeFlag, "readme", "", "Verbatim README content")
	cmd.Flags().BoolVar(&newLicenseFlag, "license", true, "Generate a LICENSE file")
	cmd.Flags().BoolVar(&newCIFlag, "ci", true, "Generate a CI workflow")
	cmd.Flags().BoolVar(&newSkipInstallFlag, "skip-install", false, "Do not install dependencies")
	cmd.Flags().BoolVarP(&newYesFlag, "yes", "y", false, "Accept every prompt default")

	return cmd
}

func runNew(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	workdir := "."
	if len(args) == 1 {
		workdir = args[0]
	}
	workdir, err := filepath.Abs(workdir)
	if err != nil {
		return fmt.Errorf("resolving directory: %w", err)
	}
	if err := os.MkdirAll(workdir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", workdir, err)
	}

	opts := newOptions(cmd)

	// Ranked sources: manifest, detection, stored state. Whatever they
	// leave unresolved goes to the prompt.
	man := manifest.Load(workdir)
	store := state.Open(workdir)
	cfg, unresolved := resolve.Merge(resolve.Inputs{
		Manifest: man,
		Options:  opts,
		Detected: detect.Detect(workdir),
		State:    store,
	})

	orch := prompt.New(prompt.TerminalAsker{}, identity.NewLookup(), prompt.Options{
		Workdir:                workdir,
		DefaultCreateDirectory: man.Empty(),
		AcceptDefaults:         opts.Yes || !output.IsTTY(),
	})
	if err := orch.Run(ctx, cfg, unresolved); err != nil {
		return fmt.Errorf("gathering configuration: %w", err)
	}

	destRoot := workdir
	if cfg.CreateDirectory {
		destRoot = plan.RelocatedRoot(workdir, cfg.Name)
		output.Debug("relocating destination", "root", destRoot)
		store.MoveTo(destRoot)
	}

	// Remember the framework choice for the next run; the write targets
	// the post-relocation root.
	store.Set(state.KeyServerType, string(cfg.ServerType))
	if err := store.Flush(); err != nil {
		output.Warn("saving project state failed", "error", err)
	}

	p := plan.Build(cfg, man, opts, destRoot)

	res, err := executor.New().Apply(ctx, p, templates.Data{
		Name:        cfg.Name,
		Description: cfg.Description,
		Homepage:    cfg.Homepage,
		Server:      string(cfg.ServerType),
		PWA:         cfg.PWA,
		AutoSSR:     cfg.AutoSSR,
	}, opts)
	if err != nil {
		return err
	}

	printNewSummary(cfg, destRoot, res)
	return nil
}

// newOptions builds the option surface from flags, falling back to the
// tool configuration for flags the user did not set.
func newOptions(cmd *cobra.Command) project.Options {
	opts := project.Options{
		Name:        newNameFlag,
		Account:     newAccountFlag,
		ProjectRoot: newProjectRootFlag,
		Readme:      newReadmeFlag,
		License:     newLicenseFlag,
		CI:          newCIFlag,
		SkipInstall: newSkipInstallFlag,
		Yes:         newYesFlag,
	}

	if toolConfig != nil {
		if opts.Account == "" {
			opts.Account = toolConfig.Account
		}
		if !cmd.Flags().Changed("license") {
			opts.License = toolConfig.LicenseEnabled()
		}
		if !cmd.Flags().Changed("ci") {
			opts.CI = toolConfig.CIEnabled()
		}
		if !cmd.Flags().Changed("skip-install") {
			opts.SkipInstall = toolConfig.SkipInstall
		}
	}

	return opts
}

func printNewSummary(cfg *project.Config, destRoot string, res *executor.Result) {
	output.Println(fmt.Sprintf("%s %s %s in %s\n",
		output.Checkmark(),
		output.StyleSummary.Render("Created project"),
		output.StyleNoun.Render(cfg.Name),
		output.StyleNoun.Render(destRoot)))

	entries := make([]output.FileEntry, 0, len(res.Created)+len(res.Skipped))
	for _, f := range res.Created {
		entries = append(entries, output.FileEntry{Path: f, Status: output.StatusCreated})
	}
	for _, f := range res.Skipped {
		entries = append(entries, output.FileEntry{Path: f, Status: output.StatusSkipped})
	}
	output.Print(output.RenderFileTree(entries, 32))

	output.Println("\n" + output.StyleAction.Render("Next steps:"))
	if res.InstallSkipped {
		output.Println(output.StyleDim.Render("  npm install"))
	}
	output.Println(output.StyleDim.Render("  npm start"))
}
