package subgen

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"

	"github.com/webgen/cli/internal/output"
)

// VCSInit initializes a git repository in root and, when an account is
// known, wires an origin remote for it. An already-initialized
// repository is left as is.
func VCSInit(root string, p Params) error {
	repo, err := git.PlainInit(root, false)
	if errors.Is(err, git.ErrRepositoryAlreadyExists) {
		output.Debug("repository already initialized", "root", root)
		return nil
	}
	if err != nil {
		return fmt.Errorf("initializing repository: %w", err)
	}

	account := p["account"]
	name := p["name"]
	if account == "" || name == "" {
		return nil
	}

	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{fmt.Sprintf("https://github.com/%s/%s.git", account, name)},
	})
	if err != nil {
		return fmt.Errorf("creating origin remote: %w", err)
	}
	return nil
}
