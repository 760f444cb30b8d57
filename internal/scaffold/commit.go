package scaffold

import (
	"errors"
	"fmt"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/spindlewrit/spindlewrit/internal/project"
)

// commitScaffold stages everything in the fresh project and records an
// initial commit. The rust initializer already creates a repository; for the
// other kinds one is initialized here.
func commitScaffold(spec project.Spec) error {
	repo, err := git.PlainOpen(spec.Path)
	if err != nil {
		if !errors.Is(err, git.ErrRepositoryNotExists) {
			return fmt.Errorf("failed to open repository: %w", err)
		}
		repo, err = git.PlainInit(spec.Path, false)
		if err != nil {
			return fmt.Errorf("failed to init repository: %w", err)
		}
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}

	if err := worktree.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("failed to stage scaffold: %w", err)
	}

	status, err := worktree.Status()
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}
	if status.IsClean() {
		return nil
	}

	message := fmt.Sprintf("spindlewrit: initial %s scaffold for %s", spec.Kind, spec.Name)
	_, err = worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Spindlewrit",
			Email: "spindlewrit@localhost",
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
