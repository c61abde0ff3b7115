package export

import (
	"fmt"
	"os"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport/ssh"
)

// GitManager handles git operations on the export directory
type GitManager struct {
	RepoPath string
}

// NewGitManager creates a new GitManager
func NewGitManager(repoPath string) *GitManager {
	return &GitManager{RepoPath: repoPath}
}

// Sync commits all changes and pushes to remote
func (g *GitManager) Sync(message string) error {
	r, err := git.PlainOpen(g.RepoPath)
	if err != nil {
		return fmt.Errorf("failed to open repo: %w", err)
	}

	w, err := r.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}

	_, err = w.Add(".")
	if err != nil {
		return fmt.Errorf("failed to add changes: %w", err)
	}

	if message == "" {
		message = fmt.Sprintf("Auto-export: %s", time.Now().Format(time.RFC3339))
	}

	_, err = w.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Scratchpad Pilot",
			Email: "pilot@scratchpad.local",
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	// Push with the default SSH key when available; credential helpers are
	// not resolved, so an unauthenticated push is the only other option.
	home, _ := os.UserHomeDir()
	sshKeyPath := fmt.Sprintf("%s/.ssh/id_rsa", home)

	publicKeys, err := ssh.NewPublicKeysFromFile("git", sshKeyPath, "")
	if err != nil {
		fmt.Printf("Warning: Could not load SSH key: %v. Trying push without explicit auth.\n", err)
		err = r.Push(&git.PushOptions{})
	} else {
		err = r.Push(&git.PushOptions{
			Auth: publicKeys,
		})
	}

	if err != nil {
		if err == git.NoErrAlreadyUpToDate {
			return nil
		}
		return fmt.Errorf("failed to push: %w", err)
	}

	return nil
}
