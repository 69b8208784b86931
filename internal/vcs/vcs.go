// Package vcs reads the source revision of a docweaver project for build reports.
package vcs

import (
	stderrors "errors"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"git.home.luguber.info/inful/docweaver/internal/foundation/errors"
)

// Revision identifies the commit a project was built from.
type Revision struct {
	Commit string `json:"commit"`
	Short  string `json:"short"`
	Branch string `json:"branch,omitempty"`
	Dirty  bool   `json:"dirty"`
}

// String returns the short hash, with a "+dirty" marker for modified worktrees.
func (r Revision) String() string {
	if r.Short == "" {
		return ""
	}
	if r.Dirty {
		return r.Short + "+dirty"
	}
	return r.Short
}

// ReadRevision resolves HEAD for the repository containing dir. A directory
// outside any repository, or a repository without commits, yields a zero
// Revision and no error.
func ReadRevision(dir string) (Revision, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if stderrors.Is(err, git.ErrRepositoryNotExists) {
			return Revision{}, nil
		}
		return Revision{}, errors.WrapError(err, errors.CategoryFileSystem, "failed to open repository").
			WithContext("path", dir).
			Build()
	}

	head, err := repo.Head()
	if err != nil {
		if stderrors.Is(err, plumbing.ErrReferenceNotFound) {
			return Revision{}, nil
		}
		return Revision{}, errors.WrapError(err, errors.CategoryFileSystem, "failed to resolve HEAD").
			WithContext("path", dir).
			Build()
	}

	commit := head.Hash().String()
	rev := Revision{Commit: commit, Short: commit[:7]}
	if head.Name().IsBranch() {
		rev.Branch = head.Name().Short()
	}

	wt, err := repo.Worktree()
	if err != nil {
		// bare repository
		return rev, nil
	}
	status, err := wt.Status()
	if err != nil {
		return Revision{}, errors.WrapError(err, errors.CategoryFileSystem, "failed to read worktree status").
			WithContext("path", dir).
			Build()
	}
	rev.Dirty = !status.IsClean()
	return rev, nil
}
