package adapter

import (
	"context"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/mouse-blink/uft/internal/logger"
	m "github.com/mouse-blink/uft/internal/model"
)

// GitAdapter fetches remote repositories for batch generation.
type GitAdapter interface {
	// Clone shallow-clones url at branch into dir. An empty branch uses the
	// remote default.
	Clone(ctx context.Context, url, branch string, dir m.Path) error
}

// LocalGitAdapter clones with go-git; no git binary is required.
type LocalGitAdapter struct{}

// NewLocalGitAdapter constructs a LocalGitAdapter.
func NewLocalGitAdapter() *LocalGitAdapter {
	return &LocalGitAdapter{}
}

// Clone performs a depth-1 single-branch clone.
func (a *LocalGitAdapter) Clone(ctx context.Context, url, branch string, dir m.Path) error {
	opts := &git.CloneOptions{
		URL:          NormalizeRepoURL(url),
		Depth:        1,
		SingleBranch: true,
	}
	if branch != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(branch)
	}

	logger.Logger.Infow("cloning repository",
		"url", opts.URL,
		"branch", branch,
		"destination", dir,
	)

	if _, err := git.PlainCloneContext(ctx, string(dir), false, opts); err != nil {
		return errors.WithHintf(
			errors.Wrapf(err, "failed to clone %s", url),
			"check that the branch %q exists and the repository is public", branch,
		)
	}

	return nil
}

// NormalizeRepoURL appends .git to bare https URLs and drops trailing slashes.
func NormalizeRepoURL(url string) string {
	url = strings.TrimSuffix(url, "/")
	if strings.HasSuffix(url, ".git") {
		return url
	}

	if strings.HasPrefix(url, "https://") || strings.HasPrefix(url, "http://") {
		return url + ".git"
	}

	return url
}

var repoPathRe = regexp.MustCompile(`^(?:https?|git|ssh)://[^/]+/(.+)$`)

// RepoName extracts a short repository name for temp directory naming.
func RepoName(url string) string {
	name := strings.TrimSuffix(strings.TrimSuffix(url, "/"), ".git")

	if strings.HasPrefix(name, "git@") {
		if idx := strings.Index(name, ":"); idx != -1 {
			name = name[idx+1:]
		}
	}

	if mt := repoPathRe.FindStringSubmatch(name); mt != nil {
		name = mt[1]
	}

	if idx := strings.LastIndex(name, "/"); idx != -1 {
		name = name[idx+1:]
	}

	if name == "" {
		return "repo"
	}

	return name
}
