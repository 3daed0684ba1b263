// Package gitinfo reads repository metadata (origin remote, HEAD) from the
// git checkout enclosing the site configuration.
package gitinfo

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	derrors "git.home.luguber.info/inful/blogcfg/internal/errors"
)

// Info describes the enclosing repository.
type Info struct {
	// Root is the worktree root.
	Root string
	// Remote is the raw origin URL; empty when no origin is configured.
	Remote string
	// URL is Remote normalized to a browsable https URL.
	URL    string
	Branch string
	Commit string
}

// Detect opens the repository containing dir, searching parent directories
// for the .git entry.
func Detect(dir string) (*Info, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, derrors.RepositoryLookup(dir, err)
	}

	info := &Info{}
	if wt, wtErr := repo.Worktree(); wtErr == nil {
		info.Root = wt.Filesystem.Root()
	}

	remote, err := repo.Remote(git.DefaultRemoteName)
	switch {
	case errors.Is(err, git.ErrRemoteNotFound):
	case err != nil:
		return nil, derrors.RepositoryLookup(dir, fmt.Errorf("read origin remote: %w", err))
	case len(remote.Config().URLs) > 0:
		info.Remote = remote.Config().URLs[0]
		info.URL = NormalizeRemote(info.Remote)
	}

	head, err := repo.Head()
	switch {
	case errors.Is(err, plumbing.ErrReferenceNotFound):
		// unborn branch: no commits yet
	case err != nil:
		return nil, derrors.RepositoryLookup(dir, fmt.Errorf("read HEAD: %w", err))
	default:
		if head.Name().IsBranch() {
			info.Branch = head.Name().Short()
		}
		info.Commit = head.Hash().String()
	}
	return info, nil
}

// NormalizeRemote converts a clone URL (https, ssh or scp-like) into an https
// URL without credentials or a .git suffix. Unrecognized input is returned
// unchanged.
func NormalizeRemote(remote string) string {
	remote = strings.TrimSpace(remote)
	if remote == "" {
		return ""
	}

	var host, p string
	if strings.Contains(remote, "://") {
		u, err := url.Parse(remote)
		if err != nil || u.Host == "" {
			return remote
		}
		switch u.Scheme {
		case "http", "https", "ssh", "git", "git+ssh":
		default:
			return remote
		}
		host, p = u.Hostname(), u.Path
		if u.Scheme == "http" {
			return "http://" + joinHostPath(host, u.Port(), p)
		}
	} else {
		// scp-like: [user@]host:owner/name.git
		at := strings.LastIndex(remote, "@")
		colon := strings.Index(remote, ":")
		if colon < 0 || colon < at {
			return remote
		}
		host, p = remote[at+1:colon], remote[colon+1:]
	}
	return "https://" + joinHostPath(host, "", p)
}

func joinHostPath(host, port, p string) string {
	p = strings.TrimSuffix(strings.Trim(p, "/"), ".git")
	if port != "" {
		host += ":" + port
	}
	if p == "" {
		return host
	}
	return host + "/" + p
}

// Shorthand returns "owner/name" for GitHub URLs, the form theme-hope
// accepts for its repo option. Other hosts yield the URL itself.
func Shorthand(httpsURL string) string {
	const gh = "https://github.com/"
	if rest, ok := strings.CutPrefix(httpsURL, gh); ok && strings.Count(rest, "/") == 1 {
		return rest
	}
	return httpsURL
}
