package domain

import (
	"regexp"
	"strings"
)

// RemoteLinkName is the link name used for a project's git remote
const RemoteLinkName = "origin"

var scpLikeRemote = regexp.MustCompile(`^(?:[^@/]+@)?([^:/]+):(.+)$`)

// BrowserURL converts a git remote URL into an address a browser can open.
// SSH forms such as git@github.com:user/repo.git become https://github.com/user/repo.
func BrowserURL(remote string) string {
	remote = strings.TrimSpace(remote)
	if remote == "" {
		return ""
	}

	switch {
	case strings.HasPrefix(remote, "https://"), strings.HasPrefix(remote, "http://"):
	case strings.HasPrefix(remote, "ssh://"):
		rest := strings.TrimPrefix(remote, "ssh://")
		if at := strings.Index(rest, "@"); at >= 0 {
			rest = rest[at+1:]
		}
		host, path, _ := strings.Cut(rest, "/")
		if colon := strings.Index(host, ":"); colon >= 0 {
			host = host[:colon]
		}
		remote = "https://" + host + "/" + path
	default:
		if m := scpLikeRemote.FindStringSubmatch(remote); m != nil {
			remote = "https://" + m[1] + "/" + m[2]
		}
	}

	return strings.TrimSuffix(strings.TrimSuffix(remote, "/"), ".git")
}
