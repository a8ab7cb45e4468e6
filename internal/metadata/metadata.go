// Package metadata describes the provenance of a scan: tool version, scanned
// path and, when the path sits inside a git repository, the repository state.
package metadata

import (
	"path/filepath"

	git "github.com/go-git/go-git/v5"
)

// Version is the tool version reported in scan output.
const Version = "1.0.0"

// GitInfo contains git repository information
type GitInfo struct {
	Branch    string `json:"branch,omitempty"`
	Commit    string `json:"commit,omitempty"`
	IsDirty   bool   `json:"is_dirty"`
	RemoteURL string `json:"remote_url,omitempty"`
}

// ScanMeta contains information about the scan execution. It carries no
// timestamp: scan output is a pure function of the scanned content.
type ScanMeta struct {
	Version  string   `json:"version"`
	ScanPath string   `json:"scan_path"`
	Git      *GitInfo `json:"git,omitempty"`
}

// NewScanMeta creates the metadata record for one scan invocation.
func NewScanMeta(scanPath string) *ScanMeta {
	absPath, _ := filepath.Abs(scanPath)

	return &ScanMeta{
		Version:  Version,
		ScanPath: absPath,
		Git:      GetGitInfo(absPath),
	}
}

// GetGitInfo retrieves repository information for the given path. Returns nil
// when the path is not inside a git repository.
func GetGitInfo(path string) *GitInfo {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil
	}

	info := &GitInfo{}

	head, err := repo.Head()
	if err == nil {
		info.Commit = head.Hash().String()[:7]
		if head.Name().IsBranch() {
			info.Branch = head.Name().Short()
		} else {
			info.Branch = "HEAD" // detached
		}
	}

	if worktree, err := repo.Worktree(); err == nil {
		if status, err := worktree.Status(); err == nil {
			info.IsDirty = !status.IsClean()
		}
	}

	if config, err := repo.Config(); err == nil {
		if origin := config.Remotes["origin"]; origin != nil && len(origin.URLs) > 0 {
			info.RemoteURL = origin.URLs[0]
		}
	}

	return info
}
