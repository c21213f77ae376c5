package stgit

import (
	"fmt"
	"os/exec"
	"strings"
)

// FetchSeries runs the series listing and parses it. The listing includes
// descriptions and the empty marker so the console never re-queries per
// patch.
func (r *Runner) FetchSeries() (Series, error) {
	output, err := r.Run("series", []string{"--description", "--empty", "--all"}, nil)
	if err != nil {
		return Series{}, err
	}
	return ParseSeries(output)
}

// CommitID resolves a patch name to its commit identifier via the engine's
// single-line id query.
func (r *Runner) CommitID(patch string) (string, error) {
	output, err := r.Run("id", nil, []string{patch})
	if err != nil {
		return "", err
	}
	id := strings.TrimSpace(output)
	if id == "" {
		return "", fmt.Errorf("no commit id for patch %q", patch)
	}
	return id, nil
}

// PatchFiles returns the file paths touched by a patch, one per output
// line. Delete uses this to decide whether to offer spilling the patch
// contents back into the worktree.
func (r *Runner) PatchFiles(patch string) ([]string, error) {
	output, err := r.Run("files", []string{"--bare"}, []string{patch})
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(output)
	if text == "" {
		return nil, nil
	}
	lines := strings.Split(text, "\n")
	files := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			files = append(files, trimmed)
		}
	}
	return files, nil
}

// BranchInfo bundles the branch context a series belongs to.
type BranchInfo struct {
	Name     string
	Upstream string
	Remote   string
}

// FetchBranch collects the current branch, its configured upstream, and
// the remote it tracks.
func (r *Runner) FetchBranch() (BranchInfo, error) {
	branch, err := r.CurrentBranch()
	if err != nil {
		return BranchInfo{}, err
	}
	upstream, _ := r.Upstream()
	return BranchInfo{
		Name:     branch,
		Upstream: upstream,
		Remote:   r.Remote(branch),
	}, nil
}

// IndexEmpty reports whether the index has no staged changes. The refresh
// flow uses this to decide whether to offer staging everything first.
func (r *Runner) IndexEmpty() bool {
	cmd := exec.Command("git", "diff", "--cached", "--quiet")
	cmd.Dir = r.Dir
	return cmd.Run() == nil
}

func (r *Runner) git(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}

// CurrentBranch returns the checked-out branch name.
func (r *Runner) CurrentBranch() (string, error) {
	branch, err := r.git("symbolic-ref", "--short", "HEAD")
	if err != nil {
		return "", fmt.Errorf("resolve current branch: %w", err)
	}
	return branch, nil
}

// Upstream returns the configured upstream of the current branch, or ""
// when none is configured. Rebase checks this before invoking the engine.
func (r *Runner) Upstream() (string, error) {
	upstream, err := r.git("rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{upstream}")
	if err != nil {
		return "", nil
	}
	return upstream, nil
}

// Remote returns the remote the current branch tracks, or "" when the
// branch tracks nothing.
func (r *Runner) Remote(branch string) string {
	if strings.TrimSpace(branch) == "" {
		return ""
	}
	remote, err := r.git("config", fmt.Sprintf("branch.%s.remote", branch))
	if err != nil {
		return ""
	}
	return remote
}

// UpdateRemote issues a background fetch of the given remote and returns
// without waiting. The rebase flow only depends on the fetch having been
// issued, not on its completion.
func (r *Runner) UpdateRemote(remote string) (<-chan error, error) {
	if strings.TrimSpace(remote) == "" {
		return nil, fmt.Errorf("no remote to update")
	}
	cmd := exec.Command("git", "fetch", remote)
	cmd.Dir = r.Dir
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start git fetch %s: %w", remote, err)
	}
	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
		close(done)
	}()
	return done, nil
}
