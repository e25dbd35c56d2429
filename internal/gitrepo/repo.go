// Package gitrepo provides the git operations the validation pipeline needs.
//
// This package wraps the git CLI (via os/exec) and returns typed results —
// a RepoState, a list of added diff lines, a list of commit subjects —
// rather than raw command output, so no caller re-parses git text.
//
// Design decisions:
//   - We shell out to `git` rather than using a Go Git library (e.g., go-git)
//     because the gate runs inside CI checkouts produced by the real git
//     binary, and full CLI compatibility (detached HEAD handling, diff
//     output) matters more than avoiding a subprocess.
//   - All errors from git commands are wrapped in model.CheckError with
//     ExitGitError to enable proper CLI exit code handling.
package gitrepo

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/mmr-tortoise/cookgate/internal/model"
)

// Repo represents a single local repository working copy.
// All operations run with `git -C <dir>` so the process working
// directory is never changed.
type Repo struct {
	dir string
}

// New creates a Repo rooted at the given directory. The directory is not
// verified here; the first git invocation surfaces any problem.
func New(dir string) *Repo {
	return &Repo{dir: dir}
}

// Dir returns the directory this Repo operates on.
func (r *Repo) Dir() string {
	return r.dir
}

// Root returns the absolute path to the top-level directory of the
// repository containing Dir, via `git rev-parse --show-toplevel`.
func (r *Repo) Root() (string, error) {
	out, err := r.run("rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// State reports whether the checkout is detached or on a named branch.
//
// `git rev-parse --abbrev-ref HEAD` prints the short branch name, or the
// literal string "HEAD" when the repository is in a detached HEAD state.
func (r *Repo) State() (model.RepoState, error) {
	out, err := r.run("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "HEAD" {
		return model.StateDetached, nil
	}
	return model.StateOnBranch, nil
}

// CreateBranch creates a new branch at the current commit and checks it out.
// Used to give the detached PR revision a name so later diff and log
// operations can address it.
func (r *Repo) CreateBranch(name string) error {
	_, err := r.run("checkout", "-b", name)
	return err
}

// Checkout switches the working copy to the given ref.
func (r *Repo) Checkout(ref string) error {
	_, err := r.run("checkout", ref)
	return err
}

// AddedLines returns the added lines of `git diff <base> -- <path>` for the
// currently checked-out revision, with the leading "+" stripped.
//
// File header lines ("+++ b/...") are excluded. The result is the typed
// replacement for grepping raw diff text: callers get exactly the lines
// the PR introduced in the given file.
func (r *Repo) AddedLines(base, path string) ([]string, error) {
	out, err := r.run("diff", base, "--", path)
	if err != nil {
		return nil, err
	}

	var added []string
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "+") || strings.HasPrefix(line, "+++") {
			continue
		}
		added = append(added, strings.TrimPrefix(line, "+"))
	}
	return added, nil
}

// Subjects returns the one-line subjects of the commits reachable from
// head but not from base, most recent first, excluding merge commits.
//
// These are the commits unique to the PR — the set the ticket reference
// check scans.
func (r *Repo) Subjects(base, head string) ([]string, error) {
	out, err := r.run("log", "--no-merges", "--pretty=format:%s", base+".."+head)
	if err != nil {
		return nil, err
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// run executes a git command with the given arguments against this Repo.
//
// It captures stdout and stderr separately. On success it returns stdout.
// On failure it returns a model.CheckError with ExitGitError, including
// the stderr output in the error message for diagnostics.
//
// The directory is passed via the -C flag, which causes git to change to
// that directory before doing anything else, so the process working
// directory stays untouched.
func (r *Repo) run(args ...string) (string, error) {
	fullArgs := append([]string{"-C", r.dir}, args...)

	// #nosec G204 — args are constructed internally, not from user input
	cmd := exec.Command("git", fullArgs...)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		message := fmt.Sprintf("git %s failed", strings.Join(args, " "))
		if stderrStr != "" {
			message = fmt.Sprintf("%s: %s", message, stderrStr)
		}
		return "", model.WrapCheckError(model.ExitGitError, message, err)
	}

	return stdout.String(), nil
}
