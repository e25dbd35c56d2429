// Package pipeline runs the pre-merge validation checks in order.
//
// The pipeline is strictly sequential and fail-fast: each check either
// passes (recording its confirmed value in the Report) or returns a
// model.CheckError that aborts the run. First failure wins — later checks
// never execute, and a single violated precondition fails the whole PR.
//
// Check order:
//  1. Repository state (must be a detached HEAD)
//  2. Branch materialization (name the PR revision, touch the base branch)
//  3. Required file presence (metadata file, then changelog file)
//  4. Metadata field checks (name, maintainer_email, maintainer, description)
//  5. Version change detection (added version line in the diff vs base)
//  6. Version extraction (dotted numeric token from that line)
//  7. Changelog consistency (token appears in the changelog)
//  8. Ticket reference (issue token in a commit subject unique to the PR)
//
// The only repository mutation is the transient working branch created in
// step 2. The pipeline assumes it is the sole actor against a freshly
// cloned, single-use workspace; the caller must guarantee that.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mmr-tortoise/cookgate/internal/changelog"
	"github.com/mmr-tortoise/cookgate/internal/config"
	"github.com/mmr-tortoise/cookgate/internal/gitrepo"
	"github.com/mmr-tortoise/cookgate/internal/metadata"
	"github.com/mmr-tortoise/cookgate/internal/model"
	"github.com/mmr-tortoise/cookgate/internal/ticket"
)

// Pipeline validates one repository checkout against one configuration.
type Pipeline struct {
	// Repo is the repository under validation, rooted at the checkout
	// top level.
	Repo *gitrepo.Repo

	// Config supplies filenames, branch names, and the ticket pattern.
	Config config.Config

	// Log receives verbose trace lines. May be nil.
	Log func(format string, args ...interface{})
}

// New creates a Pipeline for the repository rooted at root.
func New(root string, cfg config.Config) *Pipeline {
	return &Pipeline{
		Repo:   gitrepo.New(root),
		Config: cfg,
	}
}

// logf forwards to Log when set.
func (p *Pipeline) logf(format string, args ...interface{}) {
	if p.Log != nil {
		p.Log(format, args...)
	}
}

// Run executes all checks in order. On success it returns the completed
// Report; on the first failure it returns the partial Report alongside
// the CheckError that stopped the run.
func (p *Pipeline) Run() (*model.Report, error) {
	report := &model.Report{}

	if err := p.checkState(report); err != nil {
		return report, err
	}
	if err := p.materializeBranches(); err != nil {
		return report, err
	}
	if err := p.checkRequiredFiles(); err != nil {
		return report, err
	}
	if err := p.checkMetadataFields(report); err != nil {
		return report, err
	}
	if err := p.checkVersionChange(report); err != nil {
		return report, err
	}
	if err := p.checkChangelog(report); err != nil {
		return report, err
	}
	if err := p.checkTicket(report); err != nil {
		return report, err
	}

	return report, nil
}

// checkState confirms the checkout is detached. This runs before any file
// is read: a wrong state means the CI integration handed over the wrong
// workspace, and validating anything in it would be misleading.
func (p *Pipeline) checkState(report *model.Report) error {
	state, err := p.Repo.State()
	if err != nil {
		return err
	}
	if state != model.StateDetached {
		return model.NewCheckError(model.ExitStateError,
			fmt.Sprintf("repository is %s, expected a detached HEAD checkout: run this gate only from the CI PR builder", state))
	}
	report.State = state
	p.logf("repository state: %s", state)
	return nil
}

// materializeBranches names the detached PR revision and makes the base
// branch locally resolvable: create the working branch at the current
// commit, check out the base branch, then return to the working branch.
// There is no validation here — later diff and log operations just need
// both revisions addressable by name.
func (p *Pipeline) materializeBranches() error {
	if err := p.Repo.CreateBranch(p.Config.WorkBranch); err != nil {
		return err
	}
	if err := p.Repo.Checkout(p.Config.BaseBranch); err != nil {
		return err
	}
	if err := p.Repo.Checkout(p.Config.WorkBranch); err != nil {
		return err
	}
	p.logf("materialized branches: %s (PR) and %s (base)", p.Config.WorkBranch, p.Config.BaseBranch)
	return nil
}

// checkRequiredFiles confirms the metadata file and then the changelog
// file exist in the working tree. The first missing file aborts the run;
// later files are not checked.
func (p *Pipeline) checkRequiredFiles() error {
	for _, name := range []string{p.Config.MetadataFile, p.Config.ChangelogFile} {
		if _, err := os.Stat(filepath.Join(p.Repo.Dir(), name)); err != nil {
			return model.WrapCheckError(model.ExitMissingFile,
				fmt.Sprintf("required file %s not found in the repository root", name), err)
		}
		p.logf("found required file: %s", name)
	}
	return nil
}

// checkMetadataFields runs the four field checks against the metadata
// file content.
func (p *Pipeline) checkMetadataFields(report *model.Report) error {
	content, err := p.readFile(p.Config.MetadataFile)
	if err != nil {
		return err
	}

	confirmed, err := metadata.CheckFields(content)
	report.Fields = confirmed
	if err != nil {
		return err
	}
	for _, field := range confirmed {
		p.logf("metadata field ok: %s", field)
	}
	return nil
}

// checkVersionChange diffs the metadata file against the base branch and
// extracts the version token from the added declaration line.
//
// The detection requires an added line, not a merely present one — a PR
// that leaves the version untouched produces no added version line and
// fails here. The behavior when the base revision never declared a
// version at all is fragile (see metadata.FindVersionLine) and is kept
// as documented.
func (p *Pipeline) checkVersionChange(report *model.Report) error {
	added, err := p.Repo.AddedLines(p.Config.BaseBranch, p.Config.MetadataFile)
	if err != nil {
		return err
	}

	line, ok := metadata.FindVersionLine(added)
	if !ok {
		return model.NewCheckError(model.ExitVersionNotUpdated,
			fmt.Sprintf("the version declaration in %s was not updated relative to %s: bump the version for every release",
				p.Config.MetadataFile, p.Config.BaseBranch))
	}
	report.VersionLine = line
	p.logf("version line added: %s", line)

	version, err := metadata.ExtractVersion(line)
	if err != nil {
		return err
	}
	report.Version = version
	p.logf("version: %s", version)
	return nil
}

// checkChangelog confirms the extracted version appears in the changelog.
func (p *Pipeline) checkChangelog(report *model.Report) error {
	content, err := p.readFile(p.Config.ChangelogFile)
	if err != nil {
		return err
	}

	if err := changelog.Check(content, report.Version, p.Config.ChangelogFile); err != nil {
		return err
	}
	report.ChangelogOK = true
	p.logf("changelog mentions %s", report.Version)
	return nil
}

// checkTicket scans the commit subjects unique to the working branch for
// an issue-tracker token.
func (p *Pipeline) checkTicket(report *model.Report) error {
	matcher, err := ticket.NewMatcher(p.Config.TicketPattern)
	if err != nil {
		return model.WrapCheckError(model.ExitGeneralError, "invalid ticket pattern in configuration", err)
	}

	subjects, err := p.Repo.Subjects(p.Config.BaseBranch, p.Config.WorkBranch)
	if err != nil {
		return err
	}

	token, err := matcher.Check(subjects)
	if err != nil {
		return err
	}
	report.Ticket = token
	p.logf("ticket reference: %s", token)
	return nil
}

// readFile reads a file relative to the repository root. Presence was
// already verified, so a read failure here is a general error, not a
// missing-file failure.
func (p *Pipeline) readFile(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(p.Repo.Dir(), name))
	if err != nil {
		return "", model.WrapCheckError(model.ExitGeneralError,
			fmt.Sprintf("failed to read %s", name), err)
	}
	return string(data), nil
}
