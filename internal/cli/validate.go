// validate.go implements the "cookgate validate" command.
//
// This is the whole gate: resolve the repository root, load the gate
// configuration, run the validation pipeline, and print the report.
// The command mutates the repository once — the transient working branch
// created during branch materialization — so it must only run against a
// freshly cloned, single-use CI workspace.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/cookgate/internal/config"
	"github.com/mmr-tortoise/cookgate/internal/gitrepo"
	"github.com/mmr-tortoise/cookgate/internal/model"
	"github.com/mmr-tortoise/cookgate/internal/pipeline"
)

// validateFlags holds the flag values for the validate command.
// These are bound to cobra flags in NewValidateCommand. Every flag
// overrides the corresponding config-file setting.
type validateFlags struct {
	repo          string // --repo: repository path (default: current directory)
	base          string // --base: base branch name
	workBranch    string // --work-branch: transient branch name for the PR revision
	metadataFile  string // --metadata-file: cookbook manifest filename
	changelogFile string // --changelog-file: changelog filename
	ticketPattern string // --ticket-pattern: issue token pattern override
}

// NewValidateCommand creates the "validate" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewValidateCommand() *cobra.Command {
	flags := &validateFlags{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Run the pre-merge metadata checks against a PR checkout",
		Long: `Validate the repository checkout in the current directory (or --repo).

Checks run in order and the first failure aborts the run:
  1. The checkout is in a detached HEAD state
  2. The metadata and changelog files exist
  3. The metadata declares name, maintainer_email, maintainer, description
  4. The version declaration changed relative to the base branch
  5. The new version appears in the changelog
  6. A commit unique to the PR references an issue-tracker ticket

Examples:
  cookgate validate
  cookgate validate --repo /workspace/checkout
  cookgate validate --base main --ticket-pattern 'JIRA-\d+'
  cookgate validate --json`,

		Args: cobra.NoArgs,

		// RunE is used instead of Run so errors reach the Execute error
		// handler in root.go, which maps them to exit codes.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(flags)
		},
	}

	cmd.Flags().StringVar(&flags.repo, "repo", ".", "Path to the repository checkout")
	cmd.Flags().StringVar(&flags.base, "base", "", "Base branch the PR targets (default from config, else master)")
	cmd.Flags().StringVar(&flags.workBranch, "work-branch", "", "Name for the transient PR branch (default from config)")
	cmd.Flags().StringVar(&flags.metadataFile, "metadata-file", "", "Metadata filename (default from config, else metadata.rb)")
	cmd.Flags().StringVar(&flags.changelogFile, "changelog-file", "", "Changelog filename (default from config, else CHANGELOG.md)")
	cmd.Flags().StringVar(&flags.ticketPattern, "ticket-pattern", "", "Issue ticket token pattern (default PROJ-123 shape)")

	return cmd
}

// runValidate is the main logic function for the validate command.
func runValidate(flags *validateFlags) error {
	// Step 1: Resolve the repository root from the --repo path, so the
	// gate works when invoked from a subdirectory of the checkout.
	root, err := gitrepo.New(flags.repo).Root()
	if err != nil {
		return err
	}
	VerboseLog("repository root: %s", root)

	// Step 2: Load the gate configuration committed in the repository
	// (if any) and apply flag overrides on top.
	cfg, err := config.Load(root)
	if err != nil {
		return model.WrapCheckError(model.ExitGeneralError, "failed to load gate configuration", err)
	}
	applyOverrides(&cfg, flags)
	VerboseLog("config: metadata=%s changelog=%s base=%s work=%s",
		cfg.MetadataFile, cfg.ChangelogFile, cfg.BaseBranch, cfg.WorkBranch)

	// Step 3: Run the pipeline. Failures come back as CheckErrors and
	// propagate to Execute unchanged so their exit codes survive.
	p := pipeline.New(root, cfg)
	p.Log = VerboseLog

	report, err := p.Run()
	if err != nil {
		return err
	}

	// Step 4: Print the report.
	return printReport(report)
}

// applyOverrides copies non-empty flag values over the loaded config.
func applyOverrides(cfg *config.Config, flags *validateFlags) {
	if flags.base != "" {
		cfg.BaseBranch = flags.base
	}
	if flags.workBranch != "" {
		cfg.WorkBranch = flags.workBranch
	}
	if flags.metadataFile != "" {
		cfg.MetadataFile = flags.metadataFile
	}
	if flags.changelogFile != "" {
		cfg.ChangelogFile = flags.changelogFile
	}
	if flags.ticketPattern != "" {
		cfg.TicketPattern = flags.ticketPattern
	}
}

// printReport writes the success report to stdout, as JSON or as the
// human-readable confirmed-value lines plus the final success message.
func printReport(report *model.Report) error {
	if IsJSONOutput() {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return model.WrapCheckError(model.ExitGeneralError, "failed to encode report", err)
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	}

	fmt.Printf("Repository state: %s\n", report.State)
	for _, field := range report.Fields {
		fmt.Printf("Metadata field ok: %s\n", field)
	}
	fmt.Printf("Version updated: %s\n", report.Version)
	fmt.Printf("Changelog entry found for %s\n", report.Version)
	fmt.Printf("Ticket reference: %s\n", report.Ticket)
	fmt.Println("All checks passed.")
	return nil
}
