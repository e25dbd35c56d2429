package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/cookgate/internal/config"
)

// TestNewRootCommand verifies command wiring: the validate subcommand is
// registered and the global flags exist.
func TestNewRootCommand(t *testing.T) {
	root := NewRootCommand()

	assert.Equal(t, "cookgate", root.Use)

	validate, _, err := root.Find([]string{"validate"})
	require.NoError(t, err)
	assert.Equal(t, "validate", validate.Use)

	assert.NotNil(t, root.PersistentFlags().Lookup("json"))
	assert.NotNil(t, root.PersistentFlags().Lookup("verbose"))
}

// TestValidateCommandFlags verifies every override flag is declared with
// its documented default.
func TestValidateCommandFlags(t *testing.T) {
	cmd := NewValidateCommand()

	repo := cmd.Flags().Lookup("repo")
	require.NotNil(t, repo)
	assert.Equal(t, ".", repo.DefValue)

	for _, name := range []string{"base", "work-branch", "metadata-file", "changelog-file", "ticket-pattern"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %s", name)
	}
}

// TestApplyOverrides verifies that only non-empty flags replace config
// values.
func TestApplyOverrides(t *testing.T) {
	cfg := config.Default()
	applyOverrides(&cfg, &validateFlags{base: "main", ticketPattern: `JIRA-\d+`})

	assert.Equal(t, "main", cfg.BaseBranch)
	assert.Equal(t, `JIRA-\d+`, cfg.TicketPattern)
	assert.Equal(t, "metadata.rb", cfg.MetadataFile)
	assert.Equal(t, "CHANGELOG.md", cfg.ChangelogFile)
}
