package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadDefaults verifies the built-in configuration when no config file
// exists at the repository root.
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "metadata.rb", cfg.MetadataFile)
	assert.Equal(t, "CHANGELOG.md", cfg.ChangelogFile)
	assert.Equal(t, "master", cfg.BaseBranch)
	assert.Equal(t, "cookgate/pr", cfg.WorkBranch)
	assert.Empty(t, cfg.TicketPattern)
}

// TestLoadYAML verifies cookgate.yml loading with partial overrides:
// fields absent from the file keep their defaults.
func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	content := "baseBranch: main\nticketPattern: 'JIRA-\\d+'\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cookgate.yml"), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "main", cfg.BaseBranch)
	assert.Equal(t, `JIRA-\d+`, cfg.TicketPattern)
	assert.Equal(t, "metadata.rb", cfg.MetadataFile)
	assert.Equal(t, "CHANGELOG.md", cfg.ChangelogFile)
}

// TestLoadJSONC verifies cookgate.jsonc loading, including comment
// stripping and trailing commas.
func TestLoadJSONC(t *testing.T) {
	dir := t.TempDir()
	content := `{
  // this repo keeps its manifest under a different name
  "metadataFile": "component.rb",
  "baseBranch": "trunk",
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cookgate.jsonc"), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "component.rb", cfg.MetadataFile)
	assert.Equal(t, "trunk", cfg.BaseBranch)
	assert.Equal(t, "CHANGELOG.md", cfg.ChangelogFile)
}

// TestLoadYAMLWinsOverJSONC verifies resolution order when both files exist.
func TestLoadYAMLWinsOverJSONC(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cookgate.yml"), []byte("baseBranch: main\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cookgate.jsonc"), []byte(`{"baseBranch": "trunk"}`), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "main", cfg.BaseBranch)
}

// TestLoadInvalidYAML verifies that a present but unparsable config file
// is an error rather than being silently ignored.
func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cookgate.yml"), []byte(": not yaml ["), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}
