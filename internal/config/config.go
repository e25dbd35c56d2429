// Package config loads the gate configuration for a repository.
//
// Configuration is optional: the defaults reproduce the original gate
// (metadata.rb, CHANGELOG.md, base branch "master"). A repository may
// override them by committing a cookgate.yml or cookgate.jsonc at the
// repository root. JSONC (JSON with Comments) is supported by stripping
// comments with github.com/tidwall/jsonc before parsing with the standard
// encoding/json library, the same approach used for devcontainer.json
// style config files.
//
// Resolution order: cookgate.yml, then cookgate.jsonc, then built-in
// defaults. Fields left empty in a config file keep their defaults, so a
// file may override a single setting.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// File names probed at the repository root, in order.
const (
	yamlFileName  = "cookgate.yml"
	jsoncFileName = "cookgate.jsonc"
)

// Config holds the per-repository gate settings.
type Config struct {
	// MetadataFile is the cookbook manifest filename, relative to the
	// repository root.
	MetadataFile string `yaml:"metadataFile" json:"metadataFile"`

	// ChangelogFile is the changelog filename, relative to the repository
	// root.
	ChangelogFile string `yaml:"changelogFile" json:"changelogFile"`

	// BaseBranch is the long-lived integration branch the PR targets.
	BaseBranch string `yaml:"baseBranch" json:"baseBranch"`

	// WorkBranch is the name given to the transient branch created at the
	// detached PR revision. It only needs to not collide with a branch
	// that already exists in the freshly cloned workspace.
	WorkBranch string `yaml:"workBranch" json:"workBranch"`

	// TicketPattern overrides the issue-tracker token pattern. Empty
	// selects the built-in default.
	TicketPattern string `yaml:"ticketPattern" json:"ticketPattern"`
}

// Default returns the built-in configuration matching the original gate.
func Default() Config {
	return Config{
		MetadataFile:  "metadata.rb",
		ChangelogFile: "CHANGELOG.md",
		BaseBranch:    "master",
		WorkBranch:    "cookgate/pr",
	}
}

// Load reads the gate configuration for the repository rooted at root.
// A missing config file is not an error — defaults apply. A present but
// unreadable or unparsable file is an error, since silently ignoring a
// committed config would validate against the wrong filenames.
func Load(root string) (Config, error) {
	cfg := Default()

	yamlPath := filepath.Join(root, yamlFileName)
	if data, err := os.ReadFile(yamlPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", yamlFileName, err)
		}
		cfg.fillDefaults()
		return cfg, nil
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("reading %s: %w", yamlFileName, err)
	}

	jsoncPath := filepath.Join(root, jsoncFileName)
	if data, err := os.ReadFile(jsoncPath); err == nil {
		// Strip comments and trailing commas first; encoding/json does
		// the actual decoding.
		if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", jsoncFileName, err)
		}
		cfg.fillDefaults()
		return cfg, nil
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("reading %s: %w", jsoncFileName, err)
	}

	return cfg, nil
}

// fillDefaults restores defaults for fields a config file set to empty.
// TicketPattern is exempt: empty means "use the built-in pattern" all the
// way down in the ticket package.
func (c *Config) fillDefaults() {
	def := Default()
	if c.MetadataFile == "" {
		c.MetadataFile = def.MetadataFile
	}
	if c.ChangelogFile == "" {
		c.ChangelogFile = def.ChangelogFile
	}
	if c.BaseBranch == "" {
		c.BaseBranch = def.BaseBranch
	}
	if c.WorkBranch == "" {
		c.WorkBranch = def.WorkBranch
	}
}
