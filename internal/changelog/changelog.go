// Package changelog implements the changelog consistency check.
//
// The check is a literal substring search, not a structured parse of
// changelog entries: the file is freeform text, and the gate only needs
// to confirm the new version was mentioned at all. A version token that
// happens to be a substring of an unrelated longer number (e.g. "1.0.1"
// inside "1.0.10") spuriously matches — an acknowledged imprecision kept
// from the original contract.
package changelog

import (
	"fmt"
	"strings"

	"github.com/mmr-tortoise/cookgate/internal/model"
)

// Contains reports whether the version token occurs anywhere in the
// changelog content.
func Contains(content, version string) bool {
	return strings.Contains(content, version)
}

// Check fails with ExitChangelogMismatch unless the version token occurs
// in the changelog content. The filename is only used in the diagnostic.
func Check(content, version, filename string) error {
	if Contains(content, version) {
		return nil
	}
	return model.NewCheckError(model.ExitChangelogMismatch,
		fmt.Sprintf("version %s is not mentioned in %s: add a changelog entry for this release", version, filename))
}
