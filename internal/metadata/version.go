// version.go handles the version declaration: finding the added version
// line in a diff and extracting the numeric version token from it.
package metadata

import (
	"regexp"

	"github.com/mmr-tortoise/cookgate/internal/model"
)

// versionLinePattern identifies a version declaration among added diff
// lines. Anchored at line start so a line that merely mentions "version"
// somewhere in a comment or string does not count.
var versionLinePattern = regexp.MustCompile(`^version\s`)

// versionTokenPattern matches a dotted numeric token of one to three
// groups of digits ("9", "9.9", "9.9.9"). There is no upper bound on
// digit count and no semantic-versioning enforcement — shape only.
var versionTokenPattern = regexp.MustCompile(`\d+(\.\d+){0,2}`)

// FindVersionLine scans the added diff lines for the version declaration
// and returns the first one found.
//
// Known limitation, preserved on purpose: the check only proves an added
// version line exists. If the base revision never declared a version at
// all, a brand-new declaration is indistinguishable from a changed one
// and still passes; a base file shaped so the diff carries no added
// version line fails even if the working tree declares one.
func FindVersionLine(added []string) (string, bool) {
	for _, line := range added {
		if versionLinePattern.MatchString(line) {
			return line, true
		}
	}
	return "", false
}

// ExtractVersion pulls the first dotted numeric token out of a version
// declaration line. It returns a CheckError with ExitVersionFormat when
// the line carries no such token.
func ExtractVersion(line string) (string, error) {
	token := versionTokenPattern.FindString(line)
	if token == "" {
		return "", model.NewCheckError(model.ExitVersionFormat,
			"version line contains no numeric version: expected a dotted token like '1.2.3' in "+line)
	}
	return token, nil
}
