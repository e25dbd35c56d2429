// Package metadata implements the structural checks against the cookbook
// metadata file (metadata.rb).
//
// The checks are deliberately loose: each one proves that a syntactically
// plausible `key  'value'` declaration exists at the start of a line, not
// that the value is semantically valid (a real email address, a reachable
// maintainer). Full parsing of the metadata format is out of scope — the
// gate only needs to reject files where a declaration is missing entirely
// or visibly malformed.
//
// The package takes file content as a string rather than a repository
// handle, so the same checks can back a multi-component gate without
// changes.
package metadata

import (
	"fmt"
	"regexp"

	"github.com/mmr-tortoise/cookgate/internal/model"
)

// Field describes one required metadata declaration: the key name, the
// line-anchored pattern that proves a plausible declaration exists, and
// the format hint shown to the PR author when the check fails.
type Field struct {
	// Name is the metadata key (e.g. "maintainer_email").
	Name string

	// pattern matches a whole declaration line. All patterns use (?m)^
	// so a declaration embedded mid-line or inside a comment never counts.
	pattern *regexp.Regexp

	// hint describes the expected line shape in the failure diagnostic.
	hint string
}

// requiredFields lists the four checks in the order they run. The order is
// part of the contract: the first failing field is the one reported, and
// later fields are never inspected.
//
// Note the maintainer pattern requires whitespace immediately after the
// key, so it cannot accidentally match a maintainer_email line.
var requiredFields = []Field{
	{
		Name:    "name",
		pattern: regexp.MustCompile(`(?m)^name\s+'[^']+'`),
		hint:    "name  'cookbook-name'",
	},
	{
		Name:    "maintainer_email",
		pattern: regexp.MustCompile(`(?m)^maintainer_email\s+'[^'@]*@[\w.-]+'`),
		hint:    "maintainer_email  'someone@example.com'",
	},
	{
		Name:    "maintainer",
		pattern: regexp.MustCompile(`(?m)^maintainer\s+'[^']+'`),
		hint:    "maintainer  'Team Name'",
	},
	{
		// A description value may open a multi-line string, so only the
		// opening quote and at least one character are required here.
		Name:    "description",
		pattern: regexp.MustCompile(`(?m)^description\s+'.+`),
		hint:    "description  'what this cookbook does'",
	},
}

// FieldNames returns the names of the required fields in check order.
func FieldNames() []string {
	names := make([]string, len(requiredFields))
	for i, f := range requiredFields {
		names[i] = f.Name
	}
	return names
}

// Check scans the content for this field's declaration and reports whether
// a matching line exists.
func (f Field) Check(content string) bool {
	return f.pattern.MatchString(content)
}

// CheckFields runs the four required field checks against the metadata file
// content, in order. It returns the names of the fields confirmed so far;
// on the first failure it returns a CheckError with ExitMetadataField
// naming the missing or malformed field. Later fields are not inspected
// once one has failed.
func CheckFields(content string) ([]string, error) {
	var confirmed []string
	for _, f := range requiredFields {
		if !f.Check(content) {
			return confirmed, model.NewCheckError(model.ExitMetadataField,
				fmt.Sprintf("metadata field %q is missing or malformed: expected a line like %s",
					f.Name, f.hint))
		}
		confirmed = append(confirmed, f.Name)
	}
	return confirmed, nil
}
