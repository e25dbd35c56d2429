// Package ticket implements the issue-tracker reference check over commit
// subjects.
//
// A ticket token has the shape uppercase-letters-and-digits, a hyphen,
// then digits (e.g. "PROJ-123"). The gate only proves a token is present
// in at least one commit unique to the PR; it never contacts a tracker
// to verify the ticket exists.
package ticket

import (
	"fmt"
	"regexp"

	"github.com/mmr-tortoise/cookgate/internal/model"
)

// DefaultPattern is the token shape accepted when no override is
// configured: one or more uppercase letters/digits, a hyphen, one or
// more digits.
const DefaultPattern = `[A-Z0-9]+-\d+`

// Matcher scans commit subjects for an issue-tracker token.
type Matcher struct {
	re *regexp.Regexp
}

// NewMatcher compiles a Matcher from the given pattern. An empty pattern
// selects DefaultPattern.
func NewMatcher(pattern string) (*Matcher, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket pattern %q: %w", pattern, err)
	}
	return &Matcher{re: re}, nil
}

// Find returns the first token matching the pattern across the subjects,
// scanning subjects in the order given (commit log order, most recent
// first). The second return value reports whether anything matched.
func (m *Matcher) Find(subjects []string) (string, bool) {
	for _, subject := range subjects {
		if token := m.re.FindString(subject); token != "" {
			return token, true
		}
	}
	return "", false
}

// Check fails with ExitMissingTicket unless at least one subject carries
// a ticket token, returning the first token found otherwise.
func (m *Matcher) Check(subjects []string) (string, error) {
	token, ok := m.Find(subjects)
	if !ok {
		return "", model.NewCheckError(model.ExitMissingTicket,
			"no commit subject references an issue-tracker ticket: include a token like PROJ-123 in at least one commit message")
	}
	return token, nil
}
