package ticket

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/cookgate/internal/model"
)

// TestFind verifies that the first matching token in subject order wins.
// Merge commits are already excluded upstream, so a plain subject list is
// a faithful input.
func TestFind(t *testing.T) {
	m, err := NewMatcher("")
	require.NoError(t, err)

	subjects := []string{"Fix bug", "PROJ-42: add feature", "OTHER-7 cleanup"}
	token, ok := m.Find(subjects)
	require.True(t, ok)
	assert.Equal(t, "PROJ-42", token)
}

// TestFindNoMatch verifies the miss case, including lowercase project keys
// which the default pattern rejects.
func TestFindNoMatch(t *testing.T) {
	m, err := NewMatcher("")
	require.NoError(t, err)

	_, ok := m.Find([]string{"Fix bug", "proj-42: lowercase key", "cleanup"})
	assert.False(t, ok)

	_, ok = m.Find(nil)
	assert.False(t, ok)
}

// TestFindTokenMidSubject verifies the token may appear anywhere in the
// subject, not just as a prefix.
func TestFindTokenMidSubject(t *testing.T) {
	m, err := NewMatcher("")
	require.NoError(t, err)

	token, ok := m.Find([]string{"Add feature for PROJ-123 rollout"})
	require.True(t, ok)
	assert.Equal(t, "PROJ-123", token)
}

// TestCheck verifies the CheckError shape on a miss.
func TestCheck(t *testing.T) {
	m, err := NewMatcher("")
	require.NoError(t, err)

	token, err := m.Check([]string{"PROJ-42: add feature"})
	require.NoError(t, err)
	assert.Equal(t, "PROJ-42", token)

	_, err = m.Check([]string{"no ticket here"})
	require.Error(t, err)

	var checkErr *model.CheckError
	require.True(t, errors.As(err, &checkErr))
	assert.Equal(t, model.ExitMissingTicket, checkErr.Code)
}

// TestNewMatcherCustomPattern verifies pattern overrides and rejection of
// invalid patterns.
func TestNewMatcherCustomPattern(t *testing.T) {
	m, err := NewMatcher(`JIRA-\d{4}`)
	require.NoError(t, err)

	token, ok := m.Find([]string{"JIRA-0042 done", "JIRA-7 too short"})
	require.True(t, ok)
	assert.Equal(t, "JIRA-0042", token)

	_, err = NewMatcher(`[unclosed`)
	assert.Error(t, err)
}
