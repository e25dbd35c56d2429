// Package gitrepo is the git integration layer for the cookgate CLI.
//
// It exposes the handful of version-control primitives the validation
// pipeline needs — checkout state, branch creation and switching, added
// diff lines for a single file, and the commit subjects unique to a
// branch — each returned as a typed Go value instead of raw git output.
package gitrepo
