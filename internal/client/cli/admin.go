package cli

import (
	"strconv"
)

// Shared helpers for the admin command family. Every mutating command ends
// with a re-fetch of the collection's current page: the displayed page always
// reflects a real server read, never an optimistic local patch.

// pageArg parses an optional page number argument, defaulting to current.
func pageArg(args []string, current int) int {
	if len(args) == 0 {
		return current
	}
	page, err := strconv.Atoi(args[0])
	if err != nil || page < 1 {
		return current
	}
	return page
}

// idArg parses a required record id argument; ok is false when absent or bad.
func idArg(args []string) (int64, bool) {
	if len(args) == 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (a *App) requireAdmin() bool {
	if !a.isAdmin() {
		_, _ = printlnFn("Admin commands require an admin account")
		return false
	}
	return true
}
