// Package pathutils expands the paths given to irsa-jwks. Paths coming from
// IRSA_JWKS_* environment variables are not expanded by a shell, so a leading
// "~/" is resolved here.
package pathutils

import (
	"os/user"
	"path/filepath"
	"strings"
)

// HomeDir returns the home directory of the current user, or "" if it cannot
// be determined.
func HomeDir() string {
	usr, err := user.Current()
	if err != nil {
		return ""
	}
	return usr.HomeDir
}

// ExpandHome converts a leading "~/" to the current user's home directory.
// Any other path, including "-" for stdin, is returned unchanged.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}

	home := HomeDir()
	if home == "" {
		return path
	}
	return filepath.Join(home, path[2:])
}
