package store

import (
	"os"
	"path/filepath"
	"strings"
)

// Theme preference is cosmetic and deliberately independent of the session
// file: it survives logout and is never cleared with the credentials.
const themeFile = "theme"

// Theme returns the persisted theme preference, defaulting to "light".
func (f *FileStore) Theme() string {
	raw, err := os.ReadFile(filepath.Join(f.dir, themeFile))
	if err != nil {
		return "light"
	}
	t := strings.TrimSpace(string(raw))
	if t != "dark" && t != "light" {
		return "light"
	}
	return t
}

// SetTheme persists the theme preference.
func (f *FileStore) SetTheme(theme string) error {
	return os.WriteFile(filepath.Join(f.dir, themeFile), []byte(theme+"\n"), 0o600)
}
