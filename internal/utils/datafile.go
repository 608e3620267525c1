package utils

import (
	"path/filepath"
	"strings"
	"unicode"
)

// SanitizeUserName reduces a profile name to a safe file stem: lowercase
// letters, digits, dash and underscore. Anything else is dropped. An empty
// result falls back to "user".
func SanitizeUserName(user string) string {
	var b strings.Builder
	for _, ch := range strings.ToLower(strings.TrimSpace(user)) {
		if unicode.IsLower(ch) || unicode.IsDigit(ch) || ch == '-' || ch == '_' {
			b.WriteRune(ch)
		}
	}
	if b.Len() == 0 {
		return "user"
	}
	return b.String()
}

// ResolveStorePath picks the CSV file for a profile. An explicit file
// override wins; otherwise the user's sanitized name selects a file under
// the data directory. With neither, a shared words.csv in the working
// directory is used.
func ResolveStorePath(user, fileOverride, dataDir string) string {
	if fileOverride != "" {
		return fileOverride
	}
	if strings.TrimSpace(user) == "" {
		return "words.csv"
	}
	return filepath.Join(dataDir, SanitizeUserName(user)+".csv")
}
