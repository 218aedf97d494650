// Package uploadpath builds blob-store keys for uploaded media. Keys follow
// the scheme {entityType}s/{year}/{month}/{sanitizedFilename}{ext} so objects
// stay browsable by entity and upload date.
package uploadpath

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// Build returns the storage key for filename uploaded for the given entity
// type (singular, e.g. "article"). The base name is sanitized to
// alphanumerics, spaces, hyphens and underscores; spaces become underscores.
func Build(entityType, filename string, now time.Time) string {
	ext := path.Ext(filename)
	base := strings.TrimSuffix(filename, ext)

	return fmt.Sprintf("%ss/%04d/%02d/%s%s",
		entityType, now.Year(), int(now.Month()), Sanitize(base), strings.ToLower(ext))
}

// Sanitize strips every rune that is not alphanumeric, space, hyphen or
// underscore, trims trailing spaces, and replaces spaces with underscores.
func Sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	clean := strings.TrimRight(b.String(), " ")
	return strings.ReplaceAll(clean, " ", "_")
}
