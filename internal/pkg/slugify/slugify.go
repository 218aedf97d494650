package slugify

import (
	"fmt"

	"github.com/gosimple/slug"
)

// Make returns a URL-safe slug for s.
func Make(s string) string {
	return slug.Make(s)
}

// MakeUnique appends a short discriminator, used when the natural slug is
// already taken.
func MakeUnique(s, suffix string) string {
	return fmt.Sprintf("%s-%s", slug.Make(s), suffix)
}
