package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"
)

// Slugify converts a human-readable name into a URL-safe slug.
func Slugify(name string) string {
	return slug.Make(name)
}

// TimestampedSlug builds a slug from a parent name plus a microsecond-resolution
// timestamp, so repeated image uploads within the same second still get
// distinct slugs.
func TimestampedSlug(name string, t time.Time) string {
	stamp := strings.ReplaceAll(t.Format("20060102150405.000000"), ".", "")
	return slug.Make(fmt.Sprintf("%s-%s", name, stamp))
}
