package blogservice

import (
	"regexp"
	"strings"
)

var (
	nonSlugRX   = regexp.MustCompile(`[^\w\s-]`)
	separatorRX = regexp.MustCompile(`[\s_]+`)
	hyphenRunRX = regexp.MustCompile(`-+`)
)

// Slugify converts a post title into a URL-safe slug: lowercase, characters
// outside [\w\s-] removed, whitespace and underscore runs turned into single
// hyphens, hyphen runs collapsed. Underscores become hyphens so every derived
// slug satisfies SlugRX. It is total (never fails) and idempotent; an empty
// title yields an empty slug.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = nonSlugRX.ReplaceAllString(s, "")
	s = separatorRX.ReplaceAllString(s, "-")
	s = hyphenRunRX.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
