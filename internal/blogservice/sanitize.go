package blogservice

import "regexp"

var scriptTagRX = regexp.MustCompile(`(?is)<\s*script[^>]*>(.*?)<\s*/\s*script\s*>`)

// SanitizeHTML strips script blocks from editor-produced HTML before storage.
func SanitizeHTML(html string) string {
	return scriptTagRX.ReplaceAllString(html, "")
}
