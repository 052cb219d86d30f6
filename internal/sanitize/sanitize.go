// Package sanitize filters model output before it reaches the UI.
//
// The filter is a denylist of known-bad markup patterns applied by text
// substitution. It is not a full HTML sanitizer and cannot catch every
// injection vector; that is an accepted risk while responses are rendered as
// escaped chat text only. Rendering untrusted output as live markup would
// require an allowlist-based sanitizer instead.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	scriptBlockRe = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	iframeBlockRe = regexp.MustCompile(`(?is)<iframe\b[^>]*>.*?</iframe>`)
	scriptTagRe   = regexp.MustCompile(`(?i)</?(?:script|iframe)\b[^>]*>`)
	jsURIRe       = regexp.MustCompile(`(?i)javascript:`)
	eventAttrRe   = regexp.MustCompile(`(?i)\son\w+\s*=\s*(?:"[^"]*"|'[^']*'|[^\s>]+)`)

	headingRe  = regexp.MustCompile(`(?m)^#{1,6}\s*`)
	emphasisRe = regexp.MustCompile(`(\*{1,3}|_{1,3})`)
	fenceRe    = regexp.MustCompile("`{1,3}")
)

// Clean strips script/iframe markup, javascript: URIs and inline event
// handler attributes, then trims surrounding whitespace.
func Clean(s string) string {
	s = scriptBlockRe.ReplaceAllString(s, "")
	s = iframeBlockRe.ReplaceAllString(s, "")
	s = scriptTagRe.ReplaceAllString(s, "")
	s = jsURIRe.ReplaceAllString(s, "")
	s = eventAttrRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// StripMarkdown removes heading, emphasis and code markers on top of Clean.
// Used for report narration text, which is displayed as plain prose.
func StripMarkdown(s string) string {
	s = Clean(s)
	s = headingRe.ReplaceAllString(s, "")
	s = emphasisRe.ReplaceAllString(s, "")
	s = fenceRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
