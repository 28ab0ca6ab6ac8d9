package sanitize

import (
	"net/url"
	"regexp"
	"strings"
)

// badSchemeRe matches the protocols that are never acceptable in a link,
// regardless of how the rest of the value parses.
var badSchemeRe = regexp.MustCompile(`(?i)(javascript|vbscript|data)\s*:`)

// safePrefixes are accepted by the textual fallback when a structured parse
// is unavailable or inconclusive.
var safePrefixes = []string{"http:", "https:", "mailto:", "tel:", "/", "./", "../"}

// IsSafeURL reports whether a candidate href value may be kept. It is a pure
// predicate: a structured URL parse is tried first and checked against the
// scheme allow-list; otherwise a textual check accepts allowed scheme
// prefixes, relative paths, and colon-free values.
func (p *Policy) IsSafeURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	if badSchemeRe.MatchString(raw) {
		return false
	}

	if u, err := url.Parse(raw); err == nil && u.Scheme != "" {
		return p.AllowedSchemes[strings.ToLower(u.Scheme)]
	}

	lower := strings.ToLower(raw)
	// Protocol-relative URLs inherit the page scheme; reject them before the
	// prefix check so the "/" entry cannot accept them.
	if strings.HasPrefix(lower, "//") {
		return false
	}
	for _, prefix := range safePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return !strings.Contains(lower, ":")
}
