package sanitize

import "regexp"

// dangerSignatures are the fast advisory checks behind IsSafeContent. They
// cover script tags, code-executing protocols, inline event handlers, and
// the dangerous-tag deny-list.
var dangerSignatures = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<\s*script\b`),
	regexp.MustCompile(`(?i)(?:javascript|vbscript)\s*:`),
	regexp.MustCompile(`(?i)\bon[a-z]+\s*=`),
	regexp.MustCompile(`(?i)<\s*(?:iframe|object|embed|applet|form|input|button)\b`),
}

// IsSafeContent reports whether html looks free of active content. It is an
// advisory pre-check for gating decisions, not a guarantee: untrusted input
// must still go through Sanitize regardless of the result. Empty input is
// safe. The input is never mutated.
func IsSafeContent(html string) bool {
	if html == "" {
		return true
	}
	for _, re := range dangerSignatures {
		if re.MatchString(html) {
			return false
		}
	}
	return true
}
