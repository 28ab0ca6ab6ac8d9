package sanitize

import (
	"regexp"
	"strings"
)

// badStyleValueRe matches CSS value constructs that can execute code or pull
// in external resources (legacy IE expression/behavior/binding included).
var badStyleValueRe = regexp.MustCompile(`(?i)(javascript:|expression\(|url\(|@import|behavior:|binding:)`)

// SanitizeStyle filters an inline-style attribute value down to the
// declarations whose property is allow-listed and whose value carries no
// active content. Malformed declarations are dropped, order is preserved,
// and survivors are re-joined with "; ". Returns "" when nothing survives.
func (p *Policy) SanitizeStyle(value string) string {
	var kept []string
	for _, decl := range strings.Split(value, ";") {
		prop, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		val = strings.TrimSpace(val)
		if prop == "" || val == "" {
			continue
		}
		if !p.AllowedStyleProps[prop] {
			continue
		}
		if badStyleValueRe.MatchString(val) {
			continue
		}
		kept = append(kept, prop+": "+val)
	}
	return strings.Join(kept, "; ")
}
