package sanitize

import (
	"regexp"
	"sort"
)

// PatternStrategy is the textual sanitization mode: ordered regex passes over
// the raw string. It is deliberately weaker than TreeStrategy: it removes
// the deny-list (script blocks, event handlers, dangerous protocols and
// tags) but does not enforce the tag allow-list, so unknown-but-harmless
// markup survives untouched. It exists as a degraded fallback for when no
// tree can be built, not as a primary guarantee.
type PatternStrategy struct {
	blocks      []*regexp.Regexp
	selfClosing []*regexp.Regexp
}

var (
	scriptBlockRe  = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	eventHandlerRe = regexp.MustCompile(`(?i)\s+on\w+\s*=\s*(?:"[^"]*"|'[^']*'|[^\s>]*)`)
	badProtocolRe  = regexp.MustCompile(`(?i)(?:javascript|vbscript):`)
)

// NewPatternStrategy compiles deny-list patterns for every dangerous tag in
// p: one matching full paired blocks (tag, content, closing tag) and one
// matching self-closing or orphaned opening tags.
func NewPatternStrategy(p *Policy) *PatternStrategy {
	s := &PatternStrategy{}

	tags := make([]string, 0, len(p.DangerousTags))
	for tag := range p.DangerousTags {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	for _, tag := range tags {
		s.blocks = append(s.blocks,
			regexp.MustCompile(`(?is)<`+tag+`\b[^>]*>.*?</`+tag+`\s*>`))
		s.selfClosing = append(s.selfClosing,
			regexp.MustCompile(`(?is)<`+tag+`\b[^>]*/?>`))
	}
	return s
}

// Name identifies the strategy in logs.
func (s *PatternStrategy) Name() string { return "pattern" }

// Sanitize runs the deny-list passes in order: script blocks, event-handler
// attributes, dangerous protocol literals, then every dangerous tag in both
// paired and self-closing form.
func (s *PatternStrategy) Sanitize(input string) (string, error) {
	out := scriptBlockRe.ReplaceAllString(input, "")
	out = eventHandlerRe.ReplaceAllString(out, "")
	out = badProtocolRe.ReplaceAllString(out, "")

	for _, re := range s.blocks {
		out = re.ReplaceAllString(out, "")
	}
	for _, re := range s.selfClosing {
		out = re.ReplaceAllString(out, "")
	}
	return out, nil
}
