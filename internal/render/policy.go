package render

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

var (
	classNameRe = regexp.MustCompile(`^[a-zA-Z0-9_ -]+$`)
	headingIDRe = regexp.MustCompile(`^[a-zA-Z0-9-_]+$`)
)

// summaryPolicy is bluemonday's user-generated-content baseline widened just
// enough for the renderer's own output: chroma token classes, the
// folio-code-block wrapper, mermaid pre blocks, and auto-generated heading
// anchors.
func summaryPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()

	p.AllowAttrs("class").Matching(classNameRe).
		OnElements("div", "span", "pre", "code")
	p.AllowAttrs("data-language").Matching(classNameRe).
		OnElements("div")
	p.AllowAttrs("id").Matching(headingIDRe).
		OnElements("h1", "h2", "h3", "h4", "h5", "h6")

	return p
}
