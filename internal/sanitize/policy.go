// Package sanitize cleans rich-text HTML produced by the portfolio's WYSIWYG
// editor before it is stored or rendered. It enforces a closed allow-list of
// tags, attributes, inline style properties, and URL schemes, and removes a
// fixed set of inherently dangerous elements together with their content.
//
// Two interchangeable strategies implement the cleaning: a structured mode
// that parses and walks a real node tree, and a weaker textual mode that runs
// ordered regex passes. The Sanitizer facade tries them in order and never
// fails; if every strategy errors it falls back to stripping all markup.
package sanitize

// Policy is the single source of truth for what markup survives
// sanitization. It is built once and treated as frozen data; nothing in this
// package mutates a Policy after construction, so one value may be shared
// across concurrent calls.
type Policy struct {
	// AllowedTags are kept as elements. Tags outside this set (and outside
	// DangerousTags) are unwrapped: the element is removed but its children
	// survive in its place.
	AllowedTags map[string]bool

	// AllowedAttributes are kept on allowed elements. style and href values
	// are additionally validated before being kept.
	AllowedAttributes map[string]bool

	// AllowedStyleProps are the CSS property names permitted inside a style
	// attribute.
	AllowedStyleProps map[string]bool

	// AllowedSchemes are the URL schemes permitted in href values.
	// Scheme-less relative paths are always permitted.
	AllowedSchemes map[string]bool

	// DangerousTags are removed together with their entire subtree. This
	// deny-list overrides AllowedTags.
	DangerousTags map[string]bool
}

// DefaultPolicy returns the portfolio rich-text policy: the formatting subset
// the WYSIWYG editor emits (paragraphs, headings, lists, inline formatting,
// links) plus the editor's list/indent/alignment data attributes.
func DefaultPolicy() *Policy {
	return &Policy{
		AllowedTags: setOf(
			"p", "br",
			"b", "strong", "i", "em", "u", "s", "strike",
			"h1", "h2", "h3", "h4", "h5", "h6",
			"ol", "ul", "li",
			"blockquote", "code", "pre",
			"a",
		),
		AllowedAttributes: setOf(
			"class", "style", "href", "target", "rel",
			"data-list", "data-indent", "data-align",
		),
		AllowedStyleProps: setOf(
			"color", "background-color",
			"font-size", "font-weight", "font-style",
			"text-decoration", "text-align",
			"margin-left", "text-indent", "padding",
		),
		AllowedSchemes: setOf("http", "https", "mailto", "tel"),
		DangerousTags: setOf(
			"script", "iframe", "object", "embed",
			"applet", "form", "input", "button",
		),
	}
}

func setOf(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}
