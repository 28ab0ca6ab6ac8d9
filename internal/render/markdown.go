// Package render turns the profile's markdown summary into HTML. The output
// is sanitized with bluemonday before it leaves this package: markdown may
// embed raw HTML, and goldmark is configured to pass it through, so the
// policy pass is what makes the result safe to serve.
package render

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	gmermaid "go.abhg.dev/goldmark/mermaid"
)

// MarkdownRenderer renders the profile summary to sanitized HTML.
type MarkdownRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewMarkdownRenderer creates a renderer with GFM, typographer, class-based
// chroma highlighting, and mermaid support.
func NewMarkdownRenderer() *MarkdownRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
			&ChromaHighlighting{},
			&gmermaid.Extender{},
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	return &MarkdownRenderer{md: md, policy: summaryPolicy()}
}

// Render converts markdown source to sanitized HTML.
func (r *MarkdownRenderer) Render(source []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(source, &buf); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	return r.policy.SanitizeBytes(buf.Bytes()), nil
}
