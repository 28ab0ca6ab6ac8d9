package render

import (
	"strings"
	"testing"
)

func renderSummary(t *testing.T, source string) string {
	t.Helper()
	out, err := NewMarkdownRenderer().Render([]byte(source))
	if err != nil {
		t.Fatalf("Render(%q) error: %v", source, err)
	}
	return string(out)
}

func TestRender_BasicMarkdown(t *testing.T) {
	got := renderSummary(t, "# About\n\nI write **Go** services.")

	if !strings.Contains(got, `<h1 id="about">About</h1>`) {
		t.Errorf("missing heading with auto ID: %s", got)
	}
	if !strings.Contains(got, "<strong>Go</strong>") {
		t.Errorf("missing bold text: %s", got)
	}
}

func TestRender_GFMTable(t *testing.T) {
	got := renderSummary(t, "| a | b |\n|---|---|\n| 1 | 2 |")
	if !strings.Contains(got, "<table>") {
		t.Errorf("GFM table not rendered: %s", got)
	}
}

func TestRender_LinksKept(t *testing.T) {
	got := renderSummary(t, "[my site](https://example.com)")
	if !strings.Contains(got, `href="https://example.com"`) {
		t.Errorf("link lost: %s", got)
	}
}

func TestRender_RawHTMLSanitized(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		mustNot string
	}{
		{"script block", "hello\n\n<script>alert(1)</script>", "<script"},
		{"event handler", `<p onclick="alert(1)">hi</p>`, "onclick"},
		{"javascript link", `[x](javascript:alert\(1\))`, "javascript:"},
		{"iframe", `<iframe src="https://evil"></iframe>`, "<iframe"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := strings.ToLower(renderSummary(t, tc.source))
			if strings.Contains(got, tc.mustNot) {
				t.Errorf("unsafe construct survived: %s", got)
			}
		})
	}
}

func TestRender_CodeBlockHighlighted(t *testing.T) {
	got := renderSummary(t, "```go\nfmt.Println(\"hi\")\n```")

	if !strings.Contains(got, `class="folio-code-block"`) {
		t.Errorf("missing code block wrapper: %s", got)
	}
	if !strings.Contains(got, `data-language="go"`) {
		t.Errorf("missing language attribute: %s", got)
	}
	if !strings.Contains(got, "chroma") {
		t.Errorf("missing chroma classes: %s", got)
	}
}

func TestRender_MermaidBlockSurvives(t *testing.T) {
	got := renderSummary(t, "```mermaid\ngraph TD;\n  A-->B;\n```")
	if !strings.Contains(got, `<pre class="mermaid">`) {
		t.Errorf("mermaid block lost: %s", got)
	}
	if strings.Contains(got, "<script") {
		t.Errorf("script tag survived sanitization: %s", got)
	}
}

func TestRender_EmptyInput(t *testing.T) {
	got := renderSummary(t, "")
	if strings.TrimSpace(got) != "" {
		t.Errorf("empty summary rendered non-empty: %q", got)
	}
}
