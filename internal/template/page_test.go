package template

import (
	"strings"
	"testing"

	"github.com/foliokit/folio/internal/store"
)

func testPortfolio() store.Portfolio {
	return store.Portfolio{
		Profile: store.Profile{
			Name:     "Ada Example",
			Headline: "Backend Engineer",
			Location: "Berlin",
			Email:    "ada@example.com",
			Links: []store.Link{
				{Label: "GitHub", URL: "https://github.com/ada"},
			},
		},
		Experience: []store.Experience{
			{
				ID:          "exp-1",
				Company:     "Widgets & Co",
				Title:       "Engineer",
				StartDate:   "2020-01",
				Description: "<p>Built <b>things</b></p>",
			},
		},
		Projects: []store.Project{
			{ID: "proj-1", Name: "folio", URL: "https://example.com/folio", Tags: []string{"go", "web"}},
		},
		Skills: []store.Skill{
			{ID: "skill-1", Name: "Go", Category: "Languages", Level: 5},
		},
	}
}

func renderTestPage(t *testing.T, data PageData) string {
	t.Helper()
	return string(NewRenderer().RenderPage(data))
}

func TestRenderPage_ProfileHeader(t *testing.T) {
	got := renderTestPage(t, PageData{
		Version:      "test",
		DefaultTheme: "auto",
		Portfolio:    testPortfolio(),
	})

	for _, want := range []string{
		"<title>Ada Example</title>",
		`data-theme="auto"`,
		"<h1>Ada Example</h1>",
		`<p class="folio-headline">Backend Engineer</p>`,
		`href="mailto:ada@example.com"`,
		`href="https://github.com/ada"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestRenderPage_EscapesProfileFields(t *testing.T) {
	p := testPortfolio()
	p.Profile.Name = `<script>alert(1)</script>`
	p.Profile.Headline = `a & b <img>`

	got := renderTestPage(t, PageData{Portfolio: p})

	if strings.Contains(got, "<script>alert(1)</script>") {
		t.Error("profile name not escaped")
	}
	if !strings.Contains(got, "&lt;script&gt;alert(1)&lt;/script&gt;") {
		t.Error("expected escaped profile name in output")
	}
	if !strings.Contains(got, "a &amp; b &lt;img&gt;") {
		t.Errorf("headline not escaped: %s", got)
	}
}

// Stored URL fields pass through the sanitizer's URL policy before they
// become hrefs; unsafe values degrade to unlinked text.
func TestRenderPage_UnsafeURLsNotLinked(t *testing.T) {
	p := testPortfolio()
	p.Profile.Links = append(p.Profile.Links,
		store.Link{Label: "Evil", URL: "javascript:alert(1)"},
		store.Link{Label: "Sneaky", URL: "//evil.example.com/x"},
	)
	p.Projects[0].URL = "javascript:alert(2)"
	p.Certifications = []store.Certification{
		{ID: "cert-1", Name: "Cert", Issuer: "Org", URL: "data:text/html,x"},
	}

	got := renderTestPage(t, PageData{Portfolio: p})

	for _, bad := range []string{"javascript:", "//evil.example.com", "data:text/html"} {
		if strings.Contains(got, bad) {
			t.Errorf("unsafe URL %q emitted: %s", bad, got)
		}
	}
	for _, want := range []string{
		"<span>Evil</span>",
		"<span>Sneaky</span>",
		"<h3>folio</h3>",
		"<h3>Cert</h3>",
		`href="https://github.com/ada"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestRenderPage_DescriptionsNotReescaped(t *testing.T) {
	got := renderTestPage(t, PageData{Portfolio: testPortfolio()})

	if !strings.Contains(got, "<p>Built <b>things</b></p>") {
		t.Error("sanitized description was escaped or dropped")
	}
}

func TestRenderPage_EmptySectionsSkipped(t *testing.T) {
	p := testPortfolio()
	got := renderTestPage(t, PageData{Portfolio: p})

	if !strings.Contains(got, `id="experience"`) {
		t.Error("non-empty experience section missing")
	}
	for _, absent := range []string{`id="education"`, `id="awards"`, `id="certifications"`} {
		if strings.Contains(got, absent) {
			t.Errorf("empty section %s rendered", absent)
		}
	}
}

func TestRenderPage_Summary(t *testing.T) {
	got := renderTestPage(t, PageData{
		Portfolio: testPortfolio(),
		Summary:   "<p>Hello <em>there</em></p>",
	})

	if !strings.Contains(got, `<div class="folio-summary"><p>Hello <em>there</em></p></div>`) {
		t.Errorf("summary not injected verbatim: %s", got)
	}
}

func TestRenderPage_MermaidScriptOnlyWhenUsed(t *testing.T) {
	got := renderTestPage(t, PageData{Portfolio: testPortfolio()})
	if strings.Contains(got, "mermaid.esm.min.mjs") {
		t.Error("mermaid script included without a diagram")
	}

	got = renderTestPage(t, PageData{
		Portfolio: testPortfolio(),
		Summary:   `<pre class="mermaid">graph TD;</pre>`,
	})
	if !strings.Contains(got, "mermaid.esm.min.mjs") {
		t.Error("mermaid script missing for a summary with a diagram")
	}
}

func TestRenderPage_PhotoAndResume(t *testing.T) {
	data := PageData{Portfolio: testPortfolio()}

	got := renderTestPage(t, data)
	if strings.Contains(got, `src="/photo"`) || strings.Contains(got, `href="/resume"`) {
		t.Error("photo or resume link rendered without uploads")
	}

	data.HasPhoto = true
	data.HasResume = true
	got = renderTestPage(t, data)
	if !strings.Contains(got, `src="/photo"`) {
		t.Error("photo missing")
	}
	if !strings.Contains(got, `href="/resume"`) {
		t.Error("resume link missing")
	}
}

func TestRenderPage_ThemeCSS(t *testing.T) {
	got := renderTestPage(t, PageData{Portfolio: testPortfolio(), DefaultTheme: "dark"})

	for _, want := range []string{
		`[data-theme="light"] { color-scheme: light; }`,
		`[data-theme="dark"] { color-scheme: dark; }`,
		`[data-theme="auto"] { color-scheme: light dark; }`,
		"@media (prefers-color-scheme: dark)",
		`[data-theme="light"] .chroma`,
		`[data-theme="dark"] .chroma`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("theme CSS missing %q", want)
		}
	}
}

func TestRenderPage_FallbackTitle(t *testing.T) {
	got := renderTestPage(t, PageData{})
	if !strings.Contains(got, "<title>folio</title>") {
		t.Error("missing fallback title for empty profile")
	}
}

func TestDateRange(t *testing.T) {
	tests := []struct {
		start, end, want string
	}{
		{"", "", ""},
		{"2020", "", "2020 – present"},
		{"", "2021", "2021"},
		{"2020", "2021", "2020 – 2021"},
	}
	for _, tc := range tests {
		if got := dateRange(tc.start, tc.end); got != tc.want {
			t.Errorf("dateRange(%q, %q) = %q, want %q", tc.start, tc.end, got, tc.want)
		}
	}
}
