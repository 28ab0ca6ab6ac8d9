// Package template renders the complete portfolio page. Description fields
// arrive already sanitized from the store and the summary arrives sanitized
// from the renderer; this package injects them as-is and escapes everything
// else.
package template

import (
	"bytes"
	"fmt"
	"html"
	htmltemplate "html/template"
	"strings"

	"github.com/foliokit/folio/internal/sanitize"
	"github.com/foliokit/folio/internal/store"
)

// PageData holds everything needed to render the portfolio page.
type PageData struct {
	Version      string
	DefaultTheme string
	Portfolio    store.Portfolio
	Summary      htmltemplate.HTML // rendered, sanitized profile summary
	HasPhoto     bool
	HasResume    bool
}

// Renderer renders full HTML pages. Every href it emits from stored URL
// fields passes the sanitizer's URL policy; unsafe values render as plain
// text instead of links.
type Renderer struct {
	policy *sanitize.Policy
}

// NewRenderer creates a page renderer.
func NewRenderer() *Renderer {
	return &Renderer{policy: sanitize.DefaultPolicy()}
}

// RenderPage produces the complete portfolio page.
func (r *Renderer) RenderPage(data PageData) []byte {
	var buf bytes.Buffer

	p := data.Portfolio
	title := p.Profile.Name
	if title == "" {
		title = "folio"
	}

	fmt.Fprintf(&buf, `<!DOCTYPE html>
<html lang="en" data-theme="%s" data-folio-version="%s">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>%s</title>
  <link rel="icon" type="image/svg+xml" href="data:image/svg+xml,%s">
  <style>
`,
		html.EscapeString(data.DefaultTheme),
		html.EscapeString(data.Version),
		html.EscapeString(title),
		faviconSVG,
	)

	writeThemeCSS(&buf)
	writeLayoutCSS(&buf)

	buf.WriteString("\n  </style>\n</head>\n<body>\n")

	r.writeHeader(&buf, data)

	buf.WriteString("  <main>\n")

	if data.Summary != "" {
		fmt.Fprintf(&buf, `  <section id="about" class="folio-section">
    <div class="folio-summary">%s</div>
  </section>
`, data.Summary)
	}

	r.writeExperience(&buf, p.Experience)
	r.writeProjects(&buf, p.Projects)
	r.writeSkills(&buf, p.Skills)
	r.writeEducation(&buf, p.Education)
	r.writeAwards(&buf, p.Awards)
	r.writeCertifications(&buf, p.Certifications)

	buf.WriteString("  </main>\n")

	writeThemeToggleScript(&buf)

	// The summary sanitizer keeps mermaid pre blocks but strips script tags,
	// so the page loads mermaid itself when a diagram is present.
	if strings.Contains(string(data.Summary), `class="mermaid"`) {
		writeMermaidScript(&buf)
	}

	buf.WriteString("</body>\n</html>\n")

	return buf.Bytes()
}

func (r *Renderer) writeHeader(buf *bytes.Buffer, data PageData) {
	p := data.Portfolio.Profile

	buf.WriteString("  <header id=\"folio-header\">\n")
	if data.HasPhoto {
		fmt.Fprintf(buf, `    <img id="folio-photo" src="/photo" alt="%s">`+"\n", html.EscapeString(p.Name))
	}
	fmt.Fprintf(buf, "    <h1>%s</h1>\n", html.EscapeString(p.Name))
	if p.Headline != "" {
		fmt.Fprintf(buf, `    <p class="folio-headline">%s</p>`+"\n", html.EscapeString(p.Headline))
	}

	buf.WriteString(`    <div class="folio-contact">` + "\n")
	if p.Location != "" {
		fmt.Fprintf(buf, "      <span>%s</span>\n", html.EscapeString(p.Location))
	}
	if p.Email != "" {
		fmt.Fprintf(buf, `      <a href="mailto:%s">%s</a>`+"\n",
			html.EscapeString(p.Email), html.EscapeString(p.Email))
	}
	for _, link := range p.Links {
		if !r.policy.IsSafeURL(link.URL) {
			fmt.Fprintf(buf, "      <span>%s</span>\n", html.EscapeString(link.Label))
			continue
		}
		fmt.Fprintf(buf, `      <a href="%s" target="_blank" rel="noopener noreferrer">%s</a>`+"\n",
			html.EscapeString(link.URL), html.EscapeString(link.Label))
	}
	if data.HasResume {
		buf.WriteString(`      <a href="/resume" class="folio-resume-link">Resume</a>` + "\n")
	}
	buf.WriteString("    </div>\n")

	buf.WriteString(`    <div class="folio-controls">
      <button id="folio-theme-toggle" title="Toggle theme">&#x25D1;</button>
    </div>
`)
	buf.WriteString("  </header>\n")
}

func (r *Renderer) writeExperience(buf *bytes.Buffer, items []store.Experience) {
	if len(items) == 0 {
		return
	}
	openSection(buf, "experience", "Experience")
	for _, e := range items {
		fmt.Fprintf(buf, `    <article class="folio-entry" data-id="%s">
      <h3>%s</h3>
      <p class="folio-entry-meta">%s · %s</p>
`,
			html.EscapeString(e.ID),
			html.EscapeString(e.Title),
			html.EscapeString(e.Company),
			html.EscapeString(dateRange(e.StartDate, e.EndDate)),
		)
		writeDescription(buf, e.Description)
		buf.WriteString("    </article>\n")
	}
	closeSection(buf)
}

func (r *Renderer) writeProjects(buf *bytes.Buffer, items []store.Project) {
	if len(items) == 0 {
		return
	}
	openSection(buf, "projects", "Projects")
	for _, p := range items {
		fmt.Fprintf(buf, `    <article class="folio-entry" data-id="%s">`+"\n", html.EscapeString(p.ID))
		r.writeEntryHeading(buf, p.Name, p.URL)
		if len(p.Tags) > 0 {
			buf.WriteString(`      <p class="folio-tags">`)
			for i, tag := range p.Tags {
				if i > 0 {
					buf.WriteString(" ")
				}
				fmt.Fprintf(buf, `<span class="folio-tag">%s</span>`, html.EscapeString(tag))
			}
			buf.WriteString("</p>\n")
		}
		writeDescription(buf, p.Description)
		buf.WriteString("    </article>\n")
	}
	closeSection(buf)
}

func (r *Renderer) writeSkills(buf *bytes.Buffer, items []store.Skill) {
	if len(items) == 0 {
		return
	}
	openSection(buf, "skills", "Skills")
	buf.WriteString(`    <ul class="folio-skills">` + "\n")
	for _, s := range items {
		fmt.Fprintf(buf, `      <li data-id="%s" data-level="%d">%s`,
			html.EscapeString(s.ID), s.Level, html.EscapeString(s.Name))
		if s.Category != "" {
			fmt.Fprintf(buf, ` <span class="folio-skill-category">%s</span>`, html.EscapeString(s.Category))
		}
		buf.WriteString("</li>\n")
	}
	buf.WriteString("    </ul>\n")
	closeSection(buf)
}

func (r *Renderer) writeEducation(buf *bytes.Buffer, items []store.Education) {
	if len(items) == 0 {
		return
	}
	openSection(buf, "education", "Education")
	for _, e := range items {
		degree := e.Degree
		if e.Field != "" {
			degree += ", " + e.Field
		}
		fmt.Fprintf(buf, `    <article class="folio-entry" data-id="%s">
      <h3>%s</h3>
      <p class="folio-entry-meta">%s · %s</p>
`,
			html.EscapeString(e.ID),
			html.EscapeString(e.School),
			html.EscapeString(degree),
			html.EscapeString(dateRange(e.StartYear, e.EndYear)),
		)
		writeDescription(buf, e.Description)
		buf.WriteString("    </article>\n")
	}
	closeSection(buf)
}

func (r *Renderer) writeAwards(buf *bytes.Buffer, items []store.Award) {
	if len(items) == 0 {
		return
	}
	openSection(buf, "awards", "Awards")
	for _, a := range items {
		fmt.Fprintf(buf, `    <article class="folio-entry" data-id="%s">
      <h3>%s</h3>
      <p class="folio-entry-meta">%s · %s</p>
`,
			html.EscapeString(a.ID),
			html.EscapeString(a.Title),
			html.EscapeString(a.Issuer),
			html.EscapeString(a.Year),
		)
		writeDescription(buf, a.Description)
		buf.WriteString("    </article>\n")
	}
	closeSection(buf)
}

func (r *Renderer) writeCertifications(buf *bytes.Buffer, items []store.Certification) {
	if len(items) == 0 {
		return
	}
	openSection(buf, "certifications", "Certifications")
	for _, c := range items {
		fmt.Fprintf(buf, `    <article class="folio-entry" data-id="%s">`+"\n", html.EscapeString(c.ID))
		r.writeEntryHeading(buf, c.Name, c.URL)
		fmt.Fprintf(buf, `      <p class="folio-entry-meta">%s · %s</p>`+"\n",
			html.EscapeString(c.Issuer), html.EscapeString(dateRange(c.IssuedAt, c.ExpiresAt)))
		writeDescription(buf, c.Description)
		buf.WriteString("    </article>\n")
	}
	closeSection(buf)
}

// writeEntryHeading writes an entry title, linked only when the URL passes
// the policy.
func (r *Renderer) writeEntryHeading(buf *bytes.Buffer, name, url string) {
	if url != "" && r.policy.IsSafeURL(url) {
		fmt.Fprintf(buf, `      <h3><a href="%s" target="_blank" rel="noopener noreferrer">%s</a></h3>`+"\n",
			html.EscapeString(url), html.EscapeString(name))
		return
	}
	fmt.Fprintf(buf, "      <h3>%s</h3>\n", html.EscapeString(name))
}

func openSection(buf *bytes.Buffer, id, heading string) {
	fmt.Fprintf(buf, `  <section id="%s" class="folio-section">
    <h2>%s</h2>
`, id, heading)
}

func closeSection(buf *bytes.Buffer) {
	buf.WriteString("  </section>\n")
}

// writeDescription injects sanitized rich-text HTML without re-escaping.
func writeDescription(buf *bytes.Buffer, description string) {
	if description == "" {
		return
	}
	fmt.Fprintf(buf, `      <div class="folio-description">%s</div>`+"\n", description)
}

func dateRange(start, end string) string {
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start + " – present"
	case start == "":
		return end
	}
	return start + " – " + end
}

func writeMermaidScript(buf *bytes.Buffer) {
	buf.WriteString(`  <script type="module">
import mermaid from "https://cdn.jsdelivr.net/npm/mermaid@11/dist/mermaid.esm.min.mjs";
mermaid.initialize({ startOnLoad: true });
  </script>
`)
}

func writeThemeToggleScript(buf *bytes.Buffer) {
	buf.WriteString(`  <script>
(function () {
  var root = document.documentElement;
  var stored = localStorage.getItem("folio-theme");
  if (stored) { root.setAttribute("data-theme", stored); }
  var btn = document.getElementById("folio-theme-toggle");
  if (!btn) { return; }
  btn.addEventListener("click", function () {
    var current = root.getAttribute("data-theme");
    var next = current === "dark" ? "light" : "dark";
    root.setAttribute("data-theme", next);
    localStorage.setItem("folio-theme", next);
  });
})();
  </script>
`)
}
