package template

import (
	"bytes"
	"fmt"
)

// faviconSVG is an inline SVG favicon, URL-encoded for a data: href.
const faviconSVG = `%3Csvg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 100 100'%3E%3Ctext y='.9em' font-size='90'%3E%F0%9F%93%84%3C/text%3E%3C/svg%3E`

// themeLight holds the color variables for the light theme.
const themeLight = `
    %[1]s {
      --folio-bg: #ffffff;
      --folio-fg: #1f2328;
      --folio-muted: #656d76;
      --folio-accent: #0969da;
      --folio-border: #d0d7de;
      --folio-surface: #f6f8fa;
    }
`

// themeDark holds the color variables for the dark theme.
const themeDark = `
    %[1]s {
      --folio-bg: #0d1117;
      --folio-fg: #e6edf3;
      --folio-muted: #8b949e;
      --folio-accent: #58a6ff;
      --folio-border: #30363d;
      --folio-surface: #161b22;
    }
`

// chromaLight is CSS for chroma syntax highlighting (light theme).
const chromaLight = `.chroma { background-color: #f8f8f8; }
    %[1]s .chroma .err { color: #a61717; background-color: #e3d2d2; }
    %[1]s .chroma .k, %[1]s .chroma .kc, %[1]s .chroma .kd, %[1]s .chroma .kn, %[1]s .chroma .kp, %[1]s .chroma .kr { color: #000; font-weight: bold; }
    %[1]s .chroma .kt { color: #458; font-weight: bold; }
    %[1]s .chroma .na, %[1]s .chroma .no, %[1]s .chroma .nv { color: #008080; }
    %[1]s .chroma .nb { color: #0086b3; }
    %[1]s .chroma .nc { color: #458; font-weight: bold; }
    %[1]s .chroma .ne, %[1]s .chroma .nf { color: #900; font-weight: bold; }
    %[1]s .chroma .nn { color: #555; }
    %[1]s .chroma .nt { color: #000080; }
    %[1]s .chroma .s, %[1]s .chroma .sa, %[1]s .chroma .sb, %[1]s .chroma .sc, %[1]s .chroma .dl, %[1]s .chroma .sd, %[1]s .chroma .s2, %[1]s .chroma .se, %[1]s .chroma .sh, %[1]s .chroma .si, %[1]s .chroma .sx, %[1]s .chroma .s1 { color: #d14; }
    %[1]s .chroma .sr { color: #009926; }
    %[1]s .chroma .ss { color: #990073; }
    %[1]s .chroma .c, %[1]s .chroma .ch, %[1]s .chroma .cm, %[1]s .chroma .c1 { color: #998; font-style: italic; }
    %[1]s .chroma .cs, %[1]s .chroma .cp, %[1]s .chroma .cpf { color: #999; font-weight: bold; font-style: italic; }
    %[1]s .chroma .m, %[1]s .chroma .mb, %[1]s .chroma .mf, %[1]s .chroma .mh, %[1]s .chroma .mi, %[1]s .chroma .il, %[1]s .chroma .mo { color: #099; }
    %[1]s .chroma .o, %[1]s .chroma .ow { color: #000; font-weight: bold; }
`

// chromaDark is CSS for chroma syntax highlighting (dark theme).
const chromaDark = `.chroma { background-color: #1e1e1e; color: #d4d4d4; }
    %[1]s .chroma .err { color: #f44747; }
    %[1]s .chroma .k, %[1]s .chroma .kc, %[1]s .chroma .kd, %[1]s .chroma .kp, %[1]s .chroma .kr, %[1]s .chroma .nt { color: #569cd6; }
    %[1]s .chroma .kn, %[1]s .chroma .cp, %[1]s .chroma .ow { color: #c586c0; }
    %[1]s .chroma .kt, %[1]s .chroma .nb, %[1]s .chroma .nc, %[1]s .chroma .ne, %[1]s .chroma .nn { color: #4ec9b0; }
    %[1]s .chroma .na, %[1]s .chroma .nv { color: #9cdcfe; }
    %[1]s .chroma .no { color: #4fc1ff; }
    %[1]s .chroma .nd, %[1]s .chroma .nf { color: #dcdcaa; }
    %[1]s .chroma .ni, %[1]s .chroma .se { color: #d7ba7d; }
    %[1]s .chroma .s, %[1]s .chroma .sa, %[1]s .chroma .sb, %[1]s .chroma .sc, %[1]s .chroma .dl, %[1]s .chroma .sd, %[1]s .chroma .s2, %[1]s .chroma .sh, %[1]s .chroma .si, %[1]s .chroma .sx, %[1]s .chroma .s1, %[1]s .chroma .ss, %[1]s .chroma .cpf { color: #ce9178; }
    %[1]s .chroma .sr { color: #d16969; }
    %[1]s .chroma .c, %[1]s .chroma .ch, %[1]s .chroma .cm, %[1]s .chroma .c1, %[1]s .chroma .cs { color: #6a9955; font-style: italic; }
    %[1]s .chroma .m, %[1]s .chroma .mb, %[1]s .chroma .mf, %[1]s .chroma .mh, %[1]s .chroma .mi, %[1]s .chroma .il, %[1]s .chroma .mo { color: #b5cea8; }
`

func writeThemeCSS(buf *bytes.Buffer) {
	writeTheme := func(selector, theme, chroma string) {
		fmt.Fprintf(buf, theme, selector)
		fmt.Fprintf(buf, "    %s ", selector)
		fmt.Fprintf(buf, chroma, selector)
	}

	fmt.Fprintf(buf, "    /* Theme: light */\n")
	fmt.Fprintf(buf, "    [data-theme=\"light\"] { color-scheme: light; }\n")
	writeTheme(`[data-theme="light"]`, themeLight, chromaLight)

	fmt.Fprintf(buf, "    /* Theme: dark */\n")
	fmt.Fprintf(buf, "    [data-theme=\"dark\"] { color-scheme: dark; }\n")
	writeTheme(`[data-theme="dark"]`, themeDark, chromaDark)

	// Auto theme follows the system preference.
	fmt.Fprintf(buf, "    /* Theme: auto (system preference) */\n")
	fmt.Fprintf(buf, "    [data-theme=\"auto\"] { color-scheme: light dark; }\n")
	writeTheme(`[data-theme="auto"]`, themeLight, chromaLight)

	fmt.Fprintf(buf, "    @media (prefers-color-scheme: dark) {\n")
	fmt.Fprintf(buf, "      [data-theme=\"auto\"] { color-scheme: dark; }\n")
	writeTheme(`[data-theme="auto"]`, themeDark, chromaDark)
	fmt.Fprintf(buf, "    }\n")
}

func writeLayoutCSS(buf *bytes.Buffer) {
	buf.WriteString(layoutCSS)
}

const layoutCSS = `
    /* folio layout */
    * { box-sizing: border-box; }
    body {
      margin: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Helvetica, Arial, sans-serif;
      background: var(--folio-bg); color: var(--folio-fg);
      font-size: 16px; line-height: 1.5;
    }
    a { color: var(--folio-accent); }

    #folio-header {
      max-width: 840px; margin: 0 auto; padding: 48px 16px 24px;
      border-bottom: 1px solid var(--folio-border);
      position: relative;
    }
    #folio-header h1 { margin: 0 0 4px; font-size: 32px; }
    #folio-photo {
      float: right; width: 96px; height: 96px; margin-left: 16px;
      border-radius: 50%; object-fit: cover; border: 1px solid var(--folio-border);
    }
    .folio-headline { margin: 0 0 12px; color: var(--folio-muted); font-size: 18px; }
    .folio-contact { display: flex; flex-wrap: wrap; gap: 12px; font-size: 14px; color: var(--folio-muted); }
    .folio-contact a { text-decoration: none; }
    .folio-contact a:hover { text-decoration: underline; }
    .folio-resume-link { font-weight: 600; }
    .folio-controls { position: absolute; top: 16px; right: 16px; }
    .folio-controls button {
      background: none; border: 1px solid var(--folio-border); border-radius: 4px;
      cursor: pointer; padding: 2px 6px; font-size: 14px; color: inherit;
    }
    .folio-controls button:hover { background: var(--folio-surface); }

    main { max-width: 840px; margin: 0 auto; padding: 16px 16px 48px; }
    .folio-section { margin: 32px 0; }
    .folio-section h2 {
      font-size: 22px; margin: 0 0 16px; padding-bottom: 6px;
      border-bottom: 1px solid var(--folio-border);
    }
    .folio-entry { margin: 0 0 20px; }
    .folio-entry h3 { margin: 0 0 2px; font-size: 17px; }
    .folio-entry h3 a { text-decoration: none; }
    .folio-entry h3 a:hover { text-decoration: underline; }
    .folio-entry-meta { margin: 0 0 6px; font-size: 14px; color: var(--folio-muted); }
    .folio-description { font-size: 15px; }
    .folio-description p { margin: 6px 0; }
    .folio-description blockquote {
      margin: 8px 0; padding: 0 12px;
      border-left: 3px solid var(--folio-border); color: var(--folio-muted);
    }
    .folio-description pre, .folio-description code {
      background: var(--folio-surface); border-radius: 4px;
      font-family: ui-monospace, SFMono-Regular, Menlo, monospace; font-size: 13px;
    }
    .folio-description pre { padding: 12px; overflow-x: auto; }
    .folio-description code { padding: 1px 4px; }
    .folio-description pre code { padding: 0; }

    .folio-tags { margin: 0 0 6px; }
    .folio-tag {
      display: inline-block; padding: 1px 8px; font-size: 12px;
      background: var(--folio-surface); border: 1px solid var(--folio-border);
      border-radius: 10px; color: var(--folio-muted);
    }
    .folio-skills { list-style: none; padding: 0; margin: 0; display: flex; flex-wrap: wrap; gap: 8px; }
    .folio-skills li {
      padding: 3px 10px; font-size: 14px;
      background: var(--folio-surface); border: 1px solid var(--folio-border); border-radius: 6px;
    }
    .folio-skill-category { color: var(--folio-muted); font-size: 12px; }

    .folio-summary p { margin: 8px 0; }
    .folio-code-block {
      position: relative; margin: 16px 0;
      border: 1px solid var(--folio-border); border-radius: 6px; overflow: hidden;
    }
    .folio-code-block pre { margin: 0; padding: 16px; overflow-x: auto; }
    .folio-code-language {
      display: block; padding: 4px 12px; font-size: 12px; color: var(--folio-muted);
      background: var(--folio-surface); border-bottom: 1px solid var(--folio-border);
    }

    @media print {
      #folio-theme-toggle { display: none !important; }
      main, #folio-header { max-width: 100%; }
      html, body { color: #000 !important; background: #fff !important; }
      .folio-section { break-inside: avoid; }
      h1, h2, h3 { break-after: avoid; }
    }

    @media (max-width: 600px) {
      #folio-photo { width: 64px; height: 64px; }
      #folio-header { padding-top: 32px; }
    }
`
