package sanitize

import (
	"strings"
	"testing"
)

func patternSanitize(t *testing.T, input string) string {
	t.Helper()
	out, err := NewPatternStrategy(DefaultPolicy()).Sanitize(input)
	if err != nil {
		t.Fatalf("Sanitize(%q) returned error: %v", input, err)
	}
	return out
}

func TestPatternStrategy_StripScript(t *testing.T) {
	input := `<p>Hello</p><script>alert('xss')</script><p>World</p>`
	got := patternSanitize(t, input)
	if strings.Contains(got, "<script") || strings.Contains(got, "alert") {
		t.Errorf("script not stripped: %s", got)
	}
	if !strings.Contains(got, "<p>Hello</p>") {
		t.Error("safe content was removed")
	}
}

func TestPatternStrategy_StripDangerousTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		gone  string
	}{
		{"iframe", `<p>Before</p><iframe src="evil.com"></iframe><p>After</p>`, "<iframe"},
		{"object", `<object data="evil.swf"></object>`, "<object"},
		{"embed", `<embed src="evil.swf">`, "<embed"},
		{"applet", `<applet code="Evil.class"></applet>`, "<applet"},
		{"form", `<form action="evil"><input type="text"></form>`, "<form"},
		{"button", `<button onclick="evil()">go</button>`, "<button"},
		{"uppercase", `<IFRAME SRC="evil"></IFRAME>`, "<iframe"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := strings.ToLower(patternSanitize(t, tc.input))
			if strings.Contains(got, tc.gone) {
				t.Errorf("dangerous tag not stripped: %s", got)
			}
		})
	}
}

func TestPatternStrategy_StripEventHandlers(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"onclick", `<div onclick="alert('xss')">Click</div>`},
		{"onerror", `<img onerror="alert('xss')" src="x">`},
		{"onmouseover", `<a onmouseover="evil()">link</a>`},
		{"mixed case", `<div ONCLICK="evil()">test</div>`},
		{"single quotes", `<div onclick='evil()'>test</div>`},
		{"no quotes", `<div onclick=evil()>test</div>`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := patternSanitize(t, tc.input)
			if eventHandlerRe.MatchString(got) {
				t.Errorf("event handler not stripped: %s", got)
			}
		})
	}
}

func TestPatternStrategy_StripProtocolLiterals(t *testing.T) {
	got := patternSanitize(t, `<a href="javascript:alert(1)">x</a> vbscript:MsgBox(1)`)
	lower := strings.ToLower(got)
	if strings.Contains(lower, "javascript:") || strings.Contains(lower, "vbscript:") {
		t.Errorf("protocol literal not stripped: %s", got)
	}
}

// Textual mode is a deny-list pass only: tags outside the dangerous set
// survive untouched even though structured mode would unwrap them. That
// asymmetry is intentional; this strategy is a degraded fallback.
func TestPatternStrategy_KeepsUnknownTags(t *testing.T) {
	input := `<marquee>hi</marquee><p style="position:fixed">x</p>`
	got := patternSanitize(t, input)
	if got != input {
		t.Errorf("deny-list pass altered non-dangerous markup: %s", got)
	}
}

func TestPatternStrategy_Idempotent(t *testing.T) {
	inputs := []string{
		`<p>Hello</p><script>alert(1)</script>`,
		`<div onclick="evil()">x</div>`,
		`<iframe src="x">trapped</iframe>`,
		"plain text",
	}
	for _, input := range inputs {
		once := patternSanitize(t, input)
		twice := patternSanitize(t, once)
		if once != twice {
			t.Errorf("not idempotent for %q: once=%q twice=%q", input, once, twice)
		}
	}
}
