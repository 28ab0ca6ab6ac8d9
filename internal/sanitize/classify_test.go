package sanitize

import "testing"

func TestIsSafeContent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", true},
		{"plain text", "Shipped the billing rewrite.", true},
		{"clean markup", "<p>Hello <strong>world</strong></p>", true},
		{"clean link", `<a href="https://example.com">site</a>`, true},
		{"script", `<script>alert(1)</script>`, false},
		{"script with space", `< script>alert(1)</script>`, false},
		{"script uppercase", `<SCRIPT>alert(1)</SCRIPT>`, false},
		{"javascript protocol", `<a href="javascript:alert(1)">x</a>`, false},
		{"vbscript protocol", `<a href="vbscript:MsgBox(1)">x</a>`, false},
		{"event handler", `<div onclick="evil()">x</div>`, false},
		{"event handler spaced", `<div onclick = "evil()">x</div>`, false},
		{"iframe", `<iframe src="x"></iframe>`, false},
		{"object", `<object data="x"></object>`, false},
		{"form", `<form action="x"></form>`, false},
		{"button", `<button>x</button>`, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsSafeContent(tc.input); got != tc.want {
				t.Errorf("IsSafeContent(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

// The classifier must flag anything Sanitize's deny-list rules would alter.
func TestIsSafeContentConsistentWithSanitize(t *testing.T) {
	s := New()
	dirty := []string{
		`<p onclick="alert(1)">Hello</p>`,
		`<p>Hello <script>alert(2)</script></p>`,
		`<iframe src="x">trapped</iframe>`,
		`<a href="javascript:alert(1)">click</a>`,
	}
	for _, input := range dirty {
		if IsSafeContent(input) {
			t.Errorf("IsSafeContent(%q) = true, but Sanitize alters it to %q",
				input, s.Sanitize(input))
		}
	}

	clean := []string{
		"plain text",
		"<p>Hello <em>there</em></p>",
		`<a href="https://example.com">site</a>`,
	}
	for _, input := range clean {
		if !IsSafeContent(input) {
			t.Errorf("IsSafeContent(%q) = false for clean content", input)
		}
	}
}
