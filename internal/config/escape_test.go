package config

import "testing"

func TestDecodeEscapes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{`line\nbreak`, "line\nbreak"},
		{`tab\there`, "tab\there"},
		{`\(paren\)`, "(paren)"},
		{`double\\slash`, `double\slash`},
		{`unknown\q`, "unknownq"},
		{`trailing\`, `trailing\`},
	}

	for _, tt := range tests {
		if got := decodeEscapes(tt.input); got != tt.want {
			t.Errorf("decodeEscapes(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestEncodeEscapesRoundTrip(t *testing.T) {
	inputs := []string{
		"plain",
		"with (parens)",
		"line\nbreak",
		`back\slash`,
		"tab\there",
	}

	for _, s := range inputs {
		if got := decodeEscapes(encodeEscapes(s)); got != s {
			t.Errorf("round trip of %q yielded %q", s, got)
		}
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input   string
		matched bool
		want    string
	}{
		{"command(echo hi)", true, "echo hi"},
		{`command(echo \(quoted\))`, true, "echo (quoted)"},
		{"cmd(echo hi)", false, ""},
		{"echo hi", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd, matched, err := parseCommand(tt.input)
			if matched != tt.matched {
				t.Fatalf("matched = %v, want %v", matched, tt.matched)
			}
			if !tt.matched {
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cmd.Cmd != tt.want {
				t.Errorf("cmd = %q, want %q", cmd.Cmd, tt.want)
			}
		})
	}
}
