package keycode

import (
	"errors"
	"testing"
)

func TestParseSequence(t *testing.T) {
	tests := []struct {
		spec     string
		wantCode Code
		wantMods Modifier
		wantErr  bool
	}{
		{"a", 30, ModNone, false},
		{"C-a", 30, ModControl, false},
		{"M-S-tab", 15, ModMeta | ModShift, false},
		{"C-M-S-G-A-space", 57, ModControl | ModMeta | ModShift | ModAltGr | ModAlt, false},
		{"A", 30, ModShift, false}, // shifted name implies shift
		{"C-A", 30, ModControl | ModShift, false},
		{"-", 12, ModNone, false}, // minus key by symbol
		{"S--", 12, ModShift, false},
		{"capslock", 58, ModNone, false},
		{"", 0, 0, true},
		{"X-a", 0, 0, true},
		{"C-", 0, 0, true},
		{"C-notakey", 0, 0, true},
	}

	for _, tt := range tests {
		code, mods, err := ParseSequence(tt.spec)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSequence(%q) err = %v, wantErr %v", tt.spec, err, tt.wantErr)
			continue
		}
		if err != nil {
			continue
		}
		if code != tt.wantCode || mods != tt.wantMods {
			t.Errorf("ParseSequence(%q) = (%d, %v), want (%d, %v)",
				tt.spec, code, mods, tt.wantCode, tt.wantMods)
		}
	}
}

func TestParseSequencePrefixOrderIndependent(t *testing.T) {
	specs := []string{"C-M-S-a", "S-C-M-a", "M-S-C-a"}

	first, firstMods, err := ParseSequence(specs[0])
	if err != nil {
		t.Fatalf("ParseSequence(%q) error: %v", specs[0], err)
	}

	for _, spec := range specs[1:] {
		code, mods, err := ParseSequence(spec)
		if err != nil {
			t.Fatalf("ParseSequence(%q) error: %v", spec, err)
		}
		if code != first || mods != firstMods {
			t.Errorf("ParseSequence(%q) = (%d, %v), want (%d, %v)", spec, code, mods, first, firstMods)
		}
	}
}

func TestParseSequenceErrorIs(t *testing.T) {
	_, _, err := ParseSequence("")
	if !errors.Is(err, ErrEmptySequence) {
		t.Errorf("ParseSequence(\"\") err = %v, want ErrEmptySequence", err)
	}

	_, _, err = ParseSequence("bogus")
	if !errors.Is(err, ErrInvalidSequence) {
		t.Errorf("ParseSequence(\"bogus\") err = %v, want ErrInvalidSequence", err)
	}
}

func TestFormatSequence(t *testing.T) {
	tests := []struct {
		code Code
		mods Modifier
		want string
	}{
		{30, ModNone, "a"},
		{30, ModControl, "C-a"},
		{15, ModMeta | ModShift, "M-S-tab"},
	}

	for _, tt := range tests {
		if got := FormatSequence(tt.code, tt.mods); got != tt.want {
			t.Errorf("FormatSequence(%d, %v) = %q, want %q", tt.code, tt.mods, got, tt.want)
		}
	}
}

func TestParseSequenceFormatRoundTrip(t *testing.T) {
	for _, spec := range []string{"a", "C-a", "M-S-tab", "G-e"} {
		code, mods, err := ParseSequence(spec)
		if err != nil {
			t.Fatalf("ParseSequence(%q) error: %v", spec, err)
		}
		code2, mods2, err := ParseSequence(FormatSequence(code, mods))
		if err != nil {
			t.Fatalf("re-parse of %q failed: %v", spec, err)
		}
		if code2 != code || mods2 != mods {
			t.Errorf("round trip of %q mismatch: (%d, %v) != (%d, %v)", spec, code2, mods2, code, mods)
		}
	}
}
