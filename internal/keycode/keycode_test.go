package keycode

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want Code
		ok   bool
	}{
		{"a", 30, true},
		{"capslock", 58, true},
		{"esc", 1, true},
		{"escape", 1, true},
		{"-", 12, true},
		{"minus", 12, true},
		{"leftcontrol", CodeLeftControl, true},
		{"enter", 28, true},
		{"return", 28, true},
		{"notakey", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := Lookup(tt.name)
		if ok != tt.ok {
			t.Errorf("Lookup(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("Lookup(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestLookupShifted(t *testing.T) {
	tests := []struct {
		name string
		want Code
		ok   bool
	}{
		{"A", 30, true},
		{"!", 2, true},
		{"_", 12, true},
		{"?", 53, true},
		{"a", 0, false},
	}

	for _, tt := range tests {
		got, ok := LookupShifted(tt.name)
		if ok != tt.ok {
			t.Errorf("LookupShifted(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("LookupShifted(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestCodeToModifier(t *testing.T) {
	tests := []struct {
		code Code
		want Modifier
		ok   bool
	}{
		{CodeLeftControl, ModControl, true},
		{CodeRightControl, ModControl, true},
		{CodeLeftShift, ModShift, true},
		{CodeLeftMeta, ModMeta, true},
		{CodeRightAlt, ModAltGr, true},
		{CodeLeftAlt, ModAlt, true},
		{30, ModNone, false}, // 'a'
	}

	for _, tt := range tests {
		got, ok := CodeToModifier(tt.code)
		if ok != tt.ok || got != tt.want {
			t.Errorf("CodeToModifier(%d) = (%v, %v), want (%v, %v)", tt.code, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLookupCompose(t *testing.T) {
	idx := LookupCompose('é')
	if idx < 0 {
		t.Fatalf("LookupCompose('é') = %d, want non-negative", idx)
	}
	r, ok := ComposeRune(idx)
	if !ok || r != 'é' {
		t.Errorf("ComposeRune(%d) = (%q, %v), want ('é', true)", idx, r, ok)
	}

	if got := LookupCompose('漢'); got != -1 {
		t.Errorf("LookupCompose('漢') = %d, want -1", got)
	}
	if _, ok := ComposeRune(-1); ok {
		t.Error("ComposeRune(-1) ok = true, want false")
	}
	if _, ok := ComposeRune(ComposeTableSize()); ok {
		t.Error("ComposeRune(ComposeTableSize()) ok = true, want false")
	}
}
