package keycode

import (
	"fmt"
	"strings"
)

// Modifier is a bitmask of physical modifiers.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModControl indicates either control key.
	ModControl Modifier = 1 << iota

	// ModShift indicates either shift key.
	ModShift

	// ModAlt indicates the left alt key.
	ModAlt

	// ModAltGr indicates the right alt (AltGr) key.
	ModAltGr

	// ModMeta indicates either meta (super) key.
	ModMeta
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String returns the modifier prefix form used in key sequences, such as
// "C-M-". Empty for ModNone.
func (m Modifier) String() string {
	var b strings.Builder
	for _, ent := range ModifierTable {
		if m.Has(ent.Mod) {
			b.WriteByte(ent.Letter)
			b.WriteByte('-')
		}
	}
	return b.String()
}

// ModifierEntry associates a modifier bit with its canonical layer name,
// its single-letter spelling, and the physical keycodes that produce it.
type ModifierEntry struct {
	Name   string
	Letter byte
	Mod    Modifier

	// Codes are the left/right keycodes for the modifier. Modifiers with a
	// single physical key repeat the same code.
	Codes [2]Code
}

// ModifierTable lists the physical modifiers in canonical order.
var ModifierTable = [...]ModifierEntry{
	{"control", 'C', ModControl, [2]Code{CodeLeftControl, CodeRightControl}},
	{"meta", 'M', ModMeta, [2]Code{CodeLeftMeta, CodeRightMeta}},
	{"shift", 'S', ModShift, [2]Code{CodeLeftShift, CodeRightShift}},
	{"altgr", 'G', ModAltGr, [2]Code{CodeRightAlt, CodeRightAlt}},
	{"alt", 'A', ModAlt, [2]Code{CodeLeftAlt, CodeLeftAlt}},
}

// ModifierFromLetter returns the modifier for a single-letter spelling.
func ModifierFromLetter(c byte) (Modifier, bool) {
	for _, ent := range ModifierTable {
		if ent.Letter == c {
			return ent.Mod, true
		}
	}
	return ModNone, false
}

// CodeToModifier reports whether code is a physical modifier key and, if
// so, which modifier it produces.
func CodeToModifier(code Code) (Modifier, bool) {
	for _, ent := range ModifierTable {
		if ent.Codes[0] == code || ent.Codes[1] == code {
			return ent.Mod, true
		}
	}
	return ModNone, false
}

// ParseModSet parses a layer type tag of modifier letters joined by '+',
// such as "C" or "C+S", into a combined bitmask.
func ParseModSet(s string) (Modifier, error) {
	var mods Modifier

	for _, part := range strings.Split(s, "+") {
		if len(part) != 1 {
			return ModNone, fmt.Errorf("invalid modifier set %q", s)
		}
		m, ok := ModifierFromLetter(part[0])
		if !ok {
			return ModNone, fmt.Errorf("invalid modifier %q", part)
		}
		mods = mods.With(m)
	}

	return mods, nil
}
