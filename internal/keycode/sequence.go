package keycode

import (
	"errors"
	"fmt"
)

// Sequence parse errors.
var (
	ErrEmptySequence   = errors.New("empty key sequence")
	ErrInvalidSequence = errors.New("invalid key sequence")
)

// ParseSequence parses a key sequence of the form [<mod>-...]<key>, where
// each <mod> is a single modifier letter (C, M, S, G, A) and <key> is a
// key name, alternate name, or shifted name. Matching a shifted name adds
// ModShift to the result.
//
// The resulting mask is the OR of all prefix modifiers regardless of
// their order.
func ParseSequence(s string) (Code, Modifier, error) {
	if s == "" {
		return 0, ModNone, ErrEmptySequence
	}

	var mods Modifier
	for len(s) > 1 && s[1] == '-' {
		m, ok := ModifierFromLetter(s[0])
		if !ok {
			return 0, ModNone, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSequence, string(s[0]))
		}
		mods = mods.With(m)
		s = s[2:]
	}

	if s == "" {
		return 0, ModNone, ErrInvalidSequence
	}

	if code, ok := Lookup(s); ok {
		return code, mods, nil
	}
	if code, ok := LookupShifted(s); ok {
		return code, mods.With(ModShift), nil
	}

	return 0, ModNone, fmt.Errorf("%w: unknown key %q", ErrInvalidSequence, s)
}

// FormatSequence renders a code and modifier mask back into the canonical
// sequence form accepted by ParseSequence.
func FormatSequence(code Code, mods Modifier) string {
	name := Name(code)
	if name == "" {
		name = fmt.Sprintf("code%d", code)
	}
	return mods.String() + name
}
