package config

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/dshills/keymapd/internal/keycode"
)

// MacroEntryKind tags one step of a macro.
type MacroEntryKind uint8

const (
	// MacroKey emits a full press/release of a key with modifiers.
	MacroKey MacroEntryKind = iota

	// MacroHold presses a key without releasing it, building a chord.
	MacroHold

	// MacroRelease releases all held keys in reverse hold order.
	MacroRelease

	// MacroTimeout pauses playback for Timeout milliseconds.
	MacroTimeout

	// MacroUnicode emits a non-ASCII codepoint through the compose table.
	MacroUnicode
)

// MacroEntry is one replayable macro step. Which fields are meaningful
// depends on Kind.
type MacroEntry struct {
	Kind MacroEntryKind

	Code keycode.Code
	Mods keycode.Modifier

	// Timeout is the pause in milliseconds for MacroTimeout entries.
	Timeout int

	// Compose is the compose table index for MacroUnicode entries.
	Compose int
}

// Macro is an ordered sequence of steps replayed verbatim by the runtime
// engine.
type Macro []MacroEntry

// parseMacroExpression compiles a macro expression. The expression is
// either the wrapper form "macro(<body>)", a bare key sequence, or a
// single printable character. The matched result is false when the
// string is not macro-shaped at all, letting the descriptor parser try
// the next grammar.
func parseMacroExpression(s string) (Macro, bool, error) {
	if len(s) > MaxMacroLen {
		return nil, true, fmt.Errorf("%w: macro exceeds %d bytes", ErrCapacity, MaxMacroLen)
	}

	body := s
	if strings.HasPrefix(s, "macro(") && strings.HasSuffix(s, ")") {
		body = s[len("macro(") : len(s)-1]
	} else if _, _, err := keycode.ParseSequence(s); err != nil {
		if uniseg.GraphemeClusterCount(s) != 1 {
			return nil, false, nil
		}
	}

	body = decodeEscapes(body)

	var macro Macro
	add := func(ent MacroEntry) error {
		if len(macro) >= MaxMacroEntries {
			return fmt.Errorf("%w: max macro entries (%d)", ErrCapacity, MaxMacroEntries)
		}
		macro = append(macro, ent)
		return nil
	}

	for _, tok := range strings.Fields(body) {
		var err error

		switch {
		case isKeySequence(tok):
			code, mods, _ := keycode.ParseSequence(tok)
			err = add(MacroEntry{Kind: MacroKey, Code: code, Mods: mods})

		case strings.Contains(tok, "+"):
			err = parseChord(tok, add)

		case isTimeoutToken(tok):
			ms, _ := strconv.Atoi(strings.TrimSuffix(tok, "ms"))
			err = add(MacroEntry{Kind: MacroTimeout, Timeout: ms})

		default:
			err = parseTextRun(tok, add)
		}

		if err != nil {
			return nil, true, err
		}
	}

	return macro, true, nil
}

// parseChord compiles a '+'-joined chord token: each piece is either a
// timeout or a key held down, and the whole chord ends with a release of
// every held key.
func parseChord(tok string, add func(MacroEntry) error) error {
	for _, piece := range strings.Split(tok, "+") {
		if piece == "" {
			continue
		}

		if isTimeoutToken(piece) {
			ms, _ := strconv.Atoi(strings.TrimSuffix(piece, "ms"))
			if err := add(MacroEntry{Kind: MacroTimeout, Timeout: ms}); err != nil {
				return err
			}
			continue
		}

		code, _, err := keycode.ParseSequence(piece)
		if err != nil {
			return fmt.Errorf("%w: %q is not a valid key", ErrInvalidMacro, piece)
		}
		if err := add(MacroEntry{Kind: MacroHold, Code: code}); err != nil {
			return err
		}
	}

	return add(MacroEntry{Kind: MacroRelease})
}

// parseTextRun compiles a literal text token codepoint by codepoint.
// ASCII characters resolve through the keycode table by direct or shifted
// single-character name; other codepoints resolve through the compose
// table. Unresolvable codepoints are skipped.
func parseTextRun(tok string, add func(MacroEntry) error) error {
	for _, r := range tok {
		if r < utf8.RuneSelf {
			name := string(r)
			if code, ok := keycode.Lookup(name); ok {
				if err := add(MacroEntry{Kind: MacroKey, Code: code}); err != nil {
					return err
				}
			} else if code, ok := keycode.LookupShifted(name); ok {
				if err := add(MacroEntry{Kind: MacroKey, Code: code, Mods: keycode.ModShift}); err != nil {
					return err
				}
			}
			continue
		}

		if idx := keycode.LookupCompose(r); idx >= 0 {
			if err := add(MacroEntry{Kind: MacroUnicode, Compose: idx}); err != nil {
				return err
			}
		}
	}

	return nil
}

func isKeySequence(s string) bool {
	_, _, err := keycode.ParseSequence(s)
	return err == nil
}

// isTimeoutToken reports whether tok is a numeric literal suffixed "ms".
func isTimeoutToken(tok string) bool {
	num, ok := strings.CutSuffix(tok, "ms")
	if !ok || num == "" {
		return false
	}
	for i := 0; i < len(num); i++ {
		if num[i] < '0' || num[i] > '9' {
			return false
		}
	}
	return true
}
