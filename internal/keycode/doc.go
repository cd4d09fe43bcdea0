// Package keycode provides the static keycode vocabulary shared by the
// configuration compiler and the runtime engine.
//
// Keycodes are Linux input event codes in the range 0-255. Each named code
// carries a canonical name, an optional alternate name (usually the
// printable symbol for the key), and an optional shifted name (the symbol
// produced while shift is held).
//
// The package also defines the physical modifier bitmask and the two small
// grammars built on it:
//
//   - key sequences: an optionally modifier-prefixed key name such as
//     "a", "C-a" or "M-S-tab"
//   - modifier sets: one or more modifier letters joined by '+', such as
//     "C" or "C+S", used as layer type tags
//
// All tables are immutable after package initialization and safe for
// concurrent use.
package keycode
