// Package config compiles keymapd configuration text into an immutable,
// pre-resolved Config snapshot executed by the runtime event engine.
//
// A configuration file is INI-like: each section either declares a layer
// (optionally typed, as in "[nav:C]") or is one of the special sections
// "ids", "aliases" and "global". Binding entries map a key name to a
// descriptor expression:
//
//	[main]
//	capslock = overload(nav, esc)
//	z = macro(hello 100ms world)
//	end = command(playerctl play-pause)
//
// Compilation is a single synchronous pass sequence: raw text is read
// with include directives inlined, split into sections, then compiled in
// two passes. All layers are created first so bindings may reference
// layers regardless of file order, then every binding is compiled into
// its layer's keymap. The result is never mutated afterward; a reload
// builds a fresh Config and the caller swaps snapshots atomically.
//
// Descriptors, macros and commands live in capacity-bounded pools on the
// Config and reference each other through typed indices. Every index
// stored anywhere in a compiled Config is valid at the moment Parse
// returns; the runtime engine performs no further validation.
//
// Errors come in two severities. Fatal errors (unreadable files, size
// limits, exhausted pools, section syntax) abort the whole load. Entry
// level problems (a bad binding line, an unknown device id, an alias to
// a nonexistent keycode) are recorded as Warnings on the result and the
// offending item is skipped.
package config
