// Package logging provides leveled diagnostic output for keymapd
// commands.
//
// Output is formatted with semantic prefixes and colors. Verbosity is
// controlled by two flags:
//
//   - --verbose: shows info messages
//   - --debug: shows all messages including debug details
//
// Warnings and errors are always shown. Commands create a Logger in
// their PersistentPreRun and pass it to internal functions.
package logging
