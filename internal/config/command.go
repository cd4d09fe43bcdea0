package config

import (
	"fmt"
	"strings"
)

// parseCommand recognizes the exact wrapper form "command(<text>)". The
// matched result is false when s is not command-shaped, letting the
// descriptor parser try the next grammar.
func parseCommand(s string) (Command, bool, error) {
	if !strings.HasPrefix(s, "command(") || !strings.HasSuffix(s, ")") {
		return Command{}, false, nil
	}

	text := s[len("command(") : len(s)-1]
	if len(text) > MaxCommandLen {
		return Command{}, true, fmt.Errorf("%w: max command length (%d)", ErrCapacity, MaxCommandLen)
	}

	return Command{Cmd: decodeEscapes(text)}, true, nil
}
