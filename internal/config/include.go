package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// systemIncludeDir is the fallback location for shared include files.
// Overridable for tests.
var systemIncludeDir = "/usr/share/keyd"

const includePrefix = "include "

// resolveIncludes reads the root file and returns its text with every
// include directive inlined.
func (c *Config) resolveIncludes(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", &ParseError{Path: path, Message: "failed to open config", Err: err}
	}
	if len(raw) > MaxFileSize {
		return "", &ParseError{Path: path, Message: fmt.Sprintf("file exceeds %d bytes", MaxFileSize), Err: ErrFileTooLarge}
	}

	return c.inlineIncludes(string(raw), path)
}

// inlineIncludes replaces every line beginning with "include " by the
// contents of the referenced file. Included files are not rescanned for
// further includes, which also rules out include cycles. Unresolvable
// includes are a warning and the directive is skipped; size and line
// limits are fatal.
func (c *Config) inlineIncludes(content, path string) (string, error) {
	var b strings.Builder
	size := 0

	for i, line := range strings.Split(content, "\n") {
		lnum := i + 1

		if len(line) >= MaxLineLen {
			return "", &ParseError{Path: path, Line: lnum, Message: fmt.Sprintf("line exceeds %d bytes", MaxLineLen), Err: ErrLineTooLong}
		}

		if !strings.HasPrefix(line, includePrefix) {
			size += len(line) + 1
			if size > MaxFileSize {
				return "", &ParseError{Path: path, Line: lnum, Message: fmt.Sprintf("assembled size exceeds %d bytes", MaxFileSize), Err: ErrFileTooLarge}
			}
			b.WriteString(line)
			b.WriteByte('\n')
			continue
		}

		target := strings.TrimSpace(line[len(includePrefix):])

		resolved, ok := resolveIncludePath(path, target)
		if !ok {
			c.warnf(lnum, "failed to resolve include path: %s", target)
			continue
		}

		included, err := os.ReadFile(resolved)
		if err != nil {
			c.warnf(lnum, "failed to include %s: %v", target, err)
			continue
		}

		size += len(included)
		if size > MaxFileSize {
			return "", &ParseError{Path: path, Line: lnum, Message: fmt.Sprintf("assembled size exceeds %d bytes", MaxFileSize), Err: ErrFileTooLarge}
		}
		b.Write(included)
		if len(included) > 0 && included[len(included)-1] != '\n' {
			b.WriteByte('\n')
		}
	}

	return b.String(), nil
}

// resolveIncludePath probes the include search path for a directive
// target. Targets containing any '.' are rejected outright, which blocks
// extension and path-segment tricks including "..".
func resolveIncludePath(rootPath, target string) (string, bool) {
	if target == "" || strings.Contains(target, ".") {
		return "", false
	}

	candidate := filepath.Join(filepath.Dir(rootPath), target)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, true
	}

	candidate = filepath.Join(systemIncludeDir, target)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, true
	}

	return "", false
}
