// Package ini implements the line-oriented section parser used for
// keymapd configuration files.
//
// The format is INI-like: section headers in square brackets followed by
// entries of the form "key = value" or a bare key. Line numbers are
// preserved for diagnostics. Lines whose first non-blank character is '#'
// are comments.
package ini

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors.
var (
	ErrNoSection = errors.New("entry outside of any section")
	ErrBadHeader = errors.New("malformed section header")
)

// Entry is a single key/value line within a section. Value-less lines
// (such as device ids) have HasValue false.
type Entry struct {
	Key      string
	Value    string
	HasValue bool

	// Line is the 1-based line number in the assembled source text.
	Line int
}

// Section is an ordered list of entries under one header.
type Section struct {
	Name    string
	Entries []Entry

	// Line is the line number of the section header.
	Line int
}

// Parse splits raw configuration text into ordered sections. Entries that
// precede any section header are an error; the runtime format always
// opens with a header.
func Parse(content string) ([]Section, error) {
	var sections []Section

	for i, raw := range strings.Split(content, "\n") {
		lnum := i + 1
		line := strings.TrimSpace(raw)

		if line == "" || line[0] == '#' {
			continue
		}

		if line[0] == '[' {
			if line[len(line)-1] != ']' {
				return nil, fmt.Errorf("line %d: %w: %s", lnum, ErrBadHeader, line)
			}
			name := strings.TrimSpace(line[1 : len(line)-1])
			if name == "" {
				return nil, fmt.Errorf("line %d: %w: empty name", lnum, ErrBadHeader)
			}
			sections = append(sections, Section{Name: name, Line: lnum})
			continue
		}

		if len(sections) == 0 {
			return nil, fmt.Errorf("line %d: %w", lnum, ErrNoSection)
		}

		ent := Entry{Line: lnum}
		if idx := strings.Index(line, "="); idx >= 0 {
			ent.Key = strings.TrimSpace(line[:idx])
			ent.Value = strings.TrimSpace(line[idx+1:])
			ent.HasValue = true
		} else {
			ent.Key = line
		}

		cur := &sections[len(sections)-1]
		cur.Entries = append(cur.Entries, ent)
	}

	return sections, nil
}
