package config

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/dshills/keymapd/internal/keycode"
)

// actionNames maps action opcodes back to their call names and argument
// signatures, for serialization.
var actionNames = func() map[Op]struct {
	name string
	args []argType
} {
	m := make(map[Op]struct {
		name string
		args []argType
	}, len(actions))
	for name, a := range actions {
		m[a.op] = struct {
			name string
			args []argType
		}{name, a.args}
	}
	return m
}()

// DescriptorString renders a compiled descriptor back into expression
// text that recompiles to an equivalent descriptor.
func (c *Config) DescriptorString(d Descriptor) string {
	switch d.Op {
	case OpNone:
		return ""
	case OpKeySequence:
		return keycode.FormatSequence(d.Code, d.Mods)
	case OpMacro:
		return "macro(" + c.MacroString(c.Macros[d.Macro]) + ")"
	case OpCommand:
		return "command(" + encodeEscapes(c.Commands[d.Command].Cmd) + ")"
	}

	a, ok := actionNames[d.Op]
	if !ok {
		return ""
	}

	parts := make([]string, 0, len(a.args))
	var descs, timeouts int
	for _, typ := range a.args {
		switch typ {
		case argLayer, argLayout:
			parts = append(parts, c.Layers[d.Layer].Name)
		case argDescriptor:
			idx := d.Desc
			if descs > 0 {
				idx = d.Desc2
			}
			descs++
			parts = append(parts, c.DescriptorString(c.Descriptors[idx]))
		case argTimeout:
			ms := d.Timeout
			if timeouts > 0 {
				ms = d.Timeout2
			}
			timeouts++
			parts = append(parts, strconv.Itoa(ms))
		case argMacro:
			parts = append(parts, "macro("+c.MacroString(c.Macros[d.Macro])+")")
		}
	}

	return a.name + "(" + strings.Join(parts, ", ") + ")"
}

// MacroString renders a compiled macro back into macro body text.
func (c *Config) MacroString(m Macro) string {
	var toks []string

	for i := 0; i < len(m); {
		ent := m[i]

		switch ent.Kind {
		case MacroKey:
			toks = append(toks, keycode.FormatSequence(ent.Code, ent.Mods))
			i++

		case MacroHold, MacroTimeout:
			if end, ok := chordEnd(m, i); ok {
				toks = append(toks, chordToken(m[i:end]))
				i = end + 1
				continue
			}
			if ent.Kind == MacroTimeout {
				toks = append(toks, fmt.Sprintf("%dms", ent.Timeout))
			} else {
				toks = append(toks, keycode.Name(ent.Code))
			}
			i++

		case MacroRelease:
			// A release with no preceding holds; "++" reparses to one.
			toks = append(toks, "++")
			i++

		case MacroUnicode:
			if r, ok := keycode.ComposeRune(ent.Compose); ok {
				toks = append(toks, string(r))
			}
			i++

		default:
			i++
		}
	}

	return strings.Join(toks, " ")
}

// chordEnd finds the MacroRelease closing a run of hold/timeout entries
// starting at i. Timeout-only runs still count as chords: their release
// entry must survive a reparse.
func chordEnd(m Macro, i int) (int, bool) {
	for j := i; j < len(m); j++ {
		switch m[j].Kind {
		case MacroRelease:
			return j, true
		case MacroHold, MacroTimeout:
		default:
			return 0, false
		}
	}
	return 0, false
}

// chordToken joins hold/timeout entries back into a '+' chord token.
func chordToken(entries []MacroEntry) string {
	pieces := make([]string, 0, len(entries)+1)
	for _, ent := range entries {
		if ent.Kind == MacroTimeout {
			pieces = append(pieces, fmt.Sprintf("%dms", ent.Timeout))
		} else {
			pieces = append(pieces, keycode.Name(ent.Code))
		}
	}
	if len(pieces) < 2 {
		// A trailing empty piece keeps the token chord-shaped.
		pieces = append(pieces, "")
	}
	return strings.Join(pieces, "+")
}

// Snapshot is the serializable view of a compiled Config.
type Snapshot struct {
	ID       string   `json:"id" yaml:"id"`
	Path     string   `json:"path" yaml:"path"`
	Wildcard bool     `json:"wildcard,omitempty" yaml:"wildcard,omitempty"`
	IDs      []string `json:"ids,omitempty" yaml:"ids,omitempty"`
	Excluded []string `json:"excluded_ids,omitempty" yaml:"excluded_ids,omitempty"`

	Global GlobalSnapshot  `json:"global" yaml:"global"`
	Layers []LayerSnapshot `json:"layers" yaml:"layers"`
}

// GlobalSnapshot holds the global settings of a snapshot.
type GlobalSnapshot struct {
	MacroTimeout         int    `json:"macro_timeout" yaml:"macro_timeout"`
	MacroSequenceTimeout int    `json:"macro_sequence_timeout" yaml:"macro_sequence_timeout"`
	MacroRepeatTimeout   int    `json:"macro_repeat_timeout" yaml:"macro_repeat_timeout"`
	LayerIndicator       int    `json:"layer_indicator" yaml:"layer_indicator"`
	DefaultLayout        string `json:"default_layout,omitempty" yaml:"default_layout,omitempty"`
}

// LayerSnapshot is the serializable view of one layer.
type LayerSnapshot struct {
	Name         string            `json:"name" yaml:"name"`
	Kind         string            `json:"kind" yaml:"kind"`
	Mods         string            `json:"mods,omitempty" yaml:"mods,omitempty"`
	Constituents []string          `json:"constituents,omitempty" yaml:"constituents,omitempty"`
	Bindings     []BindingSnapshot `json:"bindings,omitempty" yaml:"bindings,omitempty"`
}

// BindingSnapshot is one non-empty keymap slot rendered as text.
type BindingSnapshot struct {
	Key    string `json:"key" yaml:"key"`
	Action string `json:"action" yaml:"action"`
}

// Snapshot builds the serializable view of the config.
func (c *Config) Snapshot() *Snapshot {
	snap := &Snapshot{
		ID:       c.ID.String(),
		Path:     c.Path,
		Wildcard: c.Wildcard,
		Global: GlobalSnapshot{
			MacroTimeout:         c.MacroTimeout,
			MacroSequenceTimeout: c.MacroSequenceTimeout,
			MacroRepeatTimeout:   c.MacroRepeatTimeout,
			LayerIndicator:       c.LayerIndicator,
			DefaultLayout:        c.DefaultLayout,
		},
	}

	for _, id := range c.IDs {
		snap.IDs = append(snap.IDs, id.String())
	}
	for _, id := range c.ExcludedIDs {
		snap.Excluded = append(snap.Excluded, id.String())
	}

	for i := range c.Layers {
		layer := &c.Layers[i]

		ls := LayerSnapshot{
			Name: layer.Name,
			Kind: layer.Kind.String(),
		}
		if !layer.Mods.IsEmpty() {
			ls.Mods = strings.TrimSuffix(layer.Mods.String(), "-")
		}
		for _, idx := range layer.Constituents {
			ls.Constituents = append(ls.Constituents, c.Layers[idx].Name)
		}

		for code := 0; code < keycode.NumCodes; code++ {
			d := layer.Keymap[code]
			if d.IsEmpty() {
				continue
			}
			key := keycode.Name(keycode.Code(code))
			if key == "" {
				key = fmt.Sprintf("code%d", code)
			}
			ls.Bindings = append(ls.Bindings, BindingSnapshot{Key: key, Action: c.DescriptorString(d)})
		}

		snap.Layers = append(snap.Layers, ls)
	}

	return snap
}

// EncodeJSON writes the snapshot as indented JSON.
func (c *Config) EncodeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c.Snapshot())
}

// EncodeYAML writes the snapshot as YAML.
func (c *Config) EncodeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(c.Snapshot())
}
