package config

import (
	"fmt"
	"strings"

	"github.com/dshills/keymapd/internal/keycode"
)

// LayerKind distinguishes how a layer is activated.
type LayerKind uint8

const (
	// LayerNormal is a modifier-activated overlay (possibly with an empty
	// modifier mask, activated only by explicit actions).
	LayerNormal LayerKind = iota

	// LayerComposite is active only while all of its constituent layers
	// are active.
	LayerComposite

	// LayerLayout is an alternate physical keyboard layout.
	LayerLayout
)

// String returns the kind name.
func (k LayerKind) String() string {
	switch k {
	case LayerNormal:
		return "normal"
	case LayerComposite:
		return "composite"
	case LayerLayout:
		return "layout"
	default:
		return "unknown"
	}
}

// Layer is a named keymap. Layers are created during the first
// compilation pass and never mutated afterward except to fill keymap
// slots during the second pass.
type Layer struct {
	// Name is unique across the config.
	Name string

	Kind LayerKind

	// Mods is the modifier mask that activates a normal layer.
	Mods keycode.Modifier

	// Constituents lists the member layers of a composite layer, in
	// declaration order.
	Constituents []LayerIndex

	// Keymap holds the descriptor bound to each keycode. Empty slots
	// have Op OpNone.
	Keymap [keycode.NumCodes]Descriptor
}

// Binding returns the descriptor bound to a keycode.
func (l *Layer) Binding(code keycode.Code) Descriptor {
	return l.Keymap[code]
}

// addLayer registers a layer described by "<name>[:<type>]". Registering
// an existing name is a no-op. Composite names ("nav+sym") require every
// constituent to be declared already.
func (c *Config) addLayer(s string, line int) error {
	name, _, _ := strings.Cut(s, ":")

	if len(name) > MaxLayerNameLen {
		return fmt.Errorf("%w: layer name %q exceeds %d bytes", ErrCapacity, name, MaxLayerNameLen)
	}

	if _, exists := c.layerIndex(name); exists {
		return nil
	}

	if len(c.Layers) >= MaxLayers {
		return fmt.Errorf("%w: max layers (%d)", ErrCapacity, MaxLayers)
	}

	layer, err := c.newLayer(s, line)
	if err != nil {
		return err
	}

	c.Layers = append(c.Layers, layer)
	return nil
}

// newLayer builds a layer record from its section header form.
func (c *Config) newLayer(s string, line int) (Layer, error) {
	name, typ, hasType := strings.Cut(s, ":")

	layer := Layer{Name: name}

	switch {
	case strings.Contains(name, "+"):
		layer.Kind = LayerComposite

		if hasType {
			return Layer{}, fmt.Errorf("composite layers cannot have a type")
		}

		for _, constituent := range strings.Split(name, "+") {
			idx, ok := c.layerIndex(constituent)
			if !ok {
				return Layer{}, fmt.Errorf("%q %w", constituent, ErrUnknownLayer)
			}
			if len(layer.Constituents) >= MaxComposite {
				return Layer{}, fmt.Errorf("%w: max composite layers (%d)", ErrCapacity, MaxComposite)
			}
			layer.Constituents = append(layer.Constituents, idx)
		}

	case hasType && typ == "layout":
		layer.Kind = LayerLayout

	case hasType:
		mods, err := keycode.ParseModSet(typ)
		if err != nil {
			c.warnf(line, "%q is not a valid layer type, ignoring", typ)
			break
		}
		layer.Mods = mods

	}

	return layer, nil
}
