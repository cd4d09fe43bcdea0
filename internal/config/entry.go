package config

import (
	"fmt"
	"strings"

	"github.com/dshills/keymapd/internal/keycode"
)

// addEntry compiles a binding of the form "[<layer>.]<key> = <descriptor>"
// into the named layer's keymap. The layer defaults to main. If the key
// matches an alias, the descriptor is bound to every keycode carrying
// that alias; otherwise the key resolves through the keycode table.
func (c *Config) addEntry(exp string, line int) error {
	if len(exp) > MaxExpressionLen {
		return fmt.Errorf("%w: expression exceeds %d bytes", ErrCapacity, MaxExpressionLen)
	}

	layerName := "main"
	s := exp

	// Only a '.' before any '(' can separate a layer prefix; a later dot
	// belongs to the descriptor text.
	dot := strings.IndexByte(s, '.')
	paren := strings.IndexByte(s, '(')
	if dot >= 0 && (paren < 0 || dot < paren) {
		layerName = s[:dot]
		s = s[dot+1:]
	}

	key, value, found := strings.Cut(s, "=")
	if !found {
		return fmt.Errorf("invalid binding %q", exp)
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if key == "" {
		return fmt.Errorf("invalid binding %q", exp)
	}

	idx, ok := c.layerIndex(layerName)
	if !ok {
		return fmt.Errorf("%q %w", layerName, ErrUnknownLayer)
	}

	d, err := c.parseDescriptor(value, line)
	if err != nil {
		return err
	}

	return c.setLayerEntry(idx, key, d)
}

// setLayerEntry writes a compiled descriptor into the keymap slot (or
// slots, for aliases) named by key.
func (c *Config) setLayerEntry(layer LayerIndex, key string, d Descriptor) error {
	found := false
	for code := 0; code < keycode.NumCodes; code++ {
		if c.Aliases[code] == key {
			c.Layers[layer].Keymap[code] = d
			found = true
		}
	}
	if found {
		return nil
	}

	code, ok := keycode.Lookup(key)
	if !ok {
		return fmt.Errorf("%q is %w", key, ErrInvalidKey)
	}

	c.Layers[layer].Keymap[code] = d
	return nil
}
