package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/keymapd/internal/ini"
	"github.com/dshills/keymapd/internal/keycode"
)

// ParseDeviceID parses a "<vendor-hex>:<product-hex>" device id, with an
// optional leading '-' marking an exclusion.
func ParseDeviceID(s string) (id DeviceID, exclude bool, err error) {
	if strings.HasPrefix(s, "-") {
		exclude = true
		s = s[1:]
	}

	vendorStr, productStr, found := strings.Cut(s, ":")
	if !found {
		return 0, false, fmt.Errorf("invalid device id %q", s)
	}

	vendor, err := strconv.ParseUint(vendorStr, 16, 16)
	if err != nil {
		return 0, false, fmt.Errorf("invalid device id %q", s)
	}
	product, err := strconv.ParseUint(productStr, 16, 16)
	if err != nil {
		return 0, false, fmt.Errorf("invalid device id %q", s)
	}

	return DeviceID(vendor<<16 | product), exclude, nil
}

// parseIDSection reads the device allow/deny list and wildcard flag.
// Unknown id syntax is a warning; pool exhaustion is fatal.
func (c *Config) parseIDSection(section ini.Section) error {
	for _, ent := range section.Entries {
		if ent.Key == "*" {
			c.Wildcard = true
			continue
		}

		id, exclude, err := ParseDeviceID(ent.Key)
		if err != nil {
			c.warnf(ent.Line, "%s is not a valid device id", ent.Key)
			continue
		}

		if exclude {
			if len(c.ExcludedIDs) >= MaxDeviceIDs {
				return &ParseError{Path: c.Path, Line: ent.Line, Message: fmt.Sprintf("max excluded device ids (%d) exceeded", MaxDeviceIDs), Err: ErrCapacity}
			}
			c.ExcludedIDs = append(c.ExcludedIDs, id)
		} else {
			if len(c.IDs) >= MaxDeviceIDs {
				return &ParseError{Path: c.Path, Line: ent.Line, Message: fmt.Sprintf("max device ids (%d) exceeded", MaxDeviceIDs), Err: ErrCapacity}
			}
			c.IDs = append(c.IDs, id)
		}
	}

	return nil
}

// parseAliasSection populates the keycode alias table. Aliasing a code to
// another key's canonical name additionally installs a key-sequence
// binding for it, in the main layer only.
func (c *Config) parseAliasSection(section ini.Section) {
	for _, ent := range section.Entries {
		if !ent.HasValue || ent.Value == "" {
			c.warnf(ent.Line, "invalid alias definition for %q", ent.Key)
			continue
		}

		code, ok := keycode.Lookup(ent.Key)
		if !ok {
			c.warnf(ent.Line, "failed to define alias %s, %s is not a valid keycode", ent.Value, ent.Key)
			continue
		}

		name := ent.Value
		if len(name) > MaxAliasLen {
			c.warnf(ent.Line, "%s exceeds the maximum alias length (%d)", name, MaxAliasLen)
			continue
		}

		if aliasCode, ok := keycode.Lookup(name); ok {
			c.Layers[0].Keymap[code] = Descriptor{Op: OpKeySequence, Code: aliasCode}
		}

		c.Aliases[code] = name
	}
}

// parseGlobalSection reads global timing and layout settings. Unknown
// keys and unparsable values warn and leave the default in place.
func (c *Config) parseGlobalSection(section ini.Section) {
	for _, ent := range section.Entries {
		if ent.Key == "default_layout" {
			c.DefaultLayout = ent.Value
			continue
		}

		var dst *int
		switch ent.Key {
		case "macro_timeout":
			dst = &c.MacroTimeout
		case "macro_sequence_timeout":
			dst = &c.MacroSequenceTimeout
		case "macro_repeat_timeout":
			dst = &c.MacroRepeatTimeout
		case "layer_indicator":
			dst = &c.LayerIndicator
		default:
			c.warnf(ent.Line, "%s is not a valid global option", ent.Key)
			continue
		}

		n, err := strconv.Atoi(ent.Value)
		if err != nil || n < 0 {
			c.warnf(ent.Line, "%q is not a valid value for %s", ent.Value, ent.Key)
			continue
		}
		*dst = n
	}
}
