package config

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dshills/keymapd/internal/ini"
	"github.com/dshills/keymapd/internal/keycode"
)

// Compilation limits. Pools are fixed-capacity: allocation is an append
// with an explicit bounds check, never a silent truncation.
const (
	MaxFileSize       = 65536
	MaxLineLen        = 256
	MaxLayers         = 32
	MaxLayerNameLen   = 64
	MaxDescriptorArgs = 3
	MaxExpressionLen  = 512
	MaxMacroLen       = 1024
	MaxMacroEntries   = 128
	MaxComposite      = 8
	MaxMacros         = 64
	MaxCommands       = 64
	MaxDescriptors    = 64
	MaxDeviceIDs      = 64
	MaxCommandLen     = 256
	MaxAliasLen       = 64
)

// Typed pool handles. Every handle stored in a compiled Config indexes a
// valid element of the pool it names.
type (
	// LayerIndex indexes Config.Layers.
	LayerIndex int

	// MacroIndex indexes Config.Macros.
	MacroIndex int

	// CommandIndex indexes Config.Commands.
	CommandIndex int

	// DescriptorIndex indexes Config.Descriptors, the pool of descriptors
	// referenced from inside other descriptors.
	DescriptorIndex int
)

// Command is a shell command trigger. The stored text is escape-decoded.
type Command struct {
	Cmd string
}

// DeviceID packs a USB vendor and product id as vendor<<16|product.
type DeviceID uint32

// String renders the id in the vendor:product form used in config files.
func (id DeviceID) String() string {
	return fmt.Sprintf("%04x:%04x", uint16(id>>16), uint16(id))
}

// MatchResult is the outcome of matching a device id against a config.
type MatchResult uint8

const (
	// MatchNone means the config does not apply to the device.
	MatchNone MatchResult = iota

	// MatchWildcard means the config applies through a wildcard entry.
	MatchWildcard

	// MatchExplicit means the device id is listed explicitly.
	MatchExplicit
)

// String returns the match result name.
func (m MatchResult) String() string {
	switch m {
	case MatchNone:
		return "none"
	case MatchWildcard:
		return "wildcard"
	case MatchExplicit:
		return "explicit"
	default:
		return "unknown"
	}
}

// Config is a compiled configuration snapshot. It is built bottom-up by
// Parse and treated as immutable afterward.
type Config struct {
	// ID uniquely identifies this snapshot, so reload logging can name
	// the config being swapped in.
	ID uuid.UUID

	// Path is the source file the snapshot was compiled from.
	Path string

	// Layers holds every layer in declaration order. Index 0 is always
	// the main layer.
	Layers []Layer

	// Aliases maps keycodes to their symbolic alias name, or "" for
	// unaliased codes. An alias name may apply to more than one code.
	Aliases [keycode.NumCodes]string

	// Macros, Commands and Descriptors are the pools referenced by
	// descriptor handles.
	Macros      []Macro
	Commands    []Command
	Descriptors []Descriptor

	// Device matching rules.
	IDs         []DeviceID
	ExcludedIDs []DeviceID
	Wildcard    bool

	// Global timing parameters, in milliseconds.
	MacroTimeout         int
	MacroSequenceTimeout int
	MacroRepeatTimeout   int

	// LayerIndicator is the keycode used to indicate active layers, or 0.
	LayerIndicator int

	// DefaultLayout names the layout layer activated at startup.
	DefaultLayout string

	// Warnings collects the recoverable diagnostics encountered while
	// compiling this snapshot.
	Warnings []Warning
}

// Parse reads and compiles a configuration file.
func Parse(path string) (*Config, error) {
	c := newConfig(path)

	content, err := c.resolveIncludes(path)
	if err != nil {
		return nil, err
	}

	if err := c.compile(content); err != nil {
		return nil, err
	}
	return c, nil
}

// ParseString compiles configuration text directly. Include directives
// are resolved relative to path's directory.
func ParseString(content, path string) (*Config, error) {
	c := newConfig(path)

	assembled, err := c.inlineIncludes(content, path)
	if err != nil {
		return nil, err
	}

	if err := c.compile(assembled); err != nil {
		return nil, err
	}
	return c, nil
}

// newConfig builds an empty snapshot seeded with the built-in layers,
// default modifier bindings and default timing parameters.
func newConfig(path string) *Config {
	c := &Config{
		ID:   uuid.New(),
		Path: path,

		MacroTimeout:       600,
		MacroRepeatTimeout: 50,
	}

	// Built-in layers. main must be first.
	for _, s := range []string{"main", "control:C", "meta:M", "shift:S", "altgr:G", "alt:A"} {
		if err := c.addLayer(s, 0); err != nil {
			panic("config: seeding built-in layer: " + err.Error())
		}
	}

	// Pre-bind each physical modifier keycode in main to a layer switch
	// targeting its modifier layer, and register its canonical alias.
	for _, mod := range keycode.ModifierTable {
		idx, ok := c.layerIndex(mod.Name)
		if !ok {
			panic("config: missing built-in layer " + mod.Name)
		}
		for _, code := range mod.Codes {
			c.Layers[0].Keymap[code] = Descriptor{Op: OpLayer, Layer: idx}
			c.Aliases[code] = mod.Name
		}
	}

	return c
}

// compile runs the two-pass build over assembled source text.
func (c *Config) compile(content string) error {
	sections, err := ini.Parse(content)
	if err != nil {
		return &ParseError{Path: c.Path, Message: "invalid section syntax", Err: err}
	}

	// First pass: handle the special sections and create every layer, so
	// pass two may bind into any layer regardless of file order.
	for _, section := range sections {
		switch section.Name {
		case "ids":
			if err := c.parseIDSection(section); err != nil {
				return err
			}
		case "aliases":
			c.parseAliasSection(section)
		case "global":
			c.parseGlobalSection(section)
		default:
			if err := c.addLayer(section.Name, section.Line); err != nil {
				if isCapacityError(err) {
					return &ParseError{Path: c.Path, Line: section.Line, Message: err.Error(), Err: err}
				}
				c.warnf(section.Line, "%v", err)
			}
		}
	}

	// Second pass: compile every binding into its layer's keymap.
	for _, section := range sections {
		switch section.Name {
		case "ids", "aliases", "global":
			continue
		}

		layerName, _, _ := strings.Cut(section.Name, ":")

		for _, ent := range section.Entries {
			if !ent.HasValue {
				c.warnf(ent.Line, "invalid binding")
				continue
			}

			exp := fmt.Sprintf("%s.%s = %s", layerName, ent.Key, ent.Value)
			if err := c.addEntry(exp, ent.Line); err != nil {
				if isCapacityError(err) {
					return &ParseError{Path: c.Path, Line: ent.Line, Message: err.Error(), Err: err}
				}
				c.warnf(ent.Line, "%v", err)
			}
		}
	}

	return nil
}

// MatchDevice reports whether this config applies to the given device.
// Exclusions take precedence over explicit and wildcard entries.
func (c *Config) MatchDevice(id DeviceID) MatchResult {
	for _, ex := range c.ExcludedIDs {
		if ex == id {
			return MatchNone
		}
	}

	for _, want := range c.IDs {
		if want == id {
			return MatchExplicit
		}
	}

	if c.Wildcard {
		return MatchWildcard
	}
	return MatchNone
}

// LayerAt returns the layer at the given index.
func (c *Config) LayerAt(idx LayerIndex) *Layer {
	return &c.Layers[idx]
}

// LookupLayer resolves a layer name to its index.
func (c *Config) LookupLayer(name string) (LayerIndex, bool) {
	return c.layerIndex(name)
}

func (c *Config) layerIndex(name string) (LayerIndex, bool) {
	for i := range c.Layers {
		if c.Layers[i].Name == name {
			return LayerIndex(i), true
		}
	}
	return 0, false
}
