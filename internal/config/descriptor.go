package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/keymapd/internal/keycode"
)

// Op identifies the action a descriptor performs.
type Op uint8

const (
	// OpNone marks an empty keymap slot.
	OpNone Op = iota

	// OpKeySequence emits a key with a modifier mask. Uses Code, Mods.
	OpKeySequence

	// OpSwap deactivates the current layer and activates another for the
	// remainder of the activating keypress. Uses Layer.
	OpSwap

	// OpSwap2 is OpSwap plus a macro replayed on activation. Uses Layer,
	// Macro.
	OpSwap2

	// OpClear deactivates all active layers and oneshots.
	OpClear

	// OpOneshot activates a layer for the next keypress. Uses Layer.
	OpOneshot

	// OpToggle toggles a layer on or off. Uses Layer.
	OpToggle

	// OpToggle2 is OpToggle plus a macro replayed on toggle. Uses Layer,
	// Macro.
	OpToggle2

	// OpLayer activates a layer while the key is held. Uses Layer.
	OpLayer

	// OpOverload taps a nested descriptor or holds a layer depending on
	// timing. Uses Layer, Desc.
	OpOverload

	// OpTimeout executes one of two nested descriptors depending on
	// whether the key is released within the timeout. Uses Desc, Timeout,
	// Desc2.
	OpTimeout

	// OpMacro2 replays a macro with custom per-macro timeouts. Uses
	// Timeout, Timeout2, Macro.
	OpMacro2

	// OpLayout switches the active layout layer. Uses Layer.
	OpLayout

	// OpMacro replays a macro. Uses Macro.
	OpMacro

	// OpCommand runs a shell command. Uses Command.
	OpCommand
)

// Descriptor is a compiled action bound to one keycode in one layer: an
// opcode plus typed arguments. Which fields are meaningful depends on
// Op; unused fields are zero, so descriptors compare with ==.
type Descriptor struct {
	Op Op

	Code keycode.Code
	Mods keycode.Modifier

	Layer    LayerIndex
	Macro    MacroIndex
	Command  CommandIndex
	Desc     DescriptorIndex
	Desc2    DescriptorIndex
	Timeout  int
	Timeout2 int
}

// IsEmpty reports whether d is an empty keymap slot.
func (d Descriptor) IsEmpty() bool {
	return d.Op == OpNone
}

// argType is the declared type of one positional action argument.
type argType uint8

const (
	argLayer argType = iota + 1
	argLayout
	argDescriptor
	argTimeout
	argMacro
)

// actions is the fixed table of function-call descriptor forms, keyed by
// name, each declaring its exact ordered argument signature.
var actions = map[string]struct {
	op   Op
	args []argType
}{
	"swap":      {OpSwap, []argType{argLayer}},
	"swap2":     {OpSwap2, []argType{argLayer, argMacro}},
	"clear":     {OpClear, nil},
	"oneshot":   {OpOneshot, []argType{argLayer}},
	"toggle":    {OpToggle, []argType{argLayer}},
	"toggle2":   {OpToggle2, []argType{argLayer, argMacro}},
	"layer":     {OpLayer, []argType{argLayer}},
	"overload":  {OpOverload, []argType{argLayer, argDescriptor}},
	"timeout":   {OpTimeout, []argType{argDescriptor, argTimeout, argDescriptor}},
	"macro2":    {OpMacro2, []argType{argTimeout, argTimeout, argMacro}},
	"setlayout": {OpLayout, []argType{argLayout}},
}

// parseDescriptor compiles a binding's right-hand side. Resolution order:
// key sequence, command, macro, then function-call action. Nested
// descriptors and macros are appended to the config pools; the returned
// descriptor stores only their indices.
func (c *Config) parseDescriptor(s string, line int) (Descriptor, error) {
	if s == "" {
		return Descriptor{}, nil
	}

	if code, mods, err := keycode.ParseSequence(s); err == nil {
		if _, isMod := keycode.CodeToModifier(code); isMod {
			c.warnf(line, "mapping the modifier key %q directly may produce unintended results", keycode.Name(code))
		}
		return Descriptor{Op: OpKeySequence, Code: code, Mods: mods}, nil
	}

	if cmd, matched, err := parseCommand(s); matched {
		if err != nil {
			return Descriptor{}, err
		}
		idx, err := c.storeCommand(cmd)
		if err != nil {
			return Descriptor{}, err
		}
		return Descriptor{Op: OpCommand, Command: idx}, nil
	}

	if macro, matched, err := parseMacroExpression(s); matched {
		if err != nil {
			return Descriptor{}, err
		}
		idx, err := c.storeMacro(macro)
		if err != nil {
			return Descriptor{}, err
		}
		return Descriptor{Op: OpMacro, Macro: idx}, nil
	}

	name, args, ok := parseCall(s)
	if ok {
		if action, known := actions[name]; known {
			return c.compileAction(name, action.op, action.args, args, line)
		}
	}

	return Descriptor{}, fmt.Errorf("%w: %q", ErrInvalidDescriptor, s)
}

// compileAction type-checks and resolves the arguments of a function-call
// action.
func (c *Config) compileAction(name string, op Op, want []argType, args []string, line int) (Descriptor, error) {
	if len(args) != len(want) {
		noun := "arguments"
		if len(want) == 1 {
			noun = "argument"
		}
		return Descriptor{}, fmt.Errorf("%s requires %d %s", name, len(want), noun)
	}

	d := Descriptor{Op: op}
	var descs, timeouts int

	for i, typ := range want {
		arg := args[i]

		switch typ {
		case argLayer:
			if arg == "main" {
				return Descriptor{}, fmt.Errorf("the main layer cannot be toggled")
			}
			idx, ok := c.layerIndex(arg)
			if !ok || c.Layers[idx].Kind == LayerLayout {
				return Descriptor{}, fmt.Errorf("%q %w", arg, ErrUnknownLayer)
			}
			d.Layer = idx

		case argLayout:
			idx, ok := c.layerIndex(arg)
			if !ok || c.Layers[idx].Kind != LayerLayout {
				return Descriptor{}, fmt.Errorf("%q is not a valid layout", arg)
			}
			d.Layer = idx

		case argDescriptor:
			nested, err := c.parseDescriptor(arg, line)
			if err != nil {
				return Descriptor{}, err
			}
			idx, err := c.storeDescriptor(nested)
			if err != nil {
				return Descriptor{}, err
			}
			if descs == 0 {
				d.Desc = idx
			} else {
				d.Desc2 = idx
			}
			descs++

		case argTimeout:
			ms, err := strconv.Atoi(arg)
			if err != nil || ms < 0 {
				return Descriptor{}, fmt.Errorf("%q is not a valid timeout", arg)
			}
			if timeouts == 0 {
				d.Timeout = ms
			} else {
				d.Timeout2 = ms
			}
			timeouts++

		case argMacro:
			macro, matched, err := parseMacroExpression(arg)
			if err != nil {
				return Descriptor{}, err
			}
			if !matched {
				return Descriptor{}, fmt.Errorf("%w: %q", ErrInvalidMacro, arg)
			}
			idx, err := c.storeMacro(macro)
			if err != nil {
				return Descriptor{}, err
			}
			d.Macro = idx
		}
	}

	return d, nil
}

// parseCall reads generic function-call syntax: everything before the
// first unescaped '(' is the name; arguments are comma-separated at
// parenthesis depth zero, honoring backslash escapes and nested
// parentheses, terminated by the matching ')'. Content after the close
// is not consumed.
func parseCall(s string) (name string, args []string, ok bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return "", nil, false
	}
	name = s[:open]

	pos := open + 1
	for pos < len(s) && s[pos] == ' ' {
		pos++
	}

	depth := 0
	start := pos
	for pos < len(s) {
		switch s[pos] {
		case '\\':
			if pos+1 < len(s) {
				pos += 2
				continue
			}
		case '(':
			depth++
		case ')':
			if depth == 0 {
				if start != pos {
					args = append(args, s[start:pos])
				}
				return name, args, true
			}
			depth--
		case ',':
			if depth == 0 {
				if start != pos {
					args = append(args, s[start:pos])
				}
				pos++
				for pos < len(s) && s[pos] == ' ' {
					pos++
				}
				start = pos
				continue
			}
		}
		pos++
	}

	return "", nil, false
}

// Pool allocation. Appends fail once the fixed capacity is reached; they
// never reallocate past it.

func (c *Config) storeMacro(m Macro) (MacroIndex, error) {
	if len(c.Macros) >= MaxMacros {
		return 0, fmt.Errorf("%w: max macros (%d)", ErrCapacity, MaxMacros)
	}
	c.Macros = append(c.Macros, m)
	return MacroIndex(len(c.Macros) - 1), nil
}

func (c *Config) storeCommand(cmd Command) (CommandIndex, error) {
	if len(c.Commands) >= MaxCommands {
		return 0, fmt.Errorf("%w: max commands (%d)", ErrCapacity, MaxCommands)
	}
	c.Commands = append(c.Commands, cmd)
	return CommandIndex(len(c.Commands) - 1), nil
}

func (c *Config) storeDescriptor(d Descriptor) (DescriptorIndex, error) {
	if len(c.Descriptors) >= MaxDescriptors {
		return 0, fmt.Errorf("%w: max descriptors (%d)", ErrCapacity, MaxDescriptors)
	}
	c.Descriptors = append(c.Descriptors, d)
	return DescriptorIndex(len(c.Descriptors) - 1), nil
}
