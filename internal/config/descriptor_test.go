package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/keymapd/internal/keycode"
)

// newTestConfig compiles a minimal document declaring the given layer
// section headers, failing the test on any fatal error.
func newTestConfig(t *testing.T, headers ...string) *Config {
	t.Helper()

	var b strings.Builder
	for _, h := range headers {
		b.WriteString("[" + h + "]\n")
	}

	c, err := ParseString(b.String(), "test.conf")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	return c
}

func TestParseDescriptorKeySequence(t *testing.T) {
	c := newTestConfig(t)

	d, err := c.parseDescriptor("C-M-a", 0)
	if err != nil {
		t.Fatalf("parseDescriptor: %v", err)
	}

	want := Descriptor{Op: OpKeySequence, Code: 30, Mods: keycode.ModControl | keycode.ModMeta}
	if d != want {
		t.Errorf("got %+v, want %+v", d, want)
	}
}

func TestParseDescriptorModifierAdvisory(t *testing.T) {
	c := newTestConfig(t)

	d, err := c.parseDescriptor("leftcontrol", 7)
	if err != nil {
		t.Fatalf("parseDescriptor: %v", err)
	}
	if d.Op != OpKeySequence || d.Code != 29 {
		t.Fatalf("got %+v, want key sequence for leftcontrol", d)
	}

	if len(c.Warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(c.Warnings))
	}
	if c.Warnings[0].Line != 7 {
		t.Errorf("warning line = %d, want 7", c.Warnings[0].Line)
	}
	if !strings.Contains(c.Warnings[0].Message, "leftcontrol") {
		t.Errorf("warning %q does not name the key", c.Warnings[0].Message)
	}
}

func TestParseDescriptorCommand(t *testing.T) {
	c := newTestConfig(t)

	d, err := c.parseDescriptor("command(echo hi)", 0)
	if err != nil {
		t.Fatalf("parseDescriptor: %v", err)
	}
	if d.Op != OpCommand {
		t.Fatalf("op = %v, want OpCommand", d.Op)
	}
	if got := c.Commands[d.Command].Cmd; got != "echo hi" {
		t.Errorf("command = %q, want %q", got, "echo hi")
	}

	// Identical commands still occupy distinct pool slots.
	d2, err := c.parseDescriptor("command(echo hi)", 0)
	if err != nil {
		t.Fatalf("parseDescriptor: %v", err)
	}
	if d2.Command == d.Command {
		t.Errorf("second command reused pool slot %d", d.Command)
	}
}

func TestParseDescriptorActions(t *testing.T) {
	c := newTestConfig(t, "nav", "dvorak:layout")

	nav, ok := c.LookupLayer("nav")
	if !ok {
		t.Fatal("nav layer missing")
	}
	dvorak, ok := c.LookupLayer("dvorak")
	if !ok {
		t.Fatal("dvorak layer missing")
	}

	tests := []struct {
		name  string
		input string
		check func(t *testing.T, d Descriptor)
	}{
		{
			name:  "layer",
			input: "layer(nav)",
			check: func(t *testing.T, d Descriptor) {
				if d.Op != OpLayer || d.Layer != nav {
					t.Errorf("got %+v", d)
				}
			},
		},
		{
			name:  "oneshot",
			input: "oneshot(nav)",
			check: func(t *testing.T, d Descriptor) {
				if d.Op != OpOneshot || d.Layer != nav {
					t.Errorf("got %+v", d)
				}
			},
		},
		{
			name:  "clear",
			input: "clear()",
			check: func(t *testing.T, d Descriptor) {
				if d.Op != OpClear {
					t.Errorf("got %+v", d)
				}
			},
		},
		{
			name:  "overload stores nested descriptor",
			input: "overload(nav, capslock)",
			check: func(t *testing.T, d Descriptor) {
				if d.Op != OpOverload || d.Layer != nav {
					t.Fatalf("got %+v", d)
				}
				nested := c.Descriptors[d.Desc]
				if nested.Op != OpKeySequence || nested.Code != 58 {
					t.Errorf("nested = %+v, want capslock key sequence", nested)
				}
			},
		},
		{
			name:  "timeout orders nested descriptors",
			input: "timeout(a, 200, layer(nav))",
			check: func(t *testing.T, d Descriptor) {
				if d.Op != OpTimeout || d.Timeout != 200 {
					t.Fatalf("got %+v", d)
				}
				first := c.Descriptors[d.Desc]
				second := c.Descriptors[d.Desc2]
				if first.Op != OpKeySequence || first.Code != 30 {
					t.Errorf("first = %+v, want a", first)
				}
				if second.Op != OpLayer || second.Layer != nav {
					t.Errorf("second = %+v, want layer(nav)", second)
				}
			},
		},
		{
			name:  "macro2 orders timeouts",
			input: "macro2(20, 40, macro(hi))",
			check: func(t *testing.T, d Descriptor) {
				if d.Op != OpMacro2 || d.Timeout != 20 || d.Timeout2 != 40 {
					t.Fatalf("got %+v", d)
				}
				if got := len(c.Macros[d.Macro]); got != 2 {
					t.Errorf("macro has %d entries, want 2", got)
				}
			},
		},
		{
			name:  "setlayout",
			input: "setlayout(dvorak)",
			check: func(t *testing.T, d Descriptor) {
				if d.Op != OpLayout || d.Layer != dvorak {
					t.Errorf("got %+v", d)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := c.parseDescriptor(tt.input, 0)
			if err != nil {
				t.Fatalf("parseDescriptor(%q): %v", tt.input, err)
			}
			tt.check(t, d)
		})
	}
}

func TestParseDescriptorErrors(t *testing.T) {
	c := newTestConfig(t, "nav", "dvorak:layout")

	tests := []struct {
		name    string
		input   string
		wantSub string
	}{
		{"wrong arity", "swap(nav, nav)", "swap requires 1 argument"},
		{"main cannot toggle", "toggle(main)", "main layer cannot be toggled"},
		{"unknown layer", "layer(bogus)", "not a valid layer"},
		{"layout where layer expected", "layer(dvorak)", "not a valid layer"},
		{"layer where layout expected", "setlayout(nav)", "not a valid layout"},
		{"negative timeout", "timeout(a, -5, b)", "not a valid timeout"},
		{"garbage", "definitely not valid", "invalid key or action"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.parseDescriptor(tt.input, 0)
			if err == nil {
				t.Fatalf("parseDescriptor(%q) succeeded", tt.input)
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("err = %q, want substring %q", err, tt.wantSub)
			}
		})
	}
}

func TestDescriptorPoolCapacity(t *testing.T) {
	c := newTestConfig(t)

	var err error
	for i := 0; i <= MaxCommands; i++ {
		_, err = c.storeCommand(Command{Cmd: "true"})
		if err != nil {
			break
		}
	}
	if !errors.Is(err, ErrCapacity) {
		t.Fatalf("err = %v, want ErrCapacity", err)
	}
}

func TestParseCall(t *testing.T) {
	tests := []struct {
		input string
		name  string
		args  []string
		ok    bool
	}{
		{"layer(nav)", "layer", []string{"nav"}, true},
		{"clear()", "clear", nil, true},
		{"timeout(a, 200, b)", "timeout", []string{"a", "200", "b"}, true},
		{"overload(nav, macro(a b))", "overload", []string{"nav", "macro(a b)"}, true},
		{`command(echo \(hi\))`, "command", []string{`echo \(hi\)`}, true},
		{"noargs", "", nil, false},
		{"open(unclosed", "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			name, args, ok := parseCall(tt.input)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if name != tt.name {
				t.Errorf("name = %q, want %q", name, tt.name)
			}
			if len(args) != len(tt.args) {
				t.Fatalf("args = %q, want %q", args, tt.args)
			}
			for i := range args {
				if args[i] != tt.args[i] {
					t.Errorf("arg %d = %q, want %q", i, args[i], tt.args[i])
				}
			}
		})
	}
}
