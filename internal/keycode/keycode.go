package keycode

// Code is a Linux input event keycode (0-255).
type Code uint8

// NumCodes is the size of the keycode space.
const NumCodes = 256

// Entry describes one named keycode.
type Entry struct {
	// Name is the canonical key name used in configuration files.
	Name string

	// Alt is an alternate spelling, usually the printable symbol.
	Alt string

	// Shifted is the symbol produced with shift held, if any.
	Shifted string
}

// Keycodes for the physical modifier keys and a few codes the compiler
// references directly.
const (
	CodeLeftControl  Code = 29
	CodeLeftShift    Code = 42
	CodeLeftAlt      Code = 56
	CodeRightControl Code = 97
	CodeRightAlt     Code = 100
	CodeLeftMeta     Code = 125
	CodeRightMeta    Code = 126
	CodeRightShift   Code = 54
)

// table maps keycodes to their names. Unnamed slots are unused codes.
var table = [NumCodes]Entry{
	1:   {"esc", "escape", ""},
	2:   {"1", "", "!"},
	3:   {"2", "", "@"},
	4:   {"3", "", "#"},
	5:   {"4", "", "$"},
	6:   {"5", "", "%"},
	7:   {"6", "", "^"},
	8:   {"7", "", "&"},
	9:   {"8", "", "*"},
	10:  {"9", "", "("},
	11:  {"0", "", ")"},
	12:  {"minus", "-", "_"},
	13:  {"equal", "=", "+"},
	14:  {"backspace", "", ""},
	15:  {"tab", "", ""},
	16:  {"q", "", "Q"},
	17:  {"w", "", "W"},
	18:  {"e", "", "E"},
	19:  {"r", "", "R"},
	20:  {"t", "", "T"},
	21:  {"y", "", "Y"},
	22:  {"u", "", "U"},
	23:  {"i", "", "I"},
	24:  {"o", "", "O"},
	25:  {"p", "", "P"},
	26:  {"leftbrace", "[", "{"},
	27:  {"rightbrace", "]", "}"},
	28:  {"enter", "return", ""},
	29:  {"leftcontrol", "", ""},
	30:  {"a", "", "A"},
	31:  {"s", "", "S"},
	32:  {"d", "", "D"},
	33:  {"f", "", "F"},
	34:  {"g", "", "G"},
	35:  {"h", "", "H"},
	36:  {"j", "", "J"},
	37:  {"k", "", "K"},
	38:  {"l", "", "L"},
	39:  {"semicolon", ";", ":"},
	40:  {"apostrophe", "'", "\""},
	41:  {"grave", "`", "~"},
	42:  {"leftshift", "", ""},
	43:  {"backslash", "\\", "|"},
	44:  {"z", "", "Z"},
	45:  {"x", "", "X"},
	46:  {"c", "", "C"},
	47:  {"v", "", "V"},
	48:  {"b", "", "B"},
	49:  {"n", "", "N"},
	50:  {"m", "", "M"},
	51:  {"comma", ",", "<"},
	52:  {"dot", ".", ">"},
	53:  {"slash", "/", "?"},
	54:  {"rightshift", "", ""},
	55:  {"kpasterisk", "", ""},
	56:  {"leftalt", "", ""},
	57:  {"space", "", ""},
	58:  {"capslock", "", ""},
	59:  {"f1", "", ""},
	60:  {"f2", "", ""},
	61:  {"f3", "", ""},
	62:  {"f4", "", ""},
	63:  {"f5", "", ""},
	64:  {"f6", "", ""},
	65:  {"f7", "", ""},
	66:  {"f8", "", ""},
	67:  {"f9", "", ""},
	68:  {"f10", "", ""},
	69:  {"numlock", "", ""},
	70:  {"scrolllock", "", ""},
	71:  {"kp7", "", ""},
	72:  {"kp8", "", ""},
	73:  {"kp9", "", ""},
	74:  {"kpminus", "", ""},
	75:  {"kp4", "", ""},
	76:  {"kp5", "", ""},
	77:  {"kp6", "", ""},
	78:  {"kpplus", "", ""},
	79:  {"kp1", "", ""},
	80:  {"kp2", "", ""},
	81:  {"kp3", "", ""},
	82:  {"kp0", "", ""},
	83:  {"kpdot", "", ""},
	85:  {"zenkakuhankaku", "", ""},
	86:  {"102nd", "", ""},
	87:  {"f11", "", ""},
	88:  {"f12", "", ""},
	89:  {"ro", "", ""},
	90:  {"katakana", "", ""},
	91:  {"hiragana", "", ""},
	92:  {"henkan", "", ""},
	93:  {"katakanahiragana", "", ""},
	94:  {"muhenkan", "", ""},
	95:  {"kpjpcomma", "", ""},
	96:  {"kpenter", "", ""},
	97:  {"rightcontrol", "", ""},
	98:  {"kpslash", "", ""},
	99:  {"sysrq", "", ""},
	100: {"rightalt", "", ""},
	101: {"linefeed", "", ""},
	102: {"home", "", ""},
	103: {"up", "", ""},
	104: {"pageup", "", ""},
	105: {"left", "", ""},
	106: {"right", "", ""},
	107: {"end", "", ""},
	108: {"down", "", ""},
	109: {"pagedown", "", ""},
	110: {"insert", "", ""},
	111: {"delete", "", ""},
	112: {"macro", "", ""},
	113: {"mute", "", ""},
	114: {"volumedown", "", ""},
	115: {"volumeup", "", ""},
	116: {"power", "", ""},
	117: {"kpequal", "", ""},
	118: {"kpplusminus", "", ""},
	119: {"pause", "", ""},
	120: {"scale", "", ""},
	121: {"kpcomma", "", ""},
	122: {"hangeul", "", ""},
	123: {"hanja", "", ""},
	124: {"yen", "", ""},
	125: {"leftmeta", "", ""},
	126: {"rightmeta", "", ""},
	127: {"compose", "", ""},
	128: {"stop", "", ""},
	129: {"again", "", ""},
	130: {"props", "", ""},
	131: {"undo", "", ""},
	132: {"front", "", ""},
	133: {"copy", "", ""},
	134: {"open", "", ""},
	135: {"paste", "", ""},
	136: {"find", "", ""},
	137: {"cut", "", ""},
	138: {"help", "", ""},
	139: {"menu", "", ""},
	140: {"calc", "", ""},
	141: {"setup", "", ""},
	142: {"sleep", "", ""},
	143: {"wakeup", "", ""},
	144: {"file", "", ""},
	150: {"www", "", ""},
	152: {"screenlock", "coffee", ""},
	155: {"mail", "", ""},
	156: {"bookmarks", "", ""},
	157: {"computer", "", ""},
	158: {"back", "", ""},
	159: {"forward", "", ""},
	161: {"ejectcd", "", ""},
	163: {"nextsong", "", ""},
	164: {"playpause", "", ""},
	165: {"previoussong", "", ""},
	166: {"stopcd", "", ""},
	172: {"homepage", "", ""},
	173: {"refresh", "", ""},
	183: {"f13", "", ""},
	184: {"f14", "", ""},
	185: {"f15", "", ""},
	186: {"f16", "", ""},
	187: {"f17", "", ""},
	188: {"f18", "", ""},
	189: {"f19", "", ""},
	190: {"f20", "", ""},
	191: {"f21", "", ""},
	192: {"f22", "", ""},
	193: {"f23", "", ""},
	194: {"f24", "", ""},
	217: {"search", "", ""},
	224: {"brightnessdown", "", ""},
	225: {"brightnessup", "", ""},
	226: {"media", "", ""},
}

var (
	nameToCode    map[string]Code
	shiftedToCode map[string]Code
)

func init() {
	nameToCode = make(map[string]Code, NumCodes)
	shiftedToCode = make(map[string]Code, 64)

	for i, ent := range table {
		if ent.Name == "" {
			continue
		}
		code := Code(i)
		if _, dup := nameToCode[ent.Name]; !dup {
			nameToCode[ent.Name] = code
		}
		if ent.Alt != "" {
			if _, dup := nameToCode[ent.Alt]; !dup {
				nameToCode[ent.Alt] = code
			}
		}
		if ent.Shifted != "" {
			if _, dup := shiftedToCode[ent.Shifted]; !dup {
				shiftedToCode[ent.Shifted] = code
			}
		}
	}
}

// Lookup resolves a canonical or alternate key name to its keycode.
func Lookup(name string) (Code, bool) {
	c, ok := nameToCode[name]
	return c, ok
}

// LookupShifted resolves a shifted key name (such as "A" or "!") to the
// keycode that produces it with shift held.
func LookupShifted(name string) (Code, bool) {
	c, ok := shiftedToCode[name]
	return c, ok
}

// At returns the table entry for a keycode. Unnamed codes return a zero
// Entry.
func At(code Code) Entry {
	return table[code]
}

// Name returns the canonical name of a keycode, or "" if it has none.
func Name(code Code) string {
	return table[code].Name
}
