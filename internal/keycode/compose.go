package keycode

// composeRunes lists the non-ASCII codepoints the runtime engine can emit
// through its compose sequence table. A macro Unicode entry stores an
// index into this list.
var composeRunes = []rune{
	'¡', '¢', '£', '¤', '¥', '¦', '§', '¨', '©', 'ª', '«', '¬', '®', '¯',
	'°', '±', '²', '³', '´', 'µ', '¶', '·', '¸', '¹', 'º', '»', '¼', '½',
	'¾', '¿', 'À', 'Á', 'Â', 'Ã', 'Ä', 'Å', 'Æ', 'Ç', 'È', 'É', 'Ê', 'Ë',
	'Ì', 'Í', 'Î', 'Ï', 'Ð', 'Ñ', 'Ò', 'Ó', 'Ô', 'Õ', 'Ö', '×', 'Ø', 'Ù',
	'Ú', 'Û', 'Ü', 'Ý', 'Þ', 'ß', 'à', 'á', 'â', 'ã', 'ä', 'å', 'æ', 'ç',
	'è', 'é', 'ê', 'ë', 'ì', 'í', 'î', 'ï', 'ð', 'ñ', 'ò', 'ó', 'ô', 'õ',
	'ö', '÷', 'ø', 'ù', 'ú', 'û', 'ü', 'ý', 'þ', 'ÿ',
	'Ā', 'ā', 'Ă', 'ă', 'Ą', 'ą', 'Ć', 'ć', 'Č', 'č', 'Ď', 'ď', 'Đ', 'đ',
	'Ē', 'ē', 'Ė', 'ė', 'Ę', 'ę', 'Ě', 'ě', 'Ğ', 'ğ', 'Ī', 'ī', 'Į', 'į',
	'İ', 'ı', 'Ł', 'ł', 'Ń', 'ń', 'Ň', 'ň', 'Ō', 'ō', 'Œ', 'œ', 'Ř', 'ř',
	'Ś', 'ś', 'Š', 'š', 'Ť', 'ť', 'Ū', 'ū', 'Ů', 'ů', 'Ų', 'ų', 'Ź', 'ź',
	'Ż', 'ż', 'Ž', 'ž',
	'€', '‐', '–', '—', '‘', '’', '‚', '“', '”', '„', '†', '‡', '•', '…',
	'‰', '′', '″', '‹', '›', '⁄', '™', '←', '↑', '→', '↓', '⇐', '⇒', '⇔',
	'∀', '∃', '∅', '∈', '∉', '∏', '∑', '√', '∞', '∧', '∨', '∩', '∪', '≈',
	'≠', '≤', '≥',
}

var composeIndex map[rune]int

func init() {
	composeIndex = make(map[rune]int, len(composeRunes))
	for i, r := range composeRunes {
		composeIndex[r] = i
	}
}

// LookupCompose returns the compose table index for a codepoint, or -1 if
// the codepoint has no compose sequence.
func LookupCompose(r rune) int {
	if i, ok := composeIndex[r]; ok {
		return i
	}
	return -1
}

// ComposeRune returns the codepoint stored at a compose table index.
func ComposeRune(i int) (rune, bool) {
	if i < 0 || i >= len(composeRunes) {
		return 0, false
	}
	return composeRunes[i], true
}

// ComposeTableSize returns the number of compose sequences available.
func ComposeTableSize() int {
	return len(composeRunes)
}
