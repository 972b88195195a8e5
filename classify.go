package atparser

// Byte-class helpers for the AT grammar. Unlike the IRI/Turtle grammars
// this dialect is ASCII-only, so classification works directly on bytes
// rather than decoded runes.

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isAlnum(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

// isIDBodyByte reports whether b may appear in the identifier body that
// follows "AT", i.e. any byte other than the terminators '?', '=', '\r'.
// Vendor command names such as "+CFUN" or "%XSYSTEMMODE" rely on the
// sigil byte itself being accepted here.
func isIDBodyByte(b byte) bool {
	return b != '?' && b != '=' && b != '\r'
}
