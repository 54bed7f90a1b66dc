package jsontree

// ScannerHooks contains block-scan hooks the parser uses for whitespace and
// string scans. Overriding them (see WithScannerHooks) allows vectorized
// implementations without touching grammar code.
type ScannerHooks interface {
	// SkipWhitespace returns the first index at or after pos that is not a
	// JSON whitespace byte (space, tab, newline, carriage return).
	SkipWhitespace(data []byte, pos int) int
	// FindSpecial returns the index of the first '"', '\\' or control byte
	// (< 0x20) at or after pos, or -1 when none remains.
	FindSpecial(data []byte, pos int) int
}

type blockScannerHooks struct{}

func (s blockScannerHooks) SkipWhitespace(data []byte, pos int) int {
	for pos < len(data) {
		switch data[pos] {
		case ' ', '\n', '\r', '\t':
			pos++
		default:
			return pos
		}
	}
	return pos
}

func (s blockScannerHooks) FindSpecial(data []byte, pos int) int {
	for i := pos; i < len(data); i++ {
		c := data[i]
		if c == '"' || c == '\\' || c < 0x20 {
			return i
		}
	}
	return -1
}

// parseHex4 decodes four hex digits big-endian, as used by \uXXXX escapes.
func parseHex4(b []byte) (rune, bool) {
	if len(b) != 4 {
		return 0, false
	}
	var v rune
	for i := 0; i < 4; i++ {
		d, ok := hexDigit(b[i])
		if !ok {
			return 0, false
		}
		v = v<<4 | d
	}
	return v, true
}

func hexDigit(c byte) (rune, bool) {
	switch {
	case c >= '0' && c <= '9':
		return rune(c - '0'), true
	case c >= 'a' && c <= 'f':
		return rune(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return rune(c-'A') + 10, true
	}
	return 0, false
}
