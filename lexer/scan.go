package lexer

// Byte-level scanning primitives shared by the token scanners. Everything
// here works on ASCII bytes and stays allocation free.

func isDecDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isOctDigit(ch byte) bool {
	return ch >= '0' && ch <= '7'
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func hexDigitValue(ch byte) byte {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0'
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10
	default:
		return ch - 'A' + 10
	}
}

// decRun returns the length of the maximal decimal digit run at the start
// of input.
func decRun(input string) int {
	n := 0
	for n < len(input) && isDecDigit(input[n]) {
		n++
	}
	return n
}

// octRun returns the length of the maximal octal digit run at the start
// of input.
func octRun(input string) int {
	n := 0
	for n < len(input) && isOctDigit(input[n]) {
		n++
	}
	return n
}

// hexRun returns the length of the maximal hex digit run at the start of
// input.
func hexRun(input string) int {
	n := 0
	for n < len(input) && isHexDigit(input[n]) {
		n++
	}
	return n
}

// hexByte scans exactly two hex digits as one byte.
func hexByte(input string) (byte, string, error) {
	if len(input) < 2 || !isHexDigit(input[0]) || !isHexDigit(input[1]) {
		return 0, input, scanError(NoMatch, input)
	}
	return hexDigitValue(input[0])<<4 | hexDigitValue(input[1]), input[2:], nil
}

// octByteValue parses exactly three octal digits as one byte. The second
// return is false when the digits are missing or the value exceeds 0xff.
func octByteValue(input string) (byte, bool) {
	if len(input) < 3 || !isOctDigit(input[0]) || !isOctDigit(input[1]) || !isOctDigit(input[2]) {
		return 0, false
	}
	v := uint16(input[0]-'0')<<6 | uint16(input[1]-'0')<<3 | uint16(input[2]-'0')
	if v > 0xff {
		return 0, false
	}
	return byte(v), true
}

// separator scans a single address separator character.
func separator(input string) (byte, string, error) {
	if len(input) == 0 {
		return 0, input, scanError(NoMatch, input)
	}
	switch input[0] {
	case ':', '.', '-':
		return input[0], input[1:], nil
	}
	return 0, input, scanError(NoMatch, input)
}
