package lexer

// ParseEthernet scans a MAC address: three byte pairs joined by
// separators. Each pair is two hex bytes with an optional separator
// between them, and each separator position independently accepts any of
// ':', '.' or '-', so mixed styles like "12.34:56.78-90ab" are accepted.
// Failures carry the exact suffix where a hex digit or separator was
// expected.
func ParseEthernet(input string) ([6]byte, string, error) {
	var addr [6]byte
	rest := input

	for i := 0; i < 3; i++ {
		if i > 0 {
			var err error
			if _, rest, err = separator(rest); err != nil {
				return addr, input, err
			}
		}

		var err error
		if addr[2*i], addr[2*i+1], rest, err = hexBytePair(rest); err != nil {
			return addr, input, err
		}
	}

	return addr, rest, nil
}

// hexBytePair scans two hex bytes with an optional separator between
// them.
func hexBytePair(input string) (byte, byte, string, error) {
	b1, rest, err := hexByte(input)
	if err != nil {
		return 0, 0, input, err
	}

	// Separator inside a pair is optional
	if _, sepRest, err := separator(rest); err == nil {
		rest = sepRest
	}

	b2, rest, err := hexByte(rest)
	if err != nil {
		return 0, 0, input, err
	}

	return b1, b2, rest, nil
}

// ParseIPv4 scans a dotted-quad IPv4 address: four decimal byte literals
// separated by '.'. Each literal is a maximal decimal digit run that
// must fit in 0-255; a run whose value exceeds 255 fails with
// NumericOverflow at that literal rather than being truncated.
func ParseIPv4(input string) ([4]byte, string, error) {
	var addr [4]byte
	rest := input

	for i := 0; i < 4; i++ {
		if i > 0 {
			if len(rest) == 0 || rest[0] != '.' {
				return addr, input, scanError(NoMatch, rest)
			}
			rest = rest[1:]
		}

		var err error
		if addr[i], rest, err = decByte(rest); err != nil {
			return addr, input, err
		}
	}

	return addr, rest, nil
}

// decByte scans a maximal decimal digit run as one byte.
func decByte(input string) (byte, string, error) {
	run := decRun(input)
	if run == 0 {
		return 0, input, scanError(NoMatch, input)
	}

	v := 0
	for i := 0; i < run; i++ {
		v = v*10 + int(input[i]-'0')
		if v > 0xff {
			return 0, input, scanError(NumericOverflow, input)
		}
	}

	return byte(v), input[run:], nil
}
