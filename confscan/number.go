package confscan

import (
	"math"
	"strconv"
)

// matchNumber reports the longest numeric lexeme at the start of src and
// its kind, or length 0 when no numeric rule matches. Longest match wins;
// the explicit-width suffix and exponent are only consumed when they
// complete a valid literal, so "12eZ" scans as the integer "12" and
// "0xFFLLL" as the hex64 "0xFFLL".
func matchNumber(src []byte) (int, Kind) {
	if len(src) >= 3 && src[0] == '0' && (src[1] == 'x' || src[1] == 'X') && isHexDigit(src[2]) {
		i := 2
		for i < len(src) && isHexDigit(src[i]) {
			i++
		}
		if i < len(src) && src[i] == 'L' {
			i++
			if i < len(src) && src[i] == 'L' {
				i++
			}
			return i, KindHex64
		}
		return i, KindHex
	}

	i := 0
	if i < len(src) && (src[i] == '-' || src[i] == '+') {
		i++
	}
	intDigits := 0
	for i < len(src) && isDigit(src[i]) {
		i++
		intDigits++
	}
	hasDot := false
	if i < len(src) && src[i] == '.' {
		hasDot = true
		i++
		for i < len(src) && isDigit(src[i]) {
			i++
		}
	}
	if intDigits == 0 && !hasDot {
		return 0, ""
	}
	hasExp := false
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < len(src) && (src[j] == '-' || src[j] == '+') {
			j++
		}
		expDigits := 0
		for j < len(src) && isDigit(src[j]) {
			j++
			expDigits++
		}
		if expDigits > 0 {
			i = j
			hasExp = true
		}
	}

	if hasDot || hasExp {
		return i, KindFloat
	}
	if i < len(src) && src[i] == 'L' {
		i++
		if i < len(src) && src[i] == 'L' {
			i++
		}
		return i, KindInteger64
	}
	return i, KindInteger
}

func (s *Scanner) lexNumber(f *frame) Token {
	rest := f.src[f.pos:]
	n, kind := matchNumber(rest)
	if n == 0 {
		c := rest[0]
		f.pos++
		return s.garbage(c, f)
	}
	lex := rest[:n]
	f.pos += n

	switch kind {
	case KindFloat:
		return s.floatToken(lex, f)
	case KindInteger:
		return s.integerToken(lex, f)
	case KindInteger64:
		v, err := strconv.ParseInt(string(trimSuffixL(lex)), 10, 64)
		if err != nil {
			return s.errorToken("integer literal out of range: " + string(lex))
		}
		t := s.tok(KindInteger64, f)
		t.Int64 = v
		return t
	case KindHex:
		v, err := strconv.ParseUint(string(lex[2:]), 16, 32)
		if err != nil {
			return s.errorToken("hex literal out of range: " + string(lex))
		}
		t := s.tok(KindHex, f)
		t.Int = int32(uint32(v))
		return t
	default:
		v, err := strconv.ParseUint(string(trimSuffixL(lex)[2:]), 16, 64)
		if err != nil {
			return s.errorToken("hex literal out of range: " + string(lex))
		}
		t := s.tok(KindHex64, f)
		t.Uint64 = v
		return t
	}
}

// integerToken applies the promotion policy for plain decimal literals:
// leading-zero (octal-shaped) literals always truncate to 32 bits, values
// past INT_MAX but within UINT_MAX are demoted to a truncated 32-bit
// INTEGER, and anything wider becomes INTEGER64.
func (s *Scanner) integerToken(lex []byte, f *frame) Token {
	v, err := strconv.ParseInt(string(lex), 10, 64)
	if err != nil {
		return s.errorToken("integer literal out of range: " + string(lex))
	}
	t := s.tok(KindInteger, f)
	switch {
	case lex[0] == '0' && len(lex) >= 2:
		t.Int = int32(v)
	case v >= math.MinInt32 && v <= math.MaxInt32:
		t.Int = int32(v)
	case v > math.MaxInt32 && v <= math.MaxUint32:
		t.Int = int32(uint32(v))
	default:
		t.Kind = KindInteger64
		t.Int64 = v
	}
	return t
}

func (s *Scanner) floatToken(lex []byte, f *frame) Token {
	t := s.tok(KindFloat, f)
	if !mantissaHasDigits(lex) {
		return t
	}
	v, err := strconv.ParseFloat(string(lex), 64)
	if err != nil {
		return s.errorToken("malformed float: " + string(lex))
	}
	t.Float = v
	return t
}

// The float pattern admits lexemes like "." whose mantissa holds no
// digits at all; those scan as 0.0.
func mantissaHasDigits(lex []byte) bool {
	for _, c := range lex {
		if c == 'e' || c == 'E' {
			return false
		}
		if isDigit(c) {
			return true
		}
	}
	return false
}

func trimSuffixL(lex []byte) []byte {
	for len(lex) > 0 && lex[len(lex)-1] == 'L' {
		lex = lex[:len(lex)-1]
	}
	return lex
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
