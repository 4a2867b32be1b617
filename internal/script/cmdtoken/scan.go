package cmdtoken

import (
	"strconv"
	"strings"
)

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// cSpace matches the white space accepted before a number by the C scanf
// family.
func cSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// scanInt reads a leading integer the way the level format always has: a
// "0x" prefix starts lowercase hexadecimal, anything else is a decimal prefix
// scan. It returns the value, the number of bytes consumed and whether any
// digit was seen. Without digits the value is 0.
func scanInt(s string) (n int, used int, ok bool) {
	if strings.HasPrefix(s, "0x") {
		i := 2
		for ; i < len(s); i++ {
			c := s[i]
			switch {
			case isDigit(c):
				n = n*16 + int(c-'0')
			case c >= 'a' && c <= 'f':
				n = n*16 + int(c-'a') + 10
			default:
				return n, i, i > 2
			}
		}
		return n, i, i > 2
	}

	i := 0
	for i < len(s) && cSpace(s[i]) {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		n = n*10 + int(s[i]-'0')
		i++
	}
	if i == start {
		return 0, 0, false
	}
	if neg {
		n = -n
	}
	return n, i, true
}

// scanFloat reads a leading decimal floating point number with an optional
// exponent. Without a mantissa digit the value is 0.
func scanFloat(s string) (f float64, used int, ok bool) {
	i := 0
	for i < len(s) && cSpace(s[i]) {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, 0, false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	// The prefix is well formed; out of range values come back as ±Inf or 0.
	f, _ = strconv.ParseFloat(s[start:i], 64)
	return f, i, true
}

// scanString reads a quoted argument. "" inside the quotes is one literal
// quote. closed is false when the closing quote is missing; the text up to
// the end of s is still returned.
func scanString(s string) (text string, quoted, closed bool) {
	if !strings.HasPrefix(s, `"`) {
		return "", false, false
	}
	s = s[1:]
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			if i+1 < len(s) && s[i+1] == '"' {
				b.WriteByte('"')
				i++
				continue
			}
			return b.String(), true, true
		}
		b.WriteByte(s[i])
	}
	return b.String(), true, false
}
