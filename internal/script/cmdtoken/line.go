package cmdtoken

import "strings"

// SkipSpace drops leading ASCII spaces. Tabs and newlines are kept.
func SkipSpace(s string) string {
	return strings.TrimLeft(s, " ")
}

// wordLen is the length of the leading run of s up to a space, tab or
// newline.
func wordLen(s string) int {
	if i := strings.IndexAny(s, " \t\n"); i >= 0 {
		return i
	}
	return len(s)
}

// GetCmd returns the command word of line. It is empty for a blank line.
func GetCmd(line string) string {
	line = SkipSpace(line)
	return line[:wordLen(line)]
}

// Cmd reports whether line, after leading spaces, is exactly token followed
// by a space, tab, newline or the end of the line. "Home2" does not match
// "Home", neither does "Home;1".
func Cmd(line, token string) bool {
	line = SkipSpace(line)
	if !strings.HasPrefix(line, token) {
		return false
	}
	return wordLen(line) == len(token)
}

// SearchOp returns the cursor just after the first " op=" in line, or ""
// when the operator is absent.
func SearchOp(line, op string) string {
	key := " " + op + "="
	i := strings.Index(line, key)
	if i < 0 {
		return ""
	}
	return line[i+len(key):]
}

// SearchArg skips rank semicolons from cursor and returns the rest with
// leading spaces dropped. An '=' or the end of the cursor met before the
// rank-th semicolon yields "", so the arguments of one operator never run
// into the next one.
func SearchArg(cursor string, rank int) string {
	for i := 0; i < rank; i++ {
		j := strings.IndexAny(cursor, ";=")
		if j < 0 || cursor[j] == '=' {
			return ""
		}
		cursor = cursor[j+1:]
	}
	return SkipSpace(cursor)
}

// argToken is the unquoted argument at the start of cursor.
func argToken(cursor string) string {
	if i := strings.IndexAny(cursor, " \t\n;"); i >= 0 {
		return cursor[:i]
	}
	return cursor
}
