package lexer

import "strings"

// ShebangLen returns the byte length of a leading "#!" line including its
// newline, the whole input if no newline follows, or 0 if there is no shebang.
func ShebangLen(input string) int {
	if !strings.HasPrefix(input, "#!") {
		return 0
	}
	if i := strings.IndexByte(input, '\n'); i >= 0 {
		return i + 1
	}
	return len(input)
}

// StripShebang removes a leading shebang line if one is present.
func StripShebang(input string) string {
	return input[ShebangLen(input):]
}
