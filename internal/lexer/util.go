package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"fortio.org/safecast"
)

// ===== Работа с рунами поверх Cursor =====

// peekRune decodes the rune at the cursor. Malformed UTF-8 yields
// (utf8.RuneError, 1); EOF yields size 0.
func (lx *Lexer) peekRune() (r rune, size int) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}
	b := lx.cursor.Peek()
	if b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	return utf8.DecodeRuneInString(lx.cursor.Rest())
}

// bumpRune перемещает курсор на размер текущей руны
func (lx *Lexer) bumpRune() {
	_, sz := lx.peekRune()
	if sz == 0 {
		return
	}
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("bumpRune overflow: %w", err))
	}
	lx.cursor.Off += usz
}

// ===== Классификаторы =====

// symbolExtras are the R7RS extended identifier characters.
const symbolExtras = "!$%*+-./:<=>?@^_~"

var identContinue = []*unicode.RangeTable{
	unicode.L, unicode.Nl, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc,
	unicode.Other_ID_Start, unicode.Other_ID_Continue,
}

func isSymbolRune(r rune) bool {
	if r < utf8.RuneSelf {
		b := byte(r)
		return isDec(b) || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') ||
			strings.IndexByte(symbolExtras, b) >= 0
	}
	if r == utf8.RuneError {
		return false
	}
	return isIdentContinueRune(r)
}

// isIdentContinueRune approximates the Unicode XID_Continue property.
func isIdentContinueRune(r rune) bool {
	return unicode.In(r, identContinue...)
}

func isPatternWhiteSpace(r rune) bool {
	return unicode.Is(unicode.Pattern_White_Space, r)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }
