package markup

import "strings"

// Tokenize parses s in a single left-to-right pass.
//
// Pending text is flushed as a Text token (possibly empty) before every
// command and gap, and once more at the end of input, so the result always
// ends with a Text token. An unterminated command consumes the rest of the
// input.
func Tokenize(s string) []Token {
	var (
		tokens []Token
		text   strings.Builder
	)
	flush := func() {
		tokens = append(tokens, Text{S: text.String()})
		text.Reset()
	}

	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		c := rs[i]
		switch {
		case c == '^':
			flush()
			var name, args string
			name, i = readUntil(rs, i+1, '(')
			args, i = readUntil(rs, i+1, ')')
			if tok, ok := command(name, args); ok {
				tokens = append(tokens, tok)
			}
		default:
			if w, ok := GapWidth(c); ok {
				flush()
				tokens = append(tokens, Gap{Width: w})
				continue
			}
			text.WriteRune(c)
		}
	}
	flush()
	return tokens
}

// readUntil collects runes from start up to (not including) stop. It returns
// the collected text and the index of stop, or len(rs) when stop is absent.
func readUntil(rs []rune, start int, stop rune) (string, int) {
	if start > len(rs) {
		return "", len(rs)
	}
	for j := start; j < len(rs); j++ {
		if rs[j] == stop {
			return string(rs[start:j]), j
		}
	}
	return string(rs[start:]), len(rs)
}

// command maps a markup command to a token. Unknown commands yield no token.
func command(name, args string) (Token, bool) {
	switch name {
	case "i":
		path, _, _ := strings.Cut(args, ",")
		return Image{Path: path}, true
	case "low":
		return Foreground{Pen: PenLow}, true
	case "norm":
		return Foreground{Pen: PenNormal}, true
	}
	return nil, false
}
