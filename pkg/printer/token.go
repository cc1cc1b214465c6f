package printer

// Token is one unit of emission. Plain tokens are written as-is and never
// trigger a line break. Breakable tokens carry a line-end alternate: when
// committing the primary text would overflow the break limit, the alternate
// is written (right-trimmed) and a break follows.
type Token struct {
	text      string
	atBreak   string
	breakable bool
}

// Text returns a plain token.
func Text(s string) Token {
	return Token{text: s}
}

// Breakable returns a token that may trigger a line break. primary is the
// in-line rendering, atBreak the line-end alternate used when the primary
// would overflow.
func Breakable(primary, atBreak string) Token {
	return Token{text: primary, atBreak: atBreak, breakable: true}
}
