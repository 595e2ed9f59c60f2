// Package lexer turns Cantte source text into a stream of tokens, one at
// a time, on demand. It never fails: unrecognized characters produce
// ILLEGAL tokens and exhausted input produces EOF tokens forever after.
package lexer

import (
	"unicode"

	"github.com/akashmaji946/cantte/token"
)

// Lexer is a single-pass cursor over the source text. It is rune-based
// rather than byte-based so that the identifier alphabet can include
// 'ñ'/'Ñ' alongside ASCII letters without special-casing multi-byte
// UTF-8 sequences at every call site.
type Lexer struct {
	input        []rune
	position     int  // index of ch
	readPosition int  // index of the next rune to read
	ch           rune // current rune under examination, 0 at end of input
}

// New creates a Lexer positioned at the first rune of source.
func New(source string) *Lexer {
	l := &Lexer{input: []rune(source)}
	l.readChar()
	return l
}

// readChar advances the cursor by one rune, leaving ch at 0 once the
// input is exhausted.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

// peekChar looks one rune ahead without consuming it.
func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// NextToken scans and returns the next token in the source, advancing
// the cursor past it.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	var tok token.Token

	switch {
	case l.ch == '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.New(token.EQUAL, "==")
		} else {
			tok = token.New(token.ASSIGN, "=")
		}
	case l.ch == '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.New(token.NOT_EQUAL, "!=")
		} else {
			tok = token.New(token.NEGATION, "!")
		}
	case l.ch == '+':
		tok = token.New(token.PLUS, "+")
	case l.ch == '-':
		tok = token.New(token.MINUS, "-")
	case l.ch == '*':
		tok = token.New(token.MULTIPLICATION, "*")
	case l.ch == '/':
		tok = token.New(token.DIVISION, "/")
	case l.ch == '<':
		tok = token.New(token.LESS_THAN, "<")
	case l.ch == '>':
		tok = token.New(token.GREATER_THAN, ">")
	case l.ch == ',':
		tok = token.New(token.COMMA, ",")
	case l.ch == ';':
		tok = token.New(token.SEMICOLON, ";")
	case l.ch == '(':
		tok = token.New(token.LPAREN, "(")
	case l.ch == ')':
		tok = token.New(token.RPAREN, ")")
	case l.ch == '{':
		tok = token.New(token.LBRACE, "{")
	case l.ch == '}':
		tok = token.New(token.RBRACE, "}")
	case l.ch == '"' || l.ch == '\'':
		return l.readString(l.ch)
	case l.ch == 0:
		tok = token.New(token.EOF, "")
	default:
		if isLetter(l.ch) {
			return l.readIdentifier()
		} else if isDigit(l.ch) {
			return l.readNumber()
		}
		tok = token.New(token.ILLEGAL, string(l.ch))
	}

	l.readChar()
	return tok
}

// skipWhitespace consumes spaces, tabs, newlines, and carriage returns.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readIdentifier consumes a letter-led run of letters and digits and
// classifies it as a keyword or a plain identifier. No character is
// read past the run's end: NextToken's trailing l.readChar() is skipped
// by returning directly, matching the single-char cases above which do
// advance once more.
func (l *Lexer) readIdentifier() token.Token {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	literal := string(l.input[start:l.position])
	return token.New(token.LookupIdentifier(literal), literal)
}

// readNumber consumes a non-negative run of decimal digits.
func (l *Lexer) readNumber() token.Token {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	literal := string(l.input[start:l.position])
	return token.New(token.INT, literal)
}

// readString consumes everything up to, and including, a matching
// closing quote. There are no escape sequences; the delimiters
// (' or ") must match. The literal excludes both delimiters.
func (l *Lexer) readString(quote rune) token.Token {
	l.readChar() // move past the opening quote
	start := l.position
	for l.ch != quote && l.ch != 0 {
		l.readChar()
	}
	literal := string(l.input[start:l.position])
	l.readChar() // move past the closing quote (or EOF, harmlessly)
	return token.New(token.STRING, literal)
}

// isLetter reports whether r may start or continue an identifier:
// ASCII letters, underscore, or 'ñ'/'Ñ'.
func isLetter(r rune) bool {
	return unicode.IsLetter(r) && (r <= unicode.MaxASCII || r == 'ñ' || r == 'Ñ') || r == '_'
}

// isDigit reports whether r is an ASCII decimal digit.
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
