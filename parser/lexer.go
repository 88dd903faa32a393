package parser

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/liuxd6825/elemx/ast"
	"github.com/liuxd6825/elemx/token"
)

func isSpace(c rune) bool {
	return unicode.IsSpace(c) || c == '\uFEFF'
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isIdentifierStart(c rune) bool {
	return c == '$' || c == '_' || unicode.IsLetter(c)
}

func isIdentifierPart(c rune) bool {
	return isIdentifierStart(c) || unicode.IsDigit(c)
}

func (p *Parser) at(i int) byte {
	if i < len(p.src) {
		return p.src[i]
	}
	return 0
}

// scanToken skips blanks and comments from the read offset and lexes one
// token. In body mode names may contain interior hyphens.
func (p *Parser) scanToken(body bool) {
	start := p.skipSpaceAndComments()
	tkn, literal, value, end := p.scan(start, body)
	p.token = tkn
	p.literal = literal
	p.value = value
	p.idx = p.idxOf(start)
	p.end = p.idxOf(end)
	p.offset = end
}

// skipSpaceAndComments returns the offset of the next token. Comments are
// recorded unless the parser is looking ahead. An unterminated block comment
// is left in place for scan to reject.
func (p *Parser) skipSpaceAndComments() int {
	i := p.offset
	for i < len(p.src) {
		c, size := utf8.DecodeRuneInString(p.src[i:])
		switch {
		case isSpace(c):
			i += size
		case c == '/' && p.at(i+1) == '/':
			end := strings.IndexAny(p.src[i:], "\n\r")
			if end < 0 {
				end = len(p.src)
			} else {
				end += i
			}
			p.recordComment(i, end, p.src[i+2:end], false)
			i = end
		case c == '/' && p.at(i+1) == '*':
			end := strings.Index(p.src[i+2:], "*/")
			if end < 0 {
				return i
			}
			end += i + 2
			p.recordComment(i, end+2, p.src[i+2:end], true)
			i = end + 2
		default:
			return i
		}
	}
	return i
}

func (p *Parser) recordComment(start, end int, text string, block bool) {
	if p.lookahead {
		return
	}
	comment := &ast.Comment{
		Span:  p.StartNodeAt(p.idxOf(start)),
		Text:  text,
		Block: block,
	}
	p.FinishNodeAt(&comment.Span, p.idxOf(end))
	p.comments = append(p.comments, comment)
}

// scan lexes the token starting at offset start and returns it with its end
// offset.
func (p *Parser) scan(start int, body bool) (tkn token.Token, literal, value string, end int) {
	if start >= len(p.src) {
		return token.EOF, "", "", start
	}
	c, size := utf8.DecodeRuneInString(p.src[start:])
	switch {
	case isIdentifierStart(c):
		end = p.scanIdentifier(start, body)
		literal = p.src[start:end]
		return token.Lookup(literal), literal, "", end
	case isDigit(c), c == '.' && isDigit(rune(p.at(start+1))):
		end = p.scanNumber(start)
		return token.NUMBER, p.src[start:end], "", end
	case c == '"', c == '\'':
		var ok bool
		value, end, ok = p.scanString(start)
		if !ok {
			return token.ILLEGAL, p.src[start:end], "", end
		}
		return token.STRING, p.src[start:end], value, end
	}

	end = start + size
	tkn = token.ILLEGAL
	next := p.at(start + 1)
	switch c {
	case '+':
		tkn = token.PLUS
	case '-':
		tkn = token.MINUS
	case '*':
		tkn = token.MULTIPLY
	case '/':
		if next == '*' {
			// unterminated comment
			end = len(p.src)
		} else {
			tkn = token.SLASH
		}
	case '%':
		tkn = token.REMAINDER
	case '&':
		if next == '&' {
			tkn, end = token.LOGICAL_AND, end+1
		}
	case '|':
		if next == '|' {
			tkn, end = token.LOGICAL_OR, end+1
		}
	case '=':
		tkn = token.ASSIGN
		if next == '=' {
			tkn, end = token.EQUAL, end+1
			if p.at(end) == '=' {
				end++
			}
		}
	case '!':
		tkn = token.NOT
		if next == '=' {
			tkn, end = token.NOT_EQUAL, end+1
			if p.at(end) == '=' {
				end++
			}
		}
	case '<':
		tkn = token.LESS
		if next == '=' {
			tkn, end = token.LESS_OR_EQUAL, end+1
		}
	case '>':
		tkn = token.GREATER
		if next == '=' {
			tkn, end = token.GREATER_OR_EQUAL, end+1
		}
	case '(':
		tkn = token.LEFT_PARENTHESIS
	case ')':
		tkn = token.RIGHT_PARENTHESIS
	case '[':
		tkn = token.LEFT_BRACKET
	case ']':
		tkn = token.RIGHT_BRACKET
	case '{':
		tkn = token.LEFT_BRACE
	case '}':
		tkn = token.RIGHT_BRACE
	case ',':
		tkn = token.COMMA
	case ';':
		tkn = token.SEMICOLON
	case ':':
		tkn = token.COLON
	case '?':
		tkn = token.QUESTION_MARK
	case '@':
		tkn = token.AT
	case '.':
		tkn = token.PERIOD
		if next == '.' && p.at(start+2) == '.' {
			tkn, end = token.ELLIPSIS, start+3
		}
	}
	return tkn, p.src[start:end], "", end
}

func (p *Parser) scanIdentifier(start int, body bool) int {
	i := start
	for i < len(p.src) {
		c, size := utf8.DecodeRuneInString(p.src[i:])
		if isIdentifierPart(c) {
			i += size
			continue
		}
		if body && c == '-' && i > start {
			if n, _ := utf8.DecodeRuneInString(p.src[i+1:]); isIdentifierPart(n) {
				i++
				continue
			}
		}
		break
	}
	return i
}

func (p *Parser) scanNumber(start int) int {
	i := start
	digits := func() {
		for isDigit(rune(p.at(i))) {
			i++
		}
	}
	digits()
	if p.at(i) == '.' && p.at(i+1) != '.' {
		i++
		digits()
	}
	if c := p.at(i); c == 'e' || c == 'E' {
		j := i + 1
		if s := p.at(j); s == '+' || s == '-' {
			j++
		}
		if isDigit(rune(p.at(j))) {
			i = j
			digits()
		}
	}
	return i
}

// scanString decodes the quoted string at start. It reports false, with the
// offset where decoding stopped, for an unterminated literal or a malformed
// escape.
func (p *Parser) scanString(start int) (string, int, bool) {
	quote := p.src[start]
	var b strings.Builder
	i := start + 1
	for i < len(p.src) {
		c := p.src[i]
		switch c {
		case quote:
			return b.String(), i + 1, true
		case '\n', '\r':
			return "", i, false
		case '\\':
		default:
			b.WriteByte(c)
			i++
			continue
		}

		i++
		if i >= len(p.src) {
			return "", i, false
		}
		esc := p.src[i]
		i++
		switch esc {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case '\n':
		case '\r':
			if p.at(i) == '\n' {
				i++
			}
		case 'x':
			r, ok := p.hex(i, 2)
			if !ok {
				return "", i, false
			}
			b.WriteRune(r)
			i += 2
		case 'u':
			if p.at(i) == '{' {
				end := strings.IndexByte(p.src[i:], '}')
				if end < 2 {
					return "", i, false
				}
				r, ok := p.hex(i+1, end-1)
				if !ok || r > unicode.MaxRune {
					return "", i, false
				}
				b.WriteRune(r)
				i += end + 1
				break
			}
			r, ok := p.hex(i, 4)
			if !ok {
				return "", i, false
			}
			b.WriteRune(r)
			i += 4
		default:
			b.WriteByte(esc)
		}
	}
	return "", i, false
}

func (p *Parser) hex(start, n int) (rune, bool) {
	if start+n > len(p.src) {
		return 0, false
	}
	v, err := strconv.ParseUint(p.src[start:start+n], 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}
