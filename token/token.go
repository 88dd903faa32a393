// Package token defines the lexical tokens of the element-literal expression
// language.
package token

import (
	"strconv"

	jstoken "github.com/dop251/goja/token"
)

// Token is the set of lexical tokens.
type Token int

// The list of tokens.
const (
	_ Token = iota

	ILLEGAL
	EOF
	COMMENT

	STRING
	NUMBER

	PLUS      // +
	MINUS     // -
	MULTIPLY  // *
	SLASH     // /
	REMAINDER // %

	LOGICAL_AND      // &&
	LOGICAL_OR       // ||
	EQUAL            // ==
	NOT_EQUAL        // !=
	LESS             // <
	GREATER          // >
	LESS_OR_EQUAL    // <=
	GREATER_OR_EQUAL // >=
	ASSIGN           // =
	NOT              // !

	LEFT_PARENTHESIS // (
	LEFT_BRACKET     // [
	LEFT_BRACE       // {
	COMMA            // ,
	PERIOD           // .

	RIGHT_PARENTHESIS // )
	RIGHT_BRACKET     // ]
	RIGHT_BRACE       // }
	SEMICOLON         // ;
	COLON             // :
	QUESTION_MARK     // ?
	ELLIPSIS          // ...
	AT                // @

	// tokens below (and only them) are syntactically valid identifiers

	IDENTIFIER
	KEYWORD
	BOOLEAN
	NULL
)

var token2string = [...]string{
	ILLEGAL:           "ILLEGAL",
	EOF:               "EOF",
	COMMENT:           "COMMENT",
	STRING:            "STRING",
	NUMBER:            "NUMBER",
	PLUS:              "+",
	MINUS:             "-",
	MULTIPLY:          "*",
	SLASH:             "/",
	REMAINDER:         "%",
	LOGICAL_AND:       "&&",
	LOGICAL_OR:        "||",
	EQUAL:             "==",
	NOT_EQUAL:         "!=",
	LESS:              "<",
	GREATER:           ">",
	LESS_OR_EQUAL:     "<=",
	GREATER_OR_EQUAL:  ">=",
	ASSIGN:            "=",
	NOT:               "!",
	LEFT_PARENTHESIS:  "(",
	LEFT_BRACKET:      "[",
	LEFT_BRACE:        "{",
	COMMA:             ",",
	PERIOD:            ".",
	RIGHT_PARENTHESIS: ")",
	RIGHT_BRACKET:     "]",
	RIGHT_BRACE:       "}",
	SEMICOLON:         ";",
	COLON:             ":",
	QUESTION_MARK:     "?",
	ELLIPSIS:          "...",
	AT:                "@",
	IDENTIFIER:        "IDENTIFIER",
	KEYWORD:           "KEYWORD",
	BOOLEAN:           "BOOLEAN",
	NULL:              "NULL",
}

// String returns the string corresponding to the token.
// For operators, delimiters, and keywords the string is the actual
// token string (e.g., for the token PLUS, the String() is
// "+"). For all other tokens the string corresponds to the token
// name (e.g. for the token IDENTIFIER, the string is "IDENTIFIER").
func (tkn Token) String() string {
	if tkn > 0 && int(tkn) < len(token2string) {
		return token2string[tkn]
	}
	return "token(" + strconv.Itoa(int(tkn)) + ")"
}

// IsId reports whether tkn is spelled like a name: a plain identifier or a
// reserved word.
func IsId(tkn Token) bool {
	return tkn >= IDENTIFIER
}

// Lookup classifies a name spelling. Reserved words follow the JavaScript
// keyword table.
func Lookup(literal string) Token {
	switch literal {
	case "true", "false":
		return BOOLEAN
	case "null":
		return NULL
	}
	if len(literal) < 2 {
		// Keywords are longer than 1 character, avoid lookup otherwise
		return IDENTIFIER
	}
	if tkn, _ := jstoken.IsKeyword(literal); tkn != 0 {
		return KEYWORD
	}
	return IDENTIFIER
}

// Precedence returns the binary operator precedence of tkn, or 0 if tkn is
// not a binary operator.
func (tkn Token) Precedence() int {
	switch tkn {
	case LOGICAL_OR:
		return 1
	case LOGICAL_AND:
		return 2
	case EQUAL, NOT_EQUAL:
		return 3
	case LESS, GREATER, LESS_OR_EQUAL, GREATER_OR_EQUAL:
		return 4
	case PLUS, MINUS:
		return 5
	case MULTIPLY, SLASH, REMAINDER:
		return 6
	}
	return 0
}
