package jsontree

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a parse failure. The set is closed; sub-parsers
// propagate kinds unchanged, so callers can branch on the kind and the byte
// offset without unwrapping chains.
type ErrorKind int

const (
	// UnexpectedToken - no grammar alternative matches at the position.
	UnexpectedToken ErrorKind = iota
	// InvalidNumber - malformed number grammar.
	InvalidNumber
	// InvalidEscape - unknown escape, bad hex digits or a broken surrogate pair.
	InvalidEscape
	// InvalidCharacter - unescaped control byte inside a string.
	InvalidCharacter
	// InvalidLiteral - true/false/null literal mismatch.
	InvalidLiteral
	// UnterminatedString - input ended before the closing quote.
	UnterminatedString
	// UnterminatedArray - input ended before the closing bracket.
	UnterminatedArray
	// UnterminatedObject - input ended before the closing brace.
	UnterminatedObject
	// ExpectedColon - object member key not followed by ':'.
	ExpectedColon
	// TrailingComma - ',' directly before a closing ']' or '}'.
	TrailingComma
	// TrailingContent - valid document followed by non-whitespace bytes.
	TrailingContent
	// NestingTooDeep - nesting exceeds the configured max depth.
	NestingTooDeep
	// DuplicateKey - repeated object key under ErrorOnDuplicate policy.
	DuplicateKey
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case InvalidNumber:
		return "invalid number"
	case InvalidEscape:
		return "invalid escape"
	case InvalidCharacter:
		return "invalid character"
	case InvalidLiteral:
		return "invalid literal"
	case UnterminatedString:
		return "unterminated string"
	case UnterminatedArray:
		return "unterminated array"
	case UnterminatedObject:
		return "unterminated object"
	case ExpectedColon:
		return "expected ':'"
	case TrailingComma:
		return "trailing comma"
	case TrailingContent:
		return "trailing content"
	case NestingTooDeep:
		return "nesting too deep"
	case DuplicateKey:
		return "duplicate key"
	}
	return "unknown error"
}

// ParseError reports a parse failure kind and the byte offset at which it
// occurred. The first failure aborts the whole parse; nothing is recovered.
type ParseError struct {
	Kind   ErrorKind
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v at %d", e.Kind, e.Offset)
}

func errAt(kind ErrorKind, offset int) error {
	return &ParseError{Kind: kind, Offset: offset}
}

// KindOf extracts the error kind from a Parse failure.
func KindOf(err error) (ErrorKind, bool) {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Kind, true
	}
	return 0, false
}
