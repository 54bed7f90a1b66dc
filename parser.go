package jsontree

import (
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

// parser is a position-threaded recursive descent over a fully buffered
// document. It owns no state beyond the current parse; a fresh parser is
// built per Parse call.
type parser struct {
	data       []byte
	pos        int
	hooks      ScannerHooks
	maxDepth   int
	duplicates DuplicateKeyPolicy
	compileKey func(string) string
}

func (p *parser) skipWS() { p.pos = p.hooks.SkipWhitespace(p.data, p.pos) }

// parseDocument parses exactly one element and requires the remainder to be
// empty.
func (p *parser) parseDocument() (*Value, error) {
	v, err := p.parseElement(0)
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.data) {
		return nil, errAt(TrailingContent, p.pos)
	}
	return v, nil
}

// parseElement wraps parseValue with leading/trailing whitespace skipping;
// it is the recursive unit used for array elements and object member values.
func (p *parser) parseElement(depth int) (*Value, error) {
	p.skipWS()
	v, err := p.parseValue(depth)
	if err != nil {
		return nil, err
	}
	p.skipWS()
	return v, nil
}

func (p *parser) parseValue(depth int) (*Value, error) {
	if depth > p.maxDepth {
		return nil, errAt(NestingTooDeep, p.pos)
	}
	if p.pos >= len(p.data) {
		return nil, errAt(UnexpectedToken, p.pos)
	}
	switch c := p.data[p.pos]; {
	case c == '{':
		return p.parseObject(depth + 1)
	case c == '[':
		return p.parseArray(depth + 1)
	case c == '"':
		return p.parseString()
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	case c == 't' || c == 'f' || c == 'n':
		return p.parseLiteral()
	}
	return nil, errAt(UnexpectedToken, p.pos)
}

func (p *parser) parseObject(depth int) (*Value, error) {
	p.pos++
	obj := &Value{kind: KindObject}
	p.skipWS()
	if p.pos < len(p.data) && p.data[p.pos] == '}' {
		p.pos++
		return obj, nil
	}
	for {
		p.skipWS()
		if p.pos >= len(p.data) {
			return nil, errAt(UnterminatedObject, p.pos)
		}
		keyAt := p.pos
		key, err := p.parseStringText()
		if err != nil {
			return nil, err
		}
		if p.compileKey != nil {
			key = p.compileKey(key)
		}
		p.skipWS()
		if p.pos >= len(p.data) {
			return nil, errAt(UnterminatedObject, p.pos)
		}
		if p.data[p.pos] != ':' {
			return nil, errAt(ExpectedColon, p.pos)
		}
		p.pos++
		val, err := p.parseElement(depth)
		if err != nil {
			return nil, err
		}
		if i := obj.fieldIndex(key); i != -1 {
			if p.duplicates == ErrorOnDuplicate {
				return nil, errAt(DuplicateKey, keyAt)
			}
			obj.fields[i].Value = val
		} else {
			obj.fields = append(obj.fields, Field{Key: key, Value: val})
		}
		if p.pos >= len(p.data) {
			return nil, errAt(UnterminatedObject, p.pos)
		}
		switch p.data[p.pos] {
		case '}':
			p.pos++
			return obj, nil
		case ',':
			commaAt := p.pos
			p.pos++
			p.skipWS()
			if p.pos < len(p.data) && p.data[p.pos] == '}' {
				return nil, errAt(TrailingComma, commaAt)
			}
		default:
			return nil, errAt(UnexpectedToken, p.pos)
		}
	}
}

func (p *parser) parseArray(depth int) (*Value, error) {
	p.pos++
	arr := &Value{kind: KindArray}
	p.skipWS()
	if p.pos < len(p.data) && p.data[p.pos] == ']' {
		p.pos++
		return arr, nil
	}
	for {
		p.skipWS()
		if p.pos >= len(p.data) {
			return nil, errAt(UnterminatedArray, p.pos)
		}
		v, err := p.parseElement(depth)
		if err != nil {
			return nil, err
		}
		arr.items = append(arr.items, v)
		if p.pos >= len(p.data) {
			return nil, errAt(UnterminatedArray, p.pos)
		}
		switch p.data[p.pos] {
		case ']':
			p.pos++
			return arr, nil
		case ',':
			commaAt := p.pos
			p.pos++
			p.skipWS()
			if p.pos < len(p.data) && p.data[p.pos] == ']' {
				return nil, errAt(TrailingComma, commaAt)
			}
		default:
			return nil, errAt(UnexpectedToken, p.pos)
		}
	}
}

func (p *parser) parseString() (*Value, error) {
	s, err := p.parseStringText()
	if err != nil {
		return nil, err
	}
	return &Value{kind: KindString, text: s}, nil
}

func (p *parser) parseStringText() (string, error) {
	if p.pos >= len(p.data) || p.data[p.pos] != '"' {
		return "", errAt(UnexpectedToken, p.pos)
	}
	p.pos++
	start := p.pos
	stop := p.hooks.FindSpecial(p.data, start)
	if stop < 0 {
		p.pos = len(p.data)
		return "", errAt(UnterminatedString, len(p.data))
	}
	if p.data[stop] == '"' {
		// Copy decoded strings to avoid aliasing the caller input buffer.
		s := string(p.data[start:stop])
		p.pos = stop + 1
		return s, nil
	}
	i := stop
	for i < len(p.data) {
		switch c := p.data[i]; {
		case c == '"':
			s, err := p.unescape(p.data[start:i], start)
			if err != nil {
				return "", err
			}
			p.pos = i + 1
			return s, nil
		case c == '\\':
			i += 2
		case c < 0x20:
			return "", errAt(InvalidCharacter, i)
		default:
			i++
		}
	}
	p.pos = len(p.data)
	return "", errAt(UnterminatedString, len(p.data))
}

// unescape resolves escape sequences of a raw string body; base is the
// absolute offset of raw within the document, used for error reporting.
func (p *parser) unescape(raw []byte, base int) (string, error) {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' {
			out = append(out, c)
			continue
		}
		escapeAt := base + i
		i++
		if i >= len(raw) {
			return "", errAt(UnterminatedString, base+len(raw))
		}
		switch raw[i] {
		case '"', '\\', '/':
			out = append(out, raw[i])
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'u':
			if i+4 >= len(raw) {
				return "", errAt(InvalidEscape, escapeAt)
			}
			r, ok := parseHex4(raw[i+1 : i+5])
			if !ok {
				return "", errAt(InvalidEscape, escapeAt)
			}
			i += 4
			if utf16.IsSurrogate(r) {
				// A supplementary code point arrives as a surrogate pair.
				if i+6 >= len(raw) || raw[i+1] != '\\' || raw[i+2] != 'u' {
					return "", errAt(InvalidEscape, escapeAt)
				}
				r2, ok := parseHex4(raw[i+3 : i+7])
				if !ok {
					return "", errAt(InvalidEscape, escapeAt)
				}
				combined := utf16.DecodeRune(r, r2)
				if combined == utf8.RuneError {
					return "", errAt(InvalidEscape, escapeAt)
				}
				out = utf8.AppendRune(out, combined)
				i += 6
				continue
			}
			out = utf8.AppendRune(out, r)
		default:
			return "", errAt(InvalidEscape, escapeAt)
		}
	}
	return string(out), nil
}

func (p *parser) parseNumber() (*Value, error) {
	start := p.pos
	if p.data[p.pos] == '-' {
		p.pos++
	}
	switch {
	case p.pos < len(p.data) && p.data[p.pos] == '0':
		p.pos++
	case p.digits():
	default:
		p.pos = start
		return nil, errAt(InvalidNumber, start)
	}
	if p.pos < len(p.data) && p.data[p.pos] == '.' {
		p.pos++
		if !p.digits() {
			p.pos = start
			return nil, errAt(InvalidNumber, start)
		}
	}
	if p.pos < len(p.data) && (p.data[p.pos] == 'e' || p.data[p.pos] == 'E') {
		p.pos++
		if p.pos < len(p.data) && (p.data[p.pos] == '+' || p.data[p.pos] == '-') {
			p.pos++
		}
		if !p.digits() {
			p.pos = start
			return nil, errAt(InvalidNumber, start)
		}
	}
	// Reject run-ons such as 012, 1.2.3 or 1e5e5 as one malformed number
	// rather than leaving the junk for the caller.
	if p.pos < len(p.data) {
		switch c := p.data[p.pos]; {
		case c >= '0' && c <= '9', c == '.', c == 'e', c == 'E':
			p.pos = start
			return nil, errAt(InvalidNumber, start)
		}
	}
	f, err := strconv.ParseFloat(string(p.data[start:p.pos]), 64)
	if err != nil {
		p.pos = start
		return nil, errAt(InvalidNumber, start)
	}
	return &Value{kind: KindNumber, number: f}, nil
}

// digits consumes a run of decimal digits, reporting whether any was present.
func (p *parser) digits() bool {
	start := p.pos
	for p.pos < len(p.data) && p.data[p.pos] >= '0' && p.data[p.pos] <= '9' {
		p.pos++
	}
	return p.pos > start
}

func (p *parser) parseLiteral() (*Value, error) {
	start := p.pos
	var v *Value
	switch p.data[p.pos] {
	case 't':
		if p.match("true") {
			v = trueValue
		}
	case 'f':
		if p.match("false") {
			v = falseValue
		}
	case 'n':
		if p.match("null") {
			v = nullValue
		}
	}
	if v == nil || !p.literalBoundary() {
		p.pos = start
		return nil, errAt(InvalidLiteral, start)
	}
	return v, nil
}

func (p *parser) match(token string) bool {
	end := p.pos + len(token)
	if end > len(p.data) {
		return false
	}
	if string(p.data[p.pos:end]) != token {
		return false
	}
	p.pos = end
	return true
}

// literalBoundary rejects identifier run-ons such as truefoo or null1.
func (p *parser) literalBoundary() bool {
	if p.pos >= len(p.data) {
		return true
	}
	c := p.data[p.pos]
	if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' {
		return false
	}
	return true
}
