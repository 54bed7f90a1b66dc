// Package jsontree parses JSON documents into an immutable value tree.
// The parser is a recursive descent over a fully buffered byte slice; it
// either returns the whole tree or a *ParseError carrying the failure kind
// and byte offset, never a partial tree.
package jsontree

// Parse parses exactly one JSON document from data. Leading and trailing
// whitespace is allowed; any other leftover bytes fail with TrailingContent.
func Parse(data []byte, opts ...Option) (*Value, error) {
	options := resolveOptions(opts)
	p := &parser{
		data:       data,
		hooks:      options.Hooks,
		maxDepth:   options.MaxDepth,
		duplicates: options.DuplicateKeyPolicy,
	}
	if options.KeyCaseFormat != "" {
		caseFormat := options.KeyCaseFormat
		p.compileKey = func(key string) string { return caseFormatKey(caseFormat, key) }
	}
	return p.parseDocument()
}

// ParseString parses a document held in a string.
func ParseString(input string, opts ...Option) (*Value, error) {
	return Parse([]byte(input), opts...)
}
