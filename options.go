package jsontree

import (
	"github.com/viant/tagly/format/text"
)

// DuplicateKeyPolicy controls duplicate object key behavior.
type DuplicateKeyPolicy int

const (
	LastWins DuplicateKeyPolicy = iota
	ErrorOnDuplicate
)

// DefaultMaxDepth bounds nesting depth unless overridden with WithMaxDepth.
const DefaultMaxDepth = 300

// Options holds resolved parse configuration.
type Options struct {
	MaxDepth           int
	DuplicateKeyPolicy DuplicateKeyPolicy
	KeyCaseFormat      text.CaseFormat
	Hooks              ScannerHooks
}

// Option mutates parse Options.
type Option interface {
	apply(*Options)
}

type optionFn func(*Options)

func (o optionFn) apply(opts *Options) { o(opts) }

// WithMaxDepth overrides the nesting depth ceiling.
func WithMaxDepth(maxDepth int) Option {
	return optionFn(func(o *Options) { o.MaxDepth = maxDepth })
}

// WithDuplicateKeyPolicy overrides duplicate object key handling.
func WithDuplicateKeyPolicy(policy DuplicateKeyPolicy) Option {
	return optionFn(func(o *Options) { o.DuplicateKeyPolicy = policy })
}

// WithKeyCaseFormat normalizes object keys to the supplied case format while
// parsing, so lookups can use one canonical key spelling.
func WithKeyCaseFormat(caseFormat text.CaseFormat) Option {
	return optionFn(func(o *Options) { o.KeyCaseFormat = caseFormat })
}

// WithScannerHooks overrides the default block-scan hooks.
func WithScannerHooks(hooks ScannerHooks) Option {
	return optionFn(func(o *Options) { o.Hooks = hooks })
}

var defaultOptions = &Options{MaxDepth: DefaultMaxDepth, Hooks: blockScannerHooks{}}

func resolveOptions(opts []Option) *Options {
	if len(opts) == 0 {
		return defaultOptions
	}
	resolved := &Options{MaxDepth: DefaultMaxDepth, Hooks: blockScannerHooks{}}
	for _, opt := range opts {
		opt.apply(resolved)
	}
	if resolved.MaxDepth <= 0 {
		resolved.MaxDepth = DefaultMaxDepth
	}
	if resolved.Hooks == nil {
		resolved.Hooks = blockScannerHooks{}
	}
	return resolved
}

func caseFormatKey(caseFormat text.CaseFormat, key string) string {
	src := text.DetectCaseFormat(key)
	if !src.IsDefined() {
		return key
	}
	return src.Format(key, caseFormat)
}
