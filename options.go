package envtree

import "log/slog"

// Option defines a function type for applying configuration options to a
// Parser.
type Option func(*Parser)

// WithPrefix restricts parsing to keys starting with prefix. The prefix is
// stripped from keys before hierarchy decoding.
func WithPrefix(prefix string) Option {
	return func(p *Parser) {
		p.prefix = prefix
	}
}

// WithSeparator sets the separator used to decode hierarchy from key
// names. Defaults to DefaultSeparator.
func WithSeparator(separator string) Option {
	return func(p *Parser) {
		p.separator = separator
	}
}

// WithInclude adds allow-list predicates. When at least one predicate is
// configured, a key must match one of them to be parsed. Predicates are
// evaluated against the original key, before prefix stripping.
func WithInclude(matchers ...Matcher) Option {
	return func(p *Parser) {
		p.include = append(p.include, matchers...)
	}
}

// WithExclude adds deny-list predicates. A key matching any of them is
// dropped, even when it also matches an include predicate. Predicates are
// evaluated against the original key, before prefix stripping.
func WithExclude(matchers ...Matcher) Option {
	return func(p *Parser) {
		p.exclude = append(p.exclude, matchers...)
	}
}

// WithSeed sets the starting tree that parsed variables are merged into.
// The seed is deep-copied at the start of every parse, so the caller's
// value is never mutated.
func WithSeed(seed Object) Option {
	return func(p *Parser) {
		p.seed = seed
	}
}

// WithLogger sets the logger used for debug output during filtering and
// ordering. Defaults to a discarding logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}
