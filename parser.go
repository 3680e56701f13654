package envtree

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
)

// DefaultSeparator is the separator used to decode hierarchy from key
// names when none is configured.
const DefaultSeparator = "__"

// Matcher reports whether a key matches a compiled pattern. It is
// satisfied by *regexp.Regexp; compiling patterns is the caller's concern.
type Matcher interface {
	MatchString(s string) bool
}

// Parser converts flat key/value pairs into a nested tree. The zero value
// is not usable; construct one with New.
type Parser struct {
	prefix    string
	separator string
	include   []Matcher
	exclude   []Matcher
	seed      Object
	logger    *slog.Logger
}

// New creates a Parser with the given options applied over the defaults:
// no prefix, separator "__", no filters, an empty seed tree, and a
// discarding logger.
func New(opts ...Option) *Parser {
	parser := &Parser{
		separator: DefaultSeparator,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, apply := range opts {
		apply(parser)
	}

	return parser
}

// ParseEnviron parses the current process environment.
func (p *Parser) ParseEnviron() (Object, error) {
	return p.Parse(Environ())
}

// ParseMap parses pairs given as a map. Map iteration order does not
// matter; pairs are ordered deterministically before application.
func (p *Parser) ParseMap(vars map[string]string) (Object, error) {
	pairs := make([]Pair, 0, len(vars))
	for key, value := range vars {
		pairs = append(pairs, Pair{Key: key, Value: value})
	}

	return p.Parse(pairs)
}

// Parse filters, orders, and merges the pairs into one tree.
//
// A pair survives filtering when its key starts with the configured prefix
// (which is then stripped) and passes the include/exclude predicates,
// evaluated against the original prefixed key: the include list, if
// non-empty, must match at least once, and the exclude list must not match
// at all. Surviving pairs are applied in descending lexicographic key
// order so that more specific keys build their structure before shorter
// ancestor keys merge into it.
//
// The tree starts as a deep copy of the configured seed (or an empty
// object) and is returned on success. The first fatal error aborts the
// parse; no partial tree is returned.
func (p *Parser) Parse(pairs []Pair) (Object, error) {
	surviving, err := p.preprocess(pairs)
	if err != nil {
		return nil, err
	}

	tree, _ := Clone(Value(p.seed)).(Object)
	if tree == nil {
		tree = Object{}
	}

	for _, pair := range surviving {
		err := p.apply(tree, pair)
		if err != nil {
			return nil, fmt.Errorf("applying %q: %w", pair.Key, err)
		}
	}

	return tree, nil
}

func (p *Parser) apply(tree Object, pair Pair) error {
	path, err := decodePath(pair.Key, p.separator)
	if err != nil {
		return err
	}

	value, err := coerce(pair.Value)
	if err != nil {
		return err
	}

	return splice(tree, path, value)
}

// preprocess filters the pairs and orders the survivors deterministically.
func (p *Parser) preprocess(pairs []Pair) ([]Pair, error) {
	surviving := make([]Pair, 0, len(pairs))

	for _, pair := range pairs {
		if p.prefix != "" && !strings.HasPrefix(pair.Key, p.prefix) {
			continue
		}

		if !p.isKeyValid(pair.Key) {
			p.logger.Debug("key filtered out", slog.String("key", pair.Key))

			continue
		}

		stripped, matched := strings.CutPrefix(pair.Key, p.prefix)
		if !matched {
			return nil, fmt.Errorf("%w: key %q, prefix %q", ErrPrefixMismatch, pair.Key, p.prefix)
		}

		surviving = append(surviving, Pair{Key: stripped, Value: pair.Value})
	}

	slices.SortFunc(surviving, func(a, b Pair) int {
		return strings.Compare(b.Key, a.Key)
	})

	p.logger.Debug("variables preprocessed",
		slog.Int("total", len(pairs)),
		slog.Int("surviving", len(surviving)))

	return surviving, nil
}

// isKeyValid applies the include and exclude predicates to the original,
// still-prefixed key. An empty include list admits everything; the exclude
// list wins over include.
func (p *Parser) isKeyValid(key string) bool {
	if len(p.include) > 0 && !matchesAny(p.include, key) {
		return false
	}

	if len(p.exclude) > 0 && matchesAny(p.exclude, key) {
		return false
	}

	return true
}

func matchesAny(matchers []Matcher, key string) bool {
	for _, matcher := range matchers {
		if matcher.MatchString(key) {
			return true
		}
	}

	return false
}
