// Package config turns environment-style variables into typed
// configuration structures, using the envtree engine to decode hierarchy
// from key names.
//
// A Source supplies raw key/value pairs, Provider parses them into a tree
// and decodes the tree into a target struct, and the optional Defaulter
// and Validator interfaces let the target participate in its own
// initialization. Provider returns an Fx-friendly constructor.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/0xalexb/envtree"
)

// Source supplies raw key/value pairs for parsing.
type Source interface {
	Pairs() ([]envtree.Pair, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in
// configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that parses pairs from a Source into the
// target structure: the pairs are merged into a tree with the given
// envtree options, the tree is decoded into target via its JSON form, and
// the target's SetDefaults and Validate hooks run when implemented.
func Provider[T any](target *T, opts ...envtree.Option) func(Source) (*T, error) {
	return func(source Source) (*T, error) {
		pairs, err := source.Pairs()
		if err != nil {
			return nil, fmt.Errorf("sourcing pairs error: %w", err)
		}

		tree, err := envtree.New(opts...).Parse(pairs)
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		err = decode(tree, target)
		if err != nil {
			return nil, fmt.Errorf("decoding error: %w", err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied")
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}

// decode maps a tree onto the target through its JSON representation, so
// the target's json struct tags decide the field mapping.
func decode(tree envtree.Object, target any) error {
	data, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("encoding tree: %w", err)
	}

	err = json.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("unmarshaling tree: %w", err)
	}

	return nil
}
