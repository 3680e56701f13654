package config

import (
	"errors"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when an Fx module is created without a name.
var ErrEmptyName = errors.New("module name cannot be empty")

// NewModule creates an Fx module that provides the process environment as
// the pair Source. Combine it with fx.Provide(config.Provider(...)) to
// inject decoded configuration structures into the graph; supply another
// Source implementation instead of this module to read pairs from a file
// or a map.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				NewEnvironSource,
				fx.As(new(Source)),
			),
		),
	)
}
