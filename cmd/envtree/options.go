package main

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/0xalexb/envtree"

	"github.com/urfave/cli/v2"
)

// parserOptions translates CLI flags into envtree options, compiling the
// include/exclude patterns and loading seed files at the boundary so the
// library core only ever sees compiled predicates and a ready seed tree.
func parserOptions(c *cli.Context, logger *slog.Logger) ([]envtree.Option, error) {
	options := []envtree.Option{
		envtree.WithSeparator(c.String("separator")),
		envtree.WithLogger(logger),
	}

	if prefix := c.String("prefix"); prefix != "" {
		options = append(options, envtree.WithPrefix(prefix))
	}

	include, err := compilePatterns(c.StringSlice("include"))
	if err != nil {
		return nil, fmt.Errorf("include: %w", err)
	}

	if len(include) > 0 {
		options = append(options, envtree.WithInclude(include...))
	}

	exclude, err := compilePatterns(c.StringSlice("exclude"))
	if err != nil {
		return nil, fmt.Errorf("exclude: %w", err)
	}

	if len(exclude) > 0 {
		options = append(options, envtree.WithExclude(exclude...))
	}

	if files := c.StringSlice("seed"); len(files) > 0 {
		seed, err := loadSeeds(files)
		if err != nil {
			return nil, err
		}

		options = append(options, envtree.WithSeed(seed))
	}

	return options, nil
}

func compilePatterns(patterns []string) ([]envtree.Matcher, error) {
	matchers := make([]envtree.Matcher, 0, len(patterns))

	for _, pattern := range patterns {
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compiling pattern %q: %w", pattern, err)
		}

		matchers = append(matchers, compiled)
	}

	return matchers, nil
}
