// Command envtree reads the process environment and prints it as a nested
// JSON or YAML tree, decoding hierarchy from separator-delimited key names.
//
//	APP__SERVER__PORT=8080 envtree --prefix APP__
//	{"server":{"port":8080}}
package main

import (
	"log/slog"
	"os"

	"github.com/0xalexb/envtree"
	"github.com/0xalexb/envtree/logging"

	"github.com/urfave/cli/v2"
)

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		slog.Error("envtree failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "envtree",
		Usage:   "convert environment variables into a nested JSON or YAML tree",
		Version: envtree.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "prefix",
				Aliases: []string{"p"},
				Usage:   "only parse variables starting with `PREFIX` (stripped from keys)",
			},
			&cli.StringFlag{
				Name:    "separator",
				Aliases: []string{"s"},
				Value:   envtree.DefaultSeparator,
				Usage:   "separator decoding hierarchy from key names",
			},
			&cli.StringSliceFlag{
				Name:    "include",
				Aliases: []string{"i"},
				Usage:   "regex allow-list, evaluated against the original key (repeatable)",
			},
			&cli.StringSliceFlag{
				Name:    "exclude",
				Aliases: []string{"e"},
				Usage:   "regex deny-list, evaluated against the original key (repeatable)",
			},
			&cli.StringSliceFlag{
				Name:  "seed",
				Usage: "JSON or YAML `FILE` with defaults to merge into (repeatable, later files win)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "json",
				Usage:   "output format: json or yaml",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "indent JSON output",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "warn",
				Usage: "log level: debug, info, warn, error",
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	logger := logging.NewLogger(logging.LoggerConfig{Level: c.String("log-level")}, c.App.ErrWriter)
	slog.SetDefault(logger)

	options, err := parserOptions(c, logger)
	if err != nil {
		return err
	}

	tree, err := envtree.New(options...).ParseEnviron()
	if err != nil {
		return err
	}

	return writeTree(c.App.Writer, tree, c.String("format"), c.Bool("pretty"))
}
