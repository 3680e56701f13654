package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/0xalexb/envtree"

	"dario.cat/mergo"
	"github.com/goccy/go-yaml"
)

var errSeedNotObject = errors.New("seed document must be an object")

// loadSeeds reads JSON or YAML seed files and merges them into a single
// starting tree. Files are applied in order, later files overriding
// earlier ones.
func loadSeeds(files []string) (envtree.Object, error) {
	merged := envtree.Object{}

	for _, file := range files {
		seed, err := loadSeed(file)
		if err != nil {
			return nil, err
		}

		err = mergo.Merge(&merged, seed, mergo.WithOverride)
		if err != nil {
			return nil, fmt.Errorf("merging seed %q: %w", file, err)
		}
	}

	return merged, nil
}

func loadSeed(file string) (envtree.Object, error) {
	data, err := os.ReadFile(filepath.Clean(file))
	if err != nil {
		return nil, fmt.Errorf("reading seed %q: %w", file, err)
	}

	var value envtree.Value

	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		value, err = envtree.FromYAML(data)
	default:
		value, err = envtree.FromJSON(data)
	}

	if err != nil {
		return nil, fmt.Errorf("decoding seed %q: %w", file, err)
	}

	object, isObject := value.(envtree.Object)
	if !isObject {
		return nil, fmt.Errorf("%w: %q", errSeedNotObject, file)
	}

	return object, nil
}

// writeTree serializes the tree to w in the requested format.
func writeTree(w io.Writer, tree envtree.Object, format string, pretty bool) error {
	data, err := marshalTree(tree, format, pretty)
	if err != nil {
		return err
	}

	_, err = w.Write(append(data, '\n'))
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

func marshalTree(tree envtree.Object, format string, pretty bool) ([]byte, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		data, err := yaml.Marshal(tree)
		if err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}

		return data, nil
	case "json", "":
		var (
			data []byte
			err  error
		)

		if pretty {
			data, err = json.MarshalIndent(tree, "", "  ")
		} else {
			data, err = json.Marshal(tree)
		}

		if err != nil {
			return nil, fmt.Errorf("encoding json: %w", err)
		}

		return data, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
