package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/0xalexb/envtree"
)

// ErrPathIsDirectory is returned when the path provided to NewFileSource
// points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// EnvironSource supplies the current process environment.
type EnvironSource struct{}

// NewEnvironSource creates a Source backed by the process environment.
func NewEnvironSource() *EnvironSource {
	return &EnvironSource{}
}

// Pairs returns the process environment as key/value pairs.
func (*EnvironSource) Pairs() ([]envtree.Pair, error) {
	return envtree.Environ(), nil
}

// MapSource supplies pairs from a plain map, mostly useful in tests.
type MapSource map[string]string

// Pairs returns the map entries as pairs, in no particular order.
func (m MapSource) Pairs() ([]envtree.Pair, error) {
	pairs := make([]envtree.Pair, 0, len(m))
	for key, value := range m {
		pairs = append(pairs, envtree.Pair{Key: key, Value: value})
	}

	return pairs, nil
}

// FileSource supplies pairs from a dotenv-style file: one KEY=VALUE per
// line, blank lines and lines starting with # are skipped.
type FileSource struct {
	filepath string
	pairs    []envtree.Pair
}

// NewFileSource returns a constructor function that creates a file-backed
// Source. The file is read and split at construction time and cached, so
// Pairs always returns the same data. This pattern is Fx-friendly,
// allowing the DI container to control when instantiation happens.
// Construction fails if the file cannot be read or the path is a
// directory.
func NewFileSource(fpath string) func() (*FileSource, error) {
	return func() (*FileSource, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		pairs, err := splitLines(data)
		if err != nil {
			return nil, fmt.Errorf("parsing file %q: %w", cleanPath, err)
		}

		return &FileSource{filepath: cleanPath, pairs: pairs}, nil
	}
}

// Pairs returns the cached pairs read at construction time.
func (f *FileSource) Pairs() ([]envtree.Pair, error) {
	return f.pairs, nil
}

func splitLines(data []byte) ([]envtree.Pair, error) {
	var pairs []envtree.Pair

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("line %q: missing '='", line)
		}

		pairs = append(pairs, envtree.Pair{Key: strings.TrimSpace(key), Value: value})
	}

	err := scanner.Err()
	if err != nil {
		return nil, fmt.Errorf("scanning: %w", err)
	}

	return pairs, nil
}
