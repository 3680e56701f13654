package envtree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// Value is a single node of the result tree. The dynamic type is always one
// of: nil, bool, int64, float64, string, Object, or Array. Any other type
// surfacing at a merge decision point is treated as a shape conflict.
type Value = any

// Object is an object node: a mapping from lowercase field names to values.
type Object map[string]Value

// Array is an array node: a dense slice of values, index-addressed. Slots
// assigned out of order are backfilled with nil.
type Array []Value

// Pair is one raw key/value variable as sourced externally, for example one
// entry of the process environment.
type Pair struct {
	Key   string
	Value string
}

// Environ returns the current process environment as pairs. Entries without
// a "=" are skipped.
func Environ() []Pair {
	return SplitPairs(os.Environ())
}

// SplitPairs converts "KEY=VALUE" strings into pairs, splitting on the
// first "=". Entries without a "=" are skipped.
func SplitPairs(environ []string) []Pair {
	pairs := make([]Pair, 0, len(environ))

	for _, entry := range environ {
		key, value, found := strings.Cut(entry, "=")
		if !found {
			continue
		}

		pairs = append(pairs, Pair{Key: key, Value: value})
	}

	return pairs
}

// Clone returns a deep copy of value. Objects and arrays are copied
// recursively; scalars are returned as-is.
func Clone(value Value) Value {
	switch node := value.(type) {
	case Object:
		cloned := make(Object, len(node))
		for key, child := range node {
			cloned[key] = Clone(child)
		}

		return cloned
	case Array:
		cloned := make(Array, len(node))
		for i, child := range node {
			cloned[i] = Clone(child)
		}

		return cloned
	default:
		return value
	}
}

// FromJSON decodes a JSON document into the closed Value variant set.
// Numbers without a fractional part are decoded as int64, everything else
// as float64, so the integer/float distinction of seed documents survives.
func FromJSON(data []byte) (Value, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw any

	err := decoder.Decode(&raw)
	if err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}

	return normalize(raw)
}

// FromYAML decodes a YAML document into the closed Value variant set by
// way of its JSON form, so numbers keep the same integer/float treatment
// as FromJSON.
func FromYAML(data []byte) (Value, error) {
	converted, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("converting yaml: %w", err)
	}

	return FromJSON(converted)
}

// normalize converts an encoding/json (or yaml) decoded document into the
// closed variant set.
func normalize(raw any) (Value, error) {
	switch node := raw.(type) {
	case nil, bool, string, int64, float64:
		return node, nil
	case int:
		return int64(node), nil
	case uint64:
		return int64(node), nil
	case json.Number:
		return normalizeNumber(node)
	case map[string]any:
		object := make(Object, len(node))

		for key, child := range node {
			normalized, err := normalize(child)
			if err != nil {
				return nil, err
			}

			object[key] = normalized
		}

		return object, nil
	case []any:
		array := make(Array, len(node))

		for i, child := range node {
			normalized, err := normalize(child)
			if err != nil {
				return nil, err
			}

			array[i] = normalized
		}

		return array, nil
	default:
		return nil, fmt.Errorf("%w: unsupported value %T", ErrShapeConflict, raw)
	}
}

func normalizeNumber(number json.Number) (Value, error) {
	integer, err := number.Int64()
	if err == nil {
		return integer, nil
	}

	float, err := number.Float64()
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidScalar, number.String())
	}

	return float, nil
}
