package envtree

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// coerce converts a raw variable value into a typed scalar. Trial order,
// first success wins: signed 64-bit integer, IEEE double, boolean literal,
// string. The boolean literals are exactly "true" and "false"; everything
// else falls through to a string with its original case preserved.
func coerce(raw string) (Value, error) {
	integer, err := strconv.ParseInt(raw, 10, 64)
	if err == nil {
		return integer, nil
	}

	if plainNumber(raw) {
		float, err := strconv.ParseFloat(raw, 64)
		if err == nil {
			if math.IsNaN(float) || math.IsInf(float, 0) {
				return nil, fmt.Errorf("%w: %q has no numeric representation", ErrInvalidScalar, raw)
			}

			return float, nil
		}
	}

	switch raw {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}

	return raw, nil
}

// plainNumber reports whether raw is written in plain decimal notation.
// ParseFloat also accepts Go literal conveniences, digit-separating
// underscores and hex floats, which are not numbers to this parser and
// must stay strings.
func plainNumber(raw string) bool {
	if strings.Contains(raw, "_") {
		return false
	}

	unsigned := strings.TrimLeft(raw, "+-")

	return !strings.HasPrefix(unsigned, "0x") && !strings.HasPrefix(unsigned, "0X")
}
