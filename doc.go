// Package envtree turns a flat set of environment-style key/value pairs
// into a nested, typed tree of objects, arrays, and scalars.
//
// Keys encode hierarchy through a separator (default "__"): the variable
// PREFIX__STRUCT__INT=1 becomes {"struct": {"int": 1}}, and purely numeric
// segments address array slots, so PREFIX__LIST__0=a yields {"list": ["a"]}.
// Values are coerced in a fixed trial order: integer, then float, then
// boolean, then string.
//
// A Parser is configured with functional options and merges every surviving
// pair into one shared tree, optionally seeded from caller-supplied
// defaults:
//
//	parser := envtree.New(
//		envtree.WithPrefix("APP__"),
//		envtree.WithSeed(envtree.Object{"port": int64(8080)}),
//	)
//	tree, err := parser.ParseEnviron()
//
// The resulting Object marshals directly with encoding/json.
package envtree
