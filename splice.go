package envtree

import "fmt"

// cursor is a settable reference to one slot of the tree: the container
// that holds the node plus the segment addressing it. Exactly one of
// object/array is non-nil.
type cursor struct {
	object Object
	array  Array
	seg    segment
}

func (c cursor) get() Value {
	if c.object != nil {
		return c.object[c.seg.name]
	}

	return c.array[c.seg.index]
}

func (c cursor) set(value Value) {
	if c.object != nil {
		c.object[c.seg.name] = value

		return
	}

	c.array[c.seg.index] = value
}

// resolve walks path left-to-right from the root and returns a cursor to
// the node at the full path. It reports false at the first segment that
// does not resolve: a missing field, an out-of-range index, or a container
// of the wrong kind. Nothing is created or mutated on a miss.
func resolve(root Object, path []segment) (cursor, bool) {
	var (
		current Value = root
		ref     cursor
	)

	for _, seg := range path {
		switch container := current.(type) {
		case Object:
			if seg.isIndex {
				return cursor{}, false
			}

			child, exists := container[seg.name]
			if !exists {
				return cursor{}, false
			}

			ref = cursor{object: container, seg: seg}
			current = child
		case Array:
			if !seg.isIndex || seg.index >= len(container) {
				return cursor{}, false
			}

			ref = cursor{array: container, seg: seg}
			current = container[seg.index]
		default:
			return cursor{}, false
		}
	}

	return ref, true
}

// carried is the partial subtree built while walking a path in reverse:
// either a plain value (a bare scalar, or a single-field object wrapper)
// or an array item destined for a specific index.
type carried struct {
	value  Value
	index  int
	isItem bool
}

// unwrap materializes the carried unit as a tree value. An array item at
// index n becomes an array of length n+1 with nil in every earlier slot.
func (c carried) unwrap() Value {
	if !c.isItem {
		return c.value
	}

	array := make(Array, c.index+1)
	array[c.index] = c.value

	return array
}

// splice grafts value into the tree at path. The path is walked bottom-up:
// at each prefix, an existing node is merged into in place and the walk
// stops; otherwise the carried value is wrapped one level and the walk
// continues toward the root. The root object itself always exists, so the
// walk terminates.
//
// Single-segment paths set the field directly on the root, replacing any
// previous content of that field.
func splice(root Object, path []segment, value Value) error {
	if len(path) == 1 {
		root[path[0].name] = value

		return nil
	}

	unit := carried{value: value}

	for i := len(path) - 1; i >= 0; i-- {
		target, found := resolve(root, path[:i+1])
		if found {
			return mergeAt(target, unit, path[:i+1])
		}

		if i == 0 {
			root[path[0].name] = unit.unwrap()

			return nil
		}

		seg := path[i]
		if seg.isIndex {
			unit = carried{value: unit.unwrap(), index: seg.index, isItem: true}
		} else {
			unit = carried{value: Object{seg.name: unit.unwrap()}}
		}
	}

	return nil
}

// mergeAt combines the carried unit with the existing node under the
// cursor. Objects absorb the unit's single field, scalars and nils are
// replaced wholesale, and array items land at their index with nil
// backfill. Every other combination is a shape conflict.
func mergeAt(target cursor, unit carried, prefix []segment) error {
	existing := target.get()

	if unit.isItem {
		array, isArray := existing.(Array)
		if !isArray {
			return fmt.Errorf("%w: expected array at %q, found %s",
				ErrShapeConflict, pathString(prefix), kindOf(existing))
		}

		for len(array) <= unit.index {
			array = append(array, nil)
		}

		array[unit.index] = unit.value
		target.set(array)

		return nil
	}

	switch node := existing.(type) {
	case Object:
		wrapper, isObject := unit.value.(Object)
		if !isObject {
			return fmt.Errorf("%w: expected object at %q, found %s",
				ErrShapeConflict, pathString(prefix), kindOf(unit.value))
		}

		for key, child := range wrapper {
			node[key] = child
		}

		return nil
	case nil, bool, int64, float64, string:
		target.set(unit.value)

		return nil
	default:
		return fmt.Errorf("%w: cannot merge object into %s at %q",
			ErrShapeConflict, kindOf(existing), pathString(prefix))
	}
}

func pathString(path []segment) string {
	joined := ""

	for i, seg := range path {
		if i > 0 {
			joined += "."
		}

		joined += seg.name
	}

	return joined
}

func kindOf(value Value) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case int64:
		return "integer"
	case float64:
		return "float"
	case string:
		return "string"
	case Object:
		return "object"
	case Array:
		return "array"
	default:
		return fmt.Sprintf("%T", value)
	}
}
