package envtree

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// segment is one decoded piece of a key path: either an object field name
// or an array index. A raw token classifies as an index if and only if it
// parses entirely as a non-negative integer; otherwise it is a field. The
// lowercased token is kept either way, since an index segment still becomes
// a field name when it ends up keying the root object.
type segment struct {
	name    string
	index   int
	isIndex bool
}

// decodePath splits key on every occurrence of separator, lowercases each
// piece, and classifies the pieces. The raw key is split first so that a
// separator containing letters matches case-sensitively; only the resulting
// pieces are lowercased. A path with exactly one segment that classifies as
// an index is rejected: the root of the tree is always an object.
func decodePath(key, separator string) ([]segment, error) {
	pieces := strings.Split(key, separator)
	path := make([]segment, len(pieces))

	for i, piece := range pieces {
		path[i] = decodeSegment(strings.ToLower(piece))
	}

	if len(path) == 1 && path[0].isIndex {
		return nil, fmt.Errorf("%w: %q", ErrMalformedPath, key)
	}

	return path, nil
}

func decodeSegment(piece string) segment {
	index, err := strconv.ParseUint(piece, 10, 64)
	if err != nil || index > math.MaxInt {
		return segment{name: piece}
	}

	return segment{name: piece, index: int(index), isIndex: true}
}
