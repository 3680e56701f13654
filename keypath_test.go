package envtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodePath(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		key       string
		separator string
		expected  []segment
	}{
		{
			name:      "single field",
			key:       "STRUCT",
			separator: "__",
			expected:  []segment{{name: "struct"}},
		},
		{
			name:      "nested fields are lowercased",
			key:       "Struct__Int",
			separator: "__",
			expected:  []segment{{name: "struct"}, {name: "int"}},
		},
		{
			name:      "numeric segment classifies as index",
			key:       "LIST__3",
			separator: "__",
			expected:  []segment{{name: "list"}, {name: "3", index: 3, isIndex: true}},
		},
		{
			name:      "leading zeros still parse as index",
			key:       "LIST__01",
			separator: "__",
			expected:  []segment{{name: "list"}, {name: "01", index: 1, isIndex: true}},
		},
		{
			name:      "negative number is a field",
			key:       "LIST__-1",
			separator: "__",
			expected:  []segment{{name: "list"}, {name: "-1"}},
		},
		{
			name:      "custom separator",
			key:       "A.B.0",
			separator: ".",
			expected:  []segment{{name: "a"}, {name: "b"}, {name: "0", index: 0, isIndex: true}},
		},
		{
			name:      "separator absent yields single segment",
			key:       "PLAIN",
			separator: "__",
			expected:  []segment{{name: "plain"}},
		},
		{
			name:      "letter-bearing separator matches case-sensitively",
			key:       "AXB",
			separator: "X",
			expected:  []segment{{name: "a"}, {name: "b"}},
		},
		{
			name:      "lowercase separator does not match uppercase key text",
			key:       "AXB",
			separator: "x",
			expected:  []segment{{name: "axb"}},
		},
		{
			name:      "numeric first segment allowed in longer paths",
			key:       "0__VALUE",
			separator: "__",
			expected:  []segment{{name: "0", index: 0, isIndex: true}, {name: "value"}},
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			path, err := decodePath(testCase.key, testCase.separator)

			require.NoError(t, err)
			require.Equal(t, testCase.expected, path)
		})
	}
}

func TestDecodePathRootNumeric(t *testing.T) {
	t.Parallel()

	_, err := decodePath("42", "__")

	require.ErrorIs(t, err, ErrMalformedPath)
}
