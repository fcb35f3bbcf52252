package tree

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_PreservesOrder(t *testing.T) {
	tr, err := ParseJSON([]byte(`{"z": "last?", "a": {"y": "1", "b": "2"}, "m": ["one", "two"]}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"z", "a", "m"}, tr.Keys())
	sub, ok := tr.Subtree("a")
	require.True(t, ok)
	assert.Equal(t, []string{"y", "b"}, sub.Keys())

	lines, ok := tr.Leaf("m")
	require.True(t, ok)
	assert.True(t, lines.IsMultiline())
	assert.Equal(t, []string{"one", "two"}, lines.Lines())
}

func TestParseJSON_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
	}{
		{name: "malformed", input: `{"a": `, err: ErrMalformed},
		{name: "array root", input: `["a"]`, err: ErrNotObject},
		{name: "number value", input: `{"a": 1}`, err: ErrUnsupportedValue},
		{name: "null value", input: `{"a": null}`, err: ErrUnsupportedValue},
		{name: "nested list", input: `{"a": [["x"]]}`, err: ErrUnsupportedValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON([]byte(tt.input))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestEncodeJSON_OrderedUnescaped(t *testing.T) {
	tr := New()
	tr.Set("url", Text("https://example.com/a?b=1&c=<2>"))
	tr.Set("umlaut", Text("Größe"))
	sub := New()
	sub.Set("x", Lines("l1", "l2"))
	tr.Set("nested", sub)

	out, err := EncodeJSON(tr)
	require.NoError(t, err)

	want := `{
    "url": "https://example.com/a?b=1&c=<2>",
    "umlaut": "Größe",
    "nested": {
        "x": [
            "l1",
            "l2"
        ]
    }
}
`
	assert.Equal(t, want, string(out))
}

func TestJSON_RoundTripThroughStruct(t *testing.T) {
	type doc struct {
		Name  string `json:"name"`
		Items *Tree  `json:"items"`
	}

	var d doc
	require.NoError(t, json.Unmarshal([]byte(`{"name": "x", "items": {"b": "1", "a": "2"}}`), &d))
	require.NotNil(t, d.Items)
	assert.Equal(t, []string{"b", "a"}, d.Items.Keys())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "x", "items": {"b": "1", "a": "2"}}`, string(out))
}

func TestParseYAML_PreservesOrder(t *testing.T) {
	tr, err := ParseYAML([]byte("z: last\na:\n  y: \"1\"\n  b: two\nm:\n  - one\n  - two\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"z", "a", "m"}, tr.Keys())
	sub, _ := tr.Subtree("a")
	assert.Equal(t, []string{"y", "b"}, sub.Keys())
	leaf, _ := sub.Leaf("y")
	assert.Equal(t, "1", leaf.Text())
	lines, _ := tr.Leaf("m")
	assert.Equal(t, []string{"one", "two"}, lines.Lines())
}

func TestParseYAML_EmptyAndInvalid(t *testing.T) {
	tr, err := ParseYAML([]byte(""))
	require.NoError(t, err)
	assert.True(t, tr.Empty())

	_, err = ParseYAML([]byte("- a\n- b\n"))
	assert.ErrorIs(t, err, ErrNotObject)

	_, err = ParseYAML([]byte("a: ~\n"))
	assert.ErrorIs(t, err, ErrUnsupportedValue)
}

func TestYAML_RoundTrip(t *testing.T) {
	tr := New()
	tr.Set("b", Text("123"))
	sub := New()
	sub.Set("a.b", Text("dots"))
	tr.Set("nested", sub)
	tr.Set("lines", Lines("x", "y"))

	out, err := EncodeYAML(tr)
	require.NoError(t, err)

	back, err := ParseYAML(out)
	require.NoError(t, err)
	assert.True(t, tr.Equal(back), string(out))
}
