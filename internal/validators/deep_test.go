package validators

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nestArrays(n int, leaf Value) Value {
	v := leaf
	for i := 0; i < n; i++ {
		v = Array(v)
	}
	return v
}

func TestSanitizeDeep_PreservesStructure(t *testing.T) {
	in := Object(map[string]Value{
		"name":  String("  <b>bold</b> "),
		"count": Number(3),
		"on":    Bool(true),
		"none":  Null(),
		"tags":  Array(String("a&b"), Number(1), Array(String("'q'"))),
		"inner": Object(map[string]Value{"x": String("\x00y")}),
	})

	got, err := SanitizeDeep(in)
	require.NoError(t, err)

	assert.Equal(t, KindObject, got.Kind())
	assert.Equal(t, []string{"count", "inner", "name", "none", "on", "tags"}, got.Keys())

	name, _ := got.Field("name")
	s, ok := name.Str()
	require.True(t, ok)
	assert.Equal(t, "&lt;b&gt;bold&lt;/b&gt;", s)

	count, _ := got.Field("count")
	n, ok := count.Number()
	require.True(t, ok)
	assert.Equal(t, float64(3), n)

	on, _ := got.Field("on")
	b, ok := on.Bool()
	require.True(t, ok)
	assert.True(t, b)

	none, _ := got.Field("none")
	assert.Equal(t, KindNull, none.Kind())

	tags, _ := got.Field("tags")
	items := tags.Items()
	require.Len(t, items, 3)
	first, _ := items[0].Str()
	assert.Equal(t, "a&amp;b", first)
	nested, _ := items[2].Items()[0].Str()
	assert.Equal(t, "&#39;q&#39;", nested)

	inner, _ := got.Field("inner")
	x, _ := inner.Field("x")
	xs, _ := x.Str()
	assert.Equal(t, "y", xs)
}

func TestSanitizeDeep_DoesNotMutateInput(t *testing.T) {
	in := Object(map[string]Value{"a": String("<x>")})

	_, err := SanitizeDeep(in)
	require.NoError(t, err)

	a, _ := in.Field("a")
	s, _ := a.Str()
	assert.Equal(t, "<x>", s)
}

func TestSanitizeDeep_Scalars(t *testing.T) {
	got, err := SanitizeDeep(String(" <i> "))
	require.NoError(t, err)
	s, _ := got.Str()
	assert.Equal(t, "&lt;i&gt;", s)

	got, err = SanitizeDeep(Number(1.5))
	require.NoError(t, err)
	assert.Equal(t, Number(1.5), got)
}

func TestSanitizeDeep_DepthLimit(t *testing.T) {
	_, err := SanitizeDeep(nestArrays(MaxDepth, String("leaf")))
	assert.NoError(t, err)

	_, err = SanitizeDeep(nestArrays(MaxDepth+1, String("leaf")))
	assert.ErrorIs(t, err, ErrTooDeep)
}

func TestSanitizeDeep_PropagatesStringErrors(t *testing.T) {
	in := Array(String("ok"), String(strings.Repeat("a", DefaultMaxStringLength+1)))

	_, err := SanitizeDeep(in)
	assert.ErrorIs(t, err, ErrTooLong)
}

func TestFromAny_RoundTripThroughJSON(t *testing.T) {
	var raw any
	require.NoError(t, json.Unmarshal([]byte(`{"a":[1,"<b>",null,{"c":false}]}`), &raw))

	v, err := FromAny(raw)
	require.NoError(t, err)

	sanitized, err := SanitizeDeep(v)
	require.NoError(t, err)

	out, err := json.Marshal(sanitized)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":[1,"&lt;b&gt;",null,{"c":false}]}`, string(out))
}

func TestFromAny_Unsupported(t *testing.T) {
	_, err := FromAny(struct{}{})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestFromAny_CyclicStructureIsBounded(t *testing.T) {
	cyclic := map[string]any{}
	cyclic["self"] = cyclic

	_, err := FromAny(cyclic)
	assert.ErrorIs(t, err, ErrTooDeep)
}

func TestValue_UnmarshalJSON(t *testing.T) {
	var v Value
	require.NoError(t, json.Unmarshal([]byte(`["x", 2]`), &v))

	assert.Equal(t, KindArray, v.Kind())
	assert.Equal(t, 2, v.Len())
}

func TestRequestBodyValidator_Validate(t *testing.T) {
	v := NewRequestBodyValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, map[string]any{"data": 1}, "data"))
	assert.ErrorIs(t, v.Validate(ctx, map[string]any{}, "data"), ErrMissingField)

	obj := Object(map[string]Value{"filename": String("a")})
	assert.NoError(t, v.Validate(ctx, obj, "filename"))
	assert.ErrorIs(t, v.Validate(ctx, obj, "filename", "data"), ErrMissingField)
	assert.ErrorIs(t, v.Validate(ctx, Array(), "data"), ErrNotAnObject)

	assert.ErrorIs(t, v.Validate(ctx, "text", "data"), ErrUnsupportedType)
}
