package jsonx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pavel0606/mitso-core-js/pkg/jsonx"
)

func TestDocument_Set(t *testing.T) {
	t.Parallel()

	t.Run("appends new keys in insertion order", func(t *testing.T) {
		t.Parallel()
		doc := jsonx.NewDocument()
		require.NoError(t, doc.Set("z", 1))
		require.NoError(t, doc.Set("a", 2))
		require.NoError(t, doc.Set("m", 3))
		assert.Equal(t, []string{"z", "a", "m"}, doc.Keys())
		assert.Equal(t, 3, doc.Len())
	})

	t.Run("replacing keeps position", func(t *testing.T) {
		t.Parallel()
		doc := jsonx.NewDocument()
		require.NoError(t, doc.Set("width", 10))
		require.NoError(t, doc.Set("height", 20))
		require.NoError(t, doc.Set("width", 30))
		assert.Equal(t, []string{"width", "height"}, doc.Keys())
		assert.Equal(t, float64(30), doc.Float("width"))
	})

	t.Run("keys with path characters are literal", func(t *testing.T) {
		t.Parallel()
		doc := jsonx.NewDocument()
		for _, key := range []string{"a.b", "x*y", "q?", "#tag", "@mod", ":colon", `back\slash`} {
			require.NoError(t, doc.Set(key, key))
		}
		assert.Equal(t, []string{"a.b", "x*y", "q?", "#tag", "@mod", ":colon", `back\slash`}, doc.Keys())
		assert.Equal(t, "a.b", doc.String("a.b"))
		assert.Equal(t, ":colon", doc.String(":colon"))
		assert.False(t, doc.Has("a"))
	})

	t.Run("structured values", func(t *testing.T) {
		t.Parallel()
		doc := jsonx.NewDocument()
		require.NoError(t, doc.Set("list", []int{1, 2}))
		require.NoError(t, doc.Set("obj", map[string]bool{"ok": true}))
		got, err := jsonx.Encode(doc)
		require.NoError(t, err)
		assert.Equal(t, `{"list":[1,2],"obj":{"ok":true}}`, got)
	})

	t.Run("empty key", func(t *testing.T) {
		t.Parallel()
		doc := jsonx.NewDocument()
		assert.ErrorIs(t, doc.Set("", 1), jsonx.ErrEmptyKey)
		assert.ErrorIs(t, doc.Delete(""), jsonx.ErrEmptyKey)
	})

	t.Run("unsupported value", func(t *testing.T) {
		t.Parallel()
		doc := jsonx.NewDocument()
		assert.ErrorIs(t, doc.Set("ch", make(chan int)), jsonx.ErrEncode)
		assert.Equal(t, 0, doc.Len())
	})

	t.Run("zero value is an empty object", func(t *testing.T) {
		t.Parallel()
		var doc jsonx.Document
		assert.True(t, doc.IsObject())
		require.NoError(t, doc.Set("a", 1))
		assert.Equal(t, []string{"a"}, doc.Keys())
	})
}

func TestDocument_Delete(t *testing.T) {
	t.Parallel()

	doc := jsonx.NewDocument()
	require.NoError(t, doc.Set("a", 1))
	require.NoError(t, doc.Set("b", 2))
	require.NoError(t, doc.Delete("a"))
	require.NoError(t, doc.Delete("missing"))

	assert.Equal(t, []string{"b"}, doc.Keys())
	assert.False(t, doc.Has("a"))
}

func TestDocument_Accessors(t *testing.T) {
	t.Parallel()

	obj, err := jsonx.Decode(struct{}{}, `{"n":"10","flag":true,"name":"box","none":null}`)
	require.NoError(t, err)

	assert.Equal(t, float64(10), obj.Float("n"))
	assert.Equal(t, float64(1), obj.Float("flag"))
	assert.Equal(t, float64(0), obj.Float("missing"))
	assert.Equal(t, "box", obj.String("name"))
	assert.True(t, obj.Has("none"))
	assert.Equal(t, int64(10), obj.Get("n").Int())
}

func TestDocument_NonObject(t *testing.T) {
	t.Parallel()

	obj, err := jsonx.Decode(struct{}{}, `[1,2,3]`)
	require.NoError(t, err)

	assert.False(t, obj.IsObject())
	assert.Nil(t, obj.Keys())
	assert.False(t, obj.Has("0"))
	assert.ErrorIs(t, obj.Set("a", 1), jsonx.ErrNotObject)
	assert.ErrorIs(t, obj.Delete("a"), jsonx.ErrNotObject)

	var list []int
	require.NoError(t, obj.Into(&list))
	assert.Equal(t, []int{1, 2, 3}, list)
}

func TestDocument_SetRaw(t *testing.T) {
	t.Parallel()

	doc := jsonx.NewDocument()
	require.NoError(t, doc.SetRaw("list", "[1, 2, 3]"))
	require.NoError(t, doc.SetRaw("n", "10"))
	require.NoError(t, doc.SetRaw("obj", ` {"a": true} `))

	assert.Equal(t, `{"list":[1,2,3],"n":10,"obj":{"a":true}}`, string(doc.Raw()))

	err := doc.SetRaw("bad", "{")
	assert.ErrorIs(t, err, jsonx.ErrParse)
	assert.False(t, doc.Has("bad"))

	assert.ErrorIs(t, doc.SetRaw("", "1"), jsonx.ErrEmptyKey)
}
