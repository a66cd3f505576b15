package cssselector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	css "github.com/Pavel0606/mitso-core-js/pkg/cssselector"
	"github.com/Pavel0606/mitso-core-js/pkg/jsonx"
)

func TestParseFragment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token string
		kind  css.Kind
		value string
	}{
		{token: "element:div", kind: css.KindElement, value: "div"},
		{token: "tag:span", kind: css.KindElement, value: "span"},
		{token: "ID:main", kind: css.KindID, value: "main"},
		{token: "class:item", kind: css.KindClass, value: "item"},
		{token: "attr:data-x=1", kind: css.KindAttribute, value: "data-x=1"},
		{token: "pseudo-class:nth-child(2)", kind: css.KindPseudoClass, value: "nth-child(2)"},
		{token: "pseudo-class:not(:first-child)", kind: css.KindPseudoClass, value: "not(:first-child)"},
		{token: "pseudo-element:before", kind: css.KindPseudoElement, value: "before"},
		{token: "class:", kind: css.KindClass, value: ""},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			t.Parallel()
			kind, value, err := css.ParseFragment(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.value, value)
		})
	}

	for _, bad := range []string{"div", "combined:x", "bogus:x", ":x"} {
		t.Run("invalid "+bad, func(t *testing.T) {
			t.Parallel()
			_, _, err := css.ParseFragment(bad)
			assert.ErrorIs(t, err, css.ErrInvalidToken)
		})
	}
}

func TestAssemble(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tokens   []string
		expected string
	}{
		{name: "single compound", tokens: []string{"element:a", "id:b", "class:c"}, expected: "a#b.c"},
		{name: "child", tokens: []string{"element:div", ">", "id:child"}, expected: "div > #child"},
		{name: "left to right", tokens: []string{"element:div", "+", "element:table", "~", "element:p"}, expected: "div + table ~ p"},
		{name: "descendant word", tokens: []string{"element:ul", "descendant", "element:li"}, expected: "ul   li"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, err := css.Assemble(tt.tokens...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, r.String())
			assert.NoError(t, r.Err())
		})
	}
}

func TestAssemble_Errors(t *testing.T) {
	t.Parallel()

	t.Run("order violation", func(t *testing.T) {
		t.Parallel()
		_, err := css.Assemble("class:a", "id:b")
		assert.True(t, css.IsOrderViolationError(err))
	})

	t.Run("duplicate in second compound", func(t *testing.T) {
		t.Parallel()
		_, err := css.Assemble("element:div", ">", "id:a", "id:b")
		assert.True(t, css.IsDuplicateFragmentError(err))
	})

	for _, tokens := range [][]string{
		{},
		{">", "element:a"},
		{"element:a", ">"},
		{"element:a", ">", "+", "element:b"},
		{"nonsense"},
	} {
		_, err := css.Assemble(tokens...)
		assert.ErrorIs(t, err, css.ErrInvalidToken, "tokens %q", tokens)
	}
}

func TestKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "pseudo-element", css.KindPseudoElement.String())
	assert.Equal(t, "Kind(99)", css.Kind(99).String())
	assert.True(t, css.KindID.Unique())
	assert.False(t, css.KindClass.Unique())
	assert.False(t, css.KindCombined.Appendable())

	var k css.Kind
	require.NoError(t, k.UnmarshalText([]byte("attribute")))
	assert.Equal(t, css.KindAttribute, k)
	require.NoError(t, k.UnmarshalText([]byte("combined")))
	assert.Equal(t, css.KindCombined, k)
	assert.Error(t, k.UnmarshalText([]byte("nope")))
}

func TestFragments_EncodeAsJSON(t *testing.T) {
	t.Parallel()

	got, err := jsonx.Encode(css.Element("a").Class("b").Fragments())
	require.NoError(t, err)
	assert.Equal(t, `[{"kind":"element","text":"a"},{"kind":"class","text":".b"}]`, got)

	_, err = jsonx.Encode(css.Kind(99))
	assert.ErrorIs(t, err, jsonx.ErrEncode)
}
