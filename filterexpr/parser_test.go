package filterexpr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/NEWSLabNTU/point-cloud-filter/filterexpr"
)

func TestParse_Precedence(t *testing.T) {
	node, err := filterexpr.Parse("a * (b + c)")
	require.NoError(t, err)
	require.Equal(t,
		filterexpr.And{
			L: filterexpr.Ident{Name: "a"},
			R: filterexpr.Or{L: filterexpr.Ident{Name: "b"}, R: filterexpr.Ident{Name: "c"}},
		},
		node,
	)
}

func TestParse_MinusLowersToAndNot(t *testing.T) {
	node, err := filterexpr.Parse("a - b")
	require.NoError(t, err)
	require.Equal(t,
		filterexpr.And{L: filterexpr.Ident{Name: "a"}, R: filterexpr.Not{X: filterexpr.Ident{Name: "b"}}},
		node,
	)
}

func TestParse_LeftAssociative(t *testing.T) {
	node, err := filterexpr.Parse("a + b + c")
	require.NoError(t, err)
	require.Equal(t,
		filterexpr.Or{
			L: filterexpr.Or{L: filterexpr.Ident{Name: "a"}, R: filterexpr.Ident{Name: "b"}},
			R: filterexpr.Ident{Name: "c"},
		},
		node,
	)
}

func TestParse_UnaryNot(t *testing.T) {
	node, err := filterexpr.Parse("!!a")
	require.NoError(t, err)
	require.Equal(t, filterexpr.Not{X: filterexpr.Not{X: filterexpr.Ident{Name: "a"}}}, node)
}

func TestParse_Errors(t *testing.T) {
	cases := []string{
		"(a",
		"a +",
		"a # b",
		"",
		"a)",
	}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			_, err := filterexpr.Parse(src)
			require.Error(t, err)
			var perr *filterexpr.ParseError
			require.ErrorAs(t, err, &perr)
		})
	}
}

func TestValidate_UndefinedIdentifier(t *testing.T) {
	node, err := filterexpr.Parse("a + z")
	require.NoError(t, err)

	name, ok := filterexpr.Validate(node, map[string]struct{}{"a": {}, "b": {}})
	require.False(t, ok)
	require.Equal(t, "z", name)
}
