package skipset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildSet(values ...int) *Set[int] {
	s := NewOrdered[int]()
	for _, v := range values {
		s.Insert(v)
	}
	return s
}

func TestEqualEmptySets(t *testing.T) {
	require.True(t, buildSet().Equal(buildSet()))
}

func TestEqualIdenticalSets(t *testing.T) {
	require.True(t, buildSet(10, 20, 30).Equal(buildSet(10, 20, 30)))
}

func TestEqualIgnoresInsertionOrder(t *testing.T) {
	a := buildSet(30, 10, 20)
	b := buildSet(20, 30, 10)
	require.True(t, a.Equal(b))
	require.True(t, b.Equal(a))
}

func TestEqualDifferentSizes(t *testing.T) {
	require.False(t, buildSet(10, 20).Equal(buildSet(10, 20, 30)))
}

func TestEqualDifferentElements(t *testing.T) {
	require.False(t, buildSet(10, 20, 30).Equal(buildSet(10, 20, 40)))
}

func TestCompareLexicographically(t *testing.T) {
	cases := []struct {
		name string
		a, b *Set[int]
		want int
	}{
		{name: "both empty", a: buildSet(), b: buildSet(), want: 0},
		{name: "empty sorts first", a: buildSet(), b: buildSet(1), want: -1},
		{name: "identical", a: buildSet(10, 20, 30), b: buildSet(10, 20, 30), want: 0},
		{name: "prefix sorts first", a: buildSet(10, 20), b: buildSet(10, 20, 30), want: -1},
		{name: "first difference decides", a: buildSet(10, 20, 25), b: buildSet(10, 20, 30), want: -1},
		{name: "greater at first difference", a: buildSet(10, 21), b: buildSet(10, 20, 30), want: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.a.Compare(tc.b))
			require.Equal(t, -tc.want, tc.b.Compare(tc.a))
		})
	}
}

func TestRelationalOperatorsDeriveFromCompare(t *testing.T) {
	smaller := buildSet(10, 20)
	larger := buildSet(10, 20, 30)
	same := buildSet(20, 10)

	require.True(t, smaller.Less(larger))
	require.False(t, larger.Less(smaller))
	require.False(t, smaller.Less(same))

	require.True(t, smaller.LessOrEqual(larger))
	require.True(t, smaller.LessOrEqual(same))

	require.True(t, larger.Greater(smaller))
	require.False(t, smaller.Greater(same))

	require.True(t, larger.GreaterOrEqual(smaller))
	require.True(t, smaller.GreaterOrEqual(same))
}

func TestCompareSelf(t *testing.T) {
	s := buildSet(10, 20, 30)
	require.True(t, s.Equal(s))
	require.Equal(t, 0, s.Compare(s))
	require.True(t, s.LessOrEqual(s))
	require.True(t, s.GreaterOrEqual(s))
}
