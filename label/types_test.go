package label_test

import (
	"testing"

	"github.com/katalvlaran/mlc/graph"
	"github.com/katalvlaran/mlc/label"
	"github.com/stretchr/testify/require"
)

func TestExtendAlong_AccumulatesVisibleAndHidden(t *testing.T) {
	start := label.New(0, 2, 1, true)
	e := graph.Edge{From: 0, To: 1, Visible: []uint64{2, 5}, Hidden: []uint64{7}}

	got := start.ExtendAlong(e, true)

	require.Equal(t, 1, got.NodeID)
	require.Equal(t, []uint64{2, 5}, got.Values)
	require.Equal(t, []uint64{7}, got.HiddenValues)
	require.Equal(t, []int{0}, got.Path)
}

func TestExtendAlong_PathRecordingOff(t *testing.T) {
	start := label.New(0, 1, 0, false)
	e := graph.Edge{From: 0, To: 1, Visible: []uint64{1}}

	got := start.ExtendAlong(e, false)
	require.Nil(t, got.Path)
}

func TestWeaklyDominates(t *testing.T) {
	l1 := label.Label{Values: []uint64{1, 2, 3}}
	l2 := label.Label{Values: []uint64{1, 2, 3}}
	l3 := label.Label{Values: []uint64{2, 3, 4}}
	l4 := label.Label{Values: []uint64{1, 2, 4}}

	require.True(t, label.WeaklyDominates(l1, l2), "l1 should weakly dominate l2 (equal)")
	require.True(t, label.WeaklyDominates(l2, l1), "l2 should weakly dominate l1 (equal)")
	require.True(t, label.WeaklyDominates(l1, l3), "l1 should weakly dominate l3")
	require.False(t, label.WeaklyDominates(l3, l1), "l3 should not weakly dominate l1")
	require.True(t, label.WeaklyDominates(l1, l4), "l1 should weakly dominate l4")
	require.False(t, label.WeaklyDominates(l4, l1), "l4 should not weakly dominate l1")
}

func TestLess_Lexicographic(t *testing.T) {
	cases := []struct {
		a, b []uint64
		want bool
	}{
		{[]uint64{1, 5}, []uint64{2, 0}, true},
		{[]uint64{2, 0}, []uint64{1, 5}, false},
		{[]uint64{1, 2}, []uint64{1, 3}, true},
		{[]uint64{1, 3}, []uint64{1, 2}, false},
		{[]uint64{1, 2}, []uint64{1, 2}, false},
	}
	for _, c := range cases {
		got := label.Less(label.Label{Values: c.a}, label.Label{Values: c.b})
		require.Equal(t, c.want, got, "Less(%v, %v)", c.a, c.b)
	}
}

func TestKey_IgnoresHiddenAndPath(t *testing.T) {
	l1 := label.Label{Values: []uint64{1, 2}, Path: []int{0}, HiddenValues: []uint64{9}}
	l2 := label.Label{Values: []uint64{1, 2}, Path: []int{0, 1, 2}, HiddenValues: []uint64{100}}
	require.Equal(t, label.Key(l1), label.Key(l2), "Key should depend only on Values")

	l3 := label.Label{Values: []uint64{1, 3}}
	require.NotEqual(t, label.Key(l1), label.Key(l3), "distinct Values must produce distinct keys")
}
