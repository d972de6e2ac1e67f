package label

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/mlc/graph"
)

// Label is an immutable record of an accumulated visible cost vector, an
// accumulated hidden cost vector, the path prefix that produced them, and
// the node the label currently sits at.
type Label struct {
	Values       []uint64
	HiddenValues []uint64
	Path         []int
	NodeID       int
}

// New builds the zero-valued starting label at node id, with Values and
// HiddenValues of the given lengths initialized to zero. If recordPath is
// false, Path is left nil (the caller never sees a path entry for the
// start node either way; see ExtendAlong for what gets appended).
func New(id int, visibleLen, hiddenLen int, recordPath bool) Label {
	l := Label{
		Values:       make([]uint64, visibleLen),
		HiddenValues: make([]uint64, hiddenLen),
		NodeID:       id,
	}
	if recordPath {
		l.Path = []int{}
	}

	return l
}

// ExtendAlong produces the label reached by crossing edge e from the
// label's current node. The source node id (the label's NodeID before
// extension, i.e. e.From) is appended to the path when recordPath is
// true; the new current node is e.To. A complete path to the returned
// label's NodeID is therefore the returned Path with NodeID appended.
func (l Label) ExtendAlong(e graph.Edge, recordPath bool) Label {
	values := make([]uint64, len(l.Values))
	for i := range l.Values {
		values[i] = l.Values[i] + e.Visible[i]
	}

	hidden := make([]uint64, len(l.HiddenValues))
	for j := range l.HiddenValues {
		hidden[j] = l.HiddenValues[j] + e.Hidden[j]
	}

	var path []int
	if recordPath {
		path = make([]int, len(l.Path)+1)
		copy(path, l.Path)
		path[len(l.Path)] = e.From
	}

	return Label{
		Values:       values,
		HiddenValues: hidden,
		Path:         path,
		NodeID:       e.To,
	}
}

// WeaklyDominates reports whether a weakly dominates b: a.Values[i] <=
// b.Values[i] for every visible index i. Equality in every component
// implies mutual weak dominance. HiddenValues, Path, and NodeID never
// participate. Panics if a and b have different Values lengths, which
// indicates a caller bug (mismatched graphs or malformed injected bags)
// rather than a condition the algorithm should tolerate silently.
func WeaklyDominates(a, b Label) bool {
	if len(a.Values) != len(b.Values) {
		panic("label: WeaklyDominates called on labels of differing dimension")
	}
	for i := range a.Values {
		if a.Values[i] > b.Values[i] {
			return false
		}
	}

	return true
}

// Less implements the lexicographic order the priority queue pops labels
// in: the first index at which the two Values vectors differ decides the
// order; ties are broken by falling through to the next index.
func Less(a, b Label) bool {
	n := len(a.Values)
	if len(b.Values) < n {
		n = len(b.Values)
	}
	for i := 0; i < n; i++ {
		if a.Values[i] != b.Values[i] {
			return a.Values[i] < b.Values[i]
		}
	}

	return len(a.Values) < len(b.Values)
}

// Key returns the identity a Bag uses for set membership: two labels with
// equal Values produce equal keys regardless of HiddenValues, Path, or
// even NodeID (a Bag only ever holds labels for a single node, so NodeID
// is constant within a given bag and is deliberately excluded here).
func Key(l Label) string {
	var sb strings.Builder
	for i, v := range l.Values {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(v, 10))
	}

	return sb.String()
}
