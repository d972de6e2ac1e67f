package nodeid

import (
	"strconv"

	"github.com/katalvlaran/mlc/bagio"
	"github.com/katalvlaran/mlc/graph"
	"github.com/katalvlaran/mlc/mlc"
)

// Runner pairs a Graph and Translator with a base set of mlc.Options, so a
// caller can drive repeated named searches without re-stating the engine
// configuration on every call.
type Runner struct {
	g    *graph.Graph
	tr   *Translator
	opts []mlc.Option
}

// NewRunner builds a Runner. opts is applied to every search started via
// RunNamed, in addition to the start-node option RunNamed derives from the
// translated name; a WithStartNode passed here is always overridden.
func NewRunner(g *graph.Graph, tr *Translator, opts ...mlc.Option) *Runner {
	return &Runner{g: g, tr: tr, opts: opts}
}

// RunNamed translates start to its integer id, runs a full MLC search from
// it, and translates the resulting mlc.Bags back to name-keyed bags at the
// boundary. A node reached by the search but never registered with the
// Translator falls back to its decimal string form as its name, so no
// result is ever silently dropped.
func (r *Runner) RunNamed(start string) (bagio.NamedBags, error) {
	id, ok := r.tr.ToID(start)
	if !ok {
		return nil, ErrStartNodeNotFound
	}

	full := make([]mlc.Option, 0, len(r.opts)+1)
	full = append(full, r.opts...)
	full = append(full, mlc.WithStartNode(id))

	m, err := mlc.New(r.g, full...)
	if err != nil {
		return nil, err
	}
	bags, err := m.Run()
	if err != nil {
		return nil, err
	}

	named := make(bagio.NamedBags, len(bags))
	for nodeID, b := range bags {
		name, err := r.tr.ToName(nodeID)
		if err != nil {
			name = strconv.Itoa(nodeID)
		}
		named[name] = b
	}

	return named, nil
}
