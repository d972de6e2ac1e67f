package graphio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/mlc/graph"
	"github.com/katalvlaran/mlc/nodeid"
)

// ReadCSV parses the CSV format: a header row `u,v,weights` or
// `u,v,weights,hidden_weights`, followed by one edge per row. Node ids are
// arbitrary strings, translated to dense integers via a fresh
// nodeid.Translator in order of first appearance.
func ReadCSV(path string) (*graph.Graph, *nodeid.Translator, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, nil, err
	}
	if len(header) < 3 || header[0] != "u" || header[1] != "v" || header[2] != "weights" {
		return nil, nil, ErrMalformedHeader
	}
	hasHidden := len(header) >= 4 && header[3] == "hidden_weights"
	minFields := 3
	if hasHidden {
		minFields = 4
	}

	g := graph.NewGraph()
	tr := nodeid.New()
	next := 0

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		if len(row) < minFields {
			return nil, nil, ErrMalformedRow
		}

		uID := resolveID(tr, row[0], &next)
		vID := resolveID(tr, row[1], &next)

		visible, err := parseWeights(row[2])
		if err != nil {
			return nil, nil, err
		}

		var hidden []uint64
		if hasHidden {
			hidden, err = parseWeights(row[3])
			if err != nil {
				return nil, nil, err
			}
		}

		if err := g.AddEdge(uID, vID, visible, hidden); err != nil {
			return nil, nil, err
		}
	}

	return g, tr, nil
}

// ReadCategoriesCSV parses an optional companion file, header
// `node,category[,category...]`, tagging nodes already known to t.
func ReadCategoriesCSV(path string, g *graph.Graph, t *nodeid.Translator) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return err
	}
	if len(header) < 2 || header[0] != "node" || header[1] != "category" {
		return ErrMalformedHeader
	}

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if len(row) < 2 {
			return ErrMalformedRow
		}

		id, ok := t.ToID(row[0])
		if !ok {
			return fmt.Errorf("%w: %q", ErrCategoryNodeNotFound, row[0])
		}

		for _, c := range row[1:] {
			if c == "" {
				continue
			}
			if err := g.AddCategory(id, c); err != nil && err != graph.ErrDuplicateCategory {
				return err
			}
		}
	}

	return nil
}

// resolveID returns the id already bound to name, or assigns and
// registers the next dense integer id.
func resolveID(t *nodeid.Translator, name string, next *int) int {
	if id, ok := t.ToID(name); ok {
		return id
	}
	id := *next
	*next++
	_ = t.Register(name, id)

	return id
}

// parseWeights parses a bracket-enclosed, semicolon-separated non-negative
// integer list, e.g. "[3;0;10]".
func parseWeights(s string) ([]uint64, error) {
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, fmt.Errorf("%w: %q", ErrMalformedWeights, s)
	}
	inner := s[1 : len(s)-1]
	if inner == "" {
		return []uint64{}, nil
	}

	parts := strings.Split(inner, ";")
	out := make([]uint64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedWeights, s)
		}
		out[i] = v
	}

	return out, nil
}
