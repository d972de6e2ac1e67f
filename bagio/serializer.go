package bagio

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/mlc/bag"
	"github.com/katalvlaran/mlc/label"
)

// header is the literal first line of the text format.
const header = "node_id|path|weights"

// NamedBags is the string-keyed variant of a search result, produced at
// the nodeid translation boundary: node name -> its final bag.
type NamedBags = map[string]*bag.Bag

// Write serializes bags to w in the package's text format: a literal
// header line followed by one line per label, sorted by node id then by
// the label's lexicographic value order for determinism.
func Write(w io.Writer, bags map[int]*bag.Bag) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(header + "\n"); err != nil {
		return err
	}

	nodeIDs := make([]int, 0, len(bags))
	for id := range bags {
		nodeIDs = append(nodeIDs, id)
	}
	sort.Ints(nodeIDs)

	for _, id := range nodeIDs {
		for _, l := range bags[id].Labels() {
			if err := writeLabel(bw, id, l); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

func writeLabel(w *bufio.Writer, nodeID int, l label.Label) error {
	path := make([]string, len(l.Path))
	for i, p := range l.Path {
		path[i] = strconv.Itoa(p)
	}

	weights := make([]string, 0, len(l.Values)+len(l.HiddenValues))
	for _, v := range l.Values {
		weights = append(weights, strconv.FormatUint(v, 10))
	}
	for _, v := range l.HiddenValues {
		weights = append(weights, strconv.FormatUint(v, 10))
	}

	_, err := fmt.Fprintf(w, "%d|%s|%s\n", nodeID, strings.Join(path, ","), strings.Join(weights, ","))

	return err
}

// Read parses the text format without knowing k: every comma-separated
// field in the weights column becomes part of Values, including any
// hidden values the writer appended; HiddenValues is left empty and
// nothing is discarded. ReadWithHidden splits the column at k. Every
// parsed label is inserted into its node's Bag via
// AddIfNecessary, so the returned bags are guaranteed Pareto-closed even
// if the input was not.
func Read(r io.Reader) (map[int]*bag.Bag, error) {
	return read(r, -1)
}

// ReadWithHidden parses the text format, splitting the weights column
// into the first k values (Values) and everything after (HiddenValues).
func ReadWithHidden(r io.Reader, k int) (map[int]*bag.Bag, error) {
	return read(r, k)
}

func read(r io.Reader, k int) (map[int]*bag.Bag, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return nil, ErrMissingHeader
	}
	if strings.TrimRight(scanner.Text(), "\r") != header {
		return nil, ErrMissingHeader
	}

	bags := make(map[int]*bag.Bag)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		l, nodeID, err := parseLine(line, k)
		if err != nil {
			return nil, err
		}

		b, ok := bags[nodeID]
		if !ok {
			b = bag.New()
			bags[nodeID] = b
		}
		b.AddIfNecessary(l)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return bags, nil
}

func parseLine(line string, k int) (label.Label, int, error) {
	parts := strings.Split(line, "|")
	if len(parts) != 3 {
		return label.Label{}, 0, ErrMalformedLine
	}

	nodeID, err := strconv.Atoi(parts[0])
	if err != nil {
		return label.Label{}, 0, fmt.Errorf("%w: node id %q", ErrMalformedInt, parts[0])
	}

	var path []int
	if parts[1] != "" {
		for _, s := range strings.Split(parts[1], ",") {
			p, err := strconv.Atoi(s)
			if err != nil {
				return label.Label{}, 0, fmt.Errorf("%w: path element %q", ErrMalformedInt, s)
			}
			path = append(path, p)
		}
	}

	var weights []uint64
	if parts[2] != "" {
		for _, s := range strings.Split(parts[2], ",") {
			v, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				return label.Label{}, 0, fmt.Errorf("%w: weight %q", ErrMalformedInt, s)
			}
			weights = append(weights, v)
		}
	}

	l := label.Label{Path: path, NodeID: nodeID}
	if k < 0 || k >= len(weights) {
		l.Values = weights
	} else {
		l.Values = weights[:k]
		l.HiddenValues = weights[k:]
	}

	return l, nodeID, nil
}
