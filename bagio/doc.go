// Package bagio implements the textual interchange format for per-node
// label bags: a line-oriented format with a literal header line followed
// by one line per label,
//
//	node_id|path|weights
//	<id>|<id,id,...>|<int,int,...,int,int,...>
//
// field 3 packs the visible values followed immediately by the hidden
// values; the reader needs to know k (the visible length) to split them
// back apart. Read does not know k: every value in field 3 becomes part
// of Values, so hidden values are neither dropped nor recovered as
// HiddenValues. ReadWithHidden takes k and splits the two apart.
package bagio
