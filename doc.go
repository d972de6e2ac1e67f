// Package mlc is your toolkit for multi-criteria shortest paths in Go.
//
// 🚀 What is mlc?
//
//	A Multi-Label Correcting search engine: Dijkstra generalized to several
//	independent, non-negative cost dimensions at once, returning every
//	Pareto-optimal path instead of collapsing them into one "best" number.
//
//	  • Core primitives: Label, Bag, a lexicographic priority Queue
//	  • Admissibility pruning: per-category cost/time Pareto frontiers
//	  • A pluggable label rewrite hook for non-additive cost modeling
//
// ✨ Why choose mlc?
//
//   - Honest about trade-offs — no scalarization, no hidden weighting
//   - Rock-solid             — bags stay dominance-closed by construction
//   - Extensible             — a rewrite hook for tariff steps and similar
//   - Pure Go core           — graph, label, bag, queue, limits, mlc import
//     nothing but the standard library; ingestion and interop layers pull
//     in the rest (gonum) at the edges, where they belong
//
// Under the hood, everything is organized into focused subpackages:
//
//	graph/    — the weighted, multi-criteria directed graph (Node, Edge)
//	label/    — Label, extension arithmetic, dominance, lexicographic order
//	bag/      — Bag: a node's dominance-closed set of labels
//	queue/    — a lexicographic min-heap of labels
//	limits/   — category-based Pareto-frontier admissibility pruning
//	mlc/      — the search engine: Options, Run, seeding, expansion loop
//	bagio/    — the text serialization format for bags
//	nodeid/   — bidirectional string<->int node-id translation
//	graphio/  — CSV ingestion and a gonum/graph interop adapter
//
// Quick ASCII example, two criteria (time, cost):
//
//	     (2,5)
//	  0 -------> 1
//	  |  (5,2)   |
//	  +--------->+  (1,1)
//	             v
//	             2
//
//	both edges 0->1 survive: neither dominates the other.
//
// Dive into SPEC_FULL.md for the full module specification and DESIGN.md
// for how each package is grounded.
//
//	go get github.com/katalvlaran/mlc
package mlc
