// Package bag implements the per-node label set: a collection of mutually
// non-dominated labels, closed under weak dominance.
//
// A Bag never grows without a strict Pareto improvement along some
// dimension: AddIfNecessary either rejects an incoming label outright
// (some existing label already weakly dominates it), or accepts it and
// evicts every existing label the new one weakly dominates. Labels are
// keyed by label.Key, so two labels with identical Values collapse into
// one bag entry and the first one inserted wins any tie.
package bag
