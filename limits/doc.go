// Package limits implements the category-based admissibility pruner: a
// map from category tag to a Pareto frontier of (cost, time) pairs,
// backed by a memoized cache answering "is this (cost, time) already
// dominated at every category?"
//
// A label is interesting only if, in at least one category, its
// (cost, time) projection beats everything observed so far at nodes
// tagged with that category — taking the maximum bestTime across
// categories in IsLimitExceeded is deliberately permissive, matching the
// design note that a label survives if any single category still has
// room.
//
// Generic over the category tag type T (any comparable type), mirroring
// the Rust original's Limits<T: Eq + Hash>.
package limits
