// Package tierlist holds the normalized tier list state and the pure
// transitions that mutate it.
//
// Every transition is total: unknown ids, mismatched containers and empty
// input are no-ops that return the state unchanged. Each transition keeps the
// global invariant that an item id appears in exactly one container list and
// that every listed id exists in the item dictionary. Check verifies it.
//
// Board wraps the state with a lifecycle: it is opened from a persisted
// snapshot (or the default seed), mutated by dispatching actions and mirrored
// to a key-value slot after every change.
package tierlist
