// Package trie implements a prefix tree keyed by slices of arbitrary
// comparable steps (bytes, runes, path segments, ...) with prefix-oriented
// queries on top of the usual ordered-container operations.
//
// Node layout:
// -----------
//
// Every node holds an optional value and a child collection. The child
// collection adapts its representation to the branching factor, so large
// sparse tries stay compact:
//
//   - empty  - no children; a stateless placeholder;
//   - single - exactly one (step, child) pair stored inline, no map;
//   - multi  - a map from step to child plus the insertion order of steps.
//
// Representation transitions happen on mutation and always settle on the
// minimal variant for the actual child count. Because a transition replaces
// the collection itself, the internal mutators return the representation
// that the parent node must store back.
//
// Example trie holding {"ca": 1, "cat": 2, "dog": 3, "dot": 4}:
//
//	          ,-- [c] -- [a:1] -- [t:2]
//	[root] --+
//	          |             ,-- [g:3]
//	          `-- [d] -- [o]--+
//	                        `-- [t:4]
//
// [c], [d] and [o] are branch nodes: children but no value. [a] both holds
// a value and roots a subtrie.
//
// Prefix queries:
// --------------
//
// ShortestPrefix, LongestPrefix and Prefixes inspect the positions along a
// key where values are stored. WalkTowards visits every position reached
// while descending towards a key, whether or not a value is stored there,
// and hands out Step cursors that can read and write the value in place.
//
// Enumeration visits sibling steps in insertion order. EnableSorting
// switches to ascending step order; step types outside the built-in
// orderable kinds need an explicit comparator or iteration fails with
// ErrInvalidOrdering.
//
// A Trie is not safe for concurrent use. Iteration is bound to the
// structure at the time it starts: structural mutation mid-iteration is
// detected and reported as ErrConcurrentModification.
package trie
