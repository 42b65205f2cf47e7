package trie

import (
	"cmp"
	"sort"
)

// childSteps returns the sibling steps of n in enumeration order:
// insertion order, or ascending step order when sorting is enabled.
// Sorting a group of fewer than two steps never needs a comparator, so an
// unorderable step type only surfaces once an actual comparison is due.
func (t *Trie[K, V]) childSteps(n *node[K, V]) ([]K, error) {
	steps := make([]K, 0, n.children.count())
	n.children.each(func(step K, _ *node[K, V]) bool {
		steps = append(steps, step)
		return true
	})
	if !t.sorted || len(steps) < 2 {
		return steps, nil
	}
	less := t.less
	if less == nil {
		if less = naturalLess[K](); less == nil {
			return nil, ErrInvalidOrdering
		}
	}
	sort.Slice(steps, func(i, j int) bool { return less(steps[i], steps[j]) })
	return steps, nil
}

// naturalLess returns the built-in ordering for common step kinds, or nil
// when K is not orderable.
func naturalLess[K comparable]() func(a, b K) bool {
	var probe K
	switch any(probe).(type) {
	case string:
		return lessOf[K, string]()
	case int:
		return lessOf[K, int]()
	case int8:
		return lessOf[K, int8]()
	case int16:
		return lessOf[K, int16]()
	case int32:
		return lessOf[K, int32]()
	case int64:
		return lessOf[K, int64]()
	case uint:
		return lessOf[K, uint]()
	case uint8:
		return lessOf[K, uint8]()
	case uint16:
		return lessOf[K, uint16]()
	case uint32:
		return lessOf[K, uint32]()
	case uint64:
		return lessOf[K, uint64]()
	case uintptr:
		return lessOf[K, uintptr]()
	case float32:
		return lessOf[K, float32]()
	case float64:
		return lessOf[K, float64]()
	}
	return nil
}

func lessOf[K comparable, T cmp.Ordered]() func(a, b K) bool {
	return func(a, b K) bool { return any(a).(T) < any(b).(T) }
}
