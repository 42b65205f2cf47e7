package trie

import "reflect"

// Copy returns a structural copy of the trie. Nodes and child collections
// are fresh; the stored values are shared with the original.
func (t *Trie[K, V]) Copy() *Trie[K, V] {
	return t.copyWith(nil)
}

// DeepCopy returns an independent copy, cloning each stored value through
// copyVal, which is invoked exactly once per value. A nil copyVal shares
// values, same as Copy.
func (t *Trie[K, V]) DeepCopy(copyVal func(V) V) *Trie[K, V] {
	return t.copyWith(copyVal)
}

// copyWith runs the worklist copy: each popped task copies one node's
// value into its pre-made shell and clones the node's child collection,
// enqueueing one new task per fresh shell. Every shell is enqueued exactly
// once at creation, so the loop makes a single pass over the new graph and
// its cost is bounded by the key count, not the call stack by the depth.
func (t *Trie[K, V]) copyWith(copyVal func(V) V) *Trie[K, V] {
	if copyVal == nil {
		copyVal = func(v V) V { return v }
	}
	nt := &Trie[K, V]{size: t.size, sorted: t.sorted, less: t.less}
	if t.root == nil {
		return nt
	}
	nt.root = newNode[K, V]()
	tasks := []copyTask[K, V]{{src: t.root, dst: nt.root}}
	for l := len(tasks); l > 0; l = len(tasks) {
		task := tasks[l-1]
		tasks = tasks[:l-1]
		if task.src.hasVal {
			task.dst.val = copyVal(task.src.val)
			task.dst.hasVal = true
		}
		task.dst.children = task.src.children.clone(&tasks)
	}
	return nt
}

// Equal reports deep equality of the stored (key, value) pairs,
// independent of child representation and insertion order. Values are
// compared with reflect.DeepEqual; use EqualFunc for custom comparison.
func (t *Trie[K, V]) Equal(other *Trie[K, V]) bool {
	return t.EqualFunc(other, func(a, b V) bool { return reflect.DeepEqual(a, b) })
}

// EqualFunc is Equal with a caller-supplied value comparison.
func (t *Trie[K, V]) EqualFunc(other *Trie[K, V], eq func(a, b V) bool) bool {
	if t.size != other.size {
		return false
	}
	return equalNodes(t.root, other.root, eq)
}

func equalNodes[K comparable, V any](a, b *node[K, V], eq func(x, y V) bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.hasVal != b.hasVal {
		return false
	}
	if a.hasVal && !eq(a.val, b.val) {
		return false
	}
	if a.children.count() != b.children.count() {
		return false
	}
	equal := true
	a.children.each(func(step K, child *node[K, V]) bool {
		peer := b.children.get(step)
		equal = peer != nil && equalNodes(child, peer, eq)
		return equal
	})
	return equal
}
