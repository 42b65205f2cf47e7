package trie

// TraverseFunc builds one result per node, bottom-up. It receives the
// node's full key, the value stored there (hasValue reports presence) and
// a lazy iterator over the results of the node's children. The factory
// decides whether and how many children to realize: children it never
// pulls are never visited.
type TraverseFunc[K comparable, V, T any] func(key []K, value V, hasValue bool, children *SubtrieIterator[K, V, T]) T

// SubtrieIterator produces the results of a node's children one at a time,
// in the trie's enumeration order. It is single-pass and bound to the
// Traverse call that produced it.
type SubtrieIterator[K comparable, V, T any] struct {
	trie    *Trie[K, V]
	factory TraverseFunc[K, V, T]
	parent  *node[K, V]
	key     []K
	steps   []K
	next    int
	version uint64
	err     error
}

// Next returns the next child's result. ok is false when the children are
// exhausted or enumeration failed; failures surface as the error returned
// by the enclosing Traverse.
func (it *SubtrieIterator[K, V, T]) Next() (result T, ok bool) {
	var zero T
	if it.err != nil || it.next >= len(it.steps) {
		return zero, false
	}
	if it.trie.version != it.version {
		it.err = ErrConcurrentModification
		return zero, false
	}
	step := it.steps[it.next]
	it.next++
	// full-slice expression: child keys must not clobber sibling keys the
	// factory may have retained
	childKey := append(it.key[:len(it.key):len(it.key)], step)
	res, err := traverseNode(it.trie, it.factory, it.parent.children.get(step), childKey, it.version)
	if err != nil {
		it.err = err
		return zero, false
	}
	return res, true
}

// Traverse folds the subtree rooted at prefix into an arbitrary aggregate:
// the factory is invoked once per node and combines its children's results
// however it sees fit. An absent prefix fails with ErrKeyNotFound; an
// empty trie still has a root to fold over.
func Traverse[K comparable, V, T any](t *Trie[K, V], prefix []K, factory TraverseFunc[K, V, T]) (T, error) {
	start := t.lookup(prefix)
	if start == nil {
		if len(prefix) > 0 {
			var zero T
			return zero, ErrKeyNotFound
		}
		start = newNode[K, V]()
	}
	key := append([]K(nil), prefix...)
	return traverseNode(t, factory, start, key, t.version)
}

func traverseNode[K comparable, V, T any](t *Trie[K, V], factory TraverseFunc[K, V, T], n *node[K, V], key []K, version uint64) (T, error) {
	steps, err := t.childSteps(n)
	if err != nil {
		var zero T
		return zero, err
	}
	it := &SubtrieIterator[K, V, T]{
		trie:    t,
		factory: factory,
		parent:  n,
		key:     key,
		steps:   steps,
		version: version,
	}
	result := factory(key, n.val, n.hasVal, it)
	return result, it.err
}
