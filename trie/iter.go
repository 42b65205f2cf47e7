package trie

// Iter calls the handler for every stored (key, value) pair under prefix
// in depth-first order: siblings in insertion order, or ascending step
// order when sorting is enabled. The handler aborts by returning false.
//
// The key slice passed to the handler is reused between calls; copy it if
// it is retained. An absent prefix yields nothing. Structural mutation
// from inside the handler aborts with ErrConcurrentModification; sorted
// enumeration over an unorderable step type aborts with
// ErrInvalidOrdering.
func (t *Trie[K, V]) Iter(prefix []K, h func(Item[K, V]) bool) error {
	return t.iter(prefix, false, h)
}

// IterShallow is like Iter but does not descend below a node once that
// node's value has been yielded, enumerating only keys whose proper
// prefixes hold no value.
func (t *Trie[K, V]) IterShallow(prefix []K, h func(Item[K, V]) bool) error {
	return t.iter(prefix, true, h)
}

func (t *Trie[K, V]) iter(prefix []K, shallow bool, h func(Item[K, V]) bool) error {
	start := t.lookup(prefix)
	if start == nil {
		return nil
	}
	key := append([]K(nil), prefix...)
	_, err := t.iterate(start, key, shallow, t.version, h)
	return err
}

// iterate reports whether enumeration should continue into siblings.
func (t *Trie[K, V]) iterate(n *node[K, V], key []K, shallow bool, version uint64, h func(Item[K, V]) bool) (bool, error) {
	if n.hasVal {
		if !h(Item[K, V]{Key: key, Val: n.val}) {
			return false, nil
		}
		if t.version != version {
			return false, ErrConcurrentModification
		}
		if shallow {
			return true, nil
		}
	}
	steps, err := t.childSteps(n)
	if err != nil {
		return false, err
	}
	for _, step := range steps {
		cont, err := t.iterate(n.children.get(step), append(key, step), shallow, version, h)
		if err != nil || !cont {
			return cont, err
		}
	}
	return true, nil
}

// Keys collects every stored key under prefix.
func (t *Trie[K, V]) Keys(prefix []K) ([][]K, error) {
	keys := make([][]K, 0, t.size)
	err := t.Iter(prefix, func(item Item[K, V]) bool {
		keys = append(keys, append([]K(nil), item.Key...))
		return true
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// Items collects every stored (key, value) pair under prefix.
func (t *Trie[K, V]) Items(prefix []K) ([]Item[K, V], error) {
	items := make([]Item[K, V], 0, t.size)
	err := t.Iter(prefix, func(item Item[K, V]) bool {
		item.Key = append([]K(nil), item.Key...)
		items = append(items, item)
		return true
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}
