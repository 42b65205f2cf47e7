package trie

// ShortestPrefix returns a cursor at the first position along key that
// holds a value, the key itself included, or nil when no prefix of key
// holds one. The scan stops at the first hit. An empty key has exactly one
// prefix, the root, which matches only if the root holds a value.
func (t *Trie[K, V]) ShortestPrefix(key []K) *Step[K, V] {
	var found *Step[K, V]
	t.scanPrefixes(key, func(s *Step[K, V]) bool {
		found = s
		return false
	})
	return found
}

// LongestPrefix returns a cursor at the deepest position along key that
// holds a value, the key itself included, or nil when no prefix of key
// holds one.
func (t *Trie[K, V]) LongestPrefix(key []K) *Step[K, V] {
	var found *Step[K, V]
	t.scanPrefixes(key, func(s *Step[K, V]) bool {
		found = s
		return true
	})
	return found
}

// Prefixes calls the handler with a cursor for every prefix of key that
// holds a value, in increasing depth order, until the handler returns
// false. Structural mutation from inside the handler aborts the scan with
// ErrConcurrentModification.
func (t *Trie[K, V]) Prefixes(key []K, h func(*Step[K, V]) bool) error {
	version := t.version
	aborted := false
	t.scanPrefixes(key, func(s *Step[K, V]) bool {
		if !h(s) {
			return false
		}
		aborted = t.version != version
		return !aborted
	})
	if aborted {
		return ErrConcurrentModification
	}
	return nil
}

// WalkTowards calls the handler with a cursor at every position reached
// while descending from the root towards key, value present or not. The
// walk stops early the moment a step in key has no matching child, so it
// may visit fewer positions than key has steps. Structural mutation from
// inside the handler aborts the walk with ErrConcurrentModification.
func (t *Trie[K, V]) WalkTowards(key []K, h func(*Step[K, V]) bool) error {
	cur := t.root
	if cur == nil {
		return nil
	}
	version := t.version
	for i, step := range key {
		next := cur.children.get(step)
		if next == nil {
			return nil
		}
		cur = next
		if !h(&Step[K, V]{trie: t, node: cur, key: key[:i+1], version: version}) {
			return nil
		}
		if t.version != version {
			return ErrConcurrentModification
		}
	}
	return nil
}

// scanPrefixes drives ShortestPrefix, LongestPrefix and Prefixes: it
// visits, in increasing depth order, every position along key holding a
// value, starting with the root.
func (t *Trie[K, V]) scanPrefixes(key []K, h func(*Step[K, V]) bool) {
	cur := t.root
	if cur == nil {
		return
	}
	version := t.version
	if cur.hasVal && !h(&Step[K, V]{trie: t, node: cur, key: key[:0], version: version}) {
		return
	}
	for i, step := range key {
		next := cur.children.get(step)
		if next == nil {
			return
		}
		cur = next
		if cur.hasVal && !h(&Step[K, V]{trie: t, node: cur, key: key[:i+1], version: version}) {
			return
		}
	}
}
