package trie

import (
	"fmt"
	"strings"
)

// Item is a stored key/value pair.
type Item[K comparable, V any] struct {
	Key []K
	Val V
}

// Presence describes what a key denotes inside a trie; see Trie.HasNode.
// HasValue and HasSubtrie combine when a key both holds a value and is a
// strict prefix of other stored keys.
type Presence int

const (
	Absent     Presence = 0x0
	HasValue   Presence = 0x1
	HasSubtrie Presence = 0x2
)

// Trie maps step-slice keys to values. The zero value is not ready for
// use; construct instances with New, InitTrie or FromKeys.
//
// A Trie exclusively owns its node graph: two tries never share mutable
// node state unless the owner explicitly asked for a value-sharing Copy,
// and even then only the values are shared, never the nodes.
type Trie[K comparable, V any] struct {
	root   *node[K, V]
	size   int
	sorted bool
	less   func(a, b K) bool
	// version counts structural changes; in-flight enumerations compare
	// against it to fail fast instead of walking a mutated graph.
	version uint64
}

// InitTrie resets a trie and fills it from the given items.
func InitTrie[K comparable, V any](t *Trie[K, V], items ...Item[K, V]) *Trie[K, V] {
	*t = Trie[K, V]{}
	for _, item := range items {
		t.Set(item.Key, item.Val)
	}
	return t
}

// New returns a trie holding the given items.
func New[K comparable, V any](items ...Item[K, V]) *Trie[K, V] {
	return InitTrie(&Trie[K, V]{}, items...)
}

// FromKeys returns a trie mapping every key to the same default value.
func FromKeys[K comparable, V any](keys [][]K, def V) *Trie[K, V] {
	t := New[K, V]()
	for _, key := range keys {
		t.Set(key, def)
	}
	return t
}

// Len returns the number of keys holding a value.
func (t *Trie[K, V]) Len() int { return t.size }

func (t *Trie[K, V]) Empty() bool { return t.size == 0 }

// EnableSorting makes enumeration visit sibling steps in ascending order
// instead of insertion order. A nil less selects the natural ordering of
// the step type; step types outside the built-in orderable kinds then fail
// with ErrInvalidOrdering at iteration time.
func (t *Trie[K, V]) EnableSorting(less func(a, b K) bool) {
	t.sorted, t.less = true, less
}

// DisableSorting restores insertion-order enumeration.
func (t *Trie[K, V]) DisableSorting() {
	t.sorted, t.less = false, nil
}

// Clear drops all keys.
func (t *Trie[K, V]) Clear() {
	t.root = nil
	t.size = 0
	t.version++
}

// lookup descends to the node at key without creating anything.
func (t *Trie[K, V]) lookup(key []K) *node[K, V] {
	cur := t.root
	for _, step := range key {
		if cur == nil {
			return nil
		}
		cur = cur.children.get(step)
	}
	return cur
}

// Get returns the value stored at key. A miss is ErrKeyNotFound, or
// ErrShortKey when the key names a branch node without a value.
func (t *Trie[K, V]) Get(key []K) (V, error) {
	var zero V
	n := t.lookup(key)
	switch {
	case n == nil:
		return zero, ErrKeyNotFound
	case !n.hasVal:
		if n.children.count() > 0 {
			return zero, ErrShortKey
		}
		return zero, ErrKeyNotFound
	}
	return n.val, nil
}

// Has reports whether key holds a value.
func (t *Trie[K, V]) Has(key []K) bool {
	n := t.lookup(key)
	return n != nil && n.hasVal
}

// HasNode reports what key denotes: Absent, HasValue, HasSubtrie or the
// combination HasValue|HasSubtrie.
func (t *Trie[K, V]) HasNode(key []K) Presence {
	n := t.lookup(key)
	if n == nil {
		return Absent
	}
	p := Absent
	if n.hasVal {
		p |= HasValue
	}
	if n.children.count() > 0 {
		p |= HasSubtrie
	}
	return p
}

// descend walks to the node at key, materializing missing nodes along the
// way. Representation transitions surface through the add return value,
// which is stored straight back into the parent.
func (t *Trie[K, V]) descend(key []K) *node[K, V] {
	if t.root == nil {
		t.root = newNode[K, V]()
		t.version++
	}
	cur := t.root
	for _, step := range key {
		next := cur.children.get(step)
		if next == nil {
			next = newNode[K, V]()
			cur.children = cur.children.add(step, next)
			t.version++
		}
		cur = next
	}
	return cur
}

// Set stores val at key. Returns the previous value, if any.
func (t *Trie[K, V]) Set(key []K, val V) (prev V, replaced bool) {
	n := t.descend(key)
	prev, replaced = n.set(val)
	if !replaced {
		t.size++
	}
	return
}

// SetDefault returns the value at key, first storing def if none is
// present.
func (t *Trie[K, V]) SetDefault(key []K, def V) V {
	n := t.descend(key)
	if !n.hasVal {
		n.set(def)
		t.size++
	}
	return n.val
}

// Del removes the value at key and returns it. Ancestors left without a
// value and without children are pruned. A key that still roots a subtrie
// after its value is cleared persists as a branch node. Deleting a key
// that names such a branch fails with ErrShortKey; deleting an absent key
// fails with ErrKeyNotFound.
func (t *Trie[K, V]) Del(key []K) (V, error) {
	var zero V
	if t.root == nil {
		return zero, ErrKeyNotFound
	}
	parents := make([]*node[K, V], 0, len(key))
	cur := t.root
	for _, step := range key {
		next := cur.children.get(step)
		if next == nil {
			return zero, ErrKeyNotFound
		}
		parents = append(parents, cur)
		cur = next
	}
	if !cur.hasVal {
		if cur.children.count() > 0 {
			return zero, ErrShortKey
		}
		return zero, ErrKeyNotFound
	}
	prev := cur.clearVal()
	t.size--
	t.prune(parents, key, cur)
	t.version++
	return prev, nil
}

// DelSubtrie removes every key at or below prefix and returns how many
// stored values were dropped. Removing an absent subtrie is a no-op.
func (t *Trie[K, V]) DelSubtrie(prefix []K) int {
	if t.root == nil {
		return 0
	}
	parents := make([]*node[K, V], 0, len(prefix))
	cur := t.root
	for _, step := range prefix {
		next := cur.children.get(step)
		if next == nil {
			return 0
		}
		parents = append(parents, cur)
		cur = next
	}
	removed := countValues(cur)
	cur.clearVal()
	cur.children = emptyChildren[K, V]{}
	t.size -= removed
	t.prune(parents, prefix, cur)
	t.version++
	return removed
}

// prune walks back up from a deletion point removing every node that is
// now both valueless and childless. parents holds the nodes visited on
// the way down, key the steps taken from each of them.
func (t *Trie[K, V]) prune(parents []*node[K, V], key []K, cur *node[K, V]) {
	for i := len(parents) - 1; i >= 0; i-- {
		if cur.hasVal || cur.children.count() > 0 {
			return
		}
		parent := parents[i]
		parent.children = parent.children.remove(key[i])
		cur = parent
	}
	if t.root != nil && !t.root.hasVal && t.root.children.count() == 0 {
		t.root = nil
	}
}

// countValues counts the stored values in the subtree rooted at n using an
// explicit stack.
func countValues[K comparable, V any](n *node[K, V]) int {
	count := 0
	toVisit := []*node[K, V]{n}
	for l := len(toVisit); l > 0; l = len(toVisit) {
		cur := toVisit[l-1]
		toVisit = toVisit[:l-1]
		if cur.hasVal {
			count++
		}
		cur.children.each(func(_ K, child *node[K, V]) bool {
			toVisit = append(toVisit, child)
			return true
		})
	}
	return count
}

func (t *Trie[K, V]) String() string {
	var buf strings.Builder
	buf.WriteString("Trie{")
	first := true
	_ = t.Iter(nil, func(item Item[K, V]) bool {
		if !first {
			buf.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&buf, "%v: %v", item.Key, item.Val)
		return true
	})
	buf.WriteByte('}')
	return buf.String()
}
