package trie

// node is the fundamental recursive unit: an optional value plus a child
// collection whose representation adapts to the branching factor.
type node[K comparable, V any] struct {
	val      V
	hasVal   bool
	children children[K, V]
}

func newNode[K comparable, V any]() *node[K, V] {
	return &node[K, V]{children: emptyChildren[K, V]{}}
}

// set stores a value and returns the previous one, if any.
func (n *node[K, V]) set(val V) (prev V, replaced bool) {
	prev, replaced = n.val, n.hasVal
	n.val, n.hasVal = val, true
	return
}

// clearVal removes the stored value and returns it.
func (n *node[K, V]) clearVal() (prev V) {
	var zero V
	prev = n.val
	n.val, n.hasVal = zero, false
	return
}

// copyTask is one unit of deferred value-copy work: dst is a fresh shell
// whose structure has been cloned but whose value is still pending.
type copyTask[K comparable, V any] struct {
	src, dst *node[K, V]
}

// children is the storage strategy for a node's child links. Three variants
// keep the representation minimal for the actual child count: empty, one
// inline pair, or a map.
//
// add and remove return the representation the caller must store back:
// the empty->single and multi->single transitions replace the collection
// itself, they do not happen in place.
type children[K comparable, V any] interface {
	count() int
	get(step K) *node[K, V]
	add(step K, child *node[K, V]) children[K, V]
	remove(step K) children[K, V]
	// each visits the children in insertion order until the handler
	// returns false; it reports whether all children were visited.
	each(h func(step K, child *node[K, V]) bool) bool
	// clone makes a fresh shell for every child and schedules its value
	// copy on tasks: structure is copied now, values later.
	clone(tasks *[]copyTask[K, V]) children[K, V]
}

type emptyChildren[K comparable, V any] struct{}

func (emptyChildren[K, V]) count() int        { return 0 }
func (emptyChildren[K, V]) get(K) *node[K, V] { return nil }

func (emptyChildren[K, V]) add(step K, child *node[K, V]) children[K, V] {
	return &singleChildren[K, V]{step: step, child: child}
}

func (e emptyChildren[K, V]) remove(K) children[K, V] { return e }

func (emptyChildren[K, V]) each(func(K, *node[K, V]) bool) bool { return true }

func (e emptyChildren[K, V]) clone(*[]copyTask[K, V]) children[K, V] { return e }

type singleChildren[K comparable, V any] struct {
	step  K
	child *node[K, V]
}

func (*singleChildren[K, V]) count() int { return 1 }

func (s *singleChildren[K, V]) get(step K) *node[K, V] {
	if step == s.step {
		return s.child
	}
	return nil
}

func (s *singleChildren[K, V]) add(step K, child *node[K, V]) children[K, V] {
	if step == s.step {
		s.child = child
		return s
	}
	m := &multiChildren[K, V]{
		nodes: make(map[K]*node[K, V], 2),
		order: []K{s.step, step},
	}
	m.nodes[s.step] = s.child
	m.nodes[step] = child
	return m
}

func (s *singleChildren[K, V]) remove(step K) children[K, V] {
	if step == s.step {
		return emptyChildren[K, V]{}
	}
	return s
}

func (s *singleChildren[K, V]) each(h func(K, *node[K, V]) bool) bool {
	return h(s.step, s.child)
}

func (s *singleChildren[K, V]) clone(tasks *[]copyTask[K, V]) children[K, V] {
	shell := newNode[K, V]()
	*tasks = append(*tasks, copyTask[K, V]{src: s.child, dst: shell})
	return &singleChildren[K, V]{step: s.step, child: shell}
}

type multiChildren[K comparable, V any] struct {
	nodes map[K]*node[K, V]
	// order remembers the insertion order of steps so that unsorted
	// enumeration stays deterministic per sibling group.
	order []K
}

func (m *multiChildren[K, V]) count() int { return len(m.order) }

func (m *multiChildren[K, V]) get(step K) *node[K, V] { return m.nodes[step] }

func (m *multiChildren[K, V]) add(step K, child *node[K, V]) children[K, V] {
	if _, ok := m.nodes[step]; !ok {
		m.order = append(m.order, step)
	}
	m.nodes[step] = child
	return m
}

func (m *multiChildren[K, V]) remove(step K) children[K, V] {
	if _, ok := m.nodes[step]; !ok {
		return m
	}
	delete(m.nodes, step)
	for i, s := range m.order {
		if s == step {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	if len(m.order) == 1 {
		last := m.order[0]
		return &singleChildren[K, V]{step: last, child: m.nodes[last]}
	}
	return m
}

func (m *multiChildren[K, V]) each(h func(K, *node[K, V]) bool) bool {
	for _, step := range m.order {
		if !h(step, m.nodes[step]) {
			return false
		}
	}
	return true
}

func (m *multiChildren[K, V]) clone(tasks *[]copyTask[K, V]) children[K, V] {
	dst := &multiChildren[K, V]{
		nodes: make(map[K]*node[K, V], len(m.order)),
		order: append([]K(nil), m.order...),
	}
	for _, step := range m.order {
		shell := newNode[K, V]()
		*tasks = append(*tasks, copyTask[K, V]{src: m.nodes[step], dst: shell})
		dst.nodes[step] = shell
	}
	return dst
}
