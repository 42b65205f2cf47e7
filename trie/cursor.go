package trie

import "fmt"

// Step is a live cursor at one position on a key's path, produced by the
// prefix queries and by WalkTowards. It reads and mutates the value at
// that exact node without re-walking from the root; mutations act on the
// live trie.
//
// A Step borrows the owning trie's node graph. A deletion that prunes the
// node it references detaches the Step: reads and writes keep operating on
// the detached node, silently, but a write through a detached Step no
// longer affects the trie or its length. Lookups never detach a Step.
type Step[K comparable, V any] struct {
	trie    *Trie[K, V]
	node    *node[K, V]
	key     []K
	version uint64
}

// attached reports whether the node is still reachable at key. Cheap when
// no structural change happened since the Step was produced; otherwise it
// re-walks the key once and caches the result.
func (s *Step[K, V]) attached() bool {
	if s.trie.version == s.version {
		return true
	}
	if s.trie.lookup(s.key) == s.node {
		s.version = s.trie.version
		return true
	}
	return false
}

// Key returns the steps consumed to reach this position. The slice may
// alias the queried key and must not be modified.
func (s *Step[K, V]) Key() []K { return s.key }

// IsSet reports whether a value is stored at this position.
func (s *Step[K, V]) IsSet() bool { return s.node.hasVal }

// HasSubtrie reports whether longer keys continue below this position.
func (s *Step[K, V]) HasSubtrie() bool { return s.node.children.count() > 0 }

// Get returns the value at this position, ErrShortKey when the position is
// a valueless branch, ErrKeyNotFound otherwise.
func (s *Step[K, V]) Get() (V, error) {
	if !s.node.hasVal {
		var zero V
		if s.node.children.count() > 0 {
			return zero, ErrShortKey
		}
		return zero, ErrKeyNotFound
	}
	return s.node.val, nil
}

// Set stores val at this position. Returns the previous value, if any.
func (s *Step[K, V]) Set(val V) (prev V, replaced bool) {
	attached := s.attached()
	prev, replaced = s.node.set(val)
	if !replaced && attached {
		s.trie.size++
	}
	return
}

// SetDefault returns the value at this position, first storing def if none
// is present.
func (s *Step[K, V]) SetDefault(def V) V {
	if !s.node.hasVal {
		attached := s.attached()
		s.node.set(def)
		if attached {
			s.trie.size++
		}
	}
	return s.node.val
}

func (s *Step[K, V]) String() string {
	if s == nil {
		return "Step(nil)"
	}
	if s.node.hasVal {
		return fmt.Sprintf("<Step key=%v val=%v subtrie=%v>", s.key, s.node.val, s.HasSubtrie())
	}
	return fmt.Sprintf("<Step key=%v unset subtrie=%v>", s.key, s.HasSubtrie())
}
