// Package prefixset implements a set of step-slice keys collapsed under
// prefix compression: only maximal keys are retained, any key subsumed by
// a shorter retained key is discarded. Membership asks whether some
// retained key is a prefix of the queried key.
//
// Individual keys cannot be removed: dropping one retained key cannot say
// which of the keys it once subsumed should be reconstituted. Del and Pop
// therefore fail with ErrUnsupported instead of guessing.
package prefixset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aglyzov/go-trie/trie"
)

// ErrUnsupported is returned by operations that are meaningless for a
// prefix-compressed set.
var ErrUnsupported = errors.New("prefixset: operation not supported under prefix compression")

// Set stores keys collapsed under prefix compression. All structural work
// is delegated to an internal trie; this type only adds the compression
// policy on Add and the shallow-enumeration policy on reads.
type Set[K comparable] struct {
	store trie.Trie[K, struct{}]
}

// InitSet resets a set and fills it from the given keys.
func InitSet[K comparable](s *Set[K], keys ...[]K) *Set[K] {
	*s = Set[K]{}
	for _, key := range keys {
		s.Add(key)
	}
	return s
}

// New returns a set holding the given keys, compressed.
func New[K comparable](keys ...[]K) *Set[K] {
	return InitSet(&Set[K]{}, keys...)
}

// Len returns the number of retained (maximal) keys.
func (s *Set[K]) Len() int { return s.store.Len() }

func (s *Set[K]) Empty() bool { return s.store.Empty() }

// Clear drops all keys.
func (s *Set[K]) Clear() { s.store.Clear() }

// EnableSorting makes enumeration visit keys in ascending step order; see
// trie.Trie.EnableSorting.
func (s *Set[K]) EnableSorting(less func(a, b K) bool) { s.store.EnableSorting(less) }

// DisableSorting restores insertion-order enumeration.
func (s *Set[K]) DisableSorting() { s.store.DisableSorting() }

// Has reports whether key is covered by the set: some retained key is a
// prefix of it, the key itself included.
func (s *Set[K]) Has(key []K) bool {
	return s.store.ShortestPrefix(key) != nil
}

// Add retains key unless it is already covered by a retained prefix.
// Longer keys subsumed by key are dropped first, so no two retained keys
// are ever in a prefix relation. Reports whether the set changed.
func (s *Set[K]) Add(key []K) bool {
	if s.Has(key) {
		return false
	}
	s.store.DelSubtrie(key)
	s.store.Set(key, struct{}{})
	return true
}

// Del fails with ErrUnsupported: a prefix-compressed set cannot remove one
// key without ambiguity about the keys it subsumed.
func (s *Set[K]) Del(key []K) error {
	return ErrUnsupported
}

// Pop fails with ErrUnsupported; see Del.
func (s *Set[K]) Pop() ([]K, error) {
	return nil, ErrUnsupported
}

// Iter calls the handler for every retained key under prefix. The key
// slice is reused between calls; copy it if retained. The handler aborts
// by returning false.
func (s *Set[K]) Iter(prefix []K, h func(key []K) bool) error {
	return s.store.IterShallow(prefix, func(item trie.Item[K, struct{}]) bool {
		return h(item.Key)
	})
}

// Keys collects every retained key under prefix.
func (s *Set[K]) Keys(prefix []K) ([][]K, error) {
	keys := make([][]K, 0, s.store.Len())
	err := s.Iter(prefix, func(key []K) bool {
		keys = append(keys, append([]K(nil), key...))
		return true
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// Copy returns an independent copy of the set.
func (s *Set[K]) Copy() *Set[K] {
	return &Set[K]{store: *s.store.Copy()}
}

func (s *Set[K]) String() string {
	var buf strings.Builder
	buf.WriteString("PrefixSet{")
	first := true
	_ = s.Iter(nil, func(key []K) bool {
		if !first {
			buf.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&buf, "%v", key)
		return true
	})
	buf.WriteByte('}')
	return buf.String()
}
