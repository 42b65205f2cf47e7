package prefixset

import (
	"bytes"
	"errors"
	"testing"
)

func keys(s *Set[byte]) (out [][]byte) {
	s.Iter(nil, func(key []byte) bool {
		out = append(out, append([]byte(nil), key...))
		return true
	})
	return
}

func checkKeys(t *testing.T, s *Set[byte], expected ...string) {
	t.Helper()
	res := keys(s)
	if len(res) != len(expected) || s.Len() != len(expected) {
		t.Errorf("unexpected key count %d (Len %d), expected %d", len(res), s.Len(), len(expected))
		return
	}
	for i, exp := range expected {
		if !bytes.Equal(res[i], []byte(exp)) {
			t.Errorf("unexpected key %q at %d, expected %q", res[i], i, exp)
		}
	}
}

func Test_EmptySet(t *testing.T) {
	s := New[byte]()
	if !s.Empty() || s.Len() != 0 {
		t.Error("must be empty")
	}
	if s.Has([]byte("a")) {
		t.Error("wrong .Has() result: expected false")
	}
	if keys(s) != nil {
		t.Error("must iterate nothing")
	}
}

func Test_AddHas(t *testing.T) {
	s := New[byte]()
	if !s.Add([]byte("foo")) {
		t.Error("adding to an empty set must report a change")
	}
	for _, key := range []string{"foo", "foobar", "foo/bar"} {
		if !s.Has([]byte(key)) {
			t.Errorf("%q must be covered", key)
		}
	}
	for _, key := range []string{"f", "fo", "bar", ""} {
		if s.Has([]byte(key)) {
			t.Errorf("%q must not be covered", key)
		}
	}
}

func Test_Compression(t *testing.T) {
	tests := []struct {
		ins []string
		res []string
	}{
		// a shorter key subsumes a longer one, in either insertion order
		{[]string{"a", "ab"}, []string{"a"}},
		{[]string{"ab", "a"}, []string{"a"}},
		{[]string{"abc", "abd", "ab"}, []string{"ab"}},
		{[]string{"ab", "abc", "abd"}, []string{"ab"}},
		{[]string{"ab", "cd", "ab"}, []string{"ab", "cd"}},
		{[]string{"abc", "xy", "ab", "x"}, []string{"ab", "x"}},
	}
	for i, test := range tests {
		s := New[byte]()
		for _, key := range test.ins {
			s.Add([]byte(key))
		}
		res := keys(s)
		if len(res) != len(test.res) || s.Len() != len(test.res) {
			t.Errorf("test %d: unexpected length %d, expected %d", i, len(res), len(test.res))
			continue
		}
		for j, exp := range test.res {
			if !bytes.Equal(res[j], []byte(exp)) {
				t.Errorf("test %d: unexpected key %q at %d, expected %q", i, res[j], j, exp)
			}
		}
	}
}

func Test_AddCovered(t *testing.T) {
	s := New[byte]()
	s.Add([]byte("ab"))
	if s.Add([]byte("ab")) {
		t.Error("re-adding a retained key must be a no-op")
	}
	if s.Add([]byte("abc")) {
		t.Error("adding a covered key must be a no-op")
	}
	checkKeys(t, s, "ab")
}

func Test_Iter_Prefix(t *testing.T) {
	s := New[byte]()
	for _, key := range []string{"aa", "ab", "ba"} {
		s.Add([]byte(key))
	}
	var got [][]byte
	s.Iter([]byte("a"), func(key []byte) bool {
		got = append(got, append([]byte(nil), key...))
		return true
	})
	if len(got) != 2 {
		t.Fatalf("unexpected key count %d under prefix", len(got))
	}
	if !bytes.Equal(got[0], []byte("aa")) || !bytes.Equal(got[1], []byte("ab")) {
		t.Errorf("unexpected keys %q under prefix", got)
	}
}

func Test_Iter_Abort(t *testing.T) {
	s := New[byte]()
	s.Add([]byte("a"))
	s.Add([]byte("b"))
	count := 0
	s.Iter(nil, func([]byte) bool {
		count++
		return false
	})
	if count != 1 {
		t.Errorf("expected 1 visit, got %d", count)
	}
}

func Test_DelPop_Unsupported(t *testing.T) {
	s := New([]byte("ab"))
	if err := s.Del([]byte("ab")); !errors.Is(err, ErrUnsupported) {
		t.Errorf("wrong .Del() error: %v", err)
	}
	if _, err := s.Pop(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("wrong .Pop() error: %v", err)
	}
	// the failed calls must not have changed anything
	checkKeys(t, s, "ab")
}

func Test_InitSet(t *testing.T) {
	s := New([]byte("old"))
	InitSet(s, []byte("a"), []byte("ab"))
	checkKeys(t, s, "a")
	if s.Has([]byte("old")) {
		t.Error("InitSet must reset the set")
	}
}

func Test_Keys(t *testing.T) {
	s := New([]byte("x"), []byte("ab"))
	res, err := s.Keys(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 2 {
		t.Fatalf("unexpected key count %d", len(res))
	}
}

func Test_Clear(t *testing.T) {
	s := New([]byte("a"))
	s.Clear()
	if !s.Empty() {
		t.Error("must be empty after Clear")
	}
	if !s.Add([]byte("a")) {
		t.Error("adding after Clear must succeed")
	}
}

func Test_Copy(t *testing.T) {
	s1 := New([]byte("ab"))
	s2 := s1.Copy()
	s2.Add([]byte("cd"))
	if s1.Has([]byte("cd")) {
		t.Error("mutating a copy must not change the original")
	}
	if !s2.Has([]byte("ab")) || !s2.Has([]byte("cd")) {
		t.Error("the copy must cover both keys")
	}
}

func Test_Sorted(t *testing.T) {
	s := New[byte]()
	s.EnableSorting(nil)
	for _, key := range []string{"zz", "mm", "aa"} {
		s.Add([]byte(key))
	}
	checkKeys(t, s, "aa", "mm", "zz")
}

func Test_String(t *testing.T) {
	s := New([]byte{'a'})
	if got := s.String(); got != "PrefixSet{[97]}" {
		t.Errorf("unexpected String(): %q", got)
	}
}
