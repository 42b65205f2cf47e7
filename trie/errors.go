package trie

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound is returned when a key has no stored value.
	ErrKeyNotFound = errors.New("trie: key not found")

	// ErrShortKey reports that a key names an internal branch: a node that
	// exists and has children but holds no value. It matches ErrKeyNotFound
	// in errors.Is chains, so callers that do not care about the
	// distinction can treat it as an ordinary miss.
	ErrShortKey = fmt.Errorf("%w (key names a valueless branch)", ErrKeyNotFound)

	// ErrInvalidOrdering is returned by sorted enumeration when the step
	// type has no built-in ordering and no comparator was supplied.
	ErrInvalidOrdering = errors.New("trie: step type is not orderable")

	// ErrConcurrentModification is returned when the trie is structurally
	// mutated while an enumeration is in progress.
	ErrConcurrentModification = errors.New("trie: structure modified during iteration")
)
