package trie

import "errors"

var (
	// ErrNotMember indicates Insert was called with a package or class
	// pattern where a full member signature was required.
	ErrNotMember = errors.New("trie: signature does not identify a specific member")

	// ErrDuplicate indicates Insert was called twice with the same
	// signature.
	ErrDuplicate = errors.New("trie: duplicate signature")
)
