package trie

import (
	"fmt"

	"github.com/veridex/sigtrie/signature"
)

// selector controls which children of the node reached by a pattern's
// prefix contribute values during collection. It applies only at that first
// level: once a child is accepted its whole subtree is collected.
type selector uint8

const (
	// selectAll accepts every child.
	selectAll selector = iota

	// selectSkipPackages accepts every child except sub-packages.
	selectSkipPackages
)

// node is one tree node, either an interior scope or a leaf value.
type node[V any] interface {
	// appendValues appends the values beneath the node to dst, filtering
	// the node's immediate children through sel.
	appendValues(dst []V, sel selector) []V
}

// interior represents a package, class, or nested-class scope. Children are
// keyed by their typed element, so a package and a class with the same
// textual name never collide.
type interior[V any] struct {
	children map[signature.Element]node[V]
}

func newInterior[V any]() *interior[V] {
	return &interior[V]{children: make(map[signature.Element]node[V])}
}

func (n *interior[V]) appendValues(dst []V, sel selector) []V {
	for el, child := range n.children {
		if sel == selectSkipPackages && el.Kind == signature.KindPackage {
			continue
		}
		dst = child.appendValues(dst, selectAll)
	}
	return dst
}

// leaf holds the value associated with one member signature.
type leaf[V any] struct {
	value V
}

func (l leaf[V]) appendValues(dst []V, _ selector) []V {
	return append(dst, l.value)
}

// Trie is an append-only index from member signatures to values of type V.
// The zero value is not usable; call New.
type Trie[V any] struct {
	root *interior[V]
	size int
}

// New returns an empty trie.
func New[V any]() *Trie[V] {
	return &Trie[V]{root: newInterior[V]()}
}

// Insert associates value with the given member signature.
//
// It returns ErrNotMember when sig is a package or class pattern rather
// than a full member signature, ErrDuplicate when an identical signature
// was inserted before, and the signature package's decomposition error when
// sig carries a wildcard member. A failed Insert leaves the trie unchanged.
func (t *Trie[V]) Insert(sig string, value V) error {
	elements, err := signature.Split(sig)
	if err != nil {
		return err
	}
	last := elements[len(elements)-1]
	if last.Kind != signature.KindMember {
		return fmt.Errorf("%w: %q", ErrNotMember, sig)
	}

	// Walk to the deepest class scope, creating interior nodes on demand.
	// Member elements only ever occur last, so every existing child along
	// the way is an interior node.
	n := t.root
	for _, el := range elements[:len(elements)-1] {
		child, ok := n.children[el]
		if !ok {
			next := newInterior[V]()
			n.children[el] = next
			n = next
			continue
		}
		n = child.(*interior[V])
	}

	if _, ok := n.children[last]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicate, sig)
	}
	n.children[last] = leaf[V]{value: value}
	t.size++
	return nil
}

// Match returns the values of every member in the scope selected by
// pattern, in unspecified order.
//
// A full signature selects one member. A class pattern selects all members
// of that class, including nested classes. A trailing "*" selects the
// members of the named package, excluding sub-packages; a trailing "**"
// includes sub-packages. The final component of a wildcard-free pattern
// always names a class, so selecting a package subtree requires "**".
//
// An unmatched pattern yields an empty result. The only error is a
// malformed pattern combining a wildcard with a member signature.
func (t *Trie[V]) Match(pattern string) ([]V, error) {
	elements, err := signature.Split(pattern)
	if err != nil {
		return nil, err
	}

	sel := selectAll
	last := elements[len(elements)-1]
	if last.IsWildcard() {
		if last.Kind == signature.KindWildcard {
			sel = selectSkipPackages
		}
		elements = elements[:len(elements)-1]
	}

	var n node[V] = t.root
	for _, el := range elements {
		in, ok := n.(*interior[V])
		if !ok {
			return nil, nil
		}
		if n, ok = in.children[el]; !ok {
			return nil, nil
		}
	}
	return n.appendValues(nil, sel), nil
}

// Values returns every value in the trie, in unspecified order.
func (t *Trie[V]) Values() []V {
	return t.root.appendValues(make([]V, 0, t.size), selectAll)
}

// Len returns the number of signatures inserted.
func (t *Trie[V]) Len() int {
	return t.size
}
