package trie

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/veridex/sigtrie/signature"
)

// indentSize is the number of spaces per tree level in Dump output.
const indentSize = 2

// Dump writes a human-readable rendering of the trie to w, one edge per
// line, children indented beneath their parent and sorted by label. Leaf
// values are formatted with %v. Intended for debugging and tests.
func (t *Trie[V]) Dump(w io.Writer) error {
	return dumpNode[V](w, t.root, 0)
}

func dumpNode[V any](w io.Writer, n *interior[V], depth int) error {
	keys := make([]signature.Element, 0, len(n.children))
	for el := range n.children {
		keys = append(keys, el)
	}
	slices.SortFunc(keys, func(a, b signature.Element) int {
		return strings.Compare(a.Key(), b.Key())
	})

	indent := strings.Repeat(" ", depth*indentSize)
	for _, el := range keys {
		switch child := n.children[el].(type) {
		case *interior[V]:
			if _, err := fmt.Fprintf(w, "%s%s\n", indent, el.Key()); err != nil {
				return err
			}
			if err := dumpNode[V](w, child, depth+1); err != nil {
				return err
			}
		case leaf[V]:
			if _, err := fmt.Fprintf(w, "%s%s -> %v\n", indent, el.Key(), child.value); err != nil {
				return err
			}
		}
	}
	return nil
}
