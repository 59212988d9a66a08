package signature

// Kind identifies the role of one element within a decomposed signature
// or pattern.
type Kind uint8

const (
	// KindPackage is one namespace component of the qualified class path.
	KindPackage Kind = iota + 1

	// KindClass is one class-name component, outermost to innermost.
	KindClass

	// KindMember is the member signature following the class path.
	// When present it is always the final element.
	KindMember

	// KindWildcard ("*") selects the classes directly inside a package,
	// excluding sub-packages. Only valid as the final element of a pattern.
	KindWildcard

	// KindRecursiveWildcard ("**") selects the classes inside a package
	// and all of its sub-packages. Only valid as the final element of a
	// pattern.
	KindRecursiveWildcard
)

// Element is one typed component of a decomposed signature or pattern.
// Elements are comparable and serve directly as trie edge keys: the Kind
// tag keeps a package and a class with the same textual name distinct.
type Element struct {
	Kind Kind
	Text string
}

// Key renders the element as a disambiguated label, e.g. "package:java",
// "class:Object", "member:hashCode()I", "*", "**".
func (e Element) Key() string {
	switch e.Kind {
	case KindPackage:
		return "package:" + e.Text
	case KindClass:
		return "class:" + e.Text
	case KindMember:
		return "member:" + e.Text
	default:
		return e.Text
	}
}

// IsWildcard reports whether the element is a single- or multi-level
// package wildcard.
func (e Element) IsWildcard() bool {
	return e.Kind == KindWildcard || e.Kind == KindRecursiveWildcard
}
