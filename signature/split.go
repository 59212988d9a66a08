package signature

import (
	"fmt"
	"strings"
)

const (
	// classDescriptorPrefix is the leading marker of a dex class descriptor.
	classDescriptorPrefix = "L"

	// memberSeparator splits the qualified class path from the member
	// signature. Only the first occurrence is significant; everything
	// after it is the member signature, verbatim.
	memberSeparator = ";->"

	// packageSeparator splits the qualified class path into package
	// components and the class-name component.
	packageSeparator = "/"

	// innerClassSeparator splits a class-name component into nested
	// class names, outermost first.
	innerClassSeparator = "$"

	wildcard          = "*"
	recursiveWildcard = "**"
)

// Split decomposes a member signature or a scope pattern into its ordered
// elements: package components first, then class names outermost to
// innermost, then the member signature if one is present. A trailing "*" or
// "**" in place of the class name yields a single wildcard element after the
// package components.
//
// Split returns ErrWildcardMember when the input combines a wildcard with a
// member signature. It performs no other validation: the grammar is a caller
// contract, not a parse target with diagnostics.
func Split(s string) ([]Element, error) {
	text := strings.TrimPrefix(s, classDescriptorPrefix)

	// Lja/ng/Outer$Inner;->of(I)V splits into "ja/ng/Outer$Inner" and
	// "of(I)V"; the member part keeps any later separators verbatim.
	qualified, member, hasMember := strings.Cut(text, memberSeparator)

	parts := strings.Split(qualified, packageSeparator)
	packages := parts[:len(parts)-1]
	className := parts[len(parts)-1]

	elements := make([]Element, 0, len(parts)+2)
	for _, pkg := range packages {
		elements = append(elements, Element{Kind: KindPackage, Text: pkg})
	}

	if className == wildcard || className == recursiveWildcard {
		if hasMember {
			return nil, fmt.Errorf("%w: %q combines %s with member %q",
				ErrWildcardMember, s, className, member)
		}
		kind := KindWildcard
		if className == recursiveWildcard {
			kind = KindRecursiveWildcard
		}
		return append(elements, Element{Kind: kind, Text: className}), nil
	}

	for _, class := range strings.Split(className, innerClassSeparator) {
		elements = append(elements, Element{Kind: KindClass, Text: class})
	}
	if hasMember {
		elements = append(elements, Element{Kind: KindMember, Text: member})
	}
	return elements, nil
}
