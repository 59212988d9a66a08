// Package signature decomposes dex-style member signatures and scope
// patterns into ordered, typed path elements.
//
// # Overview
//
// A member signature names exactly one class member:
//
//	Ljava/lang/Character$UnicodeScript;->of(I)Ljava/lang/Character$UnicodeScript;
//
// A pattern is a signature prefix that selects a scope instead of a single
// member: a package or class path, optionally ending in a wildcard:
//
//	Ljava/lang/Object          (one class)
//	Ljava/lang/*               (a package, excluding sub-packages)
//	Ljava/lang/**              (a package, including sub-packages)
//
// The last path component of a wildcard-free pattern is always a class
// name: "Ljava/lang" is the class "lang" in package "java", not the
// package "java.lang". Package scope is only expressible with a wildcard.
//
// # Grammar
//
//	signature := "L"? qualified-class ";->" member
//	pattern   := "L"? qualified-class
//	qualified-class := (package "/")* (class-path | "*" | "**")
//	class-path := class-name ("$" class-name)*
//
// The grammar is a textual contract shared with external tooling; no other
// separators, escaping, or whitespace handling is defined.
//
// # Decomposition
//
// Split breaks a signature or pattern into elements, each tagged with its
// role. The example signature above decomposes into:
//
//	package:java
//	package:lang
//	class:Character
//	class:UnicodeScript
//	member:of(I)Ljava/lang/Character$UnicodeScript;
//
// Class names are emitted outermost to innermost. The member element, when
// present, is always last and carries the member signature verbatim.
package signature
