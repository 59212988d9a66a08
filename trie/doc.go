// Package trie provides an append-only index from dex member signatures to
// values, queryable by package, class, and wildcard scope patterns.
//
// # Overview
//
// The trie decomposes each signature into typed path elements (see the
// signature package) and stores one tree level per element. Interior nodes
// represent package and class scopes; each inserted signature terminates in
// a leaf holding its value.
//
// Inserting a value for "Ljava/lang/Object;->hashCode()I" creates:
//
//	package:java
//	  package:lang
//	    class:Object
//	      member:hashCode()I -> leaf
//
// # Queries
//
// Match accepts a full signature or a scope pattern and returns the values
// of every member in scope:
//
//	t := trie.New[string]()
//	_ = t.Insert("Ljava/lang/Object;->hashCode()I", "public-api")
//
//	t.Match("Ljava/lang/Object;->hashCode()I") // that one member
//	t.Match("Ljava/lang/Object")               // all members of the class
//	t.Match("Ljava/lang/*")                    // the package, excluding sub-packages
//	t.Match("Ljava/lang/**")                   // the package and all sub-packages
//
// The final component of a wildcard-free pattern always names a class, so
// collecting a whole package takes one of the wildcard forms:
// "Ljava/lang" selects a top-level class called "lang", not the package.
//
// An unmatched pattern yields an empty result, never an error.
//
// # Concurrency
//
// The trie is unsynchronized. The intended usage is build-then-query: insert
// everything up front, then issue read-only queries. Callers that mutate and
// query concurrently must provide their own locking.
package trie
