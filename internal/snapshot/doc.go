// Package snapshot persists the entry tree to a single path-keyed JSON
// object and reconstructs it.
//
// Save streams one record per directory, depth-first, keyed by the
// directory's full path ("root", "root/sub1", ...). Each record declares
// the directory's immediate file and subdirectory names in insertion order.
// Load is all-or-nothing: it trusts only the declared child lists, and any
// structural problem abandons the whole load so the caller starts empty.
package snapshot
