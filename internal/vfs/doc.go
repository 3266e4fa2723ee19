// Package vfs implements the in-memory hierarchical file system: the entry
// tree, path resolution, and directory listings.
//
// The tree is owned strictly top-down: a directory owns its children, and
// every non-root entry carries a non-owning back-reference to its parent
// used only for upward traversal (path reconstruction, "..").
//
// Nothing in this package produces user-facing text; callers translate
// sentinel errors into their own messages.
package vfs
