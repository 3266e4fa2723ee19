package vfs

import (
	"errors"
	"strings"
)

// ParentSegment is the path component that navigates to the parent
// directory. At the root it is a silent no-op, never an error.
const ParentSegment = ".."

// ErrNotFound indicates a path component did not resolve to a directory:
// either no child of that name exists, or the child is a file.
var ErrNotFound = errors.New("directory not found")

// ResolveSegment resolves a single path component against dir.
//
// ".." returns the parent, clamped at the root. Any other component must
// name an existing directory child; a missing name or a file child fails
// with ErrNotFound. Resolution never mutates the tree.
func ResolveSegment(dir *Entry, segment string) (*Entry, error) {
	if segment == ParentSegment {
		if dir.Parent() == nil {
			return dir, nil
		}
		return dir.Parent(), nil
	}
	child, ok := dir.Child(segment)
	if !ok || !child.IsDir() {
		return nil, ErrNotFound
	}
	return child, nil
}

// Resolve resolves a multi-faceted path expression against start.
//
// Trailing separators are stripped first, then the expression is split on
// the separator and each segment is resolved in order against a local
// walking pointer. Empty segments (doubled separators) are inert. A failure
// at any segment aborts the walk and the caller's location is untouched;
// the resolved directory is only returned on full success.
func Resolve(start *Entry, path string) (*Entry, error) {
	cur := start
	trimmed := strings.TrimRight(path, PathSeparator)
	for _, segment := range strings.Split(trimmed, PathSeparator) {
		if segment == "" {
			continue
		}
		next, err := ResolveSegment(cur, segment)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
