package vfs

import (
	"errors"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// PathSeparator separates components in path expressions and full paths.
const PathSeparator = "/"

// RootName is the fixed name of the root directory.
const RootName = "root"

// MaxNameLength is the longest entry name accepted by creation commands.
const MaxNameLength = 100

// Kind distinguishes the two entry types.
type Kind int

const (
	// KindDirectory is an entry that can hold children.
	KindDirectory Kind = iota
	// KindFile is a leaf entry. Content is not modeled, only existence.
	KindFile
)

// Sentinel errors for tree mutations. Callers distinguish them with
// errors.Is() to produce kind-specific messages.
var (
	// ErrDirectoryExists indicates a creation collided with an existing directory.
	ErrDirectoryExists = errors.New("directory already exists")

	// ErrFileExists indicates a creation collided with an existing file.
	ErrFileExists = errors.New("file already exists")
)

// Entry is a node in the tree, either a directory or a file.
//
// Children are keyed by name, unique within the directory regardless of
// kind, and preserve insertion order; the order is semantically significant
// for listings.
type Entry struct {
	name     string
	kind     Kind
	parent   *Entry
	children *orderedmap.OrderedMap[string, *Entry]
}

// NewRoot creates a fresh root directory. The root's parent is nil; it is
// the only entry with no parent.
func NewRoot() *Entry {
	return newDirectory(RootName, nil)
}

func newDirectory(name string, parent *Entry) *Entry {
	return &Entry{
		name:     name,
		kind:     KindDirectory,
		parent:   parent,
		children: orderedmap.New[string, *Entry](),
	}
}

// Name returns the entry's own name.
func (e *Entry) Name() string { return e.name }

// Kind reports whether the entry is a directory or a file.
func (e *Entry) Kind() Kind { return e.kind }

// IsDir reports whether the entry is a directory.
func (e *Entry) IsDir() bool { return e.kind == KindDirectory }

// Parent returns the parent directory, or nil for the root.
func (e *Entry) Parent() *Entry { return e.parent }

// Child looks up a direct child by name.
func (e *Entry) Child(name string) (*Entry, bool) {
	if e.children == nil {
		return nil, false
	}
	return e.children.Get(name)
}

// CreateDirectory inserts a new directory child under name.
// It never overwrites: a collision returns ErrDirectoryExists or
// ErrFileExists depending on the kind of the existing entry.
func (e *Entry) CreateDirectory(name string) (*Entry, error) {
	if existing, ok := e.Child(name); ok {
		if existing.IsDir() {
			return nil, ErrDirectoryExists
		}
		return nil, ErrFileExists
	}
	child := newDirectory(name, e)
	e.children.Set(name, child)
	return child, nil
}

// CreateFile inserts a new file child under name.
// It never overwrites: a collision returns ErrDirectoryExists or
// ErrFileExists depending on the kind of the existing entry.
func (e *Entry) CreateFile(name string) (*Entry, error) {
	if existing, ok := e.Child(name); ok {
		if existing.IsDir() {
			return nil, ErrDirectoryExists
		}
		return nil, ErrFileExists
	}
	child := &Entry{name: name, kind: KindFile, parent: e}
	e.children.Set(name, child)
	return child, nil
}

// ChildNames returns the names of all direct children in insertion order.
func (e *Entry) ChildNames() []string {
	names := make([]string, 0)
	if e.children == nil {
		return names
	}
	for pair := e.children.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// FileNames returns the names of direct file children in insertion order.
func (e *Entry) FileNames() []string {
	return e.namesOfKind(KindFile)
}

// DirNames returns the names of direct directory children in insertion order.
func (e *Entry) DirNames() []string {
	return e.namesOfKind(KindDirectory)
}

func (e *Entry) namesOfKind(kind Kind) []string {
	names := make([]string, 0)
	if e.children == nil {
		return names
	}
	for pair := e.children.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.kind == kind {
			names = append(names, pair.Key)
		}
	}
	return names
}

// Dirs returns the direct directory children in insertion order.
func (e *Entry) Dirs() []*Entry {
	dirs := make([]*Entry, 0)
	if e.children == nil {
		return dirs
	}
	for pair := e.children.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.IsDir() {
			dirs = append(dirs, pair.Value)
		}
	}
	return dirs
}

// FullPath reconstructs the absolute path of the entry by walking parent
// references up to the root, e.g. "/root/sub1".
func (e *Entry) FullPath() string {
	segments := []string{e.name}
	for cur := e.parent; cur != nil; cur = cur.parent {
		segments = append(segments, cur.name)
	}
	// Reverse: collected leaf-first.
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return PathSeparator + strings.Join(segments, PathSeparator)
}
