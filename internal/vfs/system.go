package vfs

// System holds the single tree instance and the current-location pointer.
// The current location is a non-owning reference into the tree.
//
// One logical actor mutates the system at a time; callers that submit
// commands concurrently must serialize access themselves.
type System struct {
	root *Entry
	cwd  *Entry
}

// NewSystem creates a system with an empty root directory as the current
// location.
func NewSystem() *System {
	root := NewRoot()
	return &System{root: root, cwd: root}
}

// Root returns the root directory.
func (s *System) Root() *Entry { return s.root }

// CWD returns the current location.
func (s *System) CWD() *Entry { return s.cwd }

// ChangeDirectory moves the current location to dir. The caller is
// responsible for resolving dir first; a failed resolution must leave the
// current location untouched, so this is only called after full success.
func (s *System) ChangeDirectory(dir *Entry) {
	s.cwd = dir
}

// Reset replaces the whole tree, typically with one reconstructed from a
// snapshot, and moves the current location to its root.
func (s *System) Reset(root *Entry) {
	s.root = root
	s.cwd = root
}
