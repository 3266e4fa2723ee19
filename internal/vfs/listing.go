package vfs

// List returns every direct child name of dir in insertion order.
// An empty directory yields an empty slice, not an error.
func List(dir *Entry) []string {
	return dir.ChildNames()
}

// ListRecursive lists dir and everything beneath it.
//
// Each directory contributes its separator-prefixed label, then every direct
// file child in insertion order, then each subdirectory in insertion order,
// recursively. Files are always fully enumerated before any subdirectory is
// descended into, at every level.
//
// The label path begins at dir's own name, so a listing rooted at a jump
// target does not include the segments used to reach it.
func ListRecursive(dir *Entry) []string {
	var out []string
	var visit func(label string, e *Entry)
	visit = func(label string, e *Entry) {
		out = append(out, label)
		out = append(out, e.FileNames()...)
		for _, sub := range e.Dirs() {
			visit(label+PathSeparator+sub.Name(), sub)
		}
	}
	visit(PathSeparator+dir.Name(), dir)
	return out
}
