package shell

// Fixed result strings. Exact and case-sensitive: they are the observable
// contract of the interpreter.
const (
	// MsgInvalidCommand is returned for a known verb invoked with the
	// wrong argument shape (arity, flags).
	MsgInvalidCommand = "Invalid command"

	// MsgUnrecognizedCommand is returned for verbs outside the known set.
	// Intentionally distinct from MsgInvalidCommand.
	MsgUnrecognizedCommand = "Unrecognized command"

	// MsgInvalidName is returned when a creation name exceeds the length limit.
	MsgInvalidName = "Invalid File or Folder Name"

	// MsgDirectoryNotFound is returned when single-segment navigation or an
	// ls jump path fails to resolve.
	MsgDirectoryNotFound = "Directory not found"

	// MsgDirectoryExists is returned when mkdir collides with a directory.
	MsgDirectoryExists = "Directory already exists"

	// MsgFileExists is returned when mkdir collides with a file.
	MsgFileExists = "File already exists"

	// MsgInvalidPath is returned when multi-faceted navigation fails.
	MsgInvalidPath = "Invalid path"
)

// QuitSentinel is the loop-level shutdown sentinel produced by the quit verb.
const QuitSentinel = "quit"

// Flags recognized by individual verbs.
const (
	flagRecursive = "-r"
	flagMultiPath = "-mf"
)
