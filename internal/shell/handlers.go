package shell

import (
	"errors"
	"strings"

	"github.com/rbourbonnavarro/Salesforce-Hiring/internal/vfs"
)

func (s *Shell) quit(args []string) (string, error) {
	if len(args) > 0 {
		return "", errInvalidArguments
	}
	return QuitSentinel, nil
}

func (s *Shell) pwd(args []string) (string, error) {
	if len(args) > 0 {
		return "", errInvalidArguments
	}
	return s.sys.CWD().FullPath(), nil
}

// ls accepts an optional -r flag and an optional -mf <path> pair, in either
// order. Anything else is a malformed invocation.
func (s *Shell) ls(args []string) (string, error) {
	recursive := false
	jump := ""
	hasJump := false

	for i := 0; i < len(args); {
		switch args[i] {
		case flagRecursive:
			if recursive {
				return "", errInvalidArguments
			}
			recursive = true
			i++
		case flagMultiPath:
			if hasJump || i+1 >= len(args) {
				return "", errInvalidArguments
			}
			jump = args[i+1]
			hasJump = true
			i += 2
		default:
			return "", errInvalidArguments
		}
	}

	dir := s.sys.CWD()
	if hasJump {
		target, err := vfs.Resolve(dir, jump)
		if err != nil {
			return MsgDirectoryNotFound, nil
		}
		dir = target
	}

	if recursive {
		return strings.Join(vfs.ListRecursive(dir), "\n"), nil
	}
	return strings.Join(vfs.List(dir), "\n"), nil
}

func (s *Shell) mkdir(args []string) (string, error) {
	if len(args) != 1 {
		return "", errInvalidArguments
	}
	name := args[0]
	if len(name) > vfs.MaxNameLength {
		return MsgInvalidName, nil
	}

	_, err := s.sys.CWD().CreateDirectory(name)
	switch {
	case errors.Is(err, vfs.ErrDirectoryExists):
		return MsgDirectoryExists, nil
	case errors.Is(err, vfs.ErrFileExists):
		return MsgFileExists, nil
	}
	return "", nil
}

// cd navigates a single segment, or a multi-faceted path with -mf. The two
// modes surface different failure strings: single-segment failures are
// "Directory not found", multi-faceted failures are "Invalid path".
func (s *Shell) cd(args []string) (string, error) {
	multi := false
	if len(args) > 0 && args[0] == flagMultiPath {
		multi = true
		args = args[1:]
	}
	if len(args) != 1 {
		return "", errInvalidArguments
	}
	path := args[0]

	if multi {
		target, err := vfs.Resolve(s.sys.CWD(), path)
		if err != nil {
			return MsgInvalidPath, nil
		}
		s.sys.ChangeDirectory(target)
		return "", nil
	}

	if len(path) > vfs.MaxNameLength {
		return "", errInvalidArguments
	}
	target, err := vfs.ResolveSegment(s.sys.CWD(), path)
	if err != nil {
		return MsgDirectoryNotFound, nil
	}
	s.sys.ChangeDirectory(target)
	return "", nil
}

// touch is idempotent: an existing name of either kind is a no-op, never an
// overwrite.
func (s *Shell) touch(args []string) (string, error) {
	if len(args) != 1 {
		return "", errInvalidArguments
	}
	name := args[0]
	if len(name) > vfs.MaxNameLength {
		return MsgInvalidName, nil
	}

	if _, exists := s.sys.CWD().Child(name); exists {
		return "", nil
	}
	if _, err := s.sys.CWD().CreateFile(name); err != nil {
		// Unreachable: existence was just checked and commands run
		// one at a time.
		return "", errInvalidArguments
	}
	return "", nil
}
