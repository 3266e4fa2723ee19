package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/rbourbonnavarro/Salesforce-Hiring/internal/vfs"
	"github.com/rbourbonnavarro/Salesforce-Hiring/pkg/vfsh"
)

// errInvalidArguments is raised by handlers when the argument shape is
// wrong; Exec maps it to MsgInvalidCommand before any tree mutation.
var errInvalidArguments = errors.New("invalid arguments")

// handlerFunc runs one verb against already-split arguments and returns the
// result string. The only error it may return is errInvalidArguments.
type handlerFunc func(args []string) (string, error)

// Shell interprets command lines against a vfs.System.
// Not safe for concurrent use; commands run to completion one at a time.
type Shell struct {
	sys       *vfs.System
	logger    vfsh.Logger
	sessionID string
	handlers  map[string]handlerFunc
}

// New creates a Shell over sys. Diagnostics go to logger; command results
// never do.
func New(sys *vfs.System, logger vfsh.Logger) *Shell {
	s := &Shell{
		sys:       sys,
		logger:    logger,
		sessionID: uuid.NewString(),
	}
	s.handlers = map[string]handlerFunc{
		"quit":  s.quit,
		"pwd":   s.pwd,
		"ls":    s.ls,
		"mkdir": s.mkdir,
		"cd":    s.cd,
		"touch": s.touch,
	}
	logger.Verbose("session %s started", s.sessionID)
	return s
}

// SessionID returns the identifier attached to this session's diagnostics.
func (s *Shell) SessionID() string { return s.sessionID }

// Exec interprets one command line and returns its result string.
//
// The line is trimmed of surrounding whitespace, then split on single
// spaces: the first word selects the verb, the rest are its arguments.
// Unknown verbs yield MsgUnrecognizedCommand; known verbs with a malformed
// argument shape yield MsgInvalidCommand.
func (s *Shell) Exec(line string) string {
	words := strings.Split(strings.TrimSpace(line), " ")
	verb, args := words[0], words[1:]

	handler, ok := s.handlers[verb]
	if !ok {
		return MsgUnrecognizedCommand
	}

	s.logger.Verbose("session %s: %s %v", s.sessionID, verb, args)

	result, err := handler(args)
	if err != nil {
		return MsgInvalidCommand
	}
	return result
}

// Run feeds lines from r through Exec until the quit sentinel or EOF,
// writing non-empty results to w, one per line. Blank lines are skipped
// without being interpreted. If prompt is non-empty it is written to w
// before each read.
func (s *Shell) Run(r io.Reader, w io.Writer, prompt string) error {
	scanner := bufio.NewScanner(r)
	for {
		if prompt != "" {
			fmt.Fprint(w, prompt)
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		result := s.Exec(line)
		if result == QuitSentinel {
			break
		}
		if result != "" {
			fmt.Fprintln(w, result)
		}
	}
	return scanner.Err()
}
