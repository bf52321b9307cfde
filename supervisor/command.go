package supervisor

import (
	"errors"
	"slices"

	"github.com/kballard/go-shellquote"
)

// ErrNoCommand is returned by NewCommandSpec when argv is empty.
var ErrNoCommand = errors.New("no command provided")

// CommandSpec is the external process launched on every attempt.
type CommandSpec struct {
	Path string
	Args []string

	// Env is passed to the child as-is. Nil inherits the supervisor's
	// environment.
	Env []string
}

// NewCommandSpec builds a CommandSpec from argv: the program followed by its
// arguments. argv is copied.
func NewCommandSpec(argv []string) (CommandSpec, error) {
	if len(argv) == 0 || argv[0] == "" {
		return CommandSpec{}, ErrNoCommand
	}

	return CommandSpec{
		Path: argv[0],
		Args: slices.Clone(argv[1:]),
	}, nil
}

// Argv returns the program followed by its arguments.
func (c CommandSpec) Argv() []string {
	return append([]string{c.Path}, c.Args...)
}

// String renders the command the way a shell user would type it.
func (c CommandSpec) String() string {
	return shellquote.Join(c.Argv()...)
}
