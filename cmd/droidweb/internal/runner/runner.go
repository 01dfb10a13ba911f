// Package runner executes external toolchain commands.
//
// Two strategies are provided behind the Executor interface: Stream blocks
// and forwards output to the terminal, Async starts the process as a Future
// and captures its output.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"strings"
	"time"
)

// ErrCommandNotFound is returned when the executable does not exist.
var ErrCommandNotFound = errors.New("runner: command not found")

// Command describes one external process invocation.
type Command struct {
	Name string
	Args []string
	Dir  string
	Env  []string // appended to os.Environ()
}

// String renders the command line for status output.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, c.Name)
	for _, a := range c.Args {
		if strings.ContainsAny(a, " ;\t") {
			a = fmt.Sprintf("%q", a)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}

// Result is the outcome of a finished command. Stdout and Stderr are only
// populated by capturing strategies.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	Duration time.Duration
}

// Executor runs a command to completion.
type Executor interface {
	Execute(ctx context.Context, c Command) (*Result, error)
}

// CommandError reports a command that could not be started or exited
// non-zero. Output holds captured stderr when the strategy captures it.
type CommandError struct {
	Command  Command
	ExitCode int
	Output   string
	Err      error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command %q failed", e.Command.String())
	if e.ExitCode > 0 {
		msg += fmt.Sprintf(" with exit code %d", e.ExitCode)
	}
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ":\n" + out
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying process error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// Stream runs commands synchronously with output forwarded to the given
// writers (the terminal by default).
type Stream struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Execute runs c and blocks until it exits.
func (s *Stream) Execute(ctx context.Context, c Command) (*Result, error) {
	cmd := build(ctx, c)
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr

	start := time.Now()
	err := cmd.Run()
	res := &Result{ExitCode: exitCode(cmd), Duration: time.Since(start)}
	if err != nil {
		return res, wrap(c, res, err)
	}
	return res, nil
}

func build(ctx context.Context, c Command) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}
	return cmd
}

func exitCode(cmd *exec.Cmd) int {
	if cmd.ProcessState == nil {
		return -1
	}
	return cmd.ProcessState.ExitCode()
}

func wrap(c Command, res *Result, err error) error {
	if notFound(err) {
		err = fmt.Errorf("%w: %s: %v", ErrCommandNotFound, c.Name, err)
	}
	return &CommandError{
		Command:  c,
		ExitCode: res.ExitCode,
		Output:   string(bytes.TrimSpace(res.Stderr)),
		Err:      err,
	}
}

// notFound reports whether err means the executable is missing. A missing
// working directory fails with a "chdir" PathError and is not counted.
func notFound(err error) bool {
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	var pe *fs.PathError
	return errors.As(err, &pe) && pe.Op != "chdir" && errors.Is(pe.Err, fs.ErrNotExist)
}
