// Package runnertest provides an Executor that records commands instead of
// running them.
package runnertest

import (
	"context"
	"sync"

	"github.com/go-drift/droidweb/cmd/droidweb/internal/runner"
)

// Recorder records every executed command. If Handle is set it is called
// for each command and its return values are passed through.
type Recorder struct {
	mu       sync.Mutex
	Commands []runner.Command
	Handle   func(runner.Command) (*runner.Result, error)
}

// Execute records c.
func (r *Recorder) Execute(ctx context.Context, c runner.Command) (*runner.Result, error) {
	r.mu.Lock()
	r.Commands = append(r.Commands, c)
	r.mu.Unlock()

	if r.Handle != nil {
		return r.Handle(c)
	}
	return &runner.Result{}, nil
}

// Last returns the most recent command, or the zero Command.
func (r *Recorder) Last() runner.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Commands) == 0 {
		return runner.Command{}
	}
	return r.Commands[len(r.Commands)-1]
}
