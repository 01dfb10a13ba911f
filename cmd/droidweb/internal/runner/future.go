package runner

import (
	"bytes"
	"context"
	"time"
)

// Future is a pending command result. It resolves once the process exits.
type Future struct {
	done chan struct{}
	res  *Result
	err  error
}

// Start launches c in the background, capturing stdout and stderr.
func Start(ctx context.Context, c Command) *Future {
	f := &Future{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		var stdout, stderr bytes.Buffer
		cmd := build(ctx, c)
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		start := time.Now()
		err := cmd.Run()
		f.res = &Result{
			Stdout:   stdout.Bytes(),
			Stderr:   stderr.Bytes(),
			ExitCode: exitCode(cmd),
			Duration: time.Since(start),
		}
		if err != nil {
			f.err = wrap(c, f.res, err)
		}
	}()

	return f
}

// Wait blocks until the command exits. A non-zero exit rejects the future
// with a *CommandError carrying the captured stderr.
func (f *Future) Wait() (*Result, error) {
	<-f.done
	return f.res, f.err
}

// Async is the future-based Executor. OnStart, if set, is called when a
// command starts and the returned function when it settles; the CLI uses
// it to drive a progress spinner.
type Async struct {
	OnStart func(Command) (stop func())
}

// Execute starts c and waits for the future to settle.
func (a *Async) Execute(ctx context.Context, c Command) (*Result, error) {
	f := Start(ctx, c)
	if a.OnStart != nil {
		stop := a.OnStart(c)
		defer stop()
	}
	return f.Wait()
}
