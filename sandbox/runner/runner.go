// Package runner provides the immutable builder API over the lrun engine.
// A Runner accumulates an option set across chained calls; every
// builder-style call returns a new Runner and never mutates the receiver, so
// Runners are safe to share across goroutines.
package runner

import (
	"context"

	"github.com/google/shlex"

	appErr "lrungo/pkg/errors"
	"lrungo/sandbox/engine"
	"lrungo/sandbox/option"
	"lrungo/sandbox/result"
)

// Runner binds a merged option set to an engine.
type Runner struct {
	eng  engine.Engine
	opts *option.Set
}

// New creates a Runner over the given engine with the merge of the given
// partials. A nil engine gets a default-config engine.
func New(eng engine.Engine, partials ...interface{}) (*Runner, error) {
	if eng == nil {
		eng = engine.NewEngine(engine.Config{})
	}
	opts, err := option.Merge(partials...)
	if err != nil {
		return nil, err
	}
	return &Runner{eng: eng, opts: opts}, nil
}

// Options returns the runner's merged option set.
func (r *Runner) Options() *option.Set {
	return r.opts
}

// Where returns a new Runner whose options are the receiver's merged with
// the partial. The receiver is unchanged.
func (r *Runner) Where(partial option.Partial) *Runner {
	merged, err := option.Merge(r.opts, partial)
	if err != nil {
		// Unreachable: both inputs are typed mappings.
		panic(err)
	}
	return &Runner{eng: r.eng, opts: merged}
}

// Run tokenizes command with POSIX shell word splitting and executes it
// under the runner's options.
func (r *Runner) Run(ctx context.Context, command string) (*result.Result, error) {
	argv, err := shlex.Split(command)
	if err != nil {
		return nil, appErr.Wrapf(err, appErr.InvalidParams, "tokenize command failed")
	}
	return r.RunArgv(ctx, argv...)
}

// RunArgv executes a pre-split command under the runner's options.
func (r *Runner) RunArgv(ctx context.Context, argv ...string) (*result.Result, error) {
	if len(argv) == 0 || argv[0] == "" {
		return nil, appErr.New(appErr.EmptyCommand)
	}
	return r.eng.Run(ctx, argv, r.opts)
}
