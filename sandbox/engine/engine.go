// Package engine supervises single synchronous invocations of the lrun
// sandbox executable: it expands merged options into argv, wires the three
// standard streams and the fd-3 report pipe, and decodes the report into a
// typed result.
package engine

import (
	"context"
	"os/exec"
	"sync"

	"lrungo/sandbox/option"
	"lrungo/sandbox/result"
)

// binaryName is the fixed name of the sandbox executable on the search path.
const binaryName = "lrun"

// defaultTruncateBytes caps how much captured stdout/stderr is read back
// into a Result when the caller did not redirect the stream.
const defaultTruncateBytes int64 = 4096

// Engine runs one command under lrun and returns its decoded result.
type Engine interface {
	Run(ctx context.Context, argv []string, opts *option.Set) (*result.Result, error)
	Available() bool
}

// Config controls engine behavior.
type Config struct {
	// BinaryPath overrides the PATH lookup of the lrun executable.
	BinaryPath string
	// TruncateBytes caps capture reads; defaults to 4096.
	TruncateBytes int64
	// ExactExceed switches report EXCEED classification from substring to
	// exact matching.
	ExactExceed bool
}

var (
	locateOnce sync.Once
	locatePath string
	locateErr  error
)

// Executable resolves the lrun binary from PATH once per process lifetime.
func Executable() (string, error) {
	locateOnce.Do(func() {
		locatePath, locateErr = exec.LookPath(binaryName)
	})
	return locatePath, locateErr
}

// Available reports whether the lrun binary can be located on PATH. Callers
// can probe before invoking instead of handling a NotAvailable error.
func Available() bool {
	_, err := Executable()
	return err == nil
}
