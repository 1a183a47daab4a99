// Package result defines the typed outcome of one sandboxed run.
package result

// Exceeded identifies which resource ceiling the supervised program hit.
type Exceeded string

const (
	ExceedNone   Exceeded = "none"
	ExceedTime   Exceeded = "time"
	ExceedMemory Exceeded = "memory"
	ExceedOutput Exceeded = "output"
)

// Result captures one invocation's decoded report plus captured output.
// It is constructed once per invocation and immutable afterwards.
type Result struct {
	// MemoryBytes is the peak resident memory of the supervised program.
	MemoryBytes int64
	// CPUTime is consumed CPU time in seconds.
	CPUTime float64
	// Exceeded names the limit the program hit, or ExceedNone.
	Exceeded Exceeded
	// ExitCode is the supervised program's own exit status.
	ExitCode int
	// Signaled is true when the program was terminated by a signal;
	// Signal is meaningful only then.
	Signaled bool
	Signal   int
	// Stdout and Stderr hold truncated captures. They are nil when the
	// caller redirected the corresponding stream to its own file.
	Stdout []byte
	Stderr []byte
}

// Crashed reports whether the supervised program was terminated by a signal.
func (r *Result) Crashed() bool {
	return r.Signaled
}

// OK reports a clean run: exit 0, no signal, no limit exceeded.
func (r *Result) OK() bool {
	return r.ExitCode == 0 && !r.Signaled && r.Exceeded == ExceedNone
}
