// Package option implements the lrun option model: a closed registry of
// recognized option names, immutable merged option sets, and expansion of a
// merged set into command-line arguments.
package option

import (
	"fmt"
	"strconv"
)

// Name identifies one lrun option.
type Name string

// Registry-known option names. Names use underscores; Expand renders the
// hyphenated flag form.
const (
	MaxCPUTime     Name = "max_cpu_time"
	MaxRealTime    Name = "max_real_time"
	MaxMemory      Name = "max_memory"
	MaxOutput      Name = "max_output"
	MaxNProcess    Name = "max_nprocess"
	MaxRTPrio      Name = "max_rtprio"
	MaxNFile       Name = "max_nfile"
	MaxStack       Name = "max_stack"
	IsolateProcess Name = "isolate_process"
	BasicDevices   Name = "basic_devices"
	RemountDev     Name = "remount_dev"
	ResetEnv       Name = "reset_env"
	Network        Name = "network"
	Chroot         Name = "chroot"
	Chdir          Name = "chdir"
	Nice           Name = "nice"
	Umask          Name = "umask"
	UID            Name = "uid"
	GID            Name = "gid"
	Interval       Name = "interval"
	CGName         Name = "cgname"
	Bindfs         Name = "bindfs"
	Tmpfs          Name = "tmpfs"
	Env            Name = "env"
	FD             Name = "fd"
	Cmd            Name = "cmd"
	Group          Name = "group"
)

// Passthrough option names consumed by the invocation layer. They survive
// merging but never become command-line flags.
const (
	Stdin    Name = "stdin"
	Stdout   Name = "stdout"
	Stderr   Name = "stderr"
	Truncate Name = "truncate"
)

// Cardinality describes how values of an option combine across merges.
type Cardinality int

const (
	// Unknown names pass through merges and are skipped by Expand.
	Unknown Cardinality = iota
	// Single options keep the last written value.
	Single
	// Multi options accumulate values across merges.
	Multi
)

// registry is the closed table of options lrun itself understands.
var registry = map[Name]Cardinality{
	MaxCPUTime:     Single,
	MaxRealTime:    Single,
	MaxMemory:      Single,
	MaxOutput:      Single,
	MaxNProcess:    Single,
	MaxRTPrio:      Single,
	MaxNFile:       Single,
	MaxStack:       Single,
	IsolateProcess: Single,
	BasicDevices:   Single,
	RemountDev:     Single,
	ResetEnv:       Single,
	Network:        Single,
	Chroot:         Single,
	Chdir:          Single,
	Nice:           Single,
	Umask:          Single,
	UID:            Single,
	GID:            Single,
	Interval:       Single,
	CGName:         Single,
	Bindfs:         Multi,
	Tmpfs:          Multi,
	Env:            Multi,
	FD:             Multi,
	Cmd:            Multi,
	Group:          Multi,
}

// CardinalityOf returns the registry cardinality for a name.
func CardinalityOf(name Name) Cardinality {
	return registry[name]
}

// RegistryNames returns every registry-known option name. The order is not
// specified; callers needing determinism must sort.
func RegistryNames() []Name {
	names := make([]Name, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// Pair is a two-component element of a Multi option, e.g. a bindfs
// source/target or an env variable name/value.
type Pair struct {
	First  interface{}
	Second interface{}
}

// Partial is a caller-supplied fragment of options to merge. A nil value
// deletes the key from the merge accumulator.
type Partial map[Name]interface{}

// Set is a normalized, merged option set. Sets are only built by Merge and
// are never mutated afterwards; iteration follows first-appearance order so
// expanded command lines are reproducible.
type Set struct {
	order  []Name
	values map[Name]interface{}
}

// Len returns the number of keys in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Names returns the set's keys in iteration order.
func (s *Set) Names() []Name {
	if s == nil {
		return nil
	}
	out := make([]Name, len(s.order))
	copy(out, s.order)
	return out
}

// Get returns the stored value for a name. Multi values are returned as
// []interface{} of scalars and Pairs.
func (s *Set) Get(name Name) (interface{}, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.values[name]
	return v, ok
}

// GetString returns the scalar value for a name rendered as a string, or ""
// when absent.
func (s *Set) GetString(name Name) string {
	v, ok := s.Get(name)
	if !ok || v == nil {
		return ""
	}
	return formatScalar(v)
}

// GetInt64 returns the scalar value for a name as an int64.
func (s *Set) GetInt64(name Name) (int64, bool) {
	v, ok := s.Get(name)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint64:
		return int64(n), true
	case float64:
		return int64(n), true
	case string:
		parsed, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func formatScalar(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprint(v)
	}
}
