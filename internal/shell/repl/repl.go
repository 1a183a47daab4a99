// Package repl implements the interactive lrun shell. The session's only
// mutable state is which Runner snapshot is current; option edits swap in a
// new immutable Runner.
package repl

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/shlex"

	"lrungo/sandbox/option"
	"lrungo/sandbox/profile"
	"lrungo/sandbox/result"
	"lrungo/sandbox/runner"
)

// Session holds shell state.
type Session struct {
	base     *runner.Runner
	current  *runner.Runner
	profiles profile.Repository
	out      io.Writer
}

// New creates a session starting from the given runner.
func New(base *runner.Runner, profiles profile.Repository, out io.Writer) *Session {
	return &Session{
		base:     base,
		current:  base,
		profiles: profiles,
		out:      out,
	}
}

// Run reads and executes lines until exit or EOF.
func (s *Session) Run(ctx context.Context, historyPath string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "lrun> ",
		HistoryFile: historyPath,
	})
	if err != nil {
		return fmt.Errorf("init readline failed: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			// ^C clears the line, ^D exits.
			if err == readline.ErrInterrupt {
				continue
			}
			return nil
		}
		if s.HandleLine(ctx, strings.TrimSpace(line)) {
			return nil
		}
	}
}

// HandleLine executes one shell line and reports whether the session should
// end.
func (s *Session) HandleLine(ctx context.Context, line string) bool {
	if line == "" {
		return false
	}
	verb, rest := splitVerb(line)
	switch verb {
	case "exit", "quit":
		s.printLine("bye")
		return true
	case "help":
		s.printHelp()
	case "show":
		s.showOptions()
	case "reset":
		s.current = s.base
		s.printLine("options reset")
	case "options":
		s.listOptions()
	case "set":
		s.handleSet(rest)
	case "unset":
		s.handleUnset(rest)
	case "profiles":
		s.listProfiles(ctx)
	case "profile":
		s.applyProfile(ctx, rest)
	case "run":
		s.handleRun(ctx, rest)
	default:
		s.printLine("unknown command %q, try help", verb)
	}
	return false
}

func splitVerb(line string) (string, string) {
	idx := strings.IndexByte(line, ' ')
	if idx < 0 {
		return line, ""
	}
	return line[:idx], strings.TrimSpace(line[idx+1:])
}

func (s *Session) listOptions() {
	names := option.RegistryNames()
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	for _, name := range names {
		kind := "single"
		if option.CardinalityOf(name) == option.Multi {
			kind = "multi"
		}
		s.printLine("%-16s %s", name, kind)
	}
	for _, name := range []option.Name{option.Stdin, option.Stdout, option.Stderr, option.Truncate} {
		s.printLine("%-16s passthrough", name)
	}
}

func isPassthrough(name option.Name) bool {
	switch name {
	case option.Stdin, option.Stdout, option.Stderr, option.Truncate:
		return true
	}
	return false
}

func (s *Session) handleSet(args string) {
	fields := strings.Fields(args)
	switch len(fields) {
	case 2:
		s.current = s.current.Where(option.Partial{option.Name(fields[0]): fields[1]})
	case 3:
		s.current = s.current.Where(option.Partial{
			option.Name(fields[0]): option.Pair{First: fields[1], Second: fields[2]},
		})
	default:
		s.printLine("usage: set <option> <value> | set <option> <first> <second>")
		return
	}
	name := option.Name(fields[0])
	if option.CardinalityOf(name) == option.Unknown && !isPassthrough(name) {
		s.printLine("note: %s is not an lrun flag, kept as passthrough", name)
	}
	s.printLine("%s set", fields[0])
}

func (s *Session) handleUnset(args string) {
	name := strings.TrimSpace(args)
	if name == "" {
		s.printLine("usage: unset <option>")
		return
	}
	s.current = s.current.Where(option.Partial{option.Name(name): nil})
	s.printLine("%s unset", name)
}

func (s *Session) showOptions() {
	opts := s.current.Options()
	if opts.Len() == 0 {
		s.printLine("no options set")
		return
	}
	for _, name := range opts.Names() {
		value, _ := opts.Get(name)
		if elems, ok := value.([]interface{}); ok {
			for _, elem := range elems {
				if pair, isPair := elem.(option.Pair); isPair {
					s.printLine("%s = %v %v", name, pair.First, pair.Second)
					continue
				}
				s.printLine("%s = %v", name, elem)
			}
			continue
		}
		s.printLine("%s = %v", name, value)
	}
}

func (s *Session) listProfiles(ctx context.Context) {
	if s.profiles == nil {
		s.printLine("no profiles loaded")
		return
	}
	names := s.profiles.ListProfiles(ctx)
	if len(names) == 0 {
		s.printLine("no profiles loaded")
		return
	}
	for _, name := range names {
		s.printLine(name)
	}
}

func (s *Session) applyProfile(ctx context.Context, args string) {
	name := strings.TrimSpace(args)
	if name == "" {
		s.printLine("usage: profile <name>")
		return
	}
	if s.profiles == nil {
		s.printLine("no profiles loaded")
		return
	}
	prof, err := s.profiles.GetProfile(ctx, name)
	if err != nil {
		s.printLine("error: %v", err)
		return
	}
	s.current = s.current.Where(prof.Partial())
	s.printLine("profile %s applied", name)
}

func (s *Session) handleRun(ctx context.Context, args string) {
	if strings.TrimSpace(args) == "" {
		s.printLine("usage: run <command...>")
		return
	}
	argv, err := shlex.Split(args)
	if err != nil {
		s.printLine("error: %v", err)
		return
	}
	res, err := s.current.RunArgv(ctx, argv...)
	if err != nil {
		s.printLine("error: %v", err)
		return
	}
	s.printResult(res)
}

func (s *Session) printResult(res *result.Result) {
	s.printLine("exitcode %d", res.ExitCode)
	if res.Signaled {
		s.printLine("signal   %d", res.Signal)
	}
	s.printLine("cputime  %.3fs", res.CPUTime)
	s.printLine("memory   %d bytes", res.MemoryBytes)
	s.printLine("exceed   %s", res.Exceeded)
	if len(res.Stdout) > 0 {
		s.printLine("--- stdout ---\n%s", string(res.Stdout))
	}
	if len(res.Stderr) > 0 {
		s.printLine("--- stderr ---\n%s", string(res.Stderr))
	}
}

func (s *Session) printHelp() {
	s.printLine("commands:")
	s.printLine("  show                        print current options")
	s.printLine("  options                     list recognized option names")
	s.printLine("  set <option> <value...>     set an option (two values form a pair)")
	s.printLine("  unset <option>              remove an option")
	s.printLine("  reset                       drop all edits")
	s.printLine("  profiles                    list loaded profiles")
	s.printLine("  profile <name>              apply a profile")
	s.printLine("  run <command...>            run a command under lrun")
	s.printLine("  exit                        leave the shell")
}

func (s *Session) printLine(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format+"\n", args...)
}
