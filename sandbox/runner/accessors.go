package runner

import "lrungo/sandbox/option"

// Per-option accessors, written mechanically from the option registry plus
// the stdin/stdout/stderr/truncate passthroughs. Each is exactly
// Where(option.Partial{name: value}).

func (r *Runner) MaxCPUTime(seconds float64) *Runner {
	return r.Where(option.Partial{option.MaxCPUTime: seconds})
}

func (r *Runner) MaxRealTime(seconds float64) *Runner {
	return r.Where(option.Partial{option.MaxRealTime: seconds})
}

func (r *Runner) MaxMemory(bytes int64) *Runner {
	return r.Where(option.Partial{option.MaxMemory: bytes})
}

func (r *Runner) MaxOutput(bytes int64) *Runner {
	return r.Where(option.Partial{option.MaxOutput: bytes})
}

func (r *Runner) MaxNProcess(n int64) *Runner {
	return r.Where(option.Partial{option.MaxNProcess: n})
}

func (r *Runner) MaxRTPrio(n int64) *Runner {
	return r.Where(option.Partial{option.MaxRTPrio: n})
}

func (r *Runner) MaxNFile(n int64) *Runner {
	return r.Where(option.Partial{option.MaxNFile: n})
}

func (r *Runner) MaxStack(bytes int64) *Runner {
	return r.Where(option.Partial{option.MaxStack: bytes})
}

func (r *Runner) IsolateProcess(enabled bool) *Runner {
	return r.Where(option.Partial{option.IsolateProcess: enabled})
}

func (r *Runner) BasicDevices(enabled bool) *Runner {
	return r.Where(option.Partial{option.BasicDevices: enabled})
}

func (r *Runner) RemountDev(enabled bool) *Runner {
	return r.Where(option.Partial{option.RemountDev: enabled})
}

func (r *Runner) ResetEnv(enabled bool) *Runner {
	return r.Where(option.Partial{option.ResetEnv: enabled})
}

func (r *Runner) Network(enabled bool) *Runner {
	return r.Where(option.Partial{option.Network: enabled})
}

func (r *Runner) Chroot(path string) *Runner {
	return r.Where(option.Partial{option.Chroot: path})
}

func (r *Runner) Chdir(path string) *Runner {
	return r.Where(option.Partial{option.Chdir: path})
}

func (r *Runner) Nice(n int64) *Runner {
	return r.Where(option.Partial{option.Nice: n})
}

func (r *Runner) Umask(mask string) *Runner {
	return r.Where(option.Partial{option.Umask: mask})
}

func (r *Runner) UID(uid int64) *Runner {
	return r.Where(option.Partial{option.UID: uid})
}

func (r *Runner) GID(gid int64) *Runner {
	return r.Where(option.Partial{option.GID: gid})
}

func (r *Runner) Interval(seconds float64) *Runner {
	return r.Where(option.Partial{option.Interval: seconds})
}

func (r *Runner) CGName(name string) *Runner {
	return r.Where(option.Partial{option.CGName: name})
}

func (r *Runner) Bindfs(dest, src string) *Runner {
	return r.Where(option.Partial{option.Bindfs: option.Pair{First: dest, Second: src}})
}

func (r *Runner) Tmpfs(path string, bytes int64) *Runner {
	return r.Where(option.Partial{option.Tmpfs: option.Pair{First: path, Second: bytes}})
}

func (r *Runner) Env(name, value string) *Runner {
	return r.Where(option.Partial{option.Env: option.Pair{First: name, Second: value}})
}

func (r *Runner) FD(fd int64) *Runner {
	return r.Where(option.Partial{option.FD: fd})
}

func (r *Runner) Cmd(cmd string) *Runner {
	return r.Where(option.Partial{option.Cmd: cmd})
}

func (r *Runner) Group(gid int64) *Runner {
	return r.Where(option.Partial{option.Group: gid})
}

func (r *Runner) Stdin(path string) *Runner {
	return r.Where(option.Partial{option.Stdin: path})
}

func (r *Runner) Stdout(path string) *Runner {
	return r.Where(option.Partial{option.Stdout: path})
}

func (r *Runner) Stderr(path string) *Runner {
	return r.Where(option.Partial{option.Stderr: path})
}

func (r *Runner) Truncate(bytes int64) *Runner {
	return r.Where(option.Partial{option.Truncate: bytes})
}
