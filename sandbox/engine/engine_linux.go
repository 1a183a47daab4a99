//go:build linux

package engine

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	appErr "lrungo/pkg/errors"
	"lrungo/pkg/utils/logger"
	"lrungo/sandbox/option"
	"lrungo/sandbox/report"
	"lrungo/sandbox/result"
)

type lrunEngine struct {
	cfg Config
}

// NewEngine creates a Linux lrun engine.
func NewEngine(cfg Config) Engine {
	if cfg.TruncateBytes <= 0 {
		cfg.TruncateBytes = defaultTruncateBytes
	}
	return &lrunEngine{cfg: cfg}
}

func (e *lrunEngine) Available() bool {
	if e.cfg.BinaryPath != "" {
		return unix.Access(e.cfg.BinaryPath, unix.X_OK) == nil
	}
	return Available()
}

func (e *lrunEngine) binary() (string, error) {
	if e.cfg.BinaryPath != "" {
		if err := unix.Access(e.cfg.BinaryPath, unix.X_OK); err != nil {
			return "", appErr.NotAvailableError(e.cfg.BinaryPath)
		}
		return e.cfg.BinaryPath, nil
	}
	path, err := Executable()
	if err != nil {
		return "", appErr.NotAvailableError(binaryName)
	}
	return path, nil
}

func (e *lrunEngine) Run(ctx context.Context, argv []string, opts *option.Set) (*result.Result, error) {
	if err := validateCommand(argv); err != nil {
		return nil, err
	}
	path, err := e.binary()
	if err != nil {
		return nil, err
	}

	ctx = logger.WithInvocationID(ctx, uuid.NewString())

	var cleanups []func()
	defer func() {
		// Best-effort; cleanup failures never mask the primary error.
		for _, cleanup := range cleanups {
			cleanup()
		}
	}()

	stdinPath := opts.GetString(option.Stdin)
	stdoutPath := opts.GetString(option.Stdout)
	stderrPath := opts.GetString(option.Stderr)
	truncate := e.cfg.TruncateBytes
	if n, ok := opts.GetInt64(option.Truncate); ok && n > 0 {
		truncate = n
	}

	var stdinFile *os.File
	if stdinPath != "" {
		stdinFile, err = os.Open(stdinPath)
		if err != nil {
			return nil, appErr.Wrapf(err, appErr.InvalidParams, "open stdin path failed")
		}
		cleanups = append(cleanups, func() { _ = stdinFile.Close() })
	}

	stdoutFile, stdoutOwned, err := openCapture(ctx, stdoutPath, "stdout", &cleanups)
	if err != nil {
		return nil, err
	}
	stderrFile, stderrOwned, err := openCapture(ctx, stderrPath, "stderr", &cleanups)
	if err != nil {
		return nil, err
	}

	reportRead, reportWrite, err := os.Pipe()
	if err != nil {
		return nil, appErr.Wrapf(err, appErr.SpawnFailed, "create report pipe failed")
	}
	cleanups = append(cleanups, func() { _ = reportRead.Close() })

	args := append(option.Expand(opts), "--")
	args = append(args, argv...)

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = stdinFile
	cmd.Stdout = stdoutFile
	cmd.Stderr = stderrFile
	// ExtraFiles[0] becomes descriptor 3 in the child, the report channel.
	cmd.ExtraFiles = []*os.File{reportWrite}

	logger.Debug(ctx, "spawning lrun",
		zap.String("path", path),
		zap.Strings("args", args))

	if err := cmd.Start(); err != nil {
		_ = reportWrite.Close()
		return nil, appErr.Wrapf(err, appErr.SpawnFailed, "start lrun failed")
	}
	// Close our copy of the write end right after spawn, or the report read
	// below never observes EOF.
	_ = reportWrite.Close()

	// Read the channel to EOF first, then reap; channel close and process
	// exit are independent events with no guaranteed ordering.
	reportText, readErr := io.ReadAll(reportRead)
	waitErr := cmd.Wait()

	if waitErr != nil {
		stderrContent := readLimitedFile(stderrFile.Name(), truncate)
		logger.Warn(ctx, "lrun failed",
			zap.Error(waitErr),
			zap.String("stderr", stderrContent))
		return nil, appErr.InvocationError(waitErr, stderrContent)
	}
	if readErr != nil {
		return nil, appErr.Wrapf(readErr, appErr.DecodeFailed, "read report channel failed")
	}

	stats, err := report.Parse(string(reportText), e.cfg.ExactExceed)
	if err != nil {
		return nil, err
	}

	res := &result.Result{
		MemoryBytes: stats.MemoryBytes,
		CPUTime:     stats.CPUTime,
		Exceeded:    stats.Exceeded,
		ExitCode:    stats.ExitCode,
		Signaled:    stats.Signaled,
		Signal:      stats.Signal,
	}
	if stdoutOwned {
		res.Stdout = readLimitedBytes(stdoutFile.Name(), truncate)
	}
	if stderrOwned {
		res.Stderr = readLimitedBytes(stderrFile.Name(), truncate)
	}
	return res, nil
}

func validateCommand(argv []string) error {
	if len(argv) == 0 {
		return appErr.New(appErr.EmptyCommand)
	}
	if argv[0] == "" {
		return appErr.New(appErr.EmptyCommand).WithMessage("command is an empty string")
	}
	return nil
}

// openCapture opens the caller-supplied path, or allocates a temporary file
// owned by this invocation and scheduled for deletion. The bool reports
// engine ownership, which also decides whether the capture lands in the
// Result.
func openCapture(ctx context.Context, path, stream string, cleanups *[]func()) (*os.File, bool, error) {
	if path != "" {
		file, err := os.Create(path)
		if err != nil {
			return nil, false, appErr.Wrapf(err, appErr.InvalidParams, "open %s path failed", stream)
		}
		// Caller-supplied paths are never deleted by the engine.
		*cleanups = append(*cleanups, func() { _ = file.Close() })
		return file, false, nil
	}
	file, err := os.CreateTemp("", "lrun-"+stream+"-*")
	if err != nil {
		return nil, false, appErr.Wrapf(err, appErr.InternalError, "create %s capture file failed", stream)
	}
	name := file.Name()
	*cleanups = append(*cleanups, func() {
		_ = file.Close()
		if err := os.Remove(name); err != nil {
			logger.Warn(ctx, "remove capture file failed",
				zap.String("path", name),
				zap.Error(err))
		}
	})
	return file, true, nil
}

func readLimitedFile(path string, maxBytes int64) string {
	return string(readLimitedBytes(path, maxBytes))
}

func readLimitedBytes(path string, maxBytes int64) []byte {
	if path == "" || maxBytes <= 0 {
		return nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer file.Close()
	limited := io.LimitReader(file, maxBytes)
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil
	}
	return data
}
