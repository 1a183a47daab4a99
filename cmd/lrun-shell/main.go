package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"lrungo/internal/shell/config"
	"lrungo/internal/shell/repl"
	"lrungo/pkg/utils/logger"
	"lrungo/sandbox/engine"
	"lrungo/sandbox/profile"
	"lrungo/sandbox/runner"
)

const defaultConfigPath = "configs/lrun_shell.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "Path to config file")
	binaryPath := flag.String("binary", "", "Override lrun binary path")
	profilePath := flag.String("profiles", "", "Override profile file path")
	truncate := flag.Int64("truncate", 0, "Override capture byte limit")
	logLevel := flag.String("log-level", "", "Override log level")
	flag.Parse()

	cfg := config.Default()
	if _, err := os.Stat(*configPath); err == nil {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
			return
		}
		cfg = loaded
	}
	if *binaryPath != "" {
		cfg.BinaryPath = *binaryPath
	}
	if *profilePath != "" {
		cfg.ProfilePath = *profilePath
	}
	if *truncate > 0 {
		cfg.Truncate = *truncate
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	if err := logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}); err != nil {
		fmt.Fprintf(os.Stderr, "init logger failed: %v\n", err)
		return
	}
	defer func() { _ = logger.Sync() }()

	eng := engine.NewEngine(engine.Config{
		BinaryPath:    cfg.BinaryPath,
		TruncateBytes: cfg.Truncate,
		ExactExceed:   cfg.ExactExceed,
	})
	if !eng.Available() {
		fmt.Fprintln(os.Stderr, "warning: lrun executable not found, run will fail")
	}

	var profiles profile.Repository
	if cfg.ProfilePath != "" {
		loaded, err := profile.LoadFile(cfg.ProfilePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load profiles failed: %v\n", err)
			return
		}
		profiles = profile.NewLocalRepository(loaded)
	}

	base, err := runner.New(eng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init runner failed: %v\n", err)
		return
	}

	session := repl.New(base, profiles, os.Stdout)
	if err := session.Run(context.Background(), cfg.HistoryPath); err != nil {
		fmt.Fprintf(os.Stderr, "shell failed: %v\n", err)
	}
}
