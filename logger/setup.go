package logger

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/philipp01105/quicklog/core"
	"github.com/philipp01105/quicklog/formatter"
	"github.com/philipp01105/quicklog/handler/consolehandler"
	"github.com/philipp01105/quicklog/registry"
)

// Setup describes the default handler installed on an empty registry.
// Zero values select the defaults.
type Setup struct {
	// Output receives the log lines (default: os.Stderr)
	Output io.Writer
	// Interactive reports whether the program talks to a terminal
	// (default: whether os.Stdout is a terminal)
	Interactive func() bool
	// Program tags each line (default: base name of os.Args[0])
	Program string
	// Pid tags each line (default: os.Getpid())
	Pid int
	// Formatter replaces the program formatter
	Formatter formatter.Formatter
	// Env replaces the environment overrides (default: LoadEnvConfig)
	Env *EnvConfig
}

// IsInteractive reports whether f is attached to a terminal
func IsInteractive(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// DefaultLevelFor returns DebugLevel for interactive programs and InfoLevel otherwise
func DefaultLevelFor(interactive bool) core.Level {
	if interactive {
		return core.DebugLevel
	}
	return core.InfoLevel
}

// InstallDefault attaches the default console handler to reg, unless reg
// already has a handler. It reports whether the handler was installed.
func InstallDefault(reg *registry.Registry, s Setup) bool {
	if reg.HasHandlers() {
		return false
	}

	cfg := s.Env
	if cfg == nil {
		// an invalid level only loses the level override
		cfg, _ = LoadEnvConfig()
		if cfg == nil {
			cfg = &EnvConfig{}
		}
	}
	if cfg.Disable {
		return false
	}

	interactive := s.Interactive
	if interactive == nil {
		interactive = func() bool { return IsInteractive(os.Stdout) }
	}
	level := cfg.LevelOr(DefaultLevelFor(interactive()))

	f := s.Formatter
	if f == nil {
		f = formatter.NewProgramFormatter(formatter.Config{TimestampFormat: cfg.TimestampFormat}, s.Program, s.Pid)
	}
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    s.Output,
		Formatter: f,
	})
	return reg.InstallIfEmpty(h, level)
}
