package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/philipp01105/quicklog/registry"
)

func TestDefaultLevelFor(t *testing.T) {
	require.Equal(t, DebugLevel, DefaultLevelFor(true))
	require.Equal(t, InfoLevel, DefaultLevelFor(false))
}

func TestIsInteractiveRegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	require.False(t, IsInteractive(f))
}

func TestInstallDefault(t *testing.T) {
	reg := registry.New()
	var out bytes.Buffer
	s := Setup{
		Output:      &out,
		Interactive: func() bool { return false },
		Program:     "cron",
		Pid:         77,
		Env:         &EnvConfig{},
	}

	require.True(t, InstallDefault(reg, s))
	require.False(t, InstallDefault(reg, s))
	require.Equal(t, 1, reg.Len())
	require.Equal(t, InfoLevel, reg.Level())

	Named(reg, "").Info("tick")
	require.Regexp(t, ` cron\[77\] \[INFO\] tick\n$`, out.String())
}

func TestInstallDefaultSkipsTerminalCheckWhenConfigured(t *testing.T) {
	reg := registry.New()
	reg.AddHandler(&nopHandler{})

	called := false
	s := Setup{Interactive: func() bool { called = true; return true }}

	require.False(t, InstallDefault(reg, s))
	require.False(t, called)
}

func TestInstallDefaultReadsEnvironment(t *testing.T) {
	t.Setenv("QUICKLOG_LEVEL", "warning")

	reg := registry.New()
	var out bytes.Buffer
	require.True(t, InstallDefault(reg, Setup{Output: &out, Interactive: func() bool { return true }}))
	require.Equal(t, WarnLevel, reg.Level())
}

func TestInstallDefaultIgnoresInvalidEnvLevel(t *testing.T) {
	t.Setenv("QUICKLOG_LEVEL", "chatty")
	t.Setenv("QUICKLOG_TIME_FORMAT", "15:04:05")

	reg := registry.New()
	var out bytes.Buffer
	require.True(t, InstallDefault(reg, Setup{Output: &out, Program: "p", Interactive: func() bool { return false }}))
	require.Equal(t, InfoLevel, reg.Level())

	Named(reg, "").Info("x")
	require.Regexp(t, `^\d{2}:\d{2}:\d{2} p\[\d+\] \[INFO\] x\n$`, out.String())
}
