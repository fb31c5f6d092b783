package logger

import (
	"bytes"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/philipp01105/quicklog/formatter"
	"github.com/philipp01105/quicklog/handler/consolehandler"
	"github.com/philipp01105/quicklog/registry"
)

func newTestDeferred(reg *registry.Registry, out *bytes.Buffer, interactive bool, opts ...Option) *Deferred {
	base := []Option{
		WithRegistry(reg),
		WithOutput(out),
		WithInteractive(interactive),
		WithProgram("script.py"),
		WithEnvConfig(EnvConfig{}),
	}
	return NewDeferred("tests", append(base, opts...)...)
}

func TestDeferred_ConstructionHasNoEffect(t *testing.T) {
	reg := registry.New()
	var out bytes.Buffer

	d := newTestDeferred(reg, &out, false)

	require.False(t, d.Ready())
	require.False(t, reg.HasHandlers())
	require.Equal(t, registry.DefaultLevel, reg.Level())
	require.Zero(t, out.Len())
	require.Equal(t, "tests", d.Name())
	require.Same(t, reg, d.Registry())
}

func TestDeferred_FirstUseInstallsOneHandler(t *testing.T) {
	reg := registry.New()
	var out bytes.Buffer
	d := newTestDeferred(reg, &out, false)

	d.Info("hello")

	require.True(t, d.Ready())
	require.True(t, d.Installed())
	require.Equal(t, 1, reg.Len())
	require.Contains(t, out.String(), "[INFO] hello")
}

func TestDeferred_ExistingHandlerWins(t *testing.T) {
	reg := registry.New()
	var custom, out bytes.Buffer
	reg.AddHandler(consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    &custom,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	}))
	reg.SetLevel(DebugLevel)

	d := newTestDeferred(reg, &out, false)
	d.Debug("configured elsewhere")

	require.False(t, d.Installed())
	require.Equal(t, 1, reg.Len())
	require.Equal(t, DebugLevel, reg.Level())
	require.Zero(t, out.Len(), "default output must stay unused")
	require.Contains(t, custom.String(), "tests: configured elsewhere")
}

func TestDeferred_SetupRunsOnce(t *testing.T) {
	reg := registry.New()
	var out bytes.Buffer
	d := newTestDeferred(reg, &out, true)

	d.Info("one")
	first := d.Logger()
	d.Debug("two")
	d.Warnf("three %d", 3)

	require.Same(t, first, d.Logger())
	require.Equal(t, 1, reg.Len())
	require.Equal(t, 3, strings.Count(out.String(), "\n"))
}

func TestDeferred_SecondProxyReusesDefault(t *testing.T) {
	reg := registry.New()
	var out1, out2 bytes.Buffer
	a := newTestDeferred(reg, &out1, false)
	b := NewDeferred("other", WithRegistry(reg), WithOutput(&out2), WithEnvConfig(EnvConfig{}))

	a.Info("from a")
	b.Info("from b")

	require.True(t, a.Installed())
	require.False(t, b.Installed())
	require.Equal(t, 1, reg.Len())
	require.Zero(t, out2.Len())
	require.Contains(t, out1.String(), "from b")
}

func TestDeferred_DefaultLevelByTerminal(t *testing.T) {
	tests := []struct {
		name        string
		interactive bool
		want        Level
	}{
		{"redirected", false, InfoLevel},
		{"terminal", true, DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := registry.New()
			var out bytes.Buffer
			d := newTestDeferred(reg, &out, tt.interactive)

			d.Debug("maybe")

			require.Equal(t, tt.want, reg.Level())
			require.Equal(t, tt.interactive, strings.Contains(out.String(), "maybe"))
		})
	}
}

func TestDeferred_LineLayout(t *testing.T) {
	reg := registry.New()
	var out bytes.Buffer
	d := newTestDeferred(reg, &out, false)

	d.Warn("low disk", Int("free_mb", 120))

	pattern := `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2},\d{3} script\.py\[` +
		strconv.Itoa(os.Getpid()) + `\] \[WARN\] low disk free_mb=120\n$`
	require.Regexp(t, regexp.MustCompile(pattern), out.String())
}

func TestDeferred_EnvOverrides(t *testing.T) {
	reg := registry.New()
	var out bytes.Buffer
	d := newTestDeferred(reg, &out, true, WithEnvConfig(EnvConfig{Level: "error", TimestampFormat: "15:04"}))

	d.Warn("dropped")
	d.Error("kept")

	require.Equal(t, ErrorLevel, reg.Level())
	require.NotContains(t, out.String(), "dropped")
	require.Regexp(t, `^\d{2}:\d{2} script\.py\[\d+\] \[ERROR\] kept\n$`, out.String())
}

func TestDeferred_EnvDisable(t *testing.T) {
	reg := registry.New()
	var out bytes.Buffer
	d := newTestDeferred(reg, &out, true, WithEnvConfig(EnvConfig{Disable: true}))

	d.Error("nobody hears this")

	require.True(t, d.Ready())
	require.False(t, d.Installed())
	require.False(t, reg.HasHandlers())
	require.Zero(t, out.Len())
}

func TestDeferred_CustomFormatter(t *testing.T) {
	reg := registry.New()
	var out bytes.Buffer
	d := newTestDeferred(reg, &out, false, WithFormatter(formatter.NewJSONFormatter(formatter.Config{})))

	d.Info("json please")

	require.Contains(t, out.String(), `"logger":"tests","message":"json please"`)
}

func TestDeferred_ConcurrentFirstUse(t *testing.T) {
	reg := registry.New()
	var out syncBuffer
	d := NewDeferred("race",
		WithRegistry(reg),
		WithOutput(&out),
		WithInteractive(false),
		WithEnvConfig(EnvConfig{}),
	)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Info("hi")
		}()
	}
	wg.Wait()

	require.Equal(t, 1, reg.Len())
	require.Equal(t, 16, strings.Count(out.String(), "[INFO] hi\n"))
}

func TestDeferred_WithAndSlog(t *testing.T) {
	reg := registry.New()
	var out bytes.Buffer
	d := newTestDeferred(reg, &out, false)

	d.With(String("job", "nightly")).Info("started")
	d.Slog().Info("via slog", "n", 1)

	require.True(t, d.Enabled(InfoLevel))
	require.False(t, d.Enabled(DebugLevel))
	require.Contains(t, out.String(), "started job=nightly")
	require.Contains(t, out.String(), "via slog n=1")
}

func TestDeferred_FatalAndPanic(t *testing.T) {
	reg := registry.New()
	var out bytes.Buffer
	d := newTestDeferred(reg, &out, false)

	exitCode := -1
	origExit := osExit
	osExit = func(code int) { exitCode = code }
	defer func() { osExit = origExit }()

	d.Fatalf("cannot open %s", "db")
	require.Equal(t, 1, exitCode)
	require.Contains(t, out.String(), "[FATAL] cannot open db")

	require.PanicsWithValue(t, "bad state", func() { d.Panic("bad state") })
	require.Contains(t, out.String(), "[PANIC] bad state")
}

// syncBuffer is a bytes.Buffer safe for concurrent writers
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}
