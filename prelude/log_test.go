package prelude

import (
	"bytes"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/philipp01105/quicklog/logger"
	"github.com/philipp01105/quicklog/registry"
)

func TestLog_IsDeferred(t *testing.T) {
	require.Same(t, registry.Root(), Log.Registry())
	require.Empty(t, Log.Name())
}

func TestNewLog(t *testing.T) {
	reg := registry.New()
	var out bytes.Buffer

	l := NewLog("tool",
		logger.WithRegistry(reg),
		logger.WithOutput(&out),
		logger.WithInteractive(false),
		logger.WithProgram("tool.go"),
		logger.WithEnvConfig(logger.EnvConfig{}),
	)
	require.False(t, l.Ready())
	require.False(t, reg.HasHandlers())

	l.Debug("hidden")
	l.Info("cwd", String("dir", "/tmp"), Int("n", 3))

	require.Equal(t, InfoLevel, reg.Level())
	line := `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2},\d{3} tool\.go\[` + strconv.Itoa(Getpid()) +
		`\] \[INFO\] cwd dir=/tmp n=3\n$`
	require.Regexp(t, regexp.MustCompile(line), out.String())
}
