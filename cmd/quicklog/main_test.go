package main

import (
	"bytes"
	"encoding/json"
	"os"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/quicklog/logger"
	"github.com/philipp01105/quicklog/registry"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(logger.EnvPrefix+"LEVEL", "")
	t.Setenv(logger.EnvPrefix+"TIME_FORMAT", "")
	t.Setenv(logger.EnvPrefix+"DISABLE", "")

	cmd := rootCmd(registry.New())
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestMessageFromArgs(t *testing.T) {
	stdout, stderr, err := execute(t, "", "-t", "backup.sh", "archive", "written")
	require.NoError(t, err)

	assert.Empty(t, stdout)
	line := `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2},\d{3} backup\.sh\[` + strconv.Itoa(os.Getpid()) +
		`\] \[INFO\] archive written\n$`
	assert.Regexp(t, regexp.MustCompile(line), stderr)
}

func TestLinesFromStdin(t *testing.T) {
	_, stderr, err := execute(t, "first\n\nsecond\r\n", "--level", "warn", "--field", "job=build")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stderr, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "quicklog["+strconv.Itoa(os.Getpid())+"] [WARN] first job=build"))
	assert.True(t, strings.HasSuffix(lines[1], "[WARN] second job=build"))
}

func TestDefaultLevelDropsDebug(t *testing.T) {
	_, stderr, err := execute(t, "", "-l", "debug", "hidden")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestEnvLevelOverride(t *testing.T) {
	cmd := rootCmd(registry.New())
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"-l", "debug", "shown"})
	t.Setenv(logger.EnvPrefix+"LEVEL", "debug")

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stderr.String(), "[DEBUG] shown")
}

func TestFormats(t *testing.T) {
	_, stderr, err := execute(t, "", "-f", "text", "-t", "svc", "plain")
	require.NoError(t, err)
	assert.Contains(t, stderr, "[INFO] svc: plain")

	_, stderr, err = execute(t, "", "-f", "json", "--field", "host=db1", "structured")
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stderr), &got))
	assert.Equal(t, "INFO", got["level"])
	assert.Equal(t, "structured", got["message"])
	assert.Equal(t, "db1", got["host"])
}

func TestInvalidInput(t *testing.T) {
	testCases := map[string]struct {
		args []string
		want error
	}{
		"unknown format": {args: []string{"-f", "xml", "m"}, want: errUnknownFormat},
		"fatal level":    {args: []string{"-l", "fatal", "m"}, want: errLevelTooHigh},
		"bad field":      {args: []string{"--field", "novalue", "m"}, want: errBadField},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			_, stderr, err := execute(t, "", tc.args...)
			require.ErrorIs(t, err, tc.want)
			assert.Contains(t, stderr, "Error:")
		})
	}

	_, _, err := execute(t, "", "-l", "loud", "m")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	Version = "test"
	stdout, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, versionString("test", runtime.Version())+"\n", stdout)
}
