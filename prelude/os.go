package prelude

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/philipp01105/quicklog/formatter"
)

// Getwd returns the current working directory
func Getwd() (string, error) {
	return os.Getwd()
}

// Getpid returns the process id
func Getpid() int {
	return os.Getpid()
}

// Getenv returns the value of the environment variable key, or fallback
// when it is unset
func Getenv(key string, fallback ...string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return ""
}

// Args returns a copy of the command-line arguments without the program name
func Args() []string {
	if len(os.Args) < 2 {
		return nil
	}
	return slices.Clone(os.Args[1:])
}

// Program returns the base name of the running program, as shown in log lines
func Program() string {
	return formatter.ProgramName()
}

// Basename returns the last element of path
func Basename(path string) string {
	return filepath.Base(path)
}

// Dirname returns all but the last element of path
func Dirname(path string) string {
	return filepath.Dir(path)
}

// Join joins path elements with the OS separator
func Join(elem ...string) string {
	return filepath.Join(elem...)
}

// Abs returns an absolute representation of path
func Abs(path string) (string, error) {
	return filepath.Abs(path)
}

// Exists reports whether path names an existing file or directory.
// Errors other than "not exist" count as existing.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, fs.ErrNotExist)
}

// Must returns v, panicking if err is not nil
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
