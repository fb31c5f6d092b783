package formatter

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/philipp01105/quicklog/core"
)

// DefaultProgramTimestamp is the timestamp layout of ProgramFormatter:
// local time with millisecond precision.
const DefaultProgramTimestamp = "2006-01-02 15:04:05,000"

// ProgramFormatter renders the classic script log line:
//
//	<timestamp> <program>[<pid>] [<LEVEL>] <message> key=value ...
//
// The program tag is computed once at construction.
type ProgramFormatter struct {
	Config
	tag string
}

// NewProgramFormatter creates a formatter tagged with program and pid.
// An empty program defaults to the base name of os.Args[0] and a
// non-positive pid to the current process id.
func NewProgramFormatter(cfg Config, program string, pid int) *ProgramFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultProgramTimestamp
	}
	if program == "" {
		program = ProgramName()
	}
	if pid <= 0 {
		pid = os.Getpid()
	}
	return &ProgramFormatter{
		Config: cfg,
		tag:    " " + program + "[" + strconv.Itoa(pid) + "]",
	}
}

// ProgramName returns the base name of the running program
func ProgramName() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return "-"
	}
	return filepath.Base(os.Args[0])
}

// Format formats an entry as a program-tagged line
func (f *ProgramFormatter) Format(entry *core.Entry) ([]byte, error) {
	return render(entry, f.FormatEntry), nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *ProgramFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	return renderTo(entry, w, f.FormatEntry)
}

// FormatEntry formats an entry into the given buffer
func (f *ProgramFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteString(f.tag)
	writeLevel(buf, entry.Level)
	writeTextTail(buf, entry, f.IncludeCaller)
}
