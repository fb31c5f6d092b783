package formatter

import (
	"bytes"
	"io"
	"time"

	"github.com/philipp01105/quicklog/core"
)

// TextFormatter formats log entries as human-readable text:
//
//	<timestamp> [<LEVEL>] <logger>: <message> key=value ...
//
// The logger name segment is omitted for unnamed entries.
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	return render(entry, f.FormatEntry), nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	return renderTo(entry, w, f.FormatEntry)
}

// FormatEntry formats an entry into the given buffer
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	writeLevel(buf, entry.Level)
	if entry.Logger != "" {
		buf.WriteString(entry.Logger)
		buf.WriteString(": ")
	}
	writeTextTail(buf, entry, f.IncludeCaller)
}
