package formatter

import (
	"bytes"
	"io"
	"strconv"
	"sync"

	"github.com/philipp01105/quicklog/core"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format formats a log entry into bytes
	Format(entry *core.Entry) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats a log entry and writes it directly to the writer
	FormatTo(entry *core.Entry, w io.Writer) error
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer.
type BufferFormatter interface {
	// FormatEntry formats a log entry into the given buffer.
	FormatEntry(entry *core.Entry, buf *bytes.Buffer)
}

// Config holds common formatter configuration
type Config struct {
	// IncludeCaller enables caller information in log output
	IncludeCaller bool
	// TimestampFormat specifies the time layout (each formatter has its own default)
	TimestampFormat string
}

var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 {
		return
	}
	bufferPool.Put(buf)
}

// render runs fill against a pooled buffer and returns a private copy of the result.
func render(entry *core.Entry, fill func(*core.Entry, *bytes.Buffer)) []byte {
	buf := getBuffer()
	defer putBuffer(buf)

	fill(entry, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}

// renderTo runs fill against a pooled buffer and writes it to w in a single call.
func renderTo(entry *core.Entry, w io.Writer, fill func(*core.Entry, *bytes.Buffer)) error {
	buf := getBuffer()
	fill(entry, buf)
	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// levelBrackets holds pre-formatted " [LEVEL] " strings
var levelBrackets = [...]string{
	core.DebugLevel: " [DEBUG] ",
	core.InfoLevel:  " [INFO] ",
	core.WarnLevel:  " [WARN] ",
	core.ErrorLevel: " [ERROR] ",
	core.FatalLevel: " [FATAL] ",
	core.PanicLevel: " [PANIC] ",
}

func writeLevel(buf *bytes.Buffer, level core.Level) {
	if level >= 0 && int(level) < len(levelBrackets) {
		buf.WriteString(levelBrackets[level])
		return
	}
	buf.WriteString(" [UNKNOWN] ")
}

// writeTextTail writes the optional caller, the message and key=value fields.
func writeTextTail(buf *bytes.Buffer, entry *core.Entry, includeCaller bool) {
	if includeCaller && entry.Caller.Defined {
		buf.WriteByte('[')
		buf.WriteString(entry.Caller.ShortFile)
		buf.WriteByte(':')
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(entry.Caller.Line), 10))
		buf.WriteString("] ")
	}

	buf.WriteString(entry.Message)

	for _, field := range entry.Fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
	}

	buf.WriteByte('\n')
}
