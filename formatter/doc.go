// Package formatter defines how log entries are serialized into bytes.
//
// Formatter returns a []byte; the optional WriterFormatter and
// BufferFormatter interfaces let handlers skip the intermediate copy.
// All built-in formatters implement all three.
//
// ProgramFormatter produces the line used by the default setup:
//
//	2026-10-18 07:05:09,123 backup[4242] [INFO] copied 12 files
//
// TextFormatter and JSONFormatter are general-purpose alternatives that
// also carry the logger name.
//
// Buffers larger than 64 KiB are not returned to the pool.
package formatter
