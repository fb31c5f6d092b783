// Package handler provides the Handler interface that every log sink
// implements, plus the two handlers that are independent of any output.
//
// MultiHandler fans a single entry out to several child handlers and is
// the building block of the root registry's handler chain. Errors from
// the children are combined with multierr, so one failing sink neither
// hides the others' errors nor stops them from receiving the entry.
//
// SlogHandler adapts a Handler to log/slog.Handler so that code written
// against the standard library can share the same sinks.
//
// Concrete sinks live in sub-packages: consolehandler writes formatted
// lines to an io.Writer, and zaphandler, zerologhandler, logrushandler
// and hcloghandler forward entries into other logging libraries.
package handler
