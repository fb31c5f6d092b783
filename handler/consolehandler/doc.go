// Package consolehandler provides the stream handler: it formats each
// entry and writes it to an io.Writer (default: os.Stderr) in a single
// Write call.
//
// When the formatter implements formatter.BufferFormatter, the handler
// formats into its own buffer under its lock and never touches the entry
// pool. Any other formatter goes through Format.
package consolehandler
