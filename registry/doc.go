// Package registry holds the shared handler chain that loggers feed into.
//
// Root returns the process-wide registry. It starts with no handlers at
// DefaultLevel (WARN). Programs either configure it explicitly with
// AddHandler and SetLevel, or let the first deferred logger install the
// default console handler through InstallIfEmpty. Because InstallIfEmpty
// checks and installs under one lock, any handler attached earlier wins
// and the default is installed at most once, even under concurrent first
// use.
//
// Tests and libraries that want isolation create their own registry with
// New and pass it to loggers explicitly.
package registry
