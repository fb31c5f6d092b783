// Package logger is the public API of quicklog. Most programs only need
// this package.
//
// A Logger is immutable after construction: name, level, fields and
// handler are set once via the Builder. Loggers built with
// WithRegistry (or obtained from Named and Get) feed a registry and
// follow its level, so configuring the registry configures all of them.
//
// Deferred is the zero-setup entry point. It can be declared as a
// package variable without side effects:
//
//	var log = logger.NewDeferred("backup")
//
//	func main() {
//	    log.Infof("copying %d files", n)
//	}
//
// The first call builds the real Logger and, when the registry has no
// handler yet, installs a console handler on stderr that writes
//
//	2026-10-18 07:05:09,123 backup[4242] [INFO] copying 12 files
//
// at DEBUG when stdout is a terminal and INFO otherwise. A program that
// attaches its own handler to the registry before the first log call
// keeps full control; the default is then never installed. The
// QUICKLOG_LEVEL, QUICKLOG_TIME_FORMAT and QUICKLOG_DISABLE environment
// variables adjust the default without code changes.
//
// The package-level functions Info, Errorf, etc. delegate to Default,
// which is itself an unnamed Deferred on the root registry unless
// replaced with SetDefault.
package logger
