package logger

import (
	"sync"

	"github.com/philipp01105/quicklog/registry"
)

var rootLoggers sync.Map // name -> *Logger

// Named returns a logger called name that feeds reg and follows its level.
func Named(reg *registry.Registry, name string) *Logger {
	return NewBuilder().
		WithRegistry(reg).
		WithName(name).
		Build()
}

// Get returns the logger called name on the root registry. Repeated
// calls with the same name return the same Logger. Get never configures
// the registry; use a Deferred logger for that.
func Get(name string) *Logger {
	if l, ok := rootLoggers.Load(name); ok {
		return l.(*Logger)
	}
	l, _ := rootLoggers.LoadOrStore(name, Named(registry.Root(), name))
	return l.(*Logger)
}
