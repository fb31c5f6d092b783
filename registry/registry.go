package registry

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"

	"github.com/philipp01105/quicklog/core"
	"github.com/philipp01105/quicklog/handler"
)

// DefaultLevel is the level of a registry nobody configured yet
const DefaultLevel = core.WarnLevel

// Registry is a shared handler chain with a level. Loggers bound to a
// registry send every entry that passes the level through all of its
// handlers. The chain is copy-on-write: logging never takes the lock.
type Registry struct {
	mu       sync.Mutex // serializes changes to the handler set
	handlers []handler.Handler
	chain    atomic.Pointer[handler.MultiHandler]
	level    atomic.Int32
}

var root = New()

// Root returns the process-wide registry
func Root() *Registry {
	return root
}

// New creates an empty registry at DefaultLevel
func New() *Registry {
	r := &Registry{}
	r.level.Store(int32(DefaultLevel))
	r.chain.Store(handler.NewMultiHandler())
	return r
}

// Level returns the minimum level passed to the handlers
func (r *Registry) Level() core.Level {
	return core.Level(r.level.Load())
}

// SetLevel changes the minimum level
func (r *Registry) SetLevel(level core.Level) {
	r.level.Store(int32(level))
}

// Enabled reports whether entries at level pass the registry level
func (r *Registry) Enabled(level core.Level) bool {
	return level >= r.Level()
}

// Len returns the number of attached handlers
func (r *Registry) Len() int {
	return r.chain.Load().Len()
}

// HasHandlers reports whether any handler is attached
func (r *Registry) HasHandlers() bool {
	return r.Len() > 0
}

// Handlers returns a copy of the attached handlers in attach order
func (r *Registry) Handlers() []handler.Handler {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.handlers)
}

// AddHandler appends h to the chain
func (r *Registry) AddHandler(h handler.Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.setHandlers(append(slices.Clone(r.handlers), h))
}

// InstallIfEmpty attaches h and sets level only when no handler is
// attached yet. It reports whether h was installed.
func (r *Registry) InstallIfEmpty(h handler.Handler, level core.Level) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.handlers) > 0 {
		return false
	}
	r.SetLevel(level)
	r.setHandlers([]handler.Handler{h})
	return true
}

// RemoveHandler detaches h without closing it. It reports whether h was attached.
func (r *Registry) RemoveHandler(h handler.Handler) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := slices.Index(r.handlers, h)
	if i < 0 {
		return false
	}
	r.setHandlers(slices.Delete(slices.Clone(r.handlers), i, i+1))
	return true
}

// Close detaches and closes every handler. The registry stays usable.
func (r *Registry) Close() error {
	r.mu.Lock()
	old := r.handlers
	r.setHandlers(nil)
	r.mu.Unlock()

	var err error
	for _, h := range old {
		err = multierr.Append(err, h.Close())
	}
	return err
}

// setHandlers must be called with mu held
func (r *Registry) setHandlers(hs []handler.Handler) {
	r.handlers = hs
	r.chain.Store(handler.NewMultiHandler(hs...))
}

// Handle passes entry to every attached handler
func (r *Registry) Handle(entry *core.Entry) error {
	return r.chain.Load().Handle(entry)
}

// HandleLog passes log data to every attached handler
func (r *Registry) HandleLog(t time.Time, level core.Level, name, msg string, loggerFields, callFields []core.Field, caller core.CallerInfo) error {
	return r.chain.Load().HandleLog(t, level, name, msg, loggerFields, callFields, caller)
}

// CanRecycleEntry reports whether the current chain is done with entries when Handle returns
func (r *Registry) CanRecycleEntry() bool {
	return r.chain.Load().CanRecycleEntry()
}
