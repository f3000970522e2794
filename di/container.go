package di

import (
	"sync"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"
)

// Container maps key identities to values.
//
// An identity is either a declared *Key[T] or the type token of a value stored with
// Register. Both live in the same map; a declared key and a registered type can never
// collide because their tokens have different dynamic types.
//
// All operations are safe for concurrent use. Entries are never removed.
type Container struct {
	mu    sync.RWMutex
	items map[any]any
	log   *zap.Logger
}

// typeKey is the identity of values stored by Register. typeKey[A]{} and typeKey[B]{}
// compare unequal whenever A and B are different types, including an interface and a
// type implementing it.
type typeKey[T any] struct{}

// ContainerOption configures a Container built by New.
type ContainerOption func(*Container)

// WithLogger sets the logger used for debug entries on writes and for the error entry
// logged before a fatal lookup. A nil logger is ignored.
func WithLogger(l *zap.Logger) ContainerOption {
	return func(c *Container) {
		if l != nil {
			c.log = l
		}
	}
}

// New returns an empty, independent container. Use it to isolate tests from Default().
func New(opts ...ContainerOption) *Container {
	c := &Container{
		items: make(map[any]any),
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultContainer = New()

// Default returns the process-wide container. It is created at package init and lives
// for the lifetime of the process.
func Default() *Container { return defaultContainer }

// SetLogger replaces the container's logger. It exists for Default(), which cannot be
// given options. A nil logger disables logging.
func (c *Container) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	c.mu.Lock()
	c.log = l
	c.mu.Unlock()
}

// Len returns the number of stored entries, declared keys and registered types together.
func (c *Container) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Container) load(id any) (any, bool) {
	c.mu.RLock()
	v, ok := c.items[id]
	c.mu.RUnlock()
	return v, ok
}

// store writes v under id. It reports whether an entry was replaced, and the logger
// current at the time of the write.
func (c *Container) store(id, v any) (replaced bool, log *zap.Logger) {
	c.mu.Lock()
	_, replaced = c.items[id]
	c.items[id] = v
	log = c.log
	c.mu.Unlock()
	return replaced, log
}

func (c *Container) logger() *zap.Logger {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.log
}

// orDefault maps a nil container to Default().
func orDefault(c *Container) *Container {
	if c == nil {
		return defaultContainer
	}
	return c
}

// Get returns the value stored for key, or key.Default() if none was set.
// A nil container reads from Default().
func Get[T any](c *Container, key *Key[T]) T {
	raw, ok := orDefault(c).load(key)
	if !ok {
		return key.def
	}
	v, _ := raw.(T)
	return v
}

// Set stores v for key, replacing any previous value. Nothing is notified.
func Set[T any](c *Container, key *Key[T], v T) {
	replaced, log := orDefault(c).store(key, v)
	if ce := log.Check(zap.DebugLevel, "di: set"); ce != nil {
		ce.Write(zap.String("key", key.name), zap.String("type", typeName[T]()), zap.Bool("overwrite", replaced))
	}
}

// HasKey reports whether key has a stored value (as opposed to its default).
func HasKey[T any](c *Container, key *Key[T]) bool {
	_, ok := orDefault(c).load(key)
	return ok
}

// Register stores v under its static type T, replacing any value registered for
// exactly that type. T is usually inferred:
//
//	di.Register(c, &Logger{})          // keyed by *Logger
//	di.Register[Sink](c, &FileSink{})  // keyed by the Sink interface
func Register[T any](c *Container, v T) {
	replaced, log := orDefault(c).store(typeKey[T]{}, v)
	if ce := log.Check(zap.DebugLevel, "di: register"); ce != nil {
		ce.Write(zap.String("type", typeName[T]()), zap.Bool("overwrite", replaced))
	}
}

// Resolve returns the value registered for exactly type T. ok is false if there is none;
// there is no default.
func Resolve[T any](c *Container) (v T, ok bool) {
	raw, ok := orDefault(c).load(typeKey[T]{})
	if !ok {
		return v, false
	}
	v, _ = raw.(T)
	return v, true
}

// Has reports whether a value is registered for exactly type T.
func Has[T any](c *Container) bool {
	_, ok := Resolve[T](c)
	return ok
}

// TryResolve is Resolve with an *UnregisteredTypeError instead of a bool.
func TryResolve[T any](c *Container) (T, error) {
	v, ok := Resolve[T](c)
	if !ok {
		return v, unregistered[T]()
	}
	return v, nil
}

// MustResolve returns the value registered for type T or panics.
//
// The panic value is an error wrapping *UnregisteredTypeError with the caller's stack.
// A missing registration is a wiring bug and is meant to fail loudly.
func MustResolve[T any](c *Container) T {
	c = orDefault(c)
	v, ok := Resolve[T](c)
	if !ok {
		err := unregistered[T]()
		c.logger().Error("di: unresolved dependency", zap.String("type", err.Type))
		panic(pkgerrors.WithStack(err))
	}
	return v
}
