package di

import "sync"

// Provider is the read contract shared by every wrapper, so call sites can swap
// Injected, Computed, Lazy and Observed without changes.
type Provider[T any] interface {
	Value() T
}

// Option configures a wrapper constructor.
type Option func(*settings)

type settings struct {
	container *Container
}

// In binds a wrapper to c instead of Default(). In(nil) keeps Default().
func In(c *Container) Option {
	return func(s *settings) { s.container = c }
}

func container(opts []Option) *Container {
	var s settings
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return orDefault(s.container)
}

// byType resolves T from c on every call, panicking on a miss.
func byType[T any](c *Container) func() T {
	return func() T { return MustResolve[T](c) }
}

// byKey reads key from c on every call. It never fails.
func byKey[T any](c *Container, key *Key[T]) func() T {
	return func() T { return Get(c, key) }
}

var (
	_ Provider[int] = (*Injected[int])(nil)
	_ Provider[int] = (*Computed[int])(nil)
	_ Provider[int] = (*Lazy[int])(nil)
)

// ----------------------------------------------------------------------------
// Eager
// ----------------------------------------------------------------------------

// Injected holds a dependency resolved when the wrapper was built. Later writes to
// the container are not observed.
type Injected[T any] struct {
	val T
}

// Inject resolves the value registered for type T now. It panics if there is none.
func Inject[T any](opts ...Option) *Injected[T] {
	return &Injected[T]{val: byType[T](container(opts))()}
}

// InjectKey reads key now, falling back to its default.
func InjectKey[T any](key *Key[T], opts ...Option) *Injected[T] {
	return &Injected[T]{val: byKey(container(opts), key)()}
}

// Value returns the captured dependency.
func (i *Injected[T]) Value() T { return i.val }

// ----------------------------------------------------------------------------
// Computed
// ----------------------------------------------------------------------------

// Computed re-resolves its dependency on every Value call and never caches.
type Computed[T any] struct {
	resolve func() T
}

// Compute returns a wrapper that resolves type T on each read. Construction never
// fails; a read with nothing registered panics.
func Compute[T any](opts ...Option) *Computed[T] {
	return &Computed[T]{resolve: byType[T](container(opts))}
}

// ComputeKey returns a wrapper that reads key on each read.
func ComputeKey[T any](key *Key[T], opts ...Option) *Computed[T] {
	return &Computed[T]{resolve: byKey(container(opts), key)}
}

// Value returns the container's current value.
func (c *Computed[T]) Value() T { return c.resolve() }

// ----------------------------------------------------------------------------
// Lazy
// ----------------------------------------------------------------------------

// Lazy resolves its dependency on the first Value call and returns that result
// afterwards. Resolution runs at most once, even under concurrent reads; if it
// panics, every later read panics with the same value.
type Lazy[T any] struct {
	get func() T
}

// LazyInject defers resolving type T until the first read.
func LazyInject[T any](opts ...Option) *Lazy[T] {
	return newLazy(byType[T](container(opts)))
}

// LazyInjectKey defers reading key until the first read.
func LazyInjectKey[T any](key *Key[T], opts ...Option) *Lazy[T] {
	return newLazy(byKey(container(opts), key))
}

func newLazy[T any](resolve func() T) *Lazy[T] {
	return &Lazy[T]{get: sync.OnceValue(resolve)}
}

// Value returns the memoized dependency, resolving it on first use.
func (l *Lazy[T]) Value() T { return l.get() }
