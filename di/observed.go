package di

import pkgerrors "github.com/pkg/errors"

// Observable marks types whose changes can be observed by something outside this
// package, typically a UI refresh loop. Bindings call ObjectChanged after every write.
//
// observe.Subject provides an implementation meant to be embedded.
type Observable interface {
	ObjectChanged()
}

// Observed is an eager wrapper over an Observable object that can also hand out
// two-way field bindings.
//
// Value always returns the same instance, so observers subscribed to it stay
// subscribed to the object every other wrapper for the same key or type sees.
type Observed[T Observable] struct {
	obj T
}

var _ Provider[Observable] = (*Observed[Observable])(nil)

// Observe resolves the object registered for type T now. It panics if there is none.
func Observe[T Observable](opts ...Option) *Observed[T] {
	return &Observed[T]{obj: byType[T](container(opts))()}
}

// ObserveKey reads key now, falling back to its default. Bind needs a non-nil object,
// so a pointer-typed key should carry a non-nil default or be set first.
func ObserveKey[T Observable](key *Key[T], opts ...Option) *Observed[T] {
	return &Observed[T]{obj: byKey(container(opts), key)()}
}

// Value returns the resolved object.
func (o *Observed[T]) Value() T { return o.obj }

// Binding is a read/write handle on one field of an observed object.
type Binding[V any] struct {
	get func() V
	set func(V)
}

// Bind returns a binding for the field selected by field. The selector must return a
// pointer into the object itself, so T is normally a pointer type:
//
//	theme := di.Bind(settings, func(s *Settings) *string { return &s.Theme })
//	theme.Set("dark") // writes settings.Value().Theme, then calls ObjectChanged
//
// Bind panics with an error matching ErrNilObject if the observed object is nil.
func Bind[T Observable, V any](o *Observed[T], field func(T) *V) *Binding[V] {
	obj := o.obj
	if isNil(obj) {
		panic(pkgerrors.Wrapf(ErrNilObject, "observed %s", typeName[T]()))
	}
	return &Binding[V]{
		get: func() V { return *field(obj) },
		set: func(v V) {
			*field(obj) = v
			obj.ObjectChanged()
		},
	}
}

// NewBinding builds a binding from explicit accessors, for values that are not plain
// fields (computed properties, setters with validation).
func NewBinding[V any](get func() V, set func(V)) *Binding[V] {
	return &Binding[V]{get: get, set: set}
}

// Get returns the field's current value.
func (b *Binding[V]) Get() V { return b.get() }

// Set writes the field.
func (b *Binding[V]) Set(v V) { b.set(v) }
