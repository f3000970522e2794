package di

// Key declares a dependency addressed by name, with a value type and a default.
//
// Keys are meant to be package-level variables:
//
//	var Greeting = di.NewKey("greeting", "hello")
//
// The identity of a key is the *Key itself, not its value type or name, so two keys
// of the same type never share storage.
type Key[T any] struct {
	name string
	def  T
}

// NewKey declares a key. name is only used in logs and String.
func NewKey[T any](name string, def T) *Key[T] {
	return &Key[T]{name: name, def: def}
}

// Name returns the name given to NewKey.
func (k *Key[T]) Name() string { return k.name }

// Default returns the value Get reports while the key is unset.
func (k *Key[T]) Default() T { return k.def }

// String implements fmt.Stringer.
func (k *Key[T]) String() string {
	return "di.Key[" + typeName[T]() + "](" + k.name + ")"
}
