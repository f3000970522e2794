package di

import (
	"errors"
	"reflect"
	"strconv"
)

// ErrUnregistered is matched (via errors.Is) by every UnregisteredTypeError.
var ErrUnregistered = errors.New("di: type not registered")

// ErrNilObject is the panic cause of Bind when the observed object is nil, usually an
// ObserveKey over a key whose default is nil and that was never set.
var ErrNilObject = errors.New("di: bind on nil object")

// UnregisteredTypeError is returned by TryResolve, and carried by the panic of
// MustResolve and the type-keyed wrappers, when no value was registered for the
// requested type.
type UnregisteredTypeError struct {
	// Type is the Go type name that was requested, e.g. "*app.Logger".
	Type string
}

// Error implements the error interface.
func (e *UnregisteredTypeError) Error() string {
	// Example: di: no value registered for type "*app.Logger"
	return "di: no value registered for type " + strconv.Quote(e.Type)
}

// Is reports ErrUnregistered as a match.
func (e *UnregisteredTypeError) Is(target error) bool {
	return target == ErrUnregistered
}

func unregistered[T any]() *UnregisteredTypeError {
	return &UnregisteredTypeError{Type: typeName[T]()}
}

// typeName is used for diagnostics only; identity never depends on it.
func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

// isNil reports whether v is nil or a nil pointer, map, slice, func, chan or interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
