// Package di provides a small, process-wide dependency registry for Go.
//
// A Container stores values under two kinds of identity that share one map:
//
//   - declared keys: package-level *Key[T] values created with NewKey. A key carries
//     a name and a default value; reading an unset key returns that default.
//   - type identity: values stored with Register are keyed by their static Go type.
//     There is no default; a miss is "not found" for Resolve and a panic for the
//     wrappers and MustResolve.
//
// Components read dependencies through one of four wrappers, all satisfying Provider[T]:
//
//   - Injected[T] (Inject / InjectKey): resolved once at construction.
//   - Computed[T] (Compute / ComputeKey): resolved on every Value call.
//   - Lazy[T] (LazyInject / LazyInjectKey): resolved on first Value call, then cached.
//   - Observed[T] (Observe / ObserveKey): eager, plus two-way field bindings (Bind)
//     for objects implementing Observable.
//
// Every wrapper binds to Default() unless In(c) is passed, which is how tests get an
// isolated registry:
//
//	c := di.New()
//	di.Register(c, &Logger{Level: "debug"})
//	log := di.Inject[*Logger](di.In(c))
//
// Forgetting to register a type before a wrapper reads it is a programmer error and
// panics immediately. Use TryResolve when a miss must be handled at runtime.
//
// There is no constructor injection, scoping, lifecycle or disposal: entries live until
// they are overwritten or the process exits.
//
// Import
//
//	"github.com/sghaida/envdi/di"
package di
