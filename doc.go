// Package envdi is a process-wide dependency registry for Go.
//
// The repository contains:
//
//   - di: the container, declared keys, and the eager / computed / lazy / observed
//     access wrappers
//   - observe: a minimal change-notification mechanism for objects handed out by di
//   - cmd/keygen: generates named accessors (Greeting(c), SetGreeting(c, v)) for
//     declared keys from a small YAML spec
//   - examples/settings: an end-to-end example using all of the above
//
// Start with the di package documentation.
package envdi
