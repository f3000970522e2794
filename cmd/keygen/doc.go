// Command keygen generates named accessors for declared di keys.
//
// Declared keys work without any generated code:
//
//	var GreetingKey = di.NewKey("greeting", "hello")
//	di.Get(c, GreetingKey)
//
// keygen removes the boilerplate when a package declares many of them. You write a
// small spec next to the package and add a go:generate directive:
//
//	//go:generate go run github.com/sghaida/envdi/cmd/keygen --spec keys.yaml --out keys.gen.go
//
// Spec format (YAML; JSON is accepted too)
//
//	package: settings
//	imports:
//	  - path: time
//	keys:
//	  - name: greeting
//	    type: string
//	    default: '"hello"'
//	    doc: Greeting shown on the start screen.
//	  - name: requestTimeout
//	    type: time.Duration
//	    default: 5 * time.Second
//	  - name: verbose
//	    type: bool          # no default: the zero value
//
// For every key keygen emits:
//
//   - var <Name>Key = di.NewKey[<type>]("<name>", <default>)
//   - func <Name>(c *di.Container) <type>        // di.Get
//   - func Set<Name>(c *di.Container, v <type>)  // di.Set
//
// where <Name> is name with its first letter upper-cased. A nil container means
// di.Default(), as everywhere in package di.
//
// Flags can also be given through the environment: ENVDI_KEYGEN_SPEC, ENVDI_KEYGEN_OUT,
// ENVDI_KEYGEN_VERBOSE.
//
// Exit codes: 0 success, 1 invalid spec or write failure, 2 usage error.
package main
