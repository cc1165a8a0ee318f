// Package chain provides a fluent wrapper around Result[T] for building
// synchronous pipelines using solo primitives. A failed step makes the rest
// of the chain inert: later steps are never evaluated and the original
// failure (same id, same error) is what the final Result reports.
//
// Key operations:
// - Start/FromValue/FromPayload: begin a chain from a Result[T], a value, or a discriminated payload
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map: transform the successful value
// - Mutate: forward a write to the wrapped value (no-op on failure)
// - Ensure: run side effects without changing the result
// - Or/And: first-success / first-failure selection
// - Unwrap/Throw: surface the value or raise the held error
// - Finally: collapse the chain into a final value via handlers
//
// Type-changing steps (T -> U) are the package-level Then, ThenTry, Map and
// Finally functions, since methods cannot introduce type parameters.
package chain
