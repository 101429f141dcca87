// Package solo contains single-value, synchronous primitives that operate
// on result.Result[V, E]. Nothing here spawns goroutines or does I/O.
//
// Highlights:
// - Bind/Map/MapFail: transform a Result, short-circuiting on Fail
// - Pipeline: fold Result-returning steps left to right from Ok(initial)
// - Resultify/NotNull/TryCatch: turn plain, nil-returning or failing calls into Results
// - IfOk/IfFail: side effects on one variant
// - Get/GetOrThrow: leave the Result world with an error or a panic
// - With: lift a boolean test on a raw value into a Result
package solo
