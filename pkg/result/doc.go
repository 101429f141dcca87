// Package result defines Result[V, E], a value that is either Ok with a
// success value or Fail with a failure payload, plus the accessors every
// other package builds on.
//
// Highlights:
// - Ok/Fail: construct Result[V, E]
// - TypeOf/ValueOf/ToStr: inspect any Result through the Tagged interface
// - IsOk/IsFail: predicates derived from TypeOf
// - Match: consume a Result with one handler per variant
// - IsNil: detect the absent value behind an interface
//
// The zero Result is Ok holding the zero V. Combinators live in package solo,
// the fluent wrapper in package chain.
package result
