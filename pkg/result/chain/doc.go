// Package chain provides a minimal fluent Chain[V, E] for synchronous
// composition of result.Result values.
//
// It keeps the API surface small:
// - Start/FromValue: create a Chain
// - Then/Map: compose Result-returning or plain functions
// - To: switch the chain to another value type
// - IfOk/IfFail: trigger side effects without changing the result
// - Or: fall back to an alternative chain when this one failed
// - Fold: reduce to a concrete value via handlers
//
// Methods keep the value type, To changes it.
package chain
