// Package solo contains single-value, synchronous primitives that operate
// on Result[T]. These functions form the core building blocks for error-aware
// pipelines: a failed input short-circuits every one of them, carrying the
// original failure forward untouched.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Validate/AndValidate/ValidateAll: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out]
// - Map/DoubleMap: transform successful values (with optional error map)
// - Try: call a function (Out, error) and convert error to failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
package solo
