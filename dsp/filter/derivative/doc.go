// Package derivative estimates time derivatives from the most recent
// (value, time) samples of a signal.
//
// [TwoPoint] is the secant slope over the last two samples. [ThreePoint]
// differentiates the quadratic through the last three samples at the
// newest time. [FourPoint] uses cubic-interpolation weights over the last
// four samples, with the newest weight closing the sum to one; it is an
// approximation and is not exact even for quadratics.
//
// Each estimator is generic over its timestamp type. float32 timestamps are
// seconds. uint32 timestamps are ticks (typically microseconds); time
// differences are taken in uint32 before conversion, so a counter that
// wraps between two samples still yields the correct positive step.
//
// Timestamps must be non-decreasing. Coincident timestamps divide by zero
// and produce Inf or NaN; nothing guards against it.
package derivative
