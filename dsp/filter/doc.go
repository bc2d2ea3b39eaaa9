// Package filter defines the capabilities shared by the sensor filter family
// and a few helpers that work across filter kinds.
//
// Every filter is a concrete value type with its own package
// (powertransfer, biquad, movavg, derivative). Code that needs to treat
// different kinds uniformly, such as a configurable processing stage, holds
// them through the [Filter] interface; hot paths should call the concrete
// types directly.
package filter
