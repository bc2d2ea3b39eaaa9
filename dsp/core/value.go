package core

// Value is the arithmetic contract a filter element type must satisfy.
// The zero value of T must be the additive identity.
//
// Scalar, Vec2 and Vec3 implement it; callers can supply their own small
// vector types.
type Value[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(float32) T
	Div(float32) T
}

// Scalar is a single-precision sample.
type Scalar float32

// Add returns s + o.
func (s Scalar) Add(o Scalar) Scalar { return s + o }

// Sub returns s - o.
func (s Scalar) Sub(o Scalar) Scalar { return s - o }

// Mul scales s by k.
func (s Scalar) Mul(k float32) Scalar { return s * Scalar(k) }

// Div divides s by k.
func (s Scalar) Div(k float32) Scalar { return s / Scalar(k) }

// Vec2 is a two-axis sample, e.g. a stick position.
type Vec2 struct {
	X, Y float32
}

// Add returns the component-wise sum.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns the component-wise difference.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul scales both axes by k.
func (v Vec2) Mul(k float32) Vec2 {
	return Vec2{v.X * k, v.Y * k}
}

// Div divides both axes by k.
func (v Vec2) Div(k float32) Vec2 {
	return Vec2{v.X / k, v.Y / k}
}

// Vec3 is a three-axis sample, e.g. a gyro or accelerometer reading.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns the component-wise sum.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the component-wise difference.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Mul scales every axis by k.
func (v Vec3) Mul(k float32) Vec3 {
	return Vec3{v.X * k, v.Y * k, v.Z * k}
}

// Div divides every axis by k.
func (v Vec3) Div(k float32) Vec3 {
	return Vec3{v.X / k, v.Y / k, v.Z / k}
}
