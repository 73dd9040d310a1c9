package vmath

import "math"

// Vec2 is a two-component vector. Methods are value-based and never mutate
// the receiver.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul multiplies component-wise.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// Div divides component-wise.
func (v Vec2) Div(o Vec2) Vec2 { return Vec2{v.X / o.X, v.Y / o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Offset adds s to every component.
func (v Vec2) Offset(s float64) Vec2 { return Vec2{v.X + s, v.Y + s} }

func (v Vec2) Neg() Vec2 { return Vec2{-v.X, -v.Y} }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

func (v Vec2) Length() float64 { return math.Sqrt(v.Dot(v)) }

// LengthSq avoids the square root when only comparisons are needed.
func (v Vec2) LengthSq() float64 { return v.Dot(v) }

func (v Vec2) Distance(o Vec2) float64 { return o.Sub(v).Length() }

func (v Vec2) DistanceSq(o Vec2) float64 { return o.Sub(v).LengthSq() }

// Normalize returns the unit vector in v's direction, or the zero vector
// when v has no length.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return v.Scale(1 / l)
}

// Direction returns the unit vector pointing from v to o.
func (v Vec2) Direction(o Vec2) Vec2 { return o.Sub(v).Normalize() }

func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{Lerp(v.X, o.X, t), Lerp(v.Y, o.Y, t)}
}

// Vec3 is a three-component vector. Methods are value-based and never mutate
// the receiver.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Mul multiplies component-wise.
func (v Vec3) Mul(o Vec3) Vec3 { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// Div divides component-wise.
func (v Vec3) Div(o Vec3) Vec3 { return Vec3{v.X / o.X, v.Y / o.Y, v.Z / o.Z} }

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Offset adds s to every component.
func (v Vec3) Offset(s float64) Vec3 { return Vec3{v.X + s, v.Y + s, v.Z + s} }

func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Length() float64 { return math.Sqrt(v.Dot(v)) }

// LengthSq avoids the square root when only comparisons are needed.
func (v Vec3) LengthSq() float64 { return v.Dot(v) }

func (v Vec3) Distance(o Vec3) float64 { return o.Sub(v).Length() }

func (v Vec3) DistanceSq(o Vec3) float64 { return o.Sub(v).LengthSq() }

// Normalize returns the unit vector in v's direction, or the zero vector
// when v has no length.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Direction returns the unit vector pointing from v to o.
func (v Vec3) Direction(o Vec3) Vec3 { return o.Sub(v).Normalize() }

func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{Lerp(v.X, o.X, t), Lerp(v.Y, o.Y, t), Lerp(v.Z, o.Z, t)}
}

// Reflect mirrors v across the plane with unit normal n.
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}
