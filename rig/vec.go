// Package rig implements the layered procedural animation engine that drives
// character motion without authored clips. An Animator owns a small stack of
// weighted layers; each layer runs a state machine of motion generators whose
// outputs are blended into a single transform every tick.
//
// The package has no engine dependencies — callers feed it a Context each
// Update and read the composited output back.
package rig

import "math"

// Vec3 is a position offset, Euler rotation, or scale triple.
type Vec3 struct {
	X, Y, Z float64
}

// One is the identity scale.
var One = Vec3{1, 1, 1}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Mul multiplies component-wise (scale composition).
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpVec3 linearly interpolates each component.
func LerpVec3(a, b Vec3, t float64) Vec3 {
	return Vec3{Lerp(a.X, b.X, t), Lerp(a.Y, b.Y, t), Lerp(a.Z, b.Z, t)}
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// MoveTowards steps current toward target by at most maxDelta, never
// overshooting.
func MoveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}
