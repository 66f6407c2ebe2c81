// Package geom answers nearest-point, containment, overlap and raycast
// queries against 2D and 3D primitive shapes.
//
// All functions are pure. Degenerate input (zero-length directions or bones,
// zero radii) never produces NaN: directions are normalised zero-safely and
// lengths are clamped to Epsilon where a division would occur.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/exp/constraints"
)

type (
	Vec2 = mgl64.Vec2
	Vec3 = mgl64.Vec3
)

// Epsilon is the smallest length treated as non-zero.
const Epsilon = 1e-9

// Clamp limits value to [lo, hi]
func Clamp[T constraints.Ordered](value, lo, hi T) T {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// ClampZeroToOne limits value to [0, 1]
func ClampZeroToOne[T constraints.Float](value T) T {
	return Clamp(value, 0, 1)
}

// Lerp interpolates between a and b by t (unclamped)
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// RangeMap maps value from [inStart, inEnd] onto [outStart, outEnd].
// A zero-width input range maps to the midpoint of the output range.
func RangeMap[T constraints.Float](value, inStart, inEnd, outStart, outEnd T) T {
	inRange := inEnd - inStart
	if inRange == 0 {
		return (outStart + outEnd) / 2
	}
	t := (value - inStart) / inRange
	return Lerp(outStart, outEnd, t)
}

// RangeMapClamped is RangeMap with value clamped to the input range first
func RangeMapClamped[T constraints.Float](value, inStart, inEnd, outStart, outEnd T) T {
	lo, hi := inStart, inEnd
	if lo > hi {
		lo, hi = hi, lo
	}
	return RangeMap(Clamp(value, lo, hi), inStart, inEnd, outStart, outEnd)
}

// Normalize2 returns v scaled to unit length, or the zero vector when v is degenerate
func Normalize2(v Vec2) Vec2 {
	length := v.Len()
	if length < Epsilon {
		return Vec2{}
	}
	return v.Mul(1 / length)
}

// Normalize3 returns v scaled to unit length, or the zero vector when v is degenerate
func Normalize3(v Vec3) Vec3 {
	length := v.Len()
	if length < Epsilon {
		return Vec3{}
	}
	return v.Mul(1 / length)
}

// DistanceSquared2 returns |a-b|²
func DistanceSquared2(a, b Vec2) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

// DistanceSquared3 returns |a-b|²
func DistanceSquared3(a, b Vec3) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

// ClampLength2 shortens v to maxLength if it is longer
func ClampLength2(v Vec2, maxLength float64) Vec2 {
	lengthSq := v.Dot(v)
	if lengthSq <= maxLength*maxLength {
		return v
	}
	return v.Mul(maxLength / math.Sqrt(lengthSq))
}

// ClampLength3 shortens v to maxLength if it is longer
func ClampLength3(v Vec3, maxLength float64) Vec3 {
	lengthSq := v.Dot(v)
	if lengthSq <= maxLength*maxLength {
		return v
	}
	return v.Mul(maxLength / math.Sqrt(lengthSq))
}

// Rotated90 returns v rotated a quarter turn counter-clockwise
func Rotated90(v Vec2) Vec2 {
	return Vec2{-v.Y(), v.X()}
}

// PolarDegrees returns the unit vector at angleDegrees from +X, scaled by length
func PolarDegrees(angleDegrees, length float64) Vec2 {
	return mgl64.Rotate2D(mgl64.DegToRad(angleDegrees)).Mul2x1(Vec2{length, 0})
}

// NearlyEqual2 reports whether a and b are within tolerance on each axis
func NearlyEqual2(a, b Vec2, tolerance float64) bool {
	return math.Abs(a.X()-b.X()) <= tolerance && math.Abs(a.Y()-b.Y()) <= tolerance
}
