package smath

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Lerp32 linearly interpolates between two 32-bit floats. Values of t outside
// [0, 1] extrapolate along the same line.
func Lerp32(from, to, t float32) float32 {
	return from + (to-from)*t
}

// Lerp64 linearly interpolates between two 64-bit floats. Values of t outside
// [0, 1] extrapolate along the same line.
func Lerp64(from, to, t float64) float64 {
	return from + (to-from)*t
}

// LerpVec3 componentwise linearly interpolates between two vectors.
func LerpVec3(from, to mgl32.Vec3, t float32) mgl32.Vec3 {
	return from.Add(to.Sub(from).Mul(t))
}

// Slerp spherically interpolates between two rotations along the shortest arc.
// Quaternions double-cover rotation space (q and -q represent the same
// rotation), so the second input is negated when the pair's dot product is
// negative before delegating to mgl32.QuatSlerp.
func Slerp(from, to mgl32.Quat, t float32) mgl32.Quat {
	from, to = from.Normalize(), to.Normalize()
	if from.Dot(to) < 0 {
		to = to.Scale(-1)
	}
	return mgl32.QuatSlerp(from, to, t)
}

// Clamp64 clamps v to the range [min, max].
func Clamp64(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// Vec3ApproxEq determines whether all components of two vectors are close
// enough to each other by a threshold of 1e-5.
func Vec3ApproxEq(a, b mgl32.Vec3) bool {
	return Float32ApproxEq(a.X(), b.X()) && Float32ApproxEq(a.Y(), b.Y()) && Float32ApproxEq(a.Z(), b.Z())
}

// QuatApproxEq determines whether two quaternions represent approximately the
// same rotation, treating q and -q as equal.
func QuatApproxEq(a, b mgl32.Quat) bool {
	return math32.Abs(a.Normalize().Dot(b.Normalize())) >= 1-1e-5
}
