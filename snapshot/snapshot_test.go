package snapshot

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/EiraChris/Mirror/smath"
)

func TestInterpolateMidpoint(t *testing.T) {
	from := New(1, mgl32.Vec3{1, 1, 1}, mgl32.QuatIdent(), mgl32.Vec3{3, 3, 3})
	to := New(2, mgl32.Vec3{2, 2, 2}, mgl32.QuatRotate(math32.Pi/2, mgl32.Vec3{0, 1, 0}), mgl32.Vec3{4, 4, 4})

	got := Interpolate(from, to, 0.5)

	if got.Timestamp != 1.5 {
		t.Fatalf("expected timestamp 1.5, got %v", got.Timestamp)
	}
	if !smath.Vec3ApproxEq(got.Position, mgl32.Vec3{1.5, 1.5, 1.5}) {
		t.Fatalf("expected position (1.5,1.5,1.5), got %v", got.Position)
	}
	if !smath.Vec3ApproxEq(got.Scale, mgl32.Vec3{3.5, 3.5, 3.5}) {
		t.Fatalf("expected scale (3.5,3.5,3.5), got %v", got.Scale)
	}
	want := mgl32.QuatRotate(math32.Pi/4, mgl32.Vec3{0, 1, 0})
	if !smath.QuatApproxEq(got.Rotation, want) {
		t.Fatalf("expected 45 degree rotation around Y, got %v", got.Rotation)
	}
}

func TestInterpolateEndpoints(t *testing.T) {
	from := New(1, mgl32.Vec3{1, 0, 0}, mgl32.QuatIdent(), mgl32.Vec3{1, 1, 1})
	to := New(3, mgl32.Vec3{5, 0, 0}, mgl32.QuatRotate(math32.Pi/3, mgl32.Vec3{1, 0, 0}), mgl32.Vec3{2, 2, 2})

	if got := Interpolate(from, to, 0); got.Timestamp != from.Timestamp || !smath.Vec3ApproxEq(got.Position, from.Position) {
		t.Fatalf("expected t=0 to yield from, got %+v", got)
	}
	if got := Interpolate(from, to, 1); got.Timestamp != to.Timestamp || !smath.Vec3ApproxEq(got.Position, to.Position) {
		t.Fatalf("expected t=1 to yield to, got %+v", got)
	}
}

func TestInterpolateExtrapolatesLinearComponents(t *testing.T) {
	from := New(1, mgl32.Vec3{0, 0, 0}, mgl32.QuatIdent(), mgl32.Vec3{1, 1, 1})
	to := New(2, mgl32.Vec3{2, 0, 0}, mgl32.QuatIdent(), mgl32.Vec3{2, 2, 2})

	got := Interpolate(from, to, 1.5)
	if got.Timestamp != 2.5 {
		t.Fatalf("expected extrapolated timestamp 2.5, got %v", got.Timestamp)
	}
	if !smath.Vec3ApproxEq(got.Position, mgl32.Vec3{3, 0, 0}) {
		t.Fatalf("expected extrapolated position (3,0,0), got %v", got.Position)
	}
	if !smath.Vec3ApproxEq(got.Scale, mgl32.Vec3{2.5, 2.5, 2.5}) {
		t.Fatalf("expected extrapolated scale (2.5,2.5,2.5), got %v", got.Scale)
	}
}

func TestInterpolateDeterministic(t *testing.T) {
	from := New(1, mgl32.Vec3{1, 2, 3}, mgl32.QuatRotate(0.3, mgl32.Vec3{0, 1, 0}), mgl32.Vec3{1, 1, 1})
	to := New(4, mgl32.Vec3{-2, 0, 7}, mgl32.QuatRotate(1.1, mgl32.Vec3{0, 0, 1}), mgl32.Vec3{3, 3, 3})

	a := Interpolate(from, to, 0.37)
	b := Interpolate(from, to, 0.37)
	if a != b {
		t.Fatalf("expected identical inputs to yield identical outputs, got %+v vs %+v", a, b)
	}
}
