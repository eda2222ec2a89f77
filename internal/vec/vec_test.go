package vec

import (
	"math"
	"testing"
)

func TestArithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add: got %v", got)
	}
	if got := b.Sub(a); got != (Vec3{3, 3, 3}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Scale: got %v", got)
	}
}

func TestLength(t *testing.T) {
	v := Vec3{3, 4, 0}
	if v.Length() != 5 {
		t.Errorf("expected length 5, got %f", v.Length())
	}
	if v.LengthSq() != 25 {
		t.Errorf("expected length² 25, got %f", v.LengthSq())
	}
}

func TestNormalize(t *testing.T) {
	v := Vec3{0, 0, 10}.Normalize()
	if v != (Vec3{0, 0, 1}) {
		t.Errorf("expected unit z, got %v", v)
	}

	zero := Vec3{}.Normalize()
	if zero != (Vec3{}) {
		t.Errorf("zero vector should normalize to zero, got %v", zero)
	}
}

func TestCross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}

	if got := x.Cross(y); got != (Vec3{0, 0, 1}) {
		t.Errorf("x×y: got %v", got)
	}
	if got := y.Cross(x); got != (Vec3{0, 0, -1}) {
		t.Errorf("y×x: got %v", got)
	}

	// parallel vectors have zero cross product
	if got := x.Cross(x.Scale(3)); got != (Vec3{}) {
		t.Errorf("parallel cross: got %v", got)
	}
}

func TestDot(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}
	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot: got %f", got)
	}
}

func TestDistance(t *testing.T) {
	a := Vec3{1, 1, 1}
	b := Vec3{1, 1, 4}
	if d := a.Distance(b); math.Abs(d-3) > 1e-12 {
		t.Errorf("Distance: got %f", d)
	}
}
