package vmath

import (
	"math"
	"testing"
)

func TestArithmetic(t *testing.T) {
	a := Vec2{X: 3, Y: -2}
	b := Vec2{X: 0.5, Y: 4}

	if got := a.Add(b); got != (Vec2{X: 3.5, Y: 2}) {
		t.Errorf("Add = %v, want {3.5 2}", got)
	}
	if got := a.Sub(b); got != (Vec2{X: 2.5, Y: -6}) {
		t.Errorf("Sub = %v, want {2.5 -6}", got)
	}
	if got := a.Mul(-2); got != (Vec2{X: -6, Y: 4}) {
		t.Errorf("Mul = %v, want {-6 4}", got)
	}

	// Operands are values and must be left untouched.
	if a != (Vec2{X: 3, Y: -2}) || b != (Vec2{X: 0.5, Y: 4}) {
		t.Errorf("operands mutated: a=%v b=%v", a, b)
	}
}

func TestLength(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want float64
	}{
		{"zero", Vec2{}, 0},
		{"3-4-5", Vec2{X: 3, Y: 4}, 5},
		{"negative", Vec2{X: -3, Y: -4}, 5},
		{"axis", Vec2{X: 0, Y: -7.5}, 7.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Length()
			if got < 0 {
				t.Fatalf("Length() = %v, must be non-negative", got)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Length() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNegationCancels(t *testing.T) {
	p := Vec2{X: 0.1, Y: -0.3}
	d := Vec2{X: 0.7, Y: 1e-3}
	got := p.Add(d).Add(d.Mul(-1))
	if math.Abs(got.X-p.X) > 1e-15 || math.Abs(got.Y-p.Y) > 1e-15 {
		t.Errorf("p + d - d = %v, want %v", got, p)
	}
}

func TestUnit(t *testing.T) {
	if got := Zero.Unit(); got != Zero {
		t.Errorf("Zero.Unit() = %v, want zero", got)
	}

	u := Vec2{X: 10, Y: 0}.Unit()
	if math.Abs(u.X-1) > 1e-12 || math.Abs(u.Y) > 1e-12 {
		t.Errorf("Unit = %v, want {1 0}", u)
	}
}

func TestRotate(t *testing.T) {
	got := Vec2{X: 2, Y: 0}.Rotate(math.Pi / 2)
	if math.Abs(got.X) > 1e-9 || math.Abs(got.Y-2) > 1e-9 {
		t.Errorf("Rotate(pi/2) = %v, want {0 2}", got)
	}

	if l := got.Length(); math.Abs(l-2) > 1e-9 {
		t.Errorf("rotation changed length to %v", l)
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi, 3)
	if math.Abs(v.X+3) > 1e-9 || math.Abs(v.Y) > 1e-9 {
		t.Errorf("FromAngle(pi, 3) = %v, want {-3 0}", v)
	}
	if math.Abs(v.Angle()-math.Pi) > 1e-9 {
		t.Errorf("Angle() = %v, want pi", v.Angle())
	}
}
