package components

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/pthm-cable/pond/vmath"
)

func mustEntity(t *testing.T, x, y float64, radius int) *Entity {
	t.Helper()
	e, err := NewEntity(vmath.Vec2{X: x, Y: y}, radius, colorful.Color{R: 1}, DefaultDefaults())
	if err != nil {
		t.Fatalf("NewEntity: %v", err)
	}
	return &e
}

func TestNewEntityDefaults(t *testing.T) {
	e := mustEntity(t, 1, 2, 4)

	if e.Health != 1.0 {
		t.Errorf("Health = %v, want 1", e.Health)
	}
	if e.Nutrition != 0 {
		t.Errorf("Nutrition = %v, want 0", e.Nutrition)
	}
	if e.Dead {
		t.Error("new entity should be alive")
	}
	if e.MaxVelocity != 100 {
		t.Errorf("MaxVelocity = %d, want 100", e.MaxVelocity)
	}
	if e.Velocity != vmath.Zero {
		t.Errorf("Velocity = %v, want zero", e.Velocity)
	}
}

func TestNewEntityRejectsBadRadius(t *testing.T) {
	for _, r := range []int{0, -3} {
		_, err := NewEntity(vmath.Zero, r, colorful.Color{}, DefaultDefaults())
		if !errors.Is(err, ErrInvalidRadius) {
			t.Errorf("radius %d: err = %v, want ErrInvalidRadius", r, err)
		}
	}
}

func TestProximityPredicates(t *testing.T) {
	tests := []struct {
		name         string
		ax, ay, bx   float64
		ra, rb       int
		wantCollide  bool
		wantEatRange bool
	}{
		{"overlapping", 0, 0, 4, 5, 5, true, true},
		{"touching", 0, 0, 10, 5, 5, true, true},
		{"just outside contact", 0, 0, 10.5, 5, 5, false, true},
		{"near eating limit", 0, 0, 11.1, 5, 5, false, true},
		{"beyond eating limit", 0, 0, 11.2, 5, 5, false, false},
		{"far apart", 0, 0, 20, 5, 5, false, false},
		{"same centre", 3, 3, 3, 1, 1, true, true},
		{"uneven radii", 0, 0, 12, 2, 10, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustEntity(t, tt.ax, tt.ay, tt.ra)
			b := mustEntity(t, tt.bx, tt.ay, tt.rb)

			if got := a.IsCollidingWith(b); got != tt.wantCollide {
				t.Errorf("IsCollidingWith = %v, want %v", got, tt.wantCollide)
			}
			if got := b.IsCollidingWith(a); got != tt.wantCollide {
				t.Errorf("IsCollidingWith not symmetric: got %v", got)
			}
			if got := a.InEatingRange(b); got != tt.wantEatRange {
				t.Errorf("InEatingRange = %v, want %v", got, tt.wantEatRange)
			}
		})
	}
}

func TestCollisionImpliesEatingRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		a := mustEntity(t, rng.Float64()*40, rng.Float64()*40, 1+rng.Intn(8))
		b := mustEntity(t, rng.Float64()*40, rng.Float64()*40, 1+rng.Intn(8))

		d := a.Position.Dist(b.Position)
		sum := float64(a.Radius + b.Radius)
		if a.IsCollidingWith(b) != (d <= sum) {
			t.Fatalf("collide mismatch at d=%v sum=%v", d, sum)
		}
		if a.InEatingRange(b) != (0.9*d <= sum) {
			t.Fatalf("eating range mismatch at d=%v sum=%v", d, sum)
		}
		if a.IsCollidingWith(b) && !a.InEatingRange(b) {
			t.Fatalf("colliding pair not in eating range at d=%v sum=%v", d, sum)
		}
	}
}

func TestEatingReach(t *testing.T) {
	reach := EatingReach(5, 5)
	a := mustEntity(t, 0, 0, 5)
	b := mustEntity(t, reach-1e-9, 0, 5)
	if !a.InEatingRange(b) {
		t.Errorf("peer at reach %v should be in eating range", reach)
	}
	b.Position.X = reach + 0.01
	if a.InEatingRange(b) {
		t.Errorf("peer beyond reach %v should be out of range", reach)
	}
}

func TestMoveTouchingIsRejected(t *testing.T) {
	a := mustEntity(t, 0, 0, 5)
	b := mustEntity(t, 10, 0, 5)

	if !a.IsCollidingWith(b) {
		t.Fatal("touching entities should collide")
	}

	ok := a.Move(vmath.Vec2{X: 0.1, Y: 0}, []*Entity{a, b})
	if ok {
		t.Fatal("move that keeps contact should be rejected")
	}
	if a.Position != (vmath.Vec2{}) {
		t.Errorf("Position = %v, want {0 0}", a.Position)
	}
}

func TestMoveClearIsAccepted(t *testing.T) {
	a := mustEntity(t, 0, 0, 5)
	b := mustEntity(t, 20, 0, 5)

	if a.IsCollidingWith(b) {
		t.Fatal("entities 20 apart should not collide")
	}
	if !a.Move(vmath.Vec2{X: 5, Y: 0}, []*Entity{a, b}) {
		t.Fatal("move to distance 15 should be accepted")
	}
	if a.Position != (vmath.Vec2{X: 5, Y: 0}) {
		t.Errorf("Position = %v, want {5 0}", a.Position)
	}
}

func TestMoveEmptyPeers(t *testing.T) {
	for _, d := range []vmath.Vec2{{}, {X: 1e9, Y: -1e9}, {X: -0.25, Y: 3}} {
		a := mustEntity(t, 1, 1, 3)
		want := a.Position.Add(d)
		if !a.Move(d, nil) {
			t.Errorf("Move(%v, nil) rejected", d)
		}
		if a.Position != want {
			t.Errorf("Position = %v, want %v", a.Position, want)
		}
	}
}

func TestMoveZeroDisplacement(t *testing.T) {
	a := mustEntity(t, 0, 0, 5)
	b := mustEntity(t, 50, 0, 5)
	start := a.Position

	if !a.Move(vmath.Zero, []*Entity{a, b}) {
		t.Fatal("zero move should be accepted when nothing overlaps")
	}
	if a.Position != start {
		t.Errorf("Position = %v, want %v", a.Position, start)
	}
}

func TestMoveRollbackIsBitwiseExact(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	blocker := mustEntity(t, 0, 0, 50)

	for i := 0; i < 1000; i++ {
		a := mustEntity(t, rng.NormFloat64()*1e-3+0.1, rng.NormFloat64()*1e-3-0.3, 1)
		// Displacements span many magnitudes so naive p+d-d would drift.
		// All of them land inside the blocker, so every move is rejected.
		scale := math.Pow(10, float64(rng.Intn(7)-6))
		d := vmath.Vec2{X: rng.Float64() * scale * 10, Y: -rng.Float64() * scale * 10}

		before := a.Position
		if a.Move(d, []*Entity{blocker, a}) {
			t.Fatalf("move %v into blocker accepted", d)
		}
		if math.Float64bits(a.Position.X) != math.Float64bits(before.X) ||
			math.Float64bits(a.Position.Y) != math.Float64bits(before.Y) {
			t.Fatalf("rollback drifted: %v -> %v", before, a.Position)
		}
	}
}

func TestMoveRollbackLargeDisplacement(t *testing.T) {
	a := mustEntity(t, 0.1, 0.3, 1)
	blocker := mustEntity(t, 1e20+0.1, 0.3, 1)
	before := a.Position

	if a.Move(vmath.Vec2{X: 1e20, Y: 0}, []*Entity{blocker}) {
		t.Fatal("move onto blocker accepted")
	}
	if math.Float64bits(a.Position.X) != math.Float64bits(before.X) {
		t.Errorf("X = %v, want %v exactly", a.Position.X, before.X)
	}
}

func TestMoveSkipsDeadPeers(t *testing.T) {
	a := mustEntity(t, 0, 0, 5)
	corpse := mustEntity(t, 6, 0, 5)
	corpse.Dead = true

	if !a.Move(vmath.Vec2{X: 1, Y: 0}, []*Entity{corpse}) {
		t.Error("dead peers must not block movement")
	}
}

func TestMoveIdentityNotValue(t *testing.T) {
	a := mustEntity(t, 0, 0, 5)
	twin := *a // same state, different identity

	if a.Move(vmath.Vec2{X: 1, Y: 0}, []*Entity{a, &twin}) {
		t.Error("a value-equal twin must still be tested and block the move")
	}
	if a.Position != (vmath.Vec2{}) {
		t.Errorf("Position = %v, want {0 0}", a.Position)
	}
}

func TestMovePreexistingOverlapRejects(t *testing.T) {
	a := mustEntity(t, 0, 0, 5)
	b := mustEntity(t, 3, 0, 5)

	// Sliding alongside keeps the overlap, so it is rejected.
	if a.Move(vmath.Vec2{X: 0, Y: 1}, []*Entity{b}) {
		t.Error("move that keeps an existing overlap should be rejected")
	}
	// A net-separating step clears it.
	if !a.Move(vmath.Vec2{X: -8, Y: 0}, []*Entity{b}) {
		t.Error("separating move should be accepted")
	}
}

func TestMoveFirstCollisionAbortsWholeStep(t *testing.T) {
	a := mustEntity(t, 0, 0, 2)
	farAway := mustEntity(t, -50, 0, 2)
	blocking := mustEntity(t, 12, 0, 2)
	start := a.Position

	if a.Move(vmath.Vec2{X: 10, Y: 0}, []*Entity{farAway, blocking}) {
		t.Fatal("move should be rejected")
	}
	if a.Position != start {
		t.Errorf("partial move applied: %v", a.Position)
	}
}

func TestNextVelocityRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	e := mustEntity(t, 0, 0, 1)

	var sawMin, sawMax bool
	for i := 0; i < 10000; i++ {
		e.NextVelocity(rng)
		for _, v := range []float64{e.Velocity.X, e.Velocity.Y} {
			if v < -50 || v >= 50 {
				t.Fatalf("velocity component %v outside [-50, 50)", v)
			}
			if v != math.Trunc(v) {
				t.Fatalf("velocity component %v is not integral", v)
			}
			sawMin = sawMin || v == -50
			sawMax = sawMax || v == 49
		}
	}
	if !sawMin || !sawMax {
		t.Errorf("range not covered: sawMin=%v sawMax=%v", sawMin, sawMax)
	}
}

func TestNextVelocityOddLimit(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	e := mustEntity(t, 0, 0, 1)
	e.MaxVelocity = 5

	for i := 0; i < 5000; i++ {
		e.NextVelocity(rng)
		for _, v := range []float64{e.Velocity.X, e.Velocity.Y} {
			if v < -2 || v > 2 {
				t.Fatalf("velocity component %v outside [-2, 2]", v)
			}
		}
	}
}

func TestNextVelocityDeterministic(t *testing.T) {
	a := mustEntity(t, 0, 0, 1)
	b := mustEntity(t, 0, 0, 1)
	ra := rand.New(rand.NewSource(42))
	rb := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		a.NextVelocity(ra)
		b.NextVelocity(rb)
		if a.Velocity != b.Velocity {
			t.Fatalf("draw %d differs: %v vs %v", i, a.Velocity, b.Velocity)
		}
	}
}

func TestNextVelocityZeroLimit(t *testing.T) {
	e := mustEntity(t, 0, 0, 1)
	e.Velocity = vmath.Vec2{X: 3, Y: 4}
	e.MaxVelocity = 0

	e.NextVelocity(rand.New(rand.NewSource(1)))
	if e.Velocity != vmath.Zero {
		t.Errorf("Velocity = %v, want zero", e.Velocity)
	}
}

func TestKindString(t *testing.T) {
	if KindGrazer.String() != "grazer" {
		t.Errorf("KindGrazer.String() = %q", KindGrazer.String())
	}
	if Kind(200).String() != "unknown" {
		t.Errorf("Kind(200).String() = %q", Kind(200).String())
	}
}
