package vecmath

import (
	"errors"
	"math"
	"testing"
)

func TestArithmeticKeepsTimeTag(t *testing.T) {
	a := New(1, 2, 3, nil)
	b := New(-1, 0.5, 2, nil)
	sum := a.Add(b)
	if sum.X != 0 || sum.Y != 2.5 || sum.Z != 5 {
		t.Errorf("Add = (%g, %g, %g)", sum.X, sum.Y, sum.Z)
	}
	diff := a.Sub(b)
	if diff.X != 2 || diff.Y != 1.5 || diff.Z != 1 {
		t.Errorf("Sub = (%g, %g, %g)", diff.X, diff.Y, diff.Z)
	}
	if got := New(3, 4, 12, nil).Length(); got != 13 {
		t.Errorf("Length = %g, want 13", got)
	}
}

func TestAngleBetween(t *testing.T) {
	x := New(1, 0, 0, nil)
	cases := []struct {
		name string
		b    Vector
		want float64
	}{
		{"orthogonal", New(0, 5, 0, nil), 90},
		{"parallel", New(2, 0, 0, nil), 0},
		{"antiparallel", New(-3, 0, 0, nil), 180},
		{"diagonal", New(1, 1, 0, nil), 45},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := AngleBetween(x, c.b)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(got-c.want) > 1e-12 {
				t.Errorf("AngleBetween = %f, want %f", got, c.want)
			}
		})
	}
}

func TestAngleBetweenDegenerate(t *testing.T) {
	if _, err := AngleBetween(New(0, 0, 0, nil), New(1, 0, 0, nil)); !errors.Is(err, ErrDegenerateVector) {
		t.Errorf("error = %v, want ErrDegenerateVector", err)
	}
	if _, err := AngleBetween(New(1e-5, 0, 0, nil), New(1e-5, 0, 0, nil)); !errors.Is(err, ErrDegenerateVector) {
		t.Errorf("tiny vectors: error = %v, want ErrDegenerateVector", err)
	}
}

func TestAngleBetweenNeverNaN(t *testing.T) {
	// Rounding can push the normalized dot product past +/-1; the result
	// must clamp instead of going NaN.
	a := New(1, 1e-8, 0, nil)
	got, err := AngleBetween(a, a)
	if err != nil {
		t.Fatal(err)
	}
	if math.IsNaN(got) || got > 1e-6 {
		t.Errorf("self angle = %v, want 0", got)
	}
}
