package core

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func vecsEqual(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(5, -3, 9)},
		{"subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"divide", a.Divide(2), NewVec3(0.5, 1, 1.5)},
		{"multiply vec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"lerp midpoint", NewVec3(0, 0, 0).Lerp(NewVec3(2, 4, 6), 0.5), NewVec3(1, 2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecsEqual(tt.got, tt.expected, tolerance) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestVec3_DotAndLength(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if got := a.Dot(b); got != 12 {
		t.Errorf("Expected dot product 12, got %f", got)
	}
	if got := a.LengthSquared(); got != 14 {
		t.Errorf("Expected length squared 14, got %f", got)
	}
	if got := a.Length(); math.Abs(got-math.Sqrt(14)) > tolerance {
		t.Errorf("Expected length %f, got %f", math.Sqrt(14), got)
	}
}

func TestVec3_Normalize_UnitLength(t *testing.T) {
	tests := []Vec3{
		NewVec3(1, 0, 0),
		NewVec3(1, 2, 3),
		NewVec3(-4, 5, -6),
		NewVec3(0.001, 0.002, -0.003),
	}

	for _, v := range tests {
		unit := v.Normalize()
		if math.Abs(unit.Length()-1.0) > tolerance {
			t.Errorf("Expected unit length for %v, got %f", v, unit.Length())
		}
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected near-zero vector to report true")
	}
	if NewVec3(1e-7, 0, 0).NearZero() {
		t.Error("Expected non-degenerate vector to report false")
	}
}

func TestVec3_Axis(t *testing.T) {
	v := NewVec3(1, 2, 3)
	for i, expected := range []float64{1, 2, 3} {
		if got := v.Axis(i); got != expected {
			t.Errorf("Expected axis %d = %f, got %f", i, expected, got)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for out-of-range axis index")
		}
	}()
	v.Axis(3)
}

func TestVec3_Reflect(t *testing.T) {
	normal := NewVec3(0, 1, 0)

	tests := []struct {
		name     string
		v        Vec3
		expected Vec3
	}{
		// A vector parallel to the normal is negated exactly.
		{"parallel", NewVec3(0, 1, 0), NewVec3(0, -1, 0)},
		// A vector perpendicular to the normal is unchanged.
		{"perpendicular", NewVec3(1, 0, 0), NewVec3(1, 0, 0)},
		{"diagonal", NewVec3(1, -1, 0), NewVec3(1, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Reflect(normal); !vecsEqual(got, tt.expected, tolerance) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestVec3_Refract(t *testing.T) {
	normal := NewVec3(0, 0, 1)

	t.Run("normal incidence preserves direction", func(t *testing.T) {
		incident := NewVec3(0, 0, -1)
		for _, eta := range []float64{0.5, 1.0, 1.5, 2.4} {
			if got := incident.Refract(normal, eta); !vecsEqual(got, incident, tolerance) {
				t.Errorf("Expected %v unchanged at eta=%f, got %v", incident, eta, got)
			}
		}
	})

	t.Run("index 1.0 is the identity", func(t *testing.T) {
		incident := NewVec3(0.6, 0, -0.8)
		if got := incident.Refract(normal, 1.0); !vecsEqual(got, incident, tolerance) {
			t.Errorf("Expected %v, got %v", incident, got)
		}
	})

	t.Run("bends toward the normal entering a denser medium", func(t *testing.T) {
		incident := NewVec3(0.6, 0, -0.8)
		refracted := incident.Refract(normal, 1.0/1.5)
		if math.Abs(refracted.Length()-1.0) > tolerance {
			t.Errorf("Expected unit refraction, got length %f", refracted.Length())
		}
		// Snell: sin(theta') = sin(theta) / 1.5
		if math.Abs(refracted.X-0.6/1.5) > tolerance {
			t.Errorf("Expected perpendicular component %f, got %f", 0.6/1.5, refracted.X)
		}
	})
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5)
	if got := v.Clamp(0, 1); !vecsEqual(got, NewVec3(0, 0.5, 1), tolerance) {
		t.Errorf("Expected clamped vector (0, 0.5, 1), got %v", got)
	}
}
