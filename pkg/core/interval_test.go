package core

import (
	"math"
	"testing"
)

func TestInterval_Bounds(t *testing.T) {
	i := NewInterval(-4, 6)
	if i.Min != -4 || i.Max != 6 {
		t.Errorf("Expected bounds [-4, 6], got [%f, %f]", i.Min, i.Max)
	}
	if got := i.Size(); got != 10 {
		t.Errorf("Expected size 10, got %f", got)
	}
}

func TestInterval_EmptyAndUniverse(t *testing.T) {
	empty := EmptyInterval()
	if !math.IsInf(empty.Min, 1) || !math.IsInf(empty.Max, -1) {
		t.Errorf("Expected inverted infinite bounds, got [%f, %f]", empty.Min, empty.Max)
	}
	if empty.Contains(0) {
		t.Error("Expected empty interval to contain nothing")
	}

	universe := UniverseInterval()
	if !universe.Contains(math.MaxFloat64) || !universe.Contains(-math.MaxFloat64) {
		t.Error("Expected universe interval to contain everything")
	}
}

func TestInterval_ContainsAndSurrounds(t *testing.T) {
	i := NewInterval(-4, 6)

	tests := []struct {
		name      string
		x         float64
		contains  bool
		surrounds bool
	}{
		{"below min", -5, false, false},
		{"at min", -4, true, false},
		{"inside", 3.4, true, true},
		{"at max", 6, true, false},
		{"above max", 7, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := i.Contains(tt.x); got != tt.contains {
				t.Errorf("Contains(%f): expected %t, got %t", tt.x, tt.contains, got)
			}
			if got := i.Surrounds(tt.x); got != tt.surrounds {
				t.Errorf("Surrounds(%f): expected %t, got %t", tt.x, tt.surrounds, got)
			}
		})
	}
}

func TestInterval_Clamp(t *testing.T) {
	i := NewInterval(-4, 6)
	if got := i.Clamp(-5); got != -4 {
		t.Errorf("Expected clamp to -4, got %f", got)
	}
	if got := i.Clamp(3.4); got != 3.4 {
		t.Errorf("Expected 3.4 unchanged, got %f", got)
	}
	if got := i.Clamp(10); got != 6 {
		t.Errorf("Expected clamp to 6, got %f", got)
	}
}
