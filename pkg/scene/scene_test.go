package scene

import (
	"testing"

	"github.com/magus/ray-tracer/pkg/geometry"
	"github.com/magus/ray-tracer/pkg/material"
	"github.com/magus/ray-tracer/pkg/renderer"
	"github.com/stretchr/testify/require"
)

func TestPlaceSphere(t *testing.T) {
	s := New(renderer.DefaultCameraConfig())
	s.Add(geometry.NewSphere(vec3(0, 0, 0), 0.5, material.NewDebug()))

	t.Run("rejects a sphere too close to an existing one", func(t *testing.T) {
		placed := s.PlaceSphere(geometry.NewSphere(vec3(0.5, 0, 0), 0.2, material.NewDebug()), 0.9)
		require.False(t, placed)
		require.Equal(t, 1, s.PrimitiveCount())
	})

	t.Run("places a sphere beyond the minimum distance", func(t *testing.T) {
		placed := s.PlaceSphere(geometry.NewSphere(vec3(2, 0, 0), 0.2, material.NewDebug()), 0.9)
		require.True(t, placed)
		require.Equal(t, 2, s.PrimitiveCount())
	})

	t.Run("ignores ground spheres in the distance check", func(t *testing.T) {
		s := New(renderer.DefaultCameraConfig())
		s.Add(geometry.NewGroundSphere(vec3(0, -1000, 0), 1000, material.NewDebug()))

		// The candidate center is well within minDistance of the ground
		// sphere's center magnitude, but the ground opts out of checks.
		placed := s.PlaceSphere(geometry.NewSphere(vec3(0, 0.2, 0), 0.2, material.NewDebug()), 2000)
		require.True(t, placed)
	})
}

func TestWorld(t *testing.T) {
	s := New(renderer.DefaultCameraConfig())
	s.Add(geometry.NewSphere(vec3(0, 0, -1), 0.5, material.NewDebug()))
	s.Add(geometry.NewSphere(vec3(0, -100.5, -1), 100, material.NewDebug()))

	world := s.World()
	require.Len(t, world.Objects, 2)
}

func TestNewDebugScene(t *testing.T) {
	s := NewDebugScene()
	require.Equal(t, 2, s.PrimitiveCount())
	for _, sphere := range s.Spheres {
		require.Equal(t, material.KindDebug, sphere.Material.Kind)
	}
}

func TestNewDefaultScene(t *testing.T) {
	s := NewDefaultScene()
	require.Equal(t, 5, s.PrimitiveCount())
	require.Equal(t, 20.0, s.CameraConfig.VFov)
	require.Equal(t, 10.0, s.CameraConfig.DefocusAngle)

	// The hollow glass sphere is an inner shell with an inverted index.
	inner := s.Spheres[3]
	require.Equal(t, material.KindDielectric, inner.Material.Kind)
	require.InDelta(t, 1.0/1.5, inner.Material.RefractionIndex, 1e-12)
	require.InDelta(t, 0.4, inner.Radius, 1e-12)
}

func TestNewCoverScene(t *testing.T) {
	s := NewCoverScene(42)

	// Ground, three features, plus the surviving part of the 22x22 grid;
	// the placement heuristic drops candidates that land too close to any
	// previously placed sphere.
	require.Greater(t, s.PrimitiveCount(), 100)
	require.LessOrEqual(t, s.PrimitiveCount(), 4+22*22)

	require.False(t, s.Spheres[0].Collision, "ground sphere must opt out of collision checks")
	for _, sphere := range s.Spheres[1:] {
		require.True(t, sphere.Collision)
	}
}

func TestNewCoverScene_SeedDeterminism(t *testing.T) {
	first := NewCoverScene(7)
	second := NewCoverScene(7)
	other := NewCoverScene(8)

	require.Equal(t, first.PrimitiveCount(), second.PrimitiveCount())
	for i := range first.Spheres {
		require.Equal(t, first.Spheres[i].Center, second.Spheres[i].Center)
		require.Equal(t, first.Spheres[i].Material, second.Spheres[i].Material)
	}

	require.NotEqual(t, first.Spheres[4].Center, other.Spheres[4].Center)
}

func TestNames(t *testing.T) {
	require.Equal(t, []string{"cover", "debug", "default"}, Names())
}

func TestByName(t *testing.T) {
	s, err := ByName("debug", 0)
	require.NoError(t, err)
	require.Equal(t, 2, s.PrimitiveCount())

	_, err = ByName("nope", 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown scene")
}
