package renderer

import (
	"testing"

	"github.com/magus/ray-tracer/pkg/core"
	"github.com/stretchr/testify/require"
)

func testRenderCamera(samplesPerPixel int) *Camera {
	config := squareTestConfig()
	config.SamplesPerPixel = samplesPerPixel
	return NewCamera(config)
}

func TestRender_BufferShape(t *testing.T) {
	camera := testRenderCamera(2)
	pixels, stats := camera.Render(debugWorld(), RenderOptions{NumWorkers: 2, Seed: 42})

	require.Len(t, pixels, camera.Width()*camera.Height())
	require.Equal(t, 9, stats.TotalPixels)
	require.Equal(t, 18, stats.TotalSamples)
	require.Greater(t, stats.Duration.Nanoseconds(), int64(0))
}

func TestRender_CenterPixelSeesTheSphere(t *testing.T) {
	camera := testRenderCamera(4)
	pixels, _ := camera.Render(debugWorld(), RenderOptions{NumWorkers: 1, Seed: 42})

	// The center pixel's rays all hit the small sphere head on. The debug
	// material maps near-frontal normals to colors near (0.5, 0.5, 1).
	center := pixels[1*camera.Width()+1]
	require.InDelta(t, 0.5, center.X, 0.25)
	require.InDelta(t, 0.5, center.Y, 0.25)
	require.InDelta(t, 1.0, center.Z, 0.15)
}

func TestRender_OutputIndependentOfWorkerCount(t *testing.T) {
	camera := testRenderCamera(4)
	world := debugWorld()

	serial, _ := camera.Render(world, RenderOptions{NumWorkers: 1, Seed: 7})

	for _, workers := range []int{2, 4, 8} {
		parallel, _ := camera.Render(world, RenderOptions{NumWorkers: workers, Seed: 7})
		require.Equal(t, serial, parallel, "worker count %d changed the output", workers)
	}
}

func TestRender_SeedChangesTheOutput(t *testing.T) {
	camera := testRenderCamera(4)
	world := debugWorld()

	first, _ := camera.Render(world, RenderOptions{NumWorkers: 2, Seed: 1})
	second, _ := camera.Render(world, RenderOptions{NumWorkers: 2, Seed: 2})

	require.NotEqual(t, first, second)
}

func TestRender_ProgressCountsEveryPixel(t *testing.T) {
	camera := testRenderCamera(1)
	progress := NewProgress(int64(camera.Width() * camera.Height()))

	camera.Render(debugWorld(), RenderOptions{NumWorkers: 3, Seed: 42, Progress: progress})

	require.Equal(t, int64(9), progress.Current())
	require.True(t, progress.Done())
}

func TestRender_DefaultWorkerCount(t *testing.T) {
	camera := testRenderCamera(1)

	// NumWorkers <= 0 falls back to one worker per CPU; the render must
	// still complete and fill the buffer.
	pixels, _ := camera.Render(debugWorld(), RenderOptions{Seed: 42})
	for i, pixel := range pixels {
		require.NotEqual(t, core.NewVec3(0, 0, 0), pixel, "pixel %d was never written", i)
	}
}
