package renderer

import (
	"math/rand"
	"time"

	"github.com/magus/ray-tracer/pkg/core"
	"github.com/magus/ray-tracer/pkg/geometry"
)

// RenderOptions controls the parallel render pass
type RenderOptions struct {
	NumWorkers int       // Worker goroutines; <= 0 means one per CPU
	Seed       int64     // Base seed for per-row random sources
	Progress   *Progress // Optional shared pixel counter
}

// RenderStats summarizes a completed render pass
type RenderStats struct {
	TotalPixels  int
	TotalSamples int
	Duration     time.Duration
}

// Render traces the full image and returns a flat row-major pixel buffer of
// linear colors, length Width*Height with row 0 at the top. Each pixel index
// is written exactly once, by exactly one worker. No I/O happens inside the
// parallel region.
func (c *Camera) Render(world geometry.Hittable, opts RenderOptions) ([]core.Vec3, RenderStats) {
	start := time.Now()

	pixels := make([]core.Vec3, c.imageWidth*c.imageHeight)

	pool := NewWorkerPool(opts.NumWorkers, c.imageHeight)
	pool.Start(func(task RowTask) {
		c.renderRow(world, task, pixels, opts.Progress)
	})

	// Seeding by row keeps the output independent of the worker count.
	for y := 0; y < c.imageHeight; y++ {
		pool.Submit(RowTask{Y: y, Seed: opts.Seed + int64(y)})
	}
	pool.Wait()

	duration := time.Since(start)
	instrumentRenderDuration(duration)

	return pixels, RenderStats{
		TotalPixels:  c.imageWidth * c.imageHeight,
		TotalSamples: c.imageWidth * c.imageHeight * c.config.SamplesPerPixel,
		Duration:     duration,
	}
}

// renderRow accumulates and averages the configured number of samples for
// every pixel in the task's row, writing into the row's slice of the shared
// buffer.
func (c *Camera) renderRow(world geometry.Hittable, task RowTask, pixels []core.Vec3, progress *Progress) {
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(task.Seed)))
	samples := c.config.SamplesPerPixel

	for x := 0; x < c.imageWidth; x++ {
		accum := core.NewVec3(0, 0, 0)
		for s := 0; s < samples; s++ {
			ray := c.GetRay(x, task.Y, sampler)
			accum = accum.Add(c.RayColor(ray, world, c.config.MaxDepth, sampler))
		}
		pixels[task.Y*c.imageWidth+x] = accum.Multiply(1.0 / float64(samples))

		if progress != nil {
			progress.Inc()
		}
	}

	instrumentRowRendered(c.imageWidth, samples)
}
