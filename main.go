package main

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/aukilabs/go-tooling/pkg/cli"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/magus/ray-tracer/pkg/ppm"
	"github.com/magus/ray-tracer/pkg/renderer"
	"github.com/magus/ray-tracer/pkg/scene"
	"github.com/segmentio/encoding/json"
)

// Keeps the config struct's field names intact for the cli package.
// https://github.com/burrowers/garble/issues/403
var _ = reflect.TypeOf(config{})

type config struct {
	Scene       string  `cli:"" env:"RAYTRACER_SCENE"        help:"Scene to render (debug|default|cover)."`
	ImageHeight int     `cli:"" env:"RAYTRACER_IMAGE_HEIGHT" help:"Rendered image height in pixels."`
	AspectRatio float64 `cli:"" env:"RAYTRACER_ASPECT_RATIO" help:"Image width over height."`
	Samples     int     `cli:"" env:"RAYTRACER_SAMPLES"      help:"Samples per pixel."`
	MaxDepth    int     `cli:"" env:"RAYTRACER_MAX_DEPTH"    help:"Maximum ray bounce depth."`
	Workers     int     `cli:"" env:"RAYTRACER_WORKERS"      help:"Render workers. Zero means one per CPU."`
	Seed        int64   `cli:"" env:"RAYTRACER_SEED"         help:"Seed for sampling and scene generation."`
	Output      string  `cli:"" env:"RAYTRACER_OUTPUT"       help:"Output image path (ppm)."`
	LogLevel    string  `cli:"" env:"RAYTRACER_LOG_LEVEL"    help:"Log level (debug|info|warning|error)."`
	NoProgress  bool    `cli:"" env:"RAYTRACER_NO_PROGRESS"  help:"Disable the terminal progress bar."`
}

func main() {
	conf := config{
		Scene:       "default",
		ImageHeight: 400,
		AspectRatio: 16.0 / 9.0,
		Samples:     100,
		MaxDepth:    50,
		Seed:        42,
		Output:      "render.ppm",
		LogLevel:    logs.InfoLevel.String(),
	}

	cli.Register().
		Help("Renders a path-traced scene to a ppm image.").
		Options(&conf)
	cli.Load()

	logs.SetLevel(logs.ParseLevel(conf.LogLevel))
	logs.Encoder = json.Marshal
	errors.Encoder = json.Marshal

	selected, err := scene.ByName(conf.Scene, conf.Seed)
	if err != nil {
		logs.Fatal(err)
	}

	cameraConfig := selected.CameraConfig
	cameraConfig.ImageHeight = conf.ImageHeight
	cameraConfig.AspectRatio = conf.AspectRatio
	cameraConfig.SamplesPerPixel = conf.Samples
	cameraConfig.MaxDepth = conf.MaxDepth
	camera := renderer.NewCamera(cameraConfig)

	logs.WithTag("scene", conf.Scene).
		WithTag("width", camera.Width()).
		WithTag("height", camera.Height()).
		WithTag("samples", conf.Samples).
		WithTag("objects", selected.PrimitiveCount()).
		Info("starting render")

	progress := renderer.NewProgress(int64(camera.Width() * camera.Height()))
	done := make(chan struct{})
	if !conf.NoProgress {
		go drawProgress(progress, done)
	}

	pixels, stats := camera.Render(selected.World(), renderer.RenderOptions{
		NumWorkers: conf.Workers,
		Seed:       conf.Seed,
		Progress:   progress,
	})
	close(done)

	logs.WithTag("duration", stats.Duration.String()).
		WithTag("pixels", stats.TotalPixels).
		WithTag("samples", stats.TotalSamples).
		Info("render complete")

	img := ppm.NewImage(camera.Width(), camera.Height(), pixels)
	if err := img.WriteFile(conf.Output); err != nil {
		logs.Fatal(errors.New("saving render failed").Wrap(err))
	}

	logs.WithTag("path", conf.Output).Info("render saved")
}

// drawProgress redraws the progress bar on stderr until the render finishes.
// All rendering I/O stays out of the parallel region; this reads the shared
// counter atomically from the outside.
func drawProgress(progress *renderer.Progress, done <-chan struct{}) {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	draw := func() {
		fmt.Fprintf(os.Stderr, "\r%s", progress.Bar(progress.Current()))
	}

	for {
		select {
		case <-ticker.C:
			draw()
		case <-done:
			draw()
			fmt.Fprint(os.Stderr, strings.Repeat(" ", 4)+"\n")
			return
		}
	}
}
