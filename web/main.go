package main

import (
	"context"
	"net/http"
	"os"
	"reflect"
	"syscall"

	"github.com/aukilabs/go-tooling/pkg/cli"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/magus/ray-tracer/web/server"
	"github.com/segmentio/encoding/json"
)

// Keeps the config struct's field names intact for the cli package.
// https://github.com/burrowers/garble/issues/403
var _ = reflect.TypeOf(config{})

type config struct {
	Addr           string `cli:"" env:"RAYTRACER_ADDR"             help:"Listening address for render clients."`
	AdminAddr      string `cli:"" env:"RAYTRACER_ADMIN_ADDR"       help:"Admin listening address (metrics, pprof)."`
	MaxImageHeight int    `cli:"" env:"RAYTRACER_MAX_IMAGE_HEIGHT" help:"Largest accepted image height."`
	LogLevel       string `cli:"" env:"RAYTRACER_LOG_LEVEL"        help:"Log level (debug|info|warning|error)."`
}

func main() {
	conf := config{
		Addr:           ":8080",
		AdminAddr:      ":18080",
		MaxImageHeight: 2160,
		LogLevel:       logs.InfoLevel.String(),
	}

	ctx, cancel := cli.ContextWithSignals(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cli.Register().
		Help("Starts the render web server.").
		Options(&conf)
	cli.Load()

	logs.SetLevel(logs.ParseLevel(conf.LogLevel))
	logs.Encoder = json.Marshal
	errors.Encoder = json.Marshal

	renderServer := server.NewServer()
	renderServer.MaxImageHeight = conf.MaxImageHeight

	var service http.ServeMux
	renderServer.Routes(&service)

	var admin http.ServeMux
	server.AdminRoutes(&admin)

	server.ListenAndServe(ctx,
		&http.Server{Addr: conf.Addr, Handler: &service},
		&http.Server{Addr: conf.AdminAddr, Handler: &admin},
	)
}
