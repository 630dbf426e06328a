// Package ppm encodes rendered pixel buffers as ASCII portable pixmaps (P3).
package ppm

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/magus/ray-tracer/pkg/core"
)

// MaxChannelValue is the maximum encoded value per color channel
const MaxChannelValue = 255

// intensity is the half-open clamp applied before scaling by 256, so a full
// 1.0 channel still encodes to 255 rather than 256.
var intensity = core.NewInterval(0, 0.9999)

// Image is a rendered pixel buffer ready for encoding. Pixels are linear
// colors in row-major order starting top-left, length Width*Height.
type Image struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewImage wraps a pixel buffer produced by a render pass
func NewImage(width, height int, pixels []core.Vec3) *Image {
	return &Image{Width: width, Height: height, Pixels: pixels}
}

// linearToGamma transforms a linear channel for gamma 2
func linearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// EncodeColor converts a linear color to 8-bit channel values: gamma-2
// correction, clamp to [0, 0.9999], scale by 256 and truncate.
func EncodeColor(c core.Vec3) (r, g, b int) {
	r = int(256 * intensity.Clamp(linearToGamma(c.X)))
	g = int(256 * intensity.Clamp(linearToGamma(c.Y)))
	b = int(256 * intensity.Clamp(linearToGamma(c.Z)))
	return r, g, b
}

// Encode writes the image in P3 format: three header lines, then one line of
// space-separated R G B integers per pixel.
// https://en.wikipedia.org/wiki/Netpbm
func (img *Image) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "P3")
	fmt.Fprintf(bw, "%d %d\n", img.Width, img.Height)
	fmt.Fprintln(bw, MaxChannelValue)

	for _, pixel := range img.Pixels {
		r, g, b := EncodeColor(pixel)
		fmt.Fprintf(bw, "%d %d %d\n", r, g, b)
	}

	if err := bw.Flush(); err != nil {
		return errors.New("encoding ppm image failed").Wrap(err)
	}
	return nil
}

// WriteFile saves the image to filepath atomically: the encoded data goes to
// a temporary file in the destination directory, which is then renamed into
// place so consumers never observe a partial image.
func (img *Image) WriteFile(path string) error {
	if len(img.Pixels) != img.Width*img.Height {
		return errors.New("pixel buffer size does not match image dimensions").
			WithTag("width", img.Width).
			WithTag("height", img.Height).
			WithTag("pixels", len(img.Pixels))
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.New("creating temporary image file failed").
			WithTag("path", path).
			Wrap(err)
	}
	defer os.Remove(tmp.Name())

	if err := img.Encode(tmp); err != nil {
		tmp.Close()
		return errors.New("writing image data failed").
			WithTag("path", tmp.Name()).
			Wrap(err)
	}
	if err := tmp.Close(); err != nil {
		return errors.New("closing temporary image file failed").
			WithTag("path", tmp.Name()).
			Wrap(err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.New("renaming image into place failed").
			WithTag("from", tmp.Name()).
			WithTag("to", path).
			Wrap(err)
	}
	return nil
}
