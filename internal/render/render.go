// Package render turns one source raster image into PNG-encoded buffers
// at the requested favicon sizes.
package render

import (
	"bytes"
	"fmt"
	"image"
	"runtime"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	// WebP sources decode through the stdlib registry.
	_ "golang.org/x/image/webp"
)

// Result is one rendered target size.
type Result struct {
	Size int
	PNG  []byte
}

// Open loads the source image from disk. PNG, JPEG, GIF, TIFF, BMP and
// WebP inputs are accepted.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source image: %w", err)
	}
	return img, nil
}

// Square resizes src to a size×size Lanczos-filtered image and returns
// it PNG-encoded.
func Square(src image.Image, size int) ([]byte, error) {
	return EncodePNG(imaging.Resize(src, size, size, imaging.Lanczos))
}

// Sizes renders src at every requested size concurrently and collects
// the results in input order. A size that fails to render is dropped
// from the results and reported in the returned error slice; rendering
// is best effort, the survivors are still usable.
func Sizes(src image.Image, sizes []int) ([]Result, []error) {
	rendered := make([]Result, len(sizes))
	errs := make([]error, len(sizes))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, size := range sizes {
		i, size := i, size
		g.Go(func() error {
			data, err := Square(src, size)
			if err != nil {
				errs[i] = fmt.Errorf("render %dx%d: %w", size, size, err)
				return nil
			}
			rendered[i] = Result{Size: size, PNG: data}
			return nil
		})
	}
	g.Wait()

	out := make([]Result, 0, len(sizes))
	var failed []error
	for i := range sizes {
		if errs[i] != nil {
			failed = append(failed, errs[i])
			continue
		}
		out = append(out, rendered[i])
	}
	return out, failed
}

// EncodePNG serializes img into an in-memory PNG stream.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
