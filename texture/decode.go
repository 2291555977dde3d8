// Package texture decodes image files into RGBA pixel data ready for upload.
package texture

import (
	"fmt"
	"image"
	"os"

	// Registered decoders.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// maxParallelDecodes bounds concurrent decoding in DecodeFiles.
const maxParallelDecodes = 4

// DecodeFile reads and decodes one image file.
func DecodeFile(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}
	logger.Debug("texture decoded", "path", path, "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return ToRGBA(img), nil
}

// DecodeFiles decodes a set of named image files concurrently.
// Decoding runs off the GPU thread; only the upload needs the GPU context.
func DecodeFiles(paths map[string]string) (map[string]*image.RGBA, error) {
	names := make([]string, 0, len(paths))
	for name := range paths {
		names = append(names, name)
	}
	images := make([]*image.RGBA, len(names))

	var g errgroup.Group
	g.SetLimit(maxParallelDecodes)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			img, err := DecodeFile(paths[name])
			if err != nil {
				return fmt.Errorf("texture %q: %w", name, err)
			}
			images[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]*image.RGBA, len(names))
	for i, name := range names {
		out[name] = images[i]
	}
	return out, nil
}

// ToRGBA returns img as an *image.RGBA with its origin at (0, 0).
// img is returned unchanged when it already is one.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// FlipVertical returns a copy of img with rows in reverse order. GL expects
// the first row of texture data to be the bottom of the image.
func FlipVertical(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	row := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+row]
		dst := out.Pix[(b.Dy()-1-y)*out.Stride:]
		copy(dst[:row], src)
	}
	return out
}

// Resize scales img to w x h with Catmull-Rom filtering.
func Resize(img image.Image, w, h int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), draw.Src, nil)
	return out
}
