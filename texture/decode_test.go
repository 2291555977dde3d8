package texture_test

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-theft-auto/minicore/texture"
)

// gradient returns a w x h image whose pixel (x, y) is (x, y, 0, 255).
func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), A: 255})
		}
	}
	return img
}

func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDecodeFiles(t *testing.T) {
	dir := t.TempDir()
	paths := map[string]string{
		"a": writePNG(t, dir, "a.png", gradient(4, 2)),
		"b": writePNG(t, dir, "b.png", gradient(3, 5)),
	}

	images, err := texture.DecodeFiles(paths)
	if err != nil {
		t.Fatalf("DecodeFiles: %v", err)
	}
	if len(images) != 2 {
		t.Fatalf("decoded %d images, want 2", len(images))
	}
	if b := images["b"].Bounds(); b.Dx() != 3 || b.Dy() != 5 {
		t.Errorf("b bounds = %v", b)
	}
	if c := images["a"].RGBAAt(3, 1); c != (color.RGBA{R: 3, G: 1, A: 255}) {
		t.Errorf("a(3,1) = %v", c)
	}
}

func TestDecodeFilesMissing(t *testing.T) {
	dir := t.TempDir()
	_, err := texture.DecodeFiles(map[string]string{
		"ok":      writePNG(t, dir, "ok.png", gradient(1, 1)),
		"missing": filepath.Join(dir, "missing.png"),
	})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist", err)
	}
}

func TestFlipVertical(t *testing.T) {
	src := texture.ToRGBA(gradient(2, 3))
	flipped := texture.FlipVertical(src)

	for y := 0; y < 3; y++ {
		for x := 0; x < 2; x++ {
			if got, want := flipped.RGBAAt(x, y), src.RGBAAt(x, 2-y); got != want {
				t.Errorf("flipped(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestToRGBAOffsetOrigin(t *testing.T) {
	sub := texture.ToRGBA(gradient(8, 8)).SubImage(image.Rect(2, 3, 6, 5))
	rgba := texture.ToRGBA(sub)

	if rgba.Bounds() != image.Rect(0, 0, 4, 2) {
		t.Fatalf("bounds = %v", rgba.Bounds())
	}
	if c := rgba.RGBAAt(0, 0); c != (color.RGBA{R: 2, G: 3, A: 255}) {
		t.Errorf("(0,0) = %v, want source pixel (2,3)", c)
	}
}

func TestResize(t *testing.T) {
	out := texture.Resize(gradient(16, 16), 4, 8)
	if out.Bounds() != image.Rect(0, 0, 4, 8) {
		t.Errorf("bounds = %v", out.Bounds())
	}
}
