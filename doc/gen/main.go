// Command gen renders a gallery of surface variants offscreen, captures
// framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/minicore"
	"github.com/go-theft-auto/minicore/backend/opengl"
	"github.com/go-theft-auto/minicore/texture"
)

const shotSize = 256

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot is one rendered surface configuration.
type screenshot struct {
	name    string // filename without extension
	opts    []minicore.SurfaceOption
	angle   float32
	scale   float32 // 0 means 1
	color   minicore.Color
	shadow  bool
	texture bool
}

func run() error {
	win, err := opengl.OpenWindow(opengl.WindowConfig{
		Width:  shotSize,
		Height: shotSize,
		Title:  "screenshot-gen",
		Hidden: true,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	dev := opengl.NewDevice()
	defer dev.Delete()

	program, err := opengl.NewSurfaceProgram(shotSize, shotSize)
	if err != nil {
		return fmt.Errorf("surface program: %w", err)
	}
	defer program.Delete()

	shadow, err := opengl.NewShadowProgram(shotSize, shotSize)
	if err != nil {
		return fmt.Errorf("shadow program: %w", err)
	}
	defer shadow.Delete()

	checker := opengl.NewTexture(checkerboard(64, 8))
	defer opengl.DeleteTexture(checker)

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		mat := minicore.Material{Program: program, ShadowProgram: shadow}
		if s.texture {
			mat.Texture = checker
		}
		if err := capture(dev, mat, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, shotSize, shotSize)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

// newSurface builds the surface for one screenshot.
func newSurface(dev minicore.Device, mat minicore.Material, s screenshot) *minicore.Surface {
	surface := minicore.NewSurface(dev, s.name, mat, 128, 128, s.opts...)
	if s.scale != 0 {
		surface.SetScale(mgl32.Vec3{s.scale, s.scale, 1})
	}
	if s.color != (minicore.Color{}) {
		surface.SetColor(s.color)
	}
	return surface
}

func capture(dev minicore.Device, mat minicore.Material, s screenshot, outDir string) error {
	surface := newSurface(dev, mat, s)
	defer surface.Delete()

	gl.Viewport(0, 0, shotSize, shotSize)
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	center := mgl32.Vec3{shotSize / 2, shotSize / 2, 0}
	if s.shadow {
		surface.RenderShadow(nil, center.Add(mgl32.Vec3{10, -10, 0}), s.angle, true)
	}
	surface.Render(nil, center, s.angle, true)
	gl.Finish()

	img := image.NewRGBA(image.Rect(0, 0, shotSize, shotSize))
	gl.ReadPixels(0, 0, shotSize, shotSize, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	// GL rows start at the bottom.
	img = texture.FlipVertical(img)

	f, err := os.Create(filepath.Join(outDir, s.name+".jpg"))
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

func buildScreenshots() []screenshot {
	return []screenshot{
		{name: "flat", texture: true},
		{name: "untextured", color: minicore.Color{R: 0.8, G: 0.2, B: 0.2, A: 1}},
		{name: "rotated", texture: true, angle: 30},
		{name: "scaled", texture: true, scale: 1.5},
		{name: "tinted", texture: true, color: minicore.Color{R: 0.4, G: 0.7, B: 1, A: 1}},
		{name: "shadow", texture: true, shadow: true, angle: 15},
		{name: "ramp", texture: true, opts: []minicore.SurfaceOption{
			minicore.WithCornerZ(0, 64, 64, 0),
		}},
		{name: "mirrored", texture: true, opts: []minicore.SurfaceOption{
			minicore.WithTexCoords([4]minicore.TexCoord{{U: 1, V: 0}, {U: 0, V: 1}, {U: 1, V: 1}, {U: 0, V: 0}}),
		}},
		{name: "tiled", texture: true, opts: []minicore.SurfaceOption{
			minicore.WithTexCoords([4]minicore.TexCoord{{U: 0, V: 0}, {U: 0.5, V: 0.5}, {U: 0, V: 0.5}, {U: 0.5, V: 0}}),
		}},
	}
}

// checkerboard returns a size x size image of n x n alternating cells with a
// red marker in the bottom-left cell to show orientation.
func checkerboard(size, n int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := size / n
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := color.RGBA{0x30, 0x30, 0x30, 0xff}
			if (x/cell+y/cell)%2 == 0 {
				c = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
			}
			// Image rows grow downwards; the marker sits in the last row of cells.
			if x < cell && y >= size-cell {
				c = color.RGBA{0xd0, 0x20, 0x20, 0xff}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
