// Package ebitengine draws minicore surfaces with ebiten.
//
// Buffers live in CPU memory (see internal/softgpu); each DrawArrays call
// fetches the bound vertex array, applies the bound program's uniforms and
// submits the triangles with ebiten.Image.DrawTriangles. Call SetTarget from
// the game's Draw method before rendering surfaces.
package ebitengine

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/go-theft-auto/minicore"
	"github.com/go-theft-auto/minicore/internal/softgpu"
)

// DefaultShadowAlpha is the opacity of shadows.
const DefaultShadowAlpha = 0.5

// Device implements minicore.Device on top of ebiten.
type Device struct {
	*softgpu.Device

	target      *ebiten.Image
	textures    map[uint32]*ebiten.Image
	nextTexture uint32
	white       *ebiten.Image
	shadow      bool

	// ShadowAlpha is the opacity of shadow silhouettes.
	ShadowAlpha float32

	vertices []ebiten.Vertex
	indices  []uint16
}

var _ minicore.Device = (*Device)(nil)

// NewDevice creates a device with no render target.
func NewDevice() *Device {
	return &Device{
		Device:      softgpu.New(),
		textures:    make(map[uint32]*ebiten.Image),
		ShadowAlpha: DefaultShadowAlpha,
	}
}

// SetTarget sets the image subsequent draws render to. Y grows upwards in
// surface coordinates, so (0, 0) is the target's bottom-left corner.
// The draw log is cleared, so call it once per frame.
func (d *Device) SetTarget(img *ebiten.Image) {
	d.target = img
	d.Device.Reset()
}

// NewTexture registers img and returns its handle.
func (d *Device) NewTexture(img image.Image) uint32 {
	d.nextTexture++
	d.textures[d.nextTexture] = ebiten.NewImageFromImage(img)
	return d.nextTexture
}

// DeleteTexture releases a texture created by NewTexture.
func (d *Device) DeleteTexture(tex uint32) {
	if img, ok := d.textures[tex]; ok {
		img.Deallocate()
		delete(d.textures, tex)
	}
}

// DrawArrays records the draw and rasterizes it to the target.
// Only Triangles are rasterized.
func (d *Device) DrawArrays(mode minicore.Primitive, first, count int32) {
	d.Device.DrawArrays(mode, first, count)

	p := d.Device.Program()
	if d.target == nil || p == nil || mode != minicore.Triangles {
		return
	}

	src, textured := d.textures[d.BoundTexture(0)]
	if !textured {
		src = d.whiteImage()
	}
	sb := src.Bounds()
	view := screenSpace{
		srcW:    float32(sb.Dx()),
		srcH:    float32(sb.Dy()),
		targetH: float32(d.target.Bounds().Dy()),
	}

	d.buildVertices(p.Uniforms(), first, count, textured, view)

	d.target.DrawTriangles(d.vertices, d.indices, src, &ebiten.DrawTrianglesOptions{
		Filter: ebiten.FilterLinear,
	})
}

// buildVertices fills the vertex and index scratch slices from vertices
// [first, first+count) of the bound vertex array. Untextured draws sample the
// center of the white image.
func (d *Device) buildVertices(u softgpu.Uniforms, first, count int32, textured bool, view screenSpace) {
	d.vertices = d.vertices[:0]
	d.indices = d.indices[:0]
	for i := first; i < first+count; i++ {
		pos := d.Attrib(minicore.SlotPosition, int(i)).Vec3()
		tc := d.Attrib(minicore.SlotTexCoord, int(i))
		c := d.Attrib(minicore.SlotColor, int(i))

		col := minicore.Color{R: c[0], G: c[1], B: c[2], A: c[3]}
		if d.shadow {
			col = minicore.Color{A: c[3] * d.ShadowAlpha}
		} else {
			col = col.Mul(u.Color)
		}

		v := view.vertex(u.Apply(pos), tc, col)
		if !textured {
			v.SrcX, v.SrcY = 0.5, 0.5
		}
		d.vertices = append(d.vertices, v)
		d.indices = append(d.indices, uint16(len(d.vertices)-1))
	}
}

func (d *Device) whiteImage() *ebiten.Image {
	if d.white == nil {
		d.white = ebiten.NewImage(1, 1)
		d.white.Fill(color.White)
	}
	return d.white
}

// screenSpace converts transformed surface vertices to ebiten vertices.
type screenSpace struct {
	srcW, srcH float32
	targetH    float32
}

// vertex flips Y for the target and maps texture coordinates to source
// pixels; V = 1 is the top row of the source image.
func (s screenSpace) vertex(pos mgl32.Vec3, tc mgl32.Vec4, c minicore.Color) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   pos[0],
		DstY:   s.targetH - pos[1],
		SrcX:   tc[0] * s.srcW,
		SrcY:   (1 - tc[1]) * s.srcH,
		ColorR: c.R,
		ColorG: c.G,
		ColorB: c.B,
		ColorA: c.A,
	}
}
