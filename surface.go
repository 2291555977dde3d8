package minicore

import "github.com/go-gl/mathgl/mgl32"

// Surface is a renderable textured quad. Despite being a 2D object, its
// corners can be given Z values to create tilted surfaces.
//
// A Surface is built once per visual asset; position and angle are passed
// at render time.
type Surface struct {
	handle string
	w, w2  float32
	h, h2  float32
	quad   Quad
	scale  mgl32.Vec3
	color  Color
	buf    *BufferObject
}

var _ Renderable = (*Surface)(nil)

// SurfaceOption configures a Surface at construction.
type SurfaceOption func(*surfaceConfig)

type surfaceConfig struct {
	z         [4]float32
	texCoords *[4]TexCoord
}

// WithZ gives every corner the same Z.
func WithZ(z float32) SurfaceOption {
	return func(c *surfaceConfig) { c.z = [4]float32{z, z, z, z} }
}

// WithCornerZ sets per-corner Z for the bottom-left, top-left, top-right and
// bottom-right corners.
func WithCornerZ(z0, z1, z2, z3 float32) SurfaceOption {
	return func(c *surfaceConfig) { c.z = [4]float32{z0, z1, z2, z3} }
}

// WithTexCoords maps the surface to a sub-rectangle of its texture. Corners are
// given in bottom-left, top-right, top-left, bottom-right order.
func WithTexCoords(corners [4]TexCoord) SurfaceOption {
	return func(c *surfaceConfig) { c.texCoords = &corners }
}

// NewSurface builds the surface geometry and uploads it to a static buffer.
// width and height are the size of the surface when rendered 1:1.
func NewSurface(dev Device, handle string, material Material, width, height float32, opts ...SurfaceOption) *Surface {
	var cfg surfaceConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Surface{
		handle: handle,
		w:      width,
		w2:     width / 2,
		h:      height,
		h2:     height / 2,
		quad:   BuildQuad(width, height, cfg.z),
		scale:  mgl32.Vec3{1, 1, 1},
		color:  White,
		buf:    NewBufferObject(dev, SurfaceLayout(), material),
	}
	if cfg.texCoords != nil {
		s.quad.TexCoords = RemapTexCoords(*cfg.texCoords)
	}

	s.initBuffer()

	logger.Debug("surface created",
		"handle", handle,
		"width", width,
		"height", height,
		"minZ", s.quad.MinZ,
		"maxZ", s.quad.MaxZ)

	return s
}

func (s *Surface) initBuffer() {
	b := s.buf
	b.Init(StaticDraw)
	b.Append(RegionPosition, asBytes(s.quad.Vertices[:]))
	b.Append(RegionNormal, asBytes(s.quad.Normals[:]))
	b.Append(RegionTexCoord, asBytes(s.quad.TexCoords[:]))
	b.Append(RegionColor, asBytes(s.quad.Colors[:]))
	b.Finish()
}

// Handle returns the name of the surface.
func (s *Surface) Handle() string { return s.handle }

// Width returns the unscaled width.
func (s *Surface) Width() float32 { return s.w }

// Height returns the unscaled height.
func (s *Surface) Height() float32 { return s.h }

// MinZ returns the smallest corner Z.
func (s *Surface) MinZ() float32 { return s.quad.MinZ }

// MaxZ returns the largest corner Z.
func (s *Surface) MaxZ() float32 { return s.quad.MaxZ }

// Scale returns the current scaling factors.
func (s *Surface) Scale() mgl32.Vec3 { return s.scale }

// Color returns the color the surface is modulated with.
func (s *Surface) Color() Color { return s.color }

// Material returns the surface material.
func (s *Surface) Material() Material { return s.buf.Material() }

// Vertices returns the triangle-list positions.
func (s *Surface) Vertices() [VertexCount]Vertex { return s.quad.Vertices }

// Normals returns the per-vertex normals (flat per triangle).
func (s *Surface) Normals() [VertexCount]Vertex { return s.quad.Normals }

// TexCoords returns the triangle-list texture coordinates as last uploaded.
func (s *Surface) TexCoords() [VertexCount]TexCoord { return s.quad.TexCoords }

// SetScale sets the scaling factors.
func (s *Surface) SetScale(scale mgl32.Vec3) {
	s.scale = scale
}

// SetSize scales the surface to w x h. The Z scale is left unchanged.
func (s *Surface) SetSize(w, h float32) {
	s.scale[0] = w / s.w
	s.scale[1] = h / s.h
}

// SetColor sets the color the surface is modulated with.
func (s *Surface) SetColor(c Color) {
	s.color = c
}

// UpdateTexCoords replaces the texture coordinates in place. Corners are given
// in bottom-left, top-right, top-left, bottom-right order.
//
// Must not be called between Bind and Release of the same surface.
func (s *Surface) UpdateTexCoords(corners [4]TexCoord) {
	s.quad.TexCoords = RemapTexCoords(corners)
	s.buf.Update(RegionTexCoord, asBytes(s.quad.TexCoords[:]))
	logger.Debug("surface texcoords updated", "handle", s.handle)
}

// Bind binds the surface for drawing with the material program.
func (s *Surface) Bind() { s.buf.Bind() }

// Release undoes Bind.
func (s *Surface) Release() { s.buf.Release() }

// BindShadow binds the surface for drawing with the shadow program.
func (s *Surface) BindShadow() { s.buf.BindShadow() }

// ReleaseShadow undoes BindShadow.
func (s *Surface) ReleaseShadow() { s.buf.ReleaseShadow() }

// RenderRaw draws the vertex buffer only. The surface must already be bound.
func (s *Surface) RenderRaw() {
	s.buf.Draw(Triangles, VertexCount)
}

// Render draws the surface at pos rotated by angle degrees. pos is mapped
// through camera when camera is non-nil; Z passes through unchanged.
// With autoBind false the caller is responsible for Bind/Release.
// A material without a Program draws nothing.
func (s *Surface) Render(camera Camera, pos mgl32.Vec3, angle float32, autoBind bool) {
	p := s.Material().Program
	if p == nil {
		logger.Debug("surface has no program", "handle", s.handle)
		return
	}

	x, y := mapPos(camera, pos)

	if autoBind {
		s.Bind()
	}

	p.SetScale(s.scale[0], s.scale[1], s.scale[2])
	p.SetColor(s.color)
	p.SetTransform(angle, mgl32.Vec3{x, y, pos[2]})

	s.RenderRaw()

	if autoBind {
		s.Release()
	}
}

// RenderShadow draws the surface silhouette with the material's shadow
// program. The color uniform is not set. Materials without a shadow program
// draw nothing.
func (s *Surface) RenderShadow(camera Camera, pos mgl32.Vec3, angle float32, autoBind bool) {
	p := s.Material().ShadowProgram
	if p == nil {
		logger.Debug("surface has no shadow program", "handle", s.handle)
		return
	}

	x, y := mapPos(camera, pos)

	if autoBind {
		s.BindShadow()
	}

	p.SetScale(s.scale[0], s.scale[1], s.scale[2])
	p.SetTransform(angle, mgl32.Vec3{x, y, pos[2]})

	s.RenderRaw()

	if autoBind {
		s.ReleaseShadow()
	}
}

// Delete releases the surface's GPU objects.
func (s *Surface) Delete() {
	s.buf.Delete()
}

func mapPos(camera Camera, pos mgl32.Vec3) (x, y float32) {
	x, y = pos[0], pos[1]
	if camera != nil {
		x, y = camera.MapToCamera(x, y)
	}
	return x, y
}
