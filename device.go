package minicore

import "github.com/go-gl/mathgl/mgl32"

// Usage is a buffer usage hint.
type Usage int

const (
	StaticDraw  Usage = iota // Uploaded once, drawn many times
	DynamicDraw              // Modified repeatedly, drawn many times
	StreamDraw               // Modified once per draw
)

// Primitive is a draw topology.
type Primitive int

const (
	Triangles Primitive = iota
	TriangleStrip
	Lines
)

// Device is the subset of a GPU API the surface subsystem issues calls to.
// All calls must be made from the goroutine that owns the GPU context.
//
// Buffer calls operate on the buffer bound with BindArrayBuffer.
// VertexAttribPointer records the currently bound buffer in the currently
// bound vertex array, like glVertexAttribPointer does.
type Device interface {
	GenVertexArray() uint32
	DeleteVertexArray(vao uint32)
	BindVertexArray(vao uint32)

	GenBuffer() uint32
	DeleteBuffer(vbo uint32)
	BindArrayBuffer(vbo uint32)
	BufferData(size int, usage Usage)
	BufferSubData(offset int, data []byte)

	// VertexAttribPointer describes a tightly packed float attribute
	// of the given component count starting at offset.
	VertexAttribPointer(slot uint32, components int32, offset int)
	EnableVertexAttribArray(slot uint32)

	// BindTexture binds a 2D texture to a texture unit. 0 unbinds.
	BindTexture(unit, texture uint32)

	DrawArrays(mode Primitive, first, count int32)
}

// ShaderProgram receives per-draw uniforms.
// Bind makes the program current; the setters apply to the program
// and take effect on the next draw.
type ShaderProgram interface {
	Bind()
	Release()
	SetScale(x, y, z float32)
	SetColor(c Color)
	// SetTransform sets rotation about Z (degrees) followed by
	// translation to pos.
	SetTransform(angle float32, pos mgl32.Vec3)
}

// Material pairs a texture with the shader programs used to draw it.
// ShadowProgram is optional.
type Material struct {
	Texture       uint32 // Texture handle (0 = untextured)
	Program       ShaderProgram
	ShadowProgram ShaderProgram
}

// Renderable is GPU geometry that can be bound and drawn.
// Draws issued by RenderRaw must happen inside a Bind/Release or
// BindShadow/ReleaseShadow scope.
type Renderable interface {
	Bind()
	Release()
	BindShadow()
	ReleaseShadow()
	RenderRaw()
}

// TransformMatrix returns the model matrix of a surface rotated by angle
// degrees about Z and then translated to pos.
func TransformMatrix(angle float32, pos mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(pos[0], pos[1], pos[2]).Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(angle)))
}
