package minicore

import "github.com/go-gl/mathgl/mgl32"

// Vertex is a 3D position (or normal) as uploaded to a vertex buffer.
// Memory layout matches a tightly packed vec3 attribute.
type Vertex struct {
	X, Y, Z float32
}

// Vec3 returns v as an mgl32 vector.
func (v Vertex) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// VertexOf converts an mgl32 vector to a Vertex.
func VertexOf(v mgl32.Vec3) Vertex {
	return Vertex{X: v[0], Y: v[1], Z: v[2]}
}

// TexCoord is a texture coordinate, conventionally in [0,1].
type TexCoord struct {
	U, V float32
}

// Color is a straight-alpha RGBA color with float components (0.0-1.0).
type Color struct {
	R, G, B, A float32
}

// White is the default surface and vertex color.
var White = Color{R: 1, G: 1, B: 1, A: 1}

// Vec4 returns c as an mgl32 vector.
func (c Color) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{c.R, c.G, c.B, c.A}
}

// Mul returns the component-wise product of two colors.
func (c Color) Mul(o Color) Color {
	return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B, A: c.A * o.A}
}

// Rect is an axis-aligned rectangle in world units.
// X, Y is the bottom-left corner (Y grows upwards).
type Rect struct {
	X, Y float32
	W, H float32
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// min4 and max4 return the extrema of four values.
func min4(a, b, c, d float32) float32 {
	return min(min(a, b), min(c, d))
}

func max4(a, b, c, d float32) float32 {
	return max(max(a, b), max(c, d))
}
