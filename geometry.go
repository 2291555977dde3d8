package minicore

// VertexCount is the number of vertices of a surface: two triangles.
const VertexCount = 6

// Corner indices of a quad.
//
// Z values are given per corner as [BottomLeft, TopLeft, TopRight, BottomRight].
// Texture coordinates are given as [BottomLeft, TopRight, TopLeft, BottomRight].
const (
	cornerBL = 0
	cornerTL = 1
	cornerTR = 2
	cornerBR = 3
)

// texCoordRemap maps the four texture-coordinate corners
// (BL, TR, TL, BR) onto the triangle list BL-TR-TL, BL-BR-TR.
var texCoordRemap = [VertexCount]int{0, 1, 2, 0, 3, 1}

// DefaultTexCoords are the corner texture coordinates of an unmapped surface,
// in BL, TR, TL, BR order.
var DefaultTexCoords = [4]TexCoord{{0, 0}, {1, 1}, {0, 1}, {1, 0}}

// Quad is the triangle-list geometry of one surface.
type Quad struct {
	Vertices  [VertexCount]Vertex
	Normals   [VertexCount]Vertex
	TexCoords [VertexCount]TexCoord
	Colors    [VertexCount]Color
	MinZ      float32
	MaxZ      float32
}

// BuildQuad builds a w x h quad centered on the origin. z holds the corner Z
// values in BL, TL, TR, BR order; non-equal values produce a tilted surface.
// Each triangle gets its own flat normal.
func BuildQuad(w, h float32, z [4]float32) Quad {
	w2, h2 := w/2, h/2

	bl := Vertex{-w2, -h2, z[cornerBL]}
	tl := Vertex{-w2, h2, z[cornerTL]}
	tr := Vertex{w2, h2, z[cornerTR]}
	br := Vertex{w2, -h2, z[cornerBR]}

	q := Quad{
		Vertices: [VertexCount]Vertex{bl, tr, tl, bl, br, tr},
		MinZ:     min4(z[0], z[1], z[2], z[3]),
		MaxZ:     max4(z[0], z[1], z[2], z[3]),
	}

	for t := 0; t < VertexCount; t += 3 {
		n := faceNormal(q.Vertices[t], q.Vertices[t+1], q.Vertices[t+2])
		q.Normals[t], q.Normals[t+1], q.Normals[t+2] = n, n, n
	}

	q.TexCoords = RemapTexCoords(DefaultTexCoords)
	for i := range q.Colors {
		q.Colors[i] = White
	}
	return q
}

// RemapTexCoords expands four corner texture coordinates (BL, TR, TL, BR)
// to the six-entry triangle-list order used by the vertex buffer.
func RemapTexCoords(corners [4]TexCoord) [VertexCount]TexCoord {
	var out [VertexCount]TexCoord
	for i, c := range texCoordRemap {
		out[i] = corners[c]
	}
	return out
}

// faceNormal returns the unit normal of triangle v0, v1, v2 as
// (v1-v0) x (v2-v0). Degenerate triangles face +Z.
func faceNormal(v0, v1, v2 Vertex) Vertex {
	p0 := v0.Vec3()
	n := v1.Vec3().Sub(p0).Cross(v2.Vec3().Sub(p0))
	if n.Len() == 0 {
		return Vertex{0, 0, 1}
	}
	return VertexOf(n.Normalize())
}
