package minicore

import "unsafe"

// Attribute locations shared by every surface shader.
const (
	SlotPosition uint32 = 0
	SlotNormal   uint32 = 1
	SlotTexCoord uint32 = 2
	SlotColor    uint32 = 3
)

// Region names one attribute block of a non-interleaved vertex buffer.
type Region int

const (
	RegionPosition Region = iota
	RegionNormal
	RegionTexCoord
	RegionColor
	numRegions
)

func (r Region) String() string {
	switch r {
	case RegionPosition:
		return "position"
	case RegionNormal:
		return "normal"
	case RegionTexCoord:
		return "texcoord"
	case RegionColor:
		return "color"
	}
	return "unknown"
}

// Attribute describes where a region lives in the buffer.
type Attribute struct {
	Slot       uint32 // Shader attribute location
	Components int32  // Float components per vertex
	Offset     int    // Byte offset from the start of the buffer
	Size       int    // Byte size of the region
}

// Layout is the named-offset table of a vertex buffer. Regions are laid out
// back to back in Region order: positions, normals, texture coordinates,
// colors. Both the initial upload and later partial updates read their
// offsets from the same table.
type Layout struct {
	vertices int
	attrs    [numRegions]Attribute
	size     int
}

// regionFormat lists slot and element size per region, in buffer order.
var regionFormat = [numRegions]struct {
	slot       uint32
	components int32
	elemSize   int
}{
	RegionPosition: {SlotPosition, 3, int(unsafe.Sizeof(Vertex{}))},
	RegionNormal:   {SlotNormal, 3, int(unsafe.Sizeof(Vertex{}))},
	RegionTexCoord: {SlotTexCoord, 2, int(unsafe.Sizeof(TexCoord{}))},
	RegionColor:    {SlotColor, 4, int(unsafe.Sizeof(Color{}))},
}

// NewLayout builds the table for a buffer holding the given number of vertices.
func NewLayout(vertices int) Layout {
	l := Layout{vertices: vertices}
	offset := 0
	for r, f := range regionFormat {
		size := f.elemSize * vertices
		l.attrs[r] = Attribute{
			Slot:       f.slot,
			Components: f.components,
			Offset:     offset,
			Size:       size,
		}
		offset += size
	}
	l.size = offset
	return l
}

// SurfaceLayout returns the layout of a single-quad surface buffer.
func SurfaceLayout() Layout {
	return NewLayout(VertexCount)
}

// Attribute returns the table entry for r.
func (l Layout) Attribute(r Region) Attribute {
	return l.attrs[r]
}

// Size returns the total byte size of the buffer.
func (l Layout) Size() int {
	return l.size
}

// Vertices returns the number of vertices the layout holds.
func (l Layout) Vertices() int {
	return l.vertices
}

// asBytes reinterprets a slice of plain float structs as raw bytes
// for upload. The result aliases s.
func asBytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(zero)))
}
