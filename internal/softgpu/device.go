// Package softgpu is an in-memory minicore.Device. It keeps buffer contents
// and vertex-array state on the CPU, records every draw call, and can fetch
// vertex attributes back the way a vertex shader would see them.
package softgpu

import (
	"encoding/binary"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/minicore"
)

// Buffer is the CPU-side storage of one buffer object.
type Buffer struct {
	Data  []byte
	Usage minicore.Usage
}

// attrib mirrors one glVertexAttribPointer record.
type attrib struct {
	buffer     uint32
	components int32
	offset     int
	enabled    bool
}

type vertexArray struct {
	attribs map[uint32]*attrib
}

// DrawCall is a recorded DrawArrays call with the state it ran under.
type DrawCall struct {
	Mode        minicore.Primitive
	First       int32
	Count       int32
	VertexArray uint32
	Texture     uint32
	Program     *Program
	Uniforms    Uniforms
}

// Device implements minicore.Device in memory. The zero value is not usable;
// call New.
type Device struct {
	nextID   uint32
	buffers  map[uint32]*Buffer
	arrays   map[uint32]*vertexArray
	textures map[uint32]uint32 // unit -> texture

	vao         uint32
	arrayBuffer uint32
	program     *Program

	// Draws holds every draw call in issue order.
	Draws []DrawCall
	// Errors counts calls that GL would reject (no buffer bound,
	// out-of-range writes, unknown names).
	Errors int
}

var _ minicore.Device = (*Device)(nil)

// New creates an empty device.
func New() *Device {
	return &Device{
		buffers:  make(map[uint32]*Buffer),
		arrays:   make(map[uint32]*vertexArray),
		textures: make(map[uint32]uint32),
	}
}

func (d *Device) genID() uint32 {
	d.nextID++
	return d.nextID
}

func (d *Device) GenVertexArray() uint32 {
	id := d.genID()
	d.arrays[id] = &vertexArray{attribs: make(map[uint32]*attrib)}
	return id
}

func (d *Device) DeleteVertexArray(vao uint32) {
	if _, ok := d.arrays[vao]; !ok {
		d.Errors++
		return
	}
	delete(d.arrays, vao)
	if d.vao == vao {
		d.vao = 0
	}
}

func (d *Device) BindVertexArray(vao uint32) {
	if vao != 0 && d.arrays[vao] == nil {
		d.Errors++
		return
	}
	d.vao = vao
}

func (d *Device) GenBuffer() uint32 {
	id := d.genID()
	d.buffers[id] = &Buffer{}
	return id
}

func (d *Device) DeleteBuffer(vbo uint32) {
	if _, ok := d.buffers[vbo]; !ok {
		d.Errors++
		return
	}
	delete(d.buffers, vbo)
	if d.arrayBuffer == vbo {
		d.arrayBuffer = 0
	}
}

func (d *Device) BindArrayBuffer(vbo uint32) {
	if vbo != 0 && d.buffers[vbo] == nil {
		d.Errors++
		return
	}
	d.arrayBuffer = vbo
}

func (d *Device) BufferData(size int, usage minicore.Usage) {
	b := d.buffers[d.arrayBuffer]
	if b == nil || size < 0 {
		d.Errors++
		return
	}
	b.Data = make([]byte, size)
	b.Usage = usage
}

func (d *Device) BufferSubData(offset int, data []byte) {
	b := d.buffers[d.arrayBuffer]
	if b == nil || offset < 0 || offset+len(data) > len(b.Data) {
		d.Errors++
		return
	}
	copy(b.Data[offset:], data)
}

func (d *Device) VertexAttribPointer(slot uint32, components int32, offset int) {
	va := d.arrays[d.vao]
	if va == nil || d.arrayBuffer == 0 {
		d.Errors++
		return
	}
	a := va.attribs[slot]
	if a == nil {
		a = &attrib{}
		va.attribs[slot] = a
	}
	a.buffer = d.arrayBuffer
	a.components = components
	a.offset = offset
}

func (d *Device) EnableVertexAttribArray(slot uint32) {
	va := d.arrays[d.vao]
	if va == nil || va.attribs[slot] == nil {
		d.Errors++
		return
	}
	va.attribs[slot].enabled = true
}

func (d *Device) BindTexture(unit, texture uint32) {
	d.textures[unit] = texture
}

func (d *Device) DrawArrays(mode minicore.Primitive, first, count int32) {
	call := DrawCall{
		Mode:        mode,
		First:       first,
		Count:       count,
		VertexArray: d.vao,
		Texture:     d.textures[0],
		Program:     d.program,
	}
	if d.program != nil {
		call.Uniforms = d.program.Uniforms()
	}
	d.Draws = append(d.Draws, call)
}

// Buffer returns the storage of a buffer object, or nil.
func (d *Device) Buffer(vbo uint32) *Buffer {
	return d.buffers[vbo]
}

// BufferIDs returns the names of all live buffers in ascending order.
func (d *Device) BufferIDs() []uint32 {
	ids := make([]uint32, 0, len(d.buffers))
	for id := range d.buffers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// BoundVertexArray returns the current vertex array.
func (d *Device) BoundVertexArray() uint32 { return d.vao }

// BoundArrayBuffer returns the current array buffer.
func (d *Device) BoundArrayBuffer() uint32 { return d.arrayBuffer }

// BoundTexture returns the texture bound to unit.
func (d *Device) BoundTexture(unit uint32) uint32 { return d.textures[unit] }

// Program returns the current program, or nil.
func (d *Device) Program() *Program { return d.program }

// LiveObjects returns the number of vertex arrays and buffers not yet deleted.
func (d *Device) LiveObjects() (arrays, buffers int) {
	return len(d.arrays), len(d.buffers)
}

// Attrib fetches attribute slot of vertex index from the bound vertex array.
// Missing components read as 0, except w which reads as 1, like GL does.
// Disabled or unset attributes return (0, 0, 0, 1).
func (d *Device) Attrib(slot uint32, index int) mgl32.Vec4 {
	v := mgl32.Vec4{0, 0, 0, 1}
	va := d.arrays[d.vao]
	if va == nil {
		return v
	}
	a := va.attribs[slot]
	if a == nil || !a.enabled {
		return v
	}
	b := d.buffers[a.buffer]
	if b == nil {
		return v
	}
	base := a.offset + index*int(a.components)*4
	for c := 0; c < int(a.components) && c < 4; c++ {
		at := base + c*4
		if at+4 > len(b.Data) {
			break
		}
		v[c] = math.Float32frombits(binary.NativeEndian.Uint32(b.Data[at:]))
	}
	return v
}

// Reset clears the draw log and error count.
func (d *Device) Reset() {
	d.Draws = d.Draws[:0]
	d.Errors = 0
}
