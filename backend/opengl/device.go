// Package opengl provides an OpenGL 4.1 core backend for minicore surfaces.
//
// All functions must be called on the thread that owns the GL context,
// after gl.Init.
package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/minicore"
)

// Device implements minicore.Device with direct GL calls.
//
// Binding texture 0 binds a 1x1 white texture instead, so untextured
// materials sample white and the shaders need no texture switch.
type Device struct {
	white uint32
}

var _ minicore.Device = (*Device)(nil)

// NewDevice returns a GL device.
func NewDevice() *Device {
	return &Device{}
}

// Delete releases the device's own GL objects.
func (d *Device) Delete() {
	if d.white != 0 {
		gl.DeleteTextures(1, &d.white)
		d.white = 0
	}
}

func (d *Device) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (d *Device) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (d *Device) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (d *Device) GenBuffer() uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	return vbo
}

func (d *Device) DeleteBuffer(vbo uint32) {
	gl.DeleteBuffers(1, &vbo)
}

func (d *Device) BindArrayBuffer(vbo uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
}

func (d *Device) BufferData(size int, usage minicore.Usage) {
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, glUsage(usage))
}

func (d *Device) BufferSubData(offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, offset, len(data), gl.Ptr(data))
}

func (d *Device) VertexAttribPointer(slot uint32, components int32, offset int) {
	gl.VertexAttribPointerWithOffset(slot, components, gl.FLOAT, false, 0, uintptr(offset))
}

func (d *Device) EnableVertexAttribArray(slot uint32) {
	gl.EnableVertexAttribArray(slot)
}

func (d *Device) BindTexture(unit, texture uint32) {
	if texture == 0 {
		if d.white == 0 {
			d.white = newTexture(1, 1, []byte{255, 255, 255, 255})
		}
		texture = d.white
	}
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, texture)
}

func (d *Device) DrawArrays(mode minicore.Primitive, first, count int32) {
	gl.DrawArrays(glPrimitive(mode), first, count)
}

func glUsage(u minicore.Usage) uint32 {
	switch u {
	case minicore.DynamicDraw:
		return gl.DYNAMIC_DRAW
	case minicore.StreamDraw:
		return gl.STREAM_DRAW
	}
	return gl.STATIC_DRAW
}

func glPrimitive(p minicore.Primitive) uint32 {
	switch p {
	case minicore.TriangleStrip:
		return gl.TRIANGLE_STRIP
	case minicore.Lines:
		return gl.LINES
	}
	return gl.TRIANGLES
}
