package softgpu

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/minicore"
)

func floats(vs ...float32) []byte {
	out := make([]byte, 4*len(vs))
	for i, v := range vs {
		binary.NativeEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}
	return out
}

func TestBufferSubDataBounds(t *testing.T) {
	d := New()
	vbo := d.GenBuffer()

	// No buffer bound.
	d.BufferData(16, minicore.StaticDraw)
	if d.Errors != 1 {
		t.Fatalf("expected 1 error with no buffer bound, got %d", d.Errors)
	}

	d.BindArrayBuffer(vbo)
	d.BufferData(16, minicore.StaticDraw)
	if got := len(d.Buffer(vbo).Data); got != 16 {
		t.Fatalf("expected 16 bytes, got %d", got)
	}

	d.BufferSubData(8, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	if d.Errors != 1 {
		t.Fatalf("in-range write reported an error")
	}
	d.BufferSubData(12, []byte{1, 2, 3, 4, 5})
	if d.Errors != 2 {
		t.Fatalf("out-of-range write was not rejected")
	}
	if b := d.Buffer(vbo).Data; b[12] != 5 || b[15] != 8 {
		t.Errorf("rejected write modified the buffer: %v", b)
	}
}

func TestAttribFetch(t *testing.T) {
	d := New()
	vao := d.GenVertexArray()
	vbo := d.GenBuffer()
	d.BindVertexArray(vao)
	d.BindArrayBuffer(vbo)

	// Two vec3 followed by two vec2.
	d.BufferData(40, minicore.StaticDraw)
	d.BufferSubData(0, floats(1, 2, 3, 4, 5, 6))
	d.BufferSubData(24, floats(0.25, 0.5, 0.75, 1))
	d.VertexAttribPointer(0, 3, 0)
	d.EnableVertexAttribArray(0)
	d.VertexAttribPointer(2, 2, 24)
	d.EnableVertexAttribArray(2)

	tests := []struct {
		slot  uint32
		index int
		want  mgl32.Vec4
	}{
		{0, 0, mgl32.Vec4{1, 2, 3, 1}},
		{0, 1, mgl32.Vec4{4, 5, 6, 1}},
		{2, 0, mgl32.Vec4{0.25, 0.5, 0, 1}},
		{2, 1, mgl32.Vec4{0.75, 1, 0, 1}},
		{1, 0, mgl32.Vec4{0, 0, 0, 1}}, // never set
	}
	for _, tt := range tests {
		if got := d.Attrib(tt.slot, tt.index); got != tt.want {
			t.Errorf("Attrib(%d, %d) = %v, want %v", tt.slot, tt.index, got, tt.want)
		}
	}

	// Attribute state belongs to the vertex array.
	d.BindVertexArray(0)
	if got := d.Attrib(0, 0); got != (mgl32.Vec4{0, 0, 0, 1}) {
		t.Errorf("Attrib with no vertex array = %v", got)
	}
}

func TestDrawRecordsState(t *testing.T) {
	d := New()
	p := NewProgram(d, "surface")
	vao := d.GenVertexArray()

	d.BindVertexArray(vao)
	d.BindTexture(0, 7)
	p.Bind()
	p.SetColor(minicore.Color{R: 1, A: 0.5})
	d.DrawArrays(minicore.Triangles, 0, 6)
	p.Release()

	if len(d.Draws) != 1 {
		t.Fatalf("expected 1 draw, got %d", len(d.Draws))
	}
	call := d.Draws[0]
	if call.VertexArray != vao || call.Texture != 7 || call.Program != p {
		t.Errorf("unexpected draw state: %+v", call)
	}
	if call.Uniforms.Color.A != 0.5 {
		t.Errorf("uniforms not captured: %+v", call.Uniforms)
	}
	if d.Program() != nil {
		t.Error("program still current after Release")
	}
}

func TestUniformsApply(t *testing.T) {
	u := DefaultUniforms()
	u.Scale = mgl32.Vec3{2, 3, 1}
	u.Transform = minicore.TransformMatrix(90, mgl32.Vec3{10, 20, 5})

	// (1,1,0) scaled to (2,3,0), rotated 90 degrees to (-3,2,0), moved by (10,20,5).
	got := u.Apply(mgl32.Vec3{1, 1, 0})
	want := mgl32.Vec3{7, 22, 5}
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("Apply = %v, want %v", got, want)
	}
}

func TestDeleteUnbinds(t *testing.T) {
	d := New()
	vao := d.GenVertexArray()
	vbo := d.GenBuffer()
	d.BindVertexArray(vao)
	d.BindArrayBuffer(vbo)

	d.DeleteBuffer(vbo)
	d.DeleteVertexArray(vao)

	if d.BoundVertexArray() != 0 || d.BoundArrayBuffer() != 0 {
		t.Error("deleted objects are still bound")
	}
	if a, b := d.LiveObjects(); a != 0 || b != 0 {
		t.Errorf("LiveObjects = %d, %d", a, b)
	}
	d.DeleteBuffer(vbo)
	if d.Errors != 1 {
		t.Errorf("double delete not reported, errors = %d", d.Errors)
	}
}
