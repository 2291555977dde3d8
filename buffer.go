package minicore

// BufferObject owns one vertex array and one vertex buffer laid out by a
// Layout, plus the material used to draw it.
//
// Upload sequence: Init, one Append per region, Finish. Sizes are not
// validated; data for a region must be exactly Layout.Attribute(r).Size bytes.
type BufferObject struct {
	dev      Device
	layout   Layout
	material Material
	vao, vbo uint32
}

// NewBufferObject creates an unallocated buffer object.
func NewBufferObject(dev Device, layout Layout, material Material) *BufferObject {
	return &BufferObject{dev: dev, layout: layout, material: material}
}

// Init allocates the GPU objects and sizes the buffer for the whole layout.
// The vertex array and buffer stay bound until Finish.
func (b *BufferObject) Init(usage Usage) {
	if b.vao == 0 {
		b.vao = b.dev.GenVertexArray()
	}
	if b.vbo == 0 {
		b.vbo = b.dev.GenBuffer()
	}
	b.dev.BindVertexArray(b.vao)
	b.dev.BindArrayBuffer(b.vbo)
	b.dev.BufferData(b.layout.Size(), usage)
}

// Append uploads one region at its table offset and points the region's
// attribute slot at it. Regions may be appended in any order.
func (b *BufferObject) Append(r Region, data []byte) {
	a := b.layout.Attribute(r)
	b.dev.BufferSubData(a.Offset, data)
	b.dev.VertexAttribPointer(a.Slot, a.Components, a.Offset)
	b.dev.EnableVertexAttribArray(a.Slot)
}

// Finish completes the upload and unbinds.
func (b *BufferObject) Finish() {
	b.dev.BindVertexArray(0)
	b.dev.BindArrayBuffer(0)
}

// Update overwrites one region in place without reallocating.
func (b *BufferObject) Update(r Region, data []byte) {
	b.dev.BindArrayBuffer(b.vbo)
	b.dev.BufferSubData(b.layout.Attribute(r).Offset, data)
	b.dev.BindArrayBuffer(0)
}

// Bind makes the vertex array, the material program and texture current.
func (b *BufferObject) Bind() {
	b.bind(b.material.Program)
}

// Release undoes Bind.
func (b *BufferObject) Release() {
	b.release(b.material.Program)
}

// BindShadow is Bind with the material's shadow program.
func (b *BufferObject) BindShadow() {
	b.bind(b.material.ShadowProgram)
}

// ReleaseShadow undoes BindShadow.
func (b *BufferObject) ReleaseShadow() {
	b.release(b.material.ShadowProgram)
}

func (b *BufferObject) bind(p ShaderProgram) {
	b.dev.BindVertexArray(b.vao)
	if p != nil {
		p.Bind()
	}
	b.dev.BindTexture(0, b.material.Texture)
}

func (b *BufferObject) release(p ShaderProgram) {
	b.dev.BindVertexArray(0)
	if p != nil {
		p.Release()
	}
}

// Draw issues a draw of count vertices from the start of the buffer.
func (b *BufferObject) Draw(mode Primitive, count int32) {
	b.dev.DrawArrays(mode, 0, count)
}

// Material returns the material the buffer draws with.
func (b *BufferObject) Material() Material {
	return b.material
}

// Delete releases the GPU objects. The buffer object can be re-initialized.
func (b *BufferObject) Delete() {
	if b.vbo != 0 {
		b.dev.DeleteBuffer(b.vbo)
		b.vbo = 0
	}
	if b.vao != 0 {
		b.dev.DeleteVertexArray(b.vao)
		b.vao = 0
	}
}
