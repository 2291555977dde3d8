package softgpu

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/minicore"
)

// Uniforms is the per-draw state of a surface program.
type Uniforms struct {
	Scale     mgl32.Vec3
	Color     minicore.Color
	Angle     float32
	Position  mgl32.Vec3
	Transform mgl32.Mat4
}

// DefaultUniforms returns unit scale, white, identity transform.
func DefaultUniforms() Uniforms {
	return Uniforms{
		Scale:     mgl32.Vec3{1, 1, 1},
		Color:     minicore.White,
		Transform: mgl32.Ident4(),
	}
}

// Apply runs the surface vertex transform on a model-space position:
// scale, then rotate about Z, then translate.
func (u Uniforms) Apply(p mgl32.Vec3) mgl32.Vec3 {
	scaled := mgl32.Vec4{p[0] * u.Scale[0], p[1] * u.Scale[1], p[2] * u.Scale[2], 1}
	return u.Transform.Mul4x1(scaled).Vec3()
}

// Program records uniform updates and binds itself to a Device.
type Program struct {
	dev      *Device
	name     string
	uniforms Uniforms

	// Binds and Releases count Bind/Release calls.
	Binds    int
	Releases int
	// ColorSets counts SetColor calls.
	ColorSets int
}

var _ minicore.ShaderProgram = (*Program)(nil)

// NewProgram creates a program that becomes dev's current program on Bind.
func NewProgram(dev *Device, name string) *Program {
	return &Program{dev: dev, name: name, uniforms: DefaultUniforms()}
}

// Name returns the name given at creation.
func (p *Program) Name() string { return p.name }

// Uniforms returns a copy of the current uniform state.
func (p *Program) Uniforms() Uniforms { return p.uniforms }

func (p *Program) Bind() {
	p.Binds++
	p.dev.program = p
}

func (p *Program) Release() {
	p.Releases++
	if p.dev.program == p {
		p.dev.program = nil
	}
}

func (p *Program) SetScale(x, y, z float32) {
	p.uniforms.Scale = mgl32.Vec3{x, y, z}
}

func (p *Program) SetColor(c minicore.Color) {
	p.ColorSets++
	p.uniforms.Color = c
}

func (p *Program) SetTransform(angle float32, pos mgl32.Vec3) {
	p.uniforms.Angle = angle
	p.uniforms.Position = pos
	p.uniforms.Transform = minicore.TransformMatrix(angle, pos)
}
