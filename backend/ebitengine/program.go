package ebitengine

import (
	"github.com/go-theft-auto/minicore"
	"github.com/go-theft-auto/minicore/internal/softgpu"
)

// Program is a surface or shadow program for Device.
type Program struct {
	*softgpu.Program
	dev    *Device
	shadow bool
}

var _ minicore.ShaderProgram = (*Program)(nil)

// NewSurfaceProgram creates the program for normal rendering.
func NewSurfaceProgram(dev *Device) *Program {
	return &Program{Program: softgpu.NewProgram(dev.Device, "surface"), dev: dev}
}

// NewShadowProgram creates the program for shadow silhouettes.
func NewShadowProgram(dev *Device) *Program {
	return &Program{Program: softgpu.NewProgram(dev.Device, "shadow"), dev: dev, shadow: true}
}

func (p *Program) Bind() {
	p.Program.Bind()
	p.dev.shadow = p.shadow
}

func (p *Program) Release() {
	p.Program.Release()
	p.dev.shadow = false
}
