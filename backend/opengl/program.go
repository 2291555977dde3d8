package opengl

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/minicore"
)

// Vertex shader shared by the surface and shadow programs.
// Attribute locations match minicore.Slot*.
const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec3 inVertex;
layout (location = 1) in vec3 inNormal;
layout (location = 2) in vec2 inTexCoord;
layout (location = 3) in vec4 inColor;

out vec2 TexCoord;
out vec4 Color;
out vec3 Normal;

uniform mat4 projection;
uniform mat4 model;
uniform vec3 scale;
uniform vec4 color;

void main() {
    gl_Position = projection * model * vec4(inVertex * scale, 1.0);
    TexCoord = inTexCoord;
    Color = inColor * color;
    Normal = mat3(model) * inNormal;
}
` + "\x00"

// Fragment shader for normal rendering: texture modulated by color with
// a fixed directional light on the flat normals.
const surfaceFragmentSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;
in vec3 Normal;

out vec4 FragColor;

uniform sampler2D tex0;

const vec3 lightDir = normalize(vec3(0.5, 0.5, 1.0));

void main() {
    float diffuse = 0.6 + 0.4 * max(dot(normalize(Normal), lightDir), 0.0);
    vec4 texColor = texture(tex0, TexCoord);
    FragColor = vec4(texColor.rgb * Color.rgb * diffuse, texColor.a * Color.a);
}
` + "\x00"

// Fragment shader for fake shadows: the texture's alpha as a dark silhouette.
const shadowFragmentSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;
in vec3 Normal;

out vec4 FragColor;

uniform sampler2D tex0;
uniform float shadowAlpha;

void main() {
    FragColor = vec4(0.0, 0.0, 0.0, texture(tex0, TexCoord).a * shadowAlpha);
}
` + "\x00"

// DefaultShadowAlpha is the opacity of shadows drawn by NewShadowProgram.
const DefaultShadowAlpha = 0.5

// Program is a linked surface shader program implementing
// minicore.ShaderProgram.
type Program struct {
	id             uint32
	projLoc        int32
	modelLoc       int32
	scaleLoc       int32
	colorLoc       int32
	texLoc         int32
	shadowAlphaLoc int32
}

var _ minicore.ShaderProgram = (*Program)(nil)

// NewSurfaceProgram creates the program used by Surface.Render for a
// viewport of width x height pixels.
func NewSurfaceProgram(width, height int) (*Program, error) {
	p, err := newProgram(vertexShaderSource, surfaceFragmentSource)
	if err != nil {
		return nil, fmt.Errorf("surface program: %w", err)
	}
	p.SetViewport(width, height)
	return p, nil
}

// NewShadowProgram creates the program used by Surface.RenderShadow.
func NewShadowProgram(width, height int) (*Program, error) {
	p, err := newProgram(vertexShaderSource, shadowFragmentSource)
	if err != nil {
		return nil, fmt.Errorf("shadow program: %w", err)
	}
	p.SetViewport(width, height)
	p.SetShadowAlpha(DefaultShadowAlpha)
	return p, nil
}

func newProgram(vertexSource, fragmentSource string) (*Program, error) {
	id, err := createShaderProgram(vertexSource, fragmentSource)
	if err != nil {
		return nil, err
	}
	p := &Program{
		id:             id,
		projLoc:        gl.GetUniformLocation(id, gl.Str("projection\x00")),
		modelLoc:       gl.GetUniformLocation(id, gl.Str("model\x00")),
		scaleLoc:       gl.GetUniformLocation(id, gl.Str("scale\x00")),
		colorLoc:       gl.GetUniformLocation(id, gl.Str("color\x00")),
		texLoc:         gl.GetUniformLocation(id, gl.Str("tex0\x00")),
		shadowAlphaLoc: gl.GetUniformLocation(id, gl.Str("shadowAlpha\x00")),
	}

	// Uniform defaults: unit scale, white, identity transform, sampler on unit 0.
	gl.UseProgram(id)
	gl.Uniform3f(p.scaleLoc, 1, 1, 1)
	gl.Uniform4f(p.colorLoc, 1, 1, 1, 1)
	model := mgl32.Ident4()
	gl.UniformMatrix4fv(p.modelLoc, 1, false, &model[0])
	gl.Uniform1i(p.texLoc, 0)
	gl.UseProgram(0)

	return p, nil
}

// SetViewport sets an orthographic projection with the origin at the
// bottom-left of a width x height viewport.
func (p *Program) SetViewport(width, height int) {
	proj := mgl32.Ortho(0, float32(width), 0, float32(height), -1000, 1000)
	gl.UseProgram(p.id)
	gl.UniformMatrix4fv(p.projLoc, 1, false, &proj[0])
}

// SetShadowAlpha sets shadow opacity. No-op on the surface program.
func (p *Program) SetShadowAlpha(a float32) {
	if p.shadowAlphaLoc < 0 {
		return
	}
	gl.UseProgram(p.id)
	gl.Uniform1f(p.shadowAlphaLoc, a)
}

func (p *Program) Bind() {
	gl.UseProgram(p.id)
}

func (p *Program) Release() {
	gl.UseProgram(0)
}

func (p *Program) SetScale(x, y, z float32) {
	gl.Uniform3f(p.scaleLoc, x, y, z)
}

func (p *Program) SetColor(c minicore.Color) {
	gl.Uniform4f(p.colorLoc, c.R, c.G, c.B, c.A)
}

func (p *Program) SetTransform(angle float32, pos mgl32.Vec3) {
	m := minicore.TransformMatrix(angle, pos)
	gl.UniformMatrix4fv(p.modelLoc, 1, false, &m[0])
}

// Delete releases the GL program.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader compilation failed: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader compilation failed: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	return program, nil
}

func compileShader(source string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, errors.New(string(log))
	}
	return shader, nil
}
