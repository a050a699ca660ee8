package draw

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// ShaderProgram is a linked vertex and fragment shader with the uniforms and
// attributes of a textured sprite:
//
//	attribute vec4 position;
//	attribute vec2 texCoord;
//	uniform mat4 projectionMatrix, viewMatrix, modelMatrix;
type ShaderProgram struct {
	id uint32

	projectionUniform int32
	viewUniform       int32
	modelUniform      int32

	positionAttribute uint32
	texCoordAttribute uint32
}

// LoadShaderProgram reads, compiles and links the two shader source files.
func LoadShaderProgram(vertexPath, fragmentPath string) (*ShaderProgram, error) {
	vertexSource, err := readShaderSource(vertexPath)
	if err != nil {
		return nil, err
	}
	fragmentSource, err := readShaderSource(fragmentPath)
	if err != nil {
		return nil, err
	}

	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("failed to compile %s: %w", vertexPath, err)
	}
	defer gl.DeleteShader(vertexShader)
	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("failed to compile %s: %w", fragmentPath, err)
	}
	defer gl.DeleteShader(fragmentShader)

	id, err := linkProgram(vertexShader, fragmentShader)
	if err != nil {
		return nil, err
	}

	p := &ShaderProgram{
		id:                id,
		projectionUniform: gl.GetUniformLocation(id, gl.Str("projectionMatrix\x00")),
		viewUniform:       gl.GetUniformLocation(id, gl.Str("viewMatrix\x00")),
		modelUniform:      gl.GetUniformLocation(id, gl.Str("modelMatrix\x00")),
	}
	if p.positionAttribute, err = attributeLocation(id, "position"); err != nil {
		p.Delete()
		return nil, err
	}
	if p.texCoordAttribute, err = attributeLocation(id, "texCoord"); err != nil {
		p.Delete()
		return nil, err
	}
	return p, nil
}

// Use makes this the current program.
func (p *ShaderProgram) Use() {
	gl.UseProgram(p.id)
}

// SetProjectionMatrix sets the projectionMatrix uniform.
func (p *ShaderProgram) SetProjectionMatrix(m mgl32.Mat4) {
	p.setMatrix(p.projectionUniform, m)
}

// SetViewMatrix sets the viewMatrix uniform.
func (p *ShaderProgram) SetViewMatrix(m mgl32.Mat4) {
	p.setMatrix(p.viewUniform, m)
}

// SetModelMatrix sets the modelMatrix uniform.
func (p *ShaderProgram) SetModelMatrix(m mgl32.Mat4) {
	p.setMatrix(p.modelUniform, m)
}

func (p *ShaderProgram) setMatrix(uniform int32, m mgl32.Mat4) {
	gl.UseProgram(p.id)
	gl.UniformMatrix4fv(uniform, 1, false, &m[0])
}

// PositionAttribute is the location of the vertex position attribute.
func (p *ShaderProgram) PositionAttribute() uint32 {
	return p.positionAttribute
}

// TexCoordAttribute is the location of the texture coordinate attribute.
func (p *ShaderProgram) TexCoordAttribute() uint32 {
	return p.texCoordAttribute
}

// Delete frees the program on the GPU.
func (p *ShaderProgram) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// readShaderSource returns the null-terminated source that gl.Strs expects.
func readShaderSource(path string) (string, error) {
	f, err := DefaultOpenFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to open shader: %w", err)
	}
	defer f.Close()
	source, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("failed to read shader %s: %w", path, err)
	}
	return string(source) + "\x00", nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertexShader, fragmentShader uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link shader program: %s", strings.TrimRight(log, "\x00"))
	}
	return program, nil
}

func attributeLocation(program uint32, name string) (uint32, error) {
	location := gl.GetAttribLocation(program, gl.Str(name+"\x00"))
	if location < 0 {
		return 0, fmt.Errorf("shader program has no attribute %q", name)
	}
	return uint32(location), nil
}
