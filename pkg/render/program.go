package render

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"skirmish/pkg/shader"
)

// Program is a linked GL program with cached uniform locations
type Program struct {
	name      string
	handle    uint32
	locations map[string]int32
}

var _ shader.Program = (*Program)(nil)

// Compiler compiles generated sources on the current GL context
type Compiler struct{}

var _ shader.Compiler = Compiler{}

// Compile compiles both stages and links them
func (Compiler) Compile(name, vertex, fragment string) (shader.Program, error) {
	handle, err := createShaderProgram(vertex, fragment)
	if err != nil {
		return nil, fmt.Errorf("%s program: %w", name, err)
	}
	return &Program{
		name:      name,
		handle:    handle,
		locations: make(map[string]int32),
	}, nil
}

// RegisterUniforms looks up uniform locations ahead of the first frame
func (p *Program) RegisterUniforms(names ...string) {
	for _, name := range names {
		p.location(name)
	}
}

func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.handle, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

// SetUniformMatrix4 sets a mat4 uniform
func (p *Program) SetUniformMatrix4(name string, m mgl32.Mat4) {
	loc := p.location(name)
	if loc < 0 {
		return
	}
	gl.UseProgram(p.handle)
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

// SetUniformFloat sets a float, vec2, vec3 or vec4 uniform
func (p *Program) SetUniformFloat(name string, v ...float32) {
	loc := p.location(name)
	if loc < 0 {
		return
	}
	gl.UseProgram(p.handle)
	switch len(v) {
	case 1:
		gl.Uniform1f(loc, v[0])
	case 2:
		gl.Uniform2f(loc, v[0], v[1])
	case 3:
		gl.Uniform3f(loc, v[0], v[1], v[2])
	case 4:
		gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
	}
}

// SetUniformInt sets an int, ivec2, ivec3, ivec4 or sampler uniform
func (p *Program) SetUniformInt(name string, v ...int32) {
	loc := p.location(name)
	if loc < 0 {
		return
	}
	gl.UseProgram(p.handle)
	switch len(v) {
	case 1:
		gl.Uniform1i(loc, v[0])
	case 2:
		gl.Uniform2i(loc, v[0], v[1])
	case 3:
		gl.Uniform3i(loc, v[0], v[1], v[2])
	case 4:
		gl.Uniform4i(loc, v[0], v[1], v[2], v[3])
	}
}

// Location returns the cached location of a registered uniform, -1 if the
// program does not use it
func (p *Program) Location(name string) int32 {
	return p.location(name)
}

// Name returns the program name given at compile time
func (p *Program) Name() string {
	return p.name
}

// Delete releases the GL program
func (p *Program) Delete() {
	if p.handle != 0 {
		gl.DeleteProgram(p.handle)
		p.handle = 0
	}
}

// createShaderProgram compiles and links a shader program from source
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex stage: %w", err)
	}

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, fmt.Errorf("fragment stage: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	// Stages are no longer needed once linked
	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("%w: %s", ErrLink, strings.TrimRight(log, "\x00"))
	}

	return program, nil
}

// compileShader compiles a shader from source
func compileShader(source string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, csources, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(sh, logLength, nil, gl.Str(log))
		gl.DeleteShader(sh)

		return 0, fmt.Errorf("%w: %s", ErrCompile, strings.TrimRight(log, "\x00"))
	}

	return sh, nil
}
