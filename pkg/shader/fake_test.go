package shader

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// fakeProgram records uniform updates
type fakeProgram struct {
	name     string
	matrices map[string]mgl32.Mat4
	floats   map[string][]float32
	ints     map[string][]int32
	calls    []string
}

func newFakeProgram(name string) *fakeProgram {
	return &fakeProgram{
		name:     name,
		matrices: make(map[string]mgl32.Mat4),
		floats:   make(map[string][]float32),
		ints:     make(map[string][]int32),
	}
}

func (p *fakeProgram) SetUniformMatrix4(name string, m mgl32.Mat4) {
	p.matrices[name] = m
	p.calls = append(p.calls, name)
}

func (p *fakeProgram) SetUniformFloat(name string, v ...float32) {
	p.floats[name] = v
	p.calls = append(p.calls, name)
}

func (p *fakeProgram) SetUniformInt(name string, v ...int32) {
	p.ints[name] = v
	p.calls = append(p.calls, name)
}

// fakeCompiler hands out fake programs and remembers the sources it saw
type fakeCompiler struct {
	failOn   string
	programs map[string]*fakeProgram
	sources  map[string][2]string
}

var errCompile = errors.New("0:1: syntax error")

func newFakeCompiler() *fakeCompiler {
	return &fakeCompiler{
		programs: make(map[string]*fakeProgram),
		sources:  make(map[string][2]string),
	}
}

func (c *fakeCompiler) Compile(name, vertex, fragment string) (Program, error) {
	if name == c.failOn {
		return nil, errCompile
	}
	p := newFakeProgram(name)
	c.programs[name] = p
	c.sources[name] = [2]string{vertex, fragment}
	return p, nil
}

// fixedView returns distinct matrices so tests can tell them apart
type fixedView struct{}

func (fixedView) ModelView() mgl32.Mat4       { return mgl32.Translate3D(1, 2, 0) }
func (fixedView) ZoomedModelView() mgl32.Mat4 { return mgl32.Scale3D(2, 2, 1) }
func (fixedView) Projection() mgl32.Mat4      { return mgl32.Ortho2D(0, 640, 480, 0) }
