package shader

import "github.com/go-gl/mathgl/mgl32"

// Program is a linked GPU program accepting uniform updates by name.
// Implementations ignore names the program does not use.
type Program interface {
	SetUniformMatrix4(name string, m mgl32.Mat4)
	SetUniformFloat(name string, v ...float32)
	SetUniformInt(name string, v ...int32)
}

// Compiler turns generated sources into a Program
type Compiler interface {
	Compile(name, vertex, fragment string) (Program, error)
}

// ViewMatrices supplies the transforms pushed by UpdateMatrices
type ViewMatrices interface {
	ModelView() mgl32.Mat4
	ZoomedModelView() mgl32.Mat4
	Projection() mgl32.Mat4
}

// updateMatrices pushes the model-view selected by zoomed, then the projection
func updateMatrices(p Program, n Naming, view ViewMatrices, zoomed bool) {
	if zoomed {
		p.SetUniformMatrix4(n.ModelView, view.ZoomedModelView())
	} else {
		p.SetUniformMatrix4(n.ModelView, view.ModelView())
	}
	p.SetUniformMatrix4(n.Projection, view.Projection())
}

func setZ(p Program, n Naming, z float32) {
	p.SetUniformFloat(n.Z, z)
}
