package shader

// ColorShader draws flat colored primitives
type ColorShader struct {
	program Program
	naming  Naming
}

// NewColorShader wraps a program compiled from the ColorOnly sources
func NewColorShader(p Program, n Naming) *ColorShader {
	return &ColorShader{program: p, naming: n}
}

// SetZ sets the base depth added to each vertex layer
func (s *ColorShader) SetZ(z float32) {
	setZ(s.program, s.naming, z)
}

// UpdateMatrices pushes the model-view and projection transforms
func (s *ColorShader) UpdateMatrices(view ViewMatrices, zoomed bool) {
	updateMatrices(s.program, s.naming, view, zoomed)
}

// Program returns the underlying program
func (s *ColorShader) Program() Program {
	return s.program
}
