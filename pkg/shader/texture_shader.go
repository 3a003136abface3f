package shader

import "github.com/go-gl/mathgl/mgl32"

// TextureShader draws atlas sprites with a color key and an overlay tint
type TextureShader struct {
	program    Program
	naming     Naming
	intUniform bool
}

// NewTextureShader wraps a program compiled from the Textured sources.
// d decides whether the atlas size is an integer or float uniform.
func NewTextureShader(p Program, n Naming, d DialectFlags) *TextureShader {
	return &TextureShader{
		program:    p,
		naming:     n,
		intUniform: d.SupportsIntegerAttributes,
	}
}

// SetZ sets the base depth added to each vertex layer
func (s *TextureShader) SetZ(z float32) {
	setZ(s.program, s.naming, z)
}

// UpdateMatrices pushes the model-view and projection transforms
func (s *TextureShader) UpdateMatrices(view ViewMatrices, zoomed bool) {
	updateMatrices(s.program, s.naming, view, zoomed)
}

// SetColorKey sets the RGB value treated as transparent
func (s *TextureShader) SetColorKey(key mgl32.Vec3) {
	s.program.SetUniformFloat(s.naming.ColorKey, key[0], key[1], key[2])
}

// SetColorOverlay sets the tint multiplied into opaque texels
func (s *TextureShader) SetColorOverlay(overlay mgl32.Vec4) {
	s.program.SetUniformFloat(s.naming.ColorOverlay, overlay[0], overlay[1], overlay[2], overlay[3])
}

// SetSampler binds the sampler to a texture unit
func (s *TextureShader) SetSampler(unit int32) {
	s.program.SetUniformInt(s.naming.Sampler, unit)
}

// SetAtlasSize sets the atlas dimensions in pixels
func (s *TextureShader) SetAtlasSize(width, height int) {
	if s.intUniform {
		s.program.SetUniformInt(s.naming.AtlasSize, int32(width), int32(height))
		return
	}
	s.program.SetUniformFloat(s.naming.AtlasSize, float32(width), float32(height))
}

// Program returns the underlying program
func (s *TextureShader) Program() Program {
	return s.program
}
