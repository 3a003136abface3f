package shader

import (
	"fmt"

	"skirmish/internal/logger"
)

// Registry owns the generated sources and both sprite shaders.
// The renderer builds one after its graphics context is current.
type Registry struct {
	profile Profile
	naming  Naming
	sources *SourceCache
	color   *ColorShader
	texture *TextureShader
}

// NewRegistry generates and compiles both programs for profile
func NewRegistry(compiler Compiler, profile Profile, naming Naming, log *logger.Logger) (*Registry, error) {
	naming = naming.Merge()
	if err := naming.Validate(); err != nil {
		return nil, err
	}

	builder := NewBuilder(profile, naming)
	r := &Registry{
		profile: profile,
		naming:  naming,
		sources: NewSourceCache(builder),
	}
	log = log.With("shader")
	log.Debugf("generating sources for GLSL %s", profile)

	programs := make(map[Kind]Program, len(Kinds))
	for _, kind := range Kinds {
		vert, frag := r.sources.Program(kind)
		p, err := compiler.Compile(kind.String(), vert, frag)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s shader: %w", kind, err)
		}
		log.Debugf("%s shader ready", kind)
		programs[kind] = p
	}

	r.color = NewColorShader(programs[ColorOnly], naming)
	r.texture = NewTextureShader(programs[Textured], naming, builder.Dialect)
	return r, nil
}

// Color returns the flat color shader
func (r *Registry) Color() *ColorShader {
	return r.color
}

// Texture returns the sprite shader
func (r *Registry) Texture() *TextureShader {
	return r.texture
}

// Sources returns the cache the programs were compiled from
func (r *Registry) Sources() *SourceCache {
	return r.sources
}

// Profile returns the profile the programs target
func (r *Registry) Profile() Profile {
	return r.profile
}

// Naming returns the variable names in use
func (r *Registry) Naming() Naming {
	return r.naming
}
