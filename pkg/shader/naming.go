package shader

import (
	"errors"
	"fmt"
)

// ErrDuplicateName is returned when two slots of one program share a name
var ErrDuplicateName = errors.New("duplicate shader variable name")

// Default variable names
const (
	DefaultPosition     = "aPosition"
	DefaultLayer        = "aLayer"
	DefaultColor        = "aColor"
	DefaultTexCoord     = "aTexCoord"
	DefaultVaryingColor = "vColor"
	DefaultVaryingUV    = "vTexCoord"
	DefaultModelView    = "uModelView"
	DefaultProjection   = "uProjection"
	DefaultZ            = "uZ"
	DefaultAtlasSize    = "uAtlasSize"
	DefaultColorKey     = "uColorKey"
	DefaultColorOverlay = "uColorOverlay"
	DefaultSampler      = "uTexture"
	DefaultFragOut      = "fragColor"
)

// Naming is the set of variable names both shader kinds share
type Naming struct {
	Position     string `yaml:"position"`
	Layer        string `yaml:"layer"`
	Color        string `yaml:"color"`
	TexCoord     string `yaml:"tex_coord"`
	VaryingColor string `yaml:"varying_color"`
	VaryingUV    string `yaml:"varying_uv"`
	ModelView    string `yaml:"model_view"`
	Projection   string `yaml:"projection"`
	Z            string `yaml:"z"`
	AtlasSize    string `yaml:"atlas_size"`
	ColorKey     string `yaml:"color_key"`
	ColorOverlay string `yaml:"color_overlay"`
	Sampler      string `yaml:"sampler"`
	FragOut      string `yaml:"frag_out"`
}

// DefaultNaming returns the default variable names
func DefaultNaming() Naming {
	return Naming{
		Position:     DefaultPosition,
		Layer:        DefaultLayer,
		Color:        DefaultColor,
		TexCoord:     DefaultTexCoord,
		VaryingColor: DefaultVaryingColor,
		VaryingUV:    DefaultVaryingUV,
		ModelView:    DefaultModelView,
		Projection:   DefaultProjection,
		Z:            DefaultZ,
		AtlasSize:    DefaultAtlasSize,
		ColorKey:     DefaultColorKey,
		ColorOverlay: DefaultColorOverlay,
		Sampler:      DefaultSampler,
		FragOut:      DefaultFragOut,
	}
}

// Merge returns n with every empty field taken from the defaults
func (n Naming) Merge() Naming {
	d := DefaultNaming()
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&n.Position, d.Position)
	fill(&n.Layer, d.Layer)
	fill(&n.Color, d.Color)
	fill(&n.TexCoord, d.TexCoord)
	fill(&n.VaryingColor, d.VaryingColor)
	fill(&n.VaryingUV, d.VaryingUV)
	fill(&n.ModelView, d.ModelView)
	fill(&n.Projection, d.Projection)
	fill(&n.Z, d.Z)
	fill(&n.AtlasSize, d.AtlasSize)
	fill(&n.ColorKey, d.ColorKey)
	fill(&n.ColorOverlay, d.ColorOverlay)
	fill(&n.Sampler, d.Sampler)
	fill(&n.FragOut, d.FragOut)
	return n
}

// names returns the variables a program of the given kind declares
func (n Naming) names(kind Kind) []string {
	names := []string{n.Position, n.Layer, n.ModelView, n.Projection, n.Z, n.FragOut}
	switch kind {
	case ColorOnly:
		names = append(names, n.Color, n.VaryingColor)
	case Textured:
		names = append(names, n.TexCoord, n.VaryingUV, n.AtlasSize, n.ColorKey, n.ColorOverlay, n.Sampler)
	}
	return names
}

// Validate checks that names are unique within each program
func (n Naming) Validate() error {
	for _, kind := range Kinds {
		seen := make(map[string]struct{})
		for _, name := range n.names(kind) {
			if name == "" {
				return fmt.Errorf("%s program: empty variable name", kind)
			}
			if _, dup := seen[name]; dup {
				return fmt.Errorf("%s program: %w %q", kind, ErrDuplicateName, name)
			}
			seen[name] = struct{}{}
		}
	}
	return nil
}

// UniformNames returns the uniforms of a program kind, used to prime location lookups
func (n Naming) UniformNames(kind Kind) []string {
	names := []string{n.ModelView, n.Projection, n.Z}
	if kind == Textured {
		names = append(names, n.AtlasSize, n.ColorKey, n.ColorOverlay, n.Sampler)
	}
	return names
}
