package shader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const precisionPragmas = "precision mediump float;\nprecision mediump int;\n"

var allProfiles = []Profile{
	ProfileGL21, ProfileGL33, ProfileGLES2, ProfileGLES3, ProfileGLES31,
	{Major: 1, Minor: 3},
	{Major: 4, Minor: 6, Suffix: "compatibility"},
	{Major: 2, Minor: 0, Suffix: "es"},
	{Major: 9, Minor: 9, Suffix: "weird"},
}

func TestDesktopCoreHeader(t *testing.T) {
	for _, kind := range Kinds {
		src := BuildVertexSource(kind, ProfileGL33)
		assert.True(t, strings.HasPrefix(src, "#version 33 core\n"), src)
		assert.Contains(t, src, "in ivec2 aPosition;")
		assert.NotContains(t, src, "attribute ")
		assert.NotContains(t, src, "precision ")
	}
}

func TestGLES100(t *testing.T) {
	header := "#version 100\n" + precisionPragmas
	for _, kind := range Kinds {
		vert := BuildVertexSource(kind, ProfileGLES2)
		frag := BuildFragmentSource(kind, ProfileGLES2)
		assert.True(t, strings.HasPrefix(vert, header), vert)
		assert.True(t, strings.HasPrefix(frag, header), frag)

		assert.Contains(t, vert, "attribute vec2 aPosition;")
		assert.Contains(t, vert, "attribute float aLayer;")
		assert.Contains(t, frag, "gl_FragColor = color;")
		assert.NotContains(t, frag, "out vec4")
		assert.NotContains(t, vert+frag, "flat ")
	}

	assert.Contains(t, BuildVertexSource(ColorOnly, ProfileGLES2), "varying vec4 vColor;")
	assert.Contains(t, BuildFragmentSource(ColorOnly, ProfileGLES2), "varying vec4 vColor;")
	assert.Contains(t, BuildVertexSource(Textured, ProfileGLES2), "varying vec2 vTexCoord;")
	assert.Contains(t, BuildFragmentSource(Textured, ProfileGLES2), "texture2D(uTexture, vTexCoord)")
}

func TestGLES3(t *testing.T) {
	header := "#version 30 es\n" + precisionPragmas

	vert := BuildVertexSource(ColorOnly, ProfileGLES3)
	frag := BuildFragmentSource(ColorOnly, ProfileGLES3)
	assert.True(t, strings.HasPrefix(vert, header), vert)
	assert.True(t, strings.HasPrefix(frag, header), frag)

	assert.Contains(t, vert, "in ivec2 aPosition;")
	assert.Contains(t, vert, "in uint aLayer;")
	assert.Contains(t, vert, "in uvec4 aColor;")
	assert.Contains(t, vert, "flat out uvec4 vColor;")
	assert.Contains(t, vert, "vec4(vec2(aPosition), uZ + float(aLayer), 1.0)")
	assert.NotContains(t, vert, "attribute ")
	assert.NotContains(t, vert, "varying ")

	assert.Contains(t, frag, "flat in uvec4 vColor;")
	assert.Contains(t, frag, "out vec4 fragColor;")
	assert.Contains(t, frag, "fragColor = color;")
	assert.NotContains(t, frag, "gl_FragColor")
}

func TestIntegerColorDividedBy255(t *testing.T) {
	for _, p := range allProfiles {
		if !SupportsIntegerAttributes(p) {
			continue
		}
		frag := BuildFragmentSource(ColorOnly, p)
		for _, c := range []string{"r", "g", "b", "a"} {
			assert.Contains(t, frag, "float(vColor."+c+") / 255.0", "profile %s", p)
		}
	}
}

func TestFloatColorPassesThrough(t *testing.T) {
	vert := BuildVertexSource(ColorOnly, ProfileGL21)
	frag := BuildFragmentSource(ColorOnly, ProfileGL21)
	assert.Contains(t, vert, "attribute vec4 aColor;")
	assert.Contains(t, vert, "vColor = aColor;")
	assert.Contains(t, frag, "vec4 color = vColor;")
	assert.NotContains(t, frag, "255.0")
}

func TestIntegerColorWithoutFlat(t *testing.T) {
	b := Builder{
		Naming: DefaultNaming(),
		Dialect: DialectFlags{
			Profile:                   ProfileGL33,
			SupportsIntegerAttributes: true,
		},
	}

	vert := b.Vertex(ColorOnly)
	frag := b.Fragment(ColorOnly)
	assert.Contains(t, vert, "in uvec4 aColor;")
	assert.Contains(t, vert, "out vec4 vColor;")
	assert.Contains(t, vert, "vColor = vec4(aColor) / 255.0;")
	assert.Contains(t, frag, "in vec4 vColor;")
	assert.NotContains(t, vert+frag, "flat ")
}

func TestTexturedIgnoresFlatSupport(t *testing.T) {
	withFlat := Builder{Naming: DefaultNaming(), Dialect: DialectFor(ProfileGLES3)}
	withoutFlat := withFlat
	withoutFlat.Dialect.SupportsFlatInterpolation = false

	for _, stage := range Stages {
		assert.Equal(t, withFlat.Build(Textured, stage), withoutFlat.Build(Textured, stage))
	}
	assert.NotEqual(t, withFlat.Build(ColorOnly, Vertex), withoutFlat.Build(ColorOnly, Vertex))
}

func TestTexturedFragmentKeyThenOverlayThenDiscard(t *testing.T) {
	for _, p := range allProfiles {
		frag := BuildFragmentSource(Textured, p)

		key := strings.Index(frag, "if (color.rgb == uColorKey) {")
		transparent := strings.Index(frag, "color.a = 0.0;")
		overlay := strings.Index(frag, "color = color * uColorOverlay;")
		discard := strings.Index(frag, "if (color.a < 0.5) {\n        discard;\n    }")

		require.NotEqual(t, -1, key, "profile %s", p)
		require.NotEqual(t, -1, discard, "profile %s", p)
		assert.Less(t, key, transparent)
		assert.Less(t, transparent, overlay)
		assert.Less(t, overlay, discard)
	}
}

func TestTexturedAtlasUniformType(t *testing.T) {
	assert.Contains(t, BuildVertexSource(Textured, ProfileGLES3), "uniform ivec2 uAtlasSize;")
	assert.Contains(t, BuildVertexSource(Textured, ProfileGLES3), "vTexCoord = vec2(aTexCoord) / vec2(uAtlasSize);")
	assert.Contains(t, BuildVertexSource(Textured, ProfileGL21), "uniform vec2 uAtlasSize;")
	assert.Contains(t, BuildVertexSource(Textured, ProfileGL21), "vTexCoord = aTexCoord / uAtlasSize;")
}

func TestBuildIsIdempotent(t *testing.T) {
	for _, p := range allProfiles {
		for _, kind := range Kinds {
			assert.Equal(t, BuildVertexSource(kind, p), BuildVertexSource(kind, p))
			assert.Equal(t, BuildFragmentSource(kind, p), BuildFragmentSource(kind, p))
		}
	}
}

func TestUnknownProfileFallsBackToDesktop(t *testing.T) {
	p := Profile{Major: 9, Minor: 9, Suffix: "weird"}
	vert := BuildVertexSource(ColorOnly, p)
	assert.True(t, strings.HasPrefix(vert, "#version 99 weird\n"), vert)
	assert.Contains(t, vert, "in ivec2 aPosition;")

	gles2 := BuildVertexSource(ColorOnly, Profile{Major: 2, Minor: 0, Suffix: "es"})
	assert.True(t, strings.HasPrefix(gles2, "#version 20 es\nin "), gles2)
}

func TestCustomNaming(t *testing.T) {
	b := NewBuilder(ProfileGL33, Naming{FragOut: "outColor", Sampler: "atlas"})
	frag := b.Fragment(Textured)
	assert.Contains(t, frag, "out vec4 outColor;")
	assert.Contains(t, frag, "uniform sampler2D atlas;")
	assert.Contains(t, frag, "texture(atlas, vTexCoord)")
	assert.Contains(t, frag, "uniform vec3 uColorKey;")
}

func TestLegacyColorVertexText(t *testing.T) {
	want := `#version 12
attribute vec2 aPosition;
attribute float aLayer;
attribute vec4 aColor;
uniform mat4 uModelView;
uniform mat4 uProjection;
uniform float uZ;
varying vec4 vColor;
void main() {
    gl_Position = uProjection * uModelView * vec4(aPosition, uZ + aLayer, 1.0);
    vColor = aColor;
}
`
	assert.Equal(t, want, BuildVertexSource(ColorOnly, ProfileGL21))
}

func TestGLES3TexturedText(t *testing.T) {
	wantVert := `#version 30 es
precision mediump float;
precision mediump int;
in ivec2 aPosition;
in uint aLayer;
in ivec2 aTexCoord;
uniform mat4 uModelView;
uniform mat4 uProjection;
uniform float uZ;
uniform ivec2 uAtlasSize;
out vec2 vTexCoord;
void main() {
    gl_Position = uProjection * uModelView * vec4(vec2(aPosition), uZ + float(aLayer), 1.0);
    vTexCoord = vec2(aTexCoord) / vec2(uAtlasSize);
}
`
	wantFrag := `#version 30 es
precision mediump float;
precision mediump int;
in vec2 vTexCoord;
uniform vec3 uColorKey;
uniform vec4 uColorOverlay;
uniform sampler2D uTexture;
out vec4 fragColor;
void main() {
    vec4 color = texture(uTexture, vTexCoord);
    if (color.rgb == uColorKey) {
        color.a = 0.0;
    } else {
        color = color * uColorOverlay;
    }
    if (color.a < 0.5) {
        discard;
    }
    fragColor = color;
}
`
	assert.Equal(t, wantVert, BuildVertexSource(Textured, ProfileGLES3))
	assert.Equal(t, wantFrag, BuildFragmentSource(Textured, ProfileGLES3))
}
