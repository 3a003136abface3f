package shader

import (
	"fmt"
	"strings"
)

// Builder assembles GLSL text for a fixed dialect and naming
type Builder struct {
	Naming  Naming
	Dialect DialectFlags
}

// NewBuilder derives the dialect from p. Empty names in n take their defaults.
func NewBuilder(p Profile, n Naming) Builder {
	return Builder{Naming: n.Merge(), Dialect: DialectFor(p)}
}

// BuildVertexSource generates the vertex stage of kind for p with default names
func BuildVertexSource(kind Kind, p Profile) string {
	return NewBuilder(p, DefaultNaming()).Vertex(kind)
}

// BuildFragmentSource generates the fragment stage of kind for p with default names
func BuildFragmentSource(kind Kind, p Profile) string {
	return NewBuilder(p, DefaultNaming()).Fragment(kind)
}

// Build generates one stage of one program
func (b Builder) Build(kind Kind, stage Stage) Source {
	text := b.Vertex(kind)
	if stage == Fragment {
		text = b.Fragment(kind)
	}
	return Source{Kind: kind, Stage: stage, Text: text}
}

// Vertex generates the vertex stage
func (b Builder) Vertex(kind Kind) string {
	w := &sourceWriter{}
	b.writeHeader(w)
	if kind == Textured {
		b.texturedVertex(w)
	} else {
		b.colorVertex(w)
	}
	return w.String()
}

// Fragment generates the fragment stage
func (b Builder) Fragment(kind Kind) string {
	w := &sourceWriter{}
	b.writeHeader(w)
	if kind == Textured {
		b.texturedFragment(w)
	} else {
		b.colorFragment(w)
	}
	return w.String()
}

func (b Builder) writeHeader(w *sourceWriter) {
	p := b.Dialect.Profile
	switch b.Dialect.Header {
	case HeaderGLES100:
		w.line("#version 100")
		w.precision()
	case HeaderGLES3:
		w.line("#version %d%d es", p.Major, p.Minor)
		w.precision()
	default:
		w.line("%s", strings.TrimSpace(fmt.Sprintf("#version %d%d %s", p.Major, p.Minor, p.Suffix)))
	}
}

// writeCommonInputs declares position, layer and the transform uniforms
func (b Builder) writeCommonInputs(w *sourceWriter) {
	n, d := b.Naming, b.Dialect
	in := d.inputQualifier()
	if d.SupportsIntegerAttributes {
		w.line("%s ivec2 %s;", in, n.Position)
		w.line("%s uint %s;", in, n.Layer)
	} else {
		w.line("%s vec2 %s;", in, n.Position)
		w.line("%s float %s;", in, n.Layer)
	}
}

func (b Builder) writeTransformUniforms(w *sourceWriter) {
	n := b.Naming
	w.line("uniform mat4 %s;", n.ModelView)
	w.line("uniform mat4 %s;", n.Projection)
	w.line("uniform float %s;", n.Z)
}

// writePosition emits the gl_Position assignment inside main
func (b Builder) writePosition(w *sourceWriter) {
	n := b.Naming
	pos, layer := n.Position, n.Layer
	if b.Dialect.SupportsIntegerAttributes {
		pos = fmt.Sprintf("vec2(%s)", n.Position)
		layer = fmt.Sprintf("float(%s)", n.Layer)
	}
	w.body("gl_Position = %s * %s * vec4(%s, %s + %s, 1.0);", n.Projection, n.ModelView, pos, n.Z, layer)
}

// writeOutputDecl declares the fragment output on modern dialects
func (b Builder) writeOutputDecl(w *sourceWriter) {
	if !b.Dialect.UsesLegacyFragmentOutput {
		w.line("out vec4 %s;", b.Naming.FragOut)
	}
}

// writeOutput writes expr to the fragment output
func (b Builder) writeOutput(w *sourceWriter, expr string) {
	target := b.Naming.FragOut
	if b.Dialect.UsesLegacyFragmentOutput {
		target = "gl_FragColor"
	}
	w.body("%s = %s;", target, expr)
}

// flatColor reports whether the color varying carries raw integer components
func (b Builder) flatColor() bool {
	return b.Dialect.SupportsIntegerAttributes && b.Dialect.SupportsFlatInterpolation
}

// colorVarying declares the color varying for stage
func (b Builder) colorVarying(w *sourceWriter, stage Stage) {
	d := b.Dialect
	q := d.varyingQualifier(stage)
	switch {
	case b.flatColor():
		w.line("flat %s uvec4 %s;", q, b.Naming.VaryingColor)
	case d.SupportsFlatInterpolation:
		w.line("flat %s vec4 %s;", q, b.Naming.VaryingColor)
	default:
		w.line("%s vec4 %s;", q, b.Naming.VaryingColor)
	}
}

func (b Builder) colorVertex(w *sourceWriter) {
	n, d := b.Naming, b.Dialect
	b.writeCommonInputs(w)
	if d.SupportsIntegerAttributes {
		w.line("%s uvec4 %s;", d.inputQualifier(), n.Color)
	} else {
		w.line("%s vec4 %s;", d.inputQualifier(), n.Color)
	}
	b.writeTransformUniforms(w)
	b.colorVarying(w, Vertex)

	w.open()
	b.writePosition(w)
	if d.SupportsIntegerAttributes && !b.flatColor() {
		w.body("%s = vec4(%s) / 255.0;", n.VaryingColor, n.Color)
	} else {
		w.body("%s = %s;", n.VaryingColor, n.Color)
	}
	w.close()
}

func (b Builder) colorFragment(w *sourceWriter) {
	n := b.Naming
	b.colorVarying(w, Fragment)
	b.writeOutputDecl(w)

	w.open()
	if b.flatColor() {
		v := n.VaryingColor
		w.body("vec4 color = vec4(float(%[1]s.r) / 255.0, float(%[1]s.g) / 255.0, float(%[1]s.b) / 255.0, float(%[1]s.a) / 255.0);", v)
	} else {
		w.body("vec4 color = %s;", n.VaryingColor)
	}
	b.writeOutput(w, "color")
	w.close()
}

// The textured program never consults flat support: its only varying is an
// interpolated texture coordinate.

func (b Builder) texturedVertex(w *sourceWriter) {
	n, d := b.Naming, b.Dialect
	b.writeCommonInputs(w)
	if d.SupportsIntegerAttributes {
		w.line("%s ivec2 %s;", d.inputQualifier(), n.TexCoord)
	} else {
		w.line("%s vec2 %s;", d.inputQualifier(), n.TexCoord)
	}
	b.writeTransformUniforms(w)
	if d.SupportsIntegerAttributes {
		w.line("uniform ivec2 %s;", n.AtlasSize)
	} else {
		w.line("uniform vec2 %s;", n.AtlasSize)
	}
	w.line("%s vec2 %s;", d.varyingQualifier(Vertex), n.VaryingUV)

	w.open()
	b.writePosition(w)
	if d.SupportsIntegerAttributes {
		w.body("%s = vec2(%s) / vec2(%s);", n.VaryingUV, n.TexCoord, n.AtlasSize)
	} else {
		w.body("%s = %s / %s;", n.VaryingUV, n.TexCoord, n.AtlasSize)
	}
	w.close()
}

func (b Builder) texturedFragment(w *sourceWriter) {
	n, d := b.Naming, b.Dialect
	w.line("%s vec2 %s;", d.varyingQualifier(Fragment), n.VaryingUV)
	w.line("uniform vec3 %s;", n.ColorKey)
	w.line("uniform vec4 %s;", n.ColorOverlay)
	w.line("uniform sampler2D %s;", n.Sampler)
	b.writeOutputDecl(w)

	w.open()
	w.body("vec4 color = %s(%s, %s);", d.textureFunc(), n.Sampler, n.VaryingUV)
	w.body("if (color.rgb == %s) {", n.ColorKey)
	w.body("    color.a = 0.0;")
	w.body("} else {")
	w.body("    color = color * %s;", n.ColorOverlay)
	w.body("}")
	w.body("if (color.a < 0.5) {")
	w.body("    discard;")
	w.body("}")
	b.writeOutput(w, "color")
	w.close()
}

// sourceWriter collects lines of GLSL
type sourceWriter struct {
	lines []string
}

func (w *sourceWriter) line(format string, args ...any) {
	if len(args) == 0 {
		w.lines = append(w.lines, format)
		return
	}
	w.lines = append(w.lines, fmt.Sprintf(format, args...))
}

// body writes an indented statement inside main
func (w *sourceWriter) body(format string, args ...any) {
	w.line("    "+format, args...)
}

func (w *sourceWriter) precision() {
	w.line("precision mediump float;")
	w.line("precision mediump int;")
}

func (w *sourceWriter) open() {
	w.line("void main() {")
}

func (w *sourceWriter) close() {
	w.line("}")
}

// String joins the lines, terminating the last one
func (w *sourceWriter) String() string {
	return strings.Join(w.lines, "\n") + "\n"
}
