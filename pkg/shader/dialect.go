package shader

import "strings"

// Header selects the form of the #version directive
type Header int

const (
	HeaderDesktop Header = iota
	HeaderGLES100
	HeaderGLES3
)

// DialectFlags holds the syntax decisions derived from a Profile
type DialectFlags struct {
	Profile Profile
	Header  Header

	IsGLES                    bool
	IsLegacyGL                bool
	SupportsFlatInterpolation bool
	SupportsIntegerAttributes bool
	UsesLegacyFragmentOutput  bool
}

// DialectFor derives the dialect flags for a profile.
// GLES versions other than 1.0 and 3.x take the desktop, non-legacy branch.
func DialectFor(p Profile) DialectFlags {
	d := DialectFlags{
		Profile:    p,
		IsGLES:     IsGLES(p),
		IsLegacyGL: IsLegacyGL(p),
	}
	switch {
	case d.IsGLES && p.Major == 1 && p.Minor == 0:
		d.Header = HeaderGLES100
	case d.IsGLES && p.Major >= 3:
		d.Header = HeaderGLES3
	default:
		d.Header = HeaderDesktop
	}

	legacy := usesLegacyQualifiers(p)
	d.SupportsFlatInterpolation = !legacy
	d.SupportsIntegerAttributes = !legacy
	d.UsesLegacyFragmentOutput = legacy
	return d
}

// IsGLES reports whether the profile suffix names the embedded dialect
func IsGLES(p Profile) bool {
	return strings.Contains(strings.ToLower(p.Suffix), "es")
}

// IsLegacyGL reports desktop GLSL older than 1.30
func IsLegacyGL(p Profile) bool {
	return !IsGLES(p) && p.Major == 1 && p.Minor < 3
}

// SupportsFlatInterpolation reports whether the flat qualifier is available
func SupportsFlatInterpolation(p Profile) bool {
	return !usesLegacyQualifiers(p)
}

// SupportsIntegerAttributes reports whether vertex inputs may be integer typed
func SupportsIntegerAttributes(p Profile) bool {
	return !usesLegacyQualifiers(p)
}

// UsesLegacyFragmentOutput reports whether fragments are written to gl_FragColor
func UsesLegacyFragmentOutput(p Profile) bool {
	return usesLegacyQualifiers(p)
}

func usesLegacyQualifiers(p Profile) bool {
	if IsLegacyGL(p) {
		return true
	}
	return IsGLES(p) && p.Major == 1 && p.Minor == 0
}

// LegacyQualifiers reports whether attribute/varying are used instead of in/out
func (d DialectFlags) LegacyQualifiers() bool {
	return d.IsLegacyGL || d.Header == HeaderGLES100
}

// inputQualifier returns the qualifier for vertex inputs
func (d DialectFlags) inputQualifier() string {
	if d.LegacyQualifiers() {
		return "attribute"
	}
	return "in"
}

// varyingQualifier returns the qualifier for an inter-stage variable
func (d DialectFlags) varyingQualifier(stage Stage) string {
	if d.LegacyQualifiers() {
		return "varying"
	}
	if stage == Vertex {
		return "out"
	}
	return "in"
}

// textureFunc returns the 2D sampling builtin
func (d DialectFlags) textureFunc() string {
	if d.LegacyQualifiers() {
		return "texture2D"
	}
	return "texture"
}
