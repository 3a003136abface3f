package shader

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadVersion is returned when a shading language version string cannot be parsed
var ErrBadVersion = errors.New("unrecognized shading language version")

// Profile describes the shading language the graphics context accepts.
// It is set once after the context is created and never changes.
type Profile struct {
	Major  int
	Minor  int
	Suffix string // "core", "compatibility", "es" or empty
}

// Common profiles
var (
	ProfileGL21   = Profile{Major: 1, Minor: 2}
	ProfileGL33   = Profile{Major: 3, Minor: 3, Suffix: "core"}
	ProfileGLES2  = Profile{Major: 1, Minor: 0, Suffix: "es"}
	ProfileGLES3  = Profile{Major: 3, Minor: 0, Suffix: "es"}
	ProfileGLES31 = Profile{Major: 3, Minor: 1, Suffix: "es"}
)

// String returns the profile as "major.minor suffix"
func (p Profile) String() string {
	if p.Suffix == "" {
		return fmt.Sprintf("%d.%d", p.Major, p.Minor)
	}
	return fmt.Sprintf("%d.%d %s", p.Major, p.Minor, p.Suffix)
}

// ParseProfile reads a GL_SHADING_LANGUAGE_VERSION string such as
// "4.60 NVIDIA", "1.20" or "OpenGL ES GLSL ES 3.00".
// Only the first digit of the minor version is kept. Desktop versions
// from 1.50 on get the "core" suffix.
func ParseProfile(glslVersion string) (Profile, error) {
	s := strings.TrimSpace(glslVersion)
	es := false
	if i := strings.LastIndex(strings.ToUpper(s), " ES "); i >= 0 {
		es = true
		s = s[i+4:]
	}

	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Profile{}, fmt.Errorf("%w: %q", ErrBadVersion, glslVersion)
	}

	parts := strings.Split(fields[0], ".")
	if len(parts) < 2 || parts[1] == "" {
		return Profile{}, fmt.Errorf("%w: %q", ErrBadVersion, glslVersion)
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil || major <= 0 {
		return Profile{}, fmt.Errorf("%w: %q", ErrBadVersion, glslVersion)
	}
	minor, err := strconv.Atoi(parts[1][:1])
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %q", ErrBadVersion, glslVersion)
	}

	p := Profile{Major: major, Minor: minor}
	switch {
	case es:
		p.Suffix = "es"
	case major > 1 || minor >= 5:
		p.Suffix = "core"
	}
	return p, nil
}
