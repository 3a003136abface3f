package shader

import "fmt"

// Kind selects one of the two sprite programs
type Kind int

const (
	ColorOnly Kind = iota
	Textured
)

// Kinds lists every program kind in build order
var Kinds = []Kind{ColorOnly, Textured}

func (k Kind) String() string {
	switch k {
	case ColorOnly:
		return "color"
	case Textured:
		return "texture"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind accepts "color" or "texture"
func ParseKind(s string) (Kind, error) {
	switch s {
	case "color":
		return ColorOnly, nil
	case "texture":
		return Textured, nil
	}
	return 0, fmt.Errorf("unknown shader kind %q", s)
}

// Stage is a pipeline stage
type Stage int

const (
	Vertex Stage = iota
	Fragment
)

// Stages lists both stages in compile order
var Stages = []Stage{Vertex, Fragment}

func (s Stage) String() string {
	if s == Fragment {
		return "fragment"
	}
	return "vertex"
}

// Ext returns the conventional file extension for the stage
func (s Stage) Ext() string {
	if s == Fragment {
		return ".frag"
	}
	return ".vert"
}

// ParseStage accepts "vertex" or "fragment"
func ParseStage(s string) (Stage, error) {
	switch s {
	case "vertex":
		return Vertex, nil
	case "fragment":
		return Fragment, nil
	}
	return 0, fmt.Errorf("unknown shader stage %q", s)
}

// Source is generated shader text for one stage of one program
type Source struct {
	Kind  Kind
	Stage Stage
	Text  string
}
