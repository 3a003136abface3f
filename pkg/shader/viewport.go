package shader

import "github.com/go-gl/mathgl/mgl32"

// DefaultDepth bounds the orthographic depth range
const DefaultDepth = 1024

// Viewport is a 2D camera over the battlefield: y grows downwards,
// Scroll is the world position of the top-left corner.
type Viewport struct {
	Width  int
	Height int
	Scroll mgl32.Vec2
	Zoom   float32
	Depth  float32
}

// NewViewport creates an unscrolled viewport at zoom 1
func NewViewport(width, height int) *Viewport {
	return &Viewport{
		Width:  width,
		Height: height,
		Zoom:   1,
		Depth:  DefaultDepth,
	}
}

// ModelView translates world space by the scroll offset
func (v *Viewport) ModelView() mgl32.Mat4 {
	return mgl32.Translate3D(-v.Scroll.X(), -v.Scroll.Y(), 0)
}

// ZoomedModelView scales the scrolled world around the top-left corner
func (v *Viewport) ZoomedModelView() mgl32.Mat4 {
	zoom := v.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return mgl32.Scale3D(zoom, zoom, 1).Mul4(v.ModelView())
}

// Projection maps window pixels to clip space
func (v *Viewport) Projection() mgl32.Mat4 {
	depth := v.Depth
	if depth <= 0 {
		depth = DefaultDepth
	}
	return mgl32.Ortho(0, float32(v.Width), float32(v.Height), 0, -depth, depth)
}

// Resize updates the window size
func (v *Viewport) Resize(width, height int) {
	v.Width = width
	v.Height = height
}
