package render

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"skirmish/pkg/config"
	"skirmish/pkg/shader"
)

// Errors reported by the driver
var (
	ErrCompile = errors.New("shader compilation failed")
	ErrLink    = errors.New("shader program linking failed")
)

// Context is a hidden window whose GL context is current on the calling thread.
// Callers must lock the OS thread before creating it.
type Context struct {
	window *glfw.Window
}

// NewContext creates the window and loads GL entry points
func NewContext(cfg config.GraphicsConfig) (*Context, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.ContextMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.ContextMinor)
	if cfg.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, "skirmish shader probe", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	return &Context{window: window}, nil
}

// Version returns the GL_VERSION string
func (c *Context) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Renderer returns the GL_RENDERER string
func (c *Context) Renderer() string {
	return gl.GoStr(gl.GetString(gl.RENDERER))
}

// ShadingLanguageVersion returns the GL_SHADING_LANGUAGE_VERSION string
func (c *Context) ShadingLanguageVersion() string {
	return gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))
}

// Profile parses the context's shading language version
func (c *Context) Profile() (shader.Profile, error) {
	return shader.ParseProfile(c.ShadingLanguageVersion())
}

// Close destroys the window and terminates GLFW
func (c *Context) Close() {
	if c.window != nil {
		c.window.Destroy()
		c.window = nil
	}
	glfw.Terminate()
}
