package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skirmish/internal/logger"
	"skirmish/pkg/shader"
)

func TestParseSelection(t *testing.T) {
	sel, err := parseSelection("all", "all")
	require.NoError(t, err)
	assert.Equal(t, shader.Kinds, sel.kinds)
	assert.Equal(t, shader.Stages, sel.stages)

	sel, err = parseSelection("texture", "fragment")
	require.NoError(t, err)
	assert.Equal(t, []shader.Kind{shader.Textured}, sel.kinds)
	assert.Equal(t, []shader.Stage{shader.Fragment}, sel.stages)

	_, err = parseSelection("sprite", "all")
	assert.Error(t, err)
	_, err = parseSelection("all", "compute")
	assert.Error(t, err)
}

func TestWriteSourcesToStdout(t *testing.T) {
	cache := shader.NewSourceCache(shader.NewBuilder(shader.ProfileGL33, shader.DefaultNaming()))
	sel, err := parseSelection("color", "all")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeSources(cache, sel, "", &buf, logger.NewWriterLogger("info", io.Discard)))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "// color vertex\n#version 33 core\n"), out)
	assert.Contains(t, out, "// color fragment\n#version 33 core\n")
	assert.NotContains(t, out, "texture")
}

func TestWriteSourcesToDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "glsl")
	cache := shader.NewSourceCache(shader.NewBuilder(shader.ProfileGLES2, shader.DefaultNaming()))
	sel, err := parseSelection("all", "all")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeSources(cache, sel, dir, &buf, logger.NewWriterLogger("info", io.Discard)))
	assert.Zero(t, buf.Len())

	for _, name := range []string{"color.vert", "color.frag", "texture.vert", "texture.frag"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.True(t, strings.HasPrefix(string(data), "#version 100\n"), name)
	}
}
