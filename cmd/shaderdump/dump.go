package main

import (
	"fmt"
	"io"

	"skirmish/internal/logger"
	"skirmish/internal/util"
	"skirmish/pkg/render"
	"skirmish/pkg/shader"
)

// selection is the set of sources requested on the command line
type selection struct {
	kinds  []shader.Kind
	stages []shader.Stage
}

func parseSelection(kind, stage string) (selection, error) {
	sel := selection{kinds: shader.Kinds, stages: shader.Stages}
	if kind != "all" {
		k, err := shader.ParseKind(kind)
		if err != nil {
			return sel, err
		}
		sel.kinds = []shader.Kind{k}
	}
	if stage != "all" {
		s, err := shader.ParseStage(stage)
		if err != nil {
			return sel, err
		}
		sel.stages = []shader.Stage{s}
	}
	return sel, nil
}

// writeSources writes each selected source to outDir, or to w with a
// banner line per source when outDir is empty
func writeSources(cache *shader.SourceCache, sel selection, outDir string, w io.Writer, log *logger.Logger) error {
	for _, kind := range sel.kinds {
		for _, stage := range sel.stages {
			src := cache.Source(kind, stage)
			if outDir == "" {
				if _, err := fmt.Fprintf(w, "// %s %s\n%s", kind, stage, src.Text); err != nil {
					return err
				}
				continue
			}
			path, err := util.WriteTextFile(outDir, kind.String()+stage.Ext(), src.Text)
			if err != nil {
				return err
			}
			log.Infof("Wrote %s", path)
		}
	}
	return nil
}

// compileAll builds both programs on the current context and reports
// uniforms the driver optimized away
func compileAll(profile shader.Profile, naming shader.Naming, log *logger.Logger) error {
	reg, err := shader.NewRegistry(render.Compiler{}, profile, naming, log)
	if err != nil {
		return err
	}

	programs := map[shader.Kind]shader.Program{
		shader.ColorOnly: reg.Color().Program(),
		shader.Textured:  reg.Texture().Program(),
	}
	for _, kind := range shader.Kinds {
		p, ok := programs[kind].(*render.Program)
		if !ok {
			continue
		}
		names := reg.Naming().UniformNames(kind)
		p.RegisterUniforms(names...)
		for _, name := range names {
			if p.Location(name) < 0 {
				log.Warnf("%s program: uniform %s is inactive", kind, name)
			}
		}
		p.Delete()
	}
	return nil
}
