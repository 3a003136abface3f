package main

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"runtime"

	"skirmish/internal/logger"
	"skirmish/pkg/config"
	"skirmish/pkg/render"
	"skirmish/pkg/shader"
)

func init() {
	// GLFW requires the program to be running on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	kindFlag := flag.String("kind", "all", "Program to generate: color, texture or all")
	stageFlag := flag.String("stage", "all", "Stage to generate: vertex, fragment or all")
	outDir := flag.String("out", "", "Directory to write sources to (stdout when empty)")
	probe := flag.Bool("probe", false, "Read the profile from a live GL context")
	compile := flag.Bool("compile", false, "Compile the generated programs on a live GL context")
	level := flag.String("log", "", "Log level override")
	flag.Parse()

	// LoadConfig returns defaults alongside its error
	cfg, cfgErr := config.LoadConfig(*configPath)
	if *level != "" {
		cfg.Log.Level = *level
	}
	log, err := newLogger(cfg.Log)
	if err != nil {
		logger.NewLogger(cfg.Log.Level).Fatalf("Failed to open log: %v", err)
	}
	defer log.Close()

	if cfgErr != nil {
		if !errors.Is(cfgErr, fs.ErrNotExist) {
			log.Fatalf("Failed to load configuration: %v", cfgErr)
		}
		log.Warn(cfgErr)
	}
	if *probe {
		cfg.Profile.Probe = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	sel, err := parseSelection(*kindFlag, *stageFlag)
	if err != nil {
		log.Fatal(err)
	}

	var ctx *render.Context
	if cfg.Profile.Probe || *compile {
		if ctx, err = render.NewContext(cfg.Graphics); err != nil {
			log.Fatalf("Failed to create GL context: %v", err)
		}
		defer ctx.Close()
		log.Infof("GL %s on %s", ctx.Version(), ctx.Renderer())
	}

	profile := cfg.ShaderProfile()
	if cfg.Profile.Probe {
		if profile, err = ctx.Profile(); err != nil {
			log.Fatalf("Failed to read shading language version: %v", err)
		}
	}
	log.Infof("Generating for GLSL %s", profile)

	cache := shader.NewSourceCache(shader.NewBuilder(profile, cfg.Naming()))
	if err := writeSources(cache, sel, *outDir, os.Stdout, log); err != nil {
		log.Fatal(err)
	}

	if *compile {
		if err := compileAll(profile, cfg.Naming(), log); err != nil {
			log.Fatal(err)
		}
		log.Info("All programs compiled")
	}
}

func newLogger(cfg config.LogConfig) (*logger.Logger, error) {
	if cfg.File == "" {
		return logger.NewLogger(cfg.Level), nil
	}
	return logger.NewMultiLogger(cfg.Level, cfg.File)
}
