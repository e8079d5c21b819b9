// Command mvprint prints the matrices of a camera described in YAML.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/seqsense/mvgl/camera"
	"github.com/seqsense/mvgl/mat"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("mvprint", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "camera.yaml", "camera config file")
	flat := fs.Bool("flat", false, "also print column-major float32 arrays")
	asYAML := fs.Bool("yaml", false, "print matrices as YAML")
	verbose := fs.Bool("v", false, "verbose log")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: level,
	}))

	c, err := camera.LoadFile(*configPath)
	if err != nil {
		logger.Error("Failed to load config", "path", *configPath, "error", err)
		return err
	}
	logger.Debug("Config loaded",
		"path", *configPath,
		"eye", c.Eye, "at", c.At, "up", c.Up,
		"projection", c.Projection.Type,
	)

	proj, err := c.ProjectionMatrix()
	if err != nil {
		logger.Error("Failed to build projection", "error", err)
		return err
	}
	view := c.View()
	vp := proj.Mul(view)
	if det := vp.Det(); det == 0 {
		logger.Warn("View-projection matrix is singular")
	}

	entries := []struct {
		name string
		m    mat.Mat4
	}{
		{"view", view},
		{"projection", proj},
		{"view_projection", vp},
	}

	if *asYAML {
		out := make(map[string]mat.Mat4, len(entries))
		for _, e := range entries {
			out[e.name] = e.m
		}
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			logger.Error("Failed to encode", "error", err)
			return err
		}
		return enc.Close()
	}

	for _, e := range entries {
		fmt.Fprintf(stdout, "%s:\n%s\n", e.name, e.m)
		if *flat {
			fmt.Fprintf(stdout, "%s (flat): %v\n", e.name, mat.Flatten(e.m))
		}
	}
	return nil
}
