// Package camera builds view and projection matrices from a camera
// description or from an interactive orbit view.
package camera

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/seqsense/mvgl/mat"
)

// ProjectionType selects the projection of a Config.
type ProjectionType string

const (
	ProjectionPerspective ProjectionType = "perspective"
	ProjectionOrtho       ProjectionType = "ortho"
)

// ErrInvalidConfig is returned by Validate and Load for unusable configs.
var ErrInvalidConfig = errors.New("invalid camera config")

type Projection struct {
	Type ProjectionType `yaml:"type"`

	// Vertical field of view in degrees.
	Fovy   float64 `yaml:"fovy"`
	Aspect float64 `yaml:"aspect"`

	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Top    float64 `yaml:"top"`

	Near float64 `yaml:"near"`
	Far  float64 `yaml:"far"`
}

// Config describes a camera placed at Eye looking toward At.
type Config struct {
	Eye        mat.Vec3   `yaml:"eye"`
	At         mat.Vec3   `yaml:"at"`
	Up         mat.Vec3   `yaml:"up"`
	Projection Projection `yaml:"projection"`
}

// Load decodes and validates a YAML camera config.
// Omitted up defaults to +z and omitted projection type to perspective.
func Load(r io.Reader) (*Config, error) {
	c := &Config{
		Up: mat.Vec3{0, 0, 1},
		Projection: Projection{
			Type: ProjectionPerspective,
		},
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.Up == (mat.Vec3{}) {
		return fmt.Errorf("%w: up is zero", ErrInvalidConfig)
	}
	if c.Eye != c.At && c.At.Sub(c.Eye).Cross(c.Up) == (mat.Vec3{}) {
		return fmt.Errorf("%w: up is parallel to the view direction", ErrInvalidConfig)
	}

	p := &c.Projection
	switch p.Type {
	case ProjectionPerspective:
		if p.Fovy <= 0 || p.Fovy >= 180 {
			return fmt.Errorf("%w: fovy %g out of (0, 180)", ErrInvalidConfig, p.Fovy)
		}
		if p.Aspect <= 0 {
			return fmt.Errorf("%w: aspect %g must be positive", ErrInvalidConfig, p.Aspect)
		}
		if p.Near <= 0 || p.Far <= p.Near {
			return fmt.Errorf("%w: need 0 < near < far, got %g, %g", ErrInvalidConfig, p.Near, p.Far)
		}
	case ProjectionOrtho:
		// Degenerate boxes are reported by mat.Ortho.
		if _, err := c.projection(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	default:
		return fmt.Errorf("%w: unknown projection type %q", ErrInvalidConfig, p.Type)
	}
	return nil
}

// View returns the view matrix.
func (c *Config) View() mat.Mat4 {
	return mat.LookAt(c.Eye, c.At, c.Up)
}

// ProjectionMatrix returns the projection matrix.
func (c *Config) ProjectionMatrix() (mat.Mat4, error) {
	if err := c.Validate(); err != nil {
		return mat.Mat4{}, err
	}
	return c.projection()
}

func (c *Config) projection() (mat.Mat4, error) {
	p := &c.Projection
	if p.Type == ProjectionOrtho {
		return mat.Ortho(p.Left, p.Right, p.Bottom, p.Top, p.Near, p.Far)
	}
	return mat.Perspective(p.Fovy, p.Aspect, p.Near, p.Far), nil
}

// ViewProjection returns projection times view.
func (c *Config) ViewProjection() (mat.Mat4, error) {
	p, err := c.ProjectionMatrix()
	if err != nil {
		return mat.Mat4{}, err
	}
	return p.Mul(c.View()), nil
}
