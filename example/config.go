package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned for scene files that parse but do not validate.
var ErrInvalidConfig = errors.New("invalid scene config")

// Config is a scene file.
type Config struct {
	Window    WindowConfig             `yaml:"window"`
	World     WorldConfig              `yaml:"world"`
	Textures  map[string]TextureConfig `yaml:"textures"`
	Surfaces  []SurfaceConfig          `yaml:"surfaces"`
	Instances []InstanceConfig         `yaml:"instances"`
}

// WindowConfig sets the window and frame rate. FPS is the number of scene
// updates and redraws per second.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"`
	VSync  *bool  `yaml:"vsync"`
}

// WorldConfig sets the world size the camera is clamped to.
type WorldConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
	// Scroll is the camera speed in world units per second.
	Scroll float32 `yaml:"scroll"`
	// Background is the clear color as r, g, b.
	Background []float32 `yaml:"background"`
}

// TextureConfig names an image file, optionally resized on load.
type TextureConfig struct {
	Path string `yaml:"path"`
	Size []int  `yaml:"size"`
}

// SurfaceConfig describes one surface asset.
type SurfaceConfig struct {
	Handle  string  `yaml:"handle"`
	Texture string  `yaml:"texture"`
	Width   float32 `yaml:"width"`
	Height  float32 `yaml:"height"`
	// Z is empty, one shared value, or four corner values
	// (bottom-left, top-left, top-right, bottom-right).
	Z []float32 `yaml:"z"`
	// TexCoords are four u, v pairs
	// (bottom-left, top-right, top-left, bottom-right).
	TexCoords [][]float32 `yaml:"texcoords"`
	// Color is r, g, b, a.
	Color []float32 `yaml:"color"`
}

// InstanceConfig places a surface in the world.
type InstanceConfig struct {
	Surface string    `yaml:"surface"`
	Pos     []float32 `yaml:"pos"`
	Angle   float32   `yaml:"angle"`
	// Spin is the rotation speed in degrees per second.
	Spin float32 `yaml:"spin"`
	// Shadow is the shadow offset as x, y. Empty means no shadow.
	Shadow []float32 `yaml:"shadow"`
}

// LoadConfig reads, defaults and validates a scene file. Texture paths are
// resolved relative to the file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for name, tex := range cfg.Textures {
		if !filepath.IsAbs(tex.Path) {
			tex.Path = filepath.Join(dir, tex.Path)
			cfg.Textures[name] = tex
		}
	}
	return cfg, nil
}

// ParseConfig decodes a scene document. Unknown fields are errors.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Window.Width == 0 {
		c.Window.Width = 1024
	}
	if c.Window.Height == 0 {
		c.Window.Height = 768
	}
	if c.Window.Title == "" {
		c.Window.Title = "minicore"
	}
	if c.Window.FPS == 0 {
		c.Window.FPS = 60
	}
	if c.Window.VSync == nil {
		vsync := true
		c.Window.VSync = &vsync
	}
	if c.World.Width == 0 {
		c.World.Width = float32(c.Window.Width)
	}
	if c.World.Height == 0 {
		c.World.Height = float32(c.Window.Height)
	}
	if c.World.Scroll == 0 {
		c.World.Scroll = 300
	}
	if c.World.Background == nil {
		c.World.Background = []float32{0.12, 0.12, 0.14}
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

func (c *Config) validate() error {
	if c.Window.Width < 0 || c.Window.Height < 0 || c.Window.FPS < 0 {
		return invalid("window size and fps must be positive")
	}
	if len(c.World.Background) != 3 {
		return invalid("world.background needs 3 components, got %d", len(c.World.Background))
	}
	for name, tex := range c.Textures {
		if tex.Path == "" {
			return invalid("texture %q: missing path", name)
		}
		if tex.Size != nil && (len(tex.Size) != 2 || tex.Size[0] <= 0 || tex.Size[1] <= 0) {
			return invalid("texture %q: size must be two positive values", name)
		}
	}

	handles := make(map[string]bool, len(c.Surfaces))
	for i, s := range c.Surfaces {
		if s.Handle == "" {
			return invalid("surface %d: missing handle", i)
		}
		if handles[s.Handle] {
			return invalid("surface %q: duplicate handle", s.Handle)
		}
		handles[s.Handle] = true
		if s.Width <= 0 || s.Height <= 0 {
			return invalid("surface %q: width and height must be positive", s.Handle)
		}
		if s.Texture != "" {
			if _, ok := c.Textures[s.Texture]; !ok {
				return invalid("surface %q: unknown texture %q", s.Handle, s.Texture)
			}
		}
		switch len(s.Z) {
		case 0, 1, 4:
		default:
			return invalid("surface %q: z needs 0, 1 or 4 values, got %d", s.Handle, len(s.Z))
		}
		if s.TexCoords != nil {
			if len(s.TexCoords) != 4 {
				return invalid("surface %q: texcoords needs 4 corners, got %d", s.Handle, len(s.TexCoords))
			}
			for j, tc := range s.TexCoords {
				if len(tc) != 2 {
					return invalid("surface %q: texcoord %d needs u, v", s.Handle, j)
				}
			}
		}
		if s.Color != nil && len(s.Color) != 4 {
			return invalid("surface %q: color needs 4 components, got %d", s.Handle, len(s.Color))
		}
	}

	for i, in := range c.Instances {
		if !handles[in.Surface] {
			return invalid("instance %d: unknown surface %q", i, in.Surface)
		}
		if len(in.Pos) < 2 || len(in.Pos) > 3 {
			return invalid("instance %d: pos needs x, y and optional z", i)
		}
		if in.Shadow != nil && len(in.Shadow) != 2 {
			return invalid("instance %d: shadow offset needs x, y", i)
		}
	}
	return nil
}
