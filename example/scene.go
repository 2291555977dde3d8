package main

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/minicore"
)

// Scene is a set of positioned surface instances viewed through a camera.
type Scene struct {
	surfaces  *minicore.SurfaceManager
	instances []instance
	// order groups instance indices by surface for batched drawing.
	order  map[string][]int
	camera *minicore.ViewCamera
	scroll float32
}

type instance struct {
	surface *minicore.Surface
	pos     mgl32.Vec3
	angle   float32
	spin    float32
	shadow  *mgl32.Vec2
}

// NewScene builds every configured surface on dev. textures maps texture
// names to backend handles.
func NewScene(cfg *Config, dev minicore.Device, textures map[string]uint32, program, shadow minicore.ShaderProgram) (*Scene, error) {
	s := &Scene{
		surfaces: minicore.NewSurfaceManager(),
		order:    make(map[string][]int),
		camera: minicore.NewViewCamera(
			float32(cfg.Window.Width), float32(cfg.Window.Height),
			cfg.World.Width/2, cfg.World.Height/2,
			cfg.World.Width, cfg.World.Height),
		scroll: cfg.World.Scroll,
	}

	for _, sc := range cfg.Surfaces {
		mat := minicore.Material{
			Texture:       textures[sc.Texture],
			Program:       program,
			ShadowProgram: shadow,
		}
		surface := minicore.NewSurface(dev, sc.Handle, mat, sc.Width, sc.Height, surfaceOptions(sc)...)
		if sc.Color != nil {
			surface.SetColor(minicore.Color{R: sc.Color[0], G: sc.Color[1], B: sc.Color[2], A: sc.Color[3]})
		}
		if err := s.surfaces.Add(surface); err != nil {
			surface.Delete()
			s.Close()
			return nil, fmt.Errorf("build scene: %w", err)
		}
	}

	for _, ic := range cfg.Instances {
		surface, _ := s.surfaces.Surface(ic.Surface)
		in := instance{
			surface: surface,
			pos:     mgl32.Vec3{ic.Pos[0], ic.Pos[1], 0},
			angle:   ic.Angle,
			spin:    ic.Spin,
		}
		if len(ic.Pos) == 3 {
			in.pos[2] = ic.Pos[2]
		}
		if ic.Shadow != nil {
			in.shadow = &mgl32.Vec2{ic.Shadow[0], ic.Shadow[1]}
		}
		s.order[ic.Surface] = append(s.order[ic.Surface], len(s.instances))
		s.instances = append(s.instances, in)
	}
	return s, nil
}

func surfaceOptions(sc SurfaceConfig) []minicore.SurfaceOption {
	var opts []minicore.SurfaceOption
	switch len(sc.Z) {
	case 1:
		opts = append(opts, minicore.WithZ(sc.Z[0]))
	case 4:
		opts = append(opts, minicore.WithCornerZ(sc.Z[0], sc.Z[1], sc.Z[2], sc.Z[3]))
	}
	if sc.TexCoords != nil {
		var corners [4]minicore.TexCoord
		for i, tc := range sc.TexCoords {
			corners[i] = minicore.TexCoord{U: tc[0], V: tc[1]}
		}
		opts = append(opts, minicore.WithTexCoords(corners))
	}
	return opts
}

// Camera returns the scene camera.
func (s *Scene) Camera() *minicore.ViewCamera {
	return s.camera
}

// Update advances spinning instances by dt seconds and scrolls the camera
// in direction (dx, dy).
func (s *Scene) Update(dt, dx, dy float32) {
	for i := range s.instances {
		in := &s.instances[i]
		in.angle = float32(math.Mod(float64(in.angle+in.spin*dt), 360))
	}
	if dx != 0 || dy != 0 {
		x, y := s.camera.Pos()
		s.camera.SetPos(x+dx*s.scroll*dt, y+dy*s.scroll*dt)
	}
}

// Draw renders shadows first, then surfaces batched per asset. Instances
// outside the view are skipped.
func (s *Scene) Draw() {
	for _, in := range s.instances {
		if in.shadow == nil || !s.visible(in) {
			continue
		}
		pos := mgl32.Vec3{in.pos[0] + in.shadow[0], in.pos[1] + in.shadow[1], in.pos[2]}
		in.surface.RenderShadow(s.camera, pos, in.angle, true)
	}

	for _, handle := range s.surfaces.Handles() {
		idx := s.order[handle]
		if len(idx) == 0 {
			continue
		}
		surface, _ := s.surfaces.Surface(handle)
		surface.Bind()
		for _, i := range idx {
			in := s.instances[i]
			if !s.visible(in) {
				continue
			}
			surface.Render(s.camera, in.pos, in.angle, false)
		}
		surface.Release()
	}
}

// visible tests the instance's bounding circle against the view.
func (s *Scene) visible(in instance) bool {
	sc := in.surface.Scale()
	w, h := in.surface.Width()*sc[0], in.surface.Height()*sc[1]
	r := mgl32.Vec2{w, h}.Len() / 2
	return s.camera.IsVisible(minicore.Rect{X: in.pos[0] - r, Y: in.pos[1] - r, W: 2 * r, H: 2 * r})
}

// Close releases every surface.
func (s *Scene) Close() {
	s.surfaces.ReleaseAll()
}
