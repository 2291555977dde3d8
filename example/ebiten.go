package main

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/go-theft-auto/minicore/backend/ebitengine"
)

type game struct {
	dev   *ebitengine.Device
	scene *Scene
	w, h  int
	bg    color.Color
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	var dx, dy float32
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy++
	}
	g.scene.Update(1/float32(ebiten.TPS()), dx, dy)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)
	g.dev.SetTarget(screen)
	g.scene.Draw()
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.w, g.h
}

func runEbiten(cfg *Config, images map[string]image.Image) error {
	dev := ebitengine.NewDevice()

	textures := make(map[string]uint32, len(images))
	for name, img := range images {
		textures[name] = dev.NewTexture(img)
	}
	defer func() {
		for _, tex := range textures {
			dev.DeleteTexture(tex)
		}
	}()

	scene, err := NewScene(cfg, dev, textures,
		ebitengine.NewSurfaceProgram(dev), ebitengine.NewShadowProgram(dev))
	if err != nil {
		return err
	}
	defer scene.Close()

	bg := cfg.World.Background
	g := &game{
		dev:   dev,
		scene: scene,
		w:     cfg.Window.Width,
		h:     cfg.Window.Height,
		bg:    color.NRGBA{R: unit8(bg[0]), G: unit8(bg[1]), B: unit8(bg[2]), A: 0xff},
	}

	ebiten.SetWindowSize(g.w, g.h)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetVsyncEnabled(*cfg.Window.VSync)
	ebiten.SetTPS(cfg.Window.FPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// unit8 converts a 0..1 component to a byte.
func unit8(v float32) uint8 {
	return uint8(min(max(v, 0), 1)*255 + 0.5)
}
