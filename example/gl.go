package main

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/minicore/backend/opengl"
)

func runGL(cfg *Config, images map[string]image.Image) error {
	win, err := opengl.OpenWindow(opengl.WindowConfig{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
		VSync:  *cfg.Window.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	dev := opengl.NewDevice()
	defer dev.Delete()

	program, err := opengl.NewSurfaceProgram(cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return fmt.Errorf("surface program: %w", err)
	}
	defer program.Delete()

	shadow, err := opengl.NewShadowProgram(cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return fmt.Errorf("shadow program: %w", err)
	}
	defer shadow.Delete()

	textures := make(map[string]uint32, len(images))
	for name, img := range images {
		textures[name] = opengl.NewTexture(img)
	}
	defer func() {
		for _, tex := range textures {
			opengl.DeleteTexture(tex)
		}
	}()

	scene, err := NewScene(cfg, dev, textures, program, shadow)
	if err != nil {
		return err
	}
	defer scene.Close()

	bg := cfg.World.Background
	clock := newFixedStep(cfg.Window.FPS)
	last := glfw.GetTime()
	for !win.ShouldClose() {
		glfw.PollEvents()

		now := glfw.GetTime()
		steps := clock.Advance(now - last)
		last = now
		if steps == 0 {
			glfw.WaitEventsTimeout(clock.Remaining())
			continue
		}

		dx, dy := win.Axis()
		for i := 0; i < steps; i++ {
			scene.Update(clock.Step(), dx, dy)
		}

		fbw, fbh := win.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fbw), int32(fbh))
		gl.ClearColor(bg[0], bg[1], bg[2], 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		scene.Draw()

		win.SwapBuffers()
	}
	return nil
}
