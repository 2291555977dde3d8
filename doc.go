/*
Package minicore implements the renderable surface of a small 2D game engine:
a textured quad, optionally tilted, stored in one static GPU buffer and drawn
with a camera-relative transform and an optional fake shadow.

# Overview

A Surface is built once per visual asset. Construction computes the six
vertices of two triangles, one flat normal per triangle, texture coordinates
and per-vertex colors, and uploads them to a non-interleaved buffer whose
regions are described by a Layout table. Position and rotation are render-time
parameters, so one Surface is drawn many times per frame.

GPU access goes through the Device and ShaderProgram interfaces. The
backend/opengl package implements them on OpenGL 4.1 core; backend/ebitengine
feeds the same buffers to ebiten.

# Quick Start

	dev := opengl.NewDevice()
	prog, _ := opengl.NewSurfaceProgram(1024, 768)
	shadow, _ := opengl.NewShadowProgram(1024, 768)
	tex := opengl.NewTexture(img)

	car := minicore.NewSurface(dev, "car", minicore.Material{
	    Texture:       tex,
	    Program:       prog,
	    ShadowProgram: shadow,
	}, 32, 64)

	cam := minicore.NewViewCamera(1024, 768, px, py, worldW, worldH)

	// Frame loop
	car.RenderShadow(cam, mgl32.Vec3{x + 2, y - 2, 0}, angle, true)
	car.Render(cam, mgl32.Vec3{x, y, 1}, angle, true)

# Corner order

Per-corner Z values are given bottom-left, top-left, top-right, bottom-right.
Four-corner texture coordinates are given bottom-left, top-right, top-left,
bottom-right. Both are expanded to the triangle list BL-TR-TL, BL-BR-TR.

# Threading

Surfaces, buffers and the SurfaceManager must only be used from the goroutine
that owns the GPU context.
*/
package minicore
