// Example renders a scene of textured surfaces described by a YAML file.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell                                  # Go + OpenGL/X11 headers
//	go run ./example/ -config example/scene.yaml  # OpenGL backend
//	go run ./example/ -backend ebiten             # ebiten backend
//
// Arrow keys scroll the camera across the world; Escape quits.
package main

import (
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-theft-auto/minicore"
	"github.com/go-theft-auto/minicore/texture"
)

var (
	configPath = flag.String("config", "example/scene.yaml", "scene file")
	backend    = flag.String("backend", "gl", "renderer backend: gl or ebiten")
	verbose    = flag.Bool("v", false, "enable debug logging")
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	minicore.SetVerbose(*verbose)
	if minicore.Verbose() {
		texture.LogLevel.Set(slog.LevelDebug)
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return err
	}
	images, err := loadImages(cfg)
	if err != nil {
		return err
	}

	switch *backend {
	case "gl":
		return runGL(cfg, images)
	case "ebiten":
		return runEbiten(cfg, images)
	default:
		return fmt.Errorf("unknown backend %q", *backend)
	}
}

// loadImages decodes every configured texture, resizing where requested.
func loadImages(cfg *Config) (map[string]image.Image, error) {
	paths := make(map[string]string, len(cfg.Textures))
	for name, tex := range cfg.Textures {
		paths[name] = tex.Path
	}
	decoded, err := texture.DecodeFiles(paths)
	if err != nil {
		return nil, fmt.Errorf("load textures: %w", err)
	}

	images := make(map[string]image.Image, len(decoded))
	for name, img := range decoded {
		if size := cfg.Textures[name].Size; size != nil {
			images[name] = texture.Resize(img, size[0], size[1])
			continue
		}
		images[name] = img
	}
	return images, nil
}
