// Command surfinfo selects a surfman adapter, exercises a context and a
// surface texture round trip on it, and prints what it found.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/surfman"
	"github.com/gogpu/surfman/backend"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file (probe order and backend options)")
		force      = flag.String("backend", "", "force a backend: hardware or software")
		width      = flag.Int("width", 640, "surface width")
		height     = flag.Int("height", 480, "surface height")
		output     = flag.String("output", "", "write the software surface texture to this PNG file")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		surfman.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := surfman.DefaultConfig()
	if *configPath != "" {
		loaded, err := surfman.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *force != "" {
		kind, err := backend.Parse(*force)
		if err != nil {
			log.Fatalf("Invalid -backend: %v", err)
		}
		cfg.Probe = []string{kind.String()}
	}

	adapter, err := surfman.SelectAdapter(cfg)
	if err != nil {
		log.Fatalf("No adapter: %v", err)
	}
	defer adapter.Release()
	device, err := surfman.NewDevice(adapter)
	if err != nil {
		log.Fatalf("Failed to open device: %v", err)
	}
	defer device.Release()

	if err := report(device, surfman.Sz(*width, *height), *output); err != nil {
		log.Fatalf("Failed: %v", err)
	}
}

func report(device *surfman.Device, size surfman.Size, output string) error {
	fmt.Printf("adapter:        %v\n", device.Adapter())
	fmt.Printf("backend:        %v\n", device.Backend())
	fmt.Printf("gl api:         %v\n", device.GLApi())
	fmt.Printf("texture target: %#x\n", device.SurfaceGLTextureTarget())

	cd, err := device.CreateContextDescriptor(surfman.ContextAttributes{
		Version: surfman.GLVersion{Major: 3, Minor: 3},
		Flags:   surfman.ContextAlpha | surfman.ContextDepth | surfman.ContextStencil,
	})
	if err != nil {
		return fmt.Errorf("context descriptor: %w", err)
	}
	attrs, err := device.ContextDescriptorAttributes(cd)
	if err != nil {
		return err
	}
	fmt.Printf("context:        GL %v, %v\n", attrs.Version, attrs.Flags)

	ctx, err := device.CreateContext(cd, surfman.GenericSurfaceType(size))
	if err != nil {
		return fmt.Errorf("create context: %w", err)
	}
	defer device.DestroyContext(ctx)
	if err := device.MakeContextCurrent(ctx); err != nil {
		return fmt.Errorf("make current: %w", err)
	}
	defer device.MakeNoContextCurrent()

	id, _ := device.ContextSurfaceID(ctx)
	fbo, _ := device.ContextSurfaceFramebufferObject(ctx)
	fmt.Printf("surface:        %v %v fbo=%d\n", id, size, fbo)

	s, err := device.CreateSurface(ctx, surfman.GenericSurfaceType(size))
	if err != nil {
		return fmt.Errorf("create surface: %w", err)
	}
	tex, err := device.CreateSurfaceTexture(ctx, s)
	if err != nil {
		_ = device.DestroySurface(ctx, s)
		return fmt.Errorf("create surface texture: %w", err)
	}
	fmt.Printf("texture:        %d\n", tex.GLTexture())

	if output != "" {
		if err := writeTexture(tex, output); err != nil {
			return err
		}
	}

	back, err := device.DestroySurfaceTexture(ctx, tex)
	if err != nil {
		return fmt.Errorf("destroy surface texture: %w", err)
	}
	fmt.Printf("round trip:     %v %v\n", back.ID(), back.Size())
	return device.DestroySurface(ctx, back)
}

func writeTexture(tex *surfman.SurfaceTexture, path string) error {
	st, err := tex.Software()
	if err != nil {
		return fmt.Errorf("-output needs the software backend: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, st.Image()); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	log.Printf("Texture saved to %s\n", path)
	return nil
}
