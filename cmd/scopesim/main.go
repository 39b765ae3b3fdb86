// Command scopesim runs the widget configuration pipeline against a
// software renderer and shows the resulting oscilloscope screen in the
// terminal. It is the desktop stand-in for the firmware boot sequence:
// definitions are registered, the screen coordinator and widget builder
// are driven through their state machines, and the finished frame is
// flushed to an in-memory display.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"go.uber.org/zap"

	"github.com/go-scope/scopeui/cmd/scopesim/internal/fbrender"
	"github.com/go-scope/scopeui/cmd/scopesim/internal/term"
	"github.com/go-scope/scopeui/pkg/builder"
	"github.com/go-scope/scopeui/pkg/defs"
	"github.com/go-scope/scopeui/pkg/display"
	"github.com/go-scope/scopeui/pkg/screen"
	"github.com/go-scope/scopeui/pkg/widget"
)

func main() {
	var (
		configDir = flag.String("config", ".", "directory containing scope.yaml")
		width     = flag.Int("width", 480, "panel width in pixels")
		height    = flag.Int("height", 384, "panel height in pixels")
		fill      = flag.String("fill", "white", "panel fill color")
		headless  = flag.Bool("headless", false, "configure and render without the terminal UI")
		snapshot  = flag.String("snapshot", "", "write the rendered frame to this PNG file")
	)
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger, *configDir, *width, *height, *fill, *headless, *snapshot); err != nil {
		logger.Fatal("simulator failed", zap.Error(err))
	}
}

func run(logger *zap.Logger, configDir string, width, height int, fill string, headless bool, snapshot string) error {
	fillColor, err := defs.ParseColor(fill)
	if err != nil {
		return err
	}

	cfg, err := defs.LoadOptional(configDir)
	if err != nil {
		return err
	}
	records, err := defs.Resolve(cfg)
	if err != nil {
		return err
	}

	registry, pool := widget.NewRegistry(), widget.NewPool()
	if err := defs.Register(registry, pool, records); err != nil {
		return err
	}
	logger.Info("widgets registered", zap.Int("count", len(records)))

	fb := display.NewFramebuffer(width, height, fillColor)
	if err := fb.Init(); err != nil {
		return err
	}
	logger.Info("display initialized",
		zap.String("controller", fb.Controller()),
		zap.Int("width", fb.Width()),
		zap.Int("height", fb.Height()))

	renderer := fbrender.New(fb)
	coord := screen.New(renderer, fb)
	if !configureScreen(logger, coord, registry, pool) {
		return fmt.Errorf("screen configuration failed: %w", coord.Err())
	}

	b := builder.New()
	if !configureBuilder(logger, b, registry, pool) {
		return fmt.Errorf("widget build failed: %w", b.Err())
	}

	if state := coord.DrawWidgets(); state != screen.StateComplete {
		return fmt.Errorf("draw failed in state %v: %w", state, coord.Err())
	}
	renderer.Refresh(nil)
	logger.Info("frame rendered")

	if snapshot != "" {
		if err := writePNG(snapshot, fb); err != nil {
			return err
		}
		logger.Info("snapshot written", zap.String("path", snapshot))
	}
	if headless {
		return nil
	}

	presenter, err := term.New()
	if err != nil {
		return err
	}
	defer presenter.Close()

	presenter.Present(fb)
	presenter.Wait()
	return nil
}

// configureScreen polls the coordinator through its stages, reporting each
// transition. The state machine itself never logs; this loop is the single
// place configuration progress and failures are surfaced.
func configureScreen(logger *zap.Logger, coord *screen.Coordinator, registry *widget.Registry, pool *widget.Pool) bool {
	for {
		switch coord.State() {
		case screen.StateUninitialized:
			logger.Info("setting screen services")
			coord.SetServices(registry, pool)
		case screen.StateServicesSet:
			logger.Info("services set, resolving widget geometry")
			coord.ResolveGeometry()
		case screen.StateWidgetsRegistered:
			logger.Info("geometry resolved, materializing widgets")
			coord.Materialize()
		case screen.StateAttributesSet:
			logger.Info("screen setup complete")
			return true
		default:
			logger.Error("screen configuration failed",
				zap.Stringer("state", coord.State()),
				zap.Error(coord.Err()))
			return false
		}
	}
}

// configureBuilder polls the widget builder to completion.
func configureBuilder(logger *zap.Logger, b *builder.Builder, registry *widget.Registry, pool *widget.Pool) bool {
	for {
		switch b.State() {
		case builder.StateUninitialized:
			logger.Info("setting builder services")
			b.SetServices(registry, pool)
		case builder.StateServicesSet:
			logger.Info("building widgets")
			b.Build()
		case builder.StateComplete:
			logger.Info("widgets built")
			return true
		default:
			logger.Error("widget build failed",
				zap.Stringer("state", b.State()),
				zap.Error(b.Err()))
			return false
		}
	}
}

func writePNG(path string, fb *display.Framebuffer) error {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			img.SetRGBA(x, y, fb.Pixel(x, y).RGBA())
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return err
	}
	return f.Close()
}
