package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ironsheep/pixelart-mcp/internal/dither"
	"github.com/ironsheep/pixelart-mcp/internal/imaging"
	"github.com/ironsheep/pixelart-mcp/internal/palette"
	"github.com/ironsheep/pixelart-mcp/internal/pixelate"
	"github.com/ironsheep/pixelart-mcp/internal/server"
	"github.com/ironsheep/pixelart-mcp/internal/worker"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Globals are the options shared by every command.
type Globals struct {
	LogLevel string `help:"Log level (debug, info, warn, error)." env:"PIXELART_MCP_LOG_LEVEL" default:"info" enum:"debug,info,warn,error"`
	Queue    int    `help:"Conversion requests that may wait for the worker." env:"PIXELART_MCP_QUEUE" default:"8"`
	Workers  int    `help:"Goroutines for row-parallel dithering (0 = one per CPU)." env:"PIXELART_MCP_WORKERS" default:"0"`

	Version kong.VersionFlag `short:"v" help:"Print version information and quit."`
}

func (g *Globals) logger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	// stdout is reserved for the MCP protocol
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func (g *Globals) worker(logger *slog.Logger) *worker.Worker {
	workers := g.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return worker.New(logger, g.Queue, dither.Options{Workers: workers})
}

// ServeCmd runs the MCP server over stdio.
type ServeCmd struct{}

func (c *ServeCmd) Run(g *Globals) error {
	logger := g.logger()
	logger.Debug("starting pixelart-mcp", "version", Version, "built", BuildTime, "commit", GitCommit)

	w := g.worker(logger)
	defer w.Close()

	return server.New(logger, w, Version).Run()
}

// ConvertCmd converts one image file from the command line.
type ConvertCmd struct {
	Input  string `arg:"" type:"existingfile" help:"Source image."`
	Output string `arg:"" type:"path" help:"Destination image; the extension picks the format."`

	Preset          string   `help:"Preset supplying the defaults (gameboy, nes, c64, clean)."`
	Palette         string   `help:"Built-in palette name, or 'custom'."`
	CustomPalette   []string `help:"Comma separated #RRGGBB colors, at most 16."`
	Dither          string   `help:"Dithering type (none, ordered, floyd)."`
	Metric          string   `help:"Color metric (rgb, cielab)."`
	PixelResolution int      `help:"Working width in pixels (-1 keeps the preset value)." default:"-1"`
	Contrast        int      `help:"Contrast percent (-1 keeps the preset value)." default:"-1"`
	Saturation      int      `help:"Saturation percent (-1 keeps the preset value)." default:"-1"`
	Upscale         bool     `help:"Scale the result back to the source size." default:"true" negatable:""`
}

func (c *ConvertCmd) Validate() error {
	if _, err := pixelate.Preset(c.Preset); err != nil {
		return err
	}
	// The cap applies only when the custom colors are actually used.
	usesCustom := c.Palette == "" || c.Palette == palette.Custom
	if usesCustom && len(c.CustomPalette) > palette.MaxCustomColors {
		return fmt.Errorf("custom palette has %d colors, maximum is %d", len(c.CustomPalette), palette.MaxCustomColors)
	}
	return nil
}

func (c *ConvertCmd) options() (pixelate.Options, error) {
	settings, err := pixelate.Preset(c.Preset)
	if err != nil {
		return pixelate.Options{}, err
	}
	if c.Palette != "" {
		settings.Palette = c.Palette
	}
	if c.Dither != "" {
		settings.DitheringType = c.Dither
	}
	if c.Metric != "" {
		settings.ColorMetric = c.Metric
	}
	if c.PixelResolution >= 0 {
		settings.PixelResolution = c.PixelResolution
	}
	if c.Contrast >= 0 {
		settings.Contrast = c.Contrast
	}
	if c.Saturation >= 0 {
		settings.Saturation = c.Saturation
	}

	opts := pixelate.Options{Settings: settings, Upscale: c.Upscale}
	if len(c.CustomPalette) > 0 {
		custom, err := palette.ParseHexList(c.CustomPalette)
		if err != nil {
			return pixelate.Options{}, fmt.Errorf("custom palette: %w", err)
		}
		opts.CustomPalette = custom
		if c.Palette == "" {
			opts.Palette = palette.Custom
		}
	}
	return opts, nil
}

func (c *ConvertCmd) Run(g *Globals) error {
	logger := g.logger()

	opts, err := c.options()
	if err != nil {
		return err
	}

	img, err := imaging.NewImageCache().Load(c.Input)
	if err != nil {
		return err
	}

	w := g.worker(logger)
	defer w.Close()

	result, err := pixelate.Run(context.Background(), w, img, opts)
	if err != nil {
		return err
	}
	if err := imaging.Save(result.Image, c.Output); err != nil {
		return err
	}

	colors := make([]string, len(result.Usage))
	for i, u := range result.Usage {
		colors[i] = u.Hex
	}
	logger.Info("converted",
		"input", c.Input,
		"output", c.Output,
		"palette", opts.Palette,
		"dithering", opts.DitheringType,
		"metric", opts.ColorMetric,
		"working", fmt.Sprintf("%dx%d", result.WorkingWidth, result.WorkingHeight),
		"posterized", result.Posterized,
		"colors", strings.Join(colors, ","))
	return nil
}

// CLI is the command line grammar.
type CLI struct {
	Globals

	Serve   ServeCmd   `cmd:"" default:"1" help:"Run the MCP server on stdin/stdout (default)."`
	Convert ConvertCmd `cmd:"" help:"Convert an image file to pixel art."`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("pixelart-mcp"),
		kong.Description("MCP server and CLI that turns images into retro pixel art."),
		kong.UsageOnError(),
		kong.Vars{"version": fmt.Sprintf("pixelart-mcp %s (built %s, commit %s)", Version, BuildTime, GitCommit)},
	)
	if err := kctx.Run(&cli.Globals); err != nil {
		slog.Error("command failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
