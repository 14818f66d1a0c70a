// Command radialmenu renders a radial menu described by a YAML file.
//
// Usage:
//
//	radialmenu [flags]
//
// The menu is read from -config, or built from the comma-separated -items.
// Clicks can be replayed with -click before rendering, so that the output
// shows the menu open, or with a value selected:
//
//	radialmenu -items copy,cut,paste -click 0,0 -hover 0,-60 -o menu.png
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"honnef.co/go/radial"
	"honnef.co/go/radial/menu"
	"honnef.co/go/radial/render"
	"honnef.co/go/radial/theme"
)

type pointList []radial.Point

func (l *pointList) String() string {
	var parts []string
	for _, pt := range *l {
		parts = append(parts, fmt.Sprintf("%g,%g", pt.X, pt.Y))
	}
	return strings.Join(parts, " ")
}

func (l *pointList) Set(s string) error {
	pt, err := parsePoint(s)
	if err != nil {
		return err
	}
	*l = append(*l, pt)
	return nil
}

func parsePoint(s string) (radial.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return radial.Point{}, fmt.Errorf("invalid point %q, want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return radial.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return radial.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return radial.Pt(x, y), nil
}

func main() {
	fs := flag.NewFlagSet("radialmenu", flag.ExitOnError)
	configPath := fs.String("config", "", "YAML menu description")
	items := fs.String("items", "", "comma-separated item values, used without -config")
	output := fs.String("o", "", "output file (default stdout)")
	format := fs.String("format", "", "output format, svg or png (default from -o, else svg)")
	scale := fs.Float64("scale", 1, "pixels per unit for png output")
	hover := fs.String("hover", "", "pointer position x,y for hover highlighting")
	wedge := fs.Bool("wedge", false, "write a single wedge in its local frame as svg")
	dumpConfig := fs.Bool("dump-config", false, "print the effective configuration as YAML and exit")
	logLevel := fs.String("log-level", "info", "log level (debug, info, warn, error)")
	var clicks pointList
	fs.Var(&clicks, "click", "replay a click at x,y in menu coordinates (repeatable)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	level, err := parseLogLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level %q: %v\n", *logLevel, err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := loadConfig(*configPath, *items)
	if err != nil {
		logger.Error("failed to load menu", "error", err)
		os.Exit(1)
	}

	if *dumpConfig {
		data, err := cfg.Marshal()
		if err != nil {
			logger.Error("failed to encode config", "error", err)
			os.Exit(1)
		}
		if err := writeTo(os.Stdout, data); err != nil {
			logger.Error("failed to write config", "error", err)
			os.Exit(1)
		}
		return
	}

	if *format == "" {
		*format = "svg"
		if strings.EqualFold(filepath.Ext(*output), ".png") {
			*format = "png"
		}
	}

	var buf bytes.Buffer
	if err := run(&buf, logger, cfg, runOptions{
		format: *format,
		scale:  *scale,
		hover:  *hover,
		wedge:  *wedge,
		clicks: clicks,
	}); err != nil {
		logger.Error("failed to render menu", "error", err)
		os.Exit(1)
	}

	if err := writeOutput(*output, buf.Bytes()); err != nil {
		logger.Error("failed to write output", "path", *output, "error", err)
		os.Exit(1)
	}
	if *output != "" {
		logger.Info("menu written", "path", *output, "format", *format, "bytes", buf.Len())
	}
}

// writeOutput writes data to the file at path, or to stdout if path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		return writeTo(os.Stdout, data)
	}
	return os.WriteFile(path, data, 0o644)
}

func writeTo(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

type runOptions struct {
	format string
	scale  float64
	hover  string
	wedge  bool
	clicks []radial.Point
}

func loadConfig(path, items string) (theme.Config, error) {
	if path != "" {
		return theme.LoadConfig(path)
	}
	cfg := theme.DefaultConfig()
	for _, v := range strings.Split(items, ",") {
		if v = strings.TrimSpace(v); v != "" {
			cfg.Items = append(cfg.Items, menu.Item{Value: v})
		}
	}
	return cfg, cfg.Validate()
}

func run(w io.Writer, logger *slog.Logger, cfg theme.Config, opts runOptions) error {
	c := menu.New(cfg.MenuItems(), cfg.Geometry(),
		menu.WithLogger(logger),
		menu.OnChange(func(old, new string) {
			logger.Info("value changed", "old", old, "new", new)
		}))
	if cfg.Value != "" {
		c.SetValue(cfg.Value)
	}

	d := menu.NewDispatcher()
	if err := c.Mount(d); err != nil {
		return err
	}
	defer c.Unmount()

	if opts.wedge {
		wedges := c.Wedges()
		if len(wedges) == 0 {
			return fmt.Errorf("menu has no items")
		}
		return render.WriteWedgeSVG(w, wedges[0].Sector, cfg.Theme, radial.DefaultPrecision)
	}

	for _, pt := range opts.clicks {
		cycle := d.Dispatch(pt)
		logger.Debug("click replayed", "pos", pt, "cycle", cycle, "state", c.State())
	}

	scene := render.NewScene(c, cfg.Theme)
	if opts.hover != "" {
		pt, err := parsePoint(opts.hover)
		if err != nil {
			return err
		}
		if i, ok := c.Hover(pt); ok {
			scene.Hovered = i
		}
	}

	var r render.Renderer
	switch strings.ToLower(opts.format) {
	case "svg":
		r = render.SVG{}
	case "png":
		r = render.Raster{Scale: opts.scale}
	default:
		return fmt.Errorf("unknown format %q (valid: svg, png)", opts.format)
	}
	return r.Render(w, scene)
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s (valid: debug, info, warn, error)", s)
	}
}
