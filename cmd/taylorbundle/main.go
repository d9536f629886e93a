// Command taylorbundle renders Taylor bundles of the built-in scenes to PNG
// files.
//
// Usage:
//
//	taylorbundle [flags]
//
// Options of the selected scene can be overridden with a YAML file, see
// render.LoadOptions. For example:
//
//	tangents: 2500
//	parts: 16
//	tangent_width: 0.4
//	tangent_alpha: 0.1
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"honnef.co/go/taylor/render"
)

func main() {
	var (
		sceneName = flag.String("scene", "asteroid", "scene to render: "+sceneNames())
		config    = flag.String("config", "", "YAML file with options overriding the scene's")
		output    = flag.String("o", "", "output file name, without extension")
		dir       = flag.String("dir", "", "output directory")
		preview   = flag.Float64("preview", 0, "render a preview at this scale, such as 0.25")
		legend    = flag.Bool("legend", false, "also render a legend of the tangent colors")
		fit       = flag.Float64("fit", -1, "if not negative, fit the window to the curve with this relative margin")
		verbose   = flag.Bool("v", false, "log debug output")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *sceneName, *config, *output, *dir, *preview, *fit, *legend); err != nil {
		fmt.Fprintln(os.Stderr, "taylorbundle:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, sceneName, config, output, dir string, preview, fit float64, legend bool) error {
	opts, err := scene(sceneName)
	if err != nil {
		return err
	}
	if config != "" {
		f, err := os.Open(config)
		if err != nil {
			return err
		}
		opts, err = render.LoadOptions(f, opts)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", config, err)
		}
	}
	if output != "" {
		opts.Filename = output
	}
	if fit >= 0 {
		if err := opts.FitWindow(fit); err != nil {
			return err
		}
	}
	if preview > 0 {
		opts = opts.Preview(preview)
	}

	r := &render.Renderer{Dir: dir}
	if legend {
		if _, err := r.RenderLegend(ctx, opts); err != nil {
			return err
		}
	}
	_, err = r.Render(ctx, opts)
	return err
}
