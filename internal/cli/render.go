package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pthm/cmpengine"
	"github.com/pthm/cmpengine/internal/logging"
)

type renderOptions struct {
	mode      string
	outDir    string
	noMarkers bool
	styles    bool
}

func (a *app) newRenderCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render FILE...",
		Short: "Render description files to markup",
		Long: `Render one or more description files. Output goes to stdout in argument
order, or to OUT_DIR/NAME.html with --out-dir. Files are rendered
concurrently (render.concurrency in the config).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("mode") {
				opts.mode = a.cfg.Render.Mode
			}
			if err := validateMode(opts.mode); err != nil {
				return err
			}
			outputs, err := a.renderFiles(cmd, args, opts)
			if err != nil {
				return err
			}
			if opts.outDir != "" {
				return writeOutputs(opts.outDir, args, outputs)
			}
			for _, out := range outputs {
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "string", "Rendering mode: string or live")
	cmd.Flags().StringVarP(&opts.outDir, "out-dir", "o", "", "Write NAME.html files into this directory")
	cmd.Flags().BoolVar(&opts.noMarkers, "no-markers", false, "Omit block markers in string mode")
	cmd.Flags().BoolVar(&opts.styles, "styles", false, "Prepend the collected styles in a <style> element")

	return cmd
}

func (a *app) renderFiles(cmd *cobra.Command, paths []string, opts renderOptions) ([]string, error) {
	start := time.Now()
	defer logging.LogDuration(a.logger, start, "render")

	outputs := make([]string, len(paths))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(a.cfg.Render.Concurrency, 1))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			desc, err := cmpengine.LoadDescription(path)
			if err != nil {
				return err
			}
			out, err := a.render(ctx, desc, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			outputs[i] = out
			a.logger.Info().Str("file", path).Int("bytes", len(out)).Msg("rendered")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}

func (a *app) render(ctx context.Context, desc cmpengine.Description, opts renderOptions) (string, error) {
	var sb strings.Builder
	if opts.styles {
		if css := a.engine.RenderStyles(desc); css != "" {
			sb.WriteString("<style>" + css + "</style>")
		}
	}

	if cmpengine.ParseMode(opts.mode) == cmpengine.LiveMode {
		if err := a.engine.Render(desc).Render(ctx, &sb); err != nil {
			return "", err
		}
		return sb.String(), nil
	}

	if opts.noMarkers {
		sb.WriteString(cmpengine.RenderToString(a.engine.Build(desc, cmpengine.StringMode), nil))
	} else {
		sb.WriteString(a.engine.RenderString(desc))
	}
	return sb.String(), nil
}

func validateMode(mode string) error {
	switch mode {
	case cmpengine.StringMode.String(), cmpengine.LiveMode.String():
		return nil
	}
	return fmt.Errorf("invalid mode %q: want %q or %q", mode, cmpengine.StringMode, cmpengine.LiveMode)
}

func writeOutputs(dir string, paths, outputs []string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	for i, path := range paths {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".html"
		if err := os.WriteFile(filepath.Join(dir, name), []byte(outputs[i]), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	return nil
}
