package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/benchorder/pkg/errors"
	"github.com/matzehuels/benchorder/pkg/graphml"
	"github.com/matzehuels/benchorder/pkg/pipeline"
	"github.com/matzehuels/benchorder/pkg/render"
	"github.com/matzehuels/benchorder/pkg/render/nodelink"
	"github.com/matzehuels/benchorder/pkg/slug"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string  // output file; "-" writes to stdout
	format      string  // svg, dot, pdf or png
	detailed    bool    // show entity type, community and edge labels
	leftToRight bool    // horizontal layout
	scale       float64 // png scale factor
}

// renderCommand creates the render command for drawing an exported graph.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		paths pathFlags
		opts  = renderOpts{format: string(render.FormatSVG), scale: 2}
	)

	cmd := &cobra.Command{
		Use:   "render <slug>",
		Short: "Draw an exported graph as a node-link diagram",
		Long: `Render reads <graphs-dir>/<slug>.graphml and draws it with Graphviz.
Nodes are coloured by community. SVG and DOT need nothing installed; PDF and
PNG need rsvg-convert (librsvg).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := render.ParseFormat(opts.format)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid --format")
			}
			s := args[0]
			if !slug.Valid(s) {
				return errors.New(errors.ErrCodeInvalidSlug, "invalid slug %q (want 16 lowercase hex characters)", s)
			}

			cfg, root, err := c.loadConfig()
			if err != nil {
				return err
			}
			paths.apply(&cfg.Paths)
			graphsDir := cfg.Paths.Resolve(root).GraphsDir
			return c.runRender(cmd.Context(), pipeline.GraphPath(graphsDir, s), s, format, opts)
		},
	}

	paths.registerGraphs(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, - for stdout (default: <slug>.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg, dot, pdf, png")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show entity type, community and relationship labels")
	cmd.Flags().BoolVar(&opts.leftToRight, "lr", false, "lay the graph out left to right")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "scale factor for png output")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, path, s string, format render.Format, opts renderOpts) error {
	if err := errors.RequireFile("graph", path); err != nil {
		return err
	}
	doc, err := graphml.ReadFile(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	c.Logger.Info("Loaded graph", "slug", s, "nodes", len(doc.Nodes), "edges", len(doc.Edges))

	data, err := renderGraph(ctx, doc, format, opts)
	if err != nil {
		return err
	}

	out := opts.output
	if out == "" {
		out = fmt.Sprintf("%s.%s", s, format)
	}
	if out == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	printSuccess("Rendered %s", s)
	printFile(out)
	return nil
}

// renderGraph produces the bytes of one output format.
func renderGraph(ctx context.Context, doc *graphml.Document, format render.Format, opts renderOpts) ([]byte, error) {
	dot := nodelink.ToDOT(doc, nodelink.Options{Detailed: opts.detailed, LeftToRight: opts.leftToRight})
	if format == render.FormatDOT {
		return []byte(dot), nil
	}

	spinner := newSpinnerWithContext(ctx, "Laying out graph...")
	spinner.Start()
	svg, err := nodelink.RenderSVG(ctx, dot)
	spinner.Stop()
	if err != nil {
		return nil, err
	}
	loggerFromContext(ctx).Debug("rendered svg", "bytes", len(svg))

	switch format {
	case render.FormatPDF:
		return render.ToPDF(ctx, svg)
	case render.FormatPNG:
		return render.ToPNG(ctx, svg, opts.scale)
	}
	return svg, nil
}
