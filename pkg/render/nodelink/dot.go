package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"hash/fnv"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/benchorder/pkg/graphml"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds entity type and community to node labels and the
	// short label to edges. When false, only entity names are shown.
	Detailed bool

	// LeftToRight lays the graph out horizontally.
	LeftToRight bool
}

var palette = []string{
	"#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3", "#fdb462",
	"#b3de69", "#fccde5", "#d9d9d9", "#bc80bd", "#ccebc5", "#ffed6f",
}

// ToDOT converts a GraphML document to Graphviz DOT source.
func ToDOT(doc *graphml.Document, opts Options) string {
	rankdir := "TB"
	if opts.LeftToRight {
		rankdir = "LR"
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=10, color=\"#555555\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range doc.Nodes {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(nodeAttrs(n, opts.Detailed), ", "))
	}

	buf.WriteString("\n")
	for _, e := range doc.Edges {
		attrs := edgeAttrs(e, opts.Detailed)
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.Source, e.Target)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.Source, e.Target, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n graphml.DocNode, detailed bool) []string {
	label := n.Label
	if label == "" {
		label = n.ID
	}
	if detailed {
		var parts []string
		if n.Type != "" {
			parts = append(parts, "type: "+n.Type)
		}
		if n.Community != "" {
			parts = append(parts, "community: "+n.Community)
		}
		if len(parts) > 0 {
			label += "\n" + strings.Join(parts, "\n")
		}
	}

	attrs := []string{fmt.Sprintf("label=%q", label)}
	if c := communityColor(n.Community); c != "" {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", c))
	}
	if n.Description != "" {
		attrs = append(attrs, fmt.Sprintf("tooltip=%q", n.Description))
	}
	return attrs
}

func edgeAttrs(e graphml.DocEdge, detailed bool) []string {
	var attrs []string
	if detailed && e.Label != "" {
		attrs = append(attrs, fmt.Sprintf("label=%q", e.Label))
	}
	if e.HasWeight && e.Weight > 0 {
		attrs = append(attrs, "penwidth="+strconv.FormatFloat(penWidth(e.Weight), 'f', 2, 64))
	}
	if e.FullDescription != "" {
		attrs = append(attrs, fmt.Sprintf("tooltip=%q", e.FullDescription))
	}
	return attrs
}

// penWidth maps relationship weight onto a readable stroke range.
func penWidth(w float64) float64 {
	return min(1+w/4, 5)
}

func communityColor(community string) string {
	if community == "" {
		return ""
	}
	h := fnv.New32a()
	h.Write([]byte(community))
	return palette[h.Sum32()%uint32(len(palette))]
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// render.ToPDF or render.ToPNG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root tag so the image scales from its
// origin. The xlink namespace is kept for tooltips.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
