// Package render turns exported knowledge graphs into pictures.
//
// The [nodelink] subpackage builds Graphviz DOT source from a GraphML
// document and renders it to SVG. [ToPDF] and [ToPNG] convert that SVG
// further with the external rsvg-convert tool (from librsvg).
//
//	doc, err := graphml.ReadFile(path)
//	dot := nodelink.ToDOT(doc, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := render.ToPNG(ctx, svg, 2.0)
//
// [nodelink]: github.com/matzehuels/benchorder/pkg/render/nodelink
package render
