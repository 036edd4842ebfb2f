// Package nodelink renders exported knowledge graphs as node-link diagrams.
//
// Entities appear as rounded boxes filled by community, relationships as
// arrows. Layout and SVG output come from Graphviz (via go-graphviz, so no
// system install is needed for SVG).
//
//	doc, err := graphml.ReadFile(path)
//	dot := nodelink.ToDOT(doc, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// Nodes without a community are left white. Community colours come from a
// fixed palette keyed by the community value, so the same community gets the
// same colour across renders.
package nodelink
