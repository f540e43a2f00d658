// Package render draws gift circles as Graphviz diagrams.
//
// [ToDOT] lays the circle out as a ring (circo engine) with one node per
// participant and one edge from each giver to their recipient. Nodes share
// a fill colour when they share a group, so a correct grouped draw never
// shows an arrow between two nodes of the same colour.
//
//	dot := render.ToDOT(res.Circle)
//	svg, err := render.RenderSVG(ctx, res.Circle)
//
// [ToPDF] and [ToPNG] convert the SVG with the external rsvg-convert tool
// (from librsvg).
package render
