package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/giftcircle/pkg/circle"
)

// palette holds the group fill colours. Groups beyond its length wrap around.
var palette = []string{
	"#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3",
	"#fdb462", "#b3de69", "#fccde5", "#d9d9d9", "#bc80bd",
}

// GroupColor returns the fill colour used for group g.
func GroupColor(g circle.GroupID) string {
	if !g.Valid() {
		return "white"
	}
	return palette[int(g)%len(palette)]
}

// ToDOT converts a circle to Graphviz DOT. Participants must be in cycle
// order; the edge out of each node points at the next participant, and the
// last participant points back at the first.
func ToDOT(people []circle.Participant) string {
	var buf bytes.Buffer
	buf.WriteString("digraph GiftCircle {\n")
	buf.WriteString("  layout=circo;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=16, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [arrowsize=0.8];\n")
	buf.WriteString("\n")

	for _, p := range people {
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q];\n", p.Name, fmtLabel(p), GroupColor(p.Group))
	}

	buf.WriteString("\n")
	for i, p := range people {
		next := people[(i+1)%len(people)]
		fmt.Fprintf(&buf, "  %q -> %q;\n", p.Name, next.Name)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(p circle.Participant) string {
	if !p.HasGroup() {
		return p.Name
	}
	return p.Name + "\ngroup " + p.Group.String()
}

// RenderSVG renders the circle to SVG using Graphviz.
func RenderSVG(ctx context.Context, people []circle.Participant) ([]byte, error) {
	if len(people) == 0 {
		return nil, fmt.Errorf("render: empty circle")
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.CIRCO)

	g, err := graphviz.ParseBytes([]byte(ToDOT(people)))
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

// normalizeViewBox replaces the Graphviz point-based svg header with one
// sized by the viewBox so the image scales in browsers.
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

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
