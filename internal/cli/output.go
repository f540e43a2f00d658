package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/giftcircle/pkg/circle"
	gcerrors "github.com/matzehuels/giftcircle/pkg/errors"
	gio "github.com/matzehuels/giftcircle/pkg/io"
	"github.com/matzehuels/giftcircle/pkg/render"
)

// Diagram formats rendered through Graphviz.
const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
	formatPDF = "pdf"
)

var diagramFormats = []string{formatDOT, formatSVG, formatPNG, formatPDF}

// outputFormats lists every value accepted by --format.
func outputFormats() []string {
	var names []string
	for _, f := range gio.Formats {
		names = append(names, f.String())
	}
	return append(names, diagramFormats...)
}

// parseOutputFormat normalizes a --format value.
func parseOutputFormat(s string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, f := range diagramFormats {
		if name == f {
			return name, nil
		}
	}
	f, err := gio.ParseFormat(name)
	if err != nil {
		return "", gcerrors.New(gcerrors.ErrCodeInvalidFormat,
			"unknown output format %q (want one of %s)", s, strings.Join(outputFormats(), ", "))
	}
	return f.String(), nil
}

// writeResult encodes res in format to w.
func writeResult(ctx context.Context, w io.Writer, format string, res *circle.Result) error {
	switch format {
	case formatDOT:
		_, err := io.WriteString(w, render.ToDOT(res.Circle))
		return err
	case formatSVG, formatPNG, formatPDF:
		data, err := renderDiagram(ctx, format, res.Circle)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	f, err := gio.ParseFormat(format)
	if err != nil {
		return err
	}
	return gio.Write(w, f, res)
}

func renderDiagram(ctx context.Context, format string, people []circle.Participant) ([]byte, error) {
	svg, err := render.RenderSVG(ctx, people)
	if err != nil {
		return nil, err
	}
	switch format {
	case formatPNG:
		return render.ToPNG(ctx, svg, 2.0)
	case formatPDF:
		return render.ToPDF(ctx, svg)
	}
	return svg, nil
}

// writeOutput writes res to path, or to stdout when path is empty.
func (c *CLI) writeOutput(ctx context.Context, path, format string, res *circle.Result) error {
	if path == "" {
		return writeResult(ctx, c.Stdout, format, res)
	}
	if err := gcerrors.ValidateOutputPath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := writeResult(ctx, f, format, res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
