package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Format is an output format of the render command.
type Format string

const (
	FormatSVG Format = "svg"
	FormatDOT Format = "dot"
	FormatPDF Format = "pdf"
	FormatPNG Format = "png"
)

// Formats lists the supported formats in help order.
var Formats = []Format{FormatSVG, FormatDOT, FormatPDF, FormatPNG}

// ParseFormat resolves a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want svg, dot, pdf or png)", s)
}

// NeedsRSVG reports whether the format is produced by rsvg-convert.
func (f Format) NeedsRSVG() bool {
	return f == FormatPDF || f == FormatPNG
}

// ToPDF converts SVG bytes to PDF using rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return rsvgConvert(ctx, svg, "pdf")
}

// ToPNG converts SVG bytes to PNG using rsvg-convert with the given scale factor.
// Scale of 2.0 produces a 2x resolution image.
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = 1
	}
	return rsvgConvert(ctx, svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

func rsvgConvert(ctx context.Context, svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, fmt.Errorf("%s export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.CommandContext(ctx, "rsvg-convert", args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("rsvg-convert: %v: %s", err, strings.TrimSpace(errBuf.String()))
	}
	return out.Bytes(), nil
}
