package ui

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/charmbracelet/lipgloss"
)

// renderPreview converts image bytes into a block of half-block cells.
// Each terminal cell carries two vertically stacked pixels: the upper in
// the foreground color of "▀", the lower in its background. Undecodable
// bytes render as nothing; the pipeline normally substitutes its
// placeholder before that can happen.
func renderPreview(data []byte, maxWidth, maxHeight int) string {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return ""
	}
	if maxWidth < 2 || maxHeight < 2 {
		return ""
	}

	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 {
		return ""
	}

	// Terminal cells are roughly twice as tall as wide; with two pixels
	// per cell vertically, a square image maps to width x width/2 cells.
	cols := maxWidth
	rows := cols * srcH / (srcW * 2)
	if rows > maxHeight {
		rows = maxHeight
		cols = rows * 2 * srcW / srcH
	}
	if cols < 1 || rows < 1 {
		return ""
	}

	var b strings.Builder
	for row := 0; row < rows; row++ {
		b.WriteString(" ")
		for col := 0; col < cols; col++ {
			upper := samplePixel(img, bounds, col, row*2, cols, rows*2)
			lower := samplePixel(img, bounds, col, row*2+1, cols, rows*2)
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(upper)).
				Background(lipgloss.Color(lower))
			b.WriteString(style.Render("▀"))
		}
		if row < rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// samplePixel nearest-neighbor samples the source image at the given
// destination coordinate and returns a hex color string.
func samplePixel(img image.Image, bounds image.Rectangle, x, y, dstW, dstH int) string {
	srcX := bounds.Min.X + x*bounds.Dx()/dstW
	srcY := bounds.Min.Y + y*bounds.Dy()/dstH
	r, g, b, _ := img.At(srcX, srcY).RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
