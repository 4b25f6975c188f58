package tui

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderImage draws img with Unicode half blocks: each terminal cell
// shows two vertically stacked pixels, the top as the foreground of
// "▀" and the bottom as its background. The image is nearest-neighbor
// scaled to the largest size that fits maxWidth x maxHeight cells while
// preserving its aspect ratio.
func renderImage(img image.Image, maxWidth, maxHeight int) string {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 || maxWidth <= 0 || maxHeight <= 0 {
		return ""
	}

	// The pixel canvas is one pixel wide and two pixels tall per cell.
	pw, ph := fit(b.Dx(), b.Dy(), maxWidth, 2*maxHeight)
	if ph%2 == 1 {
		ph++
	}

	// Teletext rasters use a handful of colors, so caching styles per
	// pixel pair keeps the render cheap.
	styles := make(map[[2]string]lipgloss.Style)

	var sb strings.Builder
	for y := 0; y < ph; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < pw; x++ {
			pair := [2]string{
				hexAt(img, x, y, pw, ph),
				hexAt(img, x, y+1, pw, ph),
			}
			style, ok := styles[pair]
			if !ok {
				style = lipgloss.NewStyle().
					Foreground(lipgloss.Color(pair[0])).
					Background(lipgloss.Color(pair[1]))
				styles[pair] = style
			}
			sb.WriteString(style.Render("▀"))
		}
	}

	return sb.String()
}

// fit scales (srcW, srcH) down or up to the largest size that fits
// within (maxW, maxH) with the aspect ratio preserved.
func fit(srcW, srcH, maxW, maxH int) (int, int) {
	w := maxW
	h := w * srcH / srcW
	if h > maxH {
		h = maxH
		w = h * srcW / srcH
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// hexAt nearest-neighbor samples the source pixel behind canvas
// coordinates (x, y) on a pw x ph canvas.
func hexAt(img image.Image, x, y, pw, ph int) string {
	b := img.Bounds()
	srcX := b.Min.X + x*b.Dx()/pw
	srcY := b.Min.Y + y*b.Dy()/ph
	r, g, bl, _ := img.At(srcX, srcY).RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(bl>>8))
}
