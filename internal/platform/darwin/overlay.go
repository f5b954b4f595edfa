//go:build darwin

package darwin

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/coreframe/macui-agent/internal/model"
)

// drawHighlight overlays a single rectangle-plus-label annotation on img for
// the element whose frame is frame, in image coordinates already relative to
// the captured origin and scaled to pixel space. Adapted from the prior
// per-element coordinate-label overlay (cmd/screenshot_coords_draw.go),
// which annotated every element in a full-tree dump; /screenshot has no
// equivalent multi-element debug mode, so this keeps only the single
// highlight-one-element path the HighlightPath option asks for.
func drawHighlight(img image.Image, frame model.ElementFrame, originX, originY, scale float64) image.Image {
	rgba := toRGBA(img)

	x := int((frame.X - originX) * scale)
	y := int((frame.Y - originY) * scale)
	w := int(frame.Width * scale)
	h := int(frame.Height * scale)

	boxColor := color.RGBA{R: 255, G: 0, B: 0, A: 200}
	textColor := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	outlineColor := color.RGBA{R: 0, G: 0, B: 0, A: 200}

	drawRect(rgba, x, y, x+w, y+h, boxColor)

	cx, cy := x+w/2, y-8
	if cy < 8 {
		cy = y + h + 8
	}
	label := fmt.Sprintf("(%.0f,%.0f)", frame.X+frame.Width/2, frame.Y+frame.Height/2)
	drawLabel(rgba, label, cx, cy, textColor, outlineColor)

	return rgba
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	return rgba
}

func drawRect(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	b := img.Bounds()
	if x1 < b.Min.X {
		x1 = b.Min.X
	}
	if y1 < b.Min.Y {
		y1 = b.Min.Y
	}
	if x2 > b.Max.X {
		x2 = b.Max.X
	}
	if y2 > b.Max.Y {
		y2 = b.Max.Y
	}
	if x2 <= x1 || y2 <= y1 {
		return
	}
	for x := x1; x < x2; x++ {
		img.Set(x, y1, c)
		img.Set(x, y2-1, c)
	}
	for y := y1; y < y2; y++ {
		img.Set(x1, y, c)
		img.Set(x2-1, y, c)
	}
}

func drawLabel(img *image.RGBA, text string, x, y int, textColor, outlineColor color.Color) {
	width := len(text) * 7
	offsetX := x - width/2
	offsetY := y - 6

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			drawString(img, text, offsetX+dx, offsetY+dy, outlineColor)
		}
	}
	drawString(img, text, offsetX, offsetY, textColor)
}

func drawString(img *image.RGBA, text string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
