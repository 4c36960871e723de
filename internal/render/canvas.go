package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// canvas wraps the target bitmap with the drawing primitives the
// component painters need. All coordinates are top-left anchored, like
// the layout engine emits them.
type canvas struct {
	img     *image.RGBA
	palette Palette
	face    font.Face
	ascent  int
}

func newCanvas(width, height int, palette Palette, face font.Face) *canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(white), image.Point{}, draw.Src)

	return &canvas{
		img:     img,
		palette: palette,
		face:    face,
		ascent:  face.Metrics().Ascent.Ceil(),
	}
}

func (c *canvas) fillRect(x, y, w, h int, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	draw.Draw(c.img, image.Rect(x, y, x+w, y+h), image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *canvas) strokeRect(x, y, w, h, lineWidth int, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	c.fillRect(x, y, w, lineWidth, col)
	c.fillRect(x, y+h-lineWidth, w, lineWidth, col)
	c.fillRect(x, y, lineWidth, h, col)
	c.fillRect(x+w-lineWidth, y, lineWidth, h, col)
}

// line draws a Bresenham segment, thickened to width pixels.
func (c *canvas) line(x0, y0, x1, y1, width int, col color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		c.fillRect(x0, y0, width, width, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// text draws s with its top-left corner at (x, y).
func (c *canvas) text(x, y int, s string, col color.RGBA) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot:  fixed.P(x, y+c.ascent),
	}
	d.DrawString(s)
}

// textCentered draws s horizontally centered in the span [x, x+w).
func (c *canvas) textCentered(x, y, w int, s string, col color.RGBA) {
	tw := font.MeasureString(c.face, s).Ceil()
	c.text(x+(w-tw)/2, y, s, col)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
