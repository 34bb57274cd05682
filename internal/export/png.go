// Package export rasterises plot draw commands into images.
package export

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/vovakirdan/graphdraw/internal/core"
	"github.com/vovakirdan/graphdraw/internal/plot"
)

// ImageSurface is a plot.Surface drawing onto an RGBA image. Lines are
// filled as antialiased quads; text uses a fixed 7x13 bitmap face.
type ImageSurface struct {
	img  *image.RGBA
	face font.Face
	r    *vector.Rasterizer
}

// NewImageSurface creates a surface over a new white image of the given size.
func NewImageSurface(width, height int) *ImageSurface {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(core.ColorWhite), image.Point{}, draw.Src)
	return &ImageSurface{
		img:  img,
		face: basicfont.Face7x13,
		r:    vector.NewRasterizer(width, height),
	}
}

// Image returns the image drawn so far.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Line implements plot.Surface.
func (s *ImageSurface) Line(from, to plot.ScreenPoint, c core.Color, width float64) {
	b := s.img.Bounds()
	// Clip with a stroke-width allowance so caps at the edge still render.
	pad := width
	x0, y0, x1, y1, ok := core.ClipLine(from.X, from.Y, to.X, to.Y,
		-pad, -pad, float64(b.Dx())+pad, float64(b.Dy())+pad)
	if !ok {
		return
	}

	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2

	s.r.Reset(b.Dx(), b.Dy())
	s.r.DrawOp = draw.Over
	s.r.MoveTo(float32(x0+nx), float32(y0+ny))
	s.r.LineTo(float32(x1+nx), float32(y1+ny))
	s.r.LineTo(float32(x1-nx), float32(y1-ny))
	s.r.LineTo(float32(x0-nx), float32(y0-ny))
	s.r.ClosePath()
	s.r.Draw(s.img, b, image.NewUniform(c), image.Point{})
}

// Text implements plot.Surface. The anchor is the top-left corner of the
// text; the bitmap face ignores the requested font size.
func (s *ImageSurface) Text(str string, at plot.ScreenPoint, _ plot.Font, c core.Color) {
	if math.IsNaN(at.X) || math.IsNaN(at.Y) {
		return
	}
	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c),
		Face: s.face,
		Dot:  fixed.P(int(math.Round(at.X)), int(math.Round(at.Y))+s.face.Metrics().Ascent.Round()),
	}
	d.DrawString(str)
}

// Render draws the plot for cfg into a new image sized to vp.
func Render(cfg plot.Config, vp plot.Viewport) *image.RGBA {
	s := NewImageSurface(vp.Width, vp.Height)
	plot.Render(s, cfg, vp)
	return s.Image()
}

// WritePNG renders the plot and encodes it as PNG to w.
func WritePNG(w io.Writer, cfg plot.Config, vp plot.Viewport) error {
	if vp.Width <= 0 || vp.Height <= 0 {
		return fmt.Errorf("export: invalid image size %dx%d", vp.Width, vp.Height)
	}
	if err := png.Encode(w, Render(cfg, vp)); err != nil {
		return fmt.Errorf("export: cannot encode png: %w", err)
	}
	return nil
}

// SavePNG renders the plot into a PNG file at path.
func SavePNG(path string, cfg plot.Config, vp plot.Viewport) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: cannot create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export: cannot close %s: %w", path, cerr)
		}
	}()

	return WritePNG(f, cfg, vp)
}
