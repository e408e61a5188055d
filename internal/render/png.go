package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/samdwyer/daedalus/internal/grid"
	"github.com/samdwyer/daedalus/internal/presets"
	"github.com/samdwyer/daedalus/internal/world"
)

// ErrInvalidScale is returned when a bitmap is requested with a scale below 1.
var ErrInvalidScale = errors.New("render: scale must be at least 1")

// Image draws the map with every cell as a scale x scale square.
func Image(m *world.Map, p *presets.Palette, scale int) (*image.RGBA, error) {
	if scale < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidScale, scale)
	}

	img := image.NewRGBA(image.Rect(0, 0, m.Width()*scale, m.Height()*scale))
	m.Each(func(c grid.Cell, x, y int) {
		r, g, b := CellColor(m, p, c, true).RGB()
		fill := color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xFF}
		for py := y * scale; py < (y+1)*scale; py++ {
			for px := x * scale; px < (x+1)*scale; px++ {
				img.SetRGBA(px, py, fill)
			}
		}
	})
	return img, nil
}

// PNG encodes the map as a PNG image to w.
func PNG(w io.Writer, m *world.Map, p *presets.Palette, scale int) error {
	img, err := Image(m, p, scale)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}
