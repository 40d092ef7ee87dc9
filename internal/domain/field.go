package domain

import "fmt"

// Field holds the geometry of the board: the number of tiles along each
// axis and the helpers a renderer needs to map tiles onto a canvas.
type Field struct {
	Width  int
	Height int
}

// Offset is a pixel position on the canvas.
type Offset struct {
	X float64
	Y float64
}

func NewField(width, height int) (*Field, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidField, width, height)
	}
	return &Field{
		Width:  width,
		Height: height,
	}, nil
}

func (f *Field) Area() int {
	return f.Width * f.Height
}

func (f *Field) Contains(t Tile) bool {
	return t.X >= 0 && t.X < f.Width && t.Y >= 0 && t.Y < f.Height
}

// Normalize wraps t onto the field, so leaving one edge enters at the
// opposite one.
func (f *Field) Normalize(t Tile) Tile {
	x := t.X % f.Width
	if x < 0 {
		x += f.Width
	}
	y := t.Y % f.Height
	if y < 0 {
		y += f.Height
	}
	return Tile{X: x, Y: y}
}

func (f *Field) Move(t Tile, d Direction) Tile {
	return f.Normalize(t.Add(d.Delta()))
}

// Index is the row-major position of t. t must be on the field.
func (f *Field) Index(t Tile) int {
	return t.Y*f.Width + t.X
}

func (f *Field) TileAt(i int) Tile {
	return Tile{X: i % f.Width, Y: i / f.Width}
}

// TileDimension is the edge length in pixels of one tile such that the
// field plus a one tile border fits the canvas without distortion.
func (f *Field) TileDimension(canvasW, canvasH float64) float64 {
	return min(canvasW/float64(f.Width+2), canvasH/float64(f.Height+2))
}

// DrawingOffset is the canvas position of tile (0,0). The axis that
// limits the tile size keeps a one tile margin for the border, the other
// axis is centered.
func (f *Field) DrawingOffset(canvasW, canvasH float64) Offset {
	dim := f.TileDimension(canvasW, canvasH)
	if canvasW/float64(f.Width+2) <= canvasH/float64(f.Height+2) {
		return Offset{
			X: dim,
			Y: (canvasH - dim*float64(f.Height)) / 2,
		}
	}
	return Offset{
		X: (canvasW - dim*float64(f.Width)) / 2,
		Y: dim,
	}
}
