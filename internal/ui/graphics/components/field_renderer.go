package components

import (
	"image/color"

	"github.com/Link87/snake/internal/domain"
	"github.com/Link87/snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FieldRenderer draws a field and its entities into a rectangular area of
// the screen.
type FieldRenderer struct {
	Scheme types.ColorScheme

	areaX, areaY float64
	tile         float64
	offset       domain.Offset
}

func NewFieldRenderer() *FieldRenderer {
	return &FieldRenderer{
		Scheme: types.DefaultScheme(),
	}
}

// CalculateLayout fits the field into the area at (x, y) of size w x h,
// keeping a one tile margin around it.
func (fr *FieldRenderer) CalculateLayout(x, y, w, h int, field *domain.Field) {
	if field == nil {
		return
	}

	fr.areaX = float64(x)
	fr.areaY = float64(y)
	fr.tile = field.TileDimension(float64(w), float64(h))
	fr.offset = field.DrawingOffset(float64(w), float64(h))
}

func (fr *FieldRenderer) TileSize() float64 {
	return fr.tile
}

func (fr *FieldRenderer) DrawField(screen *ebiten.Image, field *domain.Field) {
	if field == nil || fr.tile <= 0 {
		return
	}

	x := float32(fr.areaX + fr.offset.X)
	y := float32(fr.areaY + fr.offset.Y)
	w := float32(fr.tile * float64(field.Width))
	h := float32(fr.tile * float64(field.Height))

	vector.DrawFilledRect(screen, x, y, w, h, fr.Scheme.Background, false)
	vector.StrokeRect(screen, x-1, y-1, w+2, h+2, 1, types.ColorGrid, false)
}

// DrawEntities draws every entity in the colour of its kind. Later entities
// paint over earlier ones.
func (fr *FieldRenderer) DrawEntities(screen *ebiten.Image, entities []domain.Entity) {
	for _, e := range entities {
		switch v := e.(type) {
		case *domain.Snake:
			fr.drawSnake(screen, v)
		case *domain.Treat:
			fr.drawTreat(screen, v)
		case *domain.Wall:
			fr.drawTiles(screen, v.Tiles(), fr.Scheme.Walls, 0)
		case nil:
		default:
			fr.drawTiles(screen, e.Tiles(), types.ColorTextDim, 0)
		}
	}
}

func (fr *FieldRenderer) drawSnake(screen *ebiten.Image, snake *domain.Snake) {
	if snake == nil {
		return
	}

	tiles := snake.Tiles()
	if len(tiles) == 0 {
		return
	}
	fr.drawTiles(screen, tiles[1:], fr.Scheme.Player, 1)
	fr.drawTiles(screen, tiles[:1], types.Darken(fr.Scheme.Player, 0.7), 1)
}

func (fr *FieldRenderer) drawTreat(screen *ebiten.Image, treat *domain.Treat) {
	if treat == nil {
		return
	}
	fr.drawTiles(screen, treat.Tiles(), fr.Scheme.Treat, float32(fr.tile)/4)
}

func (fr *FieldRenderer) drawTiles(screen *ebiten.Image, tiles []domain.Tile, c color.RGBA, padding float32) {
	size := float32(fr.tile) - padding*2
	if size <= 0 {
		size = float32(fr.tile)
		padding = 0
	}

	for _, t := range tiles {
		x := float32(fr.areaX+fr.offset.X+float64(t.X)*fr.tile) + padding
		y := float32(fr.areaY+fr.offset.Y+float64(t.Y)*fr.tile) + padding
		vector.DrawFilledRect(screen, x, y, size, size, c, false)
	}
}
