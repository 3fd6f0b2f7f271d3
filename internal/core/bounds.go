package core

// Bounds reports the current play-area size in world units.
// The size may change between ticks (terminal resize).
type Bounds interface {
	Size() (w, h float64)
}

// FixedBounds is a Bounds with a constant size.
type FixedBounds struct {
	W, H float64
}

// Size implements Bounds.
func (b FixedBounds) Size() (float64, float64) {
	return b.W, b.H
}

// CellBounds derives the play area from a terminal size in cells.
// Each column spans UnitsPerCol world units and each row UnitsPerRow.
type CellBounds struct {
	Cols, Rows  int
	UnitsPerCol float64
	UnitsPerRow float64
}

// Size implements Bounds.
func (b *CellBounds) Size() (float64, float64) {
	return float64(b.Cols) * b.UnitsPerCol, float64(b.Rows) * b.UnitsPerRow
}

// ToCell converts a world position to a screen cell.
func (b *CellBounds) ToCell(p Vec2) (int, int) {
	if b.UnitsPerCol <= 0 || b.UnitsPerRow <= 0 {
		return 0, 0
	}
	return int(p.X / b.UnitsPerCol), int(p.Y / b.UnitsPerRow)
}
