package surface

import "errors"

// ErrGeometry is returned when a surface is requested with a non-positive size.
var ErrGeometry = errors.New("surface: invalid geometry")

// Surface is a 2D pixel surface that can be cleared and filled with discs.
type Surface interface {
	SetSize(w, h int)
	Size() (w, h int)
	ClearRect(x, y, w, h float64)
	SetFillColor(c RGBA)
	FillCircle(x, y, r float64)
}
