package entity

import "math/rand"

// Viewport is the map <-> canvas transform anchored on the followed entity.
// The renderer owns it; behaviors only read from it.
type Viewport interface {
	MapToCanvas(x, y float64) (cx, cy float64)
	CanvasToMap(cx, cy float64) (x, y float64)
	// MapBelowViewport is the map y of the bottom edge of the visible area
	MapBelowViewport() float64
	// RandomMapPositionAboveViewport picks a point just out of sight uphill
	RandomMapPositionAboveViewport(rng *rand.Rand) (x, y float64)
	// RandomCentreMapX picks a map x in the middle of the visible span
	RandomCentreMapX(rng *rand.Rand) float64
}
