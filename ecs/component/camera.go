package component

// Camera is the visible window in world space. X and Y are its top-left corner,
// so screen coordinates are world coordinates minus the camera position. Y
// decreases as the view climbs.
type Camera struct {
	X, Y          float64
	Width, Height float64
	LastX, LastY  float64

	// BackgroundOffset scrolls the backdrop, wrapped to [0, Height).
	BackgroundOffset float64
}

// ToScreen converts a world position to screen space.
func (c *Camera) ToScreen(x, y float64) (float64, float64) {
	return x - c.X, y - c.Y
}

// Bottom returns the world y of the bottom edge of the view.
func (c *Camera) Bottom() float64 { return c.Y + c.Height }
