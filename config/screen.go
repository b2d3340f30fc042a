package config

// Screen layout configuration
const (
	// Viewport dimensions in pixels; one map unit is one pixel
	ScreenWidth  = 640
	ScreenHeight = 480

	// The followed entity is drawn this far from the top of the viewport
	FollowOffsetY = ScreenHeight / 3

	// Height of the status strip drawn over the slope
	StatusHeight = 16
)

// GetScreenDimensions returns the screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return ScreenWidth, ScreenHeight
}

// GetWindowSize returns the recommended window size (may be different from actual screen dimensions)
func GetWindowSize() (width, height int) {
	return ScreenWidth * 2, ScreenHeight * 2
}
