package hal

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title string
	// Scale multiplies the framebuffer size to get the initial window size.
	Scale float64
	// Floating keeps the window above other windows.
	Floating bool
	// TPS is the frame rate the step function is called at.
	TPS int
}

func (c WindowConfig) withDefaults() WindowConfig {
	if c.Title == "" {
		c.Title = "spiro"
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	return c
}
