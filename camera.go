package minicore

// Camera maps world coordinates to camera (view) coordinates.
type Camera interface {
	MapToCamera(x, y float32) (float32, float32)
}

// ViewCamera is a w x h window into a world of maxX x maxY units.
// The window is centered on its position and never leaves the world.
type ViewCamera struct {
	w, h       float32
	w2, h2     float32
	x, y       float32
	maxX, maxY float32
}

var _ Camera = (*ViewCamera)(nil)

// NewViewCamera creates a camera of size w x h centered at (x, y).
func NewViewCamera(w, h, x, y, maxX, maxY float32) *ViewCamera {
	c := &ViewCamera{
		w:    w,
		h:    h,
		w2:   w / 2,
		h2:   h / 2,
		maxX: maxX,
		maxY: maxY,
	}
	c.SetPos(x, y)
	return c
}

// SetPos centers the camera at (x, y), clamped so the view stays inside the
// world. A world smaller than the view pins the view to the origin.
func (c *ViewCamera) SetPos(x, y float32) {
	c.x = max(clampf(x, c.w2, c.maxX-c.w2), c.w2)
	c.y = max(clampf(y, c.h2, c.maxY-c.h2), c.h2)
}

// Pos returns the (clamped) center of the camera.
func (c *ViewCamera) Pos() (x, y float32) {
	return c.x, c.y
}

// Size returns the view size.
func (c *ViewCamera) Size() (w, h float32) {
	return c.w, c.h
}

// MapToCamera translates world coordinates so that the bottom-left corner of
// the view is the origin. A nil camera returns x, y unchanged.
func (c *ViewCamera) MapToCamera(x, y float32) (float32, float32) {
	if c == nil {
		return x, y
	}
	return x - c.x + c.w2, y - c.y + c.h2
}

// MapFromCamera is the inverse of MapToCamera.
func (c *ViewCamera) MapFromCamera(x, y float32) (float32, float32) {
	return x + c.x - c.w2, y + c.y - c.h2
}

// Bounds returns the visible world rectangle.
func (c *ViewCamera) Bounds() Rect {
	return Rect{X: c.x - c.w2, Y: c.y - c.h2, W: c.w, H: c.h}
}

// IsVisible reports whether r overlaps the view.
func (c *ViewCamera) IsVisible(r Rect) bool {
	return c.Bounds().Intersects(r)
}
