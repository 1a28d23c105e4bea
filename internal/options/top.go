package options

// Top lists the top code size offenders in a binary
type Top struct {
	common

	number         *uint32
	retainingPaths bool
	retained       bool
}

// NewTop returns a Top with every field at its default
func NewTop() *Top {
	return &Top{common: newCommon()}
}

// Number returns the maximum number of items to display
func (t Top) Number() uint32 {
	return bound(t.number)
}

// SetNumber sets the maximum number of items to display
func (t *Top) SetNumber(n uint32) {
	t.number = &n
}

// RetainingPaths reports whether retaining paths are computed and displayed
func (t Top) RetainingPaths() bool {
	return t.retainingPaths
}

// SetRetainingPaths sets whether retaining paths are computed and displayed
func (t *Top) SetRetainingPaths(v bool) {
	t.retainingPaths = v
}

// Retained reports whether items are sorted by retained size rather than shallow size
func (t Top) Retained() bool {
	return t.retained
}

// SetRetained sets whether items are sorted by retained size rather than shallow size
func (t *Top) SetRetained(v bool) {
	t.retained = v
}
