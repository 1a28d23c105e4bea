package options

// Dominators computes and displays the dominator tree of a binary's call graph
type Dominators struct {
	common

	maxDepth *uint32
	maxRows  *uint32
}

// NewDominators returns a Dominators with every field at its default
func NewDominators() *Dominators {
	return &Dominators{common: newCommon()}
}

// MaxDepth returns the maximum depth of the tree to print
func (d Dominators) MaxDepth() uint32 {
	return bound(d.maxDepth)
}

// SetMaxDepth sets the maximum depth of the tree to print
func (d *Dominators) SetMaxDepth(n uint32) {
	d.maxDepth = &n
}

// MaxRows returns the maximum number of rows to display, regardless of depth
func (d Dominators) MaxRows() uint32 {
	return bound(d.maxRows)
}

// SetMaxRows sets the maximum number of rows to display, regardless of depth
func (d *Dominators) SetMaxRows(n uint32) {
	d.maxRows = &n
}
