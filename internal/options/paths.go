package options

const (
	// DefaultPathsMaxDepth is the default maximum depth of a printed call path
	DefaultPathsMaxDepth uint32 = 10
	// DefaultPathsMaxPaths is the default maximum number of paths displayed
	DefaultPathsMaxPaths uint32 = 10
)

// Paths finds and displays the call paths to functions in a binary's call graph
type Paths struct {
	common

	functions []string
	maxDepth  uint32
	maxPaths  uint32
}

// NewPaths returns a Paths with every field at its default
func NewPaths() *Paths {
	return &Paths{
		common:   newCommon(),
		maxDepth: DefaultPathsMaxDepth,
		maxPaths: DefaultPathsMaxPaths,
	}
}

// Functions returns a copy of the functions to find call paths to, in the order added
func (p Paths) Functions() []string {
	out := make([]string, len(p.functions))
	copy(out, p.functions)
	return out
}

// AddFunction appends a function to find call paths to
func (p *Paths) AddFunction(name string) {
	p.functions = append(p.functions, name)
}

// MaxDepth returns the maximum depth of the paths to print
func (p Paths) MaxDepth() uint32 {
	return p.maxDepth
}

// SetMaxDepth sets the maximum depth of the paths to print
func (p *Paths) SetMaxDepth(n uint32) {
	p.maxDepth = n
}

// MaxPaths returns the maximum number of paths to display, regardless of depth
func (p Paths) MaxPaths() uint32 {
	return p.maxPaths
}

// SetMaxPaths sets the maximum number of paths to display, regardless of depth
func (p *Paths) SetMaxPaths(n uint32) {
	p.maxPaths = n
}
