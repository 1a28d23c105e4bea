// Package hostapi exposes the mode configurations to an embedding host as
// objects with named methods taking loosely typed arguments.
//
// Hosts such as a JavaScript runtime pass numbers as float64 and cannot
// hand over a whole list in one call, so Paths offers addFunction rather
// than a functions setter. Argument coercion lives here; the options types
// know nothing about it.
package hostapi

import (
	"fmt"
	"sort"

	"github.com/ethanolivertroy/sizeprof/internal/options"
)

// Method is a host-callable operation
type Method func(args ...any) (any, error)

// Object is one mode configuration as seen by the host
type Object struct {
	kind    string
	methods map[string]Method
	command func() (options.Command, error)
}

// Constructors returns the zero-argument constructors keyed by host name
func Constructors() map[string]func() *Object {
	return map[string]func() *Object{
		"Top":        NewTop,
		"Dominators": NewDominators,
		"Paths":      NewPaths,
	}
}

// Kind returns the mode name, e.g. "top"
func (o *Object) Kind() string {
	return o.kind
}

// Methods returns the method names in sorted order
func (o *Object) Methods() []string {
	names := make([]string, 0, len(o.methods))
	for name := range o.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call invokes the named method
func (o *Object) Call(name string, args ...any) (any, error) {
	m, ok := o.methods[name]
	if !ok {
		return nil, fmt.Errorf("%s has no method %q", o.kind, name)
	}
	return m(args...)
}

// Command validates the configuration and wraps a copy of it
func (o *Object) Command() (options.Command, error) {
	return o.command()
}

func newObject(kind string, c commonTarget, command func() (options.Command, error)) *Object {
	o := &Object{
		kind:    kind,
		methods: make(map[string]Method),
		command: command,
	}
	o.bindCommon(c)
	return o
}

type commonTarget interface {
	Input() string
	SetInput(string)
	OutputDestination() options.OutputDestination
	SetOutputDestination(options.OutputDestination)
	OutputFormat() options.OutputFormat
	SetOutputFormat(options.OutputFormat) error
}

func (o *Object) bindCommon(c commonTarget) {
	o.getter("input", func() any { return c.Input() })
	o.methods["setInput"] = stringSetter("setInput", c.SetInput)
	o.getter("outputDestination", func() any { return c.OutputDestination().String() })
	o.methods["setOutputDestination"] = stringSetter("setOutputDestination", func(s string) {
		c.SetOutputDestination(options.ParseOutputDestination(s))
	})
	o.getter("outputFormat", func() any { return c.OutputFormat().String() })
	o.methods["setOutputFormat"] = func(args ...any) (any, error) {
		s, err := stringArg("setOutputFormat", args)
		if err != nil {
			return nil, err
		}
		f, err := options.ParseOutputFormat(s)
		if err != nil {
			return nil, err
		}
		return nil, c.SetOutputFormat(f)
	}
}

func (o *Object) getter(name string, get func() any) {
	o.methods[name] = func(args ...any) (any, error) {
		if err := arity(name, args, 0); err != nil {
			return nil, err
		}
		return get(), nil
	}
}

// NewTop returns a host object around options.NewTop
func NewTop() *Object {
	t := options.NewTop()
	o := newObject("top", t, func() (options.Command, error) {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		return options.TopCommand(t), nil
	})
	o.getter("number", func() any { return t.Number() })
	o.methods["setNumber"] = uintSetter("setNumber", t.SetNumber)
	o.getter("retainingPaths", func() any { return t.RetainingPaths() })
	o.methods["setRetainingPaths"] = boolSetter("setRetainingPaths", t.SetRetainingPaths)
	o.getter("retained", func() any { return t.Retained() })
	o.methods["setRetained"] = boolSetter("setRetained", t.SetRetained)
	return o
}

// NewDominators returns a host object around options.NewDominators
func NewDominators() *Object {
	d := options.NewDominators()
	o := newObject("dominators", d, func() (options.Command, error) {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		return options.DominatorsCommand(d), nil
	})
	o.getter("maxDepth", func() any { return d.MaxDepth() })
	o.methods["setMaxDepth"] = uintSetter("setMaxDepth", d.SetMaxDepth)
	o.getter("maxRows", func() any { return d.MaxRows() })
	o.methods["setMaxRows"] = uintSetter("setMaxRows", d.SetMaxRows)
	return o
}

// NewPaths returns a host object around options.NewPaths
func NewPaths() *Object {
	p := options.NewPaths()
	o := newObject("paths", p, func() (options.Command, error) {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		return options.PathsCommand(p), nil
	})
	o.methods["addFunction"] = stringSetter("addFunction", p.AddFunction)
	o.getter("maxDepth", func() any { return p.MaxDepth() })
	o.methods["setMaxDepth"] = uintSetter("setMaxDepth", p.SetMaxDepth)
	o.getter("maxPaths", func() any { return p.MaxPaths() })
	o.methods["setMaxPaths"] = uintSetter("setMaxPaths", p.SetMaxPaths)
	return o
}
