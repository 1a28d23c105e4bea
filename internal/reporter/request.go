package reporter

import (
	"strconv"

	"github.com/ethanolivertroy/sizeprof/internal/options"
)

// Request is a flattened view of a resolved command
type Request struct {
	Mode      string
	Input     string
	Output    string
	Format    string
	Functions []string
	Settings  []Setting
}

// Setting is one mode-specific parameter and its effective value
type Setting struct {
	Name  string
	Value string
}

func uintSetting(name string, v uint32) Setting {
	return Setting{Name: name, Value: strconv.FormatUint(uint64(v), 10)}
}

func boolSetting(name string, v bool) Setting {
	return Setting{Name: name, Value: strconv.FormatBool(v)}
}

// FromTop builds the request for a top run
func FromTop(t options.Top) Request {
	return Request{
		Mode:   t.Name(),
		Input:  t.Input(),
		Output: t.OutputDestination().String(),
		Format: t.OutputFormat().String(),
		Settings: []Setting{
			uintSetting("number", t.Number()),
			boolSetting("retaining_paths", t.RetainingPaths()),
			boolSetting("retained", t.Retained()),
		},
	}
}

// FromDominators builds the request for a dominators run
func FromDominators(d options.Dominators) Request {
	return Request{
		Mode:   d.Name(),
		Input:  d.Input(),
		Output: d.OutputDestination().String(),
		Format: d.OutputFormat().String(),
		Settings: []Setting{
			uintSetting("max_depth", d.MaxDepth()),
			uintSetting("max_rows", d.MaxRows()),
		},
	}
}

// FromPaths builds the request for a paths run
func FromPaths(p options.Paths) Request {
	return Request{
		Mode:      p.Name(),
		Input:     p.Input(),
		Output:    p.OutputDestination().String(),
		Format:    p.OutputFormat().String(),
		Functions: p.Functions(),
		Settings: []Setting{
			uintSetting("max_depth", p.MaxDepth()),
			uintSetting("max_paths", p.MaxPaths()),
		},
	}
}
