// Package profile loads per-mode default overrides from a TOML file.
//
// A profile sits between the built-in defaults and explicit command-line
// flags:
//
//	[top]
//	format = "json"
//	number = 25
//
//	[paths]
//	max_depth = 5
//
// Every value is applied through the options mutators, so format validation
// and unset-limit handling behave exactly as they do for flags.
package profile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ethanolivertroy/sizeprof/internal/options"
)

// Profile is the decoded contents of a profile file
type Profile struct {
	Top        TopSection        `toml:"top"`
	Dominators DominatorsSection `toml:"dominators"`
	Paths      PathsSection      `toml:"paths"`
}

// Output holds the settings every mode section accepts
type Output struct {
	Output *string `toml:"output"`
	Format *string `toml:"format"`
}

// TopSection overrides Top defaults
type TopSection struct {
	Output
	Number         *uint32 `toml:"number"`
	RetainingPaths *bool   `toml:"retaining_paths"`
	Retained       *bool   `toml:"retained"`
}

// DominatorsSection overrides Dominators defaults
type DominatorsSection struct {
	Output
	MaxDepth *uint32 `toml:"max_depth"`
	MaxRows  *uint32 `toml:"max_rows"`
}

// PathsSection overrides Paths defaults
type PathsSection struct {
	Output
	MaxDepth *uint32 `toml:"max_depth"`
	MaxPaths *uint32 `toml:"max_paths"`
}

// Load reads and decodes the profile at path. Keys the profile does not
// know about are an error.
func Load(path string) (*Profile, error) {
	var p Profile
	md, err := toml.DecodeFile(path, &p)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	return &p, nil
}

// Decode decodes a profile from TOML text
func Decode(data string) (*Profile, error) {
	var p Profile
	md, err := toml.Decode(data, &p)
	if err != nil {
		return nil, err
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	return &p, nil
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, 0, len(undecoded))
	for _, k := range undecoded {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
}

type outputSetter interface {
	SetOutputDestination(options.OutputDestination)
	SetOutputFormat(options.OutputFormat) error
}

func (o Output) apply(section string, dst outputSetter) error {
	if o.Output != nil {
		dst.SetOutputDestination(options.ParseOutputDestination(*o.Output))
	}
	if o.Format != nil {
		f, err := options.ParseOutputFormat(*o.Format)
		if err != nil {
			return fmt.Errorf("[%s] format: %w", section, err)
		}
		if err := dst.SetOutputFormat(f); err != nil {
			return fmt.Errorf("[%s] format: %w", section, err)
		}
	}
	return nil
}

// ApplyTop applies the [top] section to t
func (p *Profile) ApplyTop(t *options.Top) error {
	s := p.Top
	if err := s.Output.apply("top", t); err != nil {
		return err
	}
	if s.Number != nil {
		t.SetNumber(*s.Number)
	}
	if s.RetainingPaths != nil {
		t.SetRetainingPaths(*s.RetainingPaths)
	}
	if s.Retained != nil {
		t.SetRetained(*s.Retained)
	}
	return nil
}

// ApplyDominators applies the [dominators] section to d
func (p *Profile) ApplyDominators(d *options.Dominators) error {
	s := p.Dominators
	if err := s.Output.apply("dominators", d); err != nil {
		return err
	}
	if s.MaxDepth != nil {
		d.SetMaxDepth(*s.MaxDepth)
	}
	if s.MaxRows != nil {
		d.SetMaxRows(*s.MaxRows)
	}
	return nil
}

// ApplyPaths applies the [paths] section to pa
func (p *Profile) ApplyPaths(pa *options.Paths) error {
	s := p.Paths
	if err := s.Output.apply("paths", pa); err != nil {
		return err
	}
	if s.MaxDepth != nil {
		pa.SetMaxDepth(*s.MaxDepth)
	}
	if s.MaxPaths != nil {
		pa.SetMaxPaths(*s.MaxPaths)
	}
	return nil
}
