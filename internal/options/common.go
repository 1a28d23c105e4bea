package options

import "math"

// Unbounded is the effective value of a limit that was never set
const Unbounded uint32 = math.MaxUint32

// common holds the fields every mode shares
type common struct {
	input             string
	outputDestination OutputDestination
	outputFormat      OutputFormat
}

func newCommon() common {
	return common{
		outputDestination: Stdout(),
		outputFormat:      DefaultOutputFormat(),
	}
}

// Input returns the path to the binary to profile
func (c common) Input() string {
	return c.input
}

// SetInput sets the path to the binary to profile
func (c *common) SetInput(path string) {
	c.input = path
}

// OutputDestination returns where the report is written
func (c common) OutputDestination() OutputDestination {
	return c.outputDestination
}

// SetOutputDestination sets where the report is written
func (c *common) SetOutputDestination(d OutputDestination) {
	c.outputDestination = d
}

// OutputFormat returns the report format
func (c common) OutputFormat() OutputFormat {
	return c.outputFormat
}

// SetOutputFormat sets the report format. An unrecognized format is
// rejected and the current one kept.
func (c *common) SetOutputFormat(f OutputFormat) error {
	if !f.Valid() {
		return &UnrecognizedFormatError{Token: string(f)}
	}
	c.outputFormat = f
	return nil
}

// Validate checks that the configuration can be handed to an analysis
func (c common) Validate() error {
	if c.input == "" {
		return ErrMissingInput
	}
	if !c.outputFormat.Valid() {
		return &UnrecognizedFormatError{Token: string(c.outputFormat)}
	}
	return nil
}

// bound resolves an optional limit to its effective value
func bound(v *uint32) uint32 {
	if v == nil {
		return Unbounded
	}
	return *v
}
