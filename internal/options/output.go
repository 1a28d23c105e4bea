package options

import "strings"

// StdoutToken is the destination token that selects standard output
const StdoutToken = "-"

// OutputDestination is where a report is written: stdout or a file path.
// The zero value is stdout.
type OutputDestination struct {
	path string
}

// Stdout returns the standard output destination
func Stdout() OutputDestination {
	return OutputDestination{}
}

// File returns a destination naming the file at path. The file is not
// opened or checked here.
func File(path string) OutputDestination {
	return OutputDestination{path: path}
}

// ParseOutputDestination resolves a destination token. It never fails.
func ParseOutputDestination(token string) OutputDestination {
	if token == StdoutToken || token == "" {
		return Stdout()
	}
	return File(token)
}

// IsStdout returns true if output goes to standard output
func (d OutputDestination) IsStdout() bool {
	return d.path == ""
}

// Path returns the file path, or "" for stdout
func (d OutputDestination) Path() string {
	return d.path
}

// String returns the token form of the destination
func (d OutputDestination) String() string {
	if d.IsStdout() {
		return StdoutToken
	}
	return d.path
}

// OutputFormat is a recognized rendering mode
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatCSV  OutputFormat = "csv"
)

var outputFormats = []OutputFormat{OutputFormatText, OutputFormatJSON, OutputFormatCSV}

// OutputFormats returns the recognized formats in display order
func OutputFormats() []OutputFormat {
	formats := make([]OutputFormat, len(outputFormats))
	copy(formats, outputFormats)
	return formats
}

// DefaultOutputFormat returns the format used when none is given
func DefaultOutputFormat() OutputFormat {
	return OutputFormatText
}

// ParseOutputFormat matches token case-sensitively against the recognized formats
func ParseOutputFormat(token string) (OutputFormat, error) {
	for _, f := range outputFormats {
		if string(f) == token {
			return f, nil
		}
	}
	return "", &UnrecognizedFormatError{Token: token}
}

// Valid returns true if f is one of the recognized formats
func (f OutputFormat) Valid() bool {
	_, err := ParseOutputFormat(string(f))
	return err == nil
}

func (f OutputFormat) String() string {
	return string(f)
}

func formatList() string {
	names := make([]string, 0, len(outputFormats))
	for _, f := range outputFormats {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
