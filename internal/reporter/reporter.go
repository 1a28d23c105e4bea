package reporter

import "github.com/ethanolivertroy/sizeprof/internal/options"

// Reporter is the interface for output formatters
type Reporter interface {
	// Report generates output for the given request
	Report(req Request) ([]byte, error)
}

// Get returns a reporter for the specified format
func Get(format options.OutputFormat) Reporter {
	switch format {
	case options.OutputFormatJSON:
		return &JSONReporter{}
	case options.OutputFormatCSV:
		return &CSVReporter{}
	default:
		return &TextReporter{}
	}
}
