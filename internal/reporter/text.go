package reporter

import (
	"fmt"
	"strings"
)

// TextReporter outputs a request in a human-readable format
type TextReporter struct{}

// Report generates text output for the given request
func (r *TextReporter) Report(req Request) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("sizeprof %s\n", req.Mode))
	sb.WriteString(strings.Repeat("=", 40) + "\n")
	sb.WriteString(fmt.Sprintf("  %-16s %s\n", "input", req.Input))
	sb.WriteString(fmt.Sprintf("  %-16s %s\n", "output", req.Output))
	sb.WriteString(fmt.Sprintf("  %-16s %s\n", "format", req.Format))

	for _, s := range req.Settings {
		sb.WriteString(fmt.Sprintf("  %-16s %s\n", s.Name, s.Value))
	}

	if req.Mode == "paths" {
		sb.WriteString("\nFunctions:\n")
		if len(req.Functions) == 0 {
			sb.WriteString("  (none)\n")
		}
		for i, fn := range req.Functions {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, fn))
		}
	}

	return []byte(sb.String()), nil
}
