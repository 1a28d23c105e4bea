package reporter

import (
	"encoding/json"
)

// JSONReporter outputs a request in JSON format
type JSONReporter struct{}

// jsonOutput represents the JSON output structure
type jsonOutput struct {
	Mode      string            `json:"mode"`
	Input     string            `json:"input"`
	Output    string            `json:"output"`
	Format    string            `json:"format"`
	Functions []string          `json:"functions,omitempty"`
	Settings  map[string]string `json:"settings"`
}

// Report generates JSON output for the given request
func (r *JSONReporter) Report(req Request) ([]byte, error) {
	output := jsonOutput{
		Mode:      req.Mode,
		Input:     req.Input,
		Output:    req.Output,
		Format:    req.Format,
		Functions: req.Functions,
		Settings:  make(map[string]string, len(req.Settings)),
	}

	for _, s := range req.Settings {
		output.Settings[s.Name] = s.Value
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
