package reporter

import (
	"bytes"
	"encoding/csv"
)

// CSVReporter outputs a request as name,value rows
type CSVReporter struct{}

// Report generates CSV output for the given request
func (r *CSVReporter) Report(req Request) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"name", "value"},
		{"mode", req.Mode},
		{"input", req.Input},
		{"output", req.Output},
		{"format", req.Format},
	}
	for _, s := range req.Settings {
		rows = append(rows, []string{s.Name, s.Value})
	}
	for _, fn := range req.Functions {
		rows = append(rows, []string{"function", fn})
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
