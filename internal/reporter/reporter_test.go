package reporter

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethanolivertroy/sizeprof/internal/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePaths() options.Paths {
	p := options.NewPaths()
	p.SetInput("app.wasm")
	p.AddFunction("foo")
	p.AddFunction("bar")
	p.SetMaxDepth(2)
	return *p
}

func TestGet(t *testing.T) {
	assert.IsType(t, &TextReporter{}, Get(options.OutputFormatText))
	assert.IsType(t, &JSONReporter{}, Get(options.OutputFormatJSON))
	assert.IsType(t, &CSVReporter{}, Get(options.OutputFormatCSV))
}

func TestFromTopUsesEffectiveValues(t *testing.T) {
	top := options.NewTop()
	top.SetInput("app.wasm")

	req := FromTop(*top)
	assert.Equal(t, "top", req.Mode)
	assert.Equal(t, "-", req.Output)
	assert.Equal(t, "text", req.Format)
	assert.Equal(t, []Setting{
		{Name: "number", Value: "4294967295"},
		{Name: "retaining_paths", Value: "false"},
		{Name: "retained", Value: "false"},
	}, req.Settings)
}

func TestTextReporter(t *testing.T) {
	out, err := (&TextReporter{}).Report(FromPaths(samplePaths()))
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "sizeprof paths")
	assert.Contains(t, text, "app.wasm")
	assert.Contains(t, text, "1. foo")
	assert.Contains(t, text, "2. bar")
	assert.Less(t, strings.Index(text, "foo"), strings.Index(text, "bar"))
}

func TestTextReporterNoFunctions(t *testing.T) {
	p := options.NewPaths()
	out, err := (&TextReporter{}).Report(FromPaths(*p))
	require.NoError(t, err)
	assert.Contains(t, string(out), "(none)")
}

func TestJSONReporter(t *testing.T) {
	out, err := (&JSONReporter{}).Report(FromPaths(samplePaths()))
	require.NoError(t, err)

	var decoded jsonOutput
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "paths", decoded.Mode)
	assert.Equal(t, []string{"foo", "bar"}, decoded.Functions)
	assert.Equal(t, "2", decoded.Settings["max_depth"])
	assert.Equal(t, "10", decoded.Settings["max_paths"])
}

func TestCSVReporter(t *testing.T) {
	d := options.NewDominators()
	d.SetInput("app.wasm")
	d.SetMaxRows(5)

	out, err := (&CSVReporter{}).Report(FromDominators(*d))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	assert.Equal(t, []string{
		"name,value",
		"mode,dominators",
		"input,app.wasm",
		"output,-",
		"format,text",
		"max_depth,4294967295",
		"max_rows,5",
	}, lines)
}

func TestWriteStdout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(options.Stdout(), []byte("hello"), &buf))
	assert.Equal(t, "hello", buf.String())
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	var buf bytes.Buffer
	require.NoError(t, Write(options.File(path), []byte("hello"), &buf))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	assert.Empty(t, buf.String())
}

func TestWriteFileMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.txt")
	err := Write(options.File(path), []byte("hello"), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestDescriberHonorsFormatAndDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "top.json")
	top := options.NewTop()
	top.SetInput("app.wasm")
	top.SetNumber(3)
	top.SetOutputDestination(options.File(path))
	require.NoError(t, top.SetOutputFormat(options.OutputFormatJSON))

	var buf bytes.Buffer
	require.NoError(t, NewDescriber(&buf).Top(context.Background(), *top))
	assert.Empty(t, buf.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded jsonOutput
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "3", decoded.Settings["number"])
}

func TestDescriberInlineIgnoresFileDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paths.csv")
	p := samplePaths()
	p.SetOutputDestination(options.File(path))
	require.NoError(t, p.SetOutputFormat(options.OutputFormatCSV))

	var buf bytes.Buffer
	d := &Describer{Stdout: &buf, Inline: true}
	require.NoError(t, d.Paths(context.Background(), p))

	assert.Contains(t, buf.String(), "function,foo")
	assert.NoFileExists(t, path)
}
