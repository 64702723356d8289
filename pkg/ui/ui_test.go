// pkg/ui/ui_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test every renderer against the same compilation result

package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/arthur-debert/splice/pkg/compiler"
	"github.com/arthur-debert/splice/pkg/errors"
	"github.com/arthur-debert/splice/pkg/types"
	"github.com/arthur-debert/splice/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *compiler.Result {
	return &compiler.Result{
		Source:     "/p/src",
		Dest:       "/p/out",
		Files:      []*types.CompiledFile{{Input: "/p/src/index.html"}, {Input: "/p/src/partial.html"}},
		Included:   []string{"/p/src/partial.html"},
		Written:    []string{"/p/out/index.html"},
		Skipped:    []string{"/p/src/partial.html"},
		Unresolved: []string{"ghost"},
		Duration:   3 * time.Millisecond,
	}
}

func render(t *testing.T, format ui.Format, fn func(ui.Renderer) error) string {
	t.Helper()
	var buf bytes.Buffer
	r, err := ui.NewRenderer(format, &buf)
	require.NoError(t, err)
	require.NoError(t, fn(r))
	return buf.String()
}

func TestTextRenderer_Result(t *testing.T) {
	out := render(t, ui.FormatText, func(r ui.Renderer) error { return r.RenderResult(sampleResult()) })

	assert.Contains(t, out, "warnings: 1 written, 1 included, 2 compiled (/p/src -> /p/out)")
	assert.Contains(t, out, "write index.html")
	assert.Contains(t, out, "included partial.html")
	assert.Contains(t, out, "warning: undefined variable ghost")
}

func TestTextRenderer_DryRun(t *testing.T) {
	result := sampleResult()
	result.DryRun = true
	out := render(t, ui.FormatText, func(r ui.Renderer) error { return r.RenderResult(result) })
	assert.Contains(t, out, "would write index.html")
}

func TestJSONRenderer_Result(t *testing.T) {
	out := render(t, ui.FormatJSON, func(r ui.Renderer) error { return r.RenderResult(sampleResult()) })

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "/p/src", doc["source"])
	assert.Equal(t, float64(2), doc["compiled"])
	assert.Equal(t, []interface{}{"index.html"}, doc["written"])
	assert.Equal(t, []interface{}{"ghost"}, doc["unresolved"])
	assert.Equal(t, false, doc["dry_run"])
}

func TestJSONRenderer_Error(t *testing.T) {
	err := errors.New(errors.ErrParse, "bad literal").WithDetail("file", "/p/src/a.html")
	out := render(t, ui.FormatJSON, func(r ui.Renderer) error { return r.RenderError(err) })

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "PARSE", doc["code"])
	assert.Equal(t, map[string]interface{}{"file": "/p/src/a.html"}, doc["details"])
}

func TestTerminalRenderer(t *testing.T) {
	out := render(t, ui.FormatTerminal, func(r ui.Renderer) error { return r.RenderResult(sampleResult()) })
	assert.Contains(t, out, "index.html")
	assert.Contains(t, out, "partial.html")
	assert.Contains(t, out, "ghost")

	err := errors.New(errors.ErrIO, "cannot read").WithDetail("path", "/p/src/x")
	out = render(t, ui.FormatTerminal, func(r ui.Renderer) error { return r.RenderError(err) })
	assert.Contains(t, out, "IO")
	assert.Contains(t, out, "path: /p/src/x")
}

func TestNewRenderer_AutoOnBufferIsText(t *testing.T) {
	out := render(t, ui.FormatAuto, func(r ui.Renderer) error { return r.RenderMessage("hello") })
	assert.Equal(t, "hello\n", out)
}

func TestNewRenderer_Unknown(t *testing.T) {
	_, err := ui.NewRenderer(ui.Format(42), &bytes.Buffer{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestForName(t *testing.T) {
	var buf bytes.Buffer

	r, format, err := ui.ForName("auto", &buf)
	require.NoError(t, err)
	assert.Equal(t, ui.FormatText, format)
	require.NoError(t, r.RenderMessage("hello"))
	assert.Equal(t, "hello\n", buf.String())

	_, format, err = ui.ForName("JSON", &buf)
	require.NoError(t, err)
	assert.Equal(t, ui.FormatJSON, format)

	_, _, err = ui.ForName("xml", &buf)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
