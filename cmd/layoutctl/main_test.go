package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/grindlemire/go-layout/internal/scene"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const gridScene = `
name: cards
available: {width: 200, height: 100}
root:
  id: grid
  style:
    display: grid
    width: 200
    grid_template_columns: 1fr 1fr
  children:
    - id: a
      style: {height: 10}
    - id: b
      style: {height: 10}
`

const columnScene = `{
  "available": {"width": 50, "height": "max-content"},
  "root": {
    "id": "col",
    "style": {"flex_direction": "column"},
    "children": [
      {"id": "x", "style": {"height": 20}},
      {"id": "y", "style": {"height": 20}}
    ]
  }
}`

func writeScenes(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cards.yaml"), []byte(gridScene), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "column.json"), []byte(columnScene), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("root: {style: {display: table}}"), 0o644))
	t.Chdir(dir)
	return dir
}

func TestRun(t *testing.T) {
	type tc struct {
		args       []string
		wantCode   int
		wantStdout []string
		wantStderr string
	}

	tests := map[string]tc{
		"version": {
			args:       []string{"version"},
			wantStdout: []string{"layoutctl " + version},
		},
		"tracks": {
			args:       []string{"tracks", "100px repeat(2, 1fr)"},
			wantStdout: []string{"1\t100px", "2\t1fr", "3\t1fr"},
		},
		"bad tracks": {
			args:       []string{"tracks", "1fr bogus"},
			wantCode:   1,
			wantStderr: "error:",
		},
		"tree output": {
			args:       []string{"compute", "cards.yaml"},
			wantStdout: []string{"cards", "grid", "(100, 0) 100×10"},
		},
		"unknown display": {
			args:       []string{"compute", "cards.yaml", "broken.yaml"},
			wantCode:   1,
			wantStderr: "unknown display",
		},
		"missing file": {
			args:     []string{"compute", "nope.yaml"},
			wantCode: 1,
		},
		"no files": {
			args:     []string{"compute"},
			wantCode: 1,
		},
		"bad output flag": {
			args:       []string{"compute", "-o", "xml", "cards.yaml"},
			wantCode:   1,
			wantStderr: "output.format",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			writeScenes(t)
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)

			assert.Equal(t, tt.wantCode, code, "stderr: %s", stderr.String())
			for _, want := range tt.wantStdout {
				assert.Contains(t, stdout.String(), want)
			}
			if tt.wantStderr != "" {
				assert.Contains(t, stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestRun_ComputeJSONKeepsArgumentOrder(t *testing.T) {
	writeScenes(t)
	var stdout, stderr bytes.Buffer
	code := run([]string{"compute", "--output", "json", "column.json", "cards.yaml"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var results []scene.Result
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &results))
	require.Len(t, results, 2)

	assert.Equal(t, "column", results[0].Scene)
	assert.Equal(t, 40.0, results[0].Root.Height)
	assert.Equal(t, 20.0, results[0].Root.Children[1].Y)

	assert.Equal(t, "cards", results[1].Scene)
	assert.Equal(t, 100.0, results[1].Root.Children[0].Width)
	assert.Equal(t, 100.0, results[1].Root.Children[1].X)
}

func TestRun_ConfigFile(t *testing.T) {
	dir := writeScenes(t)
	cfg := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("output:\n  format: yaml\nlayout:\n  cache: false\n"), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"--config", cfg, "compute", "cards.yaml"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "scene: cards")
	assert.Contains(t, stdout.String(), "width: 100")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 1, exitCode(assert.AnError))
	assert.Equal(t, 2, exitCode(systemError{assert.AnError}))
}
