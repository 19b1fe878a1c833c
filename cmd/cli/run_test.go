package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cxd309/tilt-engine/internal/engine"
	"github.com/cxd309/tilt-engine/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
simulation_meta:
  simulation_id: cli
field: {width: 100, height: 100, ball_size: 10}
samples:
  - {ax: 0, ay: 0, dt: 1}
  - {ax: 0, ay: 10, dt: 1}
`

// execute runs the CLI in a scratch directory so no local config file is picked up.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	observability.ResetForTest()
	t.Cleanup(observability.ResetForTest)

	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func decodeLog(t *testing.T, out string) engine.SimulationLog {
	t.Helper()
	var log engine.SimulationLog
	require.NoError(t, json.Unmarshal([]byte(out), &log), out)
	return log
}

func TestRunYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	out, err := execute(t, "", "run", path)
	require.NoError(t, err)

	log := decodeLog(t, out)
	assert.Equal(t, "cli", log.Meta.SimulationID)
	require.Len(t, log.Output, 2)
	assert.InDelta(t, 45+10.0/6, log.Output[1].State.Y, 1e-9)
}

func TestRunStdinJSON(t *testing.T) {
	in := `{"field": {"width": 100, "height": 100, "ball_size": 10},
	        "simulation_meta": {"simulation_id": "stdin", "run_time": 1, "time_step": 0.5},
	        "tilt": {"ax": 4, "ay": 0}}`

	out, err := execute(t, in, "run", "--pretty")
	require.NoError(t, err)
	assert.Contains(t, out, "\n  \"simulation_meta\"")

	log := decodeLog(t, out)
	require.Len(t, log.Output, 3)
	assert.Greater(t, log.Output[2].State.X, 45.0)
}

func TestRunStdinYAMLFlag(t *testing.T) {
	out, err := execute(t, sampleYAML, "run", "--format", "yaml")
	require.NoError(t, err)
	assert.Len(t, decodeLog(t, out).Output, 2)
}

func TestRunErrors(t *testing.T) {
	_, err := execute(t, "{}", "run", "--format", "toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown input format "toml"`)

	_, err = execute(t, "", "run", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading input")

	_, err = execute(t, `{"field": {"width": 5, "height": 5, "ball_size": 0}, "samples": [{}]}`, "run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ball_size must be positive")
}

func TestResolveFormat(t *testing.T) {
	for _, tc := range []struct{ format, name, want string }{
		{"auto", "a.YML", "yaml"},
		{"auto", "a.yaml", "yaml"},
		{"auto", "a.json", "json"},
		{"", "", "json"},
		{"yaml", "a.json", "yaml"},
	} {
		got, err := resolveFormat(tc.format, tc.name)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%+v", tc)
	}
}
