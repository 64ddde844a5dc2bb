package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vkiterrors "github.com/alexisbeaulieu97/vkit/pkg/errors"
)

const testKit = `name: demo
sliders:
  - id: volume
    label: Volume
    min: 0
    max: 100
    thumb_size: 0
    unit_px: 1
    value: 40
  - id: price
    is_range: true
    value_list: [50, 10, 35, 20]
    range: [35, 20]
`

const testScript = `slider: volume
track: {left: 0, width: 100}
events:
  - {type: down, x: 25, target: track}
  - {type: move, x: 60, expect: {value: 60}}
  - {type: up}
`

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestValidateCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	kit := writeFile(t, dir, "kit.yaml", testKit)

	out, _, err := execute(t, "validate", "--config", kit)
	require.NoError(t, err)

	assert.Contains(t, out, "is valid (2 sliders)")
	assert.Regexp(t, `volume\s+single\s+\[0, 100\]\s+-\s+0px`, out)
	assert.Regexp(t, `price\s+range\s+\[10, 50\]\s+10,20,35,50\s+24px`, out)
}

func TestValidateCommandRejectsInvalidKit(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	kit := writeFile(t, dir, "kit.yaml", "sliders:\n  - id: a\n  - id: a\n")

	_, _, err := execute(t, "validate", "--config", kit)
	var validationErr *vkiterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 2, exitCode(err))
}

func TestValidateCommandRequiresConfig(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config")
}

func TestReplayCommandText(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	kit := writeFile(t, dir, "kit.yaml", testKit)
	script := writeFile(t, dir, "script.yaml", testScript)

	out, _, err := execute(t, "replay", "--config", kit, "--script", script)
	require.NoError(t, err)

	assert.Contains(t, out, "slider volume (single) initial value=40")
	assert.Regexp(t, `#0\s+down\s+track\s+ok\s+value=25`, out)
	assert.Contains(t, out, "final value=60 dragging=false commits=2 min=25 max=60")
}

func TestReplayCommandJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	kit := writeFile(t, dir, "kit.yaml", testKit)
	script := writeFile(t, dir, "script.yaml", testScript)

	out, _, err := execute(t, "replay", "--config", kit, "--script", script, "--json")
	require.NoError(t, err)

	var decoded struct {
		Slider  string `json:"slider"`
		Summary struct {
			Commits int     `json:"commits"`
			Max     float64 `json:"max"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "volume", decoded.Slider)
	assert.Equal(t, 2, decoded.Summary.Commits)
	assert.Equal(t, 60.0, decoded.Summary.Max)
}

func TestReplayCommandFailedExpectation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	kit := writeFile(t, dir, "kit.yaml", testKit)
	script := writeFile(t, dir, "script.yaml", `slider: price
track: {left: 0, width: 100}
events:
  - {type: down, x: 5, target: track, expect: {low: 20}}
`)

	out, stderr, err := execute(t, "replay", "--config", kit, "--script", script)
	require.Error(t, err)

	var replayErr *vkiterrors.ReplayError
	require.ErrorAs(t, err, &replayErr)
	assert.Equal(t, 0, replayErr.Index)
	assert.Equal(t, 3, exitCode(err))
	assert.Contains(t, out, "slider price (range)")
	assert.Contains(t, stderr, "replay expectation failed")
}

func TestReplayCommandUnknownSlider(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	kit := writeFile(t, dir, "kit.yaml", testKit)
	script := writeFile(t, dir, "script.yaml", "slider: prices\nevents:\n  - {type: up}\n")

	_, _, err := execute(t, "replay", "--config", kit, "--script", script)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "price"`)
}

func TestPlaygroundRequiresTerminal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	kit := writeFile(t, dir, "kit.yaml", testKit)

	_, _, err := execute(t, "playground", "--config", kit)
	require.ErrorIs(t, err, errNotTerminal)
	assert.Equal(t, 1, exitCode(err))
}

func TestPlaygroundReportsKitErrorsFirst(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "playground", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *vkiterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 1, exitCode(errors.New("boom")))
	assert.Equal(t, 2, exitCode(vkiterrors.NewParseError("kit.yaml", 1, errors.New("bad"))))
	assert.Equal(t, 3, exitCode(vkiterrors.NewReplayError(0, "down", errors.New("bad"))))
}

func TestReplayCommandGolden(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	kit := writeFile(t, dir, "kit.yaml", testKit)
	script := writeFile(t, dir, "script.yaml", testScript)
	golden := filepath.Join(dir, "volume.golden")

	_, _, err := execute(t, "replay", "-c", kit, "-s", script, "--golden", golden, "--update-golden")
	require.NoError(t, err)
	require.FileExists(t, golden)

	_, _, err = execute(t, "replay", "-c", kit, "-s", script, "--golden", golden)
	require.NoError(t, err)

	changed := writeFile(t, dir, "changed.yaml", `slider: volume
track: {left: 0, width: 100}
events:
  - {type: down, x: 30, target: track}
  - {type: up}
`)
	_, stderr, err := execute(t, "replay", "-c", kit, "-s", changed, "--golden", golden)
	require.ErrorIs(t, err, errGoldenMismatch)
	assert.Contains(t, stderr, "--- "+golden)
	assert.Contains(t, stderr, "+final value=30")
}

func TestExampleReplaysPass(t *testing.T) {
	t.Parallel()

	kit := filepath.Join("..", "..", "examples", "kits", "demo.yaml")
	scripts, err := filepath.Glob(filepath.Join("..", "..", "examples", "replays", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, scripts)

	for _, script := range scripts {
		script := script
		t.Run(filepath.Base(script), func(t *testing.T) {
			t.Parallel()

			_, _, err := execute(t, "replay", "--config", kit, "--script", script)
			require.NoError(t, err)
		})
	}
}

func TestExampleKitValidates(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "validate", "--config", filepath.Join("..", "..", "examples", "kits", "demo.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "(3 sliders)")
	assert.Regexp(t, `balance\s+single\s+\[-50, 50\]\s+-\s+2px`, out)
}
