package cmd

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/haulplan/pkg/export"
)

const planYAML = `problem:
  planning_period: {start: 0, end: 1000}
  terminals:
    - id: depot
    - id: port
  trucks:
    - id: t1
      starting_terminal: depot
  bookings:
    - cargo: c1
      from: depot
      to: port
      pickup: {start: 0, end: 500}
      dropoff: {start: 0, end: 1000}
  routes:
    - {from: depot, to: port, duration: 30}
    - {from: port, to: depot, duration: 30}
generator:
  seed: 3
search:
  strategy:
    type: hillclimb
    conf:
      max_iterations: 50
  starts: 2
metrics:
  sinks:
    - type: nop
logging:
  level: debug
`

// execute runs the CLI with args and returns what the command wrote, what
// the loggers wrote, and anything else that reached the process stdout.
func execute(t *testing.T, args ...string) (out, logs, stray string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(planYAML), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	r, w, err := os.Pipe()
	require.NoError(t, err)
	realStdout := os.Stdout
	os.Stdout = w
	strayc := make(chan string)
	go func() {
		b, _ := io.ReadAll(r)
		strayc <- string(b)
	}()

	var outBuf, errBuf bytes.Buffer
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(append(args, "--config", path))
	runErr := rootCmd.Execute()

	os.Stdout = realStdout
	require.NoError(t, w.Close())
	stray = <-strayc
	require.NoError(t, runErr)
	return outBuf.String(), errBuf.String(), stray
}

func TestPlanStdoutIsPureJSON(t *testing.T) {
	out, logs, stray := execute(t, "plan", "--format", "json", "--out", "")

	var rows []export.Row
	require.NoError(t, json.Unmarshal([]byte(out), &rows), "stdout: %s", out)
	require.Len(t, rows, 1)
	assert.Equal(t, "c1", rows[0].Cargo)
	assert.Equal(t, "t1", rows[0].Truck)

	assert.Empty(t, stray, "nothing besides the export reaches stdout")
	assert.Contains(t, logs, `"level":"info"`)
}

func TestPlanStdoutIsPureCSV(t *testing.T) {
	out, _, stray := execute(t, "plan", "--format", "csv", "--out", "")

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err, "stdout: %s", out)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"truck", "start", "end", "from", "to", "cargo"}, records[0])
	assert.Equal(t, "c1", records[1][5])
	assert.Empty(t, stray)
}

func TestNeighbourStdoutHasNoLogLines(t *testing.T) {
	out, _, stray := execute(t, "neighbour", "--tries", "10", "--warmup", "0")

	assert.True(t, strings.HasPrefix(out, "current:\ntruck,start,end,from,to,cargo\nneighbour:\n"), "stdout: %s", out)
	assert.NotContains(t, out, `"level"`)
	assert.Empty(t, stray)
}
