package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/haulplan/core/interval"
	"github.com/kilianp07/haulplan/core/model"
)

type names struct{}

func (names) TruckName(t model.Truck) string { return fmt.Sprintf("T%d", t) }
func (names) TerminalName(t model.Terminal) string {
	if t == model.AnyTerminal {
		return ""
	}
	return fmt.Sprintf("N%d", t)
}
func (names) CargoName(c model.Cargo) string {
	if c == model.NoCargo {
		return ""
	}
	return fmt.Sprintf("C%d", c)
}

func sampleSchedule(t *testing.T) *model.Schedule {
	t.Helper()
	a, err := model.NewTransition(10, 20, 0, 1, 4)
	require.NoError(t, err)
	b, err := model.NewTransition(30, 35, 1, 0, model.NoCargo)
	require.NoError(t, err)
	c, err := interval.FromIntervals(a, b)
	require.NoError(t, err)
	return model.NewSchedule(map[model.Truck]*model.TransitionChain{2: c, 1: nil})
}

func TestRows(t *testing.T) {
	rows := Rows(sampleSchedule(t), names{})
	assert.Equal(t, []Row{
		{Truck: "T2", Start: 10, End: 20, From: "N0", To: "N1", Cargo: "C4"},
		{Truck: "T2", Start: 30, End: 35, From: "N1", To: "N0"},
	}, rows)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "csv", Rows(sampleSchedule(t), names{})))
	want := "truck,start,end,from,to,cargo\nT2,10,20,N0,N1,C4\nT2,30,35,N1,N0,\n"
	if buf.String() != want {
		t.Fatalf("unexpected csv:\n%s", buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "json", Rows(sampleSchedule(t), names{})))
	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "C4", got[0]["cargo"])
	_, hasCargo := got[1]["cargo"]
	assert.False(t, hasCargo, "empty runs omit cargo")
}

func TestWriteUnknownFormat(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, "xml", nil))
}
