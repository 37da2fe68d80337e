package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/kilianp07/haulplan/core/interval"
	"github.com/kilianp07/haulplan/core/model"
)

// Namer translates dense ids back to the ids used in the input problem.
type Namer interface {
	TruckName(model.Truck) string
	TerminalName(model.Terminal) string
	CargoName(model.Cargo) string
}

// Row is one leg of the plan. Cargo is empty for empty runs.
type Row struct {
	Truck string        `json:"truck"`
	Start interval.Time `json:"start"`
	End   interval.Time `json:"end"`
	From  string        `json:"from"`
	To    string        `json:"to"`
	Cargo string        `json:"cargo,omitempty"`
}

// Rows flattens s, truck by truck in id order and legs in time order.
func Rows(s *model.Schedule, names Namer) []Row {
	var out []Row
	for _, truck := range s.Trucks() {
		chain, _ := s.Chain(truck)
		for _, leg := range chain.All() {
			out = append(out, Row{
				Truck: names.TruckName(truck),
				Start: leg.Start(),
				End:   leg.End(),
				From:  names.TerminalName(leg.Data.From),
				To:    names.TerminalName(leg.Data.To),
				Cargo: names.CargoName(leg.Data.Cargo),
			})
		}
	}
	return out
}

// WriteJSON writes the plan to w in JSON format.
func WriteJSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// WriteCSV writes the plan to w in CSV format with a header line.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"truck", "start", "end", "from", "to", "cargo"}); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.Truck,
			strconv.FormatUint(uint64(r.Start), 10),
			strconv.FormatUint(uint64(r.End), 10),
			r.From,
			r.To,
			r.Cargo,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Write dispatches on format, "json" or "csv".
func Write(w io.Writer, format string, rows []Row) error {
	switch format {
	case "json", "":
		return WriteJSON(w, rows)
	case "csv":
		return WriteCSV(w, rows)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}
