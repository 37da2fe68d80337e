package schedule

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/kilianp07/haulplan/core/interval"
	"github.com/kilianp07/haulplan/core/model"
)

// PlaceTimeLookup identifies one feasible-transition query: a truck idle at
// From during Window that has to be back at To when the window ends.
type PlaceTimeLookup struct {
	From   model.Terminal
	To     model.Terminal
	Window interval.Interval
}

const lookupKeyLen = 4 + 4 + 8 + 8

func (l PlaceTimeLookup) appendKey(b []byte) []byte {
	b = binary.LittleEndian.AppendUint32(b, uint32(l.From))
	b = binary.LittleEndian.AppendUint32(b, uint32(l.To))
	b = binary.LittleEndian.AppendUint64(b, uint64(l.Window.Start()))
	return binary.LittleEndian.AppendUint64(b, uint64(l.Window.End()))
}

// Key encodes the lookup as a fixed-width string. Equal lookups produce
// equal keys.
func (l PlaceTimeLookup) Key() string {
	return string(l.appendKey(make([]byte, 0, lookupKeyLen)))
}

// Hash combines both terminals and the window bounds.
func (l PlaceTimeLookup) Hash() uint64 {
	var buf [lookupKeyLen]byte
	return xxhash.Sum64(l.appendKey(buf[:0]))
}
