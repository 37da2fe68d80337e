package search

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/kilianp07/haulplan/core/model"
)

// Fingerprint hashes the legs of every truck. Equal schedules have equal
// fingerprints.
func Fingerprint(s *model.Schedule) uint64 {
	d := xxhash.New()
	var buf []byte
	for _, truck := range s.Trucks() {
		chain, _ := s.Chain(truck)
		buf = binary.LittleEndian.AppendUint32(buf[:0], uint32(truck))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(chain.Len()))
		_, _ = d.Write(buf)
		for _, leg := range chain.All() {
			buf = binary.LittleEndian.AppendUint64(buf[:0], uint64(leg.Start()))
			buf = binary.LittleEndian.AppendUint64(buf, uint64(leg.End()))
			buf = binary.LittleEndian.AppendUint32(buf, uint32(leg.Data.From))
			buf = binary.LittleEndian.AppendUint32(buf, uint32(leg.Data.To))
			buf = binary.LittleEndian.AppendUint32(buf, uint32(leg.Data.Cargo))
			_, _ = d.Write(buf)
		}
	}
	return d.Sum64()
}
