package fingerprint

import (
	"encoding/binary"
	"encoding/hex"
	"math"
	"sort"

	"golang.org/x/crypto/blake2b"

	"combustion/internal/domain"
)

// size is the digest length in bytes (20 hex chars).
const size = 10

// Material returns a short hex fingerprint of a material's coefficient data.
//
// It hashes the normalised formula and the records sorted by TMin with
// BLAKE2b and truncates to 10 bytes. Record order and display name do not
// affect the result.
func Material(m domain.Material) string {
	h, _ := blake2b.New(size, nil) // only fails for bad sizes or keys

	h.Write([]byte(m.Formula.Key()))
	h.Write([]byte{0})

	records := make([]domain.CoefficientRecord, len(m.Records))
	copy(records, m.Records)
	sort.SliceStable(records, func(i, j int) bool { return records[i].TMin < records[j].TMin })

	var buf [8]byte
	put := func(v float64) {
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	for _, r := range records {
		h.Write([]byte(r.Phase))
		h.Write([]byte{0})
		put(r.TMin)
		put(r.TMax)
		if r.FormationEnthalpy != nil {
			h.Write([]byte{1})
			put(*r.FormationEnthalpy)
		} else {
			h.Write([]byte{0})
		}
		c := r.Coefficients
		for _, v := range []float64{c.A, c.B, c.C, c.D, c.E, c.F, c.G} {
			put(v)
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
