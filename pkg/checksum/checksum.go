package checksum

import (
	"hash"
	"hash/adler32"
	"hash/crc32"

	"github.com/cespare/xxhash/v2"
)

// Checksum is the running-digest surface the benchmark drives. All variants
// are widened to a 64-bit digest so 32-bit CRCs and xxhash share one table.
type Checksum interface {
	Write(p []byte) (int, error)
	Sum64() uint64
}

// Variant is one checksum implementation under test.
type Variant struct {
	Name        string
	Description string
	New         func() Checksum
}

type hash32Digest struct {
	hash.Hash32
}

func (d hash32Digest) Sum64() uint64 {
	return uint64(d.Sum32())
}

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// Variants lists the algorithms in their reporting order.
func Variants() []Variant {
	return []Variant{
		{
			Name:        "crc32",
			Description: "hash/crc32's IEEE implementation",
			New:         func() Checksum { return hash32Digest{crc32.NewIEEE()} },
		},
		{
			Name:        "crc32c",
			Description: "hash/crc32's Castagnoli implementation",
			New:         func() Checksum { return hash32Digest{crc32.New(castagnoli)} },
		},
		{
			Name:        "adler32",
			Description: "hash/adler32's implementation",
			New:         func() Checksum { return hash32Digest{adler32.New()} },
		},
		{
			Name:        "xxhash64",
			Description: "cespare/xxhash's 64-bit implementation",
			New:         func() Checksum { return xxhash.New() },
		},
	}
}

// Sum feeds data through a fresh digest in bufsize chunks and returns the
// final value. bufsize 0 processes the whole buffer in one write.
func Sum(v Variant, data []byte, bufsize int) uint64 {
	d := v.New()
	if bufsize <= 0 {
		bufsize = len(data)
	}
	for pos := 0; pos < len(data); pos += bufsize {
		end := pos + bufsize
		if end > len(data) {
			end = len(data)
		}
		// Hash writes never fail.
		_, _ = d.Write(data[pos:end])
	}
	return d.Sum64()
}
