// Package format defines the nucleotide encoding byte: the 2-bit mapping
// assigned to each of A, C, G, T at file creation time.
package format

import (
	"fmt"

	"github.com/Kmer-File-Format/kff-go/errs"
)

// Encoding holds the packed nucleotide-to-2-bit assignment read from a
// Header's encoding byte. The byte packs four 2-bit codes MSB to LSB in the
// order A, C, G, T.
type Encoding struct {
	byteVal byte
	toBits  [256]uint8 // indexed by ASCII nucleotide, valid entries: A,C,G,T
	toNuc   [4]byte    // indexed by 2-bit code
}

// DefaultByte is the canonical encoding used throughout the KFF test corpus:
// A=00, C=01, G=10, T=11.
const DefaultByte byte = 0b00011011

// New validates b against the pairwise-distinct invariant (the byte must be
// a permutation of {00,01,10,11} across its four 2-bit fields) and returns
// the derived Encoding.
func New(b byte) (Encoding, error) {
	codes := [4]uint8{
		uint8(b>>6) & 0b11,
		uint8(b>>4) & 0b11,
		uint8(b>>2) & 0b11,
		uint8(b) & 0b11,
	}

	var seen [4]bool
	for _, c := range codes {
		if seen[c] {
			return Encoding{}, fmt.Errorf("encoding byte 0x%02x: %w", b, errs.ErrBadEncoding)
		}
		seen[c] = true
	}

	e := Encoding{byteVal: b}
	nucs := [4]byte{'A', 'C', 'G', 'T'}
	for i, nuc := range nucs {
		e.toBits[nuc] = codes[i]
		e.toNuc[codes[i]] = nuc
	}

	return e, nil
}

// Byte returns the raw encoding byte as read from or written to a Header.
func (e Encoding) Byte() byte {
	return e.byteVal
}

// NucToBits maps an ASCII nucleotide (A, C, G or T) to its 2-bit code.
func (e Encoding) NucToBits(nuc byte) uint8 {
	return e.toBits[nuc]
}

// BitsToNuc maps a 2-bit code (0..3) back to its ASCII nucleotide.
func (e Encoding) BitsToNuc(bits uint8) byte {
	return e.toNuc[bits&0b11]
}

// SeqToBits expands an ASCII nucleotide sequence into a slice of 2-bit codes,
// one per base, in sequence order.
func (e Encoding) SeqToBits(seq []byte) []uint8 {
	out := make([]uint8, len(seq))
	for i, nuc := range seq {
		out[i] = e.NucToBits(nuc)
	}

	return out
}

// BitsToSeq is the inverse of SeqToBits.
func (e Encoding) BitsToSeq(bits []uint8) []byte {
	out := make([]byte, len(bits))
	for i, b := range bits {
		out[i] = e.BitsToNuc(b)
	}

	return out
}
