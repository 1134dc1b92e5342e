package section

import "github.com/Kmer-File-Format/kff-go/bitio"

// Kmer is one decoded k-mer: its packed nucleotide bits and its associated
// payload bytes.
type Kmer struct {
	Bits bitio.BitSeq
	Data []byte
}
