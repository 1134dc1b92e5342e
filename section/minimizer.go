package section

import (
	"fmt"

	"github.com/Kmer-File-Format/kff-go/bitio"
	"github.com/Kmer-File-Format/kff-go/errs"
	"github.com/Kmer-File-Format/kff-go/internal/pool"
)

// Minimizer is the `m`-tagged section: a shared minimizer bit sequence
// followed by an nb_blocks-prefixed sequence of Blocks, each missing that
// shared minimizer until spliced back in by ReadMinimizer.
type Minimizer struct {
	K, M, Max, DataSize uint64
}

// NewMinimizer builds a Minimizer section reader/writer context from the
// current Values.
func NewMinimizer(v Values) (Minimizer, error) {
	k, err := v.K()
	if err != nil {
		return Minimizer{}, err
	}
	m, err := v.M()
	if err != nil {
		return Minimizer{}, err
	}
	max, err := v.Max()
	if err != nil {
		return Minimizer{}, err
	}
	if max == 0 {
		return Minimizer{}, fmt.Errorf("max=0: %w", errs.ErrMaxValueIsTooLarge)
	}
	dataSize, err := v.DataSize()
	if err != nil {
		return Minimizer{}, err
	}

	return Minimizer{K: k, M: m, Max: max, DataSize: dataSize}, nil
}

// Read parses the Minimizer section body and returns every k-mer it
// contains, with the shared minimizer already reinserted.
func (s Minimizer) Read(r *bitio.Reader) ([]Kmer, error) {
	minimizer, err := r.Read2Bits(int(s.M))
	if err != nil {
		return nil, fmt.Errorf("minimizer section: minimizer: %w", err)
	}

	nbBlocks, err := r.ReadUint64()
	if err != nil {
		return nil, fmt.Errorf("minimizer section: nb_blocks: %w", err)
	}

	var out []Kmer
	for i := uint64(0); i < nbBlocks; i++ {
		block, err := ReadMinimizer(r, s.K, s.M, s.DataSize, s.Max, minimizer)
		if err != nil {
			return nil, fmt.Errorf("minimizer section: block %d: %w", i, err)
		}
		for km := range block.All() {
			out = append(out, km)
		}
	}

	return out, nil
}

// Write encodes blocks, sharing the given minimizer, as a Minimizer
// section body. Like Raw.Write, the body is assembled in a pooled buffer
// and flushed in one write.
func (s Minimizer) Write(w *bitio.Writer, minimizer bitio.BitSeq, blocks []Block) error {
	buf := pool.GetBlockBuffer()
	defer pool.PutBlockBuffer(buf)

	bw := bitio.NewWriter(buf)
	if err := bw.Write2Bits(minimizer); err != nil {
		return err
	}
	if err := bw.WriteUint64(uint64(len(blocks))); err != nil {
		return err
	}

	for i, b := range blocks {
		if err := b.WriteMinimizer(bw, s.M, s.Max); err != nil {
			return fmt.Errorf("minimizer section: block %d: %w", i, err)
		}
	}

	return w.WriteBytes(buf.Bytes())
}
