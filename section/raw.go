package section

import (
	"fmt"

	"github.com/Kmer-File-Format/kff-go/bitio"
	"github.com/Kmer-File-Format/kff-go/errs"
	"github.com/Kmer-File-Format/kff-go/internal/pool"
)

// Raw is the `r`-tagged section: a plain nb_blocks-prefixed sequence of
// Blocks, no shared minimizer.
type Raw struct {
	K, Max, DataSize uint64
}

// NewRaw builds a Raw section reader/writer context from the current
// Values; the tag itself is assumed already consumed/emitted by the
// caller.
func NewRaw(v Values) (Raw, error) {
	k, err := v.K()
	if err != nil {
		return Raw{}, err
	}
	max, err := v.Max()
	if err != nil {
		return Raw{}, err
	}
	if max == 0 {
		return Raw{}, fmt.Errorf("max=0: %w", errs.ErrMaxValueIsTooLarge)
	}
	dataSize, err := v.DataSize()
	if err != nil {
		return Raw{}, err
	}

	return Raw{K: k, Max: max, DataSize: dataSize}, nil
}

// Read parses the Raw section body and returns every k-mer it contains.
func (s Raw) Read(r *bitio.Reader) ([]Kmer, error) {
	nbBlocks, err := r.ReadUint64()
	if err != nil {
		return nil, fmt.Errorf("raw section: nb_blocks: %w", err)
	}

	var out []Kmer
	for i := uint64(0); i < nbBlocks; i++ {
		block, err := ReadRaw(r, s.K, s.DataSize, s.Max)
		if err != nil {
			return nil, fmt.Errorf("raw section: block %d: %w", i, err)
		}
		for km := range block.All() {
			out = append(out, km)
		}
	}

	return out, nil
}

// Write encodes blocks as a Raw section body. The body is assembled in a
// pooled buffer and flushed in a single write, since a block list is
// typically many small fixed-width and bit-packed writes.
func (s Raw) Write(w *bitio.Writer, blocks []Block) error {
	buf := pool.GetBlockBuffer()
	defer pool.PutBlockBuffer(buf)

	bw := bitio.NewWriter(buf)
	if err := bw.WriteUint64(uint64(len(blocks))); err != nil {
		return err
	}

	for i, b := range blocks {
		if err := b.WriteRaw(bw, s.Max); err != nil {
			return fmt.Errorf("raw section: block %d: %w", i, err)
		}
	}

	return w.WriteBytes(buf.Bytes())
}
