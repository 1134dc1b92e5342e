package section

import (
	"fmt"
	"iter"

	"github.com/Kmer-File-Format/kff-go/bitio"
)

// Block is one super-k-mer: a contiguous bit-packed sequence covering
// N = kmer.Len()/2 - k + 1 overlapping k-mers, plus N*data_size bytes of
// per-k-mer payload. MinimizerOffset is only meaningful for blocks decoded
// from a Minimizer section; it records the bit-index/2 position at which
// the shared minimizer was spliced back in.
type Block struct {
	K               uint64
	DataSize        uint64
	Kmer            bitio.BitSeq
	Data            []byte
	MinimizerOffset uint64

	offset int // cursor used by Next
}

// Count returns N, the number of k-mers this block holds.
func (b Block) Count() uint64 {
	return uint64(b.Kmer.NucCount()) - b.K + 1
}

// ReadRaw decodes a Raw-section block. max governs the width of the
// optional leading count field (omitted when max <= 1, implying N=1).
func ReadRaw(r *bitio.Reader, k, dataSize, max uint64) (Block, error) {
	n, err := r.ReadDyn(max)
	if err != nil {
		return Block{}, fmt.Errorf("block: count: %w", err)
	}

	seq, err := r.Read2Bits(int(n + k - 1))
	if err != nil {
		return Block{}, fmt.Errorf("block: sequence: %w", err)
	}

	data, err := r.ReadNBytes(int(n * dataSize))
	if err != nil {
		return Block{}, fmt.Errorf("block: data: %w", err)
	}

	return Block{K: k, DataSize: dataSize, Kmer: seq, Data: data}, nil
}

// WriteRaw encodes b as a Raw-section block.
func (b Block) WriteRaw(w *bitio.Writer, max uint64) error {
	if err := w.WriteDyn(b.Count(), max); err != nil {
		return err
	}
	if err := w.Write2Bits(b.Kmer); err != nil {
		return err
	}

	return w.WriteBytes(b.Data)
}

// minimizerOffsetMax is the declared bound on minimizer_offset, per the
// format: min(k+max-1, 2^64-1).
func minimizerOffsetMax(k, max uint64) uint64 {
	sum := k + max - 1
	if sum < k { // overflow
		return ^uint64(0)
	}

	return sum
}

// ReadMinimizer decodes a Minimizer-section block, splicing the section's
// shared minimizer back into the sequence at the decoded offset.
func ReadMinimizer(r *bitio.Reader, k, m, dataSize, max uint64, minimizer bitio.BitSeq) (Block, error) {
	n, err := r.ReadDyn(max)
	if err != nil {
		return Block{}, fmt.Errorf("block: count: %w", err)
	}

	offsetMax := minimizerOffsetMax(k, max)

	offset, err := r.ReadDyn(offsetMax)
	if err != nil {
		return Block{}, fmt.Errorf("block: minimizer_offset: %w", err)
	}

	spliced, err := r.Read2Bits(int(n + k - 1 - m))
	if err != nil {
		return Block{}, fmt.Errorf("block: sequence: %w", err)
	}

	head := spliced.Slice(0, int(2*offset))
	tail := spliced.Slice(int(2*offset), spliced.Len())
	full := head.Concat(minimizer).Concat(tail)

	data, err := r.ReadNBytes(int(n * dataSize))
	if err != nil {
		return Block{}, fmt.Errorf("block: data: %w", err)
	}

	return Block{K: k, DataSize: dataSize, Kmer: full, Data: data, MinimizerOffset: offset}, nil
}

// WriteMinimizer encodes b as a Minimizer-section block, removing the
// shared minimizer (m bases starting at MinimizerOffset) from the sequence
// before writing it.
func (b Block) WriteMinimizer(w *bitio.Writer, m, max uint64) error {
	if err := w.WriteDyn(b.Count(), max); err != nil {
		return err
	}

	offsetMax := minimizerOffsetMax(b.K, max)
	if err := w.WriteDyn(b.MinimizerOffset, offsetMax); err != nil {
		return err
	}

	lo := int(2 * b.MinimizerOffset)
	hi := lo + int(2*m)
	head := b.Kmer.Slice(0, lo)
	tail := b.Kmer.Slice(hi, b.Kmer.Len())
	without := head.Concat(tail)

	if err := w.Write2Bits(without); err != nil {
		return err
	}

	return w.WriteBytes(b.Data)
}

// Next returns the i-th contained k-mer, advancing an internal cursor, and
// reports whether one was available.
func (b *Block) Next() (Kmer, bool) {
	n := b.Count()
	if uint64(b.offset) >= n {
		return Kmer{}, false
	}

	k := Kmer{
		Bits: b.Kmer.Slice(b.offset*2, (b.offset+int(b.K))*2),
		Data: b.Data[uint64(b.offset)*b.DataSize : uint64(b.offset+1)*b.DataSize],
	}
	b.offset++

	return k, true
}

// All returns an iterator over every k-mer the block contains, in order.
func (b Block) All() iter.Seq[Kmer] {
	return func(yield func(Kmer) bool) {
		cur := b
		for {
			k, ok := cur.Next()
			if !ok {
				return
			}
			if !yield(k) {
				return
			}
		}
	}
}
