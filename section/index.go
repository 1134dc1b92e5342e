package section

import (
	"fmt"

	"github.com/Kmer-File-Format/kff-go/bitio"
)

// IndexEntry is one (tag, delta) pair inside an Index section. Delta is a
// byte offset relative to the byte immediately following the containing
// Index section's NextIndex field.
type IndexEntry struct {
	Tag   byte
	Delta int64
}

// Index is the `i`-tagged section body: a list of entries plus a link to
// the next Index section in the chain. NextIndex uses the same reference
// point as every entry's Delta; zero marks the end of the chain.
type Index struct {
	Entries   []IndexEntry
	NextIndex int64
}

// ReadIndex parses an Index section body (the tag is assumed already
// consumed).
func ReadIndex(r *bitio.Reader) (Index, error) {
	n, err := r.ReadUint64()
	if err != nil {
		return Index{}, fmt.Errorf("index: nb_entries: %w", err)
	}

	entries := make([]IndexEntry, n)
	for i := range entries {
		tag, err := r.ReadUint8()
		if err != nil {
			return Index{}, fmt.Errorf("index: entry %d tag: %w", i, err)
		}
		delta, err := r.ReadInt64()
		if err != nil {
			return Index{}, fmt.Errorf("index: entry %d delta: %w", i, err)
		}
		entries[i] = IndexEntry{Tag: tag, Delta: delta}
	}

	next, err := r.ReadInt64()
	if err != nil {
		return Index{}, fmt.Errorf("index: next_index: %w", err)
	}

	return Index{Entries: entries, NextIndex: next}, nil
}

// Write encodes idx as an Index section body.
func (idx Index) Write(w *bitio.Writer) error {
	if err := w.WriteUint64(uint64(len(idx.Entries))); err != nil {
		return err
	}

	for i, e := range idx.Entries {
		if err := w.WriteUint8(e.Tag); err != nil {
			return fmt.Errorf("index: entry %d tag: %w", i, err)
		}
		if err := w.WriteInt64(e.Delta); err != nil {
			return fmt.Errorf("index: entry %d delta: %w", i, err)
		}
	}

	return w.WriteInt64(idx.NextIndex)
}

// RelativeOffsetBase computes the byte offset every Delta and NextIndex in
// this Index is relative to: the byte immediately following the
// NextIndex field, given the absolute file offset of the Index section's
// own tag byte and its encoded byte length. The +1 accounts for the tag
// byte itself, which precedes the encoded body at tagOffset.
func RelativeOffsetBase(tagOffset int64, encodedLen int64) int64 {
	return tagOffset + 1 + encodedLen
}

// EncodedLen returns the number of bytes Write would emit for idx,
// including entries and the next_index field, used to locate
// RelativeOffsetBase without a second pass over the stream.
func (idx Index) EncodedLen() int64 {
	return 8 + int64(len(idx.Entries))*9 + 8
}
