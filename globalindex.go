package kff

import (
	"fmt"
	"io"
	"sort"

	"github.com/Kmer-File-Format/kff-go/bitio"
	"github.com/Kmer-File-Format/kff-go/errs"
	"github.com/Kmer-File-Format/kff-go/section"
)

// IndexEntry is one resolved (tag, absolute file offset) pair inside a
// GlobalIndex.
type IndexEntry struct {
	Tag    byte
	Offset int64
}

// GlobalIndex is the fully resolved index chain: every entry from every
// Index section reachable from first_index, sorted by absolute offset.
type GlobalIndex struct {
	Entries []IndexEntry
}

// loadGlobalIndex locates the first Index section (either immediately
// after the header, or via the footer's first_index field) and walks its
// next_index chain to build a GlobalIndex.
func (f *File) loadGlobalIndex() (*GlobalIndex, error) {
	pos, err := f.rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("kff: global index: %w", err)
	}

	tag, err := f.r.ReadUint8()
	if err != nil {
		return nil, fmt.Errorf("kff: global index: %w", err)
	}

	firstIndexOffset := pos
	if tag != section.TagIndex {
		footer, err := f.LoadFooter()
		if err != nil {
			return nil, err
		}

		first, err := footer.FirstIndex()
		if err != nil {
			return nil, fmt.Errorf("kff: global index: %w", errs.ErrNoFirstIndex)
		}

		firstIndexOffset = int64(first)
	}

	return f.walkIndexChain(firstIndexOffset)
}

func (f *File) walkIndexChain(start int64) (*GlobalIndex, error) {
	var entries []IndexEntry

	pos := start
	for {
		if _, err := f.rs.Seek(pos, io.SeekStart); err != nil {
			return nil, fmt.Errorf("kff: global index: %w", err)
		}

		r := bitio.NewReader(f.rs)
		tag, err := r.ReadUint8()
		if err != nil {
			return nil, fmt.Errorf("kff: global index: %w", err)
		}
		if tag != section.TagIndex {
			return nil, fmt.Errorf("kff: global index: tag=%q: %w", tag, errs.ErrNotAnIndex)
		}

		idx, err := section.ReadIndex(r)
		if err != nil {
			return nil, fmt.Errorf("kff: global index: %w", err)
		}

		base := section.RelativeOffsetBase(pos, idx.EncodedLen())
		for _, e := range idx.Entries {
			entries = append(entries, IndexEntry{Tag: e.Tag, Offset: base + e.Delta})
		}

		if idx.NextIndex == 0 {
			break
		}

		pos = base + idx.NextIndex
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Offset < entries[j].Offset })

	return &GlobalIndex{Entries: entries}, nil
}

// KmerOfSection resolves entry n of the GlobalIndex, recovers the Values
// context that applies to it, and decodes its k-mers. It requires a File
// opened with OpenIndexed.
func (f *File) KmerOfSection(n int) ([]section.Kmer, error) {
	if f.idx == nil {
		return nil, errs.ErrNoIndex
	}
	if n < 0 || n >= len(f.idx.Entries) {
		return nil, fmt.Errorf("kff: section %d out of range (%d entries)", n, len(f.idx.Entries))
	}

	target := f.idx.Entries[n]
	if target.Tag != section.TagRaw && target.Tag != section.TagMinimizer {
		return nil, errs.ErrNotAKmerSection
	}

	valuesOffset := int64(-1)
	for _, e := range f.idx.Entries {
		if e.Tag == section.TagValues && e.Offset < target.Offset && e.Offset > valuesOffset {
			valuesOffset = e.Offset
		}
	}
	if valuesOffset < 0 {
		return nil, errs.ErrNoValueSectionBeforeTarget
	}

	if _, err := f.rs.Seek(valuesOffset+1, io.SeekStart); err != nil {
		return nil, fmt.Errorf("kff: kmer_of_section: %w", err)
	}
	v, err := section.ReadValues(bitio.NewReader(f.rs))
	if err != nil {
		return nil, fmt.Errorf("kff: kmer_of_section: %w", err)
	}
	f.values = f.values.Merge(v)

	if _, err := f.rs.Seek(target.Offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("kff: kmer_of_section: %w", err)
	}
	r := bitio.NewReader(f.rs)
	tag, err := r.ReadUint8()
	if err != nil {
		return nil, fmt.Errorf("kff: kmer_of_section: %w", err)
	}

	switch tag {
	case section.TagRaw:
		ctx, err := section.NewRaw(f.values)
		if err != nil {
			return nil, err
		}
		return ctx.Read(r)
	case section.TagMinimizer:
		ctx, err := section.NewMinimizer(f.values)
		if err != nil {
			return nil, err
		}
		return ctx.Read(r)
	default:
		return nil, errs.ErrNotAKmerSection
	}
}
