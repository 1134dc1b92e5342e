package kff

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/Kmer-File-Format/kff-go/errs"
	"github.com/Kmer-File-Format/kff-go/section"
)

// NextKmerSection advances the stream past any intervening Values/Index
// sections and returns the k-mers of the next Raw or Minimizer section.
// It returns ok=false, with a nil error, once the trailing "KFF" magic is
// reached.
func (f *File) NextKmerSection() ([]section.Kmer, bool, error) {
	for {
		tag, err := f.r.ReadUint8()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, false, nil
			}
			return nil, false, err
		}

		switch tag {
		case section.TagEndMagic:
			rest, err := f.r.ReadNBytes(2)
			if err != nil {
				return nil, false, fmt.Errorf("kff: end magic: %w", err)
			}
			if string(rest) != "FF" {
				return nil, false, fmt.Errorf("kff: end magic: %w", errs.ErrMissingMagic)
			}
			return nil, false, nil

		case section.TagValues:
			v, err := section.ReadValues(f.r)
			if err != nil {
				return nil, false, err
			}
			f.values = f.values.Merge(v)

		case section.TagRaw:
			ctx, err := section.NewRaw(f.values)
			if err != nil {
				return nil, false, err
			}
			kmers, err := ctx.Read(f.r)
			if err != nil {
				return nil, false, err
			}
			return kmers, true, nil

		case section.TagMinimizer:
			ctx, err := section.NewMinimizer(f.values)
			if err != nil {
				return nil, false, err
			}
			kmers, err := ctx.Read(f.r)
			if err != nil {
				return nil, false, err
			}
			return kmers, true, nil

		case section.TagIndex:
			if _, err := section.ReadIndex(f.r); err != nil {
				return nil, false, err
			}

		default:
			return nil, false, fmt.Errorf("kff: tag %q: %w", tag, errs.ErrNotASectionPrefix)
		}
	}
}

// Kmers lazily yields every k-mer across the entire file, in order,
// stopping at the first read error or the trailing magic.
func (f *File) Kmers() iter.Seq2[section.Kmer, error] {
	return func(yield func(section.Kmer, error) bool) {
		for {
			kmers, ok, err := f.NextKmerSection()
			if err != nil {
				yield(section.Kmer{}, err)
				return
			}
			if !ok {
				return
			}
			for _, km := range kmers {
				if !yield(km, nil) {
					return
				}
			}
		}
	}
}
