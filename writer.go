package kff

import (
	"fmt"

	"github.com/Kmer-File-Format/kff-go/bitio"
	"github.com/Kmer-File-Format/kff-go/errs"
	"github.com/Kmer-File-Format/kff-go/section"
)

// WriteValues writes v as a Values section and folds it into the current
// context: later block-carrying sections validate against the merged
// result, not just v alone.
func (f *File) WriteValues(v section.Values) error {
	if f.finalized {
		return errs.ErrBlockAlreadyOpen
	}
	if err := f.w.WriteUint8(section.TagValues); err != nil {
		return err
	}
	if err := v.Write(f.w); err != nil {
		return fmt.Errorf("kff: write values: %w", err)
	}

	f.values = f.values.Merge(v)

	return nil
}

// WriteRaw writes blocks as a Raw section, using k/max/data_size from the
// current Values context.
func (f *File) WriteRaw(blocks []section.Block) error {
	if f.finalized {
		return errs.ErrBlockAlreadyOpen
	}

	ctx, err := section.NewRaw(f.values)
	if err != nil {
		return err
	}

	if err := f.w.WriteUint8(section.TagRaw); err != nil {
		return err
	}

	if err := ctx.Write(f.w, blocks); err != nil {
		return fmt.Errorf("kff: write raw: %w", err)
	}

	return nil
}

// WriteMinimizer writes blocks as a Minimizer section sharing minimizer,
// using k/m/max/data_size from the current Values context.
func (f *File) WriteMinimizer(minimizer bitio.BitSeq, blocks []section.Block) error {
	if f.finalized {
		return errs.ErrBlockAlreadyOpen
	}

	ctx, err := section.NewMinimizer(f.values)
	if err != nil {
		return err
	}

	if err := f.w.WriteUint8(section.TagMinimizer); err != nil {
		return err
	}

	if err := ctx.Write(f.w, minimizer, blocks); err != nil {
		return fmt.Errorf("kff: write minimizer: %w", err)
	}

	return nil
}

// WriteValuesAsFooter writes v as the file's closing Values section,
// augmented with a self-describing footer_size entry, and folds it into
// the current context.
func (f *File) WriteValuesAsFooter(v section.Values) error {
	if f.finalized {
		return errs.ErrBlockAlreadyOpen
	}
	if err := f.w.WriteUint8(section.TagValues); err != nil {
		return err
	}
	if err := v.WriteAsFooter(f.w); err != nil {
		return fmt.Errorf("kff: write footer: %w", err)
	}

	f.values = f.values.Merge(v)

	return nil
}

// WriteIndex writes idx as an Index section.
func (f *File) WriteIndex(idx section.Index) error {
	if f.finalized {
		return errs.ErrBlockAlreadyOpen
	}
	if err := f.w.WriteUint8(section.TagIndex); err != nil {
		return err
	}

	if err := idx.Write(f.w); err != nil {
		return fmt.Errorf("kff: write index: %w", err)
	}

	return nil
}

// Finalize writes the trailing "KFF" magic, completing the file. Further
// Write* calls on f fail with errs.ErrBlockAlreadyOpen.
func (f *File) Finalize() error {
	if f.finalized {
		return errs.ErrBlockAlreadyOpen
	}
	if err := f.w.WriteBytes([]byte(section.Magic)); err != nil {
		return err
	}

	f.finalized = true

	return nil
}
