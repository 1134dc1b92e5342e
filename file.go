// Package kff implements the reader and writer for the Kmer File Format: a
// compact binary container that packs DNA k-mers two bits per base and
// shares overlapping prefixes across consecutive k-mers inside
// super-k-mer blocks.
package kff

import (
	"fmt"
	"io"
	"os"

	"github.com/Kmer-File-Format/kff-go/bitio"
	"github.com/Kmer-File-Format/kff-go/errs"
	"github.com/Kmer-File-Format/kff-go/format"
	"github.com/Kmer-File-Format/kff-go/section"
)

// Kmer is a decoded k-mer: its packed nucleotide bits and payload bytes.
type Kmer = section.Kmer

// File is the top-level handle over a KFF stream: it owns the header, the
// current Values context, and either a readable or writable underlying
// stream. A File opened with OpenIndexed additionally owns a resolved
// GlobalIndex for random section access.
type File struct {
	rs     io.ReadSeeker
	r      *bitio.Reader
	w      *bitio.Writer
	closer io.Closer

	header    section.Header
	values    section.Values
	idx       *GlobalIndex
	finalized bool
}

// Open opens path read-only for sequential streaming via Kmers/NextKmerSection.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("kff: open %s: %w", path, err)
	}

	file := &File{rs: f, r: bitio.NewReader(f), closer: f, values: section.NewValues(4)}
	if err := file.readHeader(); err != nil {
		f.Close()
		return nil, err
	}

	return file, nil
}

// OpenIndexed opens path read-only and additionally resolves its
// GlobalIndex, enabling KmerOfSection.
func OpenIndexed(path string) (*File, error) {
	file, err := Open(path)
	if err != nil {
		return nil, err
	}

	idx, err := file.loadGlobalIndex()
	if err != nil {
		file.Close()
		return nil, err
	}
	file.idx = idx

	return file, nil
}

// Create truncates (or creates) path and writes header as the file's
// leading record, ready for Write* calls.
func Create(path string, header section.Header) (*File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("kff: create %s: %w", path, err)
	}

	file := &File{w: bitio.NewWriter(f), closer: f, header: header, values: section.NewValues(4)}
	if err := header.Write(file.w); err != nil {
		f.Close()
		return nil, fmt.Errorf("kff: write header: %w", err)
	}

	return file, nil
}

// Close releases the underlying stream.
func (f *File) Close() error {
	if f.closer == nil {
		return nil
	}
	return f.closer.Close()
}

// Header returns the parsed or supplied file header.
func (f *File) Header() section.Header {
	return f.header
}

// Values returns the current Values context.
func (f *File) Values() section.Values {
	return f.values
}

// Encoding derives the nucleotide encoding carried by the header.
func (f *File) Encoding() (format.Encoding, error) {
	return f.header.Encoding()
}

func (f *File) readHeader() error {
	h, err := section.ReadHeader(f.r)
	if err != nil {
		return err
	}
	f.header = h

	return nil
}

// Check verifies both the leading and trailing "KFF" magic without
// disturbing the caller's stream position. It requires a seekable
// underlying stream.
func (f *File) Check() (bool, error) {
	if f.rs == nil {
		return false, fmt.Errorf("kff: check requires a seekable stream: %w", errs.ErrMissingMagic)
	}

	cur, err := f.rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return false, fmt.Errorf("kff: check: %w", err)
	}
	defer f.rs.Seek(cur, io.SeekStart)

	if _, err := f.rs.Seek(0, io.SeekStart); err != nil {
		return false, fmt.Errorf("kff: check: %w", err)
	}
	head, err := bitio.NewReader(f.rs).ReadNBytes(3)
	if err != nil {
		return false, fmt.Errorf("kff: check: %w", err)
	}
	if string(head) != section.Magic {
		return false, nil
	}

	if _, err := f.rs.Seek(-3, io.SeekEnd); err != nil {
		return false, fmt.Errorf("kff: check: %w", err)
	}

	tail, err := bitio.NewReader(f.rs).ReadNBytes(3)
	if err != nil {
		return false, fmt.Errorf("kff: check: %w", err)
	}

	return string(tail) == section.Magic, nil
}

// LoadFooter seeks to the footer Values section (located via the
// self-described footer_size field 11 bytes before EOF) and parses it.
// It requires a seekable underlying stream.
func (f *File) LoadFooter() (section.Values, error) {
	if f.rs == nil {
		return nil, fmt.Errorf("kff: load footer requires a seekable stream: %w", errs.ErrFooterSizeNotCorrect)
	}

	end, err := f.rs.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("kff: load footer: %w", err)
	}

	if _, err := f.rs.Seek(end-11, io.SeekStart); err != nil {
		return nil, fmt.Errorf("kff: load footer: %w", err)
	}

	footerSize, err := bitio.NewReader(f.rs).ReadUint64()
	if err != nil {
		return nil, fmt.Errorf("kff: load footer: footer_size: %w", err)
	}

	tagPos := end - int64(footerSize) - 3
	if _, err := f.rs.Seek(tagPos, io.SeekStart); err != nil {
		return nil, fmt.Errorf("kff: load footer: %w", err)
	}

	r := bitio.NewReader(f.rs)
	tag, err := r.ReadUint8()
	if err != nil {
		return nil, fmt.Errorf("kff: load footer: %w", err)
	}
	if tag != section.TagValues {
		return nil, fmt.Errorf("kff: load footer: tag=%q: %w", tag, errs.ErrFooterSizeNotCorrect)
	}

	return section.ReadValues(r)
}
