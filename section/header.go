package section

import (
	"fmt"

	"github.com/Kmer-File-Format/kff-go/bitio"
	"github.com/Kmer-File-Format/kff-go/errs"
	"github.com/Kmer-File-Format/kff-go/format"
)

// Header is the fixed-layout record at the start of every KFF file.
//
// Byte layout (all multi-byte fields are big-endian):
//
//	offset  size  field
//	0       3     magic = "KFF"
//	3       1     major version
//	4       1     minor version
//	5       1     encoding
//	6       1     uniq_kmer   (0 or 1)
//	7       1     canonical_kmer (0 or 1)
//	8       4     free_block length (u32)
//	12      L     free_block
type Header struct {
	MajorVersion  uint8
	MinorVersion  uint8
	EncodingByte  byte
	UniqKmer      bool
	CanonicalKmer bool
	FreeBlock     []byte
}

// NewHeader constructs and validates a Header.
func NewHeader(major, minor uint8, encodingByte byte, uniq, canonical bool, freeBlock []byte) (Header, error) {
	h := Header{
		MajorVersion:  major,
		MinorVersion:  minor,
		EncodingByte:  encodingByte,
		UniqKmer:      uniq,
		CanonicalKmer: canonical,
		FreeBlock:     freeBlock,
	}

	if err := h.check(); err != nil {
		return Header{}, err
	}

	return h, nil
}

// ReadHeader parses a Header from r, including the leading magic.
func ReadHeader(r *bitio.Reader) (Header, error) {
	magic, err := r.ReadNBytes(3)
	if err != nil {
		return Header{}, fmt.Errorf("header: read magic: %w", err)
	}
	if string(magic) != Magic {
		return Header{}, fmt.Errorf("header: got %q: %w", magic, errs.ErrMissingMagic)
	}

	var h Header

	if h.MajorVersion, err = r.ReadUint8(); err != nil {
		return Header{}, fmt.Errorf("header: major version: %w", err)
	}
	if h.MinorVersion, err = r.ReadUint8(); err != nil {
		return Header{}, fmt.Errorf("header: minor version: %w", err)
	}
	if h.EncodingByte, err = r.ReadUint8(); err != nil {
		return Header{}, fmt.Errorf("header: encoding: %w", err)
	}
	if h.UniqKmer, err = r.ReadBool(); err != nil {
		return Header{}, fmt.Errorf("header: uniq_kmer: %w", err)
	}
	if h.CanonicalKmer, err = r.ReadBool(); err != nil {
		return Header{}, fmt.Errorf("header: canonical_kmer: %w", err)
	}

	freeLen, err := r.ReadUint32()
	if err != nil {
		return Header{}, fmt.Errorf("header: free_block length: %w", err)
	}

	if freeLen > 0 {
		if h.FreeBlock, err = r.ReadNBytes(int(freeLen)); err != nil {
			return Header{}, fmt.Errorf("header: free_block: %w", err)
		}
	}

	if err := h.check(); err != nil {
		return Header{}, err
	}

	return h, nil
}

// Write serializes the Header, including the leading magic.
func (h Header) Write(w *bitio.Writer) error {
	if err := w.WriteBytes([]byte(Magic)); err != nil {
		return err
	}
	if err := w.WriteUint8(h.MajorVersion); err != nil {
		return err
	}
	if err := w.WriteUint8(h.MinorVersion); err != nil {
		return err
	}
	if err := w.WriteUint8(h.EncodingByte); err != nil {
		return err
	}
	if err := w.WriteBool(h.UniqKmer); err != nil {
		return err
	}
	if err := w.WriteBool(h.CanonicalKmer); err != nil {
		return err
	}
	if err := w.WriteUint32(uint32(len(h.FreeBlock))); err != nil {
		return err
	}

	return w.WriteBytes(h.FreeBlock)
}

// Encoding derives the nucleotide encoding carried by this Header.
func (h Header) Encoding() (format.Encoding, error) {
	return format.New(h.EncodingByte)
}

// SetMajorVersion updates the major version, re-validating afterwards.
func (h *Header) SetMajorVersion(v uint8) error {
	h.MajorVersion = v
	return h.checkVersion()
}

// SetMinorVersion updates the minor version, re-validating afterwards.
func (h *Header) SetMinorVersion(v uint8) error {
	h.MinorVersion = v
	return h.checkVersion()
}

// SetEncoding updates the encoding byte, re-validating afterwards.
func (h *Header) SetEncoding(v byte) error {
	h.EncodingByte = v
	_, err := h.Encoding()
	if err != nil {
		return err
	}
	return nil
}

// SetFreeBlock replaces the free-form comment block.
func (h *Header) SetFreeBlock(b []byte) error {
	if uint64(len(b)) > 1<<32-1 {
		return fmt.Errorf("free_block length %d: %w", len(b), errs.ErrCommentTooLarge)
	}
	h.FreeBlock = b
	return nil
}

func (h Header) check() error {
	if err := h.checkVersion(); err != nil {
		return err
	}
	_, err := h.Encoding()
	return err
}

func (h Header) checkVersion() error {
	if h.MajorVersion > 1 {
		return fmt.Errorf("major=%d: %w", h.MajorVersion, errs.ErrHighMajorVersionNumber)
	}
	if h.MajorVersion == 1 && h.MinorVersion > 0 {
		return fmt.Errorf("minor=%d: %w", h.MinorVersion, errs.ErrHighMinorVersionNumber)
	}

	return nil
}
