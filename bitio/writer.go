package bitio

import (
	"fmt"
	"io"

	"github.com/Kmer-File-Format/kff-go/endian"
	"github.com/Kmer-File-Format/kff-go/errs"
)

// Writer wraps an io.Writer with the primitive writes every KFF section
// builds on.
type Writer struct {
	w       io.Writer
	engine  endian.Engine
	scratch [8]byte
}

// NewWriter returns a Writer over w using the fixed big-endian byte order.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, engine: endian.BigEndian()}
}

func (wr *Writer) writeFull(b []byte) error {
	if _, err := wr.w.Write(b); err != nil {
		return fmt.Errorf("bitio: write %d bytes: %w", len(b), err)
	}

	return nil
}

// WriteUint8 writes one byte.
func (wr *Writer) WriteUint8(v uint8) error {
	wr.scratch[0] = v
	return wr.writeFull(wr.scratch[:1])
}

// WriteUint16 writes a big-endian uint16.
func (wr *Writer) WriteUint16(v uint16) error {
	wr.engine.PutUint16(wr.scratch[:2], v)
	return wr.writeFull(wr.scratch[:2])
}

// WriteUint32 writes a big-endian uint32.
func (wr *Writer) WriteUint32(v uint32) error {
	wr.engine.PutUint32(wr.scratch[:4], v)
	return wr.writeFull(wr.scratch[:4])
}

// WriteUint64 writes a big-endian uint64.
func (wr *Writer) WriteUint64(v uint64) error {
	wr.engine.PutUint64(wr.scratch[:8], v)
	return wr.writeFull(wr.scratch[:8])
}

// WriteInt64 writes a big-endian int64.
func (wr *Writer) WriteInt64(v int64) error {
	return wr.WriteUint64(uint64(v))
}

// WriteBool writes one byte: 1 for true, 0 for false.
func (wr *Writer) WriteBool(v bool) error {
	if v {
		return wr.WriteUint8(1)
	}

	return wr.WriteUint8(0)
}

// WriteBytes writes b verbatim.
func (wr *Writer) WriteBytes(b []byte) error {
	return wr.writeFull(b)
}

// WriteDyn writes v in the dynamic-width field sized by max. When max <= 1
// the field is omitted entirely (the block implicitly holds one k-mer).
// max == 0 is rejected rather than treated as 1: the format leaves a
// declared max of 0 underspecified.
func (wr *Writer) WriteDyn(v, max uint64) error {
	if max == 0 {
		return fmt.Errorf("max=0: %w", errs.ErrMaxValueIsTooLarge)
	}
	if max <= 1 {
		return nil
	}

	width, err := DynWidth(max)
	if err != nil {
		return err
	}

	buf := wr.scratch[:width]
	for i := width - 1; i >= 0; i-- {
		buf[i] = byte(v)
		v >>= 8
	}

	return wr.writeFull(buf)
}

// WriteASCII writes s followed by a terminating zero byte.
func (wr *Writer) WriteASCII(s string) error {
	if err := wr.writeFull([]byte(s)); err != nil {
		return err
	}

	return wr.WriteUint8(0)
}

// Write2Bits writes seq's packed bytes verbatim; callers are responsible for
// producing a BitSeq whose byte length already matches ceil(bits/8).
func (wr *Writer) Write2Bits(seq BitSeq) error {
	return wr.WriteBytes(seq.Bytes())
}
