// Package bitio implements the byte-level and bit-level codec shared by
// every KFF section: big-endian fixed-width integers, zero-terminated ASCII
// strings, the dynamic-width integer field, and the MSB-first packed
// nucleotide bit sequence (BitSeq).
package bitio

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/Kmer-File-Format/kff-go/endian"
	"github.com/Kmer-File-Format/kff-go/errs"
)

// Reader wraps an io.Reader with the primitive reads every KFF section
// builds on.
type Reader struct {
	r      io.Reader
	engine endian.Engine
	scratch [8]byte
}

// NewReader returns a Reader over r using the fixed big-endian byte order.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r, engine: endian.BigEndian()}
}

func (rd *Reader) readFull(n int) ([]byte, error) {
	buf := rd.scratch[:n]
	if _, err := io.ReadFull(rd.r, buf); err != nil {
		return nil, fmt.Errorf("bitio: read %d bytes: %w", n, err)
	}

	return buf, nil
}

// ReadUint8 reads one byte.
func (rd *Reader) ReadUint8() (uint8, error) {
	b, err := rd.readFull(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// ReadUint16 reads a big-endian uint16.
func (rd *Reader) ReadUint16() (uint16, error) {
	b, err := rd.readFull(2)
	if err != nil {
		return 0, err
	}

	return rd.engine.Uint16(b), nil
}

// ReadUint32 reads a big-endian uint32.
func (rd *Reader) ReadUint32() (uint32, error) {
	b, err := rd.readFull(4)
	if err != nil {
		return 0, err
	}

	return rd.engine.Uint32(b), nil
}

// ReadUint64 reads a big-endian uint64.
func (rd *Reader) ReadUint64() (uint64, error) {
	b, err := rd.readFull(8)
	if err != nil {
		return 0, err
	}

	return rd.engine.Uint64(b), nil
}

// ReadInt64 reads a big-endian int64.
func (rd *Reader) ReadInt64() (int64, error) {
	v, err := rd.ReadUint64()
	if err != nil {
		return 0, err
	}

	return int64(v), nil
}

// ReadBool reads one byte; the value is false iff the byte is 0.
func (rd *Reader) ReadBool() (bool, error) {
	b, err := rd.ReadUint8()
	if err != nil {
		return false, err
	}

	return b != 0, nil
}

// ReadNBytes reads exactly n bytes and returns a freshly allocated copy
// (the Reader's internal scratch buffer is too small to reuse beyond 8
// bytes, so callers needing more than that go through this path).
func (rd *Reader) ReadNBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if n == 0 {
		return buf, nil
	}

	if _, err := io.ReadFull(rd.r, buf); err != nil {
		return nil, fmt.Errorf("bitio: read %d bytes: %w", n, err)
	}

	return buf, nil
}

// ReadDyn reads the dynamic-width integer field sized by max (see DynWidth).
// When max <= 1 the field is omitted on disk and ReadDyn returns 1 without
// consuming any bytes. max == 0 is rejected rather than treated as 1: the
// format leaves a declared max of 0 underspecified.
func (rd *Reader) ReadDyn(max uint64) (uint64, error) {
	if max == 0 {
		return 0, fmt.Errorf("max=0: %w", errs.ErrMaxValueIsTooLarge)
	}
	if max <= 1 {
		return 1, nil
	}

	width, err := DynWidth(max)
	if err != nil {
		return 0, err
	}

	buf, err := rd.ReadNBytes(width)
	if err != nil {
		return 0, err
	}

	var v uint64
	for _, b := range buf {
		v = v<<8 | uint64(b)
	}

	return v, nil
}

// ReadASCII reads bytes up to and including a zero terminator and returns
// them without the terminator. An immediate terminator yields an empty,
// valid string.
func (rd *Reader) ReadASCII() (string, error) {
	var out []byte

	for {
		b, err := rd.ReadUint8()
		if err != nil {
			return "", fmt.Errorf("bitio: read ascii: %w", err)
		}

		if b == 0 {
			if !utf8.Valid(out) {
				return "", fmt.Errorf("bitio: read ascii: %w", errs.ErrFromUTF8)
			}
			return string(out), nil
		}

		out = append(out, b)
	}
}

// Read2Bits reads ceil(2*k/8) bytes and returns them as a BitSeq truncated
// to exactly 2*k bits, MSB-first. Any padding bits live in the unused tail
// of the last byte and are discarded.
func (rd *Reader) Read2Bits(k int) (BitSeq, error) {
	nbits := 2 * k
	nbytes := ceilDiv8(nbits)

	buf, err := rd.ReadNBytes(nbytes)
	if err != nil {
		return BitSeq{}, fmt.Errorf("bitio: read 2bits: %w", err)
	}

	return FromBytes(buf, nbits), nil
}
