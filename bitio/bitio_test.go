package bitio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDynWidthBuckets(t *testing.T) {
	cases := []struct {
		max   uint64
		width int
	}{
		{1, 1},
		{255, 1},
		{256, 2},
		{65535, 2},
		{65536, 4},
		{1 << 32, 8},
		{1<<64 - 1, 8},
	}

	for _, c := range cases {
		w, err := DynWidth(c.max)
		require.NoError(t, err)
		require.Equal(t, c.width, w, "max=%d", c.max)
	}
}

func TestDynWidthZeroRejected(t *testing.T) {
	_, err := DynWidth(0)
	require.Error(t, err)
}

func TestReadWriteDynRoundTrip(t *testing.T) {
	for _, max := range []uint64{1, 200, 65535, 1 << 40} {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		require.NoError(t, w.WriteDyn(max, max))

		r := NewReader(&buf)
		got, err := r.ReadDyn(max)
		require.NoError(t, err)
		require.Equal(t, max, got)
	}
}

func TestReadWriteDynRejectsZeroMax(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.Error(t, w.WriteDyn(1, 0))

	r := NewReader(bytes.NewReader([]byte{0}))
	_, err := r.ReadDyn(0)
	require.Error(t, err)
}

func TestReadWriteDynOmittedWhenMaxLEOne(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteDyn(1, 1))
	require.Equal(t, 0, buf.Len())

	r := NewReader(&buf)
	v, err := r.ReadDyn(1)
	require.NoError(t, err)
	require.Equal(t, uint64(1), v)
}

func TestReadASCIIStripsTerminator(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte("hello\x00rest")))
	s, err := r.ReadASCII()
	require.NoError(t, err)
	require.Equal(t, "hello", s)
}

func TestReadASCIIEmpty(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0}))
	s, err := r.ReadASCII()
	require.NoError(t, err)
	require.Equal(t, "", s)
}

func TestReadASCIIRejectsInvalidUTF8(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xff, 0xfe, 0}))
	_, err := r.ReadASCII()
	require.Error(t, err)
}

func TestWriteASCIIAppendsTerminator(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteASCII("k"))
	require.Equal(t, []byte{'k', 0}, buf.Bytes())
}

func TestRead2BitsMatchesScenarioS1(t *testing.T) {
	// S1: sequence bits 0001101111110100, N=3, k=5 => 2*(3+5-1) = 14 bits.
	data := []byte{0b00011011, 0b11110100}
	r := NewReader(bytes.NewReader(data))
	seq, err := r.Read2Bits(7) // 14 bits / 2 = 7 "k-mer units" worth of bases
	require.NoError(t, err)
	require.Equal(t, 14, seq.Len())

	var bits string
	for i := 0; i < seq.Len(); i++ {
		bits += []string{"0", "1"}[seq.Bit(i)]
	}
	require.Equal(t, "00011011111101", bits)
}

func TestBitSeqSliceAndConcat(t *testing.T) {
	codes := []uint8{0, 1, 2, 3, 1}
	full := FromNucBits(codes)
	require.Equal(t, codes, full.ToNucBits())

	head := full.Slice(0, 2)  // first nucleotide worth of bits (2 bits)
	tail := full.Slice(4, 10) // remaining 3 nucleotides

	spliced := head.Concat(tail)
	require.Equal(t, []uint8{0, 2, 3, 1}, spliced.ToNucBits())
}

func TestBitSeqSet2Bits(t *testing.T) {
	s := NewBitSeq(6)
	s.Set2Bits(0, 0b01)
	s.Set2Bits(1, 0b10)
	s.Set2Bits(2, 0b11)
	require.Equal(t, []uint8{0b01, 0b10, 0b11}, s.ToNucBits())
}
