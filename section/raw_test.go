package section

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Kmer-File-Format/kff-go/bitio"
	"github.com/Kmer-File-Format/kff-go/errs"
)

func TestRawSectionReadWriteRoundTrip(t *testing.T) {
	v := Values{"k": 5, "max": 200, "data_size": 1}
	rawCtx, err := NewRaw(v)
	require.NoError(t, err)

	seq := bitio.FromNucBits([]uint8{0, 1, 2, 3, 3, 3, 1}) // 7 bases: N=3, k=5
	blocks := []Block{{K: 5, DataSize: 1, Kmer: seq, Data: []byte{1, 2, 3}}}

	var buf bytes.Buffer
	require.NoError(t, rawCtx.Write(bitio.NewWriter(&buf), blocks))

	kmers, err := rawCtx.Read(bitio.NewReader(&buf))
	require.NoError(t, err)
	require.Len(t, kmers, 3)
	require.Equal(t, []byte{1}, kmers[0].Data)
	require.Equal(t, []byte{2}, kmers[1].Data)
	require.Equal(t, []byte{3}, kmers[2].Data)
}

func TestRawSectionRequiresFields(t *testing.T) {
	_, err := NewRaw(Values{})
	require.Error(t, err)
}

func TestRawSectionRejectsZeroMax(t *testing.T) {
	_, err := NewRaw(Values{"k": 5, "max": 0, "data_size": 1})
	require.ErrorIs(t, err, errs.ErrMaxValueIsTooLarge)
}
