package section

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Kmer-File-Format/kff-go/bitio"
)

func TestIndexReadWriteRoundTrip(t *testing.T) {
	idx := Index{
		Entries: []IndexEntry{
			{Tag: TagRaw, Delta: -30},
			{Tag: TagMinimizer, Delta: -25},
			{Tag: TagRaw, Delta: -20},
		},
		NextIndex: 0,
	}

	var buf bytes.Buffer
	require.NoError(t, idx.Write(bitio.NewWriter(&buf)))
	require.Equal(t, idx.EncodedLen(), int64(buf.Len()))

	got, err := ReadIndex(bitio.NewReader(&buf))
	require.NoError(t, err)
	require.Equal(t, idx, got)
}

func TestIndexEmptyChainEnd(t *testing.T) {
	idx := Index{NextIndex: 0}

	var buf bytes.Buffer
	require.NoError(t, idx.Write(bitio.NewWriter(&buf)))

	got, err := ReadIndex(bitio.NewReader(&buf))
	require.NoError(t, err)
	require.Empty(t, got.Entries)
	require.Equal(t, int64(0), got.NextIndex)
}
