package kff

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Kmer-File-Format/kff-go/bitio"
	"github.com/Kmer-File-Format/kff-go/errs"
	"github.com/Kmer-File-Format/kff-go/format"
	"github.com/Kmer-File-Format/kff-go/section"
)

func writeScenarioS1File(t *testing.T, path string) {
	t.Helper()

	header, err := section.NewHeader(1, 0, format.DefaultByte, true, true, nil)
	require.NoError(t, err)

	f, err := Create(path, header)
	require.NoError(t, err)

	require.NoError(t, f.WriteValues(section.Values{
		"k": 5, "max": 200, "data_size": 1, "ordered": 1,
	}))

	seq := bitio.FromNucBits([]uint8{0, 1, 2, 3, 3, 3, 1}) // 7 bases: N=3, k=5
	block := section.Block{K: 5, DataSize: 1, Kmer: seq, Data: []byte{1, 2, 3}}
	require.NoError(t, f.WriteRaw([]section.Block{block}))

	idx := section.Index{
		Entries: []section.IndexEntry{
			{Tag: section.TagValues, Delta: -115},
			{Tag: section.TagRaw, Delta: -50},
		},
		NextIndex: 0,
	}
	require.NoError(t, f.WriteIndex(idx))

	footer := section.Values{"first_index": 92}
	require.NoError(t, f.WriteValuesAsFooter(footer))

	require.NoError(t, f.Finalize())
	require.NoError(t, f.Close())
}

func TestFileStreamingMatchesScenarioS1(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s1.kff")
	writeScenarioS1File(t, path)

	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, uint8(1), f.Header().MajorVersion)

	var data [][]byte
	for km, err := range f.Kmers() {
		require.NoError(t, err)
		data = append(data, km.Data)
	}
	require.Equal(t, [][]byte{{1}, {2}, {3}}, data)
}

func TestFileCheckMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s1.kff")
	writeScenarioS1File(t, path)

	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()

	ok, err := f.Check()
	require.NoError(t, err)
	require.True(t, ok)
}

func TestFileIndexedRandomAccess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s1.kff")
	writeScenarioS1File(t, path)

	f, err := OpenIndexed(path)
	require.NoError(t, err)
	defer f.Close()

	require.Len(t, f.idx.Entries, 2)
	require.Equal(t, section.TagValues, f.idx.Entries[0].Tag)
	require.Equal(t, int64(12), f.idx.Entries[0].Offset)
	require.Equal(t, section.TagRaw, f.idx.Entries[1].Tag)
	require.Equal(t, int64(77), f.idx.Entries[1].Offset)

	kmers, err := f.KmerOfSection(1)
	require.NoError(t, err)
	require.Len(t, kmers, 3)
	require.Equal(t, []byte{1}, kmers[0].Data)
	require.Equal(t, []byte{2}, kmers[1].Data)
	require.Equal(t, []byte{3}, kmers[2].Data)

	_, err = f.KmerOfSection(0)
	require.Error(t, err)
}

func TestFileLoadFooter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s1.kff")
	writeScenarioS1File(t, path)

	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()

	footer, err := f.LoadFooter()
	require.NoError(t, err)

	size, err := footer.FooterSize()
	require.NoError(t, err)
	require.Equal(t, uint64(49), size)

	first, err := footer.FirstIndex()
	require.NoError(t, err)
	require.Equal(t, uint64(92), first)
}

func TestFileRejectsWritesAfterFinalize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s1.kff")

	header, err := section.NewHeader(1, 0, format.DefaultByte, true, true, nil)
	require.NoError(t, err)

	f, err := Create(path, header)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, f.Finalize())

	require.ErrorIs(t, f.WriteValues(section.Values{"k": 5}), errs.ErrBlockAlreadyOpen)
	require.ErrorIs(t, f.Finalize(), errs.ErrBlockAlreadyOpen)
}
