package section

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Kmer-File-Format/kff-go/bitio"
	"github.com/Kmer-File-Format/kff-go/errs"
)

func TestMinimizerSectionReadScenario(t *testing.T) {
	v := Values{"k": 5, "m": 3, "max": 100, "data_size": 1}
	ctx, err := NewMinimizer(v)
	require.NoError(t, err)

	var data bytes.Buffer
	data.Write([]byte{0b01101100})
	data.Write([]byte{0, 0, 0, 0, 0, 0, 0, 3})
	data.Write([]byte{3, 1, 0b00111101, 1, 2, 3})
	data.Write([]byte{2, 1, 0b00111111, 1, 2})
	data.Write([]byte{1, 1, 0b00110000, 1})

	kmers, err := ctx.Read(bitio.NewReader(&data))
	require.NoError(t, err)
	require.Len(t, kmers, 6)
	require.Equal(t, []byte{1}, kmers[0].Data)
	require.Equal(t, []byte{3}, kmers[2].Data)
}

func TestMinimizerSectionRequiresFields(t *testing.T) {
	_, err := NewMinimizer(Values{"k": 5})
	require.Error(t, err)
}

func TestMinimizerSectionRejectsZeroMax(t *testing.T) {
	_, err := NewMinimizer(Values{"k": 5, "m": 3, "max": 0, "data_size": 1})
	require.ErrorIs(t, err, errs.ErrMaxValueIsTooLarge)
}
