package section

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Kmer-File-Format/kff-go/bitio"
)

func TestValuesWriteReadRoundTrip(t *testing.T) {
	v := Values{"k": 5, "max": 200, "data_size": 1, "ordered": 1}

	var buf bytes.Buffer
	require.NoError(t, v.Write(bitio.NewWriter(&buf)))

	got, err := ReadValues(bitio.NewReader(&buf))
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestValuesTypedAccessorsMissing(t *testing.T) {
	v := Values{}
	_, err := v.K()
	require.Error(t, err)
}

func TestValuesOrderedDefaultsFalse(t *testing.T) {
	v := Values{}
	require.False(t, v.Ordered())
	v["ordered"] = 1
	require.True(t, v.Ordered())
}

func TestValuesMergeReplacesKeys(t *testing.T) {
	a := Values{"k": 5, "max": 200}
	b := Values{"max": 255, "data_size": 1}

	merged := a.Merge(b)
	require.Equal(t, Values{"k": 5, "max": 255, "data_size": 1}, merged)
	// receiver untouched
	require.Equal(t, Values{"k": 5, "max": 200}, a)
}

func TestValuesWriteAsFooterSizeMatchesScenario(t *testing.T) {
	// Smallest footer: no names besides the self-measured footer_size
	// itself, matching the concrete byte distance asserted by the format's
	// footer round-trip.
	v := Values{}

	var buf bytes.Buffer
	require.NoError(t, v.WriteAsFooter(bitio.NewWriter(&buf)))

	got, err := ReadValues(bitio.NewReader(&buf))
	require.NoError(t, err)

	size, err := got.FooterSize()
	require.NoError(t, err)
	// tag(1) + count(8) + "footer_size\0"(12) + value(8) = 29
	require.Equal(t, uint64(29), size)
}
