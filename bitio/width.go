package bitio

import (
	"fmt"

	"github.com/Kmer-File-Format/kff-go/errs"
)

// DynWidth returns the number of bytes B(max) needed to hold any value in
// [0, max] as a big-endian unsigned integer, bucketed into {1,2,4,8}. max
// must be representable (max >= 1); max == 0 is rejected with
// errs.ErrMaxValueIsTooLarge since the format leaves it underspecified.
func DynWidth(max uint64) (int, error) {
	if max == 0 {
		return 0, fmt.Errorf("max=0: %w", errs.ErrMaxValueIsTooLarge)
	}

	bits := bitsNeeded(max)

	switch {
	case bits <= 8:
		return 1, nil
	case bits <= 16:
		return 2, nil
	case bits <= 32:
		return 4, nil
	case bits <= 64:
		return 8, nil
	default:
		return 0, fmt.Errorf("max=%d: %w", max, errs.ErrMaxValueIsTooLarge)
	}
}

// bitsNeeded returns ceil(log2(v+1)), the number of bits required to
// represent every value in [0, v].
func bitsNeeded(v uint64) int {
	if v == 0 {
		return 1
	}

	n := 0
	for v > 0 {
		n++
		v >>= 1
	}

	return n
}
