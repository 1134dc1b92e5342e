package section

import (
	"fmt"
	"sort"

	"github.com/Kmer-File-Format/kff-go/bitio"
	"github.com/Kmer-File-Format/kff-go/errs"
)

// Recognised Values names.
const (
	KeyK           = "k"
	KeyM           = "m"
	KeyMax         = "max"
	KeyDataSize    = "data_size"
	KeyOrdered     = "ordered"
	KeyFirstIndex  = "first_index"
	KeyFooterSize  = "footer_size"
)

// Values is the current global-variables context: an ASCII name to u64
// mapping. Each Values section read replaces the keys it carries and
// leaves the rest of the context untouched; there is no merge beyond that.
type Values map[string]uint64

// NewValues returns an empty Values with capacity hinted by n.
func NewValues(n int) Values {
	return make(Values, n)
}

// ReadValues parses a Values section body (the tag is assumed already
// consumed).
func ReadValues(r *bitio.Reader) (Values, error) {
	n, err := r.ReadUint64()
	if err != nil {
		return nil, fmt.Errorf("values: count: %w", err)
	}

	v := make(Values, n)
	for i := uint64(0); i < n; i++ {
		name, err := r.ReadASCII()
		if err != nil {
			return nil, fmt.Errorf("values: entry %d name: %w", i, err)
		}

		val, err := r.ReadUint64()
		if err != nil {
			return nil, fmt.Errorf("values: entry %d value: %w", i, err)
		}

		v[name] = val
	}

	return v, nil
}

// Write serializes the Values body (the tag is the caller's
// responsibility). Entries are written in sorted-name order; the format
// itself leaves entry order unconstrained, but a stable order keeps
// encodings reproducible.
func (v Values) Write(w *bitio.Writer) error {
	if err := w.WriteUint64(uint64(len(v))); err != nil {
		return err
	}

	for _, name := range v.sortedNames() {
		if err := w.WriteASCII(name); err != nil {
			return err
		}
		if err := w.WriteUint64(v[name]); err != nil {
			return err
		}
	}

	return nil
}

func (v Values) sortedNames() []string {
	names := make([]string, 0, len(v))
	for name := range v {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// byteSize returns the number of bytes Write would emit for the body alone
// (no leading tag), used to compute footer_size.
func (v Values) byteSize() uint64 {
	size := uint64(8) // count field
	for name := range v {
		size += uint64(len(name)) + 1 + 8
	}

	return size
}

// WriteAsFooter writes v as the file's final Values section, augmented
// with a footer_size entry whose value is the exact byte count from this
// section's tag through the footer_size value field itself (1 tag byte +
// the body size including the footer_size entry). footer_size is always
// serialized last, so LoadFooter can find it a fixed distance before EOF
// regardless of what other names v carries.
func (v Values) WriteAsFooter(w *bitio.Writer) error {
	if _, ok := v[KeyFooterSize]; ok {
		rest := make(Values, len(v)-1)
		for name, val := range v {
			if name != KeyFooterSize {
				rest[name] = val
			}
		}
		v = rest
	}

	footerEntrySize := uint64(len(KeyFooterSize)) + 1 + 8
	footerSize := 1 + v.byteSize() + footerEntrySize

	if err := w.WriteUint64(uint64(len(v) + 1)); err != nil {
		return err
	}

	for _, name := range v.sortedNames() {
		if name == KeyFooterSize {
			continue
		}
		if err := w.WriteASCII(name); err != nil {
			return err
		}
		if err := w.WriteUint64(v[name]); err != nil {
			return err
		}
	}

	if err := w.WriteASCII(KeyFooterSize); err != nil {
		return err
	}

	return w.WriteUint64(footerSize)
}

func (v Values) typed(name string) (uint64, error) {
	val, ok := v[name]
	if !ok {
		return 0, fmt.Errorf("%s: %w", name, errs.ErrFieldIsMissing)
	}

	return val, nil
}

// K returns the required k-mer length.
func (v Values) K() (uint64, error) { return v.typed(KeyK) }

// M returns the required minimizer length.
func (v Values) M() (uint64, error) { return v.typed(KeyM) }

// Max returns the required per-block k-mer count bound.
func (v Values) Max() (uint64, error) { return v.typed(KeyMax) }

// DataSize returns the required per-k-mer payload size.
func (v Values) DataSize() (uint64, error) { return v.typed(KeyDataSize) }

// Ordered reports whether k-mers within a section are lexicographically
// ordered; defaults to false if absent (the field is not required).
func (v Values) Ordered() bool {
	return v[KeyOrdered] != 0
}

// FirstIndex returns the absolute offset of the first Index section, as
// recorded in a footer.
func (v Values) FirstIndex() (uint64, error) { return v.typed(KeyFirstIndex) }

// FooterSize returns the self-described byte length of a footer.
func (v Values) FooterSize() (uint64, error) { return v.typed(KeyFooterSize) }

// Merge replaces v's entries with other's, key by key, returning the
// merged context. The receiver is not mutated.
func (v Values) Merge(other Values) Values {
	out := make(Values, len(v)+len(other))
	for k, val := range v {
		out[k] = val
	}
	for k, val := range other {
		out[k] = val
	}

	return out
}
