// Package errs defines the sentinel errors returned at the API boundaries of
// the kff module. Callers are expected to compare with errors.Is, since every
// sentinel here is wrapped with call-site context via fmt.Errorf("...: %w", ...).
package errs

import "errors"

var (
	// ErrMissingMagic is returned when the leading or trailing "KFF" magic
	// bytes are absent or do not match.
	ErrMissingMagic = errors.New("kff: missing or invalid KFF magic")

	// ErrHighMajorVersionNumber is returned when a file declares a major
	// version number this implementation does not support.
	ErrHighMajorVersionNumber = errors.New("kff: unsupported major version number")

	// ErrHighMinorVersionNumber is returned when a file declares a minor
	// version number this implementation does not support.
	ErrHighMinorVersionNumber = errors.New("kff: unsupported minor version number")

	// ErrBadEncoding is returned when the encoding byte fails the
	// pairwise-distinct nucleotide mapping invariant.
	ErrBadEncoding = errors.New("kff: encoding byte is not valid")

	// ErrFieldIsMissing is returned when a required Values entry is absent
	// at the start of a Raw or Minimizer section.
	ErrFieldIsMissing = errors.New("kff: required values field is missing")

	// ErrMaxValueIsTooLarge is returned when a declared max is outside the
	// representable range, including max == 0.
	ErrMaxValueIsTooLarge = errors.New("kff: max value is too large")

	// ErrFooterSizeNotCorrect is returned when footer discovery did not
	// land on a Values section tag.
	ErrFooterSizeNotCorrect = errors.New("kff: footer size does not point to a values section")

	// ErrNotASectionPrefix is returned when a byte read where a section tag
	// was expected does not match any known tag.
	ErrNotASectionPrefix = errors.New("kff: byte is not a valid section tag")

	// ErrNotAnIndex is returned when an indexed open expected an index
	// section tag but read something else.
	ErrNotAnIndex = errors.New("kff: expected an index section")

	// ErrNoFirstIndex is returned when an indexed open cannot find
	// first_index in the footer values.
	ErrNoFirstIndex = errors.New("kff: footer has no first_index field")

	// ErrNoIndex is returned when a random-access call is made without a
	// loaded global index.
	ErrNoIndex = errors.New("kff: no global index has been loaded")

	// ErrNoValueSectionBeforeTarget is returned when random access cannot
	// recover the values context applicable to a target section.
	ErrNoValueSectionBeforeTarget = errors.New("kff: no values section precedes the target section")

	// ErrNotAKmerSection is returned when random access targets a section
	// that holds no k-mers.
	ErrNotAKmerSection = errors.New("kff: target section is not a kmer section")

	// ErrFromUTF8 is returned when a values entry name is not valid UTF-8.
	ErrFromUTF8 = errors.New("kff: values name is not valid utf-8")

	// ErrCommentTooLarge is returned when a header free-block comment
	// exceeds the representable length.
	ErrCommentTooLarge = errors.New("kff: free block comment is too large")

	// ErrBlockAlreadyOpen is returned by a Write* call made on a File
	// after Finalize has already closed it.
	ErrBlockAlreadyOpen = errors.New("kff: a block section is already open")
)
