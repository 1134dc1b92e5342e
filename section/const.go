package section

// Tag identifies a section by its single leading byte.
const (
	TagValues    byte = 'v'
	TagRaw       byte = 'r'
	TagMinimizer byte = 'm'
	TagIndex     byte = 'i'
	// TagEndMagic is the first byte of the trailing "KFF" magic; a
	// streaming reader that encounters it stops rather than treating it
	// as an unknown section tag.
	TagEndMagic byte = 'K'
)

// Magic is the fixed three-byte marker at the start and end of every file.
const Magic = "KFF"
