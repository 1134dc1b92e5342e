// Package endian provides the byte-order engine used by bitio for all
// multi-byte integer fields.
//
// KFF fixes big-endian for every multi-byte field on disk, so this package
// only exposes the big-endian engine; there is no little-endian variant and
// no runtime endianness negotiation.
package endian

import "encoding/binary"

// Engine combines ByteOrder and AppendByteOrder from encoding/binary into a
// single interface, satisfied by binary.BigEndian.
type Engine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// BigEndian returns the engine used for every fixed-width integer field in
// a KFF file.
func BigEndian() Engine {
	return binary.BigEndian
}
