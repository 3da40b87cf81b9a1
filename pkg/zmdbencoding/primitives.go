// Package zmdbencoding implements ZMDB's byte-level primitives: bounds-checked
// little-endian scalar reads and slicing (spec §4.1), plus the string and
// GUID decoders layered on top of them (spec §4.2).
//
// Every read here is adapted from the teacher's LSB/MSB scalar helpers in
// iso-kit's pkg/encoding/encoding.go, simplified to plain little-endian
// (ZMDB carries no dual-byte-order redundancy the way ECMA-119 does) and
// made bounds-checked rather than panicking, so a corrupt or truncated
// record degrades into "absent" instead of a crash (spec §4.1, §7).
package zmdbencoding

import "encoding/binary"

// ReadByte reads a single byte at off. ok is false if off is out of range.
func ReadByte(buf []byte, off int) (b byte, ok bool) {
	if off < 0 || off >= len(buf) {
		return 0, false
	}
	return buf[off], true
}

// ReadU16LE reads a little-endian uint16 at off.
func ReadU16LE(buf []byte, off int) (v uint16, ok bool) {
	s, ok := Slice(buf, off, 2)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint16(s), true
}

// ReadU32LE reads a little-endian uint32 at off.
func ReadU32LE(buf []byte, off int) (v uint32, ok bool) {
	s, ok := Slice(buf, off, 4)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint32(s), true
}

// ReadU64LE reads a little-endian uint64 at off.
func ReadU64LE(buf []byte, off int) (v uint64, ok bool) {
	s, ok := Slice(buf, off, 8)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint64(s), true
}

// ReadI32LE reads a little-endian int32 at off.
func ReadI32LE(buf []byte, off int) (v int32, ok bool) {
	u, ok := ReadU32LE(buf, off)
	if !ok {
		return 0, false
	}
	return int32(u), true
}

// Slice returns buf[off : off+length], or !ok if that range leaves buf.
// Callers that need to distinguish absence from a genuine empty/zero value
// must check ok themselves; a missing range never panics.
func Slice(buf []byte, off, length int) (out []byte, ok bool) {
	if off < 0 || length < 0 || off+length > len(buf) || off+length < off {
		return nil, false
	}
	return buf[off : off+length], true
}
