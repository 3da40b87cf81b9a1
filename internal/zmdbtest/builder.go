// Package zmdbtest builds synthetic ZMDB file buffers for tests, mirroring
// the teacher's internal/testing helper-package convention: test-support
// code that is not itself a _test.go file, reusable across every package
// that needs a realistic on-disk buffer to parse.
package zmdbtest

import (
	"encoding/binary"

	"github.com/bgrewell/zmdb-kit/pkg/atomid"
	"github.com/bgrewell/zmdb-kit/pkg/consts"
)

// Builder assembles a ZMDB file buffer byte-by-byte. Every Put* method
// bounds-grows the underlying buffer, so callers can write fields in any
// order.
type Builder struct {
	buf []byte
}

// NewBuilder returns a Builder preallocated to size bytes.
func NewBuilder(size int) *Builder {
	return &Builder{buf: make([]byte, size)}
}

// Bytes returns the assembled buffer.
func (b *Builder) Bytes() []byte {
	return b.buf
}

func (b *Builder) grow(end int) {
	if end > len(b.buf) {
		next := make([]byte, end)
		copy(next, b.buf)
		b.buf = next
	}
}

// PutByte writes a single byte at off.
func (b *Builder) PutByte(off int, v byte) {
	b.grow(off + 1)
	b.buf[off] = v
}

// PutU16LE writes a little-endian uint16 at off.
func (b *Builder) PutU16LE(off int, v uint16) {
	b.grow(off + 2)
	binary.LittleEndian.PutUint16(b.buf[off:], v)
}

// PutU32LE writes a little-endian uint32 at off.
func (b *Builder) PutU32LE(off int, v uint32) {
	b.grow(off + 4)
	binary.LittleEndian.PutUint32(b.buf[off:], v)
}

// PutU64LE writes a little-endian uint64 at off.
func (b *Builder) PutU64LE(off int, v uint64) {
	b.grow(off + 8)
	binary.LittleEndian.PutUint64(b.buf[off:], v)
}

// PutBytes copies data verbatim starting at off.
func (b *Builder) PutBytes(off int, data []byte) {
	b.grow(off + len(data))
	copy(b.buf[off:], data)
}

// PutUTF8NUL writes s followed by a NUL terminator at off, returning the
// offset immediately past the terminator.
func (b *Builder) PutUTF8NUL(off int, s string) int {
	b.PutBytes(off, []byte(s))
	b.PutByte(off+len(s), 0)
	return off + len(s) + 1
}

// PutUTF16LEDoubleNUL writes s as UTF-16LE (BMP only) followed by a 16-bit
// zero code unit, returning the offset immediately past the terminator.
func (b *Builder) PutUTF16LEDoubleNUL(off int, s string) int {
	pos := off
	for _, r := range s {
		b.PutU16LE(pos, uint16(r))
		pos += 2
	}
	b.PutU16LE(pos, 0)
	return pos + 2
}

// PutGUID writes a 16-byte GUID verbatim (caller supplies raw bytes, e.g.
// from zmdbencoding.ParseGUID).
func (b *Builder) PutGUID(off int, guid [16]byte) {
	b.PutBytes(off, guid[:])
}

// WriteHeader writes the outer/inner magic, version byte, and "ZArr" tag at
// the given descriptor base (must fall within [0x30, 0x100), 4-byte
// aligned, per spec §3.2).
func (b *Builder) WriteHeader(version byte, descriptorBase int) {
	b.PutBytes(0x00, []byte(consts.ZMDB_MAGIC))
	b.PutBytes(consts.ZMED_MAGIC_OFFSET, []byte(consts.ZMED_MAGIC))
	b.PutByte(consts.ZMED_VERSION_OFFSET, version)
	b.PutBytes(descriptorBase, []byte(consts.ZARR_TAG))
}

// WriteDescriptor writes descriptor index's entry_size/entry_count/
// data_offset fields, given the table's base offset.
func (b *Builder) WriteDescriptor(base, index int, entrySize uint16, entryCount, dataOffset uint32) {
	off := base + index*consts.DESCRIPTOR_SIZE
	b.PutU16LE(off+consts.DESCRIPTOR_ENTRY_SIZE_OFF, entrySize)
	b.PutU32LE(off+consts.DESCRIPTOR_ENTRY_COUNT_OFF, entryCount)
	b.PutU32LE(off+consts.DESCRIPTOR_DATA_OFFSET_OFF, dataOffset)
}

// WriteIndexEntry writes one 8-byte (atom_id, record_offset) pair at
// descriptor-0's data_offset + slot*8.
func (b *Builder) WriteIndexEntry(indexDataOffset, slot int, id atomid.ID, recordOffset uint32) {
	off := indexDataOffset + slot*consts.INDEX_ENTRY_SIZE
	b.PutU32LE(off, uint32(id))
	b.PutU32LE(off+4, recordOffset)
}

// WriteRecord writes a record's 4-byte prefix at recordOffset-4 (size,
// flags, invalid bit clear) and the payload starting at recordOffset.
func (b *Builder) WriteRecord(recordOffset int, flags byte, payload []byte) {
	prefix := uint32(len(payload))&consts.RECORD_SIZE_MASK | uint32(flags&consts.RECORD_FLAGS_MASK)<<consts.RECORD_FLAGS_SHIFT
	b.PutU32LE(recordOffset-consts.RECORD_PREFIX_SIZE, prefix)
	b.PutBytes(recordOffset, payload)
}

// WriteDescriptorEntryAtomID writes a descriptor entry slot's leading
// 4-byte atom-id at base + slot*entrySize.
func (b *Builder) WriteDescriptorEntryAtomID(dataOffset, slot, entrySize int, id atomid.ID) {
	b.PutU32LE(dataOffset+slot*entrySize, uint32(id))
}
