// Package zmdbdescriptor parses the 96-entry descriptor table and the index
// table it anchors, grounded on iso-kit's path-table reader
// (pkg/path/table.go) which shares the same shape: a fixed-size table of
// small records, each pointing at a flat array elsewhere in the file.
package zmdbdescriptor

import (
	"github.com/bgrewell/zmdb-kit/pkg/atomid"
	"github.com/bgrewell/zmdb-kit/pkg/consts"
	"github.com/bgrewell/zmdb-kit/pkg/logging"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbencoding"
)

// Descriptor describes one flat array of fixed-size entries elsewhere in the
// file (spec §3.2, §4.4).
type Descriptor struct {
	EntrySize  uint16
	EntryCount uint32
	DataOffset uint32
}

// Inert reports whether this descriptor carries no entries.
func (d Descriptor) Inert() bool {
	return d.EntryCount == 0
}

// Table is the fixed sequence of 96 descriptors beginning at a header's
// DescriptorBase.
type Table [consts.DESCRIPTOR_COUNT]Descriptor

// ReadTable parses all 96 descriptors starting at base. A descriptor that
// cannot be fully read (buffer too short) is left zero-valued/inert rather
// than aborting the whole table (spec §4.4, §7).
func ReadTable(data []byte, base int, log *logging.Logger) Table {
	if log == nil {
		log = logging.DefaultLogger()
	}
	var table Table
	for i := 0; i < consts.DESCRIPTOR_COUNT; i++ {
		off := base + i*consts.DESCRIPTOR_SIZE
		rec, ok := zmdbencoding.Slice(data, off, consts.DESCRIPTOR_SIZE)
		if !ok {
			log.Trace("descriptor out of range, leaving inert", "index", i)
			continue
		}
		entrySize, _ := zmdbencoding.ReadU16LE(rec, consts.DESCRIPTOR_ENTRY_SIZE_OFF)
		entryCount, _ := zmdbencoding.ReadU32LE(rec, consts.DESCRIPTOR_ENTRY_COUNT_OFF)
		dataOffset, _ := zmdbencoding.ReadU32LE(rec, consts.DESCRIPTOR_DATA_OFFSET_OFF)
		table[i] = Descriptor{EntrySize: entrySize, EntryCount: entryCount, DataOffset: dataOffset}
	}
	return table
}

// Index maps an atom-id to the record offset it points to.
type Index map[atomid.ID]uint32

// BuildIndex builds the atom-id -> record-offset map from descriptor 0, per
// spec §3.2/§4.5. Descriptor 0's entry size must be 8 (atom_id u32 +
// record_offset u32); if it isn't, the index is empty. Duplicate atom-ids
// keep the last-seen offset.
func BuildIndex(data []byte, descriptors Table, log *logging.Logger) Index {
	if log == nil {
		log = logging.DefaultLogger()
	}
	idx := make(Index)
	zero := descriptors[0]
	if zero.EntrySize != consts.INDEX_ENTRY_SIZE {
		log.Debug("descriptor 0 entry size is not 8, index table empty", "entrySize", zero.EntrySize)
		return idx
	}
	for i := uint32(0); i < zero.EntryCount; i++ {
		off := int(zero.DataOffset) + int(i)*consts.INDEX_ENTRY_SIZE
		entry, ok := zmdbencoding.Slice(data, off, consts.INDEX_ENTRY_SIZE)
		if !ok {
			log.Trace("index entry out of range, stopping", "entry", i)
			break
		}
		rawID, _ := zmdbencoding.ReadU32LE(entry, 0)
		recordOffset, _ := zmdbencoding.ReadU32LE(entry, 4)
		idx[atomid.ID(rawID)] = recordOffset
	}
	return idx
}
