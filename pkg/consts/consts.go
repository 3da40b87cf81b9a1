// Package consts holds the fixed magic values and layout constants that make
// up the ZMDB on-disk format.
package consts

const (
	// ZMDB outer magic at offset 0x00.
	ZMDB_MAGIC = "ZMDB"

	// ZMed inner magic at offset 0x20.
	ZMED_MAGIC = "ZMed"

	// ZMed version values. 5 denotes HD, 2 denotes Classic.
	ZMED_VERSION_HD      = 5
	ZMED_VERSION_CLASSIC = 2

	// ZArr tag marking the start of the descriptor table.
	ZARR_TAG = "ZArr"

	// Window in which the ZArr tag is searched for, 4-byte aligned.
	ZARR_SCAN_START = 0x30
	ZARR_SCAN_END   = 0x100
	ZARR_SCAN_STEP  = 4

	// Fixed offsets of the outer/inner headers.
	HEADER_MIN_SIZE    = 0x30
	ZMED_MAGIC_OFFSET  = 0x20
	ZMED_VERSION_OFFSET = 0x24

	// Descriptor table shape.
	DESCRIPTOR_COUNT           = 96
	DESCRIPTOR_SIZE            = 20
	DESCRIPTOR_ENTRY_SIZE_OFF  = 6
	DESCRIPTOR_ENTRY_COUNT_OFF = 8
	DESCRIPTOR_DATA_OFFSET_OFF = 16

	// Index table (descriptor 0) entry shape: atom_id(u32) + record_offset(u32).
	INDEX_ENTRY_SIZE = 8

	// Record prefix shape: 4 bytes preceding record_offset.
	RECORD_PREFIX_SIZE  = 4
	RECORD_SIZE_MASK    = 0x00FFFFFF
	RECORD_FLAGS_SHIFT  = 24
	RECORD_FLAGS_MASK   = 0x7F
	RECORD_INVALID_BIT  = 0x80000000

	// Atom-id decomposition.
	ATOM_ID_SCHEMA_SHIFT = 24
	ATOM_ID_ENTRY_MASK   = 0x00FFFFFF

	// Album property id prefix: 0x06000000 | entry_id.
	ALBUM_PID_PREFIX = 0x06000000

	// Backwards-varint tail scanning limits, see zmdbvarint.
	VARINT_FIELD_ID_MAX = 0x4000
)
