// Package zmdbvarint implements the backwards-varint optional-field tail
// encoding (spec §4.7): a record's tail, beyond its fixed prefix, is scanned
// right to left to recover (field_id, field_data) pairs.
//
// Grounded on the original C++ parse_backwards_varints (original_source's
// ZMDBUtils.cpp) for exact semantics; adapted into bounds-checked,
// panic-free Go matching the bounds-checked style of zmdbencoding.
package zmdbvarint

import "github.com/bgrewell/zmdb-kit/pkg/logging"

// Field is one decoded optional field: its id and its raw data slice, in
// file order.
type Field struct {
	ID   uint32
	Data []byte
}

// Parse scans tail (the bytes of a record beyond its entry_size fixed
// prefix) from the end backwards, decoding (field_id, field_size,
// field_data) triples until an end marker, a bounds error, or an arithmetic
// error is hit. Fields are returned in file order (spec §4.7).
func Parse(tail []byte, log *logging.Logger) []Field {
	if log == nil {
		log = logging.DefaultLogger()
	}
	var reversed []Field
	pos := len(tail) - 1

	for pos >= 0 {
		fieldID, idBytes, ok := readBackwardsFieldID(tail, pos)
		if !ok {
			log.Trace("varint scan: field id read failed, stopping", "pos", pos)
			break
		}
		if fieldID == 0 {
			log.Trace("varint scan: end marker reached", "pos", pos)
			break
		}
		pos -= idBytes

		fieldSize, sizeBytes, ok := readBackwardsFieldSize(tail, pos)
		if !ok {
			log.Trace("varint scan: field size read failed, stopping", "pos", pos)
			break
		}
		pos -= sizeBytes

		dataStart := pos - int(fieldSize) + 1
		if dataStart < 0 {
			log.Trace("varint scan: field data out of range, stopping", "fieldID", fieldID, "size", fieldSize)
			break
		}
		data := tail[dataStart : pos+1]
		reversed = append(reversed, Field{ID: fieldID, Data: data})

		pos = dataStart - 1
	}

	fields := make([]Field, len(reversed))
	for i, f := range reversed {
		fields[len(reversed)-1-i] = f
	}
	return fields
}

// readBackwardsFieldID reads the field_id varint ending at pos, returning
// the id, the number of bytes consumed, and ok.
func readBackwardsFieldID(tail []byte, pos int) (id uint32, consumed int, ok bool) {
	if pos < 0 || pos >= len(tail) {
		return 0, 0, false
	}
	b1 := tail[pos]
	if b1&0x80 == 0 || b1 == 0 {
		return uint32(b1), 1, true
	}
	if pos-1 < 0 {
		return 0, 0, false
	}
	b2 := tail[pos-1]
	return (uint32(b2) << 7) | uint32(b1&0x7F), 2, true
}

// readBackwardsFieldSize reads the field_size varint ending at pos.
func readBackwardsFieldSize(tail []byte, pos int) (size uint32, consumed int, ok bool) {
	if pos < 0 || pos >= len(tail) {
		return 0, 0, false
	}
	b1 := tail[pos]
	if b1&0x80 == 0 {
		return uint32(b1), 1, true
	}
	if pos-1 < 0 {
		return 0, 0, false
	}
	b2 := tail[pos-1]
	if b2 == 0 {
		return (0 << 7) | uint32(b1&0x7F), 2, true
	}
	if pos-2 < 0 {
		return 0, 0, false
	}
	b3 := tail[pos-2]
	low := (uint32(b2)<<7 | uint32(b1&0x7F)) & 0x3FFF
	return uint32(b3)<<14 | low, 3, true
}
