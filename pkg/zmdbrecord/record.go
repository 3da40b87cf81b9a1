// Package zmdbrecord reads the 4-byte record prefix and the payload it
// describes, grounded on iso-kit's directory record reader
// (pkg/directory/record.go) which validates a fixed header before trusting
// the variable region that follows it.
package zmdbrecord

import (
	"github.com/bgrewell/zmdb-kit/pkg/consts"
	"github.com/bgrewell/zmdb-kit/pkg/logging"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbencoding"
)

// Record is a validated record: its opaque flags and its payload slice.
type Record struct {
	Flags   byte
	Payload []byte
}

// Read fetches the prefix at recordOffset-4, validates the top bit is zero,
// and returns the payload data[recordOffset : recordOffset+recordSize]. Any
// bounds or validity failure reports the record absent (spec §3.3, §4.6).
func Read(data []byte, recordOffset uint32, log *logging.Logger) (rec Record, ok bool) {
	if log == nil {
		log = logging.DefaultLogger()
	}
	prefixOff := int(recordOffset) - consts.RECORD_PREFIX_SIZE
	prefix, sliceOk := zmdbencoding.ReadU32LE(data, prefixOff)
	if !sliceOk {
		log.Trace("record prefix out of range", "recordOffset", recordOffset)
		return Record{}, false
	}

	if prefix&consts.RECORD_INVALID_BIT != 0 {
		log.Debug("record prefix top bit set, invalid", "recordOffset", recordOffset)
		return Record{}, false
	}

	size := prefix & consts.RECORD_SIZE_MASK
	flags := byte((prefix >> consts.RECORD_FLAGS_SHIFT) & consts.RECORD_FLAGS_MASK)

	payload, sliceOk := zmdbencoding.Slice(data, int(recordOffset), int(size))
	if !sliceOk {
		log.Trace("record payload out of range", "recordOffset", recordOffset, "size", size)
		return Record{}, false
	}

	return Record{Flags: flags, Payload: payload}, true
}
