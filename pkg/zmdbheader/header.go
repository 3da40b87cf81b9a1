// Package zmdbheader validates the outer/inner ZMDB magic and locates the
// descriptor table, grounded on iso-kit's volume-descriptor header checks
// (pkg/descriptor/volumeDescriptor.go) adapted to ZMDB's fixed-offset layout
// instead of ISO9660's sector-scanned volume descriptor chain.
package zmdbheader

import (
	"github.com/bgrewell/zmdb-kit/pkg/consts"
	"github.com/bgrewell/zmdb-kit/pkg/logging"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbencoding"
)

// Version is the ZMed version byte at offset 0x24.
type Version uint8

const (
	VersionClassic Version = consts.ZMED_VERSION_CLASSIC
	VersionHD      Version = consts.ZMED_VERSION_HD
)

// Header holds the validated fixed portion of a ZMDB file: its version and
// the absolute offset of the descriptor table (the "ZArr" tag itself).
type Header struct {
	Version        Version
	DescriptorBase int
}

// Read validates the outer "ZMDB" magic at 0x00, the inner "ZMed" magic at
// 0x20, reads the version byte at 0x24, and locates "ZArr" by a 4-byte
// aligned scan in [0x30, 0x100). Any failure is reported as !ok — the caller
// (the root Extract driver) treats that as CorruptHeader and returns an
// empty library unless strict mode was requested (spec §4.3, §7).
func Read(data []byte, log *logging.Logger) (hdr Header, ok bool) {
	if log == nil {
		log = logging.DefaultLogger()
	}
	if len(data) < consts.HEADER_MIN_SIZE {
		log.Trace("buffer shorter than minimum header size", "len", len(data))
		return Header{}, false
	}

	magic, sliceOk := zmdbencoding.Slice(data, 0, len(consts.ZMDB_MAGIC))
	if !sliceOk || string(magic) != consts.ZMDB_MAGIC {
		log.Trace("outer magic mismatch", "got", string(magic))
		return Header{}, false
	}

	inner, sliceOk := zmdbencoding.Slice(data, consts.ZMED_MAGIC_OFFSET, len(consts.ZMED_MAGIC))
	if !sliceOk || string(inner) != consts.ZMED_MAGIC {
		log.Trace("inner ZMed magic mismatch", "got", string(inner))
		return Header{}, false
	}

	versionByte, byteOk := zmdbencoding.ReadByte(data, consts.ZMED_VERSION_OFFSET)
	if !byteOk {
		log.Trace("version byte out of range")
		return Header{}, false
	}

	base, found := scanForZArr(data)
	if !found {
		log.Trace("ZArr tag not found in scan window")
		return Header{}, false
	}

	log.Debug("ZMDB header validated", "version", versionByte, "descriptorBase", base)
	return Header{Version: Version(versionByte), DescriptorBase: base}, true
}

func scanForZArr(data []byte) (offset int, found bool) {
	for off := consts.ZARR_SCAN_START; off+len(consts.ZARR_TAG) <= consts.ZARR_SCAN_END; off += consts.ZARR_SCAN_STEP {
		tag, ok := zmdbencoding.Slice(data, off, len(consts.ZARR_TAG))
		if ok && string(tag) == consts.ZARR_TAG {
			return off, true
		}
	}
	return 0, false
}
