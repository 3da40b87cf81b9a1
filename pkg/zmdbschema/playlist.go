package zmdbschema

import (
	"github.com/bgrewell/zmdb-kit/pkg/atomid"
	"github.com/bgrewell/zmdb-kit/pkg/logging"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbencoding"
	"github.com/bgrewell/zmdb-kit/pkg/zmdblibrary"
)

// ParsePlaylist decodes a Playlist (0x07) record. Member tracks are stored
// as atom-ids only, standardizing away the legacy HD behavior of resolving
// and storing full Track values inline (spec §4.8, §9).
func ParsePlaylist(payload []byte, id atomid.ID, log *logging.Logger) (zmdblibrary.Playlist, bool) {
	if log == nil {
		log = logging.DefaultLogger()
	}
	if len(payload) < 12 {
		log.Trace("playlist record too short", "len", len(payload))
		return zmdblibrary.Playlist{}, false
	}

	folderRef, _ := zmdbencoding.ReadU32LE(payload, 8)

	playlist := zmdblibrary.Playlist{AtomID: id, Folder: atomid.ID(folderRef)}
	playlist.Name = zmdbencoding.ReadUTF8NUL(payload, 12, len(payload)-12)

	guidOff := 12 + len(playlist.Name) + 1
	if guid, ok := zmdbencoding.Slice(payload, guidOff, 16); ok {
		playlist.GUID = zmdbencoding.FormatGUID(guid)
	} else {
		log.Trace("playlist guid out of range")
		return playlist, true
	}

	filenameOff := guidOff + 16 + 2
	filenameEnd := utf16DoubleNullEnd(payload, filenameOff)
	playlist.Filename = zmdbencoding.ReadUTF16LEDoubleNUL(payload, filenameOff, filenameEnd-filenameOff)

	trackArrayOff := filenameEnd + 2
	for off := trackArrayOff; ; off += 4 {
		v, ok := zmdbencoding.ReadU32LE(payload, off)
		if !ok || v == 0 {
			break
		}
		playlist.TrackAtomIDs = append(playlist.TrackAtomIDs, atomid.ID(v))
	}

	return playlist, true
}

// utf16DoubleNullEnd scans forward from off for a 16-bit zero code unit and
// returns the offset immediately past it, or len(buf) if none is found.
func utf16DoubleNullEnd(buf []byte, off int) int {
	if off < 0 || off >= len(buf) {
		return off
	}
	i := off
	for i+1 < len(buf) {
		if buf[i] == 0 && buf[i+1] == 0 {
			return i + 2
		}
		i += 2
	}
	return len(buf)
}
