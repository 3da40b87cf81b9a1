package zmdbschema

import (
	"github.com/bgrewell/zmdb-kit/pkg/atomid"
	"github.com/bgrewell/zmdb-kit/pkg/logging"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbencoding"
	"github.com/bgrewell/zmdb-kit/pkg/zmdblibrary"
)

// ParsePicture decodes a Picture (0x03) record. Minimum 24 bytes; the
// title is only present when the payload runs longer than that (spec §4.8).
func ParsePicture(payload []byte, id atomid.ID, resolver Resolver, log *logging.Logger) (zmdblibrary.Picture, bool) {
	if log == nil {
		log = logging.DefaultLogger()
	}
	if len(payload) < 24 {
		log.Trace("picture record too short", "len", len(payload))
		return zmdblibrary.Picture{}, false
	}

	folderRef, _ := zmdbencoding.ReadU32LE(payload, 0)
	photoAlbumRef, _ := zmdbencoding.ReadU32LE(payload, 4)
	collectionRef, _ := zmdbencoding.ReadU32LE(payload, 8)
	fileRef, _ := zmdbencoding.ReadU32LE(payload, 12)
	timestamp, _ := zmdbencoding.ReadU64LE(payload, 16)

	pic := zmdblibrary.Picture{AtomID: id, Timestamp: timestamp}
	if len(payload) > 24 {
		pic.Title = zmdbencoding.ReadUTF8NUL(payload, 24, len(payload)-24)
	}

	if photoAlbumRef != 0 {
		pic.PhotoAlbum = resolver.ResolveString(atomid.ID(photoAlbumRef))
	}
	if folderRef != 0 {
		pic.UserAlbum = resolver.ResolveString(atomid.ID(folderRef))
	}
	if collectionRef != 0 {
		pic.Collection = resolver.ResolveString(atomid.ID(collectionRef))
	}
	if fileRef != 0 {
		pic.Filename = resolver.ResolveString(atomid.ID(fileRef))
	}

	return pic, true
}
