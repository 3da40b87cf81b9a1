package zmdbschema

import (
	"github.com/bgrewell/zmdb-kit/pkg/atomid"
	"github.com/bgrewell/zmdb-kit/pkg/logging"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbencoding"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbfamily"
	"github.com/bgrewell/zmdb-kit/pkg/zmdblibrary"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbvarint"
)

// IsArtistPlaceholder reports whether an artist record's category-ref
// (bytes 0..4) is zero, the "guid placeholder" marker that callers must
// treat as absent rather than a zero-named artist (spec §4.8, §4.9).
func IsArtistPlaceholder(payload []byte) bool {
	ref, ok := zmdbencoding.ReadU32LE(payload, 0)
	return !ok || ref == 0
}

// ParseArtist decodes an Artist (0x08) record. The caller is responsible
// for skipping placeholders (IsArtistPlaceholder) before calling this.
func ParseArtist(payload []byte, id atomid.ID, family zmdbfamily.Family, log *logging.Logger) (zmdblibrary.Artist, bool) {
	if log == nil {
		log = logging.DefaultLogger()
	}
	if len(payload) < 4 {
		log.Trace("artist record too short", "len", len(payload))
		return zmdblibrary.Artist{}, false
	}

	artist := zmdblibrary.Artist{AtomID: id}

	nameOffset := 4
	if family == zmdbfamily.Classic {
		nameOffset = 1
	}
	artist.Name = zmdbencoding.ReadUTF8NUL(payload, nameOffset, len(payload)-nameOffset)

	tail := tailSlice(payload, zmdbfamily.EntrySize(atomid.SchemaArtist))
	for _, f := range zmdbvarint.Parse(tail, log) {
		switch f.ID {
		case fieldFilename:
			artist.ArtRef = zmdbencoding.DecodeUTF16LEPadded(f.Data)
		case fieldArtistGUID:
			if len(f.Data) == 16 {
				artist.GUID = zmdbencoding.FormatGUID(f.Data)
			}
		}
	}

	return artist, true
}
