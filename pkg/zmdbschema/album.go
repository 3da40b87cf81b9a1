package zmdbschema

import (
	"github.com/bgrewell/zmdb-kit/pkg/atomid"
	"github.com/bgrewell/zmdb-kit/pkg/consts"
	"github.com/bgrewell/zmdb-kit/pkg/logging"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbencoding"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbfamily"
	"github.com/bgrewell/zmdb-kit/pkg/zmdblibrary"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbvarint"
)

// ParseAlbum decodes an Album (0x06) record. Minimum 20 bytes (spec §4.8).
func ParseAlbum(payload []byte, id atomid.ID, family zmdbfamily.Family, resolver Resolver, log *logging.Logger) (zmdblibrary.Album, bool) {
	if log == nil {
		log = logging.DefaultLogger()
	}
	if len(payload) < 20 {
		log.Trace("album record too short", "len", len(payload))
		return zmdblibrary.Album{}, false
	}

	artistRef, _ := zmdbencoding.ReadU32LE(payload, 0)

	album := zmdblibrary.Album{
		AtomID:    id,
		AlbumPID:  consts.ALBUM_PID_PREFIX | id.EntryID(),
		ArtistRef: atomid.ID(artistRef),
	}

	if family == zmdbfamily.HD {
		album.Title = zmdbencoding.ReadUTF8NUL(payload, 20, len(payload)-20)

		tail := tailSlice(payload, zmdbfamily.EntrySize(atomid.SchemaAlbum))
		for _, f := range zmdbvarint.Parse(tail, log) {
			if f.ID == fieldFilename {
				album.AlbReference = zmdbencoding.DecodeUTF16LEPadded(f.Data)
			}
		}
	} else {
		album.Title = zmdbencoding.ReadUTF8NUL(payload, 12, len(payload)-12)
		refOff := 12 + len(album.Title) + 1
		album.AlbReference = zmdbencoding.ReadUTF16LEDoubleNUL(payload, refOff, len(payload)-refOff)
	}

	if artistRef != 0 {
		if artist, ok := resolver.ResolveArtist(atomid.ID(artistRef)); ok {
			album.ArtistName = artist.Name
			album.ArtistGUID = artist.GUID
		}
	}

	return album, true
}
