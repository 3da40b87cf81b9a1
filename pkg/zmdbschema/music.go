package zmdbschema

import (
	"github.com/bgrewell/zmdb-kit/pkg/atomid"
	"github.com/bgrewell/zmdb-kit/pkg/logging"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbencoding"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbfamily"
	"github.com/bgrewell/zmdb-kit/pkg/zmdblibrary"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbvarint"
)

// Backwards-varint field ids used by the Music (HD) tail (spec §4.7).
const (
	fieldDiscNumber = 0x6C
	fieldSkipCount  = 0x63
	fieldLastPlayed = 0x70
	fieldFilename   = 0x44
	fieldAuthor     = 0x46
	fieldArtistGUID = 0x14
)

// ParseMusic decodes a Music (0x01) record. Minimum 32 bytes (spec §4.8).
func ParseMusic(payload []byte, id atomid.ID, family zmdbfamily.Family, resolver Resolver, log *logging.Logger) (zmdblibrary.Track, bool) {
	if log == nil {
		log = logging.DefaultLogger()
	}
	if len(payload) < 32 {
		log.Trace("music record too short", "len", len(payload))
		return zmdblibrary.Track{}, false
	}

	albumRef, _ := zmdbencoding.ReadU32LE(payload, 0)
	artistRef, _ := zmdbencoding.ReadU32LE(payload, 4)
	genreRef, _ := zmdbencoding.ReadU32LE(payload, 8)
	filenameRef, _ := zmdbencoding.ReadU32LE(payload, 12)
	duration, _ := zmdbencoding.ReadI32LE(payload, 16)

	track := zmdblibrary.Track{
		AtomID:     id,
		DurationMS: duration,
		AlbumRef:   atomid.ID(albumRef),
		DiscNumber: 1,
	}

	if family == zmdbfamily.HD {
		fileSize, _ := zmdbencoding.ReadI32LE(payload, 20)
		trackNumber, _ := zmdbencoding.ReadU16LE(payload, 24)
		codecID, _ := zmdbencoding.ReadU16LE(payload, 28)
		track.FileSizeBytes = fileSize
		track.TrackNumber = trackNumber
		track.CodecID = codecID
		track.Title = zmdbencoding.ReadUTF8NUL(payload, 32, len(payload)-32)

		tail := tailSlice(payload, zmdbfamily.EntrySize(atomid.SchemaMusic))
		for _, f := range zmdbvarint.Parse(tail, log) {
			switch f.ID {
			case fieldDiscNumber:
				if len(f.Data) >= 1 {
					track.DiscNumber = f.Data[0]
				}
			case fieldSkipCount:
				if v, ok := zmdbencoding.ReadU16LE(f.Data, 0); ok {
					track.SkipCount = v
				}
			case fieldLastPlayed:
				if v, ok := zmdbencoding.ReadU64LE(f.Data, 0); ok {
					track.LastPlayed = v
				}
			case fieldFilename:
				track.Filename = zmdbencoding.DecodeUTF16LEPadded(f.Data)
			}
		}
	} else {
		trackNumber, _ := zmdbencoding.ReadByte(payload, 20)
		metadataCount, _ := zmdbencoding.ReadByte(payload, 22)
		codecID, _ := zmdbencoding.ReadU16LE(payload, 24)
		rating, _ := zmdbencoding.ReadByte(payload, 26)
		track.TrackNumber = uint16(trackNumber)
		track.CodecID = codecID
		track.Rating = rating
		track.Title = zmdbencoding.ReadUTF8NUL(payload, 28, len(payload)-28)

		titleEnd := 28 + len(track.Title) + 1 // past the NUL terminator
		for i := 0; i < int(metadataCount); i++ {
			off := titleEnd + i*6
			rec, ok := zmdbencoding.Slice(payload, off, 6)
			if !ok {
				log.Trace("classic music metadata record out of range", "index", i)
				break
			}
			value, _ := zmdbencoding.ReadU32LE(rec, 0)
			marker := rec[4]
			kind := rec[5]
			if marker != 0x04 {
				log.Trace("classic music metadata record missing 0x04 marker", "index", i, "marker", marker)
				continue
			}
			switch kind {
			case 0x62:
				track.PlayCount = value
			case 0x63:
				track.SkipCount = uint16(value)
			default:
				log.Trace("classic music metadata record unknown type", "type", kind)
			}
		}
	}

	if artistRef != 0 {
		if artist, ok := resolver.ResolveArtist(atomid.ID(artistRef)); ok {
			track.ArtistName = artist.Name
			track.ArtistGUID = artist.GUID
		}
	}
	if albumRef != 0 {
		if album, ok := resolver.ResolveAlbum(atomid.ID(albumRef)); ok {
			track.AlbumName = album.Title
			track.AlbumArtistName = album.ArtistName
			track.AlbumArtistGUID = album.ArtistGUID
		}
	}
	if genreRef != 0 {
		track.Genre = resolver.ResolveString(atomid.ID(genreRef))
	}
	if filenameRef != 0 && track.Filename == "" {
		track.Filename = resolver.ResolveString(atomid.ID(filenameRef))
	}

	return track, true
}
