// Package atomid defines the ZMDB atom-id: a 32-bit value whose top byte is
// the record's schema and whose low 24 bits are the entry id within that
// schema.
package atomid

import "github.com/bgrewell/zmdb-kit/pkg/consts"

// Schema identifies the logical kind of a ZMDB record, encoded as the top
// byte of an atom-id.
type Schema uint8

const (
	SchemaMusic           Schema = 0x01
	SchemaVideo           Schema = 0x02
	SchemaPicture         Schema = 0x03
	SchemaFilename        Schema = 0x05
	SchemaAlbum           Schema = 0x06
	SchemaPlaylist        Schema = 0x07
	SchemaArtist          Schema = 0x08
	SchemaGenre           Schema = 0x09
	SchemaVideoTitle      Schema = 0x0A
	SchemaPhotoAlbum      Schema = 0x0B
	SchemaCollection      Schema = 0x0C
	SchemaPodcastShow     Schema = 0x0F
	SchemaPodcastEpisode  Schema = 0x10
	SchemaAudiobookTitle  Schema = 0x11
	SchemaAudiobookTrack  Schema = 0x12
)

// String renders a schema code as a short mnemonic, used in log lines.
func (s Schema) String() string {
	switch s {
	case SchemaMusic:
		return "Music"
	case SchemaVideo:
		return "Video"
	case SchemaPicture:
		return "Picture"
	case SchemaFilename:
		return "Filename"
	case SchemaAlbum:
		return "Album"
	case SchemaPlaylist:
		return "Playlist"
	case SchemaArtist:
		return "Artist"
	case SchemaGenre:
		return "Genre"
	case SchemaVideoTitle:
		return "VideoTitle"
	case SchemaPhotoAlbum:
		return "PhotoAlbum"
	case SchemaCollection:
		return "Collection"
	case SchemaPodcastShow:
		return "PodcastShow"
	case SchemaPodcastEpisode:
		return "PodcastEpisode"
	case SchemaAudiobookTitle:
		return "AudiobookTitle"
	case SchemaAudiobookTrack:
		return "AudiobookTrack"
	default:
		return "Unknown"
	}
}

// ID is a ZMDB atom-id: top byte schema, low 24 bits entry id.
type ID uint32

// Schema returns the schema encoded in the atom-id's top byte.
func (id ID) Schema() Schema {
	return Schema(uint32(id) >> consts.ATOM_ID_SCHEMA_SHIFT)
}

// EntryID returns the low 24 bits of the atom-id.
func (id ID) EntryID() uint32 {
	return uint32(id) & consts.ATOM_ID_ENTRY_MASK
}

// New builds an atom-id from a schema and an entry id, truncating the entry
// id to 24 bits.
func New(schema Schema, entryID uint32) ID {
	return ID(uint32(schema)<<consts.ATOM_ID_SCHEMA_SHIFT | (entryID & consts.ATOM_ID_ENTRY_MASK))
}

// AlbumPID computes the album property id, 0x06000000 | entry_id, used to
// cross-reference albums from outside the ZMDB index (spec §3.7, §8.1).
func AlbumPID(id ID) uint32 {
	return consts.ALBUM_PID_PREFIX | id.EntryID()
}
