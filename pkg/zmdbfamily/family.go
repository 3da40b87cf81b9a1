// Package zmdbfamily holds the device-family-dependent tables: which
// descriptor index carries which schema, and each schema's fixed-prefix
// entry size. A single parser is parameterized by a Family value instead of
// being duplicated per device, per spec §9's design note.
package zmdbfamily

import "github.com/bgrewell/zmdb-kit/pkg/atomid"

// Family selects a device's descriptor mapping and fixed-layout offsets.
type Family int

const (
	HD Family = iota
	Classic
)

// String renders the family name for logging.
func (f Family) String() string {
	if f == HD {
		return "HD"
	}
	return "Classic"
}

// Kind identifies one of the descriptor-mapped record kinds that varies by
// family (spec §3.5).
type Kind int

const (
	KindMusic Kind = iota
	KindPlaylist
	KindVideo
	KindPicture
	KindPodcastEpisode
	KindAudiobookTrack
)

// descriptorIndex holds the HD and Classic descriptor index for one Kind.
type descriptorIndex struct {
	hd, classic int
}

var descriptorTable = map[Kind]descriptorIndex{
	KindMusic:          {hd: 1, classic: 1},
	KindPlaylist:       {hd: 11, classic: 2},
	KindVideo:          {hd: 12, classic: 12},
	KindPicture:        {hd: 16, classic: 16},
	KindPodcastEpisode: {hd: 19, classic: 19},
	KindAudiobookTrack: {hd: 26, classic: 27},
}

// DescriptorIndex returns which descriptor slot carries records of kind k
// for this family (spec §3.5).
func (f Family) DescriptorIndex(k Kind) int {
	idx := descriptorTable[k]
	if f == HD {
		return idx.hd
	}
	return idx.classic
}

// ExpectedSchema returns the schema code the extraction driver expects to
// find at a family's descriptor index for kind k, used to validate the
// schema embedded in each entry's atom-id (spec §3.8).
func ExpectedSchema(k Kind) atomid.Schema {
	switch k {
	case KindMusic:
		return atomid.SchemaMusic
	case KindPlaylist:
		return atomid.SchemaPlaylist
	case KindVideo:
		return atomid.SchemaVideo
	case KindPicture:
		return atomid.SchemaPicture
	case KindPodcastEpisode:
		return atomid.SchemaPodcastEpisode
	case KindAudiobookTrack:
		return atomid.SchemaAudiobookTrack
	default:
		return 0
	}
}

// Kinds lists every descriptor-mapped kind the extraction driver sweeps,
// in a fixed order.
var Kinds = []Kind{KindMusic, KindPlaylist, KindVideo, KindPicture, KindPodcastEpisode, KindAudiobookTrack}

// entrySizeTable is the fixed-prefix width for each schema before its
// optional-field tail (spec §3.6). AudiobookTrack (0x12) is absent from the
// original implementation's table — see DESIGN.md for why 36 is used here.
var entrySizeTable = map[atomid.Schema]int{
	atomid.SchemaMusic:          32,
	atomid.SchemaVideo:          32,
	atomid.SchemaPicture:        24,
	atomid.SchemaFilename:       8,
	atomid.SchemaAlbum:          20,
	atomid.SchemaPlaylist:       12,
	atomid.SchemaArtist:         4,
	atomid.SchemaGenre:          1,
	atomid.SchemaVideoTitle:     4,
	atomid.SchemaPhotoAlbum:     12,
	atomid.SchemaCollection:     12,
	atomid.SchemaPodcastShow:    8,
	atomid.SchemaPodcastEpisode: 32,
	atomid.SchemaAudiobookTrack: 36,
}

// EntrySize returns the fixed-prefix size for a schema, or 0 for an unknown
// schema (meaning no tail is parsed), per spec §3.6.
func EntrySize(schema atomid.Schema) int {
	return entrySizeTable[schema]
}
