package zmdbschema

import (
	"github.com/bgrewell/zmdb-kit/pkg/atomid"
	"github.com/bgrewell/zmdb-kit/pkg/logging"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbencoding"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbfamily"
	"github.com/bgrewell/zmdb-kit/pkg/zmdblibrary"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbvarint"
)

// ParseAudiobookTrack decodes an AudiobookTrack (0x12) record. Minimum 36
// bytes for the fixed prefix; title is only present when the payload runs
// longer (spec §4.8).
func ParseAudiobookTrack(payload []byte, id atomid.ID, resolver Resolver, log *logging.Logger) (zmdblibrary.AudiobookTrack, bool) {
	if log == nil {
		log = logging.DefaultLogger()
	}
	if len(payload) < 36 {
		log.Trace("audiobook track record too short", "len", len(payload))
		return zmdblibrary.AudiobookTrack{}, false
	}

	titleRef, _ := zmdbencoding.ReadU32LE(payload, 0)
	filenameRef, _ := zmdbencoding.ReadU32LE(payload, 4)
	duration, _ := zmdbencoding.ReadU32LE(payload, 8)
	playbackPosition, _ := zmdbencoding.ReadU32LE(payload, 12)
	// bytes 16..24 are unknown/unused (spec §4.8).
	fileSize, _ := zmdbencoding.ReadU32LE(payload, 24)
	trackNumber, _ := zmdbencoding.ReadU16LE(payload, 28)
	playCount, _ := zmdbencoding.ReadU16LE(payload, 30)
	formatCode, _ := zmdbencoding.ReadU16LE(payload, 32)

	track := zmdblibrary.AudiobookTrack{
		AtomID:             id,
		TitleRef:           atomid.ID(titleRef),
		FilenameRef:        atomid.ID(filenameRef),
		DurationMS:         duration,
		PlaybackPositionMS: playbackPosition,
		FileSizeBytes:      fileSize,
		TrackNumber:        trackNumber,
		PlayCount:          playCount,
		FormatCode:         formatCode,
	}

	if len(payload) > 36 {
		track.Title = zmdbencoding.ReadUTF8NUL(payload, 36, len(payload)-36)
	}

	tail := tailSlice(payload, zmdbfamily.EntrySize(atomid.SchemaAudiobookTrack))
	for _, f := range zmdbvarint.Parse(tail, log) {
		switch f.ID {
		case fieldAuthor:
			track.Author = zmdbencoding.DecodeUTF16LEPadded(f.Data)
		case fieldFilename:
			track.Filename = zmdbencoding.DecodeUTF16LEPadded(f.Data)
		case fieldLastPlayed:
			if v, ok := zmdbencoding.ReadU64LE(f.Data, 0); ok {
				track.LastPlayed = v
			}
		}
	}

	if titleRef != 0 {
		track.AudiobookName = resolver.ResolveString(atomid.ID(titleRef))
		if track.Title == "" {
			track.Title = track.AudiobookName
		}
	}
	if filenameRef != 0 && track.Filename == "" {
		track.Filename = resolver.ResolveString(atomid.ID(filenameRef))
	}

	return track, true
}
