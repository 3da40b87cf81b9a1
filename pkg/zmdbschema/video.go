package zmdbschema

import (
	"github.com/bgrewell/zmdb-kit/pkg/atomid"
	"github.com/bgrewell/zmdb-kit/pkg/logging"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbencoding"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbfamily"
	"github.com/bgrewell/zmdb-kit/pkg/zmdblibrary"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbvarint"
)

// ParseVideo decodes a Video (0x02) record. Minimum 16 bytes for the fixed
// reference prefix; file size/codec id are only present when the payload
// runs at least 40 bytes (spec §4.8).
func ParseVideo(payload []byte, id atomid.ID, resolver Resolver, log *logging.Logger) (zmdblibrary.Video, bool) {
	if log == nil {
		log = logging.DefaultLogger()
	}
	if len(payload) < 16 {
		log.Trace("video record too short", "len", len(payload))
		return zmdblibrary.Video{}, false
	}

	folderRef, _ := zmdbencoding.ReadU32LE(payload, 0)
	titleRef, _ := zmdbencoding.ReadU32LE(payload, 4)
	// ref2 at offset 8 is opaque; it is neither read nor stored in the Video value.
	fileRef, _ := zmdbencoding.ReadU32LE(payload, 12)

	video := zmdblibrary.Video{AtomID: id}

	if len(payload) >= 40 {
		fileSize, _ := zmdbencoding.ReadU32LE(payload, 32)
		codecID, _ := zmdbencoding.ReadU32LE(payload, 36)
		video.FileSizeBytes = fileSize
		video.CodecID = codecID
	}

	tail := tailSlice(payload, zmdbfamily.EntrySize(atomid.SchemaVideo))
	for _, f := range zmdbvarint.Parse(tail, log) {
		if f.ID == fieldFilename {
			video.Filename = zmdbencoding.DecodeUTF16LEPadded(f.Data)
		}
	}

	if titleRef != 0 {
		video.Title = resolver.ResolveString(atomid.ID(titleRef))
	}
	if folderRef != 0 {
		video.Folder = resolver.ResolveString(atomid.ID(folderRef))
	}
	if fileRef != 0 && video.Filename == "" {
		video.Filename = resolver.ResolveString(atomid.ID(fileRef))
	}

	return video, true
}
