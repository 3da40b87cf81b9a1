package zmdbschema

import (
	"strings"

	"github.com/bgrewell/zmdb-kit/pkg/atomid"
	"github.com/bgrewell/zmdb-kit/pkg/logging"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbencoding"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbfamily"
	"github.com/bgrewell/zmdb-kit/pkg/zmdblibrary"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbvarint"
)

// ParsePodcastEpisode decodes a PodcastEpisode (0x10) record. Minimum 36
// bytes for the fixed prefix (spec §4.8).
func ParsePodcastEpisode(payload []byte, id atomid.ID, resolver Resolver, log *logging.Logger) (zmdblibrary.PodcastEpisode, bool) {
	if log == nil {
		log = logging.DefaultLogger()
	}
	if len(payload) < 36 {
		log.Trace("podcast episode record too short", "len", len(payload))
		return zmdblibrary.PodcastEpisode{}, false
	}

	showNameRef, _ := zmdbencoding.ReadU32LE(payload, 0)
	podcastShowRef, _ := zmdbencoding.ReadU32LE(payload, 4)
	duration, _ := zmdbencoding.ReadU32LE(payload, 8)
	// ref3 at offset 12 is opaque; it is neither read nor stored in the PodcastEpisode value.
	timestamp, _ := zmdbencoding.ReadU64LE(payload, 16)
	fileSize, _ := zmdbencoding.ReadU32LE(payload, 24)
	codecID, _ := zmdbencoding.ReadU16LE(payload, 30)

	ep := zmdblibrary.PodcastEpisode{
		AtomID:        id,
		DurationMS:    duration,
		Timestamp:     timestamp,
		FileSizeBytes: fileSize,
		CodecID:       codecID,
	}

	ep.Title = zmdbencoding.ReadUTF8NUL(payload, 36, len(payload)-36)
	titleEnd := 36 + len(ep.Title) + 1

	authorEnd := utf16DoubleNullEnd(payload, titleEnd)
	ep.Author = zmdbencoding.ReadUTF16LEDoubleNUL(payload, titleEnd, authorEnd-titleEnd)

	// A 2-byte ASCII marker separates author from description; the
	// description's UTF-16LE run begins right after it (spec §4.8).
	descOff := authorEnd + 2
	descEnd := utf16DoubleNullEnd(payload, descOff)
	if descOff < len(payload) {
		ep.Description = zmdbencoding.ReadUTF16LEDoubleNUL(payload, descOff, descEnd-descOff)
	}

	tail := tailSlice(payload, zmdbfamily.EntrySize(atomid.SchemaPodcastEpisode))
	for _, f := range zmdbvarint.Parse(tail, log) {
		if len(f.Data) < 100 || len(f.Data) > 1000 || len(f.Data) < 2 {
			continue
		}
		url := zmdbencoding.DecodeUTF16LE(f.Data[1 : len(f.Data)-1])
		classifyPodcastURL(&ep, url)
	}

	if podcastShowRef != 0 {
		ep.ShowName = resolver.ResolveString(atomid.ID(podcastShowRef))
	} else if showNameRef != 0 {
		ep.ShowName = resolver.ResolveString(atomid.ID(showNameRef))
	}

	return ep, true
}

func classifyPodcastURL(ep *zmdblibrary.PodcastEpisode, url string) {
	lower := strings.ToLower(url)
	if !strings.Contains(lower, "http") {
		return
	}
	switch {
	case strings.Contains(lower, ".mp3") || strings.Contains(lower, ".m4a") || strings.Contains(lower, "/audio/"):
		ep.AudioURL = url
	case strings.Contains(lower, ".rss") || strings.Contains(lower, "/rss") || strings.Contains(lower, "/feed"):
		ep.RSSURL = url
	}
}
