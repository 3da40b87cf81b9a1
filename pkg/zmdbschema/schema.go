// Package zmdbschema holds one parser per ZMDB record kind: fixed-prefix
// decode, embedded title/string decode, and backwards-varint tail decode,
// combined into the typed values zmdblibrary defines.
//
// Grounded on the original per-schema parse_* methods (original_source's
// ZuneHDParser.cpp / ZuneClassicParser.cpp), restructured as small pure
// functions in the teacher's style of one parse function per record kind
// (pkg/descriptor/primaryVolumeDescriptor.go, supplementaryVolumeDescriptor.go
// — one parser per on-disk structure, bounds-checked, logging each field).
package zmdbschema

import (
	"github.com/bgrewell/zmdb-kit/pkg/atomid"
	"github.com/bgrewell/zmdb-kit/pkg/zmdblibrary"
)

// Resolver is the narrow view of the reference resolver (spec §4.9) that
// schema parsers need: resolving an atom-id reference into the entity or
// string it points to, memoized by the caller. Declared here rather than in
// zmdbresolver so the dependency runs resolver -> schema, not schema ->
// resolver -> schema.
type Resolver interface {
	ResolveArtist(id atomid.ID) (zmdblibrary.Artist, bool)
	ResolveAlbum(id atomid.ID) (zmdblibrary.Album, bool)
	ResolveString(id atomid.ID) string
}

// tailSlice returns the portion of payload at or beyond entrySize, the
// region a backwards-varint scan operates over (spec §4.7). Returns nil if
// payload is shorter than entrySize.
func tailSlice(payload []byte, entrySize int) []byte {
	if entrySize < 0 || entrySize > len(payload) {
		return nil
	}
	return payload[entrySize:]
}
