package zmdbschema

import (
	"github.com/bgrewell/zmdb-kit/pkg/atomid"
	"github.com/bgrewell/zmdb-kit/pkg/logging"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbencoding"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbfamily"
)

// referenceStringOffset returns the fixed byte offset where a reference-only
// schema's single UTF-8 NUL-terminated string begins (spec §4.8). PhotoAlbum
// and Collection share a record layout that differs between HD and Classic;
// every other reference schema has a single family-invariant offset.
func referenceStringOffset(schema atomid.Schema, family zmdbfamily.Family) (int, bool) {
	switch schema {
	case atomid.SchemaFilename:
		return 8, true
	case atomid.SchemaGenre:
		return 1, true
	case atomid.SchemaVideoTitle:
		return 4, true
	case atomid.SchemaPhotoAlbum, atomid.SchemaCollection:
		if family == zmdbfamily.Classic {
			return 4, true
		}
		return 12, true
	case atomid.SchemaPodcastShow:
		return 8, true
	case atomid.SchemaAudiobookTitle:
		return 8, true
	default:
		return 0, false
	}
}

// ParseReferenceString decodes one of the reference-only schemas down to its
// single embedded string, used by callers resolving a referenced atom-id
// into display text (spec §4.8, §4.9).
func ParseReferenceString(schema atomid.Schema, payload []byte, family zmdbfamily.Family, log *logging.Logger) (string, bool) {
	if log == nil {
		log = logging.DefaultLogger()
	}
	offset, ok := referenceStringOffset(schema, family)
	if !ok {
		log.Trace("no reference string offset for schema", "schema", schema)
		return "", false
	}
	if offset >= len(payload) {
		log.Trace("reference record too short", "schema", schema, "len", len(payload))
		return "", false
	}
	return zmdbencoding.ReadUTF8NUL(payload, offset, len(payload)-offset), true
}
