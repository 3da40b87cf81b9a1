// Package zmdbresolver implements zmdbschema.Resolver: decoding whatever
// record an atom-id reference points to, on demand, with memoization so a
// heavily-shared string (a genre, a folder name) is decoded once per
// Extract call no matter how many records reference it (spec §3.3, §4.9).
//
// Grounded on iso-kit's directory-entry resolver pattern (pkg/directory),
// which likewise turns a raw on-disk reference into a materialized value by
// looking up an index and re-entering the record parser.
package zmdbresolver

import (
	"github.com/bgrewell/zmdb-kit/pkg/atomid"
	"github.com/bgrewell/zmdb-kit/pkg/logging"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbdescriptor"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbfamily"
	"github.com/bgrewell/zmdb-kit/pkg/zmdblibrary"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbrecord"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbschema"
)

// Resolver resolves atom-id references into decoded values, backed by the
// full file buffer and its index table. It implements zmdbschema.Resolver.
type Resolver struct {
	data   []byte
	index  zmdbdescriptor.Index
	family zmdbfamily.Family
	log    *logging.Logger

	strings map[atomid.ID]string
	artists map[atomid.ID]zmdblibrary.Artist
	albums  map[atomid.ID]zmdblibrary.Album
}

// New builds a Resolver over a decoded index table.
func New(data []byte, index zmdbdescriptor.Index, family zmdbfamily.Family, log *logging.Logger) *Resolver {
	if log == nil {
		log = logging.DefaultLogger()
	}
	return &Resolver{
		data:    data,
		index:   index,
		family:  family,
		log:     log,
		strings: make(map[atomid.ID]string),
		artists: make(map[atomid.ID]zmdblibrary.Artist),
		albums:  make(map[atomid.ID]zmdblibrary.Album),
	}
}

func (r *Resolver) lookup(id atomid.ID) (zmdbrecord.Record, bool) {
	offset, ok := r.index[id]
	if !ok {
		r.log.Trace("reference atom-id not in index", "id", id)
		return zmdbrecord.Record{}, false
	}
	return zmdbrecord.Read(r.data, offset, r.log)
}

// ResolveString decodes id down to a single display string, regardless of
// which reference-only schema (or Artist/Album title) it names (spec §4.9).
func (r *Resolver) ResolveString(id atomid.ID) string {
	if id == 0 {
		return ""
	}
	if s, ok := r.strings[id]; ok {
		return s
	}
	s := r.resolveStringUncached(id)
	r.strings[id] = s
	return s
}

func (r *Resolver) resolveStringUncached(id atomid.ID) string {
	rec, ok := r.lookup(id)
	if !ok {
		return ""
	}
	switch id.Schema() {
	case atomid.SchemaArtist:
		if artist, ok := r.ResolveArtist(id); ok {
			return artist.Name
		}
		return ""
	case atomid.SchemaAlbum:
		if album, ok := r.ResolveAlbum(id); ok {
			return album.Title
		}
		return ""
	default:
		s, _ := zmdbschema.ParseReferenceString(id.Schema(), rec.Payload, r.family, r.log)
		return s
	}
}

// ResolveArtist decodes id as an Artist record, treating a guid-placeholder
// record as absent (spec §4.8, §4.9).
func (r *Resolver) ResolveArtist(id atomid.ID) (zmdblibrary.Artist, bool) {
	if id == 0 {
		return zmdblibrary.Artist{}, false
	}
	if a, ok := r.artists[id]; ok {
		return a, true
	}
	rec, ok := r.lookup(id)
	if !ok || zmdbschema.IsArtistPlaceholder(rec.Payload) {
		return zmdblibrary.Artist{}, false
	}
	artist, ok := zmdbschema.ParseArtist(rec.Payload, id, r.family, r.log)
	if !ok {
		return zmdblibrary.Artist{}, false
	}
	r.artists[id] = artist
	return artist, true
}

// ResolveAlbum decodes id as an Album record.
func (r *Resolver) ResolveAlbum(id atomid.ID) (zmdblibrary.Album, bool) {
	if id == 0 {
		return zmdblibrary.Album{}, false
	}
	if a, ok := r.albums[id]; ok {
		return a, true
	}
	rec, ok := r.lookup(id)
	if !ok {
		return zmdblibrary.Album{}, false
	}
	album, ok := zmdbschema.ParseAlbum(rec.Payload, id, r.family, r, r.log)
	if !ok {
		return zmdblibrary.Album{}, false
	}
	r.albums[id] = album
	return album, true
}
