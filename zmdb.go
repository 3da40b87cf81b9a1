// Package zmdb decodes a ZMDB on-disk media catalog (the portable-device
// sync toolkit's database reader) into a fully materialized, owning Library
// value. The package exposes a single entry point, Extract, mirroring the
// teacher's Open(location, ...Option) shape generalized to an in-memory
// buffer (SPEC_FULL.md §4.11).
package zmdb

import (
	"errors"
	"fmt"

	"github.com/bgrewell/zmdb-kit/pkg/atomid"
	"github.com/bgrewell/zmdb-kit/pkg/logging"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbdescriptor"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbencoding"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbfamily"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbheader"
	"github.com/bgrewell/zmdb-kit/pkg/zmdblibrary"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbrecord"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbresolver"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbschema"
	"github.com/go-logr/logr"
)

// Family selects a device's descriptor mapping and fixed-layout offsets.
type Family int

const (
	FamilyHD Family = iota
	FamilyClassic
)

func (f Family) internal() zmdbfamily.Family {
	if f == FamilyHD {
		return zmdbfamily.HD
	}
	return zmdbfamily.Classic
}

// Sentinel errors (spec §7). ErrCorruptRecord and ErrUnknownField are never
// returned to a caller — they are logged and the offending record or field
// is skipped. ErrCorruptHeader is swallowed into an empty library unless
// WithStrict(true) was supplied.
var (
	ErrCorruptHeader = errors.New("zmdb: corrupt or missing header")
	ErrCorruptRecord = errors.New("zmdb: corrupt record")
	ErrUnknownField  = errors.New("zmdb: unknown field")
)

// options holds Extract's configuration, built from functional Options.
type options struct {
	logger *logging.Logger
	strict bool
}

// Option configures a call to Extract.
type Option func(*options)

// WithLogger sets the logr.Logger Extract uses for diagnostics. The default
// discards everything, matching the teacher's Open default.
func WithLogger(logger logr.Logger) Option {
	return func(o *options) {
		o.logger = logging.NewLogger(logger)
	}
}

// WithStrict turns a missing/malformed header into a returned
// ErrCorruptHeader instead of an empty library. Default false, matching
// spec.md's best-effort contract.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// Extract decodes data as a ZMDB catalog for the given device family and
// returns the fully materialized library. A corrupt header yields an empty,
// non-nil library and a nil error unless WithStrict(true) was supplied.
// Per-record corruption never aborts the sweep (spec §4.10, §7).
func Extract(data []byte, family Family, opts ...Option) (*zmdblibrary.Library, error) {
	cfg := options{logger: logging.DefaultLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.logger

	hdr, ok := zmdbheader.Read(data, log)
	if !ok {
		log.Error(ErrCorruptHeader, "failed to validate ZMDB header")
		if cfg.strict {
			return nil, ErrCorruptHeader
		}
		return zmdblibrary.New(), nil
	}

	fam := family.internal()
	descriptors := zmdbdescriptor.ReadTable(data, hdr.DescriptorBase, log)
	index := zmdbdescriptor.BuildIndex(data, descriptors, log)
	resolver := zmdbresolver.New(data, index, fam, log)

	lib := zmdblibrary.New()
	for _, kind := range zmdbfamily.Kinds {
		sweepKind(data, descriptors, index, fam, kind, resolver, lib, log)
	}

	return lib, nil
}

// sweepKind walks every entry of the descriptor assigned to kind, filters,
// dispatches to the matching schema parser, and appends into lib (spec
// §4.10).
func sweepKind(data []byte, descriptors zmdbdescriptor.Table, index zmdbdescriptor.Index, fam zmdbfamily.Family, kind zmdbfamily.Kind, resolver *zmdbresolver.Resolver, lib *zmdblibrary.Library, log *logging.Logger) {
	descIdx := fam.DescriptorIndex(kind)
	if descIdx < 0 || descIdx >= len(descriptors) {
		return
	}
	desc := descriptors[descIdx]
	if desc.Inert() {
		return
	}
	expected := zmdbfamily.ExpectedSchema(kind)

	for i := uint32(0); i < desc.EntryCount; i++ {
		off := int(desc.DataOffset) + int(i)*int(desc.EntrySize)
		rawID, ok := zmdbencoding.ReadU32LE(data, off)
		if !ok {
			log.Trace("descriptor entry out of range, stopping sweep", "kind", kind, "index", i)
			return
		}
		id := atomid.ID(rawID)
		if id.Schema() != expected {
			log.Trace("descriptor entry schema mismatch, skipping", "kind", kind, "got", id.Schema(), "want", expected)
			continue
		}

		offset, ok := index[id]
		if !ok {
			log.Trace("atom-id not present in index table, skipping", "id", id)
			continue
		}
		rec, ok := zmdbrecord.Read(data, offset, log)
		if !ok {
			log.Error(fmt.Errorf("%w: offset %d", ErrCorruptRecord, offset), "failed to read record, skipping")
			continue
		}

		if isRootOrSystem(rec.Payload) {
			continue
		}

		dispatch(rec.Payload, id, fam, kind, resolver, lib, log)
	}
}

// isRootOrSystem reports whether a record's first three u32 references are
// all zero, the marker for a "root/system" placeholder entry that every
// schema filters out before dispatch (spec §4.10).
func isRootOrSystem(payload []byte) bool {
	a, ok := zmdbencoding.ReadU32LE(payload, 0)
	if !ok {
		return false
	}
	b, _ := zmdbencoding.ReadU32LE(payload, 4)
	c, _ := zmdbencoding.ReadU32LE(payload, 8)
	return a == 0 && b == 0 && c == 0
}

// dispatch decodes one already-filtered record through its schema parser
// and appends the result into lib.
func dispatch(payload []byte, id atomid.ID, fam zmdbfamily.Family, kind zmdbfamily.Kind, resolver *zmdbresolver.Resolver, lib *zmdblibrary.Library, log *logging.Logger) {
	switch kind {
	case zmdbfamily.KindMusic:
		if len(payload) == 32 {
			// placeholder music entry (spec §4.10 filter iii)
			return
		}
		if track, ok := zmdbschema.ParseMusic(payload, id, fam, resolver, log); ok {
			lib.Tracks = append(lib.Tracks, track)
			// Album metadata is populated as a side effect of resolving the
			// track's album reference, not a direct descriptor sweep (spec §4.10).
			if track.AlbumRef != 0 {
				if album, ok := resolver.ResolveAlbum(track.AlbumRef); ok {
					lib.Albums[track.AlbumRef] = album
				}
			}
		}
	case zmdbfamily.KindPlaylist:
		if playlist, ok := zmdbschema.ParsePlaylist(payload, id, log); ok {
			lib.Playlists = append(lib.Playlists, playlist)
		}
	case zmdbfamily.KindVideo:
		if video, ok := zmdbschema.ParseVideo(payload, id, resolver, log); ok {
			lib.Videos = append(lib.Videos, video)
		}
	case zmdbfamily.KindPicture:
		if pic, ok := zmdbschema.ParsePicture(payload, id, resolver, log); ok {
			lib.Pictures = append(lib.Pictures, pic)
		}
	case zmdbfamily.KindPodcastEpisode:
		if ep, ok := zmdbschema.ParsePodcastEpisode(payload, id, resolver, log); ok {
			lib.Podcasts = append(lib.Podcasts, ep)
		}
	case zmdbfamily.KindAudiobookTrack:
		if track, ok := zmdbschema.ParseAudiobookTrack(payload, id, resolver, log); ok {
			lib.Audiobooks = append(lib.Audiobooks, track)
		}
	default:
		log.Error(fmt.Errorf("%w: kind %v", ErrUnknownField, kind), "no dispatch for descriptor kind")
	}
}
