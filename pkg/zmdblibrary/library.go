// Package zmdblibrary defines the materialized output of extraction: the
// owning, typed container for every record kind (spec §3.7, §4.12).
//
// Grounded on the original ZMDBLibrary (original_source's ZMDBTypes.h),
// which manually placement-constructs fixed-capacity flat arrays because it
// exposes a raw-pointer interface. Per spec §9 this is replaced by plain
// growable slices; there is nothing to "own" beyond normal Go value
// semantics, so copy-prevention is unnecessary ceremony — a *Library is
// simply passed by pointer, matching the teacher's general preference for
// returning pointers to parsed aggregates (e.g. *ISO9660Image).
package zmdblibrary

import "github.com/bgrewell/zmdb-kit/pkg/atomid"

// Track is a music track entity (spec §3.7).
type Track struct {
	AtomID          atomid.ID
	Title           string
	ArtistName      string
	ArtistGUID      string
	AlbumName       string
	AlbumArtistName string
	AlbumArtistGUID string
	Genre           string
	DiscNumber      uint8
	TrackNumber     uint16
	DurationMS      int32
	FileSizeBytes   int32
	PlayCount       uint32
	SkipCount       uint16
	CodecID         uint16
	Rating          uint8
	LastPlayed      uint64
	AlbumRef        atomid.ID
	Filename        string
}

// Album is an album entity (spec §3.7, §4.8).
type Album struct {
	AtomID          atomid.ID
	Title           string
	ArtistName      string
	ArtistGUID      string
	AlbumPID        uint32
	AlbReference    string
	ArtistRef       atomid.ID
}

// Artist is an artist entity (spec §3.7, §4.8).
type Artist struct {
	AtomID   atomid.ID
	Name     string
	ArtRef   string
	GUID     string
}

// Video is a video entity (spec §3.7).
type Video struct {
	AtomID        atomid.ID
	Title         string
	Folder        string
	CodecID       uint32
	FileSizeBytes uint32
	Filename      string
}

// Picture is a picture entity (spec §3.7).
type Picture struct {
	AtomID       atomid.ID
	Title        string
	PhotoAlbum   string
	UserAlbum    string
	Collection   string
	Filename     string
	Timestamp    uint64
}

// Playlist is a playlist entity. Member tracks are stored as atom-ids only,
// standardizing away the legacy HD behavior of storing resolved Track
// values (spec §4.8, §9).
type Playlist struct {
	AtomID      atomid.ID
	Name        string
	Filename    string
	GUID        string
	Folder      atomid.ID
	TrackAtomIDs []atomid.ID
}

// PodcastEpisode is a podcast episode entity (spec §3.7, §4.8).
type PodcastEpisode struct {
	AtomID        atomid.ID
	Title         string
	ShowName      string
	Author        string
	Description   string
	AudioURL      string
	RSSURL        string
	DurationMS    uint32
	Timestamp     uint64
	FileSizeBytes uint32
	CodecID       uint16
}

// AudiobookTrack is an audiobook track entity (spec §3.7).
type AudiobookTrack struct {
	AtomID            atomid.ID
	Title             string
	AudiobookName     string
	Author            string
	Filename          string
	DurationMS        uint32
	PlaybackPositionMS uint32
	FileSizeBytes     uint32
	TrackNumber       uint16
	PlayCount         uint16
	FormatCode        uint16
	LastPlayed        uint64
	TitleRef          atomid.ID
	FilenameRef       atomid.ID
}

// Library is the owning aggregate produced by a single Extract call.
type Library struct {
	Tracks          []Track
	Videos          []Video
	Pictures        []Picture
	Playlists       []Playlist
	Podcasts        []PodcastEpisode
	Audiobooks      []AudiobookTrack
	Albums          map[atomid.ID]Album
}

// New returns an empty Library with an allocated Albums map. No slice
// capacity is preallocated; the slices grow as records are appended.
func New() *Library {
	return &Library{Albums: make(map[atomid.ID]Album)}
}

// TrackCount, VideoCount, ... expose counts for callers iterating by index
// (spec §4.12).
func (l *Library) TrackCount() int     { return len(l.Tracks) }
func (l *Library) VideoCount() int     { return len(l.Videos) }
func (l *Library) PictureCount() int   { return len(l.Pictures) }
func (l *Library) PlaylistCount() int  { return len(l.Playlists) }
func (l *Library) PodcastCount() int   { return len(l.Podcasts) }
func (l *Library) AudiobookCount() int { return len(l.Audiobooks) }
func (l *Library) AlbumCount() int     { return len(l.Albums) }
