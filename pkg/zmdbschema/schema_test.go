package zmdbschema

import (
	"testing"

	"github.com/bgrewell/zmdb-kit/pkg/atomid"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbfamily"
	"github.com/bgrewell/zmdb-kit/pkg/zmdblibrary"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbvarint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeResolver is a stub zmdbschema.Resolver backed by plain maps, used so
// each schema parser can be tested in isolation from zmdbresolver.
type fakeResolver struct {
	strings map[atomid.ID]string
	artists map[atomid.ID]zmdblibrary.Artist
	albums  map[atomid.ID]zmdblibrary.Album
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{
		strings: make(map[atomid.ID]string),
		artists: make(map[atomid.ID]zmdblibrary.Artist),
		albums:  make(map[atomid.ID]zmdblibrary.Album),
	}
}

func (f *fakeResolver) ResolveArtist(id atomid.ID) (zmdblibrary.Artist, bool) {
	a, ok := f.artists[id]
	return a, ok
}

func (f *fakeResolver) ResolveAlbum(id atomid.ID) (zmdblibrary.Album, bool) {
	a, ok := f.albums[id]
	return a, ok
}

func (f *fakeResolver) ResolveString(id atomid.ID) string {
	return f.strings[id]
}

func u16le(v uint16) []byte { return []byte{byte(v), byte(v >> 8)} }
func u32le(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}
func u64le(v uint64) []byte {
	out := make([]byte, 8)
	for i := 0; i < 8; i++ {
		out[i] = byte(v >> (8 * i))
	}
	return out
}

func utf16le(s string) []byte {
	out := make([]byte, 0, len(s)*2)
	for _, r := range s {
		out = append(out, byte(r), 0)
	}
	return out
}

func TestParseMusic_HD(t *testing.T) {
	payload := make([]byte, 32)
	copy(payload[0:4], u32le(0x06000001))  // album ref
	copy(payload[4:8], u32le(0x08000001))  // artist ref
	copy(payload[8:12], u32le(0x09000001)) // genre ref
	copy(payload[16:20], u32le(210000))    // duration (int32)
	copy(payload[20:24], u32le(5000000))   // file size
	copy(payload[24:26], u16le(3))         // track number
	copy(payload[28:30], u16le(1))         // codec id
	payload = append(payload, []byte("Song Title")...)
	payload = append(payload, 0x00)
	payload = zmdbvarint.Encode(payload, zmdbvarint.Field{ID: fieldDiscNumber, Data: []byte{4}})
	payload = zmdbvarint.Encode(payload, zmdbvarint.Field{ID: fieldSkipCount, Data: u16le(7)})

	resolver := newFakeResolver()
	resolver.artists[0x08000001] = zmdblibrary.Artist{Name: "The Artist", GUID: "guid"}
	resolver.albums[0x06000001] = zmdblibrary.Album{Title: "The Album", ArtistName: "The Artist"}
	resolver.strings[0x09000001] = "Rock"

	track, ok := ParseMusic(payload, 0x01000001, zmdbfamily.HD, resolver, nil)
	require.True(t, ok)
	assert.Equal(t, "Song Title", track.Title)
	assert.Equal(t, "The Artist", track.ArtistName)
	assert.Equal(t, "The Album", track.AlbumName)
	assert.Equal(t, "Rock", track.Genre)
	assert.Equal(t, int32(210000), track.DurationMS)
	assert.Equal(t, uint16(3), track.TrackNumber)
	assert.Equal(t, uint8(4), track.DiscNumber)
	assert.Equal(t, uint16(7), track.SkipCount)
}

func TestParseMusic_TooShort(t *testing.T) {
	_, ok := ParseMusic(make([]byte, 10), 0x01000001, zmdbfamily.HD, newFakeResolver(), nil)
	assert.False(t, ok)
}

func TestParseAlbum_HD(t *testing.T) {
	payload := make([]byte, 20)
	copy(payload[0:4], u32le(0x08000001))
	payload = append(payload, []byte("The Album")...)
	payload = append(payload, 0x00)
	payload = zmdbvarint.Encode(payload, zmdbvarint.Field{ID: fieldFilename, Data: append([]byte{0}, append(utf16le("Artist--Album.alb"), 0, 0)...)})

	resolver := newFakeResolver()
	resolver.artists[0x08000001] = zmdblibrary.Artist{Name: "Artist", GUID: "guid"}

	album, ok := ParseAlbum(payload, 0x06000001, zmdbfamily.HD, resolver, nil)
	require.True(t, ok)
	assert.Equal(t, "The Album", album.Title)
	assert.Equal(t, "Artist", album.ArtistName)
	assert.Equal(t, uint32(0x06000001), album.AlbumPID)
}

func TestParseAlbum_TooShort(t *testing.T) {
	_, ok := ParseAlbum(make([]byte, 4), 0x06000001, zmdbfamily.HD, newFakeResolver(), nil)
	assert.False(t, ok)
}

func TestParseArtist_HD(t *testing.T) {
	payload := make([]byte, 4)
	copy(payload[0:4], u32le(1)) // category ref, not a placeholder
	payload = append(payload, []byte("An Artist")...)
	payload = append(payload, 0x00)

	artist, ok := ParseArtist(payload, 0x08000001, zmdbfamily.HD, nil)
	require.True(t, ok)
	assert.Equal(t, "An Artist", artist.Name)
}

func TestIsArtistPlaceholder(t *testing.T) {
	assert.True(t, IsArtistPlaceholder(make([]byte, 4)))
	payload := make([]byte, 4)
	copy(payload, u32le(1))
	assert.False(t, IsArtistPlaceholder(payload))
}

func TestParseVideo(t *testing.T) {
	payload := make([]byte, 16)
	copy(payload[0:4], u32le(0x0A000002))  // folder ref (string)
	copy(payload[4:8], u32le(0x0A000001))  // title ref
	copy(payload[12:16], u32le(0x05000001)) // file ref

	resolver := newFakeResolver()
	resolver.strings[0x0A000001] = "My Video"
	resolver.strings[0x0A000002] = "Videos"
	resolver.strings[0x05000001] = "video.wmv"

	video, ok := ParseVideo(payload, 0x02000001, resolver, nil)
	require.True(t, ok)
	assert.Equal(t, "My Video", video.Title)
	assert.Equal(t, "Videos", video.Folder)
	assert.Equal(t, "video.wmv", video.Filename)
}

func TestParsePicture(t *testing.T) {
	payload := make([]byte, 24)
	copy(payload[0:4], u32le(0x0B000001))  // photo album ref
	copy(payload[16:24], u64le(123456789)) // timestamp

	resolver := newFakeResolver()
	resolver.strings[0x0B000001] = "Vacation"

	pic, ok := ParsePicture(payload, 0x03000001, resolver, nil)
	require.True(t, ok)
	assert.Equal(t, "Vacation", pic.PhotoAlbum)
	assert.Equal(t, uint64(123456789), pic.Timestamp)
}

func TestParsePlaylist(t *testing.T) {
	payload := make([]byte, 12)
	payload = append(payload, []byte("My Playlist")...)
	payload = append(payload, 0x00)
	guid := make([]byte, 16)
	for i := range guid {
		guid[i] = byte(i + 1)
	}
	payload = append(payload, guid...)
	payload = append(payload, 0x00, 0x00) // 2-byte pad before the filename run
	payload = append(payload, utf16le("playlist.zpl")...)
	payload = append(payload, 0x00, 0x00) // UTF-16 NUL terminator
	payload = append(payload, 0x00, 0x00) // 2-byte pad before the track array
	payload = append(payload, u32le(0x01000001)...)
	payload = append(payload, u32le(0x01000002)...)
	payload = append(payload, u32le(0)...) // terminator

	playlist, ok := ParsePlaylist(payload, 0x07000001, nil)
	require.True(t, ok)
	assert.Equal(t, "My Playlist", playlist.Name)
	assert.Equal(t, "playlist.zpl", playlist.Filename)
	assert.Len(t, playlist.TrackAtomIDs, 2)
	assert.Equal(t, atomid.ID(0x01000001), playlist.TrackAtomIDs[0])
}

func TestParsePodcastEpisode(t *testing.T) {
	payload := make([]byte, 36)
	copy(payload[24:28], u32le(1000)) // file size
	copy(payload[30:32], u16le(2))    // codec id
	payload = append(payload, []byte("Episode Title")...)
	payload = append(payload, 0x00)
	payload = append(payload, utf16le("Author Name")...)
	payload = append(payload, 0x00, 0x00)

	ep, ok := ParsePodcastEpisode(payload, 0x10000001, newFakeResolver(), nil)
	require.True(t, ok)
	assert.Equal(t, "Episode Title", ep.Title)
	assert.Equal(t, uint32(1000), ep.FileSizeBytes)
	assert.Equal(t, uint16(2), ep.CodecID)
}

func TestClassifyPodcastURL(t *testing.T) {
	var ep zmdblibrary.PodcastEpisode
	classifyPodcastURL(&ep, "http://example.com/show.mp3")
	assert.Equal(t, "http://example.com/show.mp3", ep.AudioURL)

	ep = zmdblibrary.PodcastEpisode{}
	classifyPodcastURL(&ep, "http://example.com/feed.rss")
	assert.Equal(t, "http://example.com/feed.rss", ep.RSSURL)

	ep = zmdblibrary.PodcastEpisode{}
	classifyPodcastURL(&ep, "not a url")
	assert.Empty(t, ep.AudioURL)
	assert.Empty(t, ep.RSSURL)
}

func TestParseAudiobookTrack(t *testing.T) {
	payload := make([]byte, 36)
	copy(payload[24:28], u32le(2000)) // file size
	copy(payload[28:30], u16le(3))    // track number
	copy(payload[30:32], u16le(1))    // play count
	payload = append(payload, []byte("Chapter 1")...)

	track, ok := ParseAudiobookTrack(payload, 0x12000001, newFakeResolver(), nil)
	require.True(t, ok)
	assert.Equal(t, "Chapter 1", track.Title)
	assert.Equal(t, uint32(2000), track.FileSizeBytes)
	assert.Equal(t, uint16(3), track.TrackNumber)
	assert.Equal(t, uint16(1), track.PlayCount)
}

func TestParseAudiobookTrack_TooShort(t *testing.T) {
	_, ok := ParseAudiobookTrack(make([]byte, 10), 0x12000001, newFakeResolver(), nil)
	assert.False(t, ok)
}

func TestParseReferenceString(t *testing.T) {
	payload := make([]byte, 9)
	copy(payload[1:], []byte("Genre\x00"))
	s, ok := ParseReferenceString(atomid.SchemaGenre, payload, zmdbfamily.HD, nil)
	require.True(t, ok)
	assert.Equal(t, "Genre", s)
}

func TestParseReferenceString_UnknownSchema(t *testing.T) {
	_, ok := ParseReferenceString(atomid.SchemaMusic, make([]byte, 10), zmdbfamily.HD, nil)
	assert.False(t, ok)
}

func TestParseReferenceString_PhotoAlbumFamilyDependent(t *testing.T) {
	hd := make([]byte, 20)
	copy(hd[12:], []byte("Album\x00"))
	s, ok := ParseReferenceString(atomid.SchemaPhotoAlbum, hd, zmdbfamily.HD, nil)
	require.True(t, ok)
	assert.Equal(t, "Album", s)

	classic := make([]byte, 12)
	copy(classic[4:], []byte("Album\x00"))
	s, ok = ParseReferenceString(atomid.SchemaPhotoAlbum, classic, zmdbfamily.Classic, nil)
	require.True(t, ok)
	assert.Equal(t, "Album", s)
}
