package zmdbresolver

import (
	"testing"

	"github.com/bgrewell/zmdb-kit/internal/zmdbtest"
	"github.com/bgrewell/zmdb-kit/pkg/atomid"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbdescriptor"
	"github.com/bgrewell/zmdb-kit/pkg/zmdbfamily"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	artistID = atomid.ID(0x08000001)
	albumID  = atomid.ID(0x06000001)
	genreID  = atomid.ID(0x09000001)

	artistOffset = 0x500
	albumOffset  = 0x600
	genreOffset  = 0x700
)

func buildIndex(t *testing.T) ([]byte, zmdbdescriptor.Index) {
	t.Helper()
	b := zmdbtest.NewBuilder(0x1000)

	indexDataOffset := 0x300
	b.WriteIndexEntry(indexDataOffset, 0, artistID, artistOffset)
	b.WriteIndexEntry(indexDataOffset, 1, albumID, albumOffset)
	b.WriteIndexEntry(indexDataOffset, 2, genreID, genreOffset)

	artistPayload := make([]byte, 4)
	artistPayload[0] = 1 // non-placeholder category ref
	artistPayload = append(artistPayload, []byte("Resolved Artist")...)
	artistPayload = append(artistPayload, 0x00)
	b.WriteRecord(artistOffset, 0, artistPayload)

	albumPayload := make([]byte, 20)
	copy(albumPayload[0:4], []byte{0x01, 0x00, 0x00, 0x08}) // artistRef = 0x08000001
	albumPayload = append(albumPayload, []byte("Resolved Album")...)
	albumPayload = append(albumPayload, 0x00)
	b.WriteRecord(albumOffset, 0, albumPayload)

	genrePayload := make([]byte, 1)
	genrePayload = append(genrePayload, []byte("Rock\x00")...)
	b.WriteRecord(genreOffset, 0, genrePayload)

	data := b.Bytes()
	idx := zmdbdescriptor.Index{
		artistID: artistOffset,
		albumID:  albumOffset,
		genreID:  genreOffset,
	}
	return data, idx
}

func TestResolver_ResolveArtist(t *testing.T) {
	data, idx := buildIndex(t)
	r := New(data, idx, zmdbfamily.HD, nil)

	artist, ok := r.ResolveArtist(artistID)
	require.True(t, ok)
	assert.Equal(t, "Resolved Artist", artist.Name)

	// Memoized: a second call returns the cached value, not a fresh decode.
	again, ok := r.ResolveArtist(artistID)
	require.True(t, ok)
	assert.Equal(t, artist, again)
}

func TestResolver_ResolveArtist_NotIndexed(t *testing.T) {
	data, idx := buildIndex(t)
	r := New(data, idx, zmdbfamily.HD, nil)

	unindexed := atomid.ID(0x08000099)
	_, ok := r.ResolveArtist(unindexed)
	assert.False(t, ok, "unindexed atom-id should not resolve")
}

func TestResolver_ResolveAlbum(t *testing.T) {
	data, idx := buildIndex(t)
	r := New(data, idx, zmdbfamily.HD, nil)

	album, ok := r.ResolveAlbum(albumID)
	require.True(t, ok)
	assert.Equal(t, "Resolved Album", album.Title)
	assert.Equal(t, "Resolved Artist", album.ArtistName)
}

func TestResolver_ResolveString_ArtistAndAlbum(t *testing.T) {
	data, idx := buildIndex(t)
	r := New(data, idx, zmdbfamily.HD, nil)

	assert.Equal(t, "Resolved Artist", r.ResolveString(artistID))
	assert.Equal(t, "Resolved Album", r.ResolveString(albumID))
	assert.Equal(t, "Rock", r.ResolveString(genreID))
}

func TestResolver_ResolveString_Zero(t *testing.T) {
	data, idx := buildIndex(t)
	r := New(data, idx, zmdbfamily.HD, nil)
	assert.Equal(t, "", r.ResolveString(0))
}

func TestResolver_ResolveString_NotIndexed(t *testing.T) {
	data, idx := buildIndex(t)
	r := New(data, idx, zmdbfamily.HD, nil)
	assert.Equal(t, "", r.ResolveString(atomid.ID(0x09999999)))
}
