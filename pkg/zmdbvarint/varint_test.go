package zmdbvarint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildTail concatenates each field's [data][size-varint][id-varint] in file
// order, matching how a real record's tail is laid out: the scan that reads
// right to left encounters the last field first and, after reversal,
// recovers the same file order given here.
func buildTail(fields ...Field) []byte {
	var tail []byte
	for _, f := range fields {
		tail = Encode(tail, f)
	}
	return tail
}

func TestParse_ThreeFields(t *testing.T) {
	// Mirrors spec §8.4 S3: disc(0x6C)=3, skip count(0x63)=0x0010, last-played(0x70)=FILETIME.
	discField := Field{ID: 0x6C, Data: []byte{3}}
	skipField := Field{ID: 0x63, Data: []byte{0x10, 0x00}}
	playedField := Field{ID: 0x70, Data: []byte{0, 0, 0, 0, 0, 0, 0xD7, 0x01}}

	tail := buildTail(discField, skipField, playedField)
	got := Parse(tail, nil)

	assert.Len(t, got, 3)
	assert.Equal(t, discField, got[0])
	assert.Equal(t, skipField, got[1])
	assert.Equal(t, playedField, got[2])
}

func TestParse_EmptyTail(t *testing.T) {
	assert.Empty(t, Parse(nil, nil))
}

func TestParse_ZeroTerminatorOnly(t *testing.T) {
	assert.Empty(t, Parse([]byte{0x00}, nil))
}

func TestParse_StopsOnSizeExceedingBounds(t *testing.T) {
	good := Field{ID: 0x44, Data: []byte("abcd")}
	tail := buildTail(good)
	// Truncate the front of the tail so the (still-intact) size/id trailer
	// claims more data than remains.
	truncated := tail[2:]
	got := Parse(truncated, nil)
	assert.Empty(t, got)
}

func TestRoundTrip_SingleField(t *testing.T) {
	ids := []uint32{1, 0x10, 0x7F, 0x80, 0x100, 0x3FFF}
	sizes := []int{0, 1, 5, 127, 128, 200, 0x4000, 0x8000, 0x10000, 0x1FFFFF}

	for _, id := range ids {
		for _, size := range sizes {
			data := make([]byte, size)
			for i := range data {
				data[i] = byte(i)
			}
			field := Field{ID: id, Data: data}
			tail := Encode(nil, field)

			got := Parse(tail, nil)
			assert.Len(t, got, 1, "id=%d size=%d", id, size)
			assert.Equal(t, field.ID, got[0].ID, "id=%d size=%d", id, size)
			assert.Equal(t, field.Data, got[0].Data, "id=%d size=%d", id, size)
		}
	}
}

func TestRoundTrip_MultipleFieldsFileOrder(t *testing.T) {
	fields := []Field{
		{ID: 0x14, Data: make([]byte, 16)},
		{ID: 0x44, Data: []byte("file.mp3")},
		{ID: 0x6C, Data: []byte{1}},
	}
	tail := buildTail(fields...)
	got := Parse(tail, nil)
	assert.Equal(t, fields, got)
}
