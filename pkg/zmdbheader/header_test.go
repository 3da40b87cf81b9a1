package zmdbheader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validBuffer(version byte) []byte {
	buf := make([]byte, 4096)
	copy(buf[0x00:], "ZMDB")
	copy(buf[0x20:], "ZMed")
	buf[0x24] = version
	copy(buf[0x30:], "ZArr")
	return buf
}

func TestRead_Valid(t *testing.T) {
	buf := validBuffer(5)
	hdr, ok := Read(buf, nil)
	assert.True(t, ok)
	assert.Equal(t, VersionHD, hdr.Version)
	assert.Equal(t, 0x30, hdr.DescriptorBase)
}

func TestRead_ZArrLaterInWindow(t *testing.T) {
	buf := validBuffer(2)
	copy(buf[0x30:], []byte{0, 0, 0, 0})
	copy(buf[0x50:], "ZArr")
	hdr, ok := Read(buf, nil)
	assert.True(t, ok)
	assert.Equal(t, 0x50, hdr.DescriptorBase)
}

func TestRead_MissingOuterMagic(t *testing.T) {
	buf := validBuffer(5)
	buf[0] = 'X'
	_, ok := Read(buf, nil)
	assert.False(t, ok)
}

func TestRead_MissingInnerMagic(t *testing.T) {
	buf := validBuffer(5)
	buf[0x20] = 'X'
	_, ok := Read(buf, nil)
	assert.False(t, ok)
}

func TestRead_NoZArrTag(t *testing.T) {
	buf := make([]byte, 4096)
	copy(buf[0x00:], "ZMDB")
	copy(buf[0x20:], "ZMed")
	buf[0x24] = 5
	_, ok := Read(buf, nil)
	assert.False(t, ok)
}

func TestRead_TooShort(t *testing.T) {
	buf := []byte("ZMDB")
	_, ok := Read(buf, nil)
	assert.False(t, ok)
}

func TestRead_EmptyBuffer(t *testing.T) {
	_, ok := Read(nil, nil)
	assert.False(t, ok)
}
