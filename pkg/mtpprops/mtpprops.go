// Package mtpprops encodes the upload subsystem's album property-list wire
// format, reproduced here only to support the cross-subsystem test in
// SPEC_FULL.md §6.4: asserting that an uploaded album's ObjectFileName
// equals the alb_reference this module parses back out of the matching
// ZMDB album record. It is not a general MTP client.
//
// Grounded on the original ZuneUploadPrimitives.cpp's WritePropString
// convention: each property is ObjectHandle:u32=0, PropCode:u16,
// DataType:u16, then a value. A String value is the standard PTP/MTP
// encoding: a 1-byte character count including the NUL terminator, followed
// by that many UTF-16LE code units, or a single zero byte for an empty
// string.
package mtpprops

import (
	"encoding/binary"
	"unicode/utf16"
)

// DataType identifies an MTP property's value encoding.
type DataType uint16

const (
	// TypeString is the PTP/MTP string encoding (spec §6.4).
	TypeString DataType = 0xFFFF
)

// PropCode identifies a known MTP object property.
type PropCode uint16

const (
	// ObjectFileName is the property the §6.4 cross-subsystem contract
	// checks against the ZMDB-parsed alb_reference.
	ObjectFileName PropCode = 0xDC07
)

// Prop is a single encoded property-list entry.
type Prop struct {
	Code  PropCode
	Type  DataType
	Value string
}

// AlbumObjectFileName builds the "<artist>--<album>.alb" ObjectFileName
// string the upload subsystem writes for an album (spec §6.4).
func AlbumObjectFileName(artist, album string) string {
	return artist + "--" + album + ".alb"
}

// Encode appends a single property's wire bytes to dst: ObjectHandle (u32,
// always 0 for a property-list entry not yet tied to a handle), PropCode
// (u16), DataType (u16), then the value.
func Encode(dst []byte, p Prop) []byte {
	var handle [4]byte
	dst = append(dst, handle[:]...)
	dst = appendU16(dst, uint16(p.Code))
	dst = appendU16(dst, uint16(p.Type))
	return appendMTPString(dst, p.Value)
}

// EncodeList encodes a sequence of properties back to back.
func EncodeList(props []Prop) []byte {
	var buf []byte
	for _, p := range props {
		buf = Encode(buf, p)
	}
	return buf
}

func appendU16(dst []byte, v uint16) []byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return append(dst, b[:]...)
}

// appendMTPString writes s as a PTP/MTP string value: a 1-byte count
// including the NUL terminator, then that many UTF-16LE code units, or a
// single zero byte when s is empty.
func appendMTPString(dst []byte, s string) []byte {
	if s == "" {
		return append(dst, 0x00)
	}
	units := utf16.Encode([]rune(s))
	count := len(units) + 1 // + NUL terminator
	dst = append(dst, byte(count))
	for _, u := range units {
		dst = appendU16(dst, u)
	}
	return appendU16(dst, 0)
}
