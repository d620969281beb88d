package gvas

import (
	"encoding/binary"
	"unicode/utf8"
)

func appendU16(buf []byte, v uint16) []byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return append(buf, b[:]...)
}

func appendU32(buf []byte, v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return append(buf, b[:]...)
}

func appendI32(buf []byte, v int32) []byte {
	return appendU32(buf, uint32(v))
}

// appendString writes a UEString: i32 length = utf8 byte count + 1, the
// bytes, then a NUL terminator.
func appendString(buf []byte, s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, dataErrorAt(-1, "string is not valid UTF-8: %q", s)
	}
	buf = appendI32(buf, int32(len(s))+1)
	buf = append(buf, s...)
	buf = append(buf, 0x00)
	return buf, nil
}
