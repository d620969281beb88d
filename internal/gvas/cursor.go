package gvas

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// Cursor is a byte-addressable, little-endian read surface over an
// immutable buffer. It never allocates beyond the slices it returns, and
// never mutates the buffer it was given.
type Cursor struct {
	buf []byte
	pos int64
}

// NewCursor wraps buf for little-endian reads starting at position 0.
// The returned Cursor borrows buf; the caller must not mutate it while the
// Cursor is in use.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Position reports the current read offset.
func (c *Cursor) Position() int64 {
	return c.pos
}

// SetPosition moves the read offset without validating bounds; the next
// read will fail if it is out of range. Used by PeekString to restore state.
func (c *Cursor) SetPosition(pos int64) {
	c.pos = pos
}

// Len reports the number of bytes remaining after the current position.
func (c *Cursor) Len() int64 {
	return int64(len(c.buf)) - c.pos
}

func (c *Cursor) readExact(n int64) ([]byte, error) {
	if n < 0 || c.pos+n > int64(len(c.buf)) || c.pos < 0 {
		return nil, ioErrorAt(c.pos, ErrUnexpectedEOF)
	}
	start := c.pos
	c.pos += n
	return c.buf[start:c.pos], nil
}

// ReadExact advances by n bytes and returns a view into the underlying
// buffer. Fails with KindIO if fewer than n bytes remain.
func (c *Cursor) ReadExact(n int) ([]byte, error) {
	return c.readExact(int64(n))
}

func (c *Cursor) ReadI8() (int8, error) {
	b, err := c.readExact(1)
	if err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

func (c *Cursor) ReadU8() (uint8, error) {
	b, err := c.readExact(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *Cursor) ReadI16() (int16, error) {
	b, err := c.readExact(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(b)), nil
}

func (c *Cursor) ReadU16() (uint16, error) {
	b, err := c.readExact(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *Cursor) ReadI32() (int32, error) {
	b, err := c.readExact(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

func (c *Cursor) ReadU32() (uint32, error) {
	b, err := c.readExact(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *Cursor) ReadI64() (int64, error) {
	b, err := c.readExact(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

func (c *Cursor) ReadU64() (uint64, error) {
	b, err := c.readExact(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (c *Cursor) ReadF32() (float32, error) {
	b, err := c.readExact(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b)), nil
}

func (c *Cursor) ReadF64() (float64, error) {
	b, err := c.readExact(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// ReadString reads a UEString: an i32 length (counting the NUL terminator)
// followed by exactly that many bytes, the last of which must be 0x00.
// length == 0 and length == 1 both decode to the empty string.
func (c *Cursor) ReadString() (string, error) {
	startPos := c.pos
	length, err := c.ReadI32()
	if err != nil {
		return "", err
	}
	if length < 0 {
		return "", dataErrorAt(startPos, "negative UEString length %d", length)
	}
	if length == 0 {
		return "", nil
	}
	if int64(length) > c.Len() {
		return "", dataErrorAt(startPos, "UEString length %d exceeds remaining buffer", length)
	}

	raw, err := c.readExact(int64(length))
	if err != nil {
		return "", err
	}
	if raw[len(raw)-1] != 0x00 {
		return "", dataErrorAt(startPos, "UEString missing NUL terminator")
	}
	body := raw[:len(raw)-1]
	if !utf8.Valid(body) {
		return "", stringParseErrorAt(startPos, errInvalidUTF8)
	}
	return string(body), nil
}

// PeekString returns the same value ReadString would, leaving the cursor
// unchanged. Implemented as snapshot + ReadString + restore, never as a
// second parser, so UTF-8 validation lives in exactly one place.
func (c *Cursor) PeekString() (string, error) {
	saved := c.pos
	s, err := c.ReadString()
	c.pos = saved
	return s, err
}
