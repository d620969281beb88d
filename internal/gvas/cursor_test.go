package gvas

import (
	"errors"
	"testing"
)

func TestCursorReadIntegers(t *testing.T) {
	buf := []byte{
		0x2a,                   // u8 / i8
		0x34, 0x12,             // u16 / i16 = 0x1234
		0x78, 0x56, 0x34, 0x12, // u32 / i32 = 0x12345678
	}
	c := NewCursor(buf)

	u8, err := c.ReadU8()
	if err != nil || u8 != 0x2a {
		t.Fatalf("ReadU8() = %v, %v, want 0x2a, nil", u8, err)
	}
	u16, err := c.ReadU16()
	if err != nil || u16 != 0x1234 {
		t.Fatalf("ReadU16() = %v, %v, want 0x1234, nil", u16, err)
	}
	u32, err := c.ReadU32()
	if err != nil || u32 != 0x12345678 {
		t.Fatalf("ReadU32() = %v, %v, want 0x12345678, nil", u32, err)
	}
	if c.Position() != int64(len(buf)) {
		t.Errorf("Position() = %d, want %d", c.Position(), len(buf))
	}
}

func TestCursorReadExactShortRead(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02})
	if _, err := c.ReadI32(); err == nil {
		t.Fatal("ReadI32() on a 2-byte buffer succeeded, want Io error")
	} else {
		var gerr *Error
		if !errors.As(err, &gerr) || gerr.Kind != KindIO {
			t.Errorf("ReadI32() error = %v, want KindIO", err)
		}
	}
}

func TestCursorReadString(t *testing.T) {
	tests := []struct {
		name    string
		buf     []byte
		want    string
		wantErr bool
	}{
		{
			name: "hi",
			buf:  []byte{0x03, 0x00, 0x00, 0x00, 'h', 'i', 0x00},
			want: "hi",
		},
		{
			name: "empty length zero",
			buf:  []byte{0x00, 0x00, 0x00, 0x00},
			want: "",
		},
		{
			name: "empty length one",
			buf:  []byte{0x01, 0x00, 0x00, 0x00, 0x00},
			want: "",
		},
		{
			name:    "negative length",
			buf:     []byte{0xff, 0xff, 0xff, 0xff},
			wantErr: true,
		},
		{
			name:    "missing terminator",
			buf:     []byte{0x02, 0x00, 0x00, 0x00, 'h', 'i'},
			wantErr: true,
		},
		{
			name:    "invalid utf8",
			buf:     []byte{0x02, 0x00, 0x00, 0x00, 0xff, 0x00},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.buf)
			got, err := c.ReadString()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ReadString() = %q, nil, want an error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadString() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCursorPeekStringLeavesPositionUnchanged(t *testing.T) {
	buf := []byte{0x03, 0x00, 0x00, 0x00, 'h', 'i', 0x00}
	c := NewCursor(buf)

	peeked, err := c.PeekString()
	if err != nil {
		t.Fatalf("PeekString() error = %v", err)
	}
	if peeked != "hi" {
		t.Errorf("PeekString() = %q, want %q", peeked, "hi")
	}
	if c.Position() != 0 {
		t.Errorf("Position() after PeekString() = %d, want 0", c.Position())
	}

	read, err := c.ReadString()
	if err != nil || read != "hi" {
		t.Errorf("ReadString() after PeekString() = %q, %v, want %q, nil", read, err, "hi")
	}
	if c.Position() != int64(len(buf)) {
		t.Errorf("Position() after ReadString() = %d, want %d", c.Position(), len(buf))
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{"", "hi", "Player_01", "café"} {
		buf, err := appendString(nil, s)
		if err != nil {
			t.Fatalf("appendString(%q) error = %v", s, err)
		}
		wantLen := 4 + len(s) + 1
		if len(buf) != wantLen {
			t.Errorf("appendString(%q) length = %d, want %d", s, len(buf), wantLen)
		}
		got, err := NewCursor(buf).ReadString()
		if err != nil {
			t.Fatalf("ReadString() error = %v", err)
		}
		if got != s {
			t.Errorf("round trip %q => %q", s, got)
		}
	}
}
