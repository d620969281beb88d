package gvas

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"
)

func appendI64(buf []byte, v int64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	return append(buf, b[:]...)
}

func appendU64(buf []byte, v uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return append(buf, b[:]...)
}

func mustAppendString(t *testing.T, buf []byte, s string) []byte {
	t.Helper()
	out, err := appendString(buf, s)
	if err != nil {
		t.Fatalf("appendString(%q) error = %v", s, err)
	}
	return out
}

func sentinel(buf []byte) []byte {
	b, _ := appendString(buf, sentinelName)
	return b
}

func decodeTree(t *testing.T, buf []byte) *Value {
	t.Helper()
	tc := NewTreeConsumer()
	if err := Decode(NewCursor(buf), tc); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	return tc.Root
}

func TestDecodeEmptyBody(t *testing.T) {
	buf := []byte{0x05, 0x00, 0x00, 0x00, 'N', 'o', 'n', 'e', 0x00}
	root := decodeTree(t, buf)
	if root.Kind != KindMap || len(root.Map) != 0 {
		t.Errorf("decode empty body = %+v, want empty map", root)
	}

	cur := NewCursor(buf)
	tc := NewTreeConsumer()
	if err := Decode(cur, tc); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if cur.Position() != int64(len(buf)) {
		t.Errorf("cursor advanced %d bytes, want %d", cur.Position(), len(buf))
	}
}

func TestDecodeIntProperty(t *testing.T) {
	var buf []byte
	buf = mustAppendString(t, buf, "x")
	buf = mustAppendString(t, buf, string(IntProperty))
	buf = appendI64(buf, 4)
	buf = append(buf, 0x00)
	buf = appendI32(buf, 42)
	buf = sentinel(buf)

	root := decodeTree(t, buf)
	v, ok := root.Get("x")
	if !ok {
		t.Fatalf("root has no key %q: %+v", "x", root)
	}
	if v.Scalar != int32(42) {
		t.Errorf("x = %v, want int32(42)", v.Scalar)
	}
}

func TestDecodeBoolProperty(t *testing.T) {
	for _, tt := range []struct {
		raw  uint16
		want bool
	}{
		{1, true},
		{0, false},
	} {
		var buf []byte
		buf = mustAppendString(t, buf, "flag")
		buf = mustAppendString(t, buf, string(BoolProperty))
		buf = appendI64(buf, 0)
		buf = appendU16(buf, tt.raw)
		buf = sentinel(buf)

		root := decodeTree(t, buf)
		v, ok := root.Get("flag")
		if !ok || v.Scalar != tt.want {
			t.Errorf("raw u16=%d decoded to %v, want %v", tt.raw, v, tt.want)
		}
	}
}

func TestDecodeStrProperty(t *testing.T) {
	var buf []byte
	buf = mustAppendString(t, buf, "greeting")
	buf = mustAppendString(t, buf, string(StrProperty))
	buf = appendI64(buf, 999) // unverified value_size, per the source this was distilled from
	buf = append(buf, 0x00)
	buf = mustAppendString(t, buf, "hi")
	buf = sentinel(buf)

	root := decodeTree(t, buf)
	v, ok := root.Get("greeting")
	if !ok || v.Scalar != "hi" {
		t.Errorf("greeting = %v, want %q", v, "hi")
	}
}

func TestDecodeDateTimeStruct(t *testing.T) {
	var buf []byte
	buf = mustAppendString(t, buf, "timestamp")
	buf = mustAppendString(t, buf, string(StructProperty))
	buf = appendI64(buf, 8)
	buf = mustAppendString(t, buf, "DateTime")
	buf = appendU32(buf, 0)
	buf = appendU32(buf, 0)
	buf = appendU32(buf, 0)
	buf = appendU32(buf, 0)
	buf = append(buf, 0x00)
	buf = appendU64(buf, 0x123456789ABCDEF0)
	buf = sentinel(buf)

	root := decodeTree(t, buf)
	v, ok := root.Get("timestamp")
	if !ok || v.Scalar != uint64(0x123456789ABCDEF0) {
		t.Errorf("timestamp = %v, want 0x123456789ABCDEF0", v)
	}
}

func TestDecodeNestedStruct(t *testing.T) {
	var inner []byte
	inner = mustAppendString(t, inner, "x")
	inner = mustAppendString(t, inner, string(IntProperty))
	inner = appendI64(inner, 4)
	inner = append(inner, 0x00)
	inner = appendI32(inner, 7)
	inner = sentinel(inner)

	var buf []byte
	buf = mustAppendString(t, buf, "position")
	buf = mustAppendString(t, buf, string(StructProperty))
	buf = appendI64(buf, int64(len(inner)))
	buf = mustAppendString(t, buf, "Vector")
	buf = appendU32(buf, 0)
	buf = appendU32(buf, 0)
	buf = appendU32(buf, 0)
	buf = appendU32(buf, 0)
	buf = append(buf, 0x00)
	buf = append(buf, inner...)
	buf = sentinel(buf)

	root := decodeTree(t, buf)
	pos, ok := root.Get("position")
	if !ok || pos.Kind != KindMap {
		t.Fatalf("position = %+v, want a map", pos)
	}
	x, ok := pos.Get("x")
	if !ok || x.Scalar != int32(7) {
		t.Errorf("position.x = %v, want int32(7)", x)
	}
}

func TestDecodeArrayOfInt(t *testing.T) {
	var buf []byte
	buf = mustAppendString(t, buf, "values")
	buf = mustAppendString(t, buf, string(ArrayProperty))

	var payload []byte
	payload = mustAppendString(t, payload, string(IntProperty))
	payload = append(payload, 0x00)
	payload = appendI32(payload, 3)
	payload = appendI32(payload, 1)
	payload = appendI32(payload, 2)
	payload = appendI32(payload, 3)

	buf = appendI64(buf, int64(len(payload)))
	buf = append(buf, payload...)
	buf = sentinel(buf)

	root := decodeTree(t, buf)
	v, ok := root.Get("values")
	if !ok || v.Kind != KindSeq {
		t.Fatalf("values = %+v, want a seq", v)
	}
	want := []int32{1, 2, 3}
	if len(v.Seq) != len(want) {
		t.Fatalf("len(values) = %d, want %d", len(v.Seq), len(want))
	}
	for i, w := range want {
		if v.Seq[i].Scalar != w {
			t.Errorf("values[%d] = %v, want %v", i, v.Seq[i].Scalar, w)
		}
	}
}

func TestDecodeArrayOfStruct(t *testing.T) {
	elem := func(n int32) []byte {
		var b []byte
		b = mustAppendString(t, b, "n")
		b = mustAppendString(t, b, string(IntProperty))
		b = appendI64(b, 4)
		b = append(b, 0x00)
		b = appendI32(b, n)
		b = sentinel(b)
		return b
	}

	var elements []byte
	elements = append(elements, elem(1)...)
	elements = append(elements, elem(2)...)

	var inner []byte
	inner = mustAppendString(t, inner, string(StructProperty))
	inner = append(inner, 0x00)
	inner = appendI32(inner, 2) // element_count
	inner = mustAppendString(t, inner, "items")
	inner = mustAppendString(t, inner, string(StructProperty))
	inner = appendI64(inner, 0)
	inner = mustAppendString(t, inner, "ItemStruct")
	inner = appendU32(inner, 0)
	inner = appendU32(inner, 0)
	inner = appendU32(inner, 0)
	inner = appendU32(inner, 0)
	inner = append(inner, 0x00)
	inner = append(inner, elements...)

	var buf []byte
	buf = mustAppendString(t, buf, "items")
	buf = mustAppendString(t, buf, string(ArrayProperty))
	buf = appendI64(buf, int64(len(inner)))
	buf = append(buf, inner...)
	buf = sentinel(buf)

	root := decodeTree(t, buf)
	v, ok := root.Get("items")
	if !ok || v.Kind != KindSeq || len(v.Seq) != 2 {
		t.Fatalf("items = %+v, want a 2-element seq", v)
	}
	for i, want := range []int32{1, 2} {
		n, ok := v.Seq[i].Get("n")
		if !ok || n.Scalar != want {
			t.Errorf("items[%d].n = %v, want %v", i, n, want)
		}
	}
}

func TestDecodeUnknownPropertyTypeFails(t *testing.T) {
	var buf []byte
	buf = mustAppendString(t, buf, "x")
	buf = mustAppendString(t, buf, "Mystery")
	buf = appendI64(buf, 0)

	tc := NewTreeConsumer()
	err := Decode(NewCursor(buf), tc)
	if err == nil {
		t.Fatal("Decode() with type tag \"Mystery\" succeeded, want a Data error")
	}
	var gerr *Error
	if !errors.As(err, &gerr) || gerr.Kind != KindData {
		t.Fatalf("Decode() error = %v, want KindData", err)
	}
	if !strings.Contains(gerr.Message, "Mystery") {
		t.Errorf("error message %q does not mention %q", gerr.Message, "Mystery")
	}
}

func TestDecodeScalarSizeMismatchFails(t *testing.T) {
	var buf []byte
	buf = mustAppendString(t, buf, "x")
	buf = mustAppendString(t, buf, string(IntProperty))
	buf = appendI64(buf, 999) // wrong: IntProperty must be 4
	buf = append(buf, 0x00)
	buf = appendI32(buf, 42)

	tc := NewTreeConsumer()
	err := Decode(NewCursor(buf), tc)
	var gerr *Error
	if !errors.As(err, &gerr) || gerr.Kind != KindData {
		t.Fatalf("Decode() error = %v, want KindData", err)
	}
}
