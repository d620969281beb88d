package gvas

import (
	"reflect"
	"testing"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := &GvasHeader{
		FileTypeTag:           0x53415647, // "GVAS"
		SaveGameFileVersion:   2,
		PackageFileUE4Version: 522,
		EngineVersion: FEngineVersion{
			Major:      4,
			Minor:      27,
			Patch:      2,
			ChangeList: 18319896,
			Branch:     "++UE4+Release-4.27",
		},
		CustomVersionFormat: 3,
		CustomVersions: []FCustomVersion{
			{Key: FGuid{0x22d5549c, 0xbe4f, 0x26a8, 0x4607}, Version: 7},
			{Key: FGuid{0x0, 0x0, 0x0, 0x0}, Version: 0},
		},
		SaveGameClassName: "/Script/MyGame.MySaveGame",
	}

	buf, err := EncodeHeader(h)
	if err != nil {
		t.Fatalf("EncodeHeader() error = %v", err)
	}

	got, err := DecodeHeader(NewCursor(buf))
	if err != nil {
		t.Fatalf("DecodeHeader() error = %v", err)
	}

	got.ParsedLength = 0
	if !reflect.DeepEqual(*got, *h) {
		t.Errorf("DecodeHeader(EncodeHeader(h)) = %+v, want %+v", *got, *h)
	}
}

func TestHeaderParsedLengthSeedsBodyOffset(t *testing.T) {
	h := &GvasHeader{
		EngineVersion:  FEngineVersion{Branch: "x"},
		CustomVersions: []FCustomVersion{},
	}
	buf, err := EncodeHeader(h)
	if err != nil {
		t.Fatalf("EncodeHeader() error = %v", err)
	}
	body := []byte{0x05, 0x00, 0x00, 0x00, 'N', 'o', 'n', 'e', 0x00}
	buf = append(buf, body...)

	cur := NewCursor(buf)
	got, err := DecodeHeader(cur)
	if err != nil {
		t.Fatalf("DecodeHeader() error = %v", err)
	}
	if got.ParsedLength != cur.Position() {
		t.Errorf("ParsedLength = %d, want cursor position %d", got.ParsedLength, cur.Position())
	}

	cur.SetPosition(got.ParsedLength)
	tc := NewTreeConsumer()
	if err := Decode(cur, tc); err != nil {
		t.Fatalf("Decode() from parsed length error = %v", err)
	}
	if len(tc.Root.Map) != 0 {
		t.Errorf("decoded root has %d entries, want 0", len(tc.Root.Map))
	}
}

func TestEncodeHeaderRequiresKnownLength(t *testing.T) {
	h := &GvasHeader{EngineVersion: FEngineVersion{}}
	if _, err := EncodeHeader(h); err == nil {
		t.Fatal("EncodeHeader() with nil CustomVersions succeeded, want an error")
	}
}

func TestGuidString(t *testing.T) {
	g := FGuid{A: 0x22d5549c, B: 0x0000be4f, C: 0x000026a8, D: 0x00004607}
	want := "22d5549c0000be4f000026a800004607"
	if got := g.String(); got != want {
		t.Errorf("FGuid.String() = %q, want %q", got, want)
	}
}
