package gvas

import "fmt"

// FGuid is four consecutive little-endian u32 values. Equality is
// component-wise; textual rendering concatenates their lowercase hex forms,
// not the dashed UUID form.
type FGuid struct {
	A, B, C, D uint32
}

func (g FGuid) String() string {
	return fmt.Sprintf("%08x%08x%08x%08x", g.A, g.B, g.C, g.D)
}

// FEngineVersion is the Unreal engine version stamp embedded in the header.
type FEngineVersion struct {
	Major      uint16
	Minor      uint16
	Patch      uint16
	ChangeList uint32
	Branch     string
}

// FCustomVersion pairs a subsystem GUID with the version it was serialized at.
type FCustomVersion struct {
	Key     FGuid
	Version int32
}

// GvasHeader is the fixed-layout prologue of a GVAS save file, per §3 of the
// format description. ParsedLength is not a wire field: it is the number of
// bytes DecodeHeader consumed, seeding the body decoder's starting offset.
type GvasHeader struct {
	FileTypeTag           int32
	SaveGameFileVersion   int32
	PackageFileUE4Version int32
	EngineVersion         FEngineVersion
	CustomVersionFormat   int32
	CustomVersions        []FCustomVersion
	SaveGameClassName     string

	ParsedLength int64
}

// PropertyType is the wire-level type tag carried by every non-sentinel
// property, read as the literal UEString that precedes its payload.
type PropertyType string

const (
	Int8Property    PropertyType = "Int8Property"
	ByteProperty    PropertyType = "ByteProperty"
	Int16Property   PropertyType = "Int16Property"
	UInt16Property  PropertyType = "UInt16Property"
	IntProperty     PropertyType = "IntProperty"
	UInt32Property  PropertyType = "UInt32Property"
	Int64Property   PropertyType = "Int64Property"
	UInt64Property  PropertyType = "UInt64Property"
	FloatProperty   PropertyType = "FloatProperty"
	DoubleProperty  PropertyType = "DoubleProperty"
	StrProperty     PropertyType = "StrProperty"
	BoolProperty    PropertyType = "BoolProperty"
	StructProperty  PropertyType = "StructProperty"
	ArrayProperty   PropertyType = "ArrayProperty"
)

// sentinelName is the literal UEString that terminates every map scope.
const sentinelName = "None"

// dateTimeStructType is the only struct type name the decoder special-cases
// (read as a bare u64); every other struct type opens a nested map.
const dateTimeStructType = "DateTime"
