package gvas

// MaxNestingDepth bounds how deep nested StructProperty maps may recurse.
// The format has no hard limit; this guards a crafted file from blowing the
// Go stack via unbounded recursion (§5).
const MaxNestingDepth = 256

// Decode walks the body of a GVAS file — everything after the header — and
// drives consumer as the root map scope. It returns once the top-level
// "None" sentinel has been consumed.
func Decode(cur *Cursor, consumer Consumer) error {
	mc, err := consumer.VisitMap()
	if err != nil {
		return err
	}
	err = decodeMap(cur, 0, mc)
	closeIfCloser(mc)
	return err
}

// DecodeSaveFile decodes a full GVAS buffer — header then body — into a
// generic Value tree. It is the convenience entry point the CLI commands
// call; library users who want their own Consumer should call DecodeHeader
// and Decode directly.
func DecodeSaveFile(buf []byte) (*GvasHeader, *Value, error) {
	cur := NewCursor(buf)
	header, err := DecodeHeader(cur)
	if err != nil {
		return nil, nil, err
	}
	tc := NewTreeConsumer()
	if err := Decode(cur, tc); err != nil {
		return header, nil, err
	}
	return header, tc.Root, nil
}

// decodeMap reads properties until the "None" sentinel, delivering each to
// mc. depth is the current nesting level, used to enforce MaxNestingDepth
// on the struct bodies this loop may recurse into.
func decodeMap(cur *Cursor, depth int, mc MapConsumer) error {
	for {
		name, err := cur.PeekString()
		if err != nil {
			return err
		}
		if name == sentinelName {
			if _, err := cur.ReadString(); err != nil {
				return err
			}
			return nil
		}

		if name, err = cur.ReadString(); err != nil {
			return err
		}
		typeTagStr, err := cur.ReadString()
		if err != nil {
			return err
		}
		valueSize, err := cur.ReadI64()
		if err != nil {
			return err
		}

		consumer, err := mc.NextKey(name)
		if err != nil {
			return err
		}
		if err := decodeValue(cur, PropertyType(typeTagStr), valueSize, consumer, depth); err != nil {
			return err
		}
	}
}

// decodeValue dispatches on typeTag and delivers the decoded payload to
// consumer, which may be nil if the caller wants this property's bytes
// consumed and discarded.
func decodeValue(cur *Cursor, typeTag PropertyType, valueSize int64, consumer Consumer, depth int) error {
	switch typeTag {
	case Int8Property:
		return decodeFramedScalar(cur, typeTag, valueSize, 1, func() (any, error) { return cur.ReadI8() }, consumer, visitI8)
	case Int16Property:
		return decodeFramedScalar(cur, typeTag, valueSize, 2, func() (any, error) { return cur.ReadI16() }, consumer, visitI16)
	case UInt16Property:
		return decodeFramedScalar(cur, typeTag, valueSize, 2, func() (any, error) { return cur.ReadU16() }, consumer, visitU16)
	case IntProperty:
		return decodeFramedScalar(cur, typeTag, valueSize, 4, func() (any, error) { return cur.ReadI32() }, consumer, visitI32)
	case UInt32Property:
		return decodeFramedScalar(cur, typeTag, valueSize, 4, func() (any, error) { return cur.ReadU32() }, consumer, visitU32)
	case Int64Property:
		return decodeFramedScalar(cur, typeTag, valueSize, 8, func() (any, error) { return cur.ReadI64() }, consumer, visitI64)
	case UInt64Property:
		return decodeFramedScalar(cur, typeTag, valueSize, 8, func() (any, error) { return cur.ReadU64() }, consumer, visitU64)
	case FloatProperty:
		return decodeFramedScalar(cur, typeTag, valueSize, 4, func() (any, error) { return cur.ReadF32() }, consumer, visitF32)
	case DoubleProperty:
		return decodeFramedScalar(cur, typeTag, valueSize, 8, func() (any, error) { return cur.ReadF64() }, consumer, visitF64)

	case ByteProperty:
		return decodeByteProperty(cur, valueSize, consumer)

	case BoolProperty:
		return decodeBoolProperty(cur, valueSize, consumer)

	case StrProperty:
		return decodeStrProperty(cur, consumer)

	case StructProperty:
		return decodeStructProperty(cur, consumer, depth)

	case ArrayProperty:
		return decodeArrayProperty(cur, consumer, depth)

	default:
		return dataErrorAt(cur.Position(), "unknown property type %q", typeTag)
	}
}

// decodeFramedScalar reads the common scalar payload shape: a validated
// value_size, a single 0x00 terminator, then the scalar itself. read
// produces the value as any so one function can serve every numeric width;
// visit delivers it to consumer.
func decodeFramedScalar(cur *Cursor, typeTag PropertyType, valueSize int64, wantSize int64, read func() (any, error), consumer Consumer, visit func(Consumer, any) error) error {
	if valueSize != wantSize {
		return dataErrorAt(cur.Position(), "%s: value_size %d, want %d", typeTag, valueSize, wantSize)
	}
	if err := readTerminator(cur); err != nil {
		return err
	}
	v, err := read()
	if err != nil {
		return err
	}
	if consumer == nil {
		return nil
	}
	return visit(consumer, v)
}

func visitI8(c Consumer, v any) error  { return c.VisitI8(v.(int8)) }
func visitI16(c Consumer, v any) error { return c.VisitI16(v.(int16)) }
func visitU16(c Consumer, v any) error { return c.VisitU16(v.(uint16)) }
func visitI32(c Consumer, v any) error { return c.VisitI32(v.(int32)) }
func visitU32(c Consumer, v any) error { return c.VisitU32(v.(uint32)) }
func visitI64(c Consumer, v any) error { return c.VisitI64(v.(int64)) }
func visitU64(c Consumer, v any) error { return c.VisitU64(v.(uint64)) }
func visitF32(c Consumer, v any) error { return c.VisitF32(v.(float32)) }
func visitF64(c Consumer, v any) error { return c.VisitF64(v.(float64)) }

// decodeByteProperty reads: i64 size=1, UEString enum name (discarded —
// source never uses it either, §9), 1 terminator, u8 value.
func decodeByteProperty(cur *Cursor, valueSize int64, consumer Consumer) error {
	if valueSize != 1 {
		return dataErrorAt(cur.Position(), "ByteProperty: value_size %d, want 1", valueSize)
	}
	if _, err := cur.ReadString(); err != nil {
		return err
	}
	if err := readTerminator(cur); err != nil {
		return err
	}
	v, err := cur.ReadU8()
	if err != nil {
		return err
	}
	if consumer == nil {
		return nil
	}
	return consumer.VisitU8(v)
}

// decodeBoolProperty reads: i64 size=0, then a bare u16 whose nonzero-ness
// is the bool. There is no terminator byte here — the general scalar rule
// in §4.3.2 does not apply to Bool.
func decodeBoolProperty(cur *Cursor, valueSize int64, consumer Consumer) error {
	if valueSize != 0 {
		return dataErrorAt(cur.Position(), "BoolProperty: value_size %d, want 0", valueSize)
	}
	v, err := cur.ReadU16()
	if err != nil {
		return err
	}
	if consumer == nil {
		return nil
	}
	return consumer.VisitBool(v > 0)
}

// decodeStrProperty reads: 1 terminator, UEString value. The i64 size that
// decodeMap read before it is not passed in and never checked (per the open
// question in §9 — the source ignores it and so do we).
func decodeStrProperty(cur *Cursor, consumer Consumer) error {
	if err := readTerminator(cur); err != nil {
		return err
	}
	v, err := cur.ReadString()
	if err != nil {
		return err
	}
	if consumer == nil {
		return nil
	}
	return consumer.VisitString(v)
}

// decodeStructProperty reads the struct_type/guid/terminator prelude common
// to every StructProperty, then dispatches on struct_type: DateTime is a
// bare u64 scalar, everything else opens a nested map closed by "None".
func decodeStructProperty(cur *Cursor, consumer Consumer, depth int) error {
	structType, err := cur.ReadString()
	if err != nil {
		return err
	}
	if _, err := decodeGuid(cur); err != nil {
		return err
	}
	if err := readTerminator(cur); err != nil {
		return err
	}
	return decodeStructBody(cur, structType, consumer, depth)
}

// decodeStructBody decodes the value following a struct prelude that has
// already been consumed. Split out of decodeStructProperty so the
// array-of-struct path — which reads one shared prelude for all elements —
// can reuse it per element.
func decodeStructBody(cur *Cursor, structType string, consumer Consumer, depth int) error {
	if structType == dateTimeStructType {
		v, err := cur.ReadU64()
		if err != nil {
			return err
		}
		if consumer == nil {
			return nil
		}
		return consumer.VisitU64(v)
	}

	if depth+1 > MaxNestingDepth {
		return dataErrorAt(cur.Position(), "struct nesting exceeds %d levels", MaxNestingDepth)
	}

	var mc MapConsumer
	if consumer != nil {
		var err error
		if mc, err = consumer.VisitMap(); err != nil {
			return err
		}
	} else {
		mc = nullMapConsumer{}
	}
	err := decodeMap(cur, depth+1, mc)
	closeIfCloser(mc)
	return err
}

// decodeArrayProperty reads the element_type/terminator prelude, then
// branches on whether elements are structs (which carry a duplicated,
// redundant inner header, §3/§4.3.4) or bare scalars.
func decodeArrayProperty(cur *Cursor, consumer Consumer, depth int) error {
	elementType, err := cur.ReadString()
	if err != nil {
		return err
	}
	if err := readTerminator(cur); err != nil {
		return err
	}

	if PropertyType(elementType) == StructProperty {
		return decodeStructArray(cur, consumer, depth)
	}
	return decodeScalarArray(cur, PropertyType(elementType), consumer)
}

// decodeStructArray reads the redundant inner header documented in §3 and
// §9 — a second copy of the variable name, type tag, and value_size,
// followed by the struct_type_name that actually governs every element —
// and discards all of it except struct_type_name, which is read from the
// stream rather than assumed (the hard-coded name in the source this spec
// was distilled from is a bug, not a contract).
func decodeStructArray(cur *Cursor, consumer Consumer, depth int) error {
	count, err := cur.ReadI32()
	if err != nil {
		return err
	}
	if count < 0 {
		return dataErrorAt(cur.Position(), "negative array element count %d", count)
	}

	if _, err := cur.ReadString(); err != nil { // dup_variable_name
		return err
	}
	if _, err := cur.ReadString(); err != nil { // dup_type_tag
		return err
	}
	if _, err := cur.ReadI64(); err != nil { // dup_value_size
		return err
	}
	structTypeName, err := cur.ReadString()
	if err != nil {
		return err
	}
	if _, err := decodeGuid(cur); err != nil {
		return err
	}
	if err := readTerminator(cur); err != nil {
		return err
	}

	var sc SeqConsumer
	if consumer != nil {
		if sc, err = consumer.VisitSeq(int(count)); err != nil {
			return err
		}
	} else {
		sc = nullSeqConsumer{}
	}

	for i := int32(0); i < count; i++ {
		elem, err := sc.NextElement()
		if err != nil {
			return err
		}
		if err := decodeStructBody(cur, structTypeName, elem, depth+1); err != nil {
			return err
		}
	}
	closeIfCloser(sc)
	return nil
}

// decodeScalarArray reads count bare elements of elementType with no
// per-element name, value_size, or terminator.
func decodeScalarArray(cur *Cursor, elementType PropertyType, consumer Consumer) error {
	count, err := cur.ReadI32()
	if err != nil {
		return err
	}
	if count < 0 {
		return dataErrorAt(cur.Position(), "negative array element count %d", count)
	}

	var sc SeqConsumer
	if consumer != nil {
		if sc, err = consumer.VisitSeq(int(count)); err != nil {
			return err
		}
	} else {
		sc = nullSeqConsumer{}
	}

	for i := int32(0); i < count; i++ {
		elem, err := sc.NextElement()
		if err != nil {
			return err
		}
		if err := decodeBareScalar(cur, elementType, elem); err != nil {
			return err
		}
	}
	closeIfCloser(sc)
	return nil
}

// decodeBareScalar reads one unframed array element: no value_size, no
// terminator, just the raw bytes for elementType's width.
func decodeBareScalar(cur *Cursor, elementType PropertyType, consumer Consumer) error {
	switch elementType {
	case Int8Property:
		v, err := cur.ReadI8()
		if err != nil {
			return err
		}
		if consumer != nil {
			return consumer.VisitI8(v)
		}
	case ByteProperty:
		v, err := cur.ReadU8()
		if err != nil {
			return err
		}
		if consumer != nil {
			return consumer.VisitU8(v)
		}
	case Int16Property:
		v, err := cur.ReadI16()
		if err != nil {
			return err
		}
		if consumer != nil {
			return consumer.VisitI16(v)
		}
	case UInt16Property:
		v, err := cur.ReadU16()
		if err != nil {
			return err
		}
		if consumer != nil {
			return consumer.VisitU16(v)
		}
	case IntProperty:
		v, err := cur.ReadI32()
		if err != nil {
			return err
		}
		if consumer != nil {
			return consumer.VisitI32(v)
		}
	case UInt32Property:
		v, err := cur.ReadU32()
		if err != nil {
			return err
		}
		if consumer != nil {
			return consumer.VisitU32(v)
		}
	case Int64Property:
		v, err := cur.ReadI64()
		if err != nil {
			return err
		}
		if consumer != nil {
			return consumer.VisitI64(v)
		}
	case UInt64Property:
		v, err := cur.ReadU64()
		if err != nil {
			return err
		}
		if consumer != nil {
			return consumer.VisitU64(v)
		}
	case FloatProperty:
		v, err := cur.ReadF32()
		if err != nil {
			return err
		}
		if consumer != nil {
			return consumer.VisitF32(v)
		}
	case DoubleProperty:
		v, err := cur.ReadF64()
		if err != nil {
			return err
		}
		if consumer != nil {
			return consumer.VisitF64(v)
		}
	case StrProperty:
		v, err := cur.ReadString()
		if err != nil {
			return err
		}
		if consumer != nil {
			return consumer.VisitString(v)
		}
	case BoolProperty:
		v, err := cur.ReadU8()
		if err != nil {
			return err
		}
		if consumer != nil {
			return consumer.VisitBool(v > 0)
		}
	default:
		return dataErrorAt(cur.Position(), "unknown array element type %q", elementType)
	}
	return nil
}

func readTerminator(cur *Cursor) error {
	b, err := cur.ReadU8()
	if err != nil {
		return err
	}
	if b != 0x00 {
		return dataErrorAt(cur.Position()-1, "expected terminator byte 0x00, got %#02x", b)
	}
	return nil
}

// nullMapConsumer and nullSeqConsumer let decodeMap/decodeArrayProperty
// keep one code path whether or not the caller's Consumer wanted this
// value: the bytes are always fully consumed, but nothing is recorded.
type nullMapConsumer struct{}

func (nullMapConsumer) NextKey(name string) (Consumer, error) { return nil, nil }

type nullSeqConsumer struct{}

func (nullSeqConsumer) NextElement() (Consumer, error) { return nil, nil }

type closer interface{ Close() }

func closeIfCloser(x any) {
	if c, ok := x.(closer); ok {
		c.Close()
	}
}
