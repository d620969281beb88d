package gvas

// Consumer is the callback surface the body decoder drives as it walks a
// property stream. It mirrors the visitor surface of a schema-directed
// deserialization framework (§6.1): the decoder peeks the wire tag, then
// calls exactly one Visit method, or opens a Map/Seq scope and recurses.
//
// Building target types by reflection onto a caller's Go struct is
// explicitly out of scope (the original spec treats that as an external
// collaborator's responsibility); Consumer is the callback boundary a host
// deserialization facility would sit behind. This package ships one concrete
// Consumer — see tree.go — that builds a generic value tree instead.
type Consumer interface {
	VisitBool(v bool) error
	VisitI8(v int8) error
	VisitU8(v uint8) error
	VisitI16(v int16) error
	VisitU16(v uint16) error
	VisitI32(v int32) error
	VisitU32(v uint32) error
	VisitI64(v int64) error
	VisitU64(v uint64) error
	VisitF32(v float32) error
	VisitF64(v float64) error
	VisitString(v string) error

	// VisitMap is called for the root save object and for every nested,
	// non-DateTime StructProperty body. It returns a MapConsumer that
	// receives the scope's key/value pairs in stream order.
	VisitMap() (MapConsumer, error)

	// VisitSeq is called for an ArrayProperty. count is the element count
	// read from the stream; the returned SeqConsumer's NextElement is
	// called exactly count times.
	VisitSeq(count int) (SeqConsumer, error)
}

// MapConsumer receives the key/value pairs of one map scope (the root save
// object, or a nested struct body) in stream order.
type MapConsumer interface {
	// NextKey is called with the next property name. A nil returned
	// Consumer tells the decoder the caller wants to ignore this value;
	// the decoder still fully consumes the property's bytes.
	NextKey(name string) (Consumer, error)
}

// SeqConsumer receives the elements of one ArrayProperty in order.
type SeqConsumer interface {
	// NextElement is called once per array element; the returned Consumer
	// drives that element's decode.
	NextElement() (Consumer, error)
}
