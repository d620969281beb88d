package gvas

// ValueKind discriminates the shape a decoded Value holds.
type ValueKind int

const (
	KindScalar ValueKind = iota
	KindMap
	KindSeq
)

// Value is the generic decode target this package ships: a tree of maps,
// sequences, and scalars, the same shape encoding/json builds when asked to
// decode into map[string]interface{} rather than a caller's struct. It is
// not a reflective deserializer — there is no struct-tag matching here, just
// a faithful record of what the stream contained.
type Value struct {
	Kind ValueKind

	// Scalar holds a bool, int8, uint8, int16, uint16, int32, uint32,
	// int64, uint64, float32, float64, or string when Kind == KindScalar.
	Scalar any

	// Map holds the scope's entries in stream order when Kind == KindMap.
	Map []MapEntry

	// Seq holds the elements in order when Kind == KindSeq.
	Seq []*Value
}

// MapEntry is one key/value pair of a decoded map scope, kept in stream
// order rather than sorted or deduplicated.
type MapEntry struct {
	Key   string
	Value *Value
}

// Get returns the first entry with the given key, mirroring the property
// lookup a caller would do after a decode.
func (v *Value) Get(key string) (*Value, bool) {
	if v == nil || v.Kind != KindMap {
		return nil, false
	}
	for _, e := range v.Map {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

func scalarValue(x any) *Value {
	return &Value{Kind: KindScalar, Scalar: x}
}

// TreeConsumer is the default Consumer: it builds a Value tree and hands
// the root back to the caller through Root once the decode completes.
type TreeConsumer struct {
	Root *Value
}

// NewTreeConsumer returns a Consumer ready to be passed to Decode.
func NewTreeConsumer() *TreeConsumer {
	return &TreeConsumer{}
}

func (t *TreeConsumer) VisitBool(v bool) error     { t.Root = scalarValue(v); return nil }
func (t *TreeConsumer) VisitI8(v int8) error       { t.Root = scalarValue(v); return nil }
func (t *TreeConsumer) VisitU8(v uint8) error      { t.Root = scalarValue(v); return nil }
func (t *TreeConsumer) VisitI16(v int16) error     { t.Root = scalarValue(v); return nil }
func (t *TreeConsumer) VisitU16(v uint16) error    { t.Root = scalarValue(v); return nil }
func (t *TreeConsumer) VisitI32(v int32) error     { t.Root = scalarValue(v); return nil }
func (t *TreeConsumer) VisitU32(v uint32) error    { t.Root = scalarValue(v); return nil }
func (t *TreeConsumer) VisitI64(v int64) error     { t.Root = scalarValue(v); return nil }
func (t *TreeConsumer) VisitU64(v uint64) error    { t.Root = scalarValue(v); return nil }
func (t *TreeConsumer) VisitF32(v float32) error   { t.Root = scalarValue(v); return nil }
func (t *TreeConsumer) VisitF64(v float64) error   { t.Root = scalarValue(v); return nil }
func (t *TreeConsumer) VisitString(v string) error { t.Root = scalarValue(v); return nil }

func (t *TreeConsumer) VisitMap() (MapConsumer, error) {
	t.Root = &Value{Kind: KindMap}
	return &treeMapConsumer{target: t.Root}, nil
}

func (t *TreeConsumer) VisitSeq(count int) (SeqConsumer, error) {
	t.Root = &Value{Kind: KindSeq, Seq: make([]*Value, 0, count)}
	return &treeSeqConsumer{target: t.Root}, nil
}

// treeMapConsumer and treeSeqConsumer thread a shared *Value through
// the decoder: each NextKey/NextElement call spawns a child TreeConsumer,
// then appends its finished Root once the decoder has filled it in.
type treeMapConsumer struct {
	target *Value
}

func (m *treeMapConsumer) NextKey(name string) (Consumer, error) {
	child := &TreeConsumer{}
	m.target.Map = append(m.target.Map, MapEntry{Key: name, Value: nil})
	idx := len(m.target.Map) - 1
	return &bindingConsumer{inner: child, onDone: func() {
		m.target.Map[idx].Value = child.Root
	}}, nil
}

type treeSeqConsumer struct {
	target *Value
}

func (s *treeSeqConsumer) NextElement() (Consumer, error) {
	child := &TreeConsumer{}
	s.target.Seq = append(s.target.Seq, nil)
	idx := len(s.target.Seq) - 1
	return &bindingConsumer{inner: child, onDone: func() {
		s.target.Seq[idx] = child.Root
	}}, nil
}

// bindingConsumer forwards every Visit* call to inner, then runs onDone so
// the parent scope can record the now-populated value. The decoder always
// fully resolves a Consumer (scalar visit, or map/seq scope walked to
// completion) before moving to the next property, so onDone firing once per
// binding, right after the forwarded call, is safe.
type bindingConsumer struct {
	inner  Consumer
	onDone func()
}

func (b *bindingConsumer) VisitBool(v bool) error {
	err := b.inner.VisitBool(v)
	b.onDone()
	return err
}
func (b *bindingConsumer) VisitI8(v int8) error {
	err := b.inner.VisitI8(v)
	b.onDone()
	return err
}
func (b *bindingConsumer) VisitU8(v uint8) error {
	err := b.inner.VisitU8(v)
	b.onDone()
	return err
}
func (b *bindingConsumer) VisitI16(v int16) error {
	err := b.inner.VisitI16(v)
	b.onDone()
	return err
}
func (b *bindingConsumer) VisitU16(v uint16) error {
	err := b.inner.VisitU16(v)
	b.onDone()
	return err
}
func (b *bindingConsumer) VisitI32(v int32) error {
	err := b.inner.VisitI32(v)
	b.onDone()
	return err
}
func (b *bindingConsumer) VisitU32(v uint32) error {
	err := b.inner.VisitU32(v)
	b.onDone()
	return err
}
func (b *bindingConsumer) VisitI64(v int64) error {
	err := b.inner.VisitI64(v)
	b.onDone()
	return err
}
func (b *bindingConsumer) VisitU64(v uint64) error {
	err := b.inner.VisitU64(v)
	b.onDone()
	return err
}
func (b *bindingConsumer) VisitF32(v float32) error {
	err := b.inner.VisitF32(v)
	b.onDone()
	return err
}
func (b *bindingConsumer) VisitF64(v float64) error {
	err := b.inner.VisitF64(v)
	b.onDone()
	return err
}
func (b *bindingConsumer) VisitString(v string) error {
	err := b.inner.VisitString(v)
	b.onDone()
	return err
}

func (b *bindingConsumer) VisitMap() (MapConsumer, error) {
	mc, err := b.inner.VisitMap()
	if err != nil {
		return nil, err
	}
	return &bindingMapConsumer{inner: mc, onDone: b.onDone}, nil
}

func (b *bindingConsumer) VisitSeq(count int) (SeqConsumer, error) {
	sc, err := b.inner.VisitSeq(count)
	if err != nil {
		return nil, err
	}
	return &bindingSeqConsumer{inner: sc, onDone: b.onDone}, nil
}

// bindingMapConsumer and bindingSeqConsumer run onDone once the scope they
// wrap has been told it is finished. NextKey/NextElement never signal the
// end of a scope; the decoder, which knows the sentinel and the element
// count, calls Close explicitly once the scope is complete.
type bindingMapConsumer struct {
	inner  MapConsumer
	onDone func()
	closed bool
}

func (m *bindingMapConsumer) NextKey(name string) (Consumer, error) {
	return m.inner.NextKey(name)
}

func (m *bindingMapConsumer) Close() {
	if !m.closed {
		m.closed = true
		m.onDone()
	}
}

type bindingSeqConsumer struct {
	inner  SeqConsumer
	onDone func()
	closed bool
}

func (s *bindingSeqConsumer) NextElement() (Consumer, error) {
	return s.inner.NextElement()
}

func (s *bindingSeqConsumer) Close() {
	if !s.closed {
		s.closed = true
		s.onDone()
	}
}
