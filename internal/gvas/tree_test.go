package gvas

import "testing"

func TestValueGetMissingKey(t *testing.T) {
	v := &Value{Kind: KindMap, Map: []MapEntry{{Key: "x", Value: scalarValue(int32(1))}}}
	if _, ok := v.Get("y"); ok {
		t.Error("Get(\"y\") on a map without y returned ok=true")
	}
	got, ok := v.Get("x")
	if !ok || got.Scalar != int32(1) {
		t.Errorf("Get(\"x\") = %v, %v, want int32(1), true", got, ok)
	}
}

func TestValueGetOnNonMap(t *testing.T) {
	v := scalarValue(int32(1))
	if _, ok := v.Get("x"); ok {
		t.Error("Get() on a scalar Value returned ok=true")
	}
	var nilValue *Value
	if _, ok := nilValue.Get("x"); ok {
		t.Error("Get() on a nil Value returned ok=true")
	}
}

func TestTreeConsumerPreservesMapOrder(t *testing.T) {
	tc := NewTreeConsumer()
	mc, err := tc.VisitMap()
	if err != nil {
		t.Fatalf("VisitMap() error = %v", err)
	}

	for _, name := range []string{"c", "a", "b"} {
		child, err := mc.NextKey(name)
		if err != nil {
			t.Fatalf("NextKey(%q) error = %v", name, err)
		}
		if err := child.VisitI32(1); err != nil {
			t.Fatalf("VisitI32() error = %v", err)
		}
	}
	if closer, ok := mc.(interface{ Close() }); ok {
		closer.Close()
	}

	root := tc.Root
	if len(root.Map) != 3 {
		t.Fatalf("len(root.Map) = %d, want 3", len(root.Map))
	}
	wantOrder := []string{"c", "a", "b"}
	for i, want := range wantOrder {
		if root.Map[i].Key != want {
			t.Errorf("root.Map[%d].Key = %q, want %q", i, root.Map[i].Key, want)
		}
	}
}

func TestTreeConsumerSeq(t *testing.T) {
	tc := NewTreeConsumer()
	sc, err := tc.VisitSeq(2)
	if err != nil {
		t.Fatalf("VisitSeq() error = %v", err)
	}
	for _, v := range []int32{10, 20} {
		elem, err := sc.NextElement()
		if err != nil {
			t.Fatalf("NextElement() error = %v", err)
		}
		if err := elem.VisitI32(v); err != nil {
			t.Fatalf("VisitI32() error = %v", err)
		}
	}

	if tc.Root.Kind != KindSeq || len(tc.Root.Seq) != 2 {
		t.Fatalf("Root = %+v, want a 2-element seq", tc.Root)
	}
	if tc.Root.Seq[0].Scalar != int32(10) || tc.Root.Seq[1].Scalar != int32(20) {
		t.Errorf("Root.Seq = %v, want [10 20]", tc.Root.Seq)
	}
}
