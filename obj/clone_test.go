package obj

import "testing"

func TestCopyEqualNotIdentical(t *testing.T) {
	a := ints(1, 2)
	b := a.Copy()
	wantEqual(t, b, a)
	if a == b {
		t.Error("Copy returned the same handle")
	}
	if a.Value() == b.Value() {
		t.Error("Copy shares the backing value")
	}
}

func TestCopyDirectChildIsSnapshot(t *testing.T) {
	inner := ints(1, 2)
	a := FromSlice([]*Handle{inner, FromInt(3)})
	b := a.Copy()
	wantEqual(t, b, a)

	// mutating a direct child of the original is invisible to the copy
	got, err := a.GetItem(0)
	if err != nil {
		t.Fatalf("GetItem() error: %v", err)
	}
	if err := got.Append(FromInt(3)); err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	bInner, err := b.GetItem(0)
	if err != nil {
		t.Fatalf("GetItem() error: %v", err)
	}
	if ok, _ := bInner.Contains(FromInt(3)); ok {
		t.Error("mutation of direct child leaked into the copy")
	}
	wantEqual(t, bInner, ints(1, 2))
}

func TestCopyIndirectChildIsAliased(t *testing.T) {
	g := NewGraph()
	shared := g.Indirect(ints(1, 2))
	a := FromSlice([]*Handle{shared, FromInt(3)})
	b := a.Copy()
	wantEqual(t, b, a)

	// mutating through the shared indirect child shows up on both sides
	aInner, err := a.GetItem(0)
	if err != nil {
		t.Fatalf("GetItem() error: %v", err)
	}
	if !aInner.IsIndirect() {
		t.Fatal("child lost its indirection")
	}
	if err := aInner.Append(FromInt(9)); err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	bInner, err := b.GetItem(0)
	if err != nil {
		t.Fatalf("GetItem() error: %v", err)
	}
	if !bInner.IsIndirect() {
		t.Fatal("copy's child lost its indirection")
	}
	wantEqual(t, bInner, ints(1, 2, 9))
}

func TestDictionaryCopy(t *testing.T) {
	d := FromKeyVals([]KeyVal{{Key: "/Foo", Val: ints(1, 2)}})
	d2 := d.Copy()
	wantEqual(t, d2, d)

	foo, err := d.Attr("Foo")
	if err != nil {
		t.Fatalf("Attr() error: %v", err)
	}
	if err := foo.Append(FromInt(3)); err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	foo2, err := d2.Attr("Foo")
	if err != nil {
		t.Fatalf("Attr() error: %v", err)
	}
	if ok, _ := foo2.Contains(FromInt(3)); ok {
		t.Error("mutation of direct value leaked into the dictionary copy")
	}
}

func TestIndirectEquality(t *testing.T) {
	g := NewGraph()
	x := g.Indirect(FromInt(7))
	y := g.Indirect(FromInt(7))
	if x.Ref() == y.Ref() {
		t.Fatal("distinct registrations share a ref")
	}
	// two indirect handles pointing at equal values are equal even when
	// they are not the same reference
	if !x.Equal(y) {
		t.Error("indirect handles with equal targets compare unequal")
	}
	if !x.Equal(FromInt(7)) {
		t.Error("indirect handle compares unequal to equal direct value")
	}
}

func TestDanglingRefResolvesNull(t *testing.T) {
	g := NewGraph()
	h := g.Indirect(FromInt(1))
	dangling := &Handle{ref: Ref{Num: 999}, graph: g}
	if dangling.Kind() != NullKind {
		t.Errorf("dangling ref kind = %s, want null", dangling.Kind())
	}
	if h.Kind() != IntegerKind {
		t.Errorf("kind = %s, want integer", h.Kind())
	}
}
