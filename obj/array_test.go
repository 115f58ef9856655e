package obj

import (
	"errors"
	"strings"
	"testing"
)

func ints(vs ...int64) *Handle {
	hs := make([]*Handle, len(vs))
	for i, v := range vs {
		hs[i] = FromInt(v)
	}
	return FromSlice(hs)
}

func wantEqual(t *testing.T, got, want *Handle) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("got %v elements, want %v", got.Elements(), want.Elements())
	}
}

func TestClear(t *testing.T) {
	a := ints(1, 2, 3)
	if err := a.Clear(); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if a.Len() != 0 {
		t.Errorf("Len() = %d after Clear", a.Len())
	}
	wantEqual(t, a, ints())
}

func TestCount(t *testing.T) {
	a := FromSlice([]*Handle{FromInt(1), FromInt(2), FromInt(2), FromInt(3), NewName("/Foo")})
	tests := []struct {
		name string
		want *Handle
		n    int
	}{
		{"two ints", FromInt(2), 2},
		{"one name", NewName("/Foo"), 1},
		{"absent", FromInt(42), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := a.Count(tt.want)
			if err != nil {
				t.Fatalf("Count() error: %v", err)
			}
			if n != tt.n {
				t.Errorf("Count() = %d, want %d", n, tt.n)
			}
		})
	}
}

func TestIndex(t *testing.T) {
	a := FromSlice([]*Handle{NewName("/A"), NewName("/B"), NewName("/C")})
	i, err := a.Index(NewName("/B"))
	if err != nil {
		t.Fatalf("Index() error: %v", err)
	}
	if i != 1 {
		t.Errorf("Index() = %d, want 1", i)
	}
	_, err = a.Index(NewName("/Z"))
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "item not in array") {
		t.Errorf("message %q does not mention item not in array", err)
	}
}

func TestInsert(t *testing.T) {
	a := ints(1, 3)
	if err := a.Insert(1, FromInt(2)); err != nil {
		t.Fatalf("Insert() error: %v", err)
	}
	wantEqual(t, a, ints(1, 2, 3))

	// far out of range clamps to the nearer end, never errors
	if err := a.Insert(100, FromInt(4)); err != nil {
		t.Fatalf("Insert(100) error: %v", err)
	}
	last, err := a.GetItem(-1)
	if err != nil {
		t.Fatalf("GetItem(-1) error: %v", err)
	}
	wantEqual(t, last, FromInt(4))

	if err := a.Insert(-100, FromInt(0)); err != nil {
		t.Fatalf("Insert(-100) error: %v", err)
	}
	first, err := a.GetItem(0)
	if err != nil {
		t.Fatalf("GetItem(0) error: %v", err)
	}
	wantEqual(t, first, FromInt(0))
	if a.Len() != 5 {
		t.Errorf("Len() = %d, want 5", a.Len())
	}
}

func TestPop(t *testing.T) {
	a := ints(10, 20, 30)

	got, err := a.Pop()
	if err != nil {
		t.Fatalf("Pop() error: %v", err)
	}
	wantEqual(t, got, FromInt(30))
	wantEqual(t, a, ints(10, 20))

	got, err = a.PopAt(0)
	if err != nil {
		t.Fatalf("PopAt(0) error: %v", err)
	}
	wantEqual(t, got, FromInt(10))

	_, err = a.PopAt(50)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
	// failed pop leaves the array unchanged
	wantEqual(t, a, ints(20))
}

func TestRemove(t *testing.T) {
	a := ints(1, 2, 2, 3)
	if err := a.Remove(FromInt(2)); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}
	wantEqual(t, a, ints(1, 2, 3))

	err := a.Remove(FromInt(42))
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
	wantEqual(t, a, ints(1, 2, 3))
}

func TestReverse(t *testing.T) {
	a := ints(1, 2, 3)
	if err := a.Reverse(); err != nil {
		t.Fatalf("Reverse() error: %v", err)
	}
	wantEqual(t, a, ints(3, 2, 1))
}

func TestReverseIsOwnInverse(t *testing.T) {
	tests := []struct {
		name string
		a    *Handle
	}{
		{"empty", ints()},
		{"single", ints(1)},
		{"pair", ints(1, 2)},
		{"longer", ints(1, 2, 3, 4, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := tt.a.Copy()
			if err := tt.a.Reverse(); err != nil {
				t.Fatalf("Reverse() error: %v", err)
			}
			if err := tt.a.Reverse(); err != nil {
				t.Fatalf("Reverse() error: %v", err)
			}
			wantEqual(t, tt.a, orig)
		})
	}
}

func TestAdditionOperators(t *testing.T) {
	// in-place concatenation keeps the container
	a := ints(1)
	if err := a.Extend(ints(2)); err != nil {
		t.Fatalf("Extend() error: %v", err)
	}
	wantEqual(t, a, ints(1, 2))

	// concatenation produces a distinct container
	b := ints(1)
	c, err := b.Concat(ints(2))
	if err != nil {
		t.Fatalf("Concat() error: %v", err)
	}
	wantEqual(t, c, ints(1, 2))
	if c == b {
		t.Error("Concat returned the same container")
	}
	wantEqual(t, b, ints(1))
	if c.Kind() != ArrayKind {
		t.Errorf("Concat result kind = %s", c.Kind())
	}
}

func TestAppend(t *testing.T) {
	a := ints(1)
	if err := a.Append(FromInt(2), FromInt(3)); err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	wantEqual(t, a, ints(1, 2, 3))
}

func TestSliceDelEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		a    *Handle
		s    Slice
		want *Handle
	}{
		{"contiguous", ints(0, 1, 2, 3, 4, 5, 6, 7, 8, 9), SliceOf(1, 4), ints(0, 4, 5, 6, 7, 8, 9)},
		{"every 2nd", ints(0, 1, 2, 3, 4, 5, 6, 7, 8, 9), SliceEvery(2), ints(1, 3, 5, 7, 9)},
		{"negative stride", ints(0, 1, 2, 3, 4, 5, 6, 7, 8, 9), SliceEvery(-2), ints(0, 2, 4, 6, 8)},
		{"positive stride capped", ints(0, 1, 2, 3, 4, 5, 6), SliceStep(1, 6, 2), ints(0, 2, 4, 6)},
		{"negative stride capped", ints(0, 1, 2, 3, 4, 5, 6), SliceStep(5, 0, -2), ints(0, 2, 4, 6)},
		{"full reversal empties", ints(0, 1, 2, 3, 4, 5, 6), SliceEvery(-1), ints()},
		{"end-capped", ints(0, 1, 2, 3), SliceFrom(2), ints(0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.a.DelSlice(tt.s); err != nil {
				t.Fatalf("DelSlice() error: %v", err)
			}
			wantEqual(t, tt.a, tt.want)
		})
	}
}

func TestSliceSetItem(t *testing.T) {
	// same-length replacement
	a := ints(0, 1, 2, 3)
	if err := a.SetSlice(SliceOf(1, 3), []*Handle{FromInt(8), FromInt(9)}); err != nil {
		t.Fatalf("SetSlice() error: %v", err)
	}
	wantEqual(t, a, ints(0, 8, 9, 3))

	// splice growing: one item replaced by three
	if err := a.SetSlice(SliceOf(1, 2), []*Handle{FromInt(10), FromInt(11), FromInt(12)}); err != nil {
		t.Fatalf("SetSlice() grow error: %v", err)
	}
	wantEqual(t, a, ints(0, 10, 11, 12, 9, 3))

	// splice shrinking: three items replaced by one
	if err := a.SetSlice(SliceOf(1, 4), []*Handle{FromInt(99)}); err != nil {
		t.Fatalf("SetSlice() shrink error: %v", err)
	}
	wantEqual(t, a, ints(0, 99, 9, 3))

	// extended slice replaces one-to-one
	b := ints(0, 1, 2, 3, 4)
	if err := b.SetSlice(SliceEvery(2), []*Handle{FromInt(10), FromInt(20), FromInt(30)}); err != nil {
		t.Fatalf("SetSlice() stride error: %v", err)
	}
	wantEqual(t, b, ints(10, 1, 20, 3, 30))

	// extended slice length mismatch fails atomically
	err := b.SetSlice(SliceEvery(2), []*Handle{FromInt(1), FromInt(2)})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
	if !strings.Contains(err.Error(), "attempt to assign sequence of size 2") {
		t.Errorf("message %q does not report attempted size", err)
	}
	wantEqual(t, b, ints(10, 1, 20, 3, 30))

	// assigning from another array re-encodes, no aliasing of the source
	c := ints(1, 2, 3)
	src := ints(7, 8, 9)
	if err := c.SetSlice(SliceAll(), src.Elements()); err != nil {
		t.Fatalf("SetSlice() cross-instance error: %v", err)
	}
	wantEqual(t, c, ints(7, 8, 9))
	if err := c.SetItem(0, FromInt(70)); err != nil {
		t.Fatalf("SetItem() error: %v", err)
	}
	wantEqual(t, src, ints(7, 8, 9))
}

func TestGetItemRobustness(t *testing.T) {
	a := ints(10, 11, 12, 13, 14)

	got, err := a.GetSlice(SliceOf(1, 4))
	if err != nil {
		t.Fatalf("GetSlice() error: %v", err)
	}
	wantEqual(t, got, ints(11, 12, 13))

	got, err = a.GetSlice(SliceEvery(2))
	if err != nil {
		t.Fatalf("GetSlice() stride error: %v", err)
	}
	wantEqual(t, got, ints(10, 12, 14))

	// negative stride yields the reversed sub-sequence
	got, err = a.GetSlice(SliceEvery(-1))
	if err != nil {
		t.Fatalf("GetSlice() reverse error: %v", err)
	}
	wantEqual(t, got, ints(14, 13, 12, 11, 10))
}

func TestIntegerIndexing(t *testing.T) {
	a := ints(10, 20, 30)

	got, err := a.GetItem(-1)
	if err != nil {
		t.Fatalf("GetItem(-1) error: %v", err)
	}
	wantEqual(t, got, FromInt(30))

	if err := a.SetItem(-2, FromInt(21)); err != nil {
		t.Fatalf("SetItem(-2) error: %v", err)
	}
	wantEqual(t, a, ints(10, 21, 30))

	if err := a.DelItem(0); err != nil {
		t.Fatalf("DelItem(0) error: %v", err)
	}
	wantEqual(t, a, ints(21, 30))

	_, err = a.GetItem(5)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestContains(t *testing.T) {
	a := ints(1, 2, 3)
	ok, err := a.Contains(FromInt(2))
	if err != nil {
		t.Fatalf("Contains() error: %v", err)
	}
	if !ok {
		t.Error("Contains(2) = false")
	}
	ok, err = a.Contains(FromInt(9))
	if err != nil {
		t.Fatalf("Contains() error: %v", err)
	}
	if ok {
		t.Error("Contains(9) = true")
	}
}
