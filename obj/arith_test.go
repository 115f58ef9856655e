package obj

import (
	"errors"
	"strings"
	"testing"
)

func TestAddOverloadCoexistence(t *testing.T) {
	// array addition concatenates
	a := ints(1)
	got, err := Add(a, ints(2))
	if err != nil {
		t.Fatalf("Add(array, array) error: %v", err)
	}
	wantEqual(t, got, ints(1, 2))
	wantEqual(t, a, ints(1))

	// integer addition adds
	got, err = Add(FromInt(10), FromInt(5))
	if err != nil {
		t.Fatalf("Add(int, int) error: %v", err)
	}
	wantEqual(t, got, FromInt(15))

	// mixed kinds fall through to the combinator's diagnostic
	_, err = Add(NewName("/Foo"), ints(1))
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
	if !strings.Contains(err.Error(), "unsupported operand type") {
		t.Errorf("unexpected message %q", err)
	}
}

func TestAddNotImplementedFallback(t *testing.T) {
	_, err := Add(FromInt(5), ints(1, 2, 3))
	if err == nil {
		t.Fatal("expected error adding integer and array")
	}
	if !strings.Contains(err.Error(), "unsupported operand type(s) for +: 'integer' and 'array'") {
		t.Errorf("unexpected message %q", err)
	}

	// the per-operand attempts answer with the sentinel, not an error
	if _, ok := FromInt(5).add(ints(1)); ok {
		t.Error("integer add claimed an array operand")
	}
	if _, ok := ints(1).add(FromInt(5)); ok {
		t.Error("array add claimed an integer operand")
	}
}

func TestAddNumericPromotion(t *testing.T) {
	got, err := Add(FromInt(1), FromReal(2.5))
	if err != nil {
		t.Fatalf("Add(int, real) error: %v", err)
	}
	if got.Kind() != RealKind {
		t.Errorf("kind = %s, want real", got.Kind())
	}
	wantEqual(t, got, FromReal(3.5))

	got, err = Add(FromReal(0.5), FromInt(2))
	if err != nil {
		t.Fatalf("Add(real, int) error: %v", err)
	}
	wantEqual(t, got, FromReal(2.5))
}
