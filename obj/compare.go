package obj

import (
	"bytes"
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two handles by their resolved
// values. The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Integer and real nodes share a rank and compare numerically, so an
// integer 1 equals a real 1.0.
func Compare(a, b *Handle) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	return compareValues(a.Value(), b.Value())
}

func compareValues(a, b *Value) int {
	rankA := rank(a.Kind)
	rankB := rank(b.Kind)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Kind {
	case IntegerKind, RealKind:
		return compareNumbers(a, b)
	case StringKind:
		return strings.Compare(a.Str, b.Str)
	case NameKind:
		return strings.Compare(a.Name, b.Name)
	case BooleanKind:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayKind:
		return compareArrays(a, b)
	case DictionaryKind:
		return compareDicts(a, b)
	case StreamKind:
		if c := compareDicts(a, b); c != 0 {
			return c
		}
		return bytes.Compare(a.Stream, b.Stream)
	case NullKind:
		return 0
	}
	return 0
}

// rank returns the sorting rank of a kind.
// Order: Null < Boolean < Integer/Real < String < Name < Array < Dictionary < Stream
func rank(k Kind) int {
	switch k {
	case NullKind:
		return 0
	case BooleanKind:
		return 1
	case IntegerKind, RealKind:
		return 2
	case StringKind:
		return 3
	case NameKind:
		return 4
	case ArrayKind:
		return 5
	case DictionaryKind:
		return 6
	case StreamKind:
		return 7
	}
	return 100
}

func compareNumbers(a, b *Value) int {
	if a.Kind == IntegerKind && b.Kind == IntegerKind {
		return cmp.Compare(a.Int, b.Int)
	}
	return cmp.Compare(a.asReal(), b.asReal())
}

func (v *Value) asReal() float64 {
	if v.Kind == IntegerKind {
		return float64(v.Int)
	}
	return v.Real
}

func compareArrays(a, b *Value) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

// compareDicts orders entries by key before comparing: a dictionary's
// insertion order is preserved on iteration but carries no meaning for
// equality.
func compareDicts(a, b *Value) int {
	ixA := sortedKeyIndex(a)
	ixB := sortedKeyIndex(b)
	minLen := min(len(ixA), len(ixB))

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.Keys[ixA[i]], b.Keys[ixB[i]]); c != 0 {
			return c
		}
		if c := Compare(a.Values[ixA[i]], b.Values[ixB[i]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ixA), len(ixB))
}

func sortedKeyIndex(v *Value) []int {
	ix := make([]int, len(v.Keys))
	for i := range ix {
		ix[i] = i
	}
	slices.SortFunc(ix, func(i, j int) int {
		return strings.Compare(v.Keys[i], v.Keys[j])
	})
	return ix
}
