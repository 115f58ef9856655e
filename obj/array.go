package obj

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/qooxzuub/pdfgraph/debug"
)

// ensureArray guards the sequence-operation surface. Every kind exposes
// the operations; only arrays implement them, and every other kind fails
// here with its kind-specific diagnostic.
func (h *Handle) ensureArray(action string) (*Value, error) {
	v := h.Value()
	if v.Kind == ArrayKind {
		return v, nil
	}
	if debug.Dispatch() {
		debug.Logf("dispatch: %s refused on %s\n", action, v.Kind)
	}
	return nil, errWrongKind(v.Kind, action)
}

// encodeChild converts an incoming handle into the representation a
// container may own: indirect handles are aliased, direct handles are
// cloned so that no two containers share a direct child's storage.
func encodeChild(h *Handle) *Handle {
	if h == nil {
		return Null()
	}
	return h.Clone()
}

// Len returns the child count for arrays, the entry count for
// dictionaries and streams, and the byte length for strings. Other kinds
// have length 0.
func (h *Handle) Len() int {
	v := h.Value()
	switch v.Kind {
	case ArrayKind:
		return len(v.Values)
	case DictionaryKind, StreamKind:
		return len(v.Keys)
	case StringKind:
		return len(v.Str)
	default:
		return 0
	}
}

// Elements returns the array's children in order. The handles are the
// live children, not copies; the returned slice itself is fresh, so
// appending to it does not disturb the array.
func (h *Handle) Elements() []*Handle {
	v := h.Value()
	if v.Kind != ArrayKind {
		return nil
	}
	res := make([]*Handle, len(v.Values))
	copy(res, v.Values)
	return res
}

// Clear removes all children.
func (h *Handle) Clear() error {
	v, err := h.ensureArray("clear")
	if err != nil {
		return err
	}
	v.Values = nil
	return nil
}

// Count returns the number of children structurally equal to want.
func (h *Handle) Count(want *Handle) (int, error) {
	v, err := h.ensureArray("count")
	if err != nil {
		return 0, err
	}
	n := 0
	for _, c := range v.Values {
		if c.Equal(want) {
			n++
		}
	}
	return n, nil
}

// Index returns the position of the first child structurally equal to
// want.
func (h *Handle) Index(want *Handle) (int, error) {
	v, err := h.ensureArray("index")
	if err != nil {
		return 0, err
	}
	for i, c := range v.Values {
		if c.Equal(want) {
			return i, nil
		}
	}
	return 0, ErrItemNotFound
}

// Contains reports whether any child is structurally equal to want. For
// dictionaries, want must be a name and the report is key membership.
func (h *Handle) Contains(want *Handle) (bool, error) {
	v := h.Value()
	if v.Kind == DictionaryKind || v.Kind == StreamKind {
		if want.Kind() != NameKind {
			return false, nil
		}
		return Get(v, want.Value().Name) != nil, nil
	}
	n, err := h.Count(want)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Insert places val at index i. Negative i counts from the end; any i is
// then clamped into [0, n], so Insert never fails on an array.
func (h *Handle) Insert(i int, val *Handle) error {
	v, err := h.ensureArray("insert")
	if err != nil {
		return err
	}
	n := len(v.Values)
	if i < 0 {
		i += n
	}
	if i < 0 {
		i = 0
	}
	if i > n {
		i = n
	}
	vals := make([]*Handle, 0, n+1)
	vals = append(vals, v.Values[:i]...)
	vals = append(vals, encodeChild(val))
	vals = append(vals, v.Values[i:]...)
	v.Values = vals
	return nil
}

// Append adds the values at the end.
func (h *Handle) Append(vals ...*Handle) error {
	v, err := h.ensureArray("append")
	if err != nil {
		return err
	}
	for _, val := range vals {
		v.Values = append(v.Values, encodeChild(val))
	}
	return nil
}

// Extend appends every element of the other array, mutating h in place.
// This is the in-place concatenation: the container keeps its identity.
func (h *Handle) Extend(other *Handle) error {
	v, err := h.ensureArray("extend")
	if err != nil {
		return err
	}
	ov := other.Value()
	if ov.Kind != ArrayKind {
		return errWrongKind(ov.Kind, "extend")
	}
	for _, c := range ov.Values {
		v.Values = append(v.Values, encodeChild(c))
	}
	return nil
}

// Concat returns a new array holding h's elements followed by other's.
// Neither operand is modified and the result is a distinct container.
func (h *Handle) Concat(other *Handle) (*Handle, error) {
	v, err := h.ensureArray("concatenate")
	if err != nil {
		return nil, err
	}
	ov := other.Value()
	if ov.Kind != ArrayKind {
		return nil, errWrongKind(ov.Kind, "concatenate")
	}
	vals := make([]*Handle, 0, len(v.Values)+len(ov.Values))
	for _, c := range v.Values {
		vals = append(vals, encodeChild(c))
	}
	for _, c := range ov.Values {
		vals = append(vals, encodeChild(c))
	}
	return FromSlice(vals), nil
}

// Pop removes and returns the last element.
func (h *Handle) Pop() (*Handle, error) {
	return h.PopAt(-1)
}

// PopAt removes and returns the element at index i. Negative i counts
// from the end; an index outside [0, n) after normalization fails and
// leaves the array unchanged.
func (h *Handle) PopAt(i int) (*Handle, error) {
	v, err := h.ensureArray("pop")
	if err != nil {
		return nil, err
	}
	n := len(v.Values)
	p := i
	if p < 0 {
		p += n
	}
	if p < 0 || p >= n {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	res := v.Values[p]
	v.Values = append(v.Values[:p], v.Values[p+1:]...)
	return res, nil
}

// Remove deletes the first child structurally equal to want.
func (h *Handle) Remove(want *Handle) error {
	v, err := h.ensureArray("remove")
	if err != nil {
		return err
	}
	for i, c := range v.Values {
		if c.Equal(want) {
			v.Values = append(v.Values[:i], v.Values[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// Reverse reverses the children in place. Lengths 0 and 1 are no-ops.
func (h *Handle) Reverse() error {
	v, err := h.ensureArray("reverse")
	if err != nil {
		return err
	}
	for i, j := 0, len(v.Values)-1; i < j; i, j = i+1, j-1 {
		v.Values[i], v.Values[j] = v.Values[j], v.Values[i]
	}
	return nil
}

// GetItem returns the child at index i, negative i counting from the end.
// The returned handle is the live child: mutating a composite child
// through it mutates the array's element.
func (h *Handle) GetItem(i int) (*Handle, error) {
	v, err := h.ensureArray("index")
	if err != nil {
		return nil, err
	}
	p, err := normalizeIndex(i, len(v.Values))
	if err != nil {
		return nil, err
	}
	return v.Values[p], nil
}

// SetItem replaces the child at index i.
func (h *Handle) SetItem(i int, val *Handle) error {
	v, err := h.ensureArray("index")
	if err != nil {
		return err
	}
	p, err := normalizeIndex(i, len(v.Values))
	if err != nil {
		return err
	}
	v.Values[p] = encodeChild(val)
	return nil
}

// DelItem removes the child at index i.
func (h *Handle) DelItem(i int) error {
	_, err := h.PopAt(i)
	return err
}

func normalizeIndex(i, n int) (int, error) {
	p := i
	if p < 0 {
		p += n
	}
	if p < 0 || p >= n {
		return 0, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return p, nil
}

// GetSlice returns a new array holding the children at the slice's
// resolved positions, in traversal order; a negative stride therefore
// yields a reversed sub-sequence.
func (h *Handle) GetSlice(s Slice) (*Handle, error) {
	v, err := h.ensureArray("slice")
	if err != nil {
		return nil, err
	}
	pos, err := s.Positions(len(v.Values))
	if err != nil {
		return nil, err
	}
	vals := make([]*Handle, 0, len(pos))
	for _, p := range pos {
		vals = append(vals, encodeChild(v.Values[p]))
	}
	return FromSlice(vals), nil
}

// SetSlice assigns vals to the slice. For step 1 this is a splice: the
// resolved range is erased and all of vals inserted in its place, growing
// or shrinking the array. For any other step the assignment is positional
// one-to-one and the lengths must match exactly; on mismatch the array is
// left unchanged. Values from a foreign container are re-encoded on the
// way in, so cross-instance assignment never aliases the source
// container.
func (h *Handle) SetSlice(s Slice, vals []*Handle) error {
	v, err := h.ensureArray("slice")
	if err != nil {
		return err
	}
	n := len(v.Values)
	start, _, step, count, err := s.resolve(n)
	if err != nil {
		return err
	}

	if step == 1 {
		next := make([]*Handle, 0, n-count+len(vals))
		next = append(next, v.Values[:start]...)
		for _, val := range vals {
			next = append(next, encodeChild(val))
		}
		next = append(next, v.Values[start+count:]...)
		v.Values = next
		return nil
	}

	pos, err := s.Positions(n)
	if err != nil {
		return err
	}
	if len(vals) != len(pos) {
		return fmt.Errorf("%w: attempt to assign sequence of size %d to extended slice of size %d",
			ErrLengthMismatch, len(vals), len(pos))
	}
	for i, p := range pos {
		v.Values[p] = encodeChild(vals[i])
	}
	return nil
}

// DelSlice removes the children at the slice's resolved positions and no
// others. Positions are deleted highest first so that earlier removals
// cannot shift the positions still pending, whatever the stride sign.
func (h *Handle) DelSlice(s Slice) error {
	v, err := h.ensureArray("slice")
	if err != nil {
		return err
	}
	pos, err := s.Positions(len(v.Values))
	if err != nil {
		return err
	}
	slices.SortFunc(pos, func(a, b int) int { return cmp.Compare(b, a) })
	for _, p := range pos {
		v.Values = append(v.Values[:p], v.Values[p+1:]...)
	}
	return nil
}
