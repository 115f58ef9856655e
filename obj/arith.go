package obj

import "fmt"

// Add combines two handles with + semantics: numbers add, arrays
// concatenate into a new container. Dispatch is two-level: each operand
// gets a chance to handle the combination and answers with a
// not-applicable sentinel (ok == false) instead of an error when the
// kinds do not fit, so this combinator owns the final diagnostic for
// incompatible operand kinds.
func Add(a, b *Handle) (*Handle, error) {
	if res, ok := a.add(b); ok {
		return res, nil
	}
	if res, ok := b.radd(a); ok {
		return res, nil
	}
	return nil, fmt.Errorf("%w: unsupported operand type(s) for +: '%s' and '%s'",
		ErrTypeMismatch, a.Kind(), b.Kind())
}

// add is the left-operand attempt. The boolean is the sentinel: false
// means "not handled here", never a failure.
func (h *Handle) add(o *Handle) (*Handle, bool) {
	switch h.Kind() {
	case IntegerKind, RealKind:
		return addNumbers(h.Value(), o.Value())
	case ArrayKind:
		if o.Kind() != ArrayKind {
			return nil, false
		}
		res, err := h.Concat(o)
		if err != nil {
			return nil, false
		}
		return res, true
	default:
		return nil, false
	}
}

// radd is the right-operand fallback, tried only after the left operand
// declined.
func (h *Handle) radd(o *Handle) (*Handle, bool) {
	switch h.Kind() {
	case IntegerKind, RealKind:
		return addNumbers(o.Value(), h.Value())
	default:
		return nil, false
	}
}

func addNumbers(a, b *Value) (*Handle, bool) {
	if !a.Kind.IsNumber() || !b.Kind.IsNumber() {
		return nil, false
	}
	if a.Kind == IntegerKind && b.Kind == IntegerKind {
		return FromInt(a.Int + b.Int), true
	}
	return FromReal(a.asReal() + b.asReal()), true
}
