package obj

import (
	"slices"

	"github.com/qooxzuub/pdfgraph/debug"
)

// Clone returns a snapshot copy of the handle. For a direct handle the
// inline value is cloned recursively; for an indirect handle the clone is
// another alias of the same target, and the referenced value is not
// copied. The same rule applies at every level of the subtree, so a deep
// structure of mixed direct and indirect children keeps exactly its
// sharing.
func (h *Handle) Clone() *Handle {
	if h.IsIndirect() {
		return &Handle{ref: h.ref, graph: h.graph}
	}
	res := &Value{}
	h.value.CloneTo(res)
	return Direct(res)
}

// CloneTo copies v into dst. Children are cloned with the direct/indirect
// rule of Handle.Clone.
func (v *Value) CloneTo(dst *Value) *Value {
	dst.Kind = v.Kind
	dst.Bool = v.Bool
	dst.Int = v.Int
	dst.Real = v.Real
	dst.Str = v.Str
	dst.Name = v.Name
	dst.Keys = slices.Clone(v.Keys)
	dst.Stream = slices.Clone(v.Stream)
	dst.Values = make([]*Handle, len(v.Values))
	for i, c := range v.Values {
		dst.Values[i] = c.Clone()
	}
	return dst
}

// Copy returns a snapshot of an array or dictionary node: structurally
// equal to the source at the instant of the call, with every direct child
// subtree deep-cloned and every indirect child copied by reference. The
// result is always a direct handle, distinct from the source container.
func (h *Handle) Copy() *Handle {
	if debug.Copy() {
		debug.Logf("copy snapshot of %s\n", h.Kind())
	}
	res := &Value{}
	h.Value().CloneTo(res)
	return Direct(res)
}
