package obj

import "fmt"

// Ref identifies one entry of a Graph's object table.
type Ref struct {
	Num int
	Gen int
}

func (r Ref) IsZero() bool {
	return r.Num == 0
}

func (r Ref) String() string {
	return fmt.Sprintf("%d %d R", r.Num, r.Gen)
}

// Handle is a reference to one Value of an object graph. A handle is
// either direct, exclusively owning an inline value, or indirect, a
// lightweight reference to a value registered in a Graph which may be
// aliased by any number of parents.
//
// Mutating operations go through the resolved value, so mutation through
// one indirect handle is observed by every alias of the same target.
type Handle struct {
	value *Value
	ref   Ref
	graph *Graph
}

// Direct returns a handle exclusively owning v.
func Direct(v *Value) *Handle {
	if v == nil {
		v = &Value{Kind: NullKind}
	}
	return &Handle{value: v}
}

func (h *Handle) IsIndirect() bool {
	return !h.ref.IsZero()
}

// Ref returns the object-table position for indirect handles and the zero
// Ref for direct ones.
func (h *Handle) Ref() Ref {
	return h.ref
}

// Value resolves the handle to its target value. A dangling indirect
// reference resolves to null, never to nil.
func (h *Handle) Value() *Value {
	if h.IsIndirect() {
		if v := h.graph.Resolve(h.ref); v != nil {
			return v
		}
		return &Value{Kind: NullKind}
	}
	return h.value
}

// Kind reports the resolved target's kind.
func (h *Handle) Kind() Kind {
	return h.Value().Kind
}

// Equal reports structural equality. Indirect handles are compared by
// resolving to their targets, so two indirect handles pointing at equal
// values are equal even when they are not the same reference.
func (h *Handle) Equal(o *Handle) bool {
	return Compare(h, o) == 0
}

// Graph is the shared object table one document's indirect references
// resolve against. Only registration and resolution live here; everything
// else about a document is outside this package.
type Graph struct {
	objects map[Ref]*Value
	nextNum int
}

func NewGraph() *Graph {
	return &Graph{
		objects: map[Ref]*Value{},
		nextNum: 1,
	}
}

// Indirect registers the handle's value in the table and returns an
// indirect handle to it. An already indirect handle yields a fresh alias
// of the same target.
func (g *Graph) Indirect(h *Handle) *Handle {
	if h.IsIndirect() {
		return &Handle{ref: h.ref, graph: h.graph}
	}
	ref := Ref{Num: g.nextNum}
	g.nextNum++
	g.objects[ref] = h.Value()
	return &Handle{ref: ref, graph: g}
}

// Resolve returns the value registered under r, or nil.
func (g *Graph) Resolve(r Ref) *Value {
	return g.objects[r]
}
