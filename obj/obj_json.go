package obj

import (
	"encoding/json"
	"fmt"
)

// JSON form of the object model, for debug tooling and the pg CLI. The
// form is structural: an indirect child marshals with its reference
// position and its resolved value inlined, and unmarshaling always yields
// direct handles (there is no graph to attach to).

type objBase struct {
	Kind   Kind      `json:"kind"`
	Keys   []string  `json:"keys,omitempty"`
	Values []*Handle `json:"values,omitempty"`
	Stream []byte    `json:"stream,omitempty"`
}

func (h *Handle) MarshalJSON() ([]byte, error) {
	v := h.Value()
	base := &objBase{
		Kind:   v.Kind,
		Keys:   v.Keys,
		Values: v.Values,
		Stream: v.Stream,
	}
	return marshalScalar(*base, v, h.ref)
}

func marshalScalar(base objBase, v *Value, ref Ref) ([]byte, error) {
	refStr := ""
	if !ref.IsZero() {
		refStr = ref.String()
	}
	switch v.Kind {
	case BooleanKind:
		type C struct {
			objBase
			Ref  string `json:"ref,omitempty"`
			Bool bool   `json:"bool"`
		}
		return json.Marshal(C{objBase: base, Ref: refStr, Bool: v.Bool})
	case IntegerKind:
		type C struct {
			objBase
			Ref string `json:"ref,omitempty"`
			Int int64  `json:"int"`
		}
		return json.Marshal(C{objBase: base, Ref: refStr, Int: v.Int})
	case RealKind:
		type C struct {
			objBase
			Ref  string  `json:"ref,omitempty"`
			Real float64 `json:"real"`
		}
		return json.Marshal(C{objBase: base, Ref: refStr, Real: v.Real})
	case StringKind:
		type C struct {
			objBase
			Ref string `json:"ref,omitempty"`
			Str string `json:"string"`
		}
		return json.Marshal(C{objBase: base, Ref: refStr, Str: v.Str})
	case NameKind:
		type C struct {
			objBase
			Ref  string `json:"ref,omitempty"`
			Name string `json:"name"`
		}
		return json.Marshal(C{objBase: base, Ref: refStr, Name: v.Name})
	default:
		type C struct {
			objBase
			Ref string `json:"ref,omitempty"`
		}
		return json.Marshal(C{objBase: base, Ref: refStr})
	}
}

func (h *Handle) UnmarshalJSON(d []byte) error {
	type C struct {
		objBase
		Bool bool    `json:"bool"`
		Int  int64   `json:"int"`
		Real float64 `json:"real"`
		Str  string  `json:"string"`
		Name string  `json:"name"`
	}
	tmp := &C{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	v := &Value{
		Kind:   tmp.Kind,
		Bool:   tmp.Bool,
		Int:    tmp.Int,
		Real:   tmp.Real,
		Str:    tmp.Str,
		Name:   tmp.Name,
		Keys:   tmp.Keys,
		Values: tmp.Values,
		Stream: tmp.Stream,
	}
	switch v.Kind {
	case DictionaryKind, StreamKind:
		if len(v.Keys) != len(v.Values) {
			return fmt.Errorf("mismatched keys (%d) and values (%d)", len(v.Keys), len(v.Values))
		}
	case ArrayKind:
		if len(v.Keys) != 0 {
			return fmt.Errorf("array with %d keys", len(v.Keys))
		}
	default:
		if len(v.Keys) != 0 || len(v.Values) != 0 {
			return fmt.Errorf("scalar %s with children", v.Kind)
		}
	}
	for _, c := range v.Values {
		if c == nil {
			return fmt.Errorf("null child handle")
		}
	}
	h.value = v
	h.ref = Ref{}
	h.graph = nil
	return nil
}
