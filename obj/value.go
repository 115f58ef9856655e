package obj

import "strings"

// Value is one node of an object graph. It works as a tagged union: Kind
// selects the variant and the payload lives in the matching field.
//
// Array values keep their children in Values; insertion order is
// semantically significant and preserved by every operation. Dictionary
// and stream values keep parallel Keys/Values slices, keys unique, in
// insertion order.
type Value struct {
	Kind Kind

	Bool bool
	Int  int64
	Real float64
	Str  string
	Name string

	Keys   []string
	Values []*Handle

	Stream []byte
}

func Null() *Handle {
	return Direct(&Value{Kind: NullKind})
}

func FromBool(v bool) *Handle {
	return Direct(&Value{Kind: BooleanKind, Bool: v})
}

func FromInt(v int64) *Handle {
	return Direct(&Value{Kind: IntegerKind, Int: v})
}

func FromReal(v float64) *Handle {
	return Direct(&Value{Kind: RealKind, Real: v})
}

func FromString(v string) *Handle {
	return Direct(&Value{Kind: StringKind, Str: v})
}

// NewName returns a name node. The leading slash may be omitted by the
// caller; it is always present in the stored form.
func NewName(name string) *Handle {
	if !strings.HasPrefix(name, "/") {
		name = "/" + name
	}
	return Direct(&Value{Kind: NameKind, Name: name})
}

// FromSlice returns an array node adopting the given handles as its
// children. Ownership of direct handles passes to the array; callers must
// not place the same direct handle in two containers.
func FromSlice(hs []*Handle) *Handle {
	vals := make([]*Handle, len(hs))
	for i, h := range hs {
		if h == nil {
			h = Null()
		}
		vals[i] = h
	}
	return Direct(&Value{Kind: ArrayKind, Values: vals})
}

// KeyVal is one dictionary entry used with FromKeyVals.
type KeyVal struct {
	Key string
	Val *Handle
}

// FromKeyVals returns a dictionary node with the entries in the given
// order. Keys are name strings; a missing leading slash is added.
func FromKeyVals(kvs []KeyVal) *Handle {
	res := &Value{Kind: DictionaryKind}
	res.Keys = make([]string, len(kvs))
	res.Values = make([]*Handle, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		key := kv.Key
		if !strings.HasPrefix(key, "/") {
			key = "/" + key
		}
		val := kv.Val
		if val == nil {
			val = Null()
		}
		res.Keys[i] = key
		res.Values[i] = val
	}
	return Direct(res)
}

// NewStream returns a stream node with the given dictionary entries and
// raw data. The data is not inspected.
func NewStream(dict []KeyVal, data []byte) *Handle {
	h := FromKeyVals(dict)
	h.value.Kind = StreamKind
	h.value.Stream = data
	return h
}

// Get returns the value under key, or nil when the key is absent or the
// node holds no keys.
func Get(v *Value, key string) *Handle {
	n := len(v.Keys)
	for i := range n {
		if v.Keys[i] == key {
			return v.Values[i]
		}
	}
	return nil
}

// Visit walks the subgraph below h in depth-first order, calling f before
// (isPost false) and after (isPost true) each node's children. Returning
// false from the pre call skips the children. Indirect children are
// visited through their resolved targets; cycles through indirect
// references are the caller's concern.
func (h *Handle) Visit(f func(h *Handle, isPost bool) (bool, error)) error {
	dive, err := f(h, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range h.Value().Values {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(h, true); err != nil {
		return err
	}
	return nil
}
