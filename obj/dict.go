package obj

import (
	"fmt"
	"slices"
	"strings"
)

// keyed returns the value's key/value storage when the kind carries keys
// (dictionary or stream).
func (h *Handle) keyed() (*Value, bool) {
	v := h.Value()
	return v, v.Kind == DictionaryKind || v.Kind == StreamKind
}

// GetKey returns the value under the given name key. A kind that holds no
// keys fails the same way a missing key does.
func (h *Handle) GetKey(key string) (*Handle, error) {
	v, ok := h.keyed()
	if !ok {
		return nil, errNoKey(key)
	}
	if c := Get(v, key); c != nil {
		return c, nil
	}
	return nil, errNoKey(key)
}

// SetKey associates the value with the name key, replacing an existing
// entry or appending a new one. The incoming handle is re-encoded like an
// array element: indirect aliased, direct cloned.
func (h *Handle) SetKey(key string, val *Handle) error {
	v, ok := h.keyed()
	if !ok {
		return fmt.Errorf("%w: cannot set key on object of type %s", ErrTypeMismatch, v.Kind)
	}
	for i, k := range v.Keys {
		if k == key {
			v.Values[i] = encodeChild(val)
			return nil
		}
	}
	v.Keys = append(v.Keys, key)
	v.Values = append(v.Values, encodeChild(val))
	return nil
}

// DeleteKey removes the entry under the name key. Attribute-style and
// key-string-style deletion both land here.
func (h *Handle) DeleteKey(key string) error {
	v, ok := h.keyed()
	if !ok {
		return errNoKey(key)
	}
	for i, k := range v.Keys {
		if k == key {
			v.Keys = slices.Delete(v.Keys, i, i+1)
			v.Values = slices.Delete(v.Values, i, i+1)
			return nil
		}
	}
	return errNoKey(key)
}

// HasKey reports key membership.
func (h *Handle) HasKey(key string) bool {
	v, ok := h.keyed()
	if !ok {
		return false
	}
	return Get(v, key) != nil
}

// Keys returns the entry keys in insertion order.
func (h *Handle) Keys() []string {
	v, ok := h.keyed()
	if !ok {
		return nil
	}
	return slices.Clone(v.Keys)
}

// Attr resolves attribute-style access: Foo maps to the key /Foo.
func (h *Handle) Attr(name string) (*Handle, error) {
	return h.GetKey(attrKey(name))
}

// SetAttr is the attribute-style form of SetKey.
func (h *Handle) SetAttr(name string, val *Handle) error {
	return h.SetKey(attrKey(name), val)
}

// DelAttr is the attribute-style form of DeleteKey: del obj.Key and
// del obj["/Key"] are equivalent.
func (h *Handle) DelAttr(name string) error {
	return h.DeleteKey(attrKey(name))
}

func attrKey(name string) string {
	if strings.HasPrefix(name, "/") {
		return name
	}
	return "/" + name
}

// Sort is intentionally unsupported on arrays. It does not no-op: the
// call falls through to attribute lookup, so it fails exactly the way a
// missing key does, with "cannot get key '/sort'".
func (h *Handle) Sort() error {
	_, err := h.Attr("sort")
	return err
}
