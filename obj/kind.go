package obj

import "fmt"

// Kind identifies the variant held by a Value. The set is closed: every
// node in an object graph is exactly one of these.
type Kind int

const (
	NullKind Kind = iota
	BooleanKind
	IntegerKind
	RealKind
	StringKind
	NameKind
	ArrayKind
	DictionaryKind
	StreamKind
)

// String returns the lowercase type name used in diagnostics, e.g.
// "cannot pop object of type name".
func (k Kind) String() string {
	s, ok := map[Kind]string{
		NullKind:       "null",
		BooleanKind:    "boolean",
		IntegerKind:    "integer",
		RealKind:       "real",
		StringKind:     "string",
		NameKind:       "name",
		ArrayKind:      "array",
		DictionaryKind: "dictionary",
		StreamKind:     "stream",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"null":       NullKind,
		"boolean":    BooleanKind,
		"integer":    IntegerKind,
		"real":       RealKind,
		"string":     StringKind,
		"name":       NameKind,
		"array":      ArrayKind,
		"dictionary": DictionaryKind,
		"stream":     StreamKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		BooleanKind,
		IntegerKind,
		RealKind,
		StringKind,
		NameKind,
		ArrayKind,
		DictionaryKind,
		StreamKind,
	}
}

// IsScalar reports whether values of this kind hold no children.
func (k Kind) IsScalar() bool {
	switch k {
	case ArrayKind, DictionaryKind, StreamKind:
		return false
	default:
		return true
	}
}

// IsNumber reports whether values of this kind take part in numeric
// addition.
func (k Kind) IsNumber() bool {
	return k == IntegerKind || k == RealKind
}
