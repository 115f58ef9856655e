package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/qooxzuub/pdfgraph/obj"
)

type EncState struct {
	expandRefs bool

	Color func(obj.Kind, ColorAttr, string) string
}

// Encode writes the handle in PDF token syntax. Indirect handles render
// as references ("3 0 R") unless ExpandRefs is set, in which case the
// resolved value is written in place.
func Encode(h *obj.Handle, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(h, w, es)
}

func encode(h *obj.Handle, w io.Writer, es *EncState) error {
	if h.IsIndirect() && !es.expandRefs {
		return writeColored(w, es, obj.NullKind, RefColor, h.Ref().String())
	}
	v := h.Value()
	switch v.Kind {
	case obj.NullKind:
		return writeColored(w, es, v.Kind, ValueColor, "null")
	case obj.BooleanKind:
		return writeColored(w, es, v.Kind, ValueColor, strconv.FormatBool(v.Bool))
	case obj.IntegerKind:
		return writeColored(w, es, v.Kind, ValueColor, strconv.FormatInt(v.Int, 10))
	case obj.RealKind:
		return writeColored(w, es, v.Kind, ValueColor, formatReal(v.Real))
	case obj.StringKind:
		return writeColored(w, es, v.Kind, ValueColor, quoteString(v.Str))
	case obj.NameKind:
		return writeColored(w, es, v.Kind, ValueColor, quoteName(v.Name))
	case obj.ArrayKind:
		return encodeArray(h, w, es)
	case obj.DictionaryKind:
		return encodeDict(h, w, es)
	case obj.StreamKind:
		if err := encodeDict(h, w, es); err != nil {
			return err
		}
		return writeColored(w, es, v.Kind, SepColor, " stream")
	}
	return fmt.Errorf("cannot encode kind %s", v.Kind)
}

func encodeArray(h *obj.Handle, w io.Writer, es *EncState) error {
	v := h.Value()
	if err := writeColored(w, es, v.Kind, SepColor, "["); err != nil {
		return err
	}
	for i, c := range v.Values {
		if i > 0 {
			if err := writeString(w, " "); err != nil {
				return err
			}
		}
		if err := encode(c, w, es); err != nil {
			return err
		}
	}
	return writeColored(w, es, v.Kind, SepColor, "]")
}

func encodeDict(h *obj.Handle, w io.Writer, es *EncState) error {
	v := h.Value()
	if err := writeColored(w, es, v.Kind, SepColor, "<<"); err != nil {
		return err
	}
	for i, k := range v.Keys {
		if err := writeString(w, " "); err != nil {
			return err
		}
		if err := writeColored(w, es, v.Kind, FieldColor, quoteName(k)); err != nil {
			return err
		}
		if err := writeString(w, " "); err != nil {
			return err
		}
		if err := encode(v.Values[i], w, es); err != nil {
			return err
		}
	}
	return writeColored(w, es, v.Kind, SepColor, " >>")
}

// formatReal writes a real with an explicit decimal point, never in
// exponent notation.
func formatReal(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// quoteString renders a literal string token, escaping delimiters and
// non-printable bytes.
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('(')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '(', ')', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 || c > 0x7e {
				fmt.Fprintf(&b, `\%03o`, c)
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte(')')
	return b.String()
}

// quoteName renders a name token, hex-escaping delimiter and whitespace
// bytes after the leading slash.
func quoteName(name string) string {
	body := strings.TrimPrefix(name, "/")
	var b strings.Builder
	b.WriteByte('/')
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c <= 0x20 || c > 0x7e || strings.IndexByte("()<>[]{}/%#", c) >= 0 {
			fmt.Fprintf(&b, "#%02X", c)
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func writeColored(w io.Writer, es *EncState, k obj.Kind, attr ColorAttr, s string) error {
	if es.Color != nil {
		s = es.Color(k, attr, s)
	}
	return writeString(w, s)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
