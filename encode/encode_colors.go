package encode

import (
	"strings"

	"github.com/fatih/color"

	"github.com/qooxzuub/pdfgraph/obj"
)

type Colorable struct {
	Kind obj.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	ValueColor ColorAttr = iota
	FieldColor
	SepColor
	RefColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range obj.Kinds() {
		able := Colorable{
			Kind: k,
			Attr: SepColor,
		}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = RefColor
		colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Kind = obj.IntegerKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Kind = obj.RealKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Kind = obj.NullKind
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Kind = obj.BooleanKind
	colors.Map[able] = color.CyanString

	able.Kind = obj.StringKind
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Kind = obj.NameKind
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()

	able.Kind = obj.DictionaryKind
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Kind = obj.StreamKind
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k obj.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k obj.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
