package objdiff

import (
	"fmt"
	"strconv"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/qooxzuub/pdfgraph/debug"
	"github.com/qooxzuub/pdfgraph/encode"
	"github.com/qooxzuub/pdfgraph/obj"
)

type OpType int

const (
	OpKeep OpType = iota
	OpDelete
	OpInsert
	OpReplace
)

func (t OpType) String() string {
	switch t {
	case OpKeep:
		return "keep"
	case OpDelete:
		return "delete"
	case OpInsert:
		return "insert"
	case OpReplace:
		return "replace"
	}
	return "<unknown op>"
}

// Op is one step of an edit script. From is the element consumed from the
// source array (keep, delete, replace); To is the element produced in the
// result (insert, replace).
type Op struct {
	Type OpType
	From *obj.Handle
	To   *obj.Handle
}

// Diff computes an edit script turning the from array into the to array.
//
// Elements are summarized to short strings (kind plus scalar value, bare
// kind for composites), the summary sequences are diffed, and positions
// the text diff reports equal are re-checked structurally: composite
// elements with matching summaries but different content become replace
// ops.
func Diff(from, to *obj.Handle) ([]Op, error) {
	if from.Kind() != obj.ArrayKind || to.Kind() != obj.ArrayKind {
		return nil, fmt.Errorf("can only diff arrays, got %s and %s", from.Kind(), to.Kind())
	}
	fromVals := from.Elements()
	toVals := to.Elements()

	m := map[string]rune{}
	fromRunes := mapValues(m, fromVals)
	toRunes := mapValues(m, toVals)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	ops := []Op{}
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				ops = append(ops, Op{Type: OpDelete, From: fromVals[fi]})
				fi++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				ops = append(ops, Op{Type: OpInsert, To: toVals[ti]})
				ti++
			}
		case diffpatch.DiffEqual:
			for range diff.Text {
				if fromVals[fi].Equal(toVals[ti]) {
					ops = append(ops, Op{Type: OpKeep, From: fromVals[fi]})
				} else {
					ops = append(ops, Op{Type: OpReplace, From: fromVals[fi], To: toVals[ti]})
				}
				fi++
				ti++
			}
		}
	}
	if debug.Diff() {
		for _, op := range ops {
			debug.Logf("diff op %s from=%v to=%v\n", op.Type, opStr(op.From), opStr(op.To))
		}
	}
	return ops, nil
}

func opStr(h *obj.Handle) string {
	if h == nil {
		return "<nil>"
	}
	return encode.MustString(h)
}

func mapValues(m map[string]rune, vals []*obj.Handle) []rune {
	rs := make([]rune, len(vals))
	for i, v := range vals {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(h *obj.Handle) string {
	v := h.Value()
	switch v.Kind {
	case obj.ArrayKind, obj.DictionaryKind, obj.StreamKind, obj.NullKind:
		return v.Kind.String()
	case obj.BooleanKind:
		return v.Kind.String() + "-" + strconv.FormatBool(v.Bool)
	case obj.StringKind:
		if strings.Contains(v.Str, "\n") {
			return v.Kind.String() + "/m"
		}
		return v.Kind.String() + "-" + v.Str
	case obj.NameKind:
		return v.Kind.String() + "-" + v.Name
	case obj.IntegerKind:
		return v.Kind.String() + "-" + strconv.FormatInt(v.Int, 10)
	case obj.RealKind:
		return v.Kind.String() + "-" + strconv.FormatFloat(v.Real, 'f', -1, 64)
	default:
		panic("kind")
	}
}
