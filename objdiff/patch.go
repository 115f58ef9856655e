package objdiff

import (
	"fmt"

	"github.com/qooxzuub/pdfgraph/debug"
	"github.com/qooxzuub/pdfgraph/obj"
)

// Patch applies an edit script to an array, returning the patched array
// as a new container. Every consumed element is verified against the
// script before anything is produced, so a stale script fails instead of
// producing a silently wrong result.
func Patch(doc *obj.Handle, ops []Op) (*obj.Handle, error) {
	if doc.Kind() != obj.ArrayKind {
		return nil, fmt.Errorf("can only patch arrays, got %s", doc.Kind())
	}
	docVals := doc.Elements()
	fi := 0
	res := []*obj.Handle{}
	for _, op := range ops {
		switch op.Type {
		case OpKeep, OpDelete, OpReplace:
			if fi >= len(docVals) {
				return nil, fmt.Errorf("cannot patch, edit script overruns array of length %d", len(docVals))
			}
			if !docVals[fi].Equal(op.From) {
				return nil, fmt.Errorf("cannot patch, unexpected value at index %d", fi)
			}
		}
		switch op.Type {
		case OpKeep:
			res = append(res, docVals[fi].Clone())
			fi++
		case OpDelete:
			fi++
		case OpReplace:
			res = append(res, op.To.Clone())
			fi++
		case OpInsert:
			res = append(res, op.To.Clone())
		default:
			return nil, fmt.Errorf("unexpected edit op: %s", op.Type)
		}
	}
	if fi != len(docVals) {
		return nil, fmt.Errorf("cannot patch, edit script covers %d of %d elements", fi, len(docVals))
	}
	out := obj.FromSlice(res)
	if debug.Patch() {
		debug.Logf("patched %d ops onto array of length %d\n", len(ops), len(docVals))
	}
	return out, nil
}
