package encode

import (
	"bytes"
	"strings"

	"github.com/qooxzuub/pdfgraph/obj"
)

func MustString(h *obj.Handle) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(h, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
