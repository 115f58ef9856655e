package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Dispatch bool
	Copy     bool
	Diff     bool
	Patch    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Dispatch = boolEnv("PDFGRAPH_DEBUG_DISPATCH")
	d.Copy = boolEnv("PDFGRAPH_DEBUG_COPY")
	d.Diff = boolEnv("PDFGRAPH_DEBUG_DIFF")
	d.Patch = boolEnv("PDFGRAPH_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Dispatch() bool {
	return d.Dispatch
}
func Copy() bool {
	return d.Copy
}
func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}
