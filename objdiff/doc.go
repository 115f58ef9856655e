// Package objdiff provides index-based diffing for array nodes.
//
// # Usage
//
//	// Compute an edit script turning one array into another
//	ops, err := objdiff.Diff(oldArray, newArray)
//
//	// Apply an edit script
//	patched, err := objdiff.Patch(oldArray, ops)
//
// Edit scripts cover every position of the source array (keeps included),
// so Patch can verify each consumed element before producing the result.
//
// # Related Packages
//
//   - github.com/qooxzuub/pdfgraph/obj - object model
package objdiff
