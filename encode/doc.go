// Package encode renders object handles as PDF token syntax.
//
// # Usage
//
//	h := obj.FromKeyVals([]obj.KeyVal{
//	    {Key: "/Type", Val: obj.NewName("/Page")},
//	    {Key: "/Count", Val: obj.FromInt(3)},
//	})
//	err := encode.Encode(h, os.Stdout)
//	// << /Type /Page /Count 3 >>
//
//	// With colored output for terminals
//	err = encode.Encode(h, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// Indirect handles render as reference tokens ("3 0 R") by default; pass
// encode.ExpandRefs(true) to write resolved values in place.
package encode
