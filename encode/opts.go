package encode

type EncodeOption func(*EncState)

// ExpandRefs writes the resolved value of indirect handles in place of
// the "n g R" reference token.
func ExpandRefs(v bool) EncodeOption {
	return func(es *EncState) { es.expandRefs = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
