package encode

type EncodeOption func(*encState)

// Indent sets the base indentation in spaces. 0 selects compact output.
func Indent(n int) EncodeOption {
	return func(es *encState) { es.indent = n }
}

// Step sets the per level indentation increase. Negative means
// step = indent.
func Step(n int) EncodeOption {
	return func(es *encState) { es.step = n }
}

// Compact selects single line output with minimal separators.
func Compact() EncodeOption {
	return func(es *encState) {
		es.indent = 0
		es.step = 0
	}
}

// WithColors enables ANSI colored output.
func WithColors(c *Colors) EncodeOption {
	return func(es *encState) { es.Color = c.Color }
}
