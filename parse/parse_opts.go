package parse

const defaultMaxDepth = 512

type parseOpts struct {
	preserveOrder bool
	maxDepth      int
}

type ParseOption func(*parseOpts)

// PreserveOrder makes parsed objects keep their keys in document order
// instead of ascending key order.
func PreserveOrder(v bool) ParseOption {
	return func(o *parseOpts) { o.preserveOrder = v }
}

// MaxDepth bounds container nesting. Values of n < 1 keep the default of
// 512 levels.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n >= 1 {
			o.maxDepth = n
		}
	}
}
