package collect

// Option configures a freshly constructed container before population
// begins. Options apply after the capability check and before the first
// element is traversed.
type Option func(container any)

// WithCapacity hints that about n elements are coming, letting kinds that
// expose a Grow(int) method pre-allocate. Kinds without the method ignore
// the hint.
func WithCapacity(n int) Option {
	return func(c any) {
		if n <= 0 {
			return
		}
		if g, ok := c.(interface{ Grow(int) }); ok {
			g.Grow(n)
		}
	}
}
