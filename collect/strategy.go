package collect

import "fmt"

// strategy identifies the insertion path chosen for one Into call. It is
// resolved once per (container kind, element type) pair, never per element.
type strategy uint8

const (
	strategyNone strategy = iota
	strategyEmplace
	strategyFront
)

// resolve queries the constructed container for its insertion capabilities
// and picks the strategy. Generic insertion wins; front insertion is chosen
// only when it is the sole capability.
func resolve[E any](c any) (strategy, error) {
	_, emplace := c.(Inserter[E])
	_, front := c.(FrontInserter[E])
	switch {
	case emplace:
		return strategyEmplace, nil
	case front:
		return strategyFront, nil
	default:
		return strategyNone, fmt.Errorf("%w: %T exposes neither Insert nor InsertFront for its element type",
			ErrCapabilityUnsupported, c)
	}
}
