package visitor

// Pair is one ordered (key, element) entry.
type Pair[K comparable, E any] struct {
	Key     K
	Element E
}

// PairsVisitor implements Visitor over an ordered pair slice.
type PairsVisitor[K comparable, E any] struct {
	pairs []Pair[K, E]
}

// PairsVisitorOf creates a Visitor preserving the supplied pair order.
func PairsVisitorOf[K comparable, E any](pairs []Pair[K, E]) Visitor[K, E] {
	visitor := &PairsVisitor[K, E]{pairs: pairs}
	return visitor.Visit
}

// Visit iterates over the pairs in order, calling f for each (key, element).
// - If f returns (true, nil), iteration continues.
// - If f returns (false, nil), iteration stops early.
// - If f returns an error, iteration stops with that error.
func (v *PairsVisitor[K, E]) Visit(f func(key K, element E) (bool, error)) error {
	for _, pair := range v.pairs {
		continueVisit, err := f(pair.Key, pair.Element)
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
