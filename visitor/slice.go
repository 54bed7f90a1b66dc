package visitor

// SliceVisitor implements Visitor[int, E] for []E.
type SliceVisitor[E any] struct {
	data []E
}

// SliceVisitorOf creates a Visitor over a slice keyed by index.
func SliceVisitorOf[E any](items []E) Visitor[int, E] {
	visitor := &SliceVisitor[E]{data: items}
	return visitor.Visit
}

// Visit iterates over the slice, calling the provided function for each
// element. The key is the slice index.
func (v *SliceVisitor[E]) Visit(f func(key int, element E) (bool, error)) error {
	for i, elem := range v.data {
		continueVisit, err := f(i, elem)
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
