package group

// Options is a selectable option collection that may be absent. The zero
// value is absent, and a fetch that returned nothing is absent as well, so
// consumers only ever check Present.
type Options[T any] struct {
	items []T
}

// OptionsOf wraps fetched items, collapsing an empty fetch to absent.
func OptionsOf[T any](items []T) Options[T] {
	if len(items) == 0 {
		return Options[T]{}
	}
	return Options[T]{items: items}
}

func (o Options[T]) Present() bool {
	return len(o.items) > 0
}

// Items returns the options, or nil when absent.
func (o Options[T]) Items() []T {
	return o.items
}
