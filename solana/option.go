package solana

// COption is an optional value as the token program stores it: a 4 byte flag
// followed by a payload that only carries meaning when the flag is set.
type COption[T any] struct {
	value T
	some  bool
}

// Some returns a present option holding v.
func Some[T any](v T) COption[T] {
	return COption[T]{value: v, some: true}
}

// None returns an absent option.
func None[T any]() COption[T] {
	return COption[T]{}
}

// IsSome reports whether o holds a value.
func (o COption[T]) IsSome() bool { return o.some }

// IsNone reports whether o is absent.
func (o COption[T]) IsNone() bool { return !o.some }

// Get returns the held value and whether it is present.
func (o COption[T]) Get() (T, bool) {
	return o.value, o.some
}

// UnwrapOr returns the held value, or def when absent.
func (o COption[T]) UnwrapOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// Ptr returns a pointer to a copy of the held value, or nil when absent.
func (o COption[T]) Ptr() *T {
	if !o.some {
		return nil
	}
	v := o.value
	return &v
}

// flag is the on-chain option tag for o.
func (o COption[T]) flag() uint32 {
	if o.some {
		return 1
	}
	return 0
}
