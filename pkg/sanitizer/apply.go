package sanitizer

// Apply runs value through transforms left to right. Nil transforms are skipped.
func Apply[T any](value T, transforms ...func(T) T) T {
	return Compose(transforms...)(value)
}

// Compose returns a single transform that runs the given ones in order.
// The chain is captured when Compose is called; later changes to the
// caller's slice do not affect it.
func Compose[T any](transforms ...func(T) T) func(T) T {
	chain := make([]func(T) T, 0, len(transforms))
	for _, fn := range transforms {
		if fn != nil {
			chain = append(chain, fn)
		}
	}

	return func(value T) T {
		for _, fn := range chain {
			value = fn(value)
		}
		return value
	}
}
