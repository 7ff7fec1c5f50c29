// SPDX-License-Identifier: MIT

package traverse

// Mapped applies fn to every value of an underlying iterator on demand.
type Mapped[S, T any] struct {
	src Iterator[S]
	fn  func(S) T
}

// Map wraps src. fn runs once per Next call, never ahead of it.
func Map[S, T any](src Iterator[S], fn func(S) T) *Mapped[S, T] {
	return &Mapped[S, T]{src: src, fn: fn}
}

// HasNext defers to the wrapped iterator.
func (m *Mapped[S, T]) HasNext() bool {
	return m.src.HasNext()
}

// Next transforms the wrapped iterator's next value.
func (m *Mapped[S, T]) Next() (T, error) {
	s, err := m.src.Next()
	if err != nil {
		var zero T
		return zero, err
	}
	return m.fn(s), nil
}

// Remove passes through to the wrapped iterator.
func (m *Mapped[S, T]) Remove() error {
	return m.src.Remove()
}
