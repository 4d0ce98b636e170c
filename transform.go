// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callbag

// Map rewrites each value with f. Start and End pass through unchanged,
// including the talkback: Map never alters flow control, so no
// interposition is needed and pulls reach the upstream directly.
func Map[A, B any](src Source[A], f func(A) B) Source[B] {
	return func(sink Sink[B]) {
		src(func(s Signal[A]) {
			switch s.Kind() {
			case Start:
				sink(Greet[B](s.Talkback()))
			case Data:
				sink(Push(f(s.Value())))
			case End:
				sink(Terminate[B](s.End()))
			}
		})
	}
}

// Scan folds the stream with reducer, emitting the accumulator after each
// value. The seed is the initial accumulator. Accumulator state is owned
// by the attachment: each sink gets a fresh fold.
func Scan[A, B any](src Source[A], reducer func(B, A) B, seed B) Source[B] {
	return func(sink Sink[B]) {
		acc := seed
		src(func(s Signal[A]) {
			switch s.Kind() {
			case Start:
				sink(Greet[B](s.Talkback()))
			case Data:
				acc = reducer(acc, s.Value())
				sink(Push(acc))
			case End:
				sink(Terminate[B](s.End()))
			}
		})
	}
}

// Scan1 is the seedless fold: the first value becomes the accumulator
// verbatim and reduction starts with the second.
func Scan1[A any](src Source[A], reducer func(A, A) A) Source[A] {
	return func(sink Sink[A]) {
		var acc A
		seeded := false
		src(func(s Signal[A]) {
			switch s.Kind() {
			case Start:
				sink(Greet[A](s.Talkback()))
			case Data:
				if !seeded {
					acc, seeded = s.Value(), true
				} else {
					acc = reducer(acc, s.Value())
				}
				sink(Push(acc))
			case End:
				sink(Terminate[A](s.End()))
			}
		})
	}
}
