// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callbag

import "iter"

// FromSlice produces the elements of items in order as a pull source.
// The slice is read one element per pull and never beyond the last
// delivered index.
func FromSlice[T any](items []T) Source[T] {
	return func(sink Sink[T]) {
		i := 0
		loop := &pullLoop[T]{sink: sink, next: func() (T, bool) {
			if i >= len(items) {
				var zero T
				return zero, false
			}
			v := items[i]
			i++
			return v, true
		}}
		sink(Greet[T](loop.talkback()))
	}
}

// FromIter adapts a host iteration sequence into a pull source. Each pull
// advances the sequence by one step; exhaustion signals graceful End and
// cancellation stops the underlying iterator so it can release resources.
//
// The sequence is instantiated once per attachment, so a reusable seq
// yields a fresh pass for every sink while a one-shot seq is consumed by
// the first.
// FromFunc adapts a step-function iteration protocol into a pull source.
// step receives the iteration state and the previously produced value and
// returns the next value, or false to signal exhaustion. initial seeds the
// first step and is not itself emitted.
func FromFunc[S, T any](step func(S, T) (T, bool), state S, initial T) Source[T] {
	return func(sink Sink[T]) {
		prev := initial
		loop := &pullLoop[T]{sink: sink, next: func() (T, bool) {
			v, ok := step(state, prev)
			if !ok {
				var zero T
				return zero, false
			}
			prev = v
			return v, true
		}}
		sink(Greet[T](loop.talkback()))
	}
}

// FromIter adapts a host iteration sequence into a pull source. Each pull
// advances the sequence by one step; exhaustion signals graceful End and
// cancellation stops the underlying iterator so it can release resources.
//
// The sequence is instantiated once per attachment, so a reusable seq
// yields a fresh pass for every sink while a one-shot seq is consumed by
// the first.
func FromIter[T any](seq iter.Seq[T]) Source[T] {
	return func(sink Sink[T]) {
		pull, stop := iter.Pull(seq)
		loop := &pullLoop[T]{sink: sink, next: func() (T, bool) {
			v, ok := pull()
			if !ok {
				stop()
			}
			return v, ok
		}}
		sink(Greet[T](func(r Request) {
			switch r.Kind() {
			case Data:
				if !loop.done {
					loop.request()
				}
			case End:
				loop.cancel()
				stop()
			}
		}))
	}
}
