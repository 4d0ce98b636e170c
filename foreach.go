// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callbag

// ForEach attaches to src and invokes fn with every delivered value.
//
// It issues one pull on greet and one after each value, which drives a
// pull source to completion; a push source ignores the extraneous pulls,
// so the same consumer drains both shapes.
func ForEach[T any](src Source[T], fn func(T)) {
	var talkback Talkback
	src(func(s Signal[T]) {
		switch s.Kind() {
		case Start:
			talkback = s.Talkback()
			talkback(Pull())
		case Data:
			fn(s.Value())
			talkback(Pull())
		}
	})
}

// Drain behaves as ForEach and additionally surfaces how the stream
// terminated: nil on graceful completion, the upstream failure reason
// otherwise. It reports the termination observed by the time the source
// call returns, so it is meaningful for synchronous pipelines; a push
// source that completes later should be consumed with a Sink directly.
func Drain[T any](src Source[T], fn func(T)) error {
	var talkback Talkback
	var end Termination
	src(func(s Signal[T]) {
		switch s.Kind() {
		case Start:
			talkback = s.Talkback()
			talkback(Pull())
		case Data:
			fn(s.Value())
			talkback(Pull())
		case End:
			end = s.End()
		}
	})
	return end.Err()
}

// Collect drains src into a slice, returning the collected values and the
// failure reason if the stream failed. Values delivered before a failure
// are retained.
func Collect[T any](src Source[T]) ([]T, error) {
	var out []T
	err := Drain(src, func(v T) {
		out = append(out, v)
	})
	return out, err
}
