// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callbag

import "errors"

// ErrRangeNaN reports a NaN bound or step passed to RangeBy.
// It is returned eagerly at construction time, before any signal is sent.
var ErrRangeNaN = errors.New("callbag: range argument is NaN")

// Number constrains Range to the built-in numeric kinds.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Range produces the inclusive arithmetic progression start, start+1, ...,
// limit as a pull source with step 1.
func Range[N Number](start, limit N) Source[N] {
	src, _ := RangeBy(start, limit, 1)
	return src
}

// RangeBy produces the inclusive arithmetic progression from start to limit
// advancing by step. A positive step completes once the cursor exceeds
// limit; step <= 0 uses decreasing semantics and completes once the cursor
// falls below limit. Consequently a zero step with start >= limit never
// completes and yields start forever; bound such a stream with Take.
//
// NaN arguments are rejected with ErrRangeNaN before any signal is sent.
func RangeBy[N Number](start, limit, step N) (Source[N], error) {
	if isNaN(start) || isNaN(limit) || isNaN(step) {
		return nil, ErrRangeNaN
	}
	return func(sink Sink[N]) {
		cur := start
		loop := &pullLoop[N]{next: func() (N, bool) {
			if step > 0 {
				if cur > limit {
					return 0, false
				}
			} else if cur < limit {
				return 0, false
			}
			v := cur
			cur += step
			return v, true
		}}
		loop.sink = sink
		sink(Greet[N](loop.talkback()))
	}, nil
}

// isNaN reports whether v is a floating-point NaN. Integers never are.
func isNaN[N Number](v N) bool {
	return v != v
}
