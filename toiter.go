// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callbag

import "iter"

// ToIter adapts a pull source into a host iteration sequence.
//
// Each step of the sequence issues exactly one pull and yields the value
// that pull delivers; at most one pull is in flight at a time. The caller
// is suspended between the pull and the corresponding Data or End by the
// yield mechanism itself, not by a blocked thread. Graceful or failed End
// terminates the sequence; breaking out of the loop cancels upstream.
//
// The attachment is made on first iteration and the sequence is not
// restartable: once exhausted or abandoned, further iteration yields
// nothing. ToIter requires an upstream that answers pulls synchronously;
// use a Sink directly for push sources.
func ToIter[T any](src Source[T]) iter.Seq[T] {
	used := false
	return func(yield func(T) bool) {
		if used {
			return
		}
		used = true
		var (
			talkback Talkback
			cur      T
			have     bool
			ended    bool
		)
		src(func(s Signal[T]) {
			switch s.Kind() {
			case Start:
				talkback = s.Talkback()
			case Data:
				cur, have = s.Value(), true
			case End:
				ended = true
			}
		})
		if talkback == nil {
			return
		}
		for !ended {
			have = false
			talkback(Pull())
			if !have {
				// End, or an upstream that did not answer synchronously.
				return
			}
			if !yield(cur) {
				if !ended {
					talkback(Cancel())
				}
				return
			}
		}
	}
}
