// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callbag

// Flatten turns a source of sources into a source of their values using
// the switch-latest strategy: when a new inner source arrives, the
// previously active inner source is cancelled before the new one is
// started, so at most one inner source is ever live.
//
// The operator maintains two talkbacks, one to the outer source and one to
// the active inner source. Pulls from the sink go to the inner source when
// one is live, otherwise to the outer source. Termination distinguishes
// four cases:
//
//  1. Inner completes while the outer is live: pull the outer for the next
//     inner source.
//  2. Inner fails: the failure is propagated to the outer source and
//     downstream; everything terminates.
//  3. Outer completes while an inner is live: remember it and terminate
//     downstream only when that inner ends.
//  4. Outer completes with no live inner: terminate downstream now.
//
// A downstream cancel ends the live inner, if any, and then the outer.
func Flatten[T any](src Source[Source[T]]) Source[T] {
	return func(sink Sink[T]) {
		var outer, inner Talkback
		talkback := func(r Request) {
			switch r.Kind() {
			case Data:
				if inner != nil {
					inner(r)
				} else if outer != nil {
					outer(r)
				}
			case End:
				if inner != nil {
					inner(r)
					inner = nil
				}
				if outer != nil {
					outer(r)
					outer = nil
				}
			}
		}
		src(func(s Signal[Source[T]]) {
			switch s.Kind() {
			case Start:
				outer = s.Talkback()
				sink(Greet[T](talkback))
			case Data:
				if inner != nil {
					inner(Cancel())
				}
				s.Value()(func(is Signal[T]) {
					switch is.Kind() {
					case Start:
						inner = is.Talkback()
						inner(Pull())
					case Data:
						sink(is)
					case End:
						if is.End().IsFailed() {
							inner = nil
							if outer != nil {
								outer(CancelWith(is.End()))
								outer = nil
							}
							sink(Terminate[T](is.End()))
							return
						}
						inner = nil
						if outer == nil {
							sink(Terminate[T](Completed()))
						} else {
							outer(Pull())
						}
					}
				})
			case End:
				if s.End().IsFailed() {
					outer = nil
					if inner != nil {
						inner(Cancel())
						inner = nil
					}
					sink(Terminate[T](s.End()))
					return
				}
				outer = nil
				if inner == nil {
					sink(Terminate[T](Completed()))
				}
			}
		})
	}
}
