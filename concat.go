// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callbag

// Concat produces every value of each source in turn: the next source is
// started only after the previous one completes gracefully. A failure End
// from any source is forwarded immediately and abandons the rest.
//
// The sink sees a single greet and a single talkback for the whole
// sequence. The talkback records the most recent pull request and replays
// it to each successor source at its greet, so production resumes across
// the switch without the sink issuing a fresh pull. Concat with no sources
// greets and then immediately completes.
func Concat[T any](sources ...Source[T]) Source[T] {
	return func(sink Sink[T]) {
		if len(sources) == 0 {
			sink(Greet[T](func(Request) {}))
			sink(Terminate[T](Completed()))
			return
		}
		var (
			i        int
			upstream Talkback
			lastPull Request
			havePull bool
			ended    bool
		)
		talkback := func(r Request) {
			if ended {
				return
			}
			if r.Kind() == Data {
				lastPull, havePull = r, true
			} else if r.Kind() == End {
				ended = true
			}
			upstream(r)
		}
		var next func()
		next = func() {
			if i == len(sources) {
				ended = true
				sink(Terminate[T](Completed()))
				return
			}
			first := i == 0
			sources[i](func(s Signal[T]) {
				switch s.Kind() {
				case Start:
					upstream = s.Talkback()
					if first {
						sink(Greet[T](talkback))
					} else if havePull {
						upstream(lastPull)
					}
				case Data:
					if !ended {
						sink(s)
					}
				case End:
					if ended {
						return
					}
					if s.End().IsFailed() {
						ended = true
						sink(s)
						return
					}
					i++
					next()
				}
			})
		}
		next()
	}
}
