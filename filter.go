// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callbag

// Filter forwards values satisfying pred. For each dropped value the
// operator pulls upstream on behalf of the sink, so a pull source is not
// starved waiting for a request the sink never knew to make.
func Filter[T any](src Source[T], pred func(T) bool) Source[T] {
	return func(sink Sink[T]) {
		var talkback Talkback
		src(func(s Signal[T]) {
			switch s.Kind() {
			case Start:
				talkback = s.Talkback()
				sink(Greet[T](talkback))
			case Data:
				if pred(s.Value()) {
					sink(s)
				} else {
					talkback(Pull())
				}
			case End:
				sink(s)
			}
		})
	}
}

// Skip drops the first n values by auto-pulling in their place and
// forwards everything from the (n+1)th onward unchanged.
func Skip[T any](src Source[T], n int) Source[T] {
	return func(sink Sink[T]) {
		skipped := 0
		var talkback Talkback
		src(func(s Signal[T]) {
			switch s.Kind() {
			case Start:
				talkback = s.Talkback()
				sink(Greet[T](talkback))
			case Data:
				if skipped < n {
					skipped++
					talkback(Pull())
				} else {
					sink(s)
				}
			case End:
				sink(s)
			}
		})
	}
}

// Take forwards at most n values. On delivering the nth it terminates both
// directions exactly once: a graceful End downstream and a cancel
// upstream. The taken counter gates both the forwarding path and the
// interposed talkback, so requests and signals arriving reentrantly after
// the limit are no-ops, as is a second End from either side.
//
// Take with n <= 0 greets and then immediately terminates both directions.
func Take[T any](src Source[T], n int) Source[T] {
	return func(sink Sink[T]) {
		taken := 0
		ended := false
		var upstream Talkback
		talkback := func(r Request) {
			if ended || taken >= n {
				return
			}
			if r.Kind() == End {
				ended = true
			}
			upstream(r)
		}
		src(func(s Signal[T]) {
			switch s.Kind() {
			case Start:
				upstream = s.Talkback()
				sink(Greet[T](talkback))
				if n <= 0 {
					ended = true
					sink(Terminate[T](Completed()))
					upstream(Cancel())
				}
			case Data:
				if ended || taken >= n {
					return
				}
				taken++
				sink(s)
				if taken == n {
					ended = true
					sink(Terminate[T](Completed()))
					upstream(Cancel())
				}
			case End:
				if ended {
					return
				}
				ended = true
				taken = n
				sink(s)
			}
		})
	}
}
