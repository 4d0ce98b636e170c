// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callbag

// pullLoop is the shared drive loop for pull sources. One instance exists
// per attachment and is only ever touched from the single synchronous call
// chain, so no locking is involved.
//
// A consumer that pulls again from inside its own Data handler would, with
// a naive recursive implementation, grow the call stack by one frame per
// element. pullLoop converts that reentrancy into a bounded iterative
// drain: request while looping only records a pending flag; the outermost
// request runs the loop until no request is pending or the stream is done.
type pullLoop[T any] struct {
	sink    Sink[T]
	next    func() (T, bool)
	looping bool
	pending bool
	done    bool
}

// request handles one Data-kind talkback invocation.
func (l *pullLoop[T]) request() {
	l.pending = true
	if l.looping {
		return
	}
	l.looping = true
	for l.pending && !l.done {
		l.pending = false
		v, ok := l.next()
		if l.done {
			// Cancelled from inside next or a reentrant signal.
			break
		}
		if !ok {
			l.done = true
			l.sink(Terminate[T](Completed()))
			break
		}
		l.sink(Push(v))
	}
	l.looping = false
}

// cancel marks the loop terminated. Idempotent: repeated cancellation and
// any request arriving after termination are silent no-ops.
func (l *pullLoop[T]) cancel() {
	l.done = true
}

// talkback returns the Talkback exposing the loop to a sink.
func (l *pullLoop[T]) talkback() Talkback {
	return func(r Request) {
		switch r.Kind() {
		case Data:
			if !l.done {
				l.request()
			}
		case End:
			l.cancel()
		}
	}
}
