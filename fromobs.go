// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callbag

// Observer receives notifications from a Subscribable. Any member may be
// nil, in which case the corresponding notification is dropped.
type Observer[T any] struct {
	// Next receives each produced value.
	Next func(T)

	// Error receives the failure reason; terminal.
	Error func(error)

	// Complete signals graceful exhaustion; terminal.
	Complete func()
}

// Disposable releases an upstream subscription.
type Disposable interface {
	Unsubscribe()
}

// DisposeFunc adapts a bare cancel function to Disposable. This is the
// second disposer variant a Subscribable may return: either an object with
// an Unsubscribe method, or a plain function wrapped in DisposeFunc.
type DisposeFunc func()

// Unsubscribe implements Disposable.
func (f DisposeFunc) Unsubscribe() { f() }

// Subscribable is the capability a host push producer must expose to be
// adapted by FromObs.
type Subscribable[T any] interface {
	Subscribe(Observer[T]) Disposable
}

// FromObs adapts a host push producer into a listenable source.
//
// On greet the sink immediately receives a talkback whose End request
// unsubscribes; pull requests are meaningless for a push source and are
// ignored. The adapter then subscribes, forwarding next as Data, complete
// as graceful End and error as failure End. Notifications arriving after
// disposal or after a terminal notification are dropped.
func FromObs[T any](obs Subscribable[T]) Source[T] {
	return func(sink Sink[T]) {
		var disposer Disposable
		done := false
		cancelled := false
		sink(Greet[T](func(r Request) {
			if r.Kind() != End || done {
				return
			}
			done = true
			cancelled = true
			if disposer != nil {
				disposer.Unsubscribe()
			}
		}))
		if done {
			// Cancelled from inside the greet; never subscribe.
			return
		}
		disposer = obs.Subscribe(Observer[T]{
			Next: func(v T) {
				if !done {
					sink(Push(v))
				}
			},
			Error: func(err error) {
				if !done {
					done = true
					sink(Terminate[T](Failed(err)))
				}
			},
			Complete: func() {
				if !done {
					done = true
					sink(Terminate[T](Completed()))
				}
			},
		})
		if cancelled && disposer != nil {
			// Cancelled during subscribe, before the disposer existed.
			disposer.Unsubscribe()
			disposer = nil
		}
	}
}
