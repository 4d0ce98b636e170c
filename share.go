// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callbag

import "slices"

// shareSub is one downstream registration. Sink functions are not
// comparable, so the registration node itself supplies the identity used
// for removal.
type shareSub[T any] struct {
	sink Sink[T]
}

// Share multicasts one upstream attachment across many sinks with
// reference counting.
//
// The first sink to attach triggers the single upstream subscription;
// every later sink is greeted immediately and shares it. Upstream signals
// are broadcast to a snapshot of the registration list, so a sink that
// detaches itself while a broadcast is in flight neither corrupts the
// iteration nor affects delivery to the rest of that broadcast. Detaching
// is exactly-once per sink; when the last sink detaches the upstream is
// cancelled. An upstream End, graceful or failed, is broadcast and then
// clears the list, so a subsequent attachment subscribes afresh.
func Share[T any](src Source[T]) Source[T] {
	var (
		subs     []*shareSub[T]
		upstream Talkback
	)
	return func(sink Sink[T]) {
		sub := &shareSub[T]{sink: sink}
		subs = append(subs, sub)
		talkback := func(r Request) {
			if r.Kind() == End {
				i := slices.Index(subs, sub)
				if i < 0 {
					// Already detached; repeated cancels are no-ops.
					return
				}
				subs = slices.Delete(subs, i, i+1)
				if len(subs) == 0 && upstream != nil {
					upstream(r)
				}
				return
			}
			if upstream != nil {
				upstream(r)
			}
		}
		if len(subs) == 1 {
			src(func(s Signal[T]) {
				if s.Kind() == Start {
					upstream = s.Talkback()
					sink(Greet[T](talkback))
					return
				}
				for _, q := range slices.Clone(subs) {
					q.sink(s)
				}
				if s.Kind() == End {
					subs = nil
					upstream = nil
				}
			})
			return
		}
		sink(Greet[T](talkback))
	}
}
