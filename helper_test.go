// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callbag_test

import (
	"code.hybscloud.com/callbag"
)

// recorder is a manual sink that records every signal it observes.
// autoPull makes it behave like ForEach, pulling on greet and after each
// value; without it the test drives the talkback by hand.
type recorder[T any] struct {
	values   []T
	starts   int
	ends     []callbag.Termination
	talkback callbag.Talkback
	autoPull bool
}

func (r *recorder[T]) sink() callbag.Sink[T] {
	return func(s callbag.Signal[T]) {
		switch s.Kind() {
		case callbag.Start:
			r.starts++
			r.talkback = s.Talkback()
			if r.autoPull {
				r.talkback(callbag.Pull())
			}
		case callbag.Data:
			r.values = append(r.values, s.Value())
			if r.autoPull {
				r.talkback(callbag.Pull())
			}
		case callbag.End:
			r.ends = append(r.ends, s.End())
		}
	}
}

// attach subscribes the recorder to src.
func (r *recorder[T]) attach(src callbag.Source[T]) {
	src(r.sink())
}

// probe is a manual push source for driving multicast and lifecycle tests.
// Each attachment is greeted immediately; emit, complete and fail forward
// to the most recent sink. cancels counts End requests received over the
// talkback, pulls counts Data requests.
type probe[T any] struct {
	sink    callbag.Sink[T]
	greeted int
	pulls   int
	cancels int
}

func (p *probe[T]) source() callbag.Source[T] {
	return func(sink callbag.Sink[T]) {
		p.sink = sink
		p.greeted++
		sink(callbag.Greet[T](func(r callbag.Request) {
			switch r.Kind() {
			case callbag.Data:
				p.pulls++
			case callbag.End:
				p.cancels++
			}
		}))
	}
}

func (p *probe[T]) emit(v T)       { p.sink(callbag.Push(v)) }
func (p *probe[T]) complete()      { p.sink(callbag.Terminate[T](callbag.Completed())) }
func (p *probe[T]) fail(err error) { p.sink(callbag.Terminate[T](callbag.Failed(err))) }

// countingPulls wraps src, counting upstream Data-kind requests.
func countingPulls[T any](src callbag.Source[T], pulls *int) callbag.Source[T] {
	return func(sink callbag.Sink[T]) {
		src(func(s callbag.Signal[T]) {
			if s.Kind() == callbag.Start {
				upstream := s.Talkback()
				sink(callbag.Greet[T](func(r callbag.Request) {
					if r.Kind() == callbag.Data {
						*pulls++
					}
					upstream(r)
				}))
				return
			}
			sink(s)
		})
	}
}
