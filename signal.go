// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callbag

// Kind is the tag of a protocol message.
// Every signal exchanged between a source and a sink, in either direction,
// is one of the three kinds below.
type Kind uint8

const (
	// Start is the handshake message. From source to sink it carries the
	// talkback (the greet); from sink to source it is the act of invoking
	// the Source with a Sink and never appears as an explicit Request.
	Start Kind = iota + 1

	// Data carries a value from source to sink, or a pull request from
	// sink to source (no value, or an optional payload some operators
	// replay on behalf of the sink).
	Data

	// End terminates the attachment. It may be graceful or carry a
	// failure reason; see Termination.
	End
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case Start:
		return "start"
	case Data:
		return "data"
	case End:
		return "end"
	default:
		return "invalid"
	}
}

// Signal is a message delivered from a source to its sink.
// Signal[T] is a tagged union over the three kinds: a Start signal carries
// the talkback, a Data signal carries a value of type T, and an End signal
// carries a Termination. Fields outside the active variant are zero.
type Signal[T any] struct {
	kind     Kind
	value    T
	talkback Talkback
	end      Termination
}

// Greet constructs the Start signal carrying the talkback tb.
// A source must deliver exactly one greet to its sink, before any Data or
// End, synchronously or later.
func Greet[T any](tb Talkback) Signal[T] {
	return Signal[T]{kind: Start, talkback: tb}
}

// Push constructs a Data signal carrying v.
func Push[T any](v T) Signal[T] {
	return Signal[T]{kind: Data, value: v}
}

// Terminate constructs an End signal with the given termination.
func Terminate[T any](t Termination) Signal[T] {
	return Signal[T]{kind: End, end: t}
}

// Kind returns the signal's tag.
func (s Signal[T]) Kind() Kind { return s.kind }

// Value returns the Data payload. Zero for non-Data signals.
func (s Signal[T]) Value() T { return s.value }

// Talkback returns the Start payload. Nil for non-Start signals.
func (s Signal[T]) Talkback() Talkback { return s.talkback }

// End returns the End payload. Completed for non-End signals.
func (s Signal[T]) End() Termination { return s.end }

// Request is a message delivered from a sink to its source over the
// talkback. A Data-kind request asks for one more value (the pull); an
// End-kind request cancels the attachment. Start never flows this way.
type Request struct {
	kind  Kind
	value any
	end   Termination
}

// Pull constructs a plain pull request.
func Pull() Request {
	return Request{kind: Data}
}

// PullWith constructs a pull request carrying a payload. Pull payloads are
// opaque to sources that do not understand them; Concat records the most
// recent one so it can be replayed when switching sources.
func PullWith(v any) Request {
	return Request{kind: Data, value: v}
}

// Cancel constructs a graceful End request.
func Cancel() Request {
	return Request{kind: End}
}

// CancelWith constructs an End request carrying the given termination,
// used to propagate a failure upstream.
func CancelWith(t Termination) Request {
	return Request{kind: End, end: t}
}

// Kind returns the request's tag.
func (r Request) Kind() Kind { return r.kind }

// Value returns the pull payload, if any.
func (r Request) Value() any { return r.value }

// End returns the cancellation termination. Completed for plain Cancel.
func (r Request) End() Termination { return r.end }

// Sink is the downstream half of an attachment: a callable the source
// invokes with each signal. Communication is by invocation only; a sink
// returns nothing.
type Sink[T any] func(Signal[T])

// Talkback is the reverse-direction callable a source hands to its sink at
// greet time. The sink uses it to request more data or to cancel.
type Talkback func(Request)

// Source produces values of type T. Invoking a Source with a Sink is the
// Start request: the source must greet the sink exactly once before any
// Data or End flows. Operators are Source-to-Source transforms, so
// pipelines compose by nesting.
type Source[T any] func(Sink[T])
