// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package callbag implements a minimal two-way signaling protocol for
// composable data streams, and a library of sources, consumers and
// operators built on it.
//
// One primitive underlies everything: an attachment between a [Source] and
// a [Sink] over which tagged messages flow in both directions. Downstream
// messages are [Signal] values (greet, value, termination); upstream
// messages are [Request] values sent over the [Talkback] the source hands
// out at greet time. The same shape expresses pull streams (values are
// produced on demand, one per request) and push streams (values arrive
// whenever the producer chooses), so backpressure and cooperative
// cancellation need no framework or scheduler.
//
// # Protocol
//
// Every attachment moves through three states: idle, greeted, terminated.
// A source greets its sink exactly once, before any value or termination.
// Either side may terminate; after a termination has been observed, all
// further signals in either direction are silent no-ops. That tolerance is
// deliberate: both sides may request termination in the same synchronous
// instant, and neither is at fault.
//
//   - [Kind]: message tag — [Start], [Data], [End]
//   - [Signal]: source→sink message; [Greet], [Push], [Terminate]
//   - [Request]: sink→source message; [Pull], [PullWith], [Cancel], [CancelWith]
//   - [Termination]: graceful/failed sum type — [Completed], [Failed]
//
// # Sources
//
// Pull sources answer each request with exactly one value, driven by an
// internal iterative loop that stays bounded even when the sink pulls
// again from inside its own value handler:
//
//   - [Range], [RangeBy]: inclusive arithmetic progressions
//   - [FromSlice]: elements of a slice
//   - [FromFunc]: repeatedly applies a step function to a threaded state
//   - [FromIter]: adapts an iter.Seq
//
// Push sources emit at will once greeted and ignore pulls:
//
//   - [FromObs]: adapts a [Subscribable] host producer
//
// # Consumers
//
//   - [ForEach]: drives a source to completion, one pull per value
//   - [Drain]: ForEach surfacing the failure reason as an error
//   - [Collect]: drains into a slice
//   - [ToIter]: adapts a pull source into an iter.Seq, one pull per step
//
// # Operators
//
// An operator transforms one source into another, so pipelines compose by
// nesting. The source is always the first argument:
//
//	sum := callbag.Scan(callbag.Take(callbag.Range(1, 100), 10), add, 0)
//
//   - [Map], [Scan], [Scan1]: rewrite values in flight
//   - [Filter], [Skip], [Take]: decide what passes; Take terminates both
//     directions exactly once on reaching its limit
//   - [Concat]: sequences sources, replaying the last pull across switches
//   - [Flatten]: switch-latest flattening of a source of sources
//   - [Share]: reference-counted multicast of one upstream
//
// # Concurrency Model
//
// The protocol is an in-process, synchronous, single-goroutine contract.
// Signal delivery is a direct call chain and operators tolerate being
// re-entered from within calls they themselves issued; there are no locks
// because there is no concurrent mutation. The only true asynchrony is at
// the boundary with a host push producer, which may invoke its observer
// whenever it likes.
//
// # Errors
//
// Invalid construction arguments fail eagerly, before any signal is sent
// (see [ErrRangeNaN]). A failure [Termination] propagates unchanged
// through every operator to the final consumer; no operator recovers or
// substitutes values. Signals arriving after a terminal state are
// tolerated as no-ops, never raised as errors.
//
// merge and combine operators are intentionally absent.
package callbag
