// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callbag

// Termination reports how an attachment ended: graceful completion or
// failure with a reason. It is the payload of every End signal, modeled as
// a two-variant sum so both cases are handled explicitly rather than
// probing an optional field.
type Termination struct {
	failed bool
	reason error
}

// Completed constructs the graceful termination.
func Completed() Termination {
	return Termination{}
}

// Failed constructs a failure termination carrying reason.
func Failed(reason error) Termination {
	return Termination{failed: true, reason: reason}
}

// IsFailed reports whether the termination carries a failure.
func (t Termination) IsFailed() bool {
	return t.failed
}

// Err returns the failure reason, or nil for graceful completion.
func (t Termination) Err() error {
	if !t.failed {
		return nil
	}
	return t.reason
}

// MatchTermination calls onCompleted or onFailed depending on the variant.
func MatchTermination[R any](t Termination, onCompleted func() R, onFailed func(error) R) R {
	if t.failed {
		return onFailed(t.reason)
	}
	return onCompleted()
}
