// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callbag_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/callbag"
)

// fakeObs is a host push producer. With bareDisposer it returns the
// plain-function disposer variant, otherwise an Unsubscribe object.
type fakeObs struct {
	observer     callbag.Observer[int]
	subscribes   int
	unsubscribes int
	bareDisposer bool
}

func (f *fakeObs) Subscribe(o callbag.Observer[int]) callbag.Disposable {
	f.subscribes++
	f.observer = o
	if f.bareDisposer {
		return callbag.DisposeFunc(func() { f.unsubscribes++ })
	}
	return &fakeDisposable{obs: f}
}

type fakeDisposable struct {
	obs *fakeObs
}

func (d *fakeDisposable) Unsubscribe() { d.obs.unsubscribes++ }

func TestFromObsForwardsValues(t *testing.T) {
	obs := &fakeObs{}
	rec := &recorder[int]{}
	rec.attach(callbag.FromObs[int](obs))
	assert.Equal(t, 1, rec.starts)
	assert.Equal(t, 1, obs.subscribes)

	obs.observer.Next(1)
	obs.observer.Next(2)
	obs.observer.Complete()
	assert.Equal(t, []int{1, 2}, rec.values)
	require.Len(t, rec.ends, 1)
	assert.False(t, rec.ends[0].IsFailed())
}

func TestFromObsForwardsError(t *testing.T) {
	cause := errors.New("boom")
	obs := &fakeObs{}
	rec := &recorder[int]{}
	rec.attach(callbag.FromObs[int](obs))

	obs.observer.Error(cause)
	require.Len(t, rec.ends, 1)
	assert.ErrorIs(t, rec.ends[0].Err(), cause)
}

// Cancellation releases the subscription; both disposer variants work.
func TestFromObsCancelUnsubscribes(t *testing.T) {
	for _, bare := range []bool{false, true} {
		obs := &fakeObs{bareDisposer: bare}
		rec := &recorder[int]{}
		rec.attach(callbag.FromObs[int](obs))
		rec.talkback(callbag.Cancel())
		assert.Equal(t, 1, obs.unsubscribes)

		// Idempotent: a second cancel does not release twice.
		rec.talkback(callbag.Cancel())
		assert.Equal(t, 1, obs.unsubscribes)
	}
}

// Pull requests are meaningless for a push source and must be no-ops.
func TestFromObsIgnoresPulls(t *testing.T) {
	obs := &fakeObs{}
	rec := &recorder[int]{autoPull: true}
	rec.attach(callbag.FromObs[int](obs))
	obs.observer.Next(5)
	assert.Equal(t, []int{5}, rec.values)
	assert.Equal(t, 1, obs.subscribes)
	assert.Empty(t, rec.ends)
}

// Notifications after a terminal notification are dropped.
func TestFromObsNoSignalsAfterTerminal(t *testing.T) {
	obs := &fakeObs{}
	rec := &recorder[int]{}
	rec.attach(callbag.FromObs[int](obs))

	obs.observer.Complete()
	obs.observer.Next(9)
	obs.observer.Complete()
	obs.observer.Error(errors.New("late"))
	assert.Empty(t, rec.values)
	assert.Len(t, rec.ends, 1)
}

// Notifications after cancellation are dropped.
func TestFromObsNoSignalsAfterCancel(t *testing.T) {
	obs := &fakeObs{}
	rec := &recorder[int]{}
	rec.attach(callbag.FromObs[int](obs))

	rec.talkback(callbag.Cancel())
	obs.observer.Next(9)
	obs.observer.Complete()
	assert.Empty(t, rec.values)
	assert.Empty(t, rec.ends)
}

// A sink that cancels from inside the greet is never subscribed.
func TestFromObsCancelInsideGreet(t *testing.T) {
	obs := &fakeObs{}
	callbag.FromObs[int](obs)(func(s callbag.Signal[int]) {
		if s.Kind() == callbag.Start {
			s.Talkback()(callbag.Cancel())
		}
	})
	assert.Equal(t, 0, obs.subscribes)
}
