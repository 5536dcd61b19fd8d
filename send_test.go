package interruptor

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSend_SingleDeliversAndRuns(t *testing.T) {
	a := newTestInterruptor()
	b := newTestInterruptor()
	a.Start()
	b.Start()

	var ran atomic.Bool
	var gotSelf Domain
	var gotData any

	done := make(chan bool, 1)
	go func() {
		done <- a.Send(b, func(self Domain, data any) {
			ran.Store(true)
			gotSelf = self
			gotData = data
		}, 42)
	}()

	// b must poll to run the queued handler.
	require.Eventually(t, func() bool {
		b.Poll()
		return ran.Load()
	}, time.Second, time.Millisecond)

	require.True(t, <-done)
	require.Equal(t, "test-domain", gotSelf)
	require.Equal(t, 42, gotData)
}

func TestSend_ToStoppedTargetReturnsFalse(t *testing.T) {
	a := newTestInterruptor()
	b := newTestInterruptor()
	a.Start()
	// b never started.

	ok := a.Send(b, func(self Domain, data any) {
		t.Fatal("handler must not run against a non-running target")
	}, nil)
	require.False(t, ok)
}

func TestSend_MarksTargetPollWordPending(t *testing.T) {
	a := newTestInterruptor()
	b := newTestInterruptor()
	a.Start()
	b.Start()
	require.False(t, b.pollWord.Pending())

	done := make(chan bool, 1)
	go func() {
		done <- a.Send(b, func(self Domain, data any) {}, nil)
	}()

	require.Eventually(t, func() bool {
		return b.pollWord.Pending()
	}, time.Second, time.Millisecond)

	b.Poll()
	require.True(t, <-done)
}

func TestSend_MutualInterruptDoesNotDeadlock(t *testing.T) {
	a := newTestInterruptor(WithSpinIterations(1))
	b := newTestInterruptor(WithSpinIterations(1))
	a.Start()
	b.Start()

	var wg sync.WaitGroup
	wg.Add(2)

	var aOK, bOK bool
	go func() {
		defer wg.Done()
		aOK = a.Send(b, func(self Domain, data any) {}, "a-to-b")
	}()
	go func() {
		defer wg.Done()
		bOK = b.Send(a, func(self Domain, data any) {}, "b-to-a")
	}()

	waitWithTimeout(t, &wg, 5*time.Second)
	require.True(t, aOK)
	require.True(t, bOK)
}

func TestSend_HandlerThatSendsBack(t *testing.T) {
	a := newTestInterruptor(WithSpinIterations(1))
	b := newTestInterruptor(WithSpinIterations(1))
	a.Start()
	b.Start()

	var innerOK atomic.Bool
	done := make(chan bool, 1)
	go func() {
		done <- a.Send(b, func(self Domain, data any) {
			ok := b.Send(a, func(self Domain, data any) {}, "nested")
			innerOK.Store(ok)
		}, "outer")
	}()

	// Nothing else polls b, so drive its queue until the outer handler
	// (and the nested send it triggers) has run to completion.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		for {
			select {
			case <-stop:
				return
			default:
				b.Poll()
				time.Sleep(time.Millisecond)
			}
		}
	}()

	select {
	case ok := <-done:
		require.True(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out: handler-that-sends-back deadlocked")
	}
	require.True(t, innerOK.Load())
}

func waitWithTimeout(t *testing.T, wg *sync.WaitGroup, timeout time.Duration) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		t.Fatal("timed out waiting for goroutines; possible deadlock")
	}
}
