package interruptor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWaitQueue_EmptyAddRemove(t *testing.T) {
	var q waitQueue
	require.True(t, q.empty())

	a := &Interruptor{}
	b := &Interruptor{}
	c := &Interruptor{}

	q.add(a)
	q.add(b)
	q.add(c)
	require.False(t, q.empty())

	require.Same(t, a, q.remove())
	require.Same(t, b, q.remove())
	require.Same(t, c, q.remove())
	require.True(t, q.empty())
}

func TestWaitQueue_RemoveOnEmptyPanics(t *testing.T) {
	var q waitQueue
	require.Panics(t, func() { q.remove() })
}

func TestWaitQueue_CancelHead(t *testing.T) {
	var q waitQueue
	a, b, c := &Interruptor{}, &Interruptor{}, &Interruptor{}
	q.add(a)
	q.add(b)
	q.add(c)

	q.cancel(a)
	require.Same(t, b, q.remove())
	require.Same(t, c, q.remove())
	require.True(t, q.empty())
}

func TestWaitQueue_CancelMiddle(t *testing.T) {
	var q waitQueue
	a, b, c := &Interruptor{}, &Interruptor{}, &Interruptor{}
	q.add(a)
	q.add(b)
	q.add(c)

	q.cancel(b)
	require.Same(t, a, q.remove())
	require.Same(t, c, q.remove())
	require.True(t, q.empty())
}

func TestWaitQueue_CancelTail(t *testing.T) {
	var q waitQueue
	a, b, c := &Interruptor{}, &Interruptor{}, &Interruptor{}
	q.add(a)
	q.add(b)
	q.add(c)

	q.cancel(c)

	// tail must have been updated to b; adding again should append after b
	d := &Interruptor{}
	q.add(d)
	require.Same(t, a, q.remove())
	require.Same(t, b, q.remove())
	require.Same(t, d, q.remove())
	require.True(t, q.empty())
}

func TestWaitQueue_CancelOnlyElement(t *testing.T) {
	var q waitQueue
	a := &Interruptor{}
	q.add(a)
	q.cancel(a)
	require.True(t, q.empty())
}

func TestWaitQueue_CancelAbsentPanics(t *testing.T) {
	var q waitQueue
	a, b := &Interruptor{}, &Interruptor{}
	q.add(a)
	require.Panics(t, func() { q.cancel(b) })
}
