package interruptor

// waitQueue is an intrusive singly-linked FIFO of interruptors, linked
// through each interruptor's own next field. tail is only meaningful
// while the queue is non-empty. All operations assume the caller already
// holds the lock that owns this queue (the owning Interruptor's lock).
//
// This mirrors the original runtime's struct waitq / waitq_init /
// waitq_empty / waitq_add / waitq_remove exactly, including the
// assert-on-empty-remove and assert-on-absent-cancel behavior (raised
// here as InvariantError panics rather than silently no-op'ing).
type waitQueue struct {
	head *Interruptor
	tail *Interruptor
}

func (q *waitQueue) empty() bool {
	return q.head == nil
}

// add appends s to the tail of the queue.
func (q *waitQueue) add(s *Interruptor) {
	s.next = nil
	if q.empty() {
		q.head = s
		q.tail = s
		return
	}
	q.tail.next = s
	q.tail = s
}

// remove pops and returns the head of the queue. Panics if the queue is
// empty; callers must check empty() first.
func (q *waitQueue) remove() *Interruptor {
	if q.empty() {
		panicInvariant("waitQueue.remove", errQueueEmpty)
	}
	s := q.head
	q.head = s.next
	s.next = nil
	if q.head == nil {
		q.tail = nil
	}
	return s
}

// cancel removes s from the interior of the queue. Panics if s is not
// present, per spec.md's invariant-violation taxonomy ("sender not on
// expected queue during cancel").
func (q *waitQueue) cancel(s *Interruptor) {
	if q.head == s {
		q.head = s.next
		if q.head == nil {
			q.tail = nil
		}
		s.next = nil
		return
	}
	for p := q.head; p != nil; p = p.next {
		if p.next == s {
			p.next = s.next
			if q.tail == s {
				q.tail = p
			}
			s.next = nil
			return
		}
	}
	panicInvariant("waitQueue.cancel", errNotQueued)
}
