package interruptor

// handleIncomingLocked drains every interrupt currently queued for s,
// running each handler on this goroutine. Caller must hold s.lock; it is
// released around each handler invocation and re-taken before the next
// iteration, which is what lets a handler call Send back into s (or
// anywhere else) without deadlocking.
//
// Returns the number of handlers invoked.
func (s *Interruptor) handleIncomingLocked() int {
	if !s.running {
		panicInvariant("handleIncoming", errNotRunning)
	}

	handled := 0
	for !s.interrupts.empty() {
		sender := s.interrupts.remove()
		req := &sender.currentInterrupt

		// Drop s.lock while the handler runs: handlers may themselves
		// call Send, which would otherwise self-deadlock, and an
		// arbitrary-duration handler must never be run under a held
		// interruptor lock.
		s.lock.Unlock()

		if s.hooks != nil && s.hooks.OnHandleIncoming != nil {
			s.hooks.OnHandleIncoming()
		}

		req.handler(s.domain, req.data)
		req.markCompleted()

		// Lock sender.lock before broadcasting so we never broadcast
		// between the sender's completed check and its cond wait.
		sender.lock.Lock()
		sender.cond.Broadcast()
		sender.lock.Unlock()

		s.lock.Lock()
		handled++
	}
	return handled
}

// Poll drains every interrupt currently queued for s, running each
// handler on the calling goroutine, and returns without blocking.
func (s *Interruptor) Poll() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.handleIncomingLocked()
}

// YieldUntilInterrupted blocks until at least one interrupt has been
// handled, draining repeatedly and condition-waiting in between. Used by
// an idle domain that has nothing else to do but remain responsive to
// interrupts.
func (s *Interruptor) YieldUntilInterrupted() {
	s.lock.Lock()
	defer s.lock.Unlock()

	for s.handleIncomingLocked() == 0 {
		if s.hooks != nil && s.hooks.PreWait != nil {
			s.hooks.PreWait()
		}
		s.cond.Wait()
	}
}
