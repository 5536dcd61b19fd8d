package interruptor

import "runtime"

// defaultSpinIterations is the number of acquire-load checks Send
// performs before falling back to a condition wait, with a goroutine
// yield between each. Interrupt handlers are often fast, so a short spin
// avoids the latency of parking on a cond var in the common case, the
// same tradeoff the original runtime's send_interrupt makes with its
// 1000-iteration cpu_relax spin.
const defaultSpinIterations = 1000

// Send delivers an interrupt to target: handler will run on target's own
// goroutine, the next time target polls (via [Interruptor.Poll],
// [Interruptor.YieldUntilInterrupted], or another Send's own incoming
// drain), receiving data as its opaque argument.
//
// Send blocks until either target was not running (returns false
// immediately) or handler has run to completion and signalled self
// (returns true). While self waits for its own request to complete, it
// continues to service its own incoming interrupts — this is what keeps
// two domains that interrupt each other simultaneously from deadlocking.
//
// Never hold two interruptor locks simultaneously, and never hold one
// across a handler invocation of unbounded duration: both rules are
// enforced here and in handleIncomingLocked, not left to the caller.
func (s *Interruptor) Send(target *Interruptor, handler Handler, data any) bool {
	req := &s.currentInterrupt

	target.lock.Lock()
	if !target.running {
		target.lock.Unlock()
		s.logf(LevelDebug, "send", "target not running, send aborted")
		return false
	}

	req.reset(handler, data)
	target.interrupts.add(s)

	// Broadcast while still holding target.lock: the target may already
	// be parked in YieldUntilInterrupted, and broadcasting under its own
	// lock (rather than after releasing it) is what the original runtime
	// does, and it is always correct regardless of which side of the
	// unlock the broadcast happens to fall on.
	target.cond.Broadcast()
	target.lock.Unlock()

	// Release-store the sentinel: this is the fast-path signal a running
	// target's mutator observes on its next allocation check, with no
	// system call and no lock involved.
	target.pollWord.MarkInterruptPending()

	spinIterations := s.spinIterations
	if spinIterations <= 0 {
		spinIterations = defaultSpinIterations
	}

	// Spin phase: often cheaper than parking, since interrupt handlers
	// are typically fast.
	for i := 0; i < spinIterations; i++ {
		if req.isCompleted() {
			s.logf(LevelDebug, "send", "completed during spin phase")
			return true
		}
		runtime.Gosched()
	}

	// Wait phase: block on our own lock, but keep draining our own
	// inbox between waits, so an incoming interrupt from target (or
	// anyone else) cannot be starved by this wait.
	s.lock.Lock()
	for {
		s.handleIncomingLocked()
		if req.isCompleted() {
			break
		}
		if s.hooks != nil && s.hooks.PreWait != nil {
			s.hooks.PreWait()
		}
		s.cond.Wait()
	}
	s.lock.Unlock()

	s.logf(LevelDebug, "send", "completed during wait phase")
	return true
}
