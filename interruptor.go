package interruptor

import (
	"sync"
)

// Interruptor is a domain's mailbox and wait machinery: the per-domain
// state this package revolves around. One is created per domain and
// lives for the domain's lifetime.
//
// Every mutable field below is protected by lock except next, which is
// owned transiently by whichever queue's lock is currently held (see
// waitQueue), and pollWord/currentInterrupt.completed, which are
// accessed via atomics.
type Interruptor struct {
	pollWord *PollWord

	lock sync.Mutex
	cond sync.Cond

	running    bool
	generation int64

	// interrupts is the FIFO of other interruptors wishing to deliver a
	// request to this one.
	interrupts waitQueue

	// joiners is the FIFO of other interruptors waiting for this one to
	// terminate.
	joiners waitQueue

	// joinTargetGeneration is written by stop() when waking a joiner, and
	// read by that joiner's Join loop to detect this interruptor ended.
	joinTargetGeneration int64

	// currentInterrupt is the single outbound interrupt record this
	// interruptor fills when acting as a sender. A domain is
	// single-threaded and a send is synchronous, so at most one outbound
	// send is ever in flight, and one record per interruptor suffices.
	currentInterrupt interruptRecord

	// next links this interruptor into whichever other interruptor's
	// interrupts or joiners queue currently holds it. Touched only while
	// that owner's lock is held (invariant: on at most one external
	// queue at a time).
	next *Interruptor

	domain Domain

	logger         Logger
	spinIterations int
	hooks          *interruptorTestHooks
}

// New constructs an Interruptor bound to pollWord and ready for Start.
// domain is the identity passed as the first argument to every Handler
// this interruptor ever runs; it may be nil if the caller has no use for
// it (e.g. in tests).
func New(pollWord *PollWord, domain Domain, opts ...Option) *Interruptor {
	cfg := resolveOptions(opts)
	s := &Interruptor{
		pollWord:       pollWord,
		domain:         domain,
		logger:         cfg.logger,
		spinIterations: cfg.spinIterations,
		hooks:          cfg.hooks,
	}
	s.cond.L = &s.lock
	return s
}

// Start marks s as accepting interrupts. Must be called by the owning
// domain before any other domain can address it. Panics with
// InvariantError if s.interrupts is non-empty or s is already running —
// both are protocol violations, not recoverable conditions.
func (s *Interruptor) Start() {
	s.lock.Lock()
	defer s.lock.Unlock()

	if !s.interrupts.empty() {
		panicInvariant("Start", errAlreadyQueued)
	}
	if s.running {
		panicInvariant("Start", ErrAlreadyRunning)
	}
	s.running = true
	s.logf(LevelInfo, "lifecycle", "interruptor started")
}

// Stop marks s as no longer accepting interrupts, drains any interrupts
// that arrive concurrently with the drain itself (a handler may call
// Send back into s), advances the generation, and wakes every joiner
// parked on s.
//
// Stop repeats the drain pass until one full pass handles zero
// interrupts. Each pass re-checks the queue after every handler, so an
// interrupt enqueued on s while a handler runs is handled within that
// same pass, and s.lock stays held from the end of a pass until running
// is cleared.
func (s *Interruptor) Stop() {
	s.lock.Lock()

	for s.handleIncomingLocked() != 0 {
	}
	s.running = false
	s.generation++
	gen := s.generation
	s.logf(LevelInfo, "lifecycle", "interruptor stopped, generation=%d", gen)

	// Hand off joiners one at a time: never hold two interruptor locks
	// simultaneously, so each wake drops s.lock, takes joiner.lock,
	// publishes the generation, broadcasts, and re-takes s.lock.
	for !s.joiners.empty() {
		joiner := s.joiners.remove()
		s.lock.Unlock()

		joiner.lock.Lock()
		joiner.joinTargetGeneration = gen
		joiner.cond.Broadcast()
		joiner.lock.Unlock()

		s.lock.Lock()
	}

	s.lock.Unlock()
}

// Generation returns the interruptor's current lifecycle generation,
// incremented exactly once per Stop.
func (s *Interruptor) Generation() int64 {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.generation
}

// Running reports whether s is currently accepting interrupts.
func (s *Interruptor) Running() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.running
}
