package interruptor

// interruptorTestHooks provides injection points for deterministic
// interleaving in race-sensitive tests (mutual send, concurrent join),
// mirroring eventloop's loopTestHooks.
type interruptorTestHooks struct {
	// PreWait is called immediately before every cond.Wait() call, in
	// Send, YieldUntilInterrupted, and Join.
	PreWait func()

	// OnHandleIncoming is called once per interrupt handled, just before
	// the handler itself runs.
	OnHandleIncoming func()
}
