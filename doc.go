// Package interruptor implements the synchronous cross-thread signalling
// primitive used by a multi-domain runtime to run code on behalf of
// another domain: requesting a stop-the-world phase, promoting a
// young-generation object out of another domain's minor heap, sampling
// statistics, or coordinating shutdown.
//
// # Architecture
//
// Each domain owns exactly one [Interruptor], bound for its lifetime to
// an atomic [PollWord] the domain's mutator polls on every allocation
// check. Sending an interrupt ([Interruptor.Send]) enqueues a one-shot
// [Handler] on the target's wait queue, flips the target's poll word to
// the sentinel value, then spins briefly before falling back to a
// condition-variable wait — all while continuing to drain its own
// inbound queue, so two domains interrupting each other simultaneously
// cannot deadlock. [Interruptor.Join] reuses the same machinery to park
// on a target's termination, keyed by a generation counter so a reused
// identity can never be mistaken for the original.
//
// # Thread safety
//
// Every exported method is safe to call from any goroutine, except that
// an [Interruptor] carries a single outbound request record, so at most
// one [Interruptor.Send] on it may be in flight at a time. Each
// [Interruptor] has its own lock; there is no global lock, and the
// central invariant that makes this safe without lock ordering is that
// no code path ever holds two interruptors' locks at once (see
// [Interruptor.Send] and [Interruptor.Join]).
//
// # Usage
//
//	a := interruptor.New(interruptor.NewPollWord(youngLimit), domainA)
//	b := interruptor.New(interruptor.NewPollWord(youngLimit), domainB)
//	a.Start()
//	b.Start()
//
//	done := make(chan bool, 1)
//	go func() {
//	    // Send blocks until b has run the handler.
//	    done <- a.Send(b, func(self interruptor.Domain, data any) {
//	        fmt.Println("running on b's goroutine", data)
//	    }, 42)
//	}()
//
//	b.YieldUntilInterrupted() // waits for and runs the queued handler
//	ok := <-done
package interruptor
