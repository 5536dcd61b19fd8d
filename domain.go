package interruptor

// Domain is the identity of the execution context an [Interruptor] binds
// to. The concrete type is owned by the surrounding runtime (the domain
// structure, GC, and interpreter are explicitly out of scope for this
// package — see spec.md §1); interruptor only ever passes it through to
// a [Handler], never inspects it.
type Domain any

// Handler is an interrupt callback. It runs on the target's own thread
// (goroutine), never on the sender's, in response to a delivered
// interrupt. self is the target domain's own identity; data is the
// opaque payload supplied to [Interruptor.Send].
//
// Handlers are expected to be bounded and non-blocking: a handler that
// blocks indefinitely stalls every sender queued behind it.
type Handler func(self Domain, data any)
