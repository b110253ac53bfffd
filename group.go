package channel

import (
	"sync"
	"sync/atomic"
)

// selectGroup is the arbitration token shared by the pending receives of
// one Selector.Run. The first receive the matchers offer a value to
// claims the token; every later attempt fails, making those receives
// non-selectable, and the losers' pending receives are cancelled on
// their channels.
type selectGroup struct {
	// winner is single-assignment. claim runs inside a channel's
	// matcher, under that channel's mutex, so it must stay lock-free.
	winner atomic.Pointer[reqMarker]

	mu      sync.Mutex
	members []groupMember
}

type groupMember struct {
	marker *reqMarker
	cancel func()
}

// add registers a pending receive and the closure that cancels it on its
// channel. Must be called before the channel mutex is taken: the cancel
// sweep holds g.mu while acquiring channel mutexes, so the reverse order
// would invert.
func (g *selectGroup) add(m *reqMarker, cancel func()) {
	g.mu.Lock()
	g.members = append(g.members, groupMember{marker: m, cancel: cancel})
	g.mu.Unlock()
}

// claim attempts to assign the token to m, electing it the winning
// branch. Winning triggers cancellation of every other member's pending
// receive on a separate goroutine; the matcher that called claim still
// holds its channel mutex and the sweep needs to take channel mutexes of
// its own.
func (g *selectGroup) claim(m *reqMarker) bool {
	if !g.winner.CompareAndSwap(nil, m) {
		return g.winner.Load() == m
	}
	go g.cancelAllExcept(m)
	return true
}

// cancel sweeps every member that is not the winner. Idempotent:
// cancelling a completed or already-removed receive is a no-op on its
// channel.
func (g *selectGroup) cancel() {
	g.cancelAllExcept(g.winner.Load())
}

func (g *selectGroup) cancelAllExcept(m *reqMarker) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, member := range g.members {
		if member.marker != m {
			member.cancel()
		}
	}
}
