package channel

// Case binds one channel to the handler that runs if that channel's
// receive wins the select. Build cases with [On]; a Case is inert until
// given to [Select] or [Selector.With].
type Case struct {
	runner caseRunner
}

// caseRunner erases the case's element type. runSync backs the
// with-default sweep, runAsync the blocking race.
type caseRunner interface {
	runSync() caseResult
	runAsync(results *Channel[func()], g *selectGroup)
}

type caseResult int

const (
	caseValueRead caseResult = iota
	caseChannelClosed
	caseNoValue
)

// On creates a select case that receives from ch and passes the received
// value to fn. The handler runs on the goroutine that called Run, never
// concurrently with other handlers of the same Run.
// Panics if ch or fn is nil.
func On[T any](ch *Channel[T], fn func(T)) Case {
	if ch == nil {
		panic("channel: On requires a non-nil channel")
	}
	if fn == nil {
		panic("channel: On requires a non-nil handler")
	}
	return Case{runner: &channelCase[T]{ch: ch, fn: fn}}
}

type channelCase[T any] struct {
	ch *Channel[T]
	fn func(T)
}

func (cc *channelCase[T]) runSync() caseResult {
	v, res := cc.ch.tryRecv()
	switch res {
	case tryClosed:
		return caseChannelClosed
	case tryWouldBlock:
		return caseNoValue
	}
	cc.fn(v)
	return caseValueRead
}

// runAsync enqueues the pending receive synchronously, so every case is
// registered by the time Run starts draining results, then waits on a
// worker goroutine. The worker never runs the handler itself: it reports
// a thunk for the orchestrator, or nil if the receive came back empty.
func (cc *channelCase[T]) runAsync(results *Channel[func()], g *selectGroup) {
	req := cc.ch.recvRequest(g)
	go func() {
		v, ok := req.wait()
		if !ok {
			results.Send(nil)
			return
		}
		results.Send(func() { cc.fn(v) })
	}()
}

// Selector is a prepared multi-way receive with no default branch.
// Selectors are immutable values: [Selector.With] and
// [Selector.WithDefault] return new selectors and a Selector may be
// reused and run concurrently.
type Selector struct {
	cases []Case
}

// Select creates a selector over the given cases.
func Select(first Case, rest ...Case) Selector {
	cases := make([]Case, 0, len(rest)+1)
	cases = append(cases, first)
	cases = append(cases, rest...)
	return Selector{cases: cases}
}

// With returns a new selector with c appended. The receiver is unchanged.
func (s Selector) With(c Case) Selector {
	cases := make([]Case, len(s.cases), len(s.cases)+1)
	copy(cases, s.cases)
	return Selector{cases: append(cases, c)}
}

// WithDefault returns a selector that runs fn when no case has a value
// immediately available. The receiver is unchanged.
// Panics if fn is nil.
func (s Selector) WithDefault(fn func()) DefaultSelector {
	if fn == nil {
		panic("channel: WithDefault requires a non-nil handler")
	}
	cases := make([]Case, len(s.cases))
	copy(cases, s.cases)
	return DefaultSelector{cases: cases, defaultFn: fn}
}

// Run blocks until one case's channel yields a value, invokes that
// case's handler on the calling goroutine, and returns true. Once every
// channel is closed and drained, Run returns false without invoking any
// handler.
//
// Exactly one handler runs per successful Run. When several channels are
// ready at once the winner is whichever pending receive claims the
// arbitration token first.
func (s Selector) Run() bool {
	g := &selectGroup{}
	results := New[func()](len(s.cases))
	for _, c := range s.cases {
		c.runner.runAsync(results, g)
	}
	// One result per case at most. A winning thunk ends the select; the
	// losers' nil results arrive later and land in the buffer unread.
	for range s.cases {
		thunk, _ := results.Recv()
		if thunk != nil {
			// Sweep again before handing control to the handler: the
			// winner's own sweep may have run before every case was
			// registered.
			g.cancel()
			thunk()
			return true
		}
	}
	return false
}

// DefaultSelector is a prepared multi-way receive with a default branch.
type DefaultSelector struct {
	cases     []Case
	defaultFn func()
}

// Run sweeps the cases in declaration order without blocking. The first
// case with a value available has its handler invoked, and Run returns
// true. If every channel is closed and empty, Run returns false and the
// default does not run. Otherwise the default handler runs and Run
// returns true.
func (s DefaultSelector) Run() bool {
	allClosed := true
	for _, c := range s.cases {
		switch c.runner.runSync() {
		case caseValueRead:
			return true
		case caseNoValue:
			allClosed = false
		}
	}
	if allClosed {
		return false
	}
	s.defaultFn()
	return true
}
