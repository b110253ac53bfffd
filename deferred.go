package channel

import "time"

// SendTimer is the handle to a deferred send created by [SendAfter].
type SendTimer struct {
	t *time.Timer
}

// Stop cancels the deferred send. It returns true if the send had not
// fired yet. Stopping an already-fired timer is a no-op.
func (st *SendTimer) Stop() bool {
	return st.t.Stop()
}

// SendAfter delivers v to ch once d has elapsed. The send runs on the
// timer's goroutine and follows the usual contract: if ch has been
// closed in the meantime the value is quietly dropped, and closing ch
// while the timer is pending is safe.
// Panics if ch is nil.
func SendAfter[T any](ch *Channel[T], d time.Duration, v T) *SendTimer {
	if ch == nil {
		panic("channel: SendAfter requires a non-nil channel")
	}
	return &SendTimer{t: time.AfterFunc(d, func() { ch.Send(v) })}
}

// After returns a channel that carries the time at which d elapsed and
// is then closed. The channel is buffered, so the value is delivered
// even if nobody is receiving when the timer fires.
func After(d time.Duration) *Channel[time.Time] {
	ch := New[time.Time](1)
	time.AfterFunc(d, func() {
		ch.Send(time.Now())
		ch.Close()
	})
	return ch
}
