package chanutil

import "github.com/ormanbekov/channel"

// Map transforms values from in by applying fn and sends the results to
// the returned channel. The output channel is closed when in is closed
// and drained, or when the output itself is closed by its consumer.
//
// If in is nil, returns a closed channel immediately.
func Map[T, U any](in *channel.Channel[T], fn func(T) U) *channel.Channel[U] {
	out := channel.New[U](0)

	if in == nil {
		out.Close()
		return out
	}

	go func() {
		defer out.Close()
		// Send reports false once out is closed, which breaks the range.
		in.Range(func(v T) bool {
			return out.Send(fn(v))
		})
	}()
	return out
}

// Filter passes values from in to the returned channel only if fn
// returns true. The output channel is closed when in is closed and
// drained, or when the output itself is closed by its consumer.
//
// If in is nil, returns a closed channel immediately.
func Filter[T any](in *channel.Channel[T], fn func(T) bool) *channel.Channel[T] {
	out := channel.New[T](0)

	if in == nil {
		out.Close()
		return out
	}

	go func() {
		defer out.Close()
		in.Range(func(v T) bool {
			if !fn(v) {
				return true
			}
			return out.Send(v)
		})
	}()
	return out
}
