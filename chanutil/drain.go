package chanutil

import "github.com/ormanbekov/channel"

// Drain reads and discards values from ch until it is closed and empty.
// Use this to unblock producers that are sending during shutdown.
func Drain[T any](ch *channel.Channel[T]) {
	ch.Range(func(T) bool { return true })
}

// Collect receives every value from ch into a slice, returning once the
// channel is closed and drained.
func Collect[T any](ch *channel.Channel[T]) []T {
	var out []T
	ch.Range(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// FromSlice returns a channel preloaded with vs that closes itself once
// all of them have been received.
func FromSlice[T any](vs []T) *channel.Channel[T] {
	ch := channel.New[T](len(vs))
	for _, v := range vs {
		ch.Send(v)
	}
	ch.CloseWhenEmpty()
	return ch
}
