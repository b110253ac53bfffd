package chanutil

import "github.com/ormanbekov/channel"

// Merge combines multiple input channels into a single output channel
// (fan-in). The output channel is closed when every input is closed and
// drained. The order of values from different inputs is
// non-deterministic; values from any one input keep their order.
//
// Nil inputs are skipped. With no usable input the returned channel is
// closed immediately.
func Merge[T any](chs ...*channel.Channel[T]) *channel.Channel[T] {
	out := channel.New[T](0)

	valid := make([]*channel.Channel[T], 0, len(chs))
	for _, ch := range chs {
		if ch != nil {
			valid = append(valid, ch)
		}
	}

	if len(valid) == 0 {
		out.Close()
		return out
	}

	forward := func(v T) { out.Send(v) }
	sel := channel.Select(channel.On(valid[0], forward))
	for _, ch := range valid[1:] {
		sel = sel.With(channel.On(ch, forward))
	}

	go func() {
		defer out.Close()
		// Each Run completes one receive; false means every input is
		// closed and drained. The loop also ends once the consumer has
		// closed out.
		for sel.Run() && out.IsOpen() {
		}
	}()
	return out
}
