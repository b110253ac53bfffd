package chanutil

import "github.com/ormanbekov/channel"

// Tee broadcasts every value from in to n independent output channels.
// The outputs are closed when in is closed and drained. An output whose
// consumer closes it early is skipped for the rest of the broadcast; the
// broadcast stops entirely once every output is closed.
//
// Warning: a slow consumer blocks the broadcast to all others. Give the
// outputs buffered consumers if that matters.
// Tee panics if n is not positive.
func Tee[T any](in *channel.Channel[T], n int) []*channel.Channel[T] {
	if n <= 0 {
		panic("chanutil: Tee requires n > 0")
	}

	outs := make([]*channel.Channel[T], n)
	for i := range outs {
		outs[i] = channel.New[T](0)
	}

	go func() {
		defer func() {
			for _, o := range outs {
				o.Close()
			}
		}()
		in.Range(func(v T) bool {
			delivered := false
			for _, o := range outs {
				if o.Send(v) {
					delivered = true
				}
			}
			return delivered
		})
	}()
	return outs
}
