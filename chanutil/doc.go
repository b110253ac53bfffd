// Package chanutil builds pipeline stages on top of the channel package:
// fan-in, broadcast, transformation and draining, all expressed against
// [channel.Channel] values rather than native Go channels.
//
//   - [Merge]: fan-in that combines several channels into one, built on
//     the channel package's own select.
//   - [Tee]: broadcasts every value to n output channels.
//   - [Map] and [Filter]: transformation stages driven by Range.
//   - [Drain]: discards remaining values to unblock producers.
//   - [Collect]: receives everything into a slice.
//   - [FromSlice]: a channel preloaded with a slice that closes itself
//     once drained.
//
// Every function that spawns a goroutine ties its lifetime to its input
// channels: the goroutine exits once the inputs are closed and drained,
// or once all of its outputs have been closed by their consumers.
package chanutil
