// Package channel provides a typed, bounded, FIFO channel as a first-class
// value, together with a multi-way receive ([Select]) over any number of
// such channels.
//
// Native Go channels are the right tool almost all of the time. This
// package exists for the cases where they fall short:
//
//   - A pending receive can be cancelled without disturbing the channel,
//     which is what makes a dynamic, heterogeneous select possible.
//   - A channel closed while it still holds buffered values keeps those
//     values; receivers drain them before observing the close.
//   - Close is idempotent and send-after-close reports failure instead of
//     panicking, so teardown never needs a recover.
//   - [Channel.CloseWhenEmpty] closes a channel as soon as its remaining
//     values have been consumed.
//
// The building blocks:
//
//   - [Channel]: bounded FIFO with blocking [Channel.Send] and
//     [Channel.Recv], iteration via [Channel.Range], and the close
//     semantics above.
//   - [Select], [On]: an immutable selector racing receives on several
//     channels of different element types; exactly one handler runs per
//     successful [Selector.Run].
//   - [Selector.WithDefault]: a non-blocking variant that falls through
//     to a default branch when no value is immediately available.
//   - [SendAfter], [After]: deferred sends driven by timers.
//
// The chanutil subpackage builds fan-in, broadcast and pipeline stages
// on top of these primitives.
//
// No operation returns an error; every outcome is encoded in the return
// values. The only panics are precondition violations such as a nil
// handler, and panics raised by user handlers themselves.
package channel
