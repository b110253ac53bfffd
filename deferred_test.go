package channel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendAfterDelivers(t *testing.T) {
	ch := New[string](1)
	SendAfter(ch, 5*time.Millisecond, "tick")

	v, ok := ch.Recv()
	require.True(t, ok)
	assert.Equal(t, "tick", v)
}

func TestSendAfterStop(t *testing.T) {
	ch := New[int](1)
	timer := SendAfter(ch, 20*time.Millisecond, 1)
	assert.True(t, timer.Stop())

	time.Sleep(50 * time.Millisecond)
	_, res := ch.tryRecv()
	assert.Equal(t, tryWouldBlock, res, "a stopped timer must not deliver")
}

func TestSendAfterClosedChannel(t *testing.T) {
	ch := New[int](1)
	SendAfter(ch, 5*time.Millisecond, 1)
	ch.Close()

	// The deferred send fires against a closed channel and is dropped
	// without panicking.
	time.Sleep(30 * time.Millisecond)
	_, ok := ch.Recv()
	assert.False(t, ok)
}

func TestSendAfterNilChannelPanics(t *testing.T) {
	assert.Panics(t, func() { SendAfter[int](nil, time.Millisecond, 1) })
}

func TestAfter(t *testing.T) {
	start := time.Now()
	ch := After(10 * time.Millisecond)

	v, ok := ch.Recv()
	require.True(t, ok)
	assert.False(t, v.Before(start))

	_, ok = ch.Recv()
	assert.False(t, ok, "the channel closes after its single value")
}

func TestAfterInSelect(t *testing.T) {
	data := New[int](0)
	timeout := After(10 * time.Millisecond)

	timedOut := false
	sel := Select(
		On(data, func(int) { t.Error("no data expected") }),
		On(timeout, func(time.Time) { timedOut = true }),
	)
	assert.True(t, sel.Run())
	assert.True(t, timedOut)
	data.Close()
}
