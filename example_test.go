package channel_test

import (
	"fmt"
	"time"

	"github.com/ormanbekov/channel"
)

func ExampleChannel() {
	ch := channel.New[int](0)

	go func() {
		for i := 1; i <= 3; i++ {
			ch.Send(i)
		}
		ch.Close()
	}()

	for {
		v, ok := ch.Recv()
		if !ok {
			break
		}
		fmt.Println(v)
	}
	// Output:
	// 1
	// 2
	// 3
}

func ExampleChannel_Range() {
	ch := channel.New[string](3)
	ch.Send("a")
	ch.Send("b")
	ch.Send("c")
	ch.Close()

	// Buffered values survive the close and drain in order.
	ch.Range(func(s string) bool {
		fmt.Println(s)
		return true
	})
	// Output:
	// a
	// b
	// c
}

func ExampleChannel_CloseWhenEmpty() {
	ch := channel.New[int](2)
	ch.Send(1)
	ch.Send(2)
	ch.CloseWhenEmpty()

	fmt.Println("open before drain:", ch.IsOpen())
	ch.Range(func(v int) bool {
		fmt.Println(v)
		return true
	})
	fmt.Println("open after drain:", ch.IsOpen())
	// Output:
	// open before drain: true
	// 1
	// 2
	// open after drain: false
}

func ExampleSelector_Run() {
	numbers := channel.New[int](1)
	words := channel.New[string](1)
	words.Send("hello")

	sel := channel.Select(
		channel.On(numbers, func(v int) { fmt.Println("number:", v) }),
		channel.On(words, func(v string) { fmt.Println("word:", v) }),
	)
	fmt.Println("selected:", sel.Run())
	// Output:
	// word: hello
	// selected: true
}

func ExampleSelector_WithDefault() {
	numbers := channel.New[int](1)
	words := channel.New[string](1)

	sel := channel.Select(
		channel.On(numbers, func(v int) { fmt.Println("number:", v) }),
		channel.On(words, func(v string) { fmt.Println("word:", v) }),
	).WithDefault(func() { fmt.Println("nothing ready") })

	sel.Run()
	// Output:
	// nothing ready
}

func ExampleSendAfter() {
	ch := channel.New[string](1)
	channel.SendAfter(ch, 5*time.Millisecond, "delayed")

	v, _ := ch.Recv()
	fmt.Println(v)
	// Output:
	// delayed
}
