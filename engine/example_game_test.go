package engine_test

import (
	"fmt"
	"time"

	"github.com/plus3/blockfall/engine"
)

func Example() {
	game := engine.New(engine.Config{
		Rotation: engine.KickRightLeftUp,
		Random:   engine.NewSequence(engine.I, engine.O, engine.T),
		Listener: engine.ListenerFunc(func(e engine.Event) {
			fmt.Println("event:", e.Kind)
		}),
	})
	game.Start()

	game.Rotate()
	game.MoveLeft()
	fmt.Println("dropped", game.HardDrop(), "rows")

	// 16ms frames; the second piece falls one row per second at level 1
	for range 63 {
		game.Tick(16 * time.Millisecond)
	}

	snap := game.Snapshot()
	fmt.Println("score:", snap.Score)
	fmt.Println("active:", snap.Active.Type, snap.Active.Y)
	fmt.Println("next:", snap.Next.Type)

	// Output:
	// event: reset
	// event: locked
	// dropped 16 rows
	// score: 32
	// active: O 1
	// next: T
}

func ExampleGame_TogglePause() {
	game := engine.New(engine.Config{Random: engine.NewSequence(engine.L)})
	game.Start()

	fmt.Println(game.TogglePause(), game.Phase())
	fmt.Println(game.MoveRight(), game.Tick(time.Minute))
	fmt.Println(game.TogglePause(), game.Phase())

	// Output:
	// true paused
	// false false
	// false running
}

func ExampleParseRotationPolicy() {
	policy, err := engine.ParseRotationPolicy("horizontal")
	if err != nil {
		panic(err)
	}
	fmt.Println(policy, policy.Offsets)

	// Output:
	// horizontal [{-1 0} {1 0} {-2 0} {2 0}]
}
