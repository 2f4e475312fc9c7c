// Package realtime runs an actionkit Driver from its own goroutine at a fixed
// frame rate.
//
// Each frame runs, in order:
//  1. Calls handed over with Post, highest priority first, FIFO within a priority
//  2. Zero or more FixedUpdate passes drawn from a fixed-step accumulator
//  3. Update
//  4. LateUpdate
//  5. GUI
//
// # Example Usage
//
//	kit := actionkit.New()
//	loop := realtime.NewLoop(kit.Driver(), realtime.Config{
//		TickRate: 16667 * time.Microsecond, // 60 FPS
//	})
//	loop.Start(ctx)
//	defer loop.Stop()
//
//	loop.Post(func() {
//		kit.Sequence().
//			Delay(time.Second, func() { fmt.Println("one second later") }).
//			Run(loop.Owner(reqCtx))
//	})
//
// # Threading
//
// The driver and every action on it belong to the loop goroutine. Post and
// PostWithPriority are the only methods safe to call from other goroutines
// while the loop is running; build and schedule actions inside a posted
// call. Owner returns a scope that closes on the loop goroutine when its
// context is done, so cancelling a request context cancels the actions bound
// to it.
//
// # Fixed Step
//
// FixedUpdate runs once per FixedStep of accumulated frame time, at most
// MaxFixedSteps times per frame. When a frame falls further behind than that
// the backlog is dropped rather than replayed.
//
// # Determinism
//
// Step runs exactly one frame on the calling goroutine with the given delta.
// Driving a Loop only through Step, without Start, replays identically for
// the same sequence of deltas and posts.
package realtime
