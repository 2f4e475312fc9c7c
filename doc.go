// Package actionkit composes time- and condition-based behaviors out of small
// actions and steps them forward from a host frame loop.
//
// # Actions
//
// Leaves do one thing: Callback runs a function, Condition waits for a
// predicate, Delay waits for accumulated time, DelayFrame waits for a number
// of ticks. Composites arrange other actions: Sequence runs children in
// order, Parallel runs them together and finishes when all have finished,
// Repeat reruns one child a fixed number of times or forever.
//
// Every action is stepped with Tick(dt), which returns true once it has
// finished. Nothing blocks: waiting is expressed as returning false and being
// ticked again next frame.
//
// # Example
//
//	kit := actionkit.New()
//	scope := actionkit.NewScope()
//
//	kit.Sequence().
//		Callback(func() { fmt.Println("start") }).
//		Delay(time.Second).
//		Parallel(func(p *actionkit.Parallel) {
//			p.Delay(time.Second, func() { fmt.Println("1s") }).
//				Delay(2*time.Second, func() { fmt.Println("2s") })
//		}).
//		Condition(ready).
//		Run(scope, actionkit.OnComplete(func() { fmt.Println("done") }))
//
//	for frame := range frames {
//		kit.Driver().Update(frame.Delta)
//	}
//
// Closing scope cancels the sequence without running the completion callback.
//
// # Pooling
//
// Actions built through a Kit come from its Pool and return there when
// released. The Driver releases top-level actions when they finish or are
// cancelled, and composites release the children they own. An action must
// not be used after release; doing so panics with an *Error wrapping
// ErrReleased, and releasing twice panics with ErrDoubleRelease.
//
// # Threading
//
// Kits, pools, drivers and actions are single-threaded by design. Drive them
// from one goroutine; package realtime provides a loop that does so and a
// Post method for handing work over from other goroutines.
package actionkit
