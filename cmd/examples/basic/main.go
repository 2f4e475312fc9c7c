package main

import (
	"fmt"
	"time"

	"github.com/comalice/actionkit"
)

func logStep(msg string) func() {
	return func() {
		fmt.Println(msg)
	}
}

// ---

func main() {
	kit := actionkit.New()

	clicked := false
	kit.Sequence().
		Callback(logStep("start")).
		Delay(time.Second, logStep("1s")).
		Parallel(func(p *actionkit.Parallel) {
			p.Delay(500 * time.Millisecond).DelayFrame(3)
		}).
		Callback(logStep("parallel done")).
		Condition(func() bool { return clicked }).
		Callback(logStep("finish")).
		Run(nil, actionkit.OnComplete(logStep("complete")))

	// A host would call Update once per rendered frame.
	const frame = 100 * time.Millisecond
	for i := 0; kit.Driver().Active(actionkit.PhaseUpdate) > 0; i++ {
		if i == 20 {
			fmt.Println("click")
			clicked = true
		}
		kit.Driver().Update(frame)
	}
}
