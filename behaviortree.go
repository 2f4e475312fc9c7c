package actionkit

import (
	"fmt"
	"time"

	bt "github.com/joeycumines/go-behaviortree"
)

// AsNode adapts a to a go-behaviortree leaf. Each tick of the node ticks a
// with the delta reported by clock (zero when clock is nil) and reports
// Running until a finishes, then Success. A panic inside the tick is
// recovered and reported as Failure.
func AsNode(a Action, clock func() time.Duration) bt.Node {
	return bt.New(func([]bt.Node) (status bt.Status, err error) {
		defer func() {
			if r := recover(); r != nil {
				status = bt.Failure
				err = fmt.Errorf("actionkit: %s tick panicked: %v", a.Kind(), r)
			}
		}()
		var dt time.Duration
		if clock != nil {
			dt = clock()
		}
		if a.Tick(dt) {
			return bt.Success, nil
		}
		return bt.Running, nil
	})
}
