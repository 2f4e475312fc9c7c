// Package benchmarks provides performance benchmarks for driver throughput.
package benchmarks

import (
	"fmt"
	"testing"
	"time"

	"github.com/comalice/actionkit"
	"github.com/comalice/actionkit/builder"
	"github.com/comalice/actionkit/internal/primitives"
)

// BenchmarkDriverUpdate ticks n never-finishing actions per Update.
func BenchmarkDriverUpdate(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("actions=%d", n), func(b *testing.B) {
			kit := actionkit.New()
			for i := 0; i < n; i++ {
				kit.Run(kit.Condition(func() bool { return false }), nil)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				kit.Driver().Update(time.Millisecond)
			}
			b.StopTimer()
			kit.Driver().Quit()
		})
	}
}

// BenchmarkScheduleComplete schedules a one-frame action and runs it to
// completion, recycling it through the pool each time.
func BenchmarkScheduleComplete(b *testing.B) {
	kit := actionkit.New()
	d := kit.Driver()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		kit.Run(kit.NextFrame(nil), nil)
		d.Update(time.Millisecond)
	}
}

func BenchmarkCompiledScripts(b *testing.B) {
	cases := []struct {
		name string
		gen  func(int) primitives.Script
	}{
		{"flat", GenFlatScript},
		{"deep", GenDeepScript},
		{"wide", GenWideScript},
	}
	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			var ticks int
			reg := TickRegistry(&ticks)
			script := tc.gen(20)
			kit := actionkit.New()
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				prog, err := builder.Compile(kit, reg, script)
				if err != nil {
					b.Fatal(err)
				}
				runToEnd(prog.Root)
			}
			b.ReportMetric(float64(ticks)/float64(b.N), "callbacks/op")
		})
	}
}
