package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/comalice/actionkit"
	"github.com/comalice/actionkit/internal/core"
	"github.com/comalice/actionkit/internal/extensibility"
	"github.com/comalice/actionkit/internal/primitives"
	"github.com/comalice/actionkit/internal/production"
	"github.com/comalice/actionkit/realtime"
)

const trafficScript = `
id: traffic-light
root:
  kind: repeat
  count: 3
  children:
    - kind: callback
      callback: red
    - kind: delay
      duration: 600ms
    - kind: callback
      callback: green
    - kind: condition
      condition: cars < 1
    - kind: callback
      callback: yellow
    - kind: delay_frame
      frames: 10
`

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	script, err := loadScript()
	if err != nil {
		return err
	}

	dir := filepath.Join(os.TempDir(), "actionkit-demo")
	persister, err := production.NewJSONPersister(dir)
	if err != nil {
		return err
	}
	if err := persister.Save(context.Background(), script); err != nil {
		return err
	}
	logger.Info("script saved", "dir", dir, "version", primitives.ComputeVersion(&script))

	published := make(chan actionkit.Lifecycle, 16)
	publisher := production.NewChannelPublisher(published)
	defer publisher.Close()

	kit := actionkit.New(
		actionkit.WithLogger(logger),
		actionkit.WithPublisher(production.MultiPublisher{publisher, production.LogPublisher{Logger: logger}}),
	)

	bb := primitives.NewBlackboard()
	bb.Set("cars", 3)
	reg := core.NewRegistry()
	for _, light := range []string{"red", "green", "yellow"} {
		if err := reg.RegisterCallback(light, func(bb *primitives.Blackboard) error {
			v, _ := bb.Get("cars")
			fmt.Printf("light: %-6s cars waiting: %v\n", light, v)
			return nil
		}); err != nil {
			return err
		}
	}

	prog, err := core.Compile(kit, script,
		core.WithCallbackRunner(extensibility.NewLoggingCallbackRunner(extensibility.NewDefaultCallbackRunner(reg), logger)),
		core.WithConditionEvaluator(extensibility.NewExpressionEvaluator(reg)),
		core.WithBlackboard(bb),
		core.WithErrorHandler(func(err error) { logger.Error("script error", "error", err) }),
		core.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	cfg, err := realtime.ConfigFromEnv()
	if err != nil {
		return err
	}
	loop := realtime.NewLoop(kit.Driver(), cfg, realtime.WithLogger(logger))

	// Cars drain on the fixed step, independent of frame rate.
	var steps int
	kit.Driver().OnFixedUpdate().Register(func(time.Duration) {
		steps++
		if v, ok := bb.Get("cars"); ok && v.(int) > 0 && steps%15 == 0 {
			bb.Set("cars", v.(int)-1)
		}
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	done := make(chan struct{})
	if err := loop.Post(func() {
		prog.Run(loop.Owner(ctx), actionkit.OnComplete(func() { close(done) }))
	}); err != nil {
		return err
	}
	visualizer := &production.DefaultVisualizer{}
	dot := make(chan string, 1)
	if err := loop.Post(func() {
		// The tree is live here; it is recycled once the run ends.
		dot <- visualizer.ExportDOT(prog.Root, prog.Label)
	}); err != nil {
		return err
	}

	if err := loop.Start(ctx); err != nil {
		return err
	}
	fmt.Println("DOT:\n" + <-dot)

	for {
		select {
		case rec := <-published:
			fmt.Printf("published: %s %s at frame %d\n", rec.Action, rec.Kind, rec.Frame)
		case <-done:
			fmt.Printf("Demo complete after %d frames.\n", loop.Frame())
			return loop.Stop()
		case <-ctx.Done():
			fmt.Println("\nShutting down gracefully...")
			return loop.Stop()
		}
	}
}

// loadScript reads the script named on the command line, or the built-in
// traffic light.
func loadScript() (primitives.Script, error) {
	if len(os.Args) > 1 {
		return production.ReadScriptFile(os.Args[1])
	}
	var script primitives.Script
	if err := yaml.Unmarshal([]byte(trafficScript), &script); err != nil {
		return primitives.Script{}, fmt.Errorf("decode built-in script: %w", err)
	}
	if err := script.Validate(); err != nil {
		return primitives.Script{}, err
	}
	return script, nil
}
