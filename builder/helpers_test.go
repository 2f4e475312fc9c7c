package builder_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/actionkit"
	"github.com/comalice/actionkit/builder"
	"github.com/comalice/actionkit/internal/core"
	"github.com/comalice/actionkit/internal/primitives"
	"github.com/comalice/actionkit/testutil"
)

func TestNodes(t *testing.T) {
	root := builder.Sequence(
		builder.Callback("spawn", builder.ID("start")),
		builder.Delay(time.Second, builder.Then("flash")),
		builder.Named("fx", builder.Parallel(builder.DelayFrame(2), builder.NextFrame())),
		builder.Forever(builder.Condition("hp > 0")),
	)

	require.Len(t, root.Children, 4)
	assert.Equal(t, primitives.Sequence, root.Kind)
	assert.Equal(t, "start", root.Children[0].ID)
	assert.Equal(t, "flash", root.Children[1].Callback)
	assert.Equal(t, time.Second, root.Children[1].Duration.Std())
	assert.Equal(t, "fx", root.Children[2].ID)
	assert.Equal(t, 2, root.Children[2].Children[0].Frames)
	assert.Equal(t, 1, root.Children[2].Children[1].Frames)
	assert.Equal(t, 0, root.Children[3].Count)
	assert.NoError(t, root.Validate())
}

func TestScriptVersion(t *testing.T) {
	a := builder.Script("s", builder.Sequence(builder.Callback("x")))
	b := builder.Script("s", builder.Sequence(builder.Callback("x")))
	c := builder.Script("s", builder.Sequence(builder.Callback("y")))

	assert.Len(t, a.Version, 16)
	assert.Equal(t, a.Version, b.Version)
	assert.NotEqual(t, a.Version, c.Version)
}

func TestCompileAndRun(t *testing.T) {
	reg := core.NewRegistry()
	var rec testutil.Recorder
	for _, name := range []string{"spawn", "flash", "blink", "done"} {
		mark := rec.Mark(name)
		require.NoError(t, reg.RegisterCallback(name, func(*primitives.Blackboard) error {
			mark()
			return nil
		}))
	}

	script := builder.Script("intro", builder.Sequence(
		builder.Callback("spawn"),
		builder.Delay(100*time.Millisecond, builder.Then("flash")),
		builder.Repeat(2, builder.Callback("blink"), builder.NextFrame()),
		builder.Condition("hp <= 0"),
		builder.Callback("done", builder.ID("end")),
	))

	bb := primitives.NewBlackboard()
	bb.Set("hp", 10)
	kit := actionkit.New()
	prog, err := builder.Compile(kit, reg, script, core.WithBlackboard(bb))
	require.NoError(t, err)

	end, ok := prog.Action("end")
	require.True(t, ok)
	assert.Equal(t, actionkit.KindCallback, end.Kind())

	var finished bool
	prog.Run(nil, actionkit.OnComplete(func() { finished = true }))

	s := testutil.NewStepper(testutil.NewDriverHost(kit.Driver()), 50*time.Millisecond)
	s.Step(10)
	assert.False(t, finished, "condition holds the sequence")
	assert.Equal(t, []string{"spawn", "flash", "blink", "blink"}, rec.Calls)

	bb.Set("hp", 0)
	_, ok = s.Until(func() bool { return finished }, 5)
	require.True(t, ok)
	assert.Equal(t, []string{"spawn", "flash", "blink", "blink", "done"}, rec.Calls)
}

func TestCompileUnknownCallback(t *testing.T) {
	kit := actionkit.New()
	_, err := builder.Compile(kit, core.NewRegistry(), builder.Script("bad", builder.Callback("nope")))
	assert.ErrorIs(t, err, core.ErrInvalidScript)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestCompileBadExpression(t *testing.T) {
	kit := actionkit.New()
	_, err := builder.Compile(kit, core.NewRegistry(), builder.Script("bad", builder.Condition("hp <")))
	assert.ErrorIs(t, err, core.ErrInvalidScript)
}
