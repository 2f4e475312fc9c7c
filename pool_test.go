package actionkit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/actionkit"
)

func TestPoolReusesReleasedInstance(t *testing.T) {
	kit := actionkit.New()

	first := kit.Delay(time.Second, nil)
	first.Tick(500 * time.Millisecond)
	first.Release()
	require.Equal(t, 1, kit.Pool().Len(actionkit.KindDelay))

	second := kit.Delay(2*time.Second, nil)

	assert.Same(t, first, second)
	assert.Zero(t, kit.Pool().Len(actionkit.KindDelay))
	assert.False(t, second.Deinited())
	assert.False(t, second.Started())
	assert.False(t, second.Finished())
	assert.Zero(t, second.Elapsed())
	assert.Equal(t, 2*time.Second, second.Duration())

	stats := kit.Pool().Stats(actionkit.KindDelay)
	assert.Equal(t, actionkit.PoolStats{Allocated: 1, Reused: 1, Released: 1}, stats)
}

func TestPoolIsLIFO(t *testing.T) {
	kit := actionkit.New()
	a := kit.Callback(nil)
	b := kit.Callback(nil)
	a.Release()
	b.Release()

	assert.Same(t, b, kit.Callback(nil))
	assert.Same(t, a, kit.Callback(nil))
}

func TestPoolSeparatesKinds(t *testing.T) {
	kit := actionkit.New()
	kit.Callback(nil).Release()

	c := kit.Condition(nil)
	assert.Equal(t, 1, kit.Pool().Len(actionkit.KindCallback))
	assert.Equal(t, actionkit.KindCondition, c.Kind())
}

func TestReleaseReturnsChildrenToPool(t *testing.T) {
	kit := actionkit.New()
	seq := kit.Sequence().
		Callback(nil).
		Delay(time.Second).
		Parallel(func(p *actionkit.Parallel) {
			p.DelayFrame(2).NextFrame()
		})
	children := seq.Children()
	require.Len(t, children, 3)

	seq.Release()

	assert.Empty(t, seq.Children())
	for _, c := range children {
		assert.True(t, c.Deinited(), "%s not released", c.Kind())
	}
	assert.Equal(t, 1, kit.Pool().Len(actionkit.KindSequence))
	assert.Equal(t, 1, kit.Pool().Len(actionkit.KindParallel))
	assert.Equal(t, 2, kit.Pool().Len(actionkit.KindDelayFrame))
}

func TestChildrenReturnsSnapshot(t *testing.T) {
	kit := actionkit.New()
	par := kit.Parallel().Callback(nil).NextFrame()
	seq := kit.Sequence().Callback(nil).Delay(time.Second)

	for _, c := range []actionkit.Composite{par, seq} {
		children := c.Children()
		require.Len(t, children, 2)
		children[0] = nil

		assert.NotNil(t, c.Children()[0], "%s exposed its child list", c.Kind())

		snapshot := c.Children()
		c.Release()
		for _, child := range snapshot {
			require.NotNil(t, child)
			assert.True(t, child.Deinited())
		}
	}
}

func TestReusedCompositeStartsEmpty(t *testing.T) {
	kit := actionkit.New()
	r := kit.Repeat(3).Callback(nil)
	r.Release()

	again := kit.Repeat(2)
	require.Same(t, r, again)
	assert.Nil(t, again.Child())
	assert.Equal(t, 2, again.Count())
	assert.True(t, again.Tick(0))
}

func TestDoubleReleasePanics(t *testing.T) {
	kit := actionkit.New()
	c := kit.Callback(nil)
	c.Release()
	requirePanicIs(t, actionkit.ErrDoubleRelease, c.Release)
	assert.Equal(t, 1, kit.Pool().Len(actionkit.KindCallback), "second release must not re-pool")
}

func TestSharedPool(t *testing.T) {
	pool := actionkit.NewPool()
	a := actionkit.New(actionkit.WithPool(pool))
	b := actionkit.New(actionkit.WithPool(pool))

	seq := a.Sequence()
	seq.Release()

	reused := b.Sequence().Callback(nil)
	assert.Same(t, seq, reused)
	assert.Equal(t, 1, pool.Stats(actionkit.KindCallback).Allocated)
}

func TestNilPool(t *testing.T) {
	var p *actionkit.Pool
	assert.Zero(t, p.Len(actionkit.KindDelay))
	assert.Equal(t, actionkit.PoolStats{}, p.Stats(actionkit.KindDelay))

	var kit *actionkit.Kit
	c := kit.Callback(nil)
	c.Release()
	assert.True(t, c.Deinited())
	requirePanicIs(t, actionkit.ErrNoDriver, func() { kit.Run(kit.Callback(nil), nil) })
}
