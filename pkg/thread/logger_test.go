package thread

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetLogger_NilFallsBackToNop(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	SetLogger(nil)
	assert.NotNil(t, Logger())
}

func TestWithLogger_RecordsLifecycle(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	h := MustSpawn(func() int { return 1 }, WithLogger(log), WithName("worker"))
	h.Join()

	spawned := logs.FilterMessage("thread spawned").All()
	require.Len(t, spawned, 1)
	fields := spawned[0].ContextMap()
	assert.Equal(t, "worker", fields["name"])
	assert.Equal(t, h.ID().String(), fields["thread_id"])
	assert.Equal(t, 1, logs.FilterMessage("thread joined").Len())
}

func TestWithLogger_ClosePanicLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	h := MustSpawn(func() int { panic("boom") }, WithLogger(zap.New(core)))
	assert.Error(t, h.Close())
	assert.Equal(t, 1, logs.FilterMessage("discarded result of panicked computation").Len())
}

func TestWithLogger_CreationFailureLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	p := NewNative(NativeOptions{MaxThreads: 1})
	release := make(chan struct{})
	first := MustSpawn(func() int { <-release; return 0 }, WithProvider(p))

	_, err := Spawn(func() int { return 1 }, WithProvider(p), WithLogger(zap.New(core)))
	assert.ErrorIs(t, err, ErrThreadLimit)
	assert.Equal(t, 1, logs.FilterMessage("thread creation failed").Len())

	close(release)
	first.Join()
}
