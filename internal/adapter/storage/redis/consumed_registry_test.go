package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) (*ConsumedRegistry, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	return NewConsumedRegistry(client), s
}

func TestConsumedRegistry_MarkAndLookup(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	err := registry.Mark(ctx, []string{"rec-1", "rec-2"}, time.Hour)
	require.NoError(t, err)

	consumed, err := registry.Consumed(ctx, []string{"rec-1", "rec-2", "rec-3"})
	require.NoError(t, err)
	assert.True(t, consumed["rec-1"])
	assert.True(t, consumed["rec-2"])
	assert.False(t, consumed["rec-3"], "unmarked id should read as fresh")
}

func TestConsumedRegistry_EmptyIDs(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	require.NoError(t, registry.Mark(ctx, nil, time.Hour))

	consumed, err := registry.Consumed(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, consumed)
}

func TestConsumedRegistry_ExpiryReadsAsFresh(t *testing.T) {
	registry, s := newTestRegistry(t)
	ctx := context.Background()

	require.NoError(t, registry.Mark(ctx, []string{"rec-1"}, time.Second))

	s.FastForward(2 * time.Second)

	consumed, err := registry.Consumed(ctx, []string{"rec-1"})
	require.NoError(t, err)
	assert.False(t, consumed["rec-1"], "expired entry should read as fresh")
}

func TestConsumedRegistry_OutageFallsBackToLocalMirror(t *testing.T) {
	registry, s := newTestRegistry(t)
	ctx := context.Background()

	s.Close()

	err := registry.Mark(ctx, []string{"rec-1"}, time.Hour)
	assert.Error(t, err, "redis failure is still reported")

	consumed, err := registry.Consumed(ctx, []string{"rec-1", "rec-2"})
	require.NoError(t, err)
	assert.True(t, consumed["rec-1"], "mark survives in the local mirror")
	assert.False(t, consumed["rec-2"])
}

func TestConsumedRegistry_RemarkExtendsTTL(t *testing.T) {
	registry, s := newTestRegistry(t)
	ctx := context.Background()

	require.NoError(t, registry.Mark(ctx, []string{"rec-1"}, time.Second))
	require.NoError(t, registry.Mark(ctx, []string{"rec-1"}, time.Hour))

	s.FastForward(2 * time.Second)

	consumed, err := registry.Consumed(ctx, []string{"rec-1"})
	require.NoError(t, err)
	assert.True(t, consumed["rec-1"])
}
