package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKVSetGet(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	_, ok := kv.Get(ctx, "missing")
	assert.False(t, ok)

	kv.Set(ctx, "k", "v")
	v, ok := kv.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestMemoryKVConcurrentAccess(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			kv.Set(ctx, "shared", "x")
			kv.Get(ctx, "shared")
		}()
	}
	wg.Wait()

	v, ok := kv.Get(ctx, "shared")
	require.True(t, ok)
	assert.Equal(t, "x", v)
}
