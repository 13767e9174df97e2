package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllow_EnforcesBurst(t *testing.T) {
	krl := New(1, 3)
	defer krl.Shutdown()

	assert.True(t, krl.Allow("1.2.3.4"))
	assert.True(t, krl.Allow("1.2.3.4"))
	assert.True(t, krl.Allow("1.2.3.4"))
	assert.False(t, krl.Allow("1.2.3.4"))
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	krl := New(1, 1)
	defer krl.Shutdown()

	assert.True(t, krl.Allow("1.2.3.4"))
	assert.False(t, krl.Allow("1.2.3.4"))
	assert.True(t, krl.Allow("5.6.7.8"))
}

func TestRemoveIdle(t *testing.T) {
	krl := New(1, 1)
	defer krl.Shutdown()

	krl.Allow("stale")
	krl.mu.Lock()
	krl.limiters["stale"].lastSeen = time.Now().Add(-2 * idleTimeout)
	krl.mu.Unlock()

	krl.Allow("fresh")
	krl.removeIdle(time.Now().Add(-idleTimeout))

	krl.mu.Lock()
	defer krl.mu.Unlock()
	assert.NotContains(t, krl.limiters, "stale")
	assert.Contains(t, krl.limiters, "fresh")
}

func TestShutdown_Idempotent(t *testing.T) {
	krl := New(1, 1)
	assert.NoError(t, krl.Shutdown())
	assert.NoError(t, krl.Shutdown())
}
