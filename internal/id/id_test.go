package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_HasPrefix(t *testing.T) {
	got, err := Generate("film")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "film-"))
}

func TestGenerate_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		got, err := Generate("blog")
		require.NoError(t, err)
		assert.False(t, seen[got], "duplicate ID generated: %s", got)
		seen[got] = true
	}
}

func TestMustGenerate_DoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = MustGenerate("banner")
	})
}
