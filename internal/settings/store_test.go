package settings

import (
	"context"
	"testing"

	"kamstim/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_DefaultsWhenUnset(t *testing.T) {
	store := NewMemoryStore()

	settings, err := store.Get(context.Background(), "user-123")

	assert.NoError(t, err)
	assert.Equal(t, entity.DefaultSettings(), settings)
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	want := entity.Settings{DarkMode: true, Language: "en"}
	err := store.Put(ctx, "user-123", want)
	assert.NoError(t, err)

	got, err := store.Get(ctx, "user-123")
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMemoryStore_IsolatedPerUser(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	err := store.Put(ctx, "user-a", entity.Settings{DarkMode: true, Language: "cs"})
	assert.NoError(t, err)

	got, err := store.Get(ctx, "user-b")
	assert.NoError(t, err)
	assert.Equal(t, entity.DefaultSettings(), got)
}
