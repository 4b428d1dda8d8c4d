package projects

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/circuitspace/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserProjects_CRUD(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	u := OpenUserProjects(ctx, kv, nil)
	now := fixedNow
	u.now = func() time.Time { return now }

	p, err := u.Add(ctx, UserProject{Name: "Dimmer", Category: CategoryBeginner, Components: []string{"led"}})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, StatusInProgress, p.Status)
	assert.Equal(t, fixedNow, p.CreatedAt)

	now = now.Add(time.Hour)
	name := "LED Dimmer"
	done := StatusDone
	upd, err := u.Update(ctx, p.ID, UserProjectUpdate{Name: &name, Status: &done})
	require.NoError(t, err)
	assert.Equal(t, "LED Dimmer", upd.Name)
	assert.Equal(t, StatusDone, upd.Status)
	assert.Equal(t, []string{"led"}, upd.Components)
	assert.Equal(t, fixedNow, upd.CreatedAt)
	assert.Equal(t, now, upd.UpdatedAt)

	reloaded := OpenUserProjects(ctx, kv, nil)
	got, ok := reloaded.Get(p.ID)
	require.True(t, ok)
	assert.Equal(t, "LED Dimmer", got.Name)

	require.NoError(t, u.Delete(ctx, p.ID))
	assert.Empty(t, u.List())
	assert.Empty(t, OpenUserProjects(ctx, kv, nil).List())
}

func TestUserProjects_UnknownID(t *testing.T) {
	ctx := context.Background()
	u := OpenUserProjects(ctx, store.NewMemoryKV(), nil)

	_, err := u.Update(ctx, "missing", UserProjectUpdate{})
	assert.ErrorIs(t, err, ErrProjectNotFound)
	assert.ErrorIs(t, u.Delete(ctx, "missing"), ErrProjectNotFound)
	_, ok := u.Get("missing")
	assert.False(t, ok)
}

func TestUserProjects_WriteFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	u := OpenUserProjects(ctx, kv, nil)
	p, err := u.Add(ctx, UserProject{Name: "a"})
	require.NoError(t, err)

	kv.FailWrites = true
	_, err = u.Add(ctx, UserProject{Name: "b"})
	assert.Error(t, err)
	assert.Len(t, u.List(), 1)

	name := "renamed"
	_, err = u.Update(ctx, p.ID, UserProjectUpdate{Name: &name})
	assert.Error(t, err)
	got, _ := u.Get(p.ID)
	assert.Equal(t, "a", got.Name)

	assert.Error(t, u.Delete(ctx, p.ID))
	assert.Len(t, u.List(), 1)
}

func TestUserProjects_MalformedStartsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	require.NoError(t, kv.Set(ctx, store.KeyUserProjects, "[{"))

	u := OpenUserProjects(ctx, kv, nil)
	assert.Empty(t, u.List())
}

func TestUserProjects_Clear(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	u := OpenUserProjects(ctx, kv, nil)
	_, err := u.Add(ctx, UserProject{Name: "a"})
	require.NoError(t, err)

	require.NoError(t, u.Clear(ctx))
	assert.Empty(t, u.List())
	_, ok, _ := kv.Get(ctx, store.KeyUserProjects)
	assert.False(t, ok)
}
