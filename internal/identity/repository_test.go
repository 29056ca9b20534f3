package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestResolveOrCreateClient(t *testing.T) {
	db := newTestDB(t)
	r := NewResolver()
	ctx := context.Background()

	first, err := r.ResolveOrCreateClient(ctx, db, "acme")
	require.NoError(t, err)
	require.NotZero(t, first)

	again, err := r.ResolveOrCreateClient(ctx, db, "acme")
	require.NoError(t, err)
	assert.Equal(t, first, again)

	other, err := r.ResolveOrCreateClient(ctx, db, "globex")
	require.NoError(t, err)
	assert.NotEqual(t, first, other)

	var count int64
	require.NoError(t, db.Model(&Client{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestResolveOrCreateEntrant_KeepsFirstName(t *testing.T) {
	db := newTestDB(t)
	r := NewResolver()
	ctx := context.Background()

	id, err := r.ResolveOrCreateEntrant(ctx, db, "Ana", "ana@example.com")
	require.NoError(t, err)

	again, err := r.ResolveOrCreateEntrant(ctx, db, "Ana Maria", "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, again)

	var entrant Entrant
	require.NoError(t, db.First(&entrant, id).Error)
	assert.Equal(t, "Ana", entrant.Name)
}

func TestResolveOrCreateEntrant_SkipsSoftDeleted(t *testing.T) {
	db := newTestDB(t)
	r := NewResolver()
	ctx := context.Background()

	old, err := r.ResolveOrCreateEntrant(ctx, db, "Bo", "bo@example.com")
	require.NoError(t, err)
	require.NoError(t, db.Delete(&Entrant{}, old).Error)

	fresh, err := r.ResolveOrCreateEntrant(ctx, db, "Bo", "bo@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, old, fresh)
}

func TestResolveOrCreate_InsideRolledBackTransaction(t *testing.T) {
	db := newTestDB(t)
	r := NewResolver()
	ctx := context.Background()

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := r.ResolveOrCreateClient(ctx, tx, "ephemeral")
		require.NoError(t, err)
		return gorm.ErrInvalidTransaction
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&Client{}).Where("slug = ?", "ephemeral").Count(&count).Error)
	assert.Zero(t, count)
}
